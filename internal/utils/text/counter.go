// Package text provides small text measurement helpers shared by the entity
// validation rules.
package text

import "unicode/utf8"

// CountRunes returns the number of Unicode characters in s. The store's
// VARCHAR bounds count characters rather than bytes, so multi-byte input such
// as accented names or CJK headlines must be measured the same way.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}
