package entity

import (
	"fmt"

	"newsapi/internal/utils/text"
)

// Field length bounds, matching the store schema. VARCHAR bounds count
// characters, so validation measures runes rather than bytes.
const (
	MaxHeadlineLength    = 300
	MaxDescriptionLength = 500
	MaxMainTextLength    = 3000
	MaxKeywordNameLength = 300
)

// ValidateArticle checks the article's scalar fields against the schema bounds.
// Association sets are not validated here; the resolver handles them.
func ValidateArticle(a *Article) error {
	if a.Headline == "" {
		return &ValidationError{Field: "headline", Message: "is required"}
	}
	if text.CountRunes(a.Headline) > MaxHeadlineLength {
		return &ValidationError{
			Field:   "headline",
			Message: fmt.Sprintf("must not exceed %d characters", MaxHeadlineLength),
		}
	}
	if text.CountRunes(a.Description) > MaxDescriptionLength {
		return &ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("must not exceed %d characters", MaxDescriptionLength),
		}
	}
	if text.CountRunes(a.MainText) > MaxMainTextLength {
		return &ValidationError{
			Field:   "mainText",
			Message: fmt.Sprintf("must not exceed %d characters", MaxMainTextLength),
		}
	}
	return nil
}

// ValidateAuthor checks the author's required fields.
func ValidateAuthor(a *Author) error {
	if a.FirstName == "" {
		return &ValidationError{Field: "firstName", Message: "is required"}
	}
	if a.LastName == "" {
		return &ValidationError{Field: "lastName", Message: "is required"}
	}
	return nil
}

// ValidateKeyword checks the keyword's required fields.
func ValidateKeyword(k *Keyword) error {
	if k.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if text.CountRunes(k.Name) > MaxKeywordNameLength {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must not exceed %d characters", MaxKeywordNameLength),
		}
	}
	return nil
}
