package respond

import "regexp"

// dsnPasswordPattern matches the credential part of a connection string.
var dsnPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

// SanitizeError returns the error message with credentials masked, suitable
// for logging. Database errors can echo the DSN back.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return dsnPasswordPattern.ReplaceAllString(err.Error(), "://$1:****@")
}
