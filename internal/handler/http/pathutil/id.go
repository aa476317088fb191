// Package pathutil provides helpers for extracting typed values from URL
// paths and for normalizing dynamic paths into low-cardinality templates.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ErrInvalidSegment is returned when a path segment is empty or spans
// multiple segments.
var ErrInvalidSegment = errors.New("invalid path segment")

// ExtractID extracts and parses an integer ID from a URL path.
// It removes the specified prefix and parses the remaining string as int64.
//
// Example:
//
//	id, err := ExtractID("/articles/123", "/articles/")
//	// Returns: 123, nil
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ExtractSegment extracts a single non-empty path segment after the prefix.
// A trailing slash or an embedded slash is rejected.
//
// Example:
//
//	name, err := ExtractSegment("/articles/keyword/politics", "/articles/keyword/")
//	// Returns: "politics", nil
func ExtractSegment(path, prefix string) (string, error) {
	segment := strings.TrimPrefix(path, prefix)
	if segment == "" || strings.Contains(segment, "/") {
		return "", ErrInvalidSegment
	}
	return segment, nil
}
