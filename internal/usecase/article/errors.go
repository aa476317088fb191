// Package article provides the lifecycle use cases for news articles:
// create, update, delete and the read-only lookups. Mutations reconcile the
// nested author/keyword references through the resolver and run inside a
// single store transaction.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
