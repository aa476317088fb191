package repository

import (
	"context"

	"newsapi/internal/domain/entity"
)

// AuthorRepository is the store contract for authors.
type AuthorRepository interface {
	// Save inserts when the author carries no identity, else updates by
	// identity. Returns the author with assigned identity and timestamps.
	Save(ctx context.Context, author *entity.Author) (*entity.Author, error)
	// Get returns (nil, nil) when the author does not exist.
	Get(ctx context.Context, id int64) (*entity.Author, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
