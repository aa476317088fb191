package repository

import (
	"context"

	"newsapi/internal/domain/entity"
)

// KeywordRepository is the store contract for keywords. The store enforces a
// unique constraint on the keyword name; Save surfaces a violation as
// entity.ErrConflict.
type KeywordRepository interface {
	Save(ctx context.Context, keyword *entity.Keyword) (*entity.Keyword, error)
	// Get returns (nil, nil) when the keyword does not exist.
	Get(ctx context.Context, id int64) (*entity.Keyword, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
