// Package repository declares the persistence interfaces consumed by the
// use case layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"
	"time"

	"newsapi/internal/domain/entity"
)

// ArticleRepository is the store contract for articles and the association
// sets they own. Lookup methods return (nil, nil) when no row matches;
// absence is a normal outcome, not an error.
type ArticleRepository interface {
	// Save inserts the article when it carries no identity and updates it
	// by identity otherwise. The returned article carries the assigned
	// identity and refreshed timestamps. Association sets are not written
	// by Save; use the Attach/Clear methods.
	Save(ctx context.Context, article *entity.Article) (*entity.Article, error)
	// Get returns the article with its author and keyword sets loaded.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Delete removes the article row. Join rows go with it via the
	// store-level cascade on the join tables; author and keyword rows stay.
	Delete(ctx context.Context, id int64) error

	// AttachAuthor adds an author to the article's association set.
	// Attaching the same pair twice is a no-op.
	AttachAuthor(ctx context.Context, articleID, authorID int64) error
	ClearAuthors(ctx context.Context, articleID int64) error
	AttachKeyword(ctx context.Context, articleID, keywordID int64) error
	ClearKeywords(ctx context.Context, articleID int64) error

	FindByAuthorID(ctx context.Context, authorID int64) ([]*entity.Article, error)
	// FindByKeywordName matches the keyword name exactly, ignoring case.
	FindByKeywordName(ctx context.Context, name string) ([]*entity.Article, error)
	// FindByPublishedOnBetween matches publication dates inclusively on
	// both bounds. Callers are responsible for supplying from < to.
	FindByPublishedOnBetween(ctx context.Context, from, to time.Time) ([]*entity.Article, error)
}
