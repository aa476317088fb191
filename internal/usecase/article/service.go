package article

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newsapi/internal/domain/entity"
	"newsapi/internal/observability/metrics"
	"newsapi/internal/repository"
	"newsapi/internal/usecase/resolve"
)

// AuthorInput is a detached author reference carried on an article payload.
// A zero ID means "new"; a non-zero ID attaches the stored author and the
// name fields are ignored.
type AuthorInput struct {
	ID        int64
	FirstName string
	LastName  string
}

// KeywordInput is a detached keyword reference carried on an article payload.
type KeywordInput struct {
	ID          int64
	Name        string
	Description string
}

// Input carries the scalar fields and association references for a create or
// update. On update the scalars replace the stored values wholesale and the
// association sets replace the stored sets; omitting an author or keyword
// detaches it.
type Input struct {
	Headline    string
	Description string
	MainText    string
	PublishedOn *time.Time
	Authors     []AuthorInput
	Keywords    []KeywordInput
}

// Service implements the article lifecycle and the read-only lookups.
// Mutations run inside one transaction via Tx; reads go straight to Repo.
type Service struct {
	Tx   repository.TxManager
	Repo repository.ArticleRepository
}

// Create persists a new article. The shell is written first to obtain the
// identity, then each author/keyword reference is resolved and attached, and
// the hydrated article is re-read inside the same transaction so the caller
// observes store-assigned identities and timestamps rather than the input
// echo. A constraint violation anywhere rolls the whole operation back and
// surfaces as entity.ErrConflict or entity.ErrInvalidInput.
func (s *Service) Create(ctx context.Context, in Input) (*entity.Article, error) {
	draft := &entity.Article{
		Headline:    in.Headline,
		Description: in.Description,
		MainText:    in.MainText,
		PublishedOn: in.PublishedOn,
	}
	if err := entity.ValidateArticle(draft); err != nil {
		return nil, err
	}

	var created *entity.Article
	err := s.Tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		saved, err := repos.Articles.Save(ctx, draft)
		if err != nil {
			return fmt.Errorf("create article: %w", err)
		}
		if err := attachResolved(ctx, repos, saved.ID, in.Authors, in.Keywords); err != nil {
			return err
		}
		created, err = repos.Articles.Get(ctx, saved.ID)
		if err != nil {
			return fmt.Errorf("reload article: %w", err)
		}
		if created == nil {
			return fmt.Errorf("reload article: %w", entity.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		recordMutation("create", err)
		return nil, err
	}
	metrics.RecordArticleOperation("create", "success")
	return created, nil
}

// Update overwrites the article's scalar fields and replaces both association
// sets with the resolved references from in. It returns (nil, nil) when no
// article carries the given identity; update targets a specific identity that
// may have been deleted concurrently, so absence is a soft outcome here, not
// an error.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	if err := entity.ValidateArticle(&entity.Article{
		Headline:    in.Headline,
		Description: in.Description,
		MainText:    in.MainText,
	}); err != nil {
		return nil, err
	}

	var updated *entity.Article
	err := s.Tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		existing, err := repos.Articles.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		if existing == nil {
			return nil
		}

		existing.Headline = in.Headline
		existing.Description = in.Description
		existing.MainText = in.MainText
		existing.PublishedOn = in.PublishedOn
		if _, err := repos.Articles.Save(ctx, existing); err != nil {
			return fmt.Errorf("update article: %w", err)
		}

		// Replace, not merge: detach everything, then attach the resolved set.
		if err := repos.Articles.ClearAuthors(ctx, id); err != nil {
			return fmt.Errorf("clear authors: %w", err)
		}
		if err := repos.Articles.ClearKeywords(ctx, id); err != nil {
			return fmt.Errorf("clear keywords: %w", err)
		}
		if err := attachResolved(ctx, repos, id, in.Authors, in.Keywords); err != nil {
			return err
		}

		updated, err = repos.Articles.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("reload article: %w", err)
		}
		return nil
	})
	if err != nil {
		recordMutation("update", err)
		return nil, err
	}
	if updated == nil {
		metrics.RecordArticleOperation("update", "not_found")
		return nil, nil
	}
	metrics.RecordArticleOperation("update", "success")
	return updated, nil
}

// Delete removes the article and, through the store-level cascade on the join
// tables, its associations. Author and keyword rows stay. Existence is checked
// first so deleting twice returns true then false instead of erroring.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidArticleID
	}

	var deleted bool
	err := s.Tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		exists, err := repos.Articles.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("check article: %w", err)
		}
		if !exists {
			return nil
		}
		if err := repos.Articles.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		recordMutation("delete", err)
		return false, err
	}
	if !deleted {
		metrics.RecordArticleOperation("delete", "not_found")
		return false, nil
	}
	metrics.RecordArticleOperation("delete", "success")
	return true, nil
}

// FindOne returns the hydrated article, or (nil, nil) when absent.
func (s *Service) FindOne(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	start := time.Now()
	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	metrics.RecordQueryDuration("by_id", time.Since(start))
	return article, nil
}

// FindByAuthorID returns the articles whose author set contains the given
// identity. An unknown author yields an empty sequence, never an error.
func (s *Service) FindByAuthorID(ctx context.Context, authorID int64) ([]*entity.Article, error) {
	if authorID <= 0 {
		return nil, ErrInvalidArticleID
	}
	start := time.Now()
	articles, err := s.Repo.FindByAuthorID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("find articles by author: %w", err)
	}
	metrics.RecordQueryDuration("by_author", time.Since(start))
	return articles, nil
}

// FindByKeywordName returns the articles tagged with the named keyword,
// matching the name exactly but ignoring case.
func (s *Service) FindByKeywordName(ctx context.Context, name string) ([]*entity.Article, error) {
	start := time.Now()
	articles, err := s.Repo.FindByKeywordName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find articles by keyword: %w", err)
	}
	metrics.RecordQueryDuration("by_keyword", time.Since(start))
	return articles, nil
}

// FindByDateRange returns the articles published between from and to,
// inclusive on both bounds. The transport layer rejects from >= to before
// calling; the query assumes a well-ordered range.
func (s *Service) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Article, error) {
	start := time.Now()
	articles, err := s.Repo.FindByPublishedOnBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("find articles by date range: %w", err)
	}
	metrics.RecordQueryDuration("by_date_range", time.Since(start))
	return articles, nil
}

// attachResolved resolves each reference in input order and attaches it to
// the article. No cross-reference dedup happens here; the association write
// itself is idempotent per (article, entity) pair.
func attachResolved(ctx context.Context, repos repository.Repositories, articleID int64, authors []AuthorInput, keywords []KeywordInput) error {
	r := resolve.New(repos.Authors, repos.Keywords)

	for _, ref := range authors {
		author, _, err := r.Author(ctx, &entity.Author{
			ID:        ref.ID,
			FirstName: ref.FirstName,
			LastName:  ref.LastName,
		})
		if err != nil {
			return err
		}
		if err := repos.Articles.AttachAuthor(ctx, articleID, author.ID); err != nil {
			return fmt.Errorf("attach author: %w", err)
		}
	}

	for _, ref := range keywords {
		keyword, _, err := r.Keyword(ctx, &entity.Keyword{
			ID:          ref.ID,
			Name:        ref.Name,
			Description: ref.Description,
		})
		if err != nil {
			return err
		}
		if err := repos.Articles.AttachKeyword(ctx, articleID, keyword.ID); err != nil {
			return fmt.Errorf("attach keyword: %w", err)
		}
	}
	return nil
}

func recordMutation(operation string, err error) {
	if errors.Is(err, entity.ErrConflict) {
		metrics.RecordConflict(operation)
	}
	metrics.RecordArticleOperation(operation, "error")
}
