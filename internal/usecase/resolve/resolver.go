// Package resolve maps detached author and keyword references arriving on an
// article payload to their canonical stored entities. A reference either
// reuses an existing row by identity or creates a new one; the two branches
// are tagged explicitly so callers and tests can tell them apart.
package resolve

import (
	"context"
	"fmt"

	"newsapi/internal/domain/entity"
	"newsapi/internal/observability/metrics"
	"newsapi/internal/repository"
)

// Decision tags how a detached reference was resolved.
type Decision int

const (
	DecisionUnknown Decision = iota
	// DecisionReuse means the reference carried an identity that exists in
	// the store; the stored entity was returned and the reference's
	// attribute values were discarded.
	DecisionReuse
	// DecisionCreate means the reference carried no identity, or a stale
	// identity unknown to the store; a new row was inserted.
	DecisionCreate
)

// String returns the decision label used in logs and metrics.
func (d Decision) String() string {
	switch d {
	case DecisionReuse:
		return "reuse"
	case DecisionCreate:
		return "create"
	}
	return "unknown"
}

// Resolver resolves detached references against the store. When used inside a
// lifecycle operation the repositories must be the transaction-bound ones, so
// every insert it performs commits or rolls back with the operation.
type Resolver struct {
	Authors  repository.AuthorRepository
	Keywords repository.KeywordRepository
}

func New(authors repository.AuthorRepository, keywords repository.KeywordRepository) *Resolver {
	return &Resolver{Authors: authors, Keywords: keywords}
}

// Author resolves a detached author reference to its canonical stored row.
// Identity wins: when the carried identity exists, the stored author is
// returned as-is and the reference's name fields are ignored. Otherwise a new
// author is created from the reference's attributes; a stale identity echoed
// back by a client is dropped, not reused.
func (r *Resolver) Author(ctx context.Context, ref *entity.Author) (*entity.Author, Decision, error) {
	if !ref.IsNew() {
		stored, err := r.Authors.Get(ctx, ref.ID)
		if err != nil {
			return nil, DecisionUnknown, fmt.Errorf("resolve author: %w", err)
		}
		if stored != nil {
			metrics.RecordResolution("author", DecisionReuse.String())
			return stored, DecisionReuse, nil
		}
	}

	draft := *ref
	draft.ID = 0
	if err := entity.ValidateAuthor(&draft); err != nil {
		return nil, DecisionUnknown, err
	}
	saved, err := r.Authors.Save(ctx, &draft)
	if err != nil {
		return nil, DecisionUnknown, fmt.Errorf("create author: %w", err)
	}
	metrics.RecordResolution("author", DecisionCreate.String())
	return saved, DecisionCreate, nil
}

// Keyword resolves a detached keyword reference, with the same identity-wins
// rule as Author. Creation treats the name as-is: two names differing only in
// case are distinct references, and a name collision at the store's unique
// constraint surfaces as entity.ErrConflict with no retry and no fallback to
// the winner's row.
func (r *Resolver) Keyword(ctx context.Context, ref *entity.Keyword) (*entity.Keyword, Decision, error) {
	if !ref.IsNew() {
		stored, err := r.Keywords.Get(ctx, ref.ID)
		if err != nil {
			return nil, DecisionUnknown, fmt.Errorf("resolve keyword: %w", err)
		}
		if stored != nil {
			metrics.RecordResolution("keyword", DecisionReuse.String())
			return stored, DecisionReuse, nil
		}
	}

	draft := *ref
	draft.ID = 0
	if err := entity.ValidateKeyword(&draft); err != nil {
		return nil, DecisionUnknown, err
	}
	saved, err := r.Keywords.Save(ctx, &draft)
	if err != nil {
		return nil, DecisionUnknown, fmt.Errorf("create keyword: %w", err)
	}
	metrics.RecordResolution("keyword", DecisionCreate.String())
	return saved, DecisionCreate, nil
}
