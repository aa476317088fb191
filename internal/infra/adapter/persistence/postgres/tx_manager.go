package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsapi/internal/repository"
)

// TxManager runs use case operations inside a single database transaction.
// The commit boundary is explicit: fn runs between BeginTx and Commit, and any
// error from fn rolls everything back and is returned unchanged.
type TxManager struct {
	db *sql.DB
}

func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	repos := repository.Repositories{
		Articles: NewArticleRepo(tx),
		Authors:  NewAuthorRepo(tx),
		Keywords: NewKeywordRepo(tx),
	}

	if err := fn(ctx, repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rollback tx: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		// Deferred constraint checks fire at commit time.
		return fmt.Errorf("commit tx: %w", mapError(err))
	}
	return nil
}
