package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newsapi/internal/domain/entity"
	"newsapi/internal/repository"
)

type KeywordRepo struct {
	db DBTX
}

func NewKeywordRepo(db DBTX) repository.KeywordRepository {
	return &KeywordRepo{db: db}
}

// Save inserts or updates a keyword. A name collision with an existing row
// surfaces as entity.ErrConflict via mapError; the caller decides what to do
// with it.
func (repo *KeywordRepo) Save(ctx context.Context, keyword *entity.Keyword) (*entity.Keyword, error) {
	now := time.Now().UTC()
	saved := *keyword

	if keyword.IsNew() {
		const query = `
INSERT INTO news_keyword (name, description, created_on, updated_on)
VALUES ($1, $2, $3, $4)
RETURNING id`
		saved.CreatedOn, saved.UpdatedOn = now, now
		err := repo.db.QueryRowContext(ctx, query,
			keyword.Name, nullString(keyword.Description), now, now,
		).Scan(&saved.ID)
		if err != nil {
			return nil, fmt.Errorf("Save: %w", mapError(err))
		}
		return &saved, nil
	}

	const query = `
UPDATE news_keyword SET
       name        = $1,
       description = $2,
       updated_on  = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query,
		keyword.Name, nullString(keyword.Description), now, keyword.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("Save: %w", mapError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("Save: %w", entity.ErrNotFound)
	}
	saved.UpdatedOn = now
	return &saved, nil
}

func (repo *KeywordRepo) Get(ctx context.Context, id int64) (*entity.Keyword, error) {
	const query = `
SELECT id, name, description, created_on, updated_on
FROM news_keyword
WHERE id = $1
LIMIT 1`
	var keyword entity.Keyword
	var description sql.NullString
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&keyword.ID, &keyword.Name, &description,
			&keyword.CreatedOn, &keyword.UpdatedOn)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	keyword.Description = description.String
	return &keyword, nil
}

func (repo *KeywordRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM news_keyword WHERE id = $1)`
	var existsFlag bool
	if err := repo.db.QueryRowContext(ctx, query, id).Scan(&existsFlag); err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return existsFlag, nil
}
