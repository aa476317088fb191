package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newsapi/internal/domain/entity"
	"newsapi/internal/repository"
)

type AuthorRepo struct {
	db DBTX
}

func NewAuthorRepo(db DBTX) repository.AuthorRepository {
	return &AuthorRepo{db: db}
}

func (repo *AuthorRepo) Save(ctx context.Context, author *entity.Author) (*entity.Author, error) {
	now := time.Now().UTC()
	saved := *author

	if author.IsNew() {
		const query = `
INSERT INTO news_author (first_name, last_name, created_on, updated_on)
VALUES ($1, $2, $3, $4)
RETURNING id`
		saved.CreatedOn, saved.UpdatedOn = now, now
		err := repo.db.QueryRowContext(ctx, query,
			author.FirstName, author.LastName, now, now,
		).Scan(&saved.ID)
		if err != nil {
			return nil, fmt.Errorf("Save: %w", mapError(err))
		}
		return &saved, nil
	}

	const query = `
UPDATE news_author SET
       first_name = $1,
       last_name  = $2,
       updated_on = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query,
		author.FirstName, author.LastName, now, author.ID,
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

func (repo *AuthorRepo) Get(ctx context.Context, id int64) (*entity.Author, error) {
	const query = `
SELECT id, first_name, last_name, created_on, updated_on
FROM news_author
WHERE id = $1
LIMIT 1`
	var author entity.Author
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&author.ID, &author.FirstName, &author.LastName,
			&author.CreatedOn, &author.UpdatedOn)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &author, nil
}

func (repo *AuthorRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM news_author WHERE id = $1)`
	var existsFlag bool
	if err := repo.db.QueryRowContext(ctx, query, id).Scan(&existsFlag); err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return existsFlag, nil
}
