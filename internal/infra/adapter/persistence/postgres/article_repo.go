package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newsapi/internal/domain/entity"
	"newsapi/internal/repository"
)

type ArticleRepo struct {
	db DBTX
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

const articleColumns = `id, headline, description, main_text, published_on, created_on, updated_on`

func (repo *ArticleRepo) Save(ctx context.Context, article *entity.Article) (*entity.Article, error) {
	now := time.Now().UTC()
	saved := *article

	if article.IsNew() {
		const query = `
INSERT INTO news_article
	   (headline, description, main_text, published_on, created_on, updated_on)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
		saved.CreatedOn, saved.UpdatedOn = now, now
		err := repo.db.QueryRowContext(ctx, query,
			article.Headline, nullString(article.Description), nullString(article.MainText),
			nullDate(article.PublishedOn), now, now,
		).Scan(&saved.ID)
		if err != nil {
			return nil, fmt.Errorf("Save: %w", mapError(err))
		}
		return &saved, nil
	}

	const query = `
UPDATE news_article SET
       headline     = $1,
       description  = $2,
       main_text    = $3,
       published_on = $4,
       updated_on   = $5
WHERE id = $6`
	res, err := repo.db.ExecContext(ctx, query,
		article.Headline, nullString(article.Description), nullString(article.MainText),
		nullDate(article.PublishedOn), now, article.ID,
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

// Get returns the article with both association sets loaded, or (nil, nil)
// when no row matches.
func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM news_article
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	if err := repo.loadAssociations(ctx, article); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM news_article WHERE id = $1)`
	var existsFlag bool
	if err := repo.db.QueryRowContext(ctx, query, id).Scan(&existsFlag); err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return existsFlag, nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM news_article WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", mapError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) AttachAuthor(ctx context.Context, articleID, authorID int64) error {
	const query = `
INSERT INTO news_article_author (article_id, author_id)
VALUES ($1, $2)
ON CONFLICT (article_id, author_id) DO NOTHING`
	if _, err := repo.db.ExecContext(ctx, query, articleID, authorID); err != nil {
		return fmt.Errorf("AttachAuthor: %w", mapError(err))
	}
	return nil
}

func (repo *ArticleRepo) ClearAuthors(ctx context.Context, articleID int64) error {
	const query = `DELETE FROM news_article_author WHERE article_id = $1`
	if _, err := repo.db.ExecContext(ctx, query, articleID); err != nil {
		return fmt.Errorf("ClearAuthors: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) AttachKeyword(ctx context.Context, articleID, keywordID int64) error {
	const query = `
INSERT INTO news_article_keyword (article_id, keyword_id)
VALUES ($1, $2)
ON CONFLICT (article_id, keyword_id) DO NOTHING`
	if _, err := repo.db.ExecContext(ctx, query, articleID, keywordID); err != nil {
		return fmt.Errorf("AttachKeyword: %w", mapError(err))
	}
	return nil
}

func (repo *ArticleRepo) ClearKeywords(ctx context.Context, articleID int64) error {
	const query = `DELETE FROM news_article_keyword WHERE article_id = $1`
	if _, err := repo.db.ExecContext(ctx, query, articleID); err != nil {
		return fmt.Errorf("ClearKeywords: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) FindByAuthorID(ctx context.Context, authorID int64) ([]*entity.Article, error) {
	const query = `
SELECT a.id, a.headline, a.description, a.main_text, a.published_on, a.created_on, a.updated_on
FROM news_article a
INNER JOIN news_article_author aa ON aa.article_id = a.id
WHERE aa.author_id = $1
ORDER BY a.id`
	return repo.queryArticles(ctx, "FindByAuthorID", query, authorID)
}

func (repo *ArticleRepo) FindByKeywordName(ctx context.Context, name string) ([]*entity.Article, error) {
	const query = `
SELECT a.id, a.headline, a.description, a.main_text, a.published_on, a.created_on, a.updated_on
FROM news_article a
INNER JOIN news_article_keyword ak ON ak.article_id = a.id
INNER JOIN news_keyword k ON k.id = ak.keyword_id
WHERE LOWER(k.name) = LOWER($1)
ORDER BY a.id`
	return repo.queryArticles(ctx, "FindByKeywordName", query, name)
}

func (repo *ArticleRepo) FindByPublishedOnBetween(ctx context.Context, from, to time.Time) ([]*entity.Article, error) {
	const query = `
SELECT a.id, a.headline, a.description, a.main_text, a.published_on, a.created_on, a.updated_on
FROM news_article a
WHERE a.published_on BETWEEN $1 AND $2
ORDER BY a.published_on, a.id`
	return repo.queryArticles(ctx, "FindByPublishedOnBetween", query, from, to)
}

func (repo *ArticleRepo) queryArticles(ctx context.Context, op, query string, args ...any) ([]*entity.Article, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 16)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, article := range articles {
		if err := repo.loadAssociations(ctx, article); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return articles, nil
}

func (repo *ArticleRepo) loadAssociations(ctx context.Context, article *entity.Article) error {
	const authorQuery = `
SELECT au.id, au.first_name, au.last_name, au.created_on, au.updated_on
FROM news_author au
INNER JOIN news_article_author aa ON aa.author_id = au.id
WHERE aa.article_id = $1
ORDER BY au.id`
	rows, err := repo.db.QueryContext(ctx, authorQuery, article.ID)
	if err != nil {
		return fmt.Errorf("load authors: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var author entity.Author
		if err := rows.Scan(&author.ID, &author.FirstName, &author.LastName,
			&author.CreatedOn, &author.UpdatedOn); err != nil {
			return fmt.Errorf("load authors: Scan: %w", err)
		}
		article.AddAuthor(&author)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load authors: %w", err)
	}

	const keywordQuery = `
SELECT k.id, k.name, k.description, k.created_on, k.updated_on
FROM news_keyword k
INNER JOIN news_article_keyword ak ON ak.keyword_id = k.id
WHERE ak.article_id = $1
ORDER BY k.id`
	krows, err := repo.db.QueryContext(ctx, keywordQuery, article.ID)
	if err != nil {
		return fmt.Errorf("load keywords: %w", err)
	}
	defer func() { _ = krows.Close() }()
	for krows.Next() {
		var keyword entity.Keyword
		var description sql.NullString
		if err := krows.Scan(&keyword.ID, &keyword.Name, &description,
			&keyword.CreatedOn, &keyword.UpdatedOn); err != nil {
			return fmt.Errorf("load keywords: Scan: %w", err)
		}
		keyword.Description = description.String
		article.AddKeyword(&keyword)
	}
	return krows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*entity.Article, error) {
	var article entity.Article
	var description, mainText sql.NullString
	var publishedOn sql.NullTime
	if err := row.Scan(&article.ID, &article.Headline, &description, &mainText,
		&publishedOn, &article.CreatedOn, &article.UpdatedOn); err != nil {
		return nil, err
	}
	article.Description = description.String
	article.MainText = mainText.String
	if publishedOn.Valid {
		day := publishedOn.Time
		article.PublishedOn = &day
	}
	return &article, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
