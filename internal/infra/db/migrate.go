package db

import "database/sql"

// MigrateUp creates the catalog schema: articles, authors, keywords and the
// two join tables. Join rows cascade on article deletion; author and keyword
// rows are never cascaded.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news_article (
    id           BIGSERIAL PRIMARY KEY,
    headline     VARCHAR(300) NOT NULL,
    description  VARCHAR(500),
    main_text    VARCHAR(3000),
    published_on DATE,
    created_on   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_on   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news_author (
    id         BIGSERIAL PRIMARY KEY,
    first_name VARCHAR(300) NOT NULL,
    last_name  VARCHAR(300) NOT NULL,
    created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news_keyword (
    id          BIGSERIAL PRIMARY KEY,
    name        VARCHAR(300) NOT NULL UNIQUE,
    description VARCHAR(500),
    created_on  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_on  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news_article_author (
    id         BIGSERIAL PRIMARY KEY,
    article_id BIGINT NOT NULL REFERENCES news_article(id) ON DELETE CASCADE,
    author_id  BIGINT NOT NULL REFERENCES news_author(id),
    UNIQUE(article_id, author_id)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news_article_keyword (
    id         BIGSERIAL PRIMARY KEY,
    article_id BIGINT NOT NULL REFERENCES news_article(id) ON DELETE CASCADE,
    keyword_id BIGINT NOT NULL REFERENCES news_keyword(id),
    UNIQUE(article_id, keyword_id)
)`); err != nil {
		return err
	}

	indexes := []string{
		// date range lookups scan by published_on
		`CREATE INDEX IF NOT EXISTS idx_news_article_published_on ON news_article(published_on)`,
		// association loads and lookups join through the link tables
		`CREATE INDEX IF NOT EXISTS idx_news_article_author_article_id ON news_article_author(article_id)`,
		`CREATE INDEX IF NOT EXISTS idx_news_article_author_author_id ON news_article_author(author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_news_article_keyword_article_id ON news_article_keyword(article_id)`,
		`CREATE INDEX IF NOT EXISTS idx_news_article_keyword_keyword_id ON news_article_keyword(keyword_id)`,
		// keyword lookup matches case-insensitively
		`CREATE INDEX IF NOT EXISTS idx_news_keyword_name_lower ON news_keyword(LOWER(name))`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the catalog schema in dependency order.
// Use with caution: this deletes all data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS news_article_keyword`,
		`DROP TABLE IF EXISTS news_article_author`,
		`DROP TABLE IF EXISTS news_keyword`,
		`DROP TABLE IF EXISTS news_author`,
		`DROP TABLE IF EXISTS news_article`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
