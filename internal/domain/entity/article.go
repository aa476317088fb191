// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, Author and Keyword, along
// with their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a news article in the catalog.
// An article owns the membership of its author and keyword association sets;
// the referenced Author and Keyword rows are shared reference data and may be
// attached to any number of articles.
type Article struct {
	ID          int64
	Headline    string
	Description string
	MainText    string
	// PublishedOn is a calendar date without a time component. Nil means
	// the article has no publication date yet.
	PublishedOn *time.Time
	CreatedOn   time.Time
	UpdatedOn   time.Time
	Authors     []*Author
	Keywords    []*Keyword
}

// IsNew reports whether the article has been persisted yet.
// The store-assigned identity is the sole novelty signal.
func (a *Article) IsNew() bool {
	return a.ID == 0
}

// AddAuthor appends an author to the article's association set.
func (a *Article) AddAuthor(author *Author) {
	a.Authors = append(a.Authors, author)
}

// AddKeyword appends a keyword to the article's association set.
func (a *Article) AddKeyword(keyword *Keyword) {
	a.Keywords = append(a.Keywords, keyword)
}
