package entity

import "time"

// Author represents a person who wrote one or more articles.
// Authors are reference data: articles attach existing authors by identity
// and never edit author attributes through the article endpoints.
type Author struct {
	ID        int64
	FirstName string
	LastName  string
	CreatedOn time.Time
	UpdatedOn time.Time
}

// IsNew reports whether the author has been persisted yet.
func (a *Author) IsNew() bool {
	return a.ID == 0
}
