package entity

import "time"

// Keyword represents a tag attached to articles. The keyword name is unique
// at the store level (case-sensitively); lookups by name are case-insensitive.
type Keyword struct {
	ID          int64
	Name        string
	Description string
	CreatedOn   time.Time
	UpdatedOn   time.Time
}

// IsNew reports whether the keyword has been persisted yet.
func (k *Keyword) IsNew() bool {
	return k.ID == 0
}
