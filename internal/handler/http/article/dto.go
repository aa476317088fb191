// Package article provides the HTTP handlers for the article endpoints:
// create, update, delete, fetch by id and the lookup routes by author,
// keyword and publication date range.
package article

import (
	"time"

	"newsapi/internal/domain/entity"
)

// DateLayout is the wire format for publication dates.
const DateLayout = "2006-01-02"

// AuthorDTO represents an author reference in article payloads. On input a
// non-zero id attaches the stored author; on output it always carries the
// stored identity.
type AuthorDTO struct {
	ID        int64  `json:"id,omitempty" example:"1"`
	FirstName string `json:"firstName" example:"Ada"`
	LastName  string `json:"lastName" example:"Lovelace"`
}

// KeywordDTO represents a keyword reference in article payloads.
type KeywordDTO struct {
	ID          int64  `json:"id,omitempty" example:"1"`
	Name        string `json:"name" example:"politics"`
	Description string `json:"description,omitempty" example:"Political news"`
}

// DTO represents the JSON structure of a hydrated article.
type DTO struct {
	ID          int64        `json:"id" example:"1"`
	Headline    string       `json:"headline" example:"Go 1.24 released"`
	Description string       `json:"description,omitempty"`
	MainText    string       `json:"mainText,omitempty"`
	PublishedOn *string      `json:"publishedOn,omitempty" example:"2026-01-15"`
	CreatedOn   time.Time    `json:"createdOn" example:"2026-01-15T12:00:00Z"`
	UpdatedOn   time.Time    `json:"updatedOn" example:"2026-01-15T12:00:00Z"`
	Authors     []AuthorDTO  `json:"authors"`
	Keywords    []KeywordDTO `json:"keywords"`
}

func toDTO(a *entity.Article) DTO {
	out := DTO{
		ID:          a.ID,
		Headline:    a.Headline,
		Description: a.Description,
		MainText:    a.MainText,
		CreatedOn:   a.CreatedOn,
		UpdatedOn:   a.UpdatedOn,
		Authors:     make([]AuthorDTO, 0, len(a.Authors)),
		Keywords:    make([]KeywordDTO, 0, len(a.Keywords)),
	}
	if a.PublishedOn != nil {
		s := a.PublishedOn.Format(DateLayout)
		out.PublishedOn = &s
	}
	for _, author := range a.Authors {
		out.Authors = append(out.Authors, AuthorDTO{
			ID:        author.ID,
			FirstName: author.FirstName,
			LastName:  author.LastName,
		})
	}
	for _, keyword := range a.Keywords {
		out.Keywords = append(out.Keywords, KeywordDTO{
			ID:          keyword.ID,
			Name:        keyword.Name,
			Description: keyword.Description,
		})
	}
	return out
}

func toDTOs(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	return out
}
