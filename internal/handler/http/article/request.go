package article

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	artUC "newsapi/internal/usecase/article"
)

// request is the JSON payload accepted by create and update. The two
// operations take the same shape; update additionally carries the id in the
// URL path.
type request struct {
	Headline    string       `json:"headline"`
	Description string       `json:"description"`
	MainText    string       `json:"mainText"`
	PublishedOn string       `json:"publishedOn"`
	Authors     []AuthorDTO  `json:"authors"`
	Keywords    []KeywordDTO `json:"keywords"`
}

func decodeRequest(body io.Reader) (artUC.Input, error) {
	var req request
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return artUC.Input{}, errors.New("invalid request body")
	}

	in := artUC.Input{
		Headline:    req.Headline,
		Description: req.Description,
		MainText:    req.MainText,
	}
	if req.PublishedOn != "" {
		t, err := time.Parse(DateLayout, req.PublishedOn)
		if err != nil {
			return artUC.Input{}, errors.New("publishedOn must be in YYYY-MM-DD format")
		}
		in.PublishedOn = &t
	}
	for _, a := range req.Authors {
		in.Authors = append(in.Authors, artUC.AuthorInput{
			ID:        a.ID,
			FirstName: a.FirstName,
			LastName:  a.LastName,
		})
	}
	for _, k := range req.Keywords {
		in.Keywords = append(in.Keywords, artUC.KeywordInput{
			ID:          k.ID,
			Name:        k.Name,
			Description: k.Description,
		})
	}
	return in, nil
}
