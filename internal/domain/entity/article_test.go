package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArticle_AddAuthor(t *testing.T) {
	var article Article
	assert.Empty(t, article.Authors)

	article.AddAuthor(&Author{ID: 1, FirstName: "Ada", LastName: "Lovelace"})
	article.AddAuthor(&Author{ID: 2, FirstName: "Alan", LastName: "Turing"})

	assert.Len(t, article.Authors, 2)
	assert.Equal(t, int64(1), article.Authors[0].ID)
	assert.Equal(t, int64(2), article.Authors[1].ID)
}

func TestArticle_AddKeyword(t *testing.T) {
	var article Article
	article.AddKeyword(&Keyword{ID: 5, Name: "Berlin"})

	assert.Len(t, article.Keywords, 1)
	assert.Equal(t, "Berlin", article.Keywords[0].Name)
}

func TestArticle_PublishedOnOptional(t *testing.T) {
	var article Article
	assert.Nil(t, article.PublishedOn)

	day := time.Date(2014, 6, 1, 0, 0, 0, 0, time.UTC)
	article.PublishedOn = &day
	assert.Equal(t, day, *article.PublishedOn)
}
