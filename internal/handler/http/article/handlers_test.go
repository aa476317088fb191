package article_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsapi/internal/domain/entity"
	"newsapi/internal/handler/http/article"
	"newsapi/internal/repository"
	artUC "newsapi/internal/usecase/article"
)

/* ───────── stub store ───────── */

type stubAuthors struct {
	data   map[int64]*entity.Author
	nextID int64
}

func (s *stubAuthors) Save(_ context.Context, a *entity.Author) (*entity.Author, error) {
	saved := *a
	if saved.ID == 0 {
		saved.ID = s.nextID
		s.nextID++
		saved.CreatedOn, saved.UpdatedOn = time.Now(), time.Now()
	}
	s.data[saved.ID] = &saved
	return &saved, nil
}

func (s *stubAuthors) Get(_ context.Context, id int64) (*entity.Author, error) {
	return s.data[id], nil
}

func (s *stubAuthors) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.data[id]
	return ok, nil
}

type stubKeywords struct {
	data   map[int64]*entity.Keyword
	nextID int64
}

func (s *stubKeywords) Save(_ context.Context, k *entity.Keyword) (*entity.Keyword, error) {
	for _, existing := range s.data {
		if existing.Name == k.Name && existing.ID != k.ID {
			return nil, fmt.Errorf("Save: %w: duplicate keyword name", entity.ErrConflict)
		}
	}
	saved := *k
	if saved.ID == 0 {
		saved.ID = s.nextID
		s.nextID++
		saved.CreatedOn, saved.UpdatedOn = time.Now(), time.Now()
	}
	s.data[saved.ID] = &saved
	return &saved, nil
}

func (s *stubKeywords) Get(_ context.Context, id int64) (*entity.Keyword, error) {
	return s.data[id], nil
}

func (s *stubKeywords) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.data[id]
	return ok, nil
}

type stubArticles struct {
	data        map[int64]*entity.Article
	nextID      int64
	artAuthors  map[int64][]int64
	artKeywords map[int64][]int64
	authors     *stubAuthors
	keywords    *stubKeywords
}

func (s *stubArticles) Save(_ context.Context, a *entity.Article) (*entity.Article, error) {
	saved := *a
	saved.Authors, saved.Keywords = nil, nil
	now := time.Now()
	if saved.ID == 0 {
		saved.ID = s.nextID
		s.nextID++
		saved.CreatedOn = now
	}
	saved.UpdatedOn = now
	s.data[saved.ID] = &saved
	cp := saved
	return &cp, nil
}

func (s *stubArticles) Get(_ context.Context, id int64) (*entity.Article, error) {
	stored, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	a := *stored
	for _, authorID := range s.artAuthors[id] {
		a.Authors = append(a.Authors, s.authors.data[authorID])
	}
	for _, keywordID := range s.artKeywords[id] {
		a.Keywords = append(a.Keywords, s.keywords.data[keywordID])
	}
	return &a, nil
}

func (s *stubArticles) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.data[id]
	return ok, nil
}

func (s *stubArticles) Delete(_ context.Context, id int64) error {
	delete(s.data, id)
	delete(s.artAuthors, id)
	delete(s.artKeywords, id)
	return nil
}

func (s *stubArticles) AttachAuthor(_ context.Context, articleID, authorID int64) error {
	s.artAuthors[articleID] = append(s.artAuthors[articleID], authorID)
	return nil
}

func (s *stubArticles) ClearAuthors(_ context.Context, articleID int64) error {
	delete(s.artAuthors, articleID)
	return nil
}

func (s *stubArticles) AttachKeyword(_ context.Context, articleID, keywordID int64) error {
	s.artKeywords[articleID] = append(s.artKeywords[articleID], keywordID)
	return nil
}

func (s *stubArticles) ClearKeywords(_ context.Context, articleID int64) error {
	delete(s.artKeywords, articleID)
	return nil
}

func (s *stubArticles) FindByAuthorID(ctx context.Context, authorID int64) ([]*entity.Article, error) {
	out := []*entity.Article{}
	for articleID, ids := range s.artAuthors {
		for _, id := range ids {
			if id == authorID {
				a, _ := s.Get(ctx, articleID)
				out = append(out, a)
				break
			}
		}
	}
	return out, nil
}

func (s *stubArticles) FindByKeywordName(ctx context.Context, name string) ([]*entity.Article, error) {
	out := []*entity.Article{}
	for articleID, ids := range s.artKeywords {
		for _, id := range ids {
			if strings.EqualFold(s.keywords.data[id].Name, name) {
				a, _ := s.Get(ctx, articleID)
				out = append(out, a)
				break
			}
		}
	}
	return out, nil
}

func (s *stubArticles) FindByPublishedOnBetween(ctx context.Context, from, to time.Time) ([]*entity.Article, error) {
	out := []*entity.Article{}
	for id, a := range s.data {
		if a.PublishedOn == nil || a.PublishedOn.Before(from) || a.PublishedOn.After(to) {
			continue
		}
		hydrated, _ := s.Get(ctx, id)
		out = append(out, hydrated)
	}
	return out, nil
}

type stubTx struct{ repos repository.Repositories }

func (s stubTx) WithinTx(ctx context.Context, fn func(context.Context, repository.Repositories) error) error {
	return fn(ctx, s.repos)
}

func newStubService() (*artUC.Service, *stubArticles) {
	authors := &stubAuthors{data: map[int64]*entity.Author{}, nextID: 1}
	keywords := &stubKeywords{data: map[int64]*entity.Keyword{}, nextID: 1}
	articles := &stubArticles{
		data:        map[int64]*entity.Article{},
		nextID:      1,
		artAuthors:  map[int64][]int64{},
		artKeywords: map[int64][]int64{},
		authors:     authors,
		keywords:    keywords,
	}
	repos := repository.Repositories{Articles: articles, Authors: authors, Keywords: keywords}
	return &artUC.Service{Tx: stubTx{repos: repos}, Repo: articles}, articles
}

const createPayload = `{
	"headline": "Launch day",
	"description": "short teaser",
	"mainText": "the full text",
	"publishedOn": "2026-01-15",
	"authors": [{"firstName": "Ada", "lastName": "Lovelace"}],
	"keywords": [{"name": "tech"}]
}`

func createArticle(t *testing.T, svc *artUC.Service, payload string) article.DTO {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/articles", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	article.CreateHandler{Svc: svc}.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("create status = %d, body %s", rr.Code, rr.Body.String())
	}
	var dto article.DTO
	if err := json.NewDecoder(rr.Body).Decode(&dto); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return dto
}

/* ───────── create ───────── */

func TestCreateHandler_Success(t *testing.T) {
	svc, _ := newStubService()

	dto := createArticle(t, svc, createPayload)
	if dto.ID == 0 {
		t.Error("response must carry the assigned article id")
	}
	if dto.Headline != "Launch day" {
		t.Errorf("dto.Headline = %q, want %q", dto.Headline, "Launch day")
	}
	if dto.PublishedOn == nil || *dto.PublishedOn != "2026-01-15" {
		t.Errorf("dto.PublishedOn = %v, want 2026-01-15", dto.PublishedOn)
	}
	if len(dto.Authors) != 1 || dto.Authors[0].ID == 0 {
		t.Errorf("dto.Authors = %+v, want one author with identity", dto.Authors)
	}
	if len(dto.Keywords) != 1 || dto.Keywords[0].ID == 0 {
		t.Errorf("dto.Keywords = %+v, want one keyword with identity", dto.Keywords)
	}
}

func TestCreateHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "malformed json", payload: `{"headline": `},
		{name: "missing headline", payload: `{"description": "x"}`},
		{name: "bad date", payload: `{"headline": "x", "publishedOn": "15.01.2026"}`},
		{name: "headline too long", payload: fmt.Sprintf(`{"headline": %q}`, strings.Repeat("a", 301))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newStubService()
			req := httptest.NewRequest(http.MethodPut, "/articles", strings.NewReader(tt.payload))
			rr := httptest.NewRecorder()

			article.CreateHandler{Svc: svc}.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestCreateHandler_KeywordConflict(t *testing.T) {
	svc, _ := newStubService()
	createArticle(t, svc, createPayload)

	req := httptest.NewRequest(http.MethodPut, "/articles",
		strings.NewReader(`{"headline": "second", "keywords": [{"name": "tech"}]}`))
	rr := httptest.NewRecorder()
	article.CreateHandler{Svc: svc}.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusConflict)
	}
}

/* ───────── update ───────── */

func TestUpdateHandler_Success(t *testing.T) {
	svc, _ := newStubService()
	created := createArticle(t, svc, createPayload)

	payload := `{"headline": "Revised", "keywords": [{"id": 1}]}`
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/articles/%d", created.ID),
		strings.NewReader(payload))
	rr := httptest.NewRecorder()
	article.UpdateHandler{Svc: svc}.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, body %s", rr.Code, rr.Body.String())
	}
	var dto article.DTO
	if err := json.NewDecoder(rr.Body).Decode(&dto); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if dto.Headline != "Revised" {
		t.Errorf("dto.Headline = %q, want %q", dto.Headline, "Revised")
	}
	if len(dto.Authors) != 0 {
		t.Errorf("omitted authors must be detached, got %+v", dto.Authors)
	}
	if len(dto.Keywords) != 1 || dto.Keywords[0].Name != "tech" {
		t.Errorf("dto.Keywords = %+v, want the retained keyword", dto.Keywords)
	}
}

func TestUpdateHandler_MissingArticle(t *testing.T) {
	svc, _ := newStubService()

	req := httptest.NewRequest(http.MethodPost, "/articles/999",
		strings.NewReader(`{"headline": "x"}`))
	rr := httptest.NewRecorder()
	article.UpdateHandler{Svc: svc}.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestUpdateHandler_InvalidID(t *testing.T) {
	svc, _ := newStubService()

	req := httptest.NewRequest(http.MethodPost, "/articles/abc",
		strings.NewReader(`{"headline": "x"}`))
	rr := httptest.NewRecorder()
	article.UpdateHandler{Svc: svc}.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

/* ───────── delete ───────── */

func TestDeleteHandler_AcceptedThenNotFound(t *testing.T) {
	svc, _ := newStubService()
	created := createArticle(t, svc, createPayload)

	path := fmt.Sprintf("/articles/%d", created.ID)
	rr := httptest.NewRecorder()
	article.DeleteHandler{Svc: svc}.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, path, nil))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("first delete status = %d, want %d", rr.Code, http.StatusAccepted)
	}

	rr = httptest.NewRecorder()
	article.DeleteHandler{Svc: svc}.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, path, nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

/* ───────── get ───────── */

func TestGetHandler_Success(t *testing.T) {
	svc, _ := newStubService()
	created := createArticle(t, svc, createPayload)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/articles/%d", created.ID), nil)
	rr := httptest.NewRecorder()
	article.GetHandler{Svc: svc}.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	var dto article.DTO
	if err := json.NewDecoder(rr.Body).Decode(&dto); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if dto.ID != created.ID || len(dto.Authors) != 1 {
		t.Errorf("dto = %+v, want hydrated article %d", dto, created.ID)
	}
}

func TestGetHandler_AbsentIsNoContent(t *testing.T) {
	svc, _ := newStubService()

	req := httptest.NewRequest(http.MethodGet, "/articles/999", nil)
	rr := httptest.NewRecorder()
	article.GetHandler{Svc: svc}.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestGetHandler_InvalidID(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "zero id", path: "/articles/0"},
		{name: "negative id", path: "/articles/-1"},
		{name: "non-numeric id", path: "/articles/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newStubService()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()

			article.GetHandler{Svc: svc}.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

/* ───────── lookups ───────── */

func TestByAuthorHandler(t *testing.T) {
	svc, _ := newStubService()
	created := createArticle(t, svc, createPayload)
	authorID := created.Authors[0].ID

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/articles/author/%d", authorID), nil)
	rr := httptest.NewRecorder()
	article.ByAuthorHandler{Svc: svc}.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	var dtos []article.DTO
	if err := json.NewDecoder(rr.Body).Decode(&dtos); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(dtos) != 1 || dtos[0].ID != created.ID {
		t.Errorf("dtos = %+v, want the created article", dtos)
	}
}

func TestByAuthorHandler_UnknownAuthorIsEmptyList(t *testing.T) {
	svc, _ := newStubService()

	req := httptest.NewRequest(http.MethodGet, "/articles/author/999", nil)
	rr := httptest.NewRecorder()
	article.ByAuthorHandler{Svc: svc}.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Errorf("body = %s, want empty JSON array", body)
	}
}

func TestByKeywordHandler_CaseInsensitive(t *testing.T) {
	svc, _ := newStubService()
	created := createArticle(t, svc, createPayload)

	req := httptest.NewRequest(http.MethodGet, "/articles/keyword/TECH", nil)
	rr := httptest.NewRecorder()
	article.ByKeywordHandler{Svc: svc}.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	var dtos []article.DTO
	if err := json.NewDecoder(rr.Body).Decode(&dtos); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(dtos) != 1 || dtos[0].ID != created.ID {
		t.Errorf("dtos = %+v, want the tagged article", dtos)
	}
}

func TestByDateRangeHandler(t *testing.T) {
	svc, _ := newStubService()
	created := createArticle(t, svc, createPayload) // published on 2026-01-15

	req := httptest.NewRequest(http.MethodGet, "/articles/date/2026-01-01/2026-02-01", nil)
	rr := httptest.NewRecorder()
	article.ByDateRangeHandler{Svc: svc}.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	var dtos []article.DTO
	if err := json.NewDecoder(rr.Body).Decode(&dtos); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(dtos) != 1 || dtos[0].ID != created.ID {
		t.Errorf("dtos = %+v, want the published article", dtos)
	}
}

func TestByDateRangeHandler_BadRanges(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "from equals to", path: "/articles/date/2026-01-01/2026-01-01"},
		{name: "from after to", path: "/articles/date/2026-02-01/2026-01-01"},
		{name: "malformed from", path: "/articles/date/01.01.2026/2026-02-01"},
		{name: "missing to", path: "/articles/date/2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newStubService()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()

			article.ByDateRangeHandler{Svc: svc}.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}
