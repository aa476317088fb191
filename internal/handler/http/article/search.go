package article

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"newsapi/internal/handler/http/pathutil"
	"newsapi/internal/handler/http/respond"
	artUC "newsapi/internal/usecase/article"
)

type ByAuthorHandler struct{ Svc *artUC.Service }

// ServeHTTP lists articles by author
// @Summary      List articles by author
// @Description  Returns every article whose author set contains the given author id
// @Tags         articles
// @Produce      json
// @Param        authorId path int true "Author ID"
// @Success      200 {array} DTO "Matching articles, empty when none"
// @Failure      400 {string} string "Bad request - invalid author ID"
// @Router       /articles/author/{authorId} [get]
func (h ByAuthorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathutil.ExtractID(r.URL.Path, "/articles/author/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.Svc.FindByAuthorID(r.Context(), authorID)
	if err != nil {
		respond.SafeError(w, statusFor(err, http.StatusInternalServerError), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

type ByKeywordHandler struct{ Svc *artUC.Service }

// ServeHTTP lists articles by keyword
// @Summary      List articles by keyword
// @Description  Returns every article tagged with the named keyword, matching case-insensitively
// @Tags         articles
// @Produce      json
// @Param        keyword path string true "Keyword name"
// @Success      200 {array} DTO "Matching articles, empty when none"
// @Failure      400 {string} string "Bad request - empty keyword"
// @Router       /articles/keyword/{keyword} [get]
func (h ByKeywordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, err := pathutil.ExtractSegment(r.URL.Path, "/articles/keyword/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.Svc.FindByKeywordName(r.Context(), name)
	if err != nil {
		respond.SafeError(w, statusFor(err, http.StatusInternalServerError), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

type ByDateRangeHandler struct{ Svc *artUC.Service }

// ServeHTTP lists articles by publication date range
// @Summary      List articles by date range
// @Description  Returns every article published between the two dates, inclusive
// @Tags         articles
// @Produce      json
// @Param        from path string true "Range start (YYYY-MM-DD)"
// @Param        to path string true "Range end (YYYY-MM-DD), must be after from"
// @Success      200 {array} DTO "Matching articles, empty when none"
// @Failure      400 {string} string "Bad request - malformed dates or from not before to"
// @Router       /articles/date/{from}/{to} [get]
func (h ByDateRangeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r.URL.Path)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.Svc.FindByDateRange(r.Context(), from, to)
	if err != nil {
		respond.SafeError(w, statusFor(err, http.StatusInternalServerError), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

func parseDateRange(path string) (time.Time, time.Time, error) {
	rest := strings.TrimPrefix(path, "/articles/date/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return time.Time{}, time.Time{}, errors.New("invalid date range path, expected /articles/date/{from}/{to}")
	}
	from, err := time.Parse(DateLayout, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("from must be in YYYY-MM-DD format")
	}
	to, err := time.Parse(DateLayout, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("to must be in YYYY-MM-DD format")
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, errors.New("from must be before to")
	}
	return from, to, nil
}
