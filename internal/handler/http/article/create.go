package article

import (
	"errors"
	"net/http"

	"newsapi/internal/domain/entity"
	"newsapi/internal/handler/http/respond"
	artUC "newsapi/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates an article
// @Summary      Create article
// @Description  Creates a new article together with its author and keyword associations
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body request true "Article payload"
// @Success      200 {object} DTO "Created article with store-assigned identities"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      409 {string} string "Conflict - constraint violation"
// @Router       /articles [put]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, err := decodeRequest(r.Body)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		respond.SafeError(w, statusFor(err, http.StatusInternalServerError), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(created))
}

// statusFor maps the use case error taxonomy to an HTTP status, falling back
// to the given code for unclassified errors.
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidInput), errors.Is(err, artUC.ErrInvalidArticleID):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	}
	return fallback
}
