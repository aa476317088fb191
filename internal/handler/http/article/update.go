package article

import (
	"net/http"

	"newsapi/internal/handler/http/pathutil"
	"newsapi/internal/handler/http/respond"
	artUC "newsapi/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP updates an article
// @Summary      Update article
// @Description  Overwrites the article's fields and replaces its author and keyword sets
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id path int true "Article ID"
// @Param        article body request true "Article payload"
// @Success      200 {object} DTO "Updated article"
// @Success      204 "No Content - no article with that id"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      409 {string} string "Conflict - constraint violation"
// @Router       /articles/{id} [post]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	in, err := decodeRequest(r.Body)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := h.Svc.Update(r.Context(), id, in)
	if err != nil {
		respond.SafeError(w, statusFor(err, http.StatusInternalServerError), err)
		return
	}
	if updated == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated))
}
