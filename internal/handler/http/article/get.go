package article

import (
	"net/http"

	"newsapi/internal/handler/http/pathutil"
	"newsapi/internal/handler/http/respond"
	artUC "newsapi/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP fetches an article
// @Summary      Get article
// @Description  Returns the article with its authors and keywords
// @Tags         articles
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} DTO "Hydrated article"
// @Success      204 "No Content - no article with that id"
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	found, err := h.Svc.FindOne(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err, http.StatusInternalServerError), err)
		return
	}
	if found == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(found))
}
