package article

import (
	"errors"
	"net/http"

	"newsapi/internal/handler/http/pathutil"
	"newsapi/internal/handler/http/respond"
	artUC "newsapi/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an article
// @Summary      Delete article
// @Description  Deletes the article and detaches its authors and keywords; the author and keyword records stay
// @Tags         articles
// @Param        id path int true "Article ID"
// @Success      202 "Accepted"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      404 {string} string "Not found - no article with that id"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err, http.StatusInternalServerError), err)
		return
	}
	if !deleted {
		respond.SafeError(w, http.StatusNotFound, errors.New("article not found"))
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
