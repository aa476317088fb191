package article

import (
	"net/http"

	artUC "newsapi/internal/usecase/article"
)

// Register registers the article HTTP handlers with the given mux. The more
// specific lookup prefixes are registered alongside the catch-all
// "/articles/" so the mux routes them by longest pattern.
func Register(mux *http.ServeMux, svc *artUC.Service) {
	mux.Handle("PUT    /articles", CreateHandler{Svc: svc})
	mux.Handle("POST   /articles/", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /articles/", DeleteHandler{Svc: svc})

	mux.Handle("GET    /articles/author/", ByAuthorHandler{Svc: svc})
	mux.Handle("GET    /articles/keyword/", ByKeywordHandler{Svc: svc})
	mux.Handle("GET    /articles/date/", ByDateRangeHandler{Svc: svc})
	mux.Handle("GET    /articles/", GetHandler{Svc: svc})
}
