package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"news_briefing/internal/domain"
)

type ArticleContentGet struct {
	Resolver ContentResolver
}

func (c ArticleContentGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := domain.ArticleID(mux.Vars(r)["article_id"])

	content, err := c.Resolver.ResolveContent(r.Context(), id)
	if err != nil {
		writeError(w, r, "unable to resolve article content", err)
		return
	}

	writeJSON(w, r, http.StatusOK, content)
}
