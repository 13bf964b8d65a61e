package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"news_briefing/internal/domain"
)

type ArticleGet struct {
	Articles ArticleGetter
}

func (c ArticleGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := domain.ArticleID(mux.Vars(r)["article_id"])

	article, ok := c.Articles.Get(id)
	if !ok {
		writeError(w, r, "article not in session", fmt.Errorf("article %s: %w", id, domain.ErrNotFound))
		return
	}

	writeJSON(w, r, http.StatusOK, article)
}
