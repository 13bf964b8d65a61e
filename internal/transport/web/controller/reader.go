package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"news_briefing/internal/domain"
)

type readerState struct {
	SelectedArticleID domain.ArticleID `json:"selected_article_id"`
	ReaderOpen        bool             `json:"reader_open"`
}

// ArticleSelect opens the reader on an article held by the session.
type ArticleSelect struct {
	Reader ReaderSelector
}

func (c ArticleSelect) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := domain.ArticleID(mux.Vars(r)["article_id"])

	if err := c.Reader.SelectArticle(id); err != nil {
		writeError(w, r, "unable to select article", err)
		return
	}

	selected, open := c.Reader.Selection()
	writeJSON(w, r, http.StatusOK, readerState{SelectedArticleID: selected, ReaderOpen: open})
}

type ReaderClose struct {
	Reader ReaderSelector
}

func (c ReaderClose) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	c.Reader.CloseReader()
	w.WriteHeader(http.StatusNoContent)
}
