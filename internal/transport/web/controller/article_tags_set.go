package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"news_briefing/internal/domain"
)

type ArticleTagsSet struct {
	Setter TagSetter
}

type articleTagsRequest struct {
	Tags []string `json:"tags"`
}

func (c ArticleTagsSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := domain.ArticleID(mux.Vars(r)["article_id"])

	var body articleTagsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, "unable to decode request body", fmt.Errorf("%w: %v", domain.ErrValidation, err))
		return
	}

	article, err := c.Setter.SetArticleTags(r.Context(), id, body.Tags)
	if err != nil {
		writeError(w, r, "unable to set article tags", err)
		return
	}

	writeJSON(w, r, http.StatusOK, article)
}
