package controller

import (
	"fmt"
	"net/http"
	"net/url"

	"news_briefing/internal/domain"
)

// ArticlesList makes a category, tag or starred filter active and returns
// its articles. Exactly one of the three query parameters must be set.
type ArticlesList struct {
	Fetcher FilterFetcher
}

func (c ArticlesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := listFilterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, "unable to parse article filter in query string", err)
		return
	}

	view, err := c.Fetcher.FetchByFilter(r.Context(), filter, domain.SlotAll)
	if err != nil {
		writeError(w, r, "unable to fetch articles", err)
		return
	}

	writeJSON(w, r, http.StatusOK, view)
}

func listFilterFromQuery(q url.Values) (domain.Filter, error) {
	var filters []domain.Filter
	if q.Has("category") {
		filters = append(filters, domain.CategoryFilter(q.Get("category")))
	}
	if q.Has("tag") {
		filters = append(filters, domain.TagFilter(q.Get("tag")))
	}
	if q.Get("starred") == "true" {
		filters = append(filters, domain.StarredFilter())
	}

	if len(filters) != 1 {
		return domain.Filter{}, fmt.Errorf("%w: exactly one of category, tag or starred=true is required", domain.ErrValidation)
	}
	return filters[0], filters[0].Validate()
}
