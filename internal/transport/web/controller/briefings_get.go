package controller

import (
	"fmt"
	"net/http"

	"news_briefing/internal/domain"
)

// BriefingsGet makes a date the active filter and returns its report.
type BriefingsGet struct {
	Fetcher FilterFetcher
}

func (c BriefingsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	slot, err := domain.ParseTimeSlot(q.Get("slot"))
	if err != nil {
		writeError(w, r, "invalid time slot", err)
		return
	}
	if !q.Has("date") {
		writeError(w, r, "missing date", fmt.Errorf("%w: date is required", domain.ErrValidation))
		return
	}

	view, err := c.Fetcher.FetchByFilter(r.Context(), domain.DateFilter(q.Get("date")), slot)
	if err != nil {
		writeError(w, r, "unable to fetch briefing", err)
		return
	}

	writeJSON(w, r, http.StatusOK, view)
}
