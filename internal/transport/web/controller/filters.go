package controller

import (
	"net/http"
)

type FiltersGet struct {
	Options FilterOptionsProvider
}

func (c FiltersGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, c.Options.FilterOptions())
}

// Refresh reloads filter metadata and re-fetches an active date filter.
type Refresh struct {
	Refresher Refresher
}

func (c Refresh) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	opts, err := c.Refresher.Refresh(r.Context())
	if err != nil {
		writeError(w, r, "unable to refresh", err)
		return
	}

	writeJSON(w, r, http.StatusOK, opts)
}
