package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"news_briefing/internal/domain"
)

// ArticlesMarkRead marks the given ids, or every article in view when the
// body carries none, as read.
type ArticlesMarkRead struct {
	Marker ReadMarker
}

type markReadRequest struct {
	IDs []domain.ArticleID `json:"ids"`
}

type markReadResponse struct {
	Changed int `json:"changed"`
}

func (c ArticlesMarkRead) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body markReadRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, "unable to decode request body", fmt.Errorf("%w: %v", domain.ErrValidation, err))
		return
	}

	changed, err := c.Marker.MarkAllAsRead(r.Context(), body.IDs)
	if err != nil {
		writeError(w, r, "unable to mark articles read", err)
		return
	}

	writeJSON(w, r, http.StatusOK, markReadResponse{Changed: changed})
}
