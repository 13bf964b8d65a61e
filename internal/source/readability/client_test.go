package readability

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_briefing/internal/domain"
)

func newClient(t *testing.T, h http.HandlerFunc) *Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/api/readability", Timeout: time.Second, MinContentLength: 20},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTextLength(t *testing.T) {
	assert.Equal(t, 0, TextLength(""))
	assert.Equal(t, 5, TextLength("<p>hello</p>"))
	assert.Equal(t, 5, TextLength("<div><script>var x = 1;</script><p> hello </p><style>p{}</style></div>"))
	assert.Equal(t, 4, TextLength("<p>你好世界</p>"))
}

func TestFetchReadableContent(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/readability", r.URL.Path)
		assert.Equal(t, "https://example.com/a?b=1", r.URL.Query().Get("url"))
		_, _ = io.WriteString(w, `{"title":"T","content":"<p>A long enough paragraph of text.</p>","source":"Example"}`)
	})

	got, err := c.FetchReadableContent(context.Background(), "https://example.com/a?b=1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReadableContent{
		Title:   "T",
		Content: "<p>A long enough paragraph of text.</p>",
		Source:  "Example",
		Origin:  domain.ContentOriginReadability,
	}, got)
}

func TestFetchReadableContent_NearEmptyIsMalformed(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"title":"T","content":"<div><p> </p></div>"}`)
	})

	_, err := c.FetchReadableContent(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestFetchReadableContent_Upstream(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.FetchReadableContent(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
