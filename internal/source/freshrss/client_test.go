package freshrss

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_briefing/internal/domain"
	"news_briefing/internal/tags"
)

type fakeReader struct {
	mu          sync.Mutex
	logins      int
	tokens      int
	edits       []url.Values
	editStatus  int
	streamPaths []string
}

func (f *fakeReader) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/accounts/ClientLogin", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "alice", r.PostForm.Get("Email"))
		f.mu.Lock()
		f.logins++
		f.mu.Unlock()
		_, _ = io.WriteString(w, "SID=sid\nLSID=lsid\nAuth=alice/secret\n")
	})

	mux.HandleFunc("/reader/api/0/token", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.tokens++
		f.mu.Unlock()
		_, _ = io.WriteString(w, "action-token\n")
	})

	mux.HandleFunc("/reader/api/0/edit-tag", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GoogleLogin auth=alice/secret", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())

		f.mu.Lock()
		f.edits = append(f.edits, r.PostForm)
		status := f.editStatus
		f.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			return
		}
		_, _ = io.WriteString(w, "OK")
	})

	mux.HandleFunc("/reader/api/0/stream/items/contents", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, []string{LongID("1"), LongID("2")}, r.PostForm["i"])
		_, _ = io.WriteString(w, `{"items":[
			{"id":"`+LongID("1")+`","categories":["user/1000/state/com.google/read","user/1000/label/AI"]}
		]}`)
	})

	mux.HandleFunc("/reader/api/0/stream/contents/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.streamPaths = append(f.streamPaths, r.URL.Path)
		f.mu.Unlock()

		if r.URL.Query().Get("c") == "" {
			_, _ = io.WriteString(w, `{"items":[
				{"id":"`+LongID("7")+`","title":"Seven","published":1761613200,"crawlTimeMsec":"1761613200123",
				 "alternate":[{"href":"https://example.com/7"}],"origin":{"title":"Example Feed"},
				 "categories":["user/1000/label/AI"]}
			],"continuation":"next"}`)
			return
		}
		_, _ = io.WriteString(w, `{"items":[{"id":"8","title":"Eight","canonical":[{"href":"https://example.com/8"}]}]}`)
	})

	mux.HandleFunc("/reader/api/0/tag/list", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"tags":[
			{"id":"user/-/state/com.google/starred"},
			{"id":"user/1000/label/AI","type":"folder","unread_count":3},
			{"id":"user/-/label/Chips","type":"tag"}
		]}`)
	})

	return mux
}

func newTestClient(t *testing.T, f *fakeReader) *Client {
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	return New(Config{
		BaseURL:        srv.URL + "/",
		Username:       "alice",
		Password:       "pw",
		PageSize:       50,
		MaxPages:       3,
		Timeout:        5 * time.Second,
		MaxAttempts:    2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestIDs(t *testing.T) {
	assert.Equal(t, "tag:google.com,2005:reader/item/000000000000001f", LongID("31"))
	assert.Equal(t, domain.ArticleID("31"), ShortID("tag:google.com,2005:reader/item/000000000000001f"))
	assert.Equal(t, domain.ArticleID("31"), ShortID("31"))
	assert.Equal(t, "abc", LongID("abc"))
}

func TestFetchItemsByLabel_FollowsContinuation(t *testing.T) {
	f := &fakeReader{}
	c := newTestClient(t, f)

	articles, err := c.FetchItemsByLabel(context.Background(), "AI")
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, domain.ArticleID("7"), articles[0].ID)
	assert.Equal(t, "Seven", articles[0].Title)
	assert.Equal(t, "https://example.com/7", articles[0].Link)
	assert.Equal(t, "Example Feed", articles[0].SourceName)
	assert.Equal(t, time.Unix(1761613200, 0).UTC(), articles[0].PublishedAt)
	assert.Equal(t, time.UnixMilli(1761613200123).UTC(), articles[0].CrawledAt)
	assert.Equal(t, []string{"user/-/label/AI"}, articles[0].Tags)

	assert.Equal(t, domain.ArticleID("8"), articles[1].ID)
	assert.Equal(t, "https://example.com/8", articles[1].Link)

	assert.Equal(t, "/reader/api/0/stream/contents/user/-/label/AI", f.streamPaths[0])
	assert.Equal(t, 1, f.logins, "auth token is reused")
}

func TestFetchItemStates(t *testing.T) {
	c := newTestClient(t, &fakeReader{})

	states, err := c.FetchItemStates(context.Background(), []domain.ArticleID{"1", "2"})
	require.NoError(t, err)

	assert.Equal(t, map[domain.ArticleID][]string{
		"1": {tags.Read, "user/-/label/AI"},
	}, states)
}

func TestEditTags_FetchesTokenPerAttempt(t *testing.T) {
	f := &fakeReader{}
	c := newTestClient(t, f)

	err := c.EditTags(context.Background(), []domain.ArticleID{"1"}, []string{"user/-/label/AI"}, []string{"user/-/label/Old"})
	require.NoError(t, err)

	require.Len(t, f.edits, 1)
	assert.Equal(t, "action-token", f.edits[0].Get("T"))
	assert.Equal(t, []string{LongID("1")}, f.edits[0]["i"])
	assert.Equal(t, []string{"user/-/label/AI"}, f.edits[0]["a"])
	assert.Equal(t, []string{"user/-/label/Old"}, f.edits[0]["r"])
	assert.Equal(t, 1, f.tokens)
}

func TestEditTags_UpstreamFailure(t *testing.T) {
	f := &fakeReader{editStatus: http.StatusBadGateway}
	c := newTestClient(t, f)

	err := c.SetStarred(context.Background(), "1", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Len(t, f.edits, 2)
	assert.Equal(t, 2, f.tokens, "token and edit are retried together")
}

func TestEditTags_RetriesOnlyWhenUseful(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		attempts int
	}{
		{name: "bad request", status: http.StatusBadRequest, attempts: 1},
		{name: "forbidden", status: http.StatusForbidden, attempts: 1},
		{name: "not found", status: http.StatusNotFound, attempts: 1},
		{name: "rate limited", status: http.StatusTooManyRequests, attempts: 2},
		{name: "request timeout", status: http.StatusRequestTimeout, attempts: 2},
		{name: "server error", status: http.StatusInternalServerError, attempts: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeReader{editStatus: tt.status}
			c := newTestClient(t, f)

			err := c.SetStarred(context.Background(), "1", true)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
			assert.Len(t, f.edits, tt.attempts)
		})
	}
}

func TestEditTags_NothingToDo(t *testing.T) {
	f := &fakeReader{}
	c := newTestClient(t, f)

	require.NoError(t, c.EditTags(context.Background(), []domain.ArticleID{"1"}, nil, nil))
	require.NoError(t, c.SetRead(context.Background(), nil, true))
	assert.Empty(t, f.edits)
}

func TestSetRead_Batch(t *testing.T) {
	f := &fakeReader{}
	c := newTestClient(t, f)

	require.NoError(t, c.SetRead(context.Background(), []domain.ArticleID{"1", "2"}, true))
	require.Len(t, f.edits, 1)
	assert.Equal(t, []string{LongID("1"), LongID("2")}, f.edits[0]["i"])
	assert.Equal(t, []string{tags.Read}, f.edits[0]["a"])
}

func TestListLabels(t *testing.T) {
	c := newTestClient(t, &fakeReader{})

	labels, err := c.ListLabels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.LabelCount{
		{Name: "AI", UnreadCount: 3},
		{Name: "Chips", UnreadCount: 0},
	}, labels)
}

func TestUnauthorized_RelogsIn(t *testing.T) {
	var logins, calls int
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/ClientLogin", func(w http.ResponseWriter, r *http.Request) {
		logins++
		_, _ = io.WriteString(w, "Auth=token\n")
	})
	mux.HandleFunc("/reader/api/0/tag/list", func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"tags":[]}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, MaxAttempts: 2, Timeout: time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	labels, err := c.ListLabels(context.Background())
	require.NoError(t, err)
	assert.Empty(t, labels)
	assert.Equal(t, 2, logins)
}
