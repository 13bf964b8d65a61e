package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news_briefing/internal/domain"
	"news_briefing/internal/service/mocks"
	"news_briefing/internal/store"
)

func newResolver(t *testing.T, a domain.Article) (*ContentResolver, *mocks.MockReadableSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	readable := mocks.NewMockReadableSource(ctrl)

	st := store.New()
	st.UpdateArticle(a)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewContentResolver(st, readable, logger), readable
}

func TestResolveContent_Readability(t *testing.T) {
	a := domain.Article{ID: "1", Title: "Title", Link: "https://example.com/1", SourceName: "Example", Summary: "s"}
	resolver, readable := newResolver(t, a)

	readable.EXPECT().FetchReadableContent(gomock.Any(), a.Link).Return(domain.ReadableContent{
		Content: "<p>full text</p>",
	}, nil)

	got, err := resolver.ResolveContent(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, domain.ReadableContent{
		Title:   "Title",
		Content: "<p>full text</p>",
		Source:  "Example",
		Origin:  domain.ContentOriginReadability,
	}, got)
}

func TestResolveContent_FallsBackToSummary(t *testing.T) {
	a := domain.Article{ID: "1", Title: "Title", Link: "https://example.com/1", TLDR: "short <take>\n\nsecond"}
	resolver, readable := newResolver(t, a)

	readable.EXPECT().FetchReadableContent(gomock.Any(), a.Link).Return(domain.ReadableContent{}, domain.ErrMalformedResponse)

	got, err := resolver.ResolveContent(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, domain.ContentOriginSummary, got.Origin)
	assert.Equal(t, "<p>short &lt;take&gt;</p><p>second</p>", got.Content)
}

func TestResolveContent_FallsBackToLink(t *testing.T) {
	a := domain.Article{ID: "1", Title: "Title", Link: "https://example.com/1?a=1&b=2"}
	resolver, readable := newResolver(t, a)

	readable.EXPECT().FetchReadableContent(gomock.Any(), a.Link).Return(domain.ReadableContent{}, domain.ErrUpstreamUnavailable)

	got, err := resolver.ResolveContent(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, domain.ContentOriginLink, got.Origin)
	assert.Contains(t, got.Content, `href="https://example.com/1?a=1&amp;b=2"`)
}

func TestResolveContent_NonWebLinkIsNotAnAnchor(t *testing.T) {
	a := domain.Article{ID: "1", Title: "Title <b>", Link: "javascript:alert(1)"}
	resolver, _ := newResolver(t, a)

	got, err := resolver.ResolveContent(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, domain.ContentOriginLink, got.Origin)
	assert.Equal(t, "<p>Title &lt;b&gt;</p>", got.Content)
}

func TestLinkPlaceholder(t *testing.T) {
	tests := []struct {
		name    string
		article domain.Article
		want    string
	}{
		{
			name:    "https link",
			article: domain.Article{Title: "Chips", Link: "https://example.com/a"},
			want:    `<p><a href="https://example.com/a" target="_blank" rel="noopener">Chips</a></p>`,
		},
		{
			name:    "link without title",
			article: domain.Article{Link: "http://example.com/a"},
			want:    `<p><a href="http://example.com/a" target="_blank" rel="noopener">http://example.com/a</a></p>`,
		},
		{
			name:    "javascript scheme",
			article: domain.Article{Title: "Chips", Link: "JavaScript:alert(1)"},
			want:    "<p>Chips</p>",
		},
		{
			name:    "data scheme without title",
			article: domain.Article{Link: "data:text/html,<script>x</script>"},
			want:    "<p>No content available.</p>",
		},
		{
			name:    "no link",
			article: domain.Article{},
			want:    "<p>No content available.</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, linkPlaceholder(tt.article))
		})
	}
}

func TestResolveContent_NotFound(t *testing.T) {
	resolver, _ := newResolver(t, domain.Article{ID: "1"})

	_, err := resolver.ResolveContent(context.Background(), "2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
