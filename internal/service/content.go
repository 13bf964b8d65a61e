package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/url"
	"strings"

	"news_briefing/internal/domain"
	"news_briefing/internal/store"
)

// ContentResolver picks what the reader pane shows for an article:
// extracted page content, else the enriched summary, else a bare link.
type ContentResolver struct {
	store       *store.Store
	readability ReadableSource
	logger      *slog.Logger
}

func NewContentResolver(st *store.Store, readability ReadableSource, logger *slog.Logger) *ContentResolver {
	return &ContentResolver{
		store:       st,
		readability: readability,
		logger:      logger.With("component", "content"),
	}
}

func (r *ContentResolver) ResolveContent(ctx context.Context, id domain.ArticleID) (domain.ReadableContent, error) {
	a, ok := r.store.Get(id)
	if !ok {
		return domain.ReadableContent{}, fmt.Errorf("resolve content %s: %w", id, domain.ErrNotFound)
	}

	if isWebLink(a.Link) && r.readability != nil {
		content, err := r.readability.FetchReadableContent(ctx, a.Link)
		if err == nil {
			if content.Title == "" {
				content.Title = a.Title
			}
			if content.Source == "" {
				content.Source = a.SourceName
			}
			content.Origin = domain.ContentOriginReadability
			return content, nil
		}
		domain.LoggerFromContext(ctx).Warn("readable content unavailable, falling back",
			"article_id", id,
			"error", err,
		)
	}

	if text := firstNonEmpty(a.Summary, a.TLDR); text != "" {
		return domain.ReadableContent{
			Title:   a.Title,
			Content: paragraphs(text),
			Source:  a.SourceName,
			Origin:  domain.ContentOriginSummary,
		}, nil
	}

	return domain.ReadableContent{
		Title:   a.Title,
		Content: linkPlaceholder(a),
		Source:  a.SourceName,
		Origin:  domain.ContentOriginLink,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// paragraphs renders plain text as escaped HTML paragraphs, one per blank-line block.
func paragraphs(text string) string {
	var b strings.Builder
	for _, block := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(html.EscapeString(block), "\n", "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}

// linkPlaceholder links to the article page. Links that are not http or
// https are never rendered as anchors.
func linkPlaceholder(a domain.Article) string {
	if !isWebLink(a.Link) {
		if strings.TrimSpace(a.Title) == "" {
			return "<p>No content available.</p>"
		}
		return "<p>" + html.EscapeString(a.Title) + "</p>"
	}
	label := a.Title
	if label == "" {
		label = a.Link
	}
	return fmt.Sprintf(`<p><a href="%s" target="_blank" rel="noopener">%s</a></p>`,
		html.EscapeString(a.Link), html.EscapeString(label))
}

func isWebLink(link string) bool {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
