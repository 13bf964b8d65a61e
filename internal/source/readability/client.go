// Package readability calls the content-extraction service that turns an
// article URL into clean reader HTML.
package readability

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"news_briefing/internal/domain"
)

type Config struct {
	BaseURL          string
	Timeout          time.Duration
	MinContentLength int
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	minLength  int
	logger     *slog.Logger
}

type response struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Source  string `json:"source"`
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		minLength:  cfg.MinContentLength,
		logger:     logger.With("source", "readability"),
	}
}

// FetchReadableContent extracts the article at link. Replies whose HTML holds
// less visible text than the configured minimum are ErrMalformedResponse.
func (c *Client) FetchReadableContent(ctx context.Context, link string) (domain.ReadableContent, error) {
	endpoint := c.baseURL + "?url=" + url.QueryEscape(link)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.ReadableContent{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ReadableContent{}, fmt.Errorf("%w: execute request: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ReadableContent{}, fmt.Errorf("%w: unexpected status: %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.ReadableContent{}, fmt.Errorf("%w: decode response: %v", domain.ErrMalformedResponse, err)
	}

	if n := TextLength(body.Content); n < c.minLength {
		return domain.ReadableContent{}, fmt.Errorf("%w: extracted text too short (%d chars)", domain.ErrMalformedResponse, n)
	}

	return domain.ReadableContent{
		Title:   body.Title,
		Content: body.Content,
		Source:  body.Source,
		Origin:  domain.ContentOriginReadability,
	}, nil
}

// TextLength counts the visible characters of an HTML fragment.
func TextLength(fragment string) int {
	z := html.NewTokenizer(strings.NewReader(fragment))
	n := 0
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return n
		case html.StartTagToken:
			if name, _ := z.TagName(); isInvisible(string(name)) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isInvisible(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				n += len([]rune(strings.TrimSpace(string(z.Text()))))
			}
		}
	}
}

func isInvisible(tag string) bool {
	return tag == "script" || tag == "style" || tag == "noscript"
}
