// Package freshrss talks to a FreshRSS instance through its Google Reader
// compatible API.
package freshrss

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"news_briefing/internal/domain"
	"news_briefing/internal/tags"
)

const (
	longIDPrefix = "tag:google.com,2005:reader/item/"
	apiPrefix    = "/reader/api/0"
)

// Config holds FreshRSS client configuration.
type Config struct {
	BaseURL        string
	Username       string
	Password       string
	PageSize       int
	MaxPages       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client implements the feed backend for the session.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	username       string
	password       string
	pageSize       int
	maxPages       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger

	mu   sync.Mutex
	auth string
}

// errUnauthorized forces a fresh ClientLogin on the next attempt.
var errUnauthorized = errors.New("unauthorized")

// statusError is a reply with a status other than 200 and 401.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.code)
}

// retryable reports whether another attempt can change the outcome. Client
// errors are final except for timeouts and rate limiting.
func retryable(err error) bool {
	if errors.Is(err, domain.ErrMalformedResponse) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError ||
			se.code == http.StatusRequestTimeout ||
			se.code == http.StatusTooManyRequests
	}
	return true
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		username:       cfg.Username,
		password:       cfg.Password,
		pageSize:       max(cfg.PageSize, 1),
		maxPages:       max(cfg.MaxPages, 1),
		maxAttempts:    max(cfg.MaxAttempts, 1),
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "freshrss"),
	}
}

// FetchItemsByLabel returns minimal articles of the user/-/label/<name> stream.
func (c *Client) FetchItemsByLabel(ctx context.Context, label string) ([]domain.Article, error) {
	return c.fetchStream(ctx, tags.Label(label))
}

// FetchStarredItems returns minimal articles of the starred stream, most
// recently starred first.
func (c *Client) FetchStarredItems(ctx context.Context) ([]domain.Article, error) {
	return c.fetchStream(ctx, tags.Starred)
}

// FetchItemStates returns the tag list of each requested id the backend knows.
func (c *Client) FetchItemStates(ctx context.Context, ids []domain.ArticleID) (map[domain.ArticleID][]string, error) {
	states := make(map[domain.ArticleID][]string, len(ids))
	if len(ids) == 0 {
		return states, nil
	}

	form := url.Values{}
	for _, id := range ids {
		form.Add("i", LongID(id))
	}

	var resp StreamResponse
	err := c.withRetry(ctx, "item states", func() error {
		return c.doJSON(ctx, http.MethodPost, apiPrefix+"/stream/items/contents?output=json", form, &resp)
	})
	if err != nil {
		return nil, err
	}

	for _, item := range resp.Items {
		states[ShortID(item.ID)] = tags.Normalize(item.Categories)
	}
	return states, nil
}

// SetStarred adds or removes the starred state tag on one item.
func (c *Client) SetStarred(ctx context.Context, id domain.ArticleID, starred bool) error {
	if starred {
		return c.EditTags(ctx, []domain.ArticleID{id}, []string{tags.Starred}, nil)
	}
	return c.EditTags(ctx, []domain.ArticleID{id}, nil, []string{tags.Starred})
}

// SetRead adds or removes the read state tag on a batch of items.
func (c *Client) SetRead(ctx context.Context, ids []domain.ArticleID, read bool) error {
	if read {
		return c.EditTags(ctx, ids, []string{tags.Read}, nil)
	}
	return c.EditTags(ctx, ids, nil, []string{tags.Read})
}

// EditTags applies one edit-tag call. The action token is fetched right
// before the edit and both are retried together.
func (c *Client) EditTags(ctx context.Context, ids []domain.ArticleID, add, remove []string) error {
	if len(ids) == 0 || (len(add) == 0 && len(remove) == 0) {
		return nil
	}

	return c.withRetry(ctx, "edit tags", func() error {
		token, err := c.actionToken(ctx)
		if err != nil {
			return err
		}

		form := url.Values{}
		form.Set("T", token)
		for _, id := range ids {
			form.Add("i", LongID(id))
		}
		for _, t := range add {
			form.Add("a", t)
		}
		for _, t := range remove {
			form.Add("r", t)
		}

		body, err := c.do(ctx, http.MethodPost, apiPrefix+"/edit-tag", form)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(body)) != "OK" {
			return fmt.Errorf("%w: edit-tag replied %q", domain.ErrMalformedResponse, truncate(string(body), 64))
		}
		return nil
	})
}

// ListLabels returns user labels with their unread counts.
func (c *Client) ListLabels(ctx context.Context) ([]domain.LabelCount, error) {
	var resp TagListResponse
	err := c.withRetry(ctx, "tag list", func() error {
		return c.doJSON(ctx, http.MethodGet, apiPrefix+"/tag/list?output=json&with_counts=1", nil, &resp)
	})
	if err != nil {
		return nil, err
	}

	labels := make([]domain.LabelCount, 0, len(resp.Tags))
	for _, t := range resp.Tags {
		name, ok := tags.LabelName(t.ID)
		if !ok {
			continue
		}
		labels = append(labels, domain.LabelCount{Name: name, UnreadCount: t.UnreadCount})
	}
	return labels, nil
}

func (c *Client) fetchStream(ctx context.Context, streamID string) ([]domain.Article, error) {
	var items []Item
	continuation := ""

	for page := 0; page < c.maxPages; page++ {
		path := fmt.Sprintf("%s/stream/contents/%s?output=json&n=%d", apiPrefix, escapeStreamID(streamID), c.pageSize)
		if continuation != "" {
			path += "&c=" + url.QueryEscape(continuation)
		}

		var resp StreamResponse
		err := c.withRetry(ctx, "stream contents", func() error {
			return c.doJSON(ctx, http.MethodGet, path, nil, &resp)
		})
		if err != nil {
			return nil, fmt.Errorf("fetch stream %s page %d: %w", streamID, page, err)
		}

		items = append(items, resp.Items...)

		c.logger.Debug("fetched stream page",
			"stream", streamID,
			"page", page,
			"items", len(resp.Items),
			"total", len(items),
		)

		if resp.Continuation == "" {
			break
		}
		continuation = resp.Continuation
	}

	return c.transform(items), nil
}

func (c *Client) actionToken(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, apiPrefix+"/token", nil)
	if err != nil {
		return "", fmt.Errorf("fetch action token: %w", err)
	}
	token := strings.TrimSpace(string(body))
	if token == "" {
		return "", fmt.Errorf("%w: empty action token", domain.ErrMalformedResponse)
	}
	return token, nil
}

func (c *Client) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if errors.Is(err, errUnauthorized) {
			c.resetAuth()
		}
		if !retryable(err) || attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"op", op,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w: %w", op, domain.ErrUpstreamUnavailable, ctx.Err())
		case <-time.After(backoff):
		}
	}

	if errors.Is(err, domain.ErrMalformedResponse) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !retryable(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUpstreamUnavailable, err)
	}
	return fmt.Errorf("%s after %d attempts: %w: %w", op, c.maxAttempts, domain.ErrUpstreamUnavailable, err)
}

func (c *Client) doJSON(ctx context.Context, method, path string, form url.Values, out any) error {
	body, err := c.do(ctx, method, path, form)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrMalformedResponse, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values) ([]byte, error) {
	auth, err := c.authToken(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "GoogleLogin auth="+auth)
	req.Header.Set("User-Agent", "NewsBriefing/1.0")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}

func (c *Client) authToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.auth != "" {
		return c.auth, nil
	}

	form := url.Values{}
	form.Set("Email", c.username)
	form.Set("Passwd", c.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/accounts/ClientLogin", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login: %w", &statusError{code: resp.StatusCode})
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read login response: %w", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if v, ok := strings.CutPrefix(strings.TrimSpace(scanner.Text()), "Auth="); ok && v != "" {
			c.auth = v
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: login response carries no Auth line", domain.ErrMalformedResponse)
}

func (c *Client) resetAuth() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.auth = ""
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) transform(items []Item) []domain.Article {
	articles := make([]domain.Article, 0, len(items))

	for _, it := range items {
		id := ShortID(it.ID)
		if id == "" {
			c.logger.Warn("skipping item without id", "title", it.Title)
			continue
		}

		a := domain.Article{
			ID:         id,
			Title:      it.Title,
			SourceName: it.Origin.Title,
			Tags:       tags.Normalize(it.Categories),
		}
		if len(it.Alternate) > 0 {
			a.Link = it.Alternate[0].Href
		} else if len(it.Canonical) > 0 {
			a.Link = it.Canonical[0].Href
		}
		if it.Published > 0 {
			a.PublishedAt = time.Unix(it.Published, 0).UTC()
		}
		if ms, err := strconv.ParseInt(it.CrawlTimeMsec, 10, 64); err == nil && ms > 0 {
			a.CrawledAt = time.UnixMilli(ms).UTC()
		}

		articles = append(articles, a)
	}

	return articles
}

// ShortID converts a long-form item id to its decimal form, the id the
// content database uses. Other ids are returned unchanged.
func ShortID(id string) domain.ArticleID {
	hex, ok := strings.CutPrefix(id, longIDPrefix)
	if !ok {
		return domain.ArticleID(id)
	}
	n, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return domain.ArticleID(id)
	}
	return domain.ArticleID(strconv.FormatUint(n, 10))
}

// LongID is the inverse of ShortID for decimal ids.
func LongID(id domain.ArticleID) string {
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return string(id)
	}
	return fmt.Sprintf("%s%016x", longIDPrefix, n)
}

func escapeStreamID(streamID string) string {
	parts := strings.Split(streamID, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
