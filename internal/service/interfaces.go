package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"news_briefing/internal/cache"
	"news_briefing/internal/domain"
)

// ContentSource serves enriched articles from the content database.
type ContentSource interface {
	FetchArticlesInWindow(ctx context.Context, start, end time.Time) ([]domain.Article, error)
	FetchArticleDetailsByIDs(ctx context.Context, ids []domain.ArticleID) (map[domain.ArticleID]domain.Article, error)
	AvailableDates(ctx context.Context, limit int) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
}

// FeedBackend reads minimal articles and their mutable state from the feed reader.
type FeedBackend interface {
	FetchItemsByLabel(ctx context.Context, label string) ([]domain.Article, error)
	FetchStarredItems(ctx context.Context) ([]domain.Article, error)
	FetchItemStates(ctx context.Context, ids []domain.ArticleID) (map[domain.ArticleID][]string, error)
	ListLabels(ctx context.Context) ([]domain.LabelCount, error)
}

// StateEditor writes article state back to the feed reader.
type StateEditor interface {
	SetStarred(ctx context.Context, id domain.ArticleID, starred bool) error
	SetRead(ctx context.Context, ids []domain.ArticleID, read bool) error
	EditTags(ctx context.Context, ids []domain.ArticleID, add, remove []string) error
}

type ReadableSource interface {
	FetchReadableContent(ctx context.Context, link string) (domain.ReadableContent, error)
}

type SessionCache interface {
	Get(ctx context.Context, key string) (*cache.Entry, bool, error)
	Set(ctx context.Context, key string, e *cache.Entry) error
}

type Publisher interface {
	PublishStateChange(ctx context.Context, change domain.StateChange) error
}
