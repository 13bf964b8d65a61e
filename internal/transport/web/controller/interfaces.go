package controller

import (
	"context"

	"news_briefing/internal/domain"
)

type FilterFetcher interface {
	FetchByFilter(ctx context.Context, filter domain.Filter, slot domain.TimeSlot) (domain.View, error)
}

type ArticleGetter interface {
	Get(id domain.ArticleID) (domain.Article, bool)
}

type ContentResolver interface {
	ResolveContent(ctx context.Context, id domain.ArticleID) (domain.ReadableContent, error)
}

type TagSetter interface {
	SetArticleTags(ctx context.Context, id domain.ArticleID, desired []string) (domain.Article, error)
}

type ReadMarker interface {
	MarkAllAsRead(ctx context.Context, ids []domain.ArticleID) (int, error)
}

type ReaderSelector interface {
	SelectArticle(id domain.ArticleID) error
	CloseReader()
	Selection() (domain.ArticleID, bool)
}

type FilterOptionsProvider interface {
	FilterOptions() domain.FilterOptions
}

type Refresher interface {
	Refresh(ctx context.Context) (domain.FilterOptions, error)
}

type StarredLister interface {
	StarredArticles() []domain.Article
}
