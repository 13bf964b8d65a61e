package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/feeds"

	"news_briefing/internal/domain"
)

// StarredRSS exports the session's starred articles as RSS 2.0.
type StarredRSS struct {
	FeedLink        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Starred         StarredLister
}

func (c StarredRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Starred briefing articles",
		Link:        &feeds.Link{Href: c.FeedLink},
		Description: "Articles starred in the briefing reader",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	for _, a := range c.Starred.StarredArticles() {
		description := a.TLDR
		if description == "" {
			description = a.Summary
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          string(a.ID),
			IsPermaLink: "false",
			Title:       a.Title,
			Link:        &feeds.Link{Href: a.Link},
			Description: description,
			Author:      &feeds.Author{Name: a.SourceName},
			Created:     a.PublishedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
