package router

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news_briefing/internal/transport/web/controller"
)

// Session is everything the routes need from the reader session.
type Session interface {
	controller.FilterFetcher
	controller.ArticleGetter
	controller.ContentResolver
	controller.TagSetter
	controller.ReadMarker
	controller.ReaderSelector
	controller.FilterOptionsProvider
	controller.Refresher
	controller.StarredLister
}

func MakeRouter(
	session Session,
	rssFeedLink, rssFeedAuthorName, rssFeedAuthorEmail string,
	logger *slog.Logger,
) http.Handler {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(loggingMiddleware(logger))

	r.Handle("/v1/briefings", controller.BriefingsGet{
		Fetcher: session,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles", controller.ArticlesList{
		Fetcher: session,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/read", controller.ArticlesMarkRead{
		Marker: session,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}", controller.ArticleGet{
		Articles: session,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}/content", controller.ArticleContentGet{
		Resolver: session,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}/tags", controller.ArticleTagsSet{
		Setter: session,
	}).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}/select", controller.ArticleSelect{
		Reader: session,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/reader", controller.ReaderClose{
		Reader: session,
	}).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/v1/filters", controller.FiltersGet{
		Options: session,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/refresh", controller.Refresh{
		Refresher: session,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/rss/starred", controller.StarredRSS{
		FeedLink:        rssFeedLink,
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		Starred:         session,
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
