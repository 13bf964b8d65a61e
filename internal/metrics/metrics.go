package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Filter fetches by filter type and outcome (ok, empty, error, stale).
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "briefing_fetches_total",
			Help: "Total number of filter fetches",
		},
		[]string{"filter", "outcome"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "briefing_fetch_duration_seconds",
			Help:    "Filter fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"filter"},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "briefing_cache_lookups_total",
			Help: "Session cache lookups by result",
		},
		[]string{"result"},
	)

	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "briefing_mutations_total",
			Help: "Article state mutations by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	RemoteCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "briefing_remote_calls_total",
			Help: "Feed backend write calls by action and status",
		},
		[]string{"action", "status"},
	)

	RefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "briefing_refreshes_total",
			Help: "Filter metadata refreshes by status",
		},
		[]string{"status"},
	)

	StoreArticles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "briefing_store_articles",
			Help: "Number of articles held by the session store",
		},
	)
)
