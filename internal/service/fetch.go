package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"news_briefing/internal/cache"
	"news_briefing/internal/config"
	"news_briefing/internal/domain"
	"news_briefing/internal/merge"
	"news_briefing/internal/metrics"
	"news_briefing/internal/store"
	"news_briefing/internal/tags"
)

// Orchestrator turns the active filter into a populated store and view.
// Each FetchByFilter starts a new generation and cancels the previous one;
// results of an old generation never reach the store, the cache or the view.
type Orchestrator struct {
	content ContentSource
	feed    FeedBackend
	cache   SessionCache
	store   *store.Store
	logger  *slog.Logger
	config  config.SessionConfig
	now     func() time.Time

	mu            sync.Mutex
	generation    uint64
	cancel        context.CancelFunc
	view          domain.View
	options       domain.FilterOptions
	starredLoaded bool

	background sync.WaitGroup
}

func NewOrchestrator(
	content ContentSource,
	feed FeedBackend,
	sessionCache SessionCache,
	st *store.Store,
	logger *slog.Logger,
	cfg config.SessionConfig,
) *Orchestrator {
	return &Orchestrator{
		content: content,
		feed:    feed,
		cache:   sessionCache,
		store:   st,
		logger:  logger.With("component", "orchestrator"),
		config:  cfg,
		now:     time.Now,
	}
}

// loadResult is what one fetch produced before it is applied.
type loadResult struct {
	reports  []domain.BriefingReport
	selected string
	articles []domain.Article
}

// FetchByFilter makes filter the active one and returns its view. Fetch
// failures are logged and yield an empty view; only invalid input and
// supersession are returned as errors.
func (o *Orchestrator) FetchByFilter(ctx context.Context, filter domain.Filter, slot domain.TimeSlot) (domain.View, error) {
	return o.fetch(ctx, filter, slot, false)
}

func (o *Orchestrator) fetch(ctx context.Context, filter domain.Filter, slot domain.TimeSlot, bypassCache bool) (domain.View, error) {
	if err := filter.Validate(); err != nil {
		return domain.View{}, err
	}
	if filter.Type != domain.FilterDate {
		slot = domain.SlotAll
	}
	if _, err := domain.ParseTimeSlot(string(slot)); err != nil {
		return domain.View{}, err
	}

	logger := domain.LoggerFromContext(ctx).With("filter", filter.Type, "value", filter.Value, "slot", slot)

	if filter.Type == domain.FilterStarred {
		return o.fetchStarred(ctx, logger)
	}

	key := cache.Key(filter, slot)
	if !bypassCache {
		if entry, ok := o.lookup(ctx, logger, key); ok {
			return o.serveCached(ctx, logger, entry, key, filter, slot)
		}
	}

	gen, fetchCtx := o.begin(ctx, filter, slot)
	start := o.now()
	result, err := o.load(fetchCtx, filter, slot)
	metrics.FetchDuration.WithLabelValues(string(filter.Type)).Observe(time.Since(start).Seconds())

	return o.finish(ctx, logger, gen, filter, key, result, err)
}

// begin opens a new generation for filter, cancelling the one in flight.
func (o *Orchestrator) begin(ctx context.Context, filter domain.Filter, slot domain.TimeSlot) (uint64, context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.beginLocked(ctx, filter, slot)
}

// beginLocked is begin for callers holding o.mu.
func (o *Orchestrator) beginLocked(ctx context.Context, filter domain.Filter, slot domain.TimeSlot) (uint64, context.Context) {
	if o.cancel != nil {
		o.cancel()
	}
	o.generation++

	fetchCtx, cancel := context.WithTimeout(ctx, o.config.RequestTimeout)
	o.cancel = cancel

	o.view = domain.View{
		Filter:     filter,
		Slot:       slot,
		Loading:    true,
		Generation: o.generation,
	}
	return o.generation, fetchCtx
}

// release drops the fetch context of gen. Callers hold o.mu.
func (o *Orchestrator) release(gen uint64) {
	if gen == o.generation && o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}

func (o *Orchestrator) load(ctx context.Context, filter domain.Filter, slot domain.TimeSlot) (loadResult, error) {
	switch filter.Type {
	case domain.FilterDate:
		return o.loadDate(ctx, filter.Value, slot)
	case domain.FilterCategory, domain.FilterTag:
		return o.loadLabel(ctx, labelName(filter.Value))
	default:
		return loadResult{}, fmt.Errorf("load %s: %w", filter.Type, domain.ErrValidation)
	}
}

func (o *Orchestrator) loadDate(ctx context.Context, date string, slot domain.TimeSlot) (loadResult, error) {
	start, end, err := slot.Window(date)
	if err != nil {
		return loadResult{}, err
	}

	articles, err := o.content.FetchArticlesInWindow(ctx, start, end)
	if err != nil {
		return loadResult{}, fmt.Errorf("fetch articles in window: %w", err)
	}
	if len(articles) == 0 {
		return loadResult{reports: []domain.BriefingReport{}}, nil
	}

	states, err := o.feed.FetchItemStates(ctx, merge.IDs(articles))
	if err != nil {
		return loadResult{}, fmt.Errorf("fetch item states: %w", err)
	}
	articles = merge.AttachState(articles, states)

	report := merge.BuildReport(date, slot, articles)
	return loadResult{
		reports:  []domain.BriefingReport{report},
		selected: report.ID,
		articles: articles,
	}, nil
}

func (o *Orchestrator) loadLabel(ctx context.Context, label string) (loadResult, error) {
	articles, err := o.enrichedStream(ctx, func(ctx context.Context) ([]domain.Article, error) {
		return o.feed.FetchItemsByLabel(ctx, label)
	})
	if err != nil {
		return loadResult{}, err
	}
	return loadResult{articles: articles}, nil
}

// enrichedStream fetches minimal articles, overlays their enriched details
// and attaches their state.
func (o *Orchestrator) enrichedStream(ctx context.Context, fetch func(context.Context) ([]domain.Article, error)) ([]domain.Article, error) {
	minimal, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch minimal articles: %w", err)
	}
	if len(minimal) == 0 {
		return []domain.Article{}, nil
	}

	ids := merge.IDs(minimal)

	details, err := o.content.FetchArticleDetailsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch article details: %w", err)
	}
	articles := merge.EnrichMinimal(minimal, details)

	states, err := o.feed.FetchItemStates(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch item states: %w", err)
	}
	return merge.AttachState(articles, states), nil
}

// finish applies a fetch result if gen is still current.
func (o *Orchestrator) finish(ctx context.Context, logger *slog.Logger, gen uint64, filter domain.Filter, key string, result loadResult, loadErr error) (domain.View, error) {
	filterType := string(filter.Type)

	o.mu.Lock()
	if gen != o.generation {
		o.mu.Unlock()
		metrics.FetchesTotal.WithLabelValues(filterType, "stale").Inc()
		logger.Debug("discarding stale fetch", "generation", gen)
		return domain.View{}, domain.ErrSuperseded
	}
	o.release(gen)

	view := o.view
	view.Loading = false
	view.FromCache = false

	if loadErr != nil {
		view.Reports = []domain.BriefingReport{}
		view.Articles = []domain.Article{}
		view.SelectedReportID = ""
		o.view = view
		o.mu.Unlock()

		metrics.FetchesTotal.WithLabelValues(filterType, "error").Inc()
		logger.Error("fetch failed", "generation", gen, "error", loadErr)
		return view, nil
	}

	o.store.AddArticles(result.articles)
	metrics.StoreArticles.Set(float64(o.store.Len()))

	view.Reports = result.reports
	view.SelectedReportID = result.selected
	if view.Filter.Type != domain.FilterDate {
		view.Articles = result.articles
	}
	view = merge.Hydrate(view, o.store.Get)
	o.view = view
	o.mu.Unlock()

	outcome := "ok"
	if len(view.ArticleIDs()) == 0 {
		outcome = "empty"
	}
	metrics.FetchesTotal.WithLabelValues(filterType, outcome).Inc()
	logger.Info("fetch completed", "generation", gen, "articles", len(result.articles))

	o.writeCache(ctx, logger, key, view)
	return view, nil
}

func (o *Orchestrator) lookup(ctx context.Context, logger *slog.Logger, key string) (*cache.Entry, bool) {
	if key == cache.NoKey || o.cache == nil {
		return nil, false
	}

	entry, ok, err := o.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		logger.Warn("cache lookup failed", "key", key, "error", err)
		return nil, false
	case !ok:
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	default:
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return entry, true
	}
}

// serveCached shows a cache entry right away and, with background
// revalidation on, refreshes it from the network afterwards. Articles the
// store already holds keep their stored state, which is never older than
// the entry.
func (o *Orchestrator) serveCached(ctx context.Context, logger *slog.Logger, entry *cache.Entry, key string, filter domain.Filter, slot domain.TimeSlot) (domain.View, error) {
	revalidate := o.config.BackgroundRevalidate
	parent := ctx
	if revalidate {
		parent = context.WithoutCancel(ctx)
	}
	gen, fetchCtx := o.begin(parent, filter, slot)

	var unknown []domain.Article
	collect := func(list []domain.Article) {
		for _, a := range list {
			if _, ok := o.store.Get(a.ID); !ok {
				unknown = append(unknown, a)
			}
		}
	}
	for _, r := range entry.Reports {
		for _, g := range r.Groups {
			collect(g.Articles)
		}
	}
	collect(entry.Articles)
	o.store.AddArticles(unknown)
	metrics.StoreArticles.Set(float64(o.store.Len()))

	o.mu.Lock()
	if gen != o.generation {
		o.mu.Unlock()
		return domain.View{}, domain.ErrSuperseded
	}
	view := o.view
	view.Reports = entry.Reports
	view.SelectedReportID = entry.SelectedReportID
	view.Articles = entry.Articles
	view.FromCache = true
	view.Loading = revalidate
	view = merge.Hydrate(view, o.store.Get)
	o.view = view
	if !revalidate {
		o.release(gen)
	}
	o.mu.Unlock()

	metrics.FetchesTotal.WithLabelValues(string(filter.Type), "cached").Inc()

	if revalidate {
		o.background.Go(func() {
			result, err := o.load(fetchCtx, filter, slot)
			if _, err := o.finish(parent, logger, gen, filter, key, result, err); err != nil && !errors.Is(err, domain.ErrSuperseded) {
				logger.Warn("background revalidation failed", "error", err)
			}
		})
	}
	return view, nil
}

func (o *Orchestrator) writeCache(ctx context.Context, logger *slog.Logger, key string, view domain.View) {
	if key == cache.NoKey || o.cache == nil {
		return
	}
	if err := o.cache.Set(ctx, key, cache.EntryFromView(view, o.now())); err != nil {
		logger.Warn("cache write failed", "key", key, "error", err)
	}
}

func (o *Orchestrator) fetchStarred(ctx context.Context, logger *slog.Logger) (domain.View, error) {
	gen, fetchCtx := o.begin(ctx, domain.StarredFilter(), domain.SlotAll)

	o.mu.Lock()
	loaded := o.starredLoaded
	o.mu.Unlock()

	var loadErr error
	if !loaded {
		_, loadErr = o.LoadStarred(fetchCtx)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		return domain.View{}, domain.ErrSuperseded
	}
	o.release(gen)

	view := o.view
	view.Loading = false
	view.Articles = o.store.StarredArticles()
	o.view = view

	outcome := "ok"
	if loadErr != nil {
		outcome = "error"
		logger.Error("load starred failed", "error", loadErr)
	}
	metrics.FetchesTotal.WithLabelValues(string(domain.FilterStarred), outcome).Inc()
	return view, nil
}

// LoadStarred registers the feed backend's starred items in the store. Items
// arrive most recently starred first and end up in that order in the
// store's starred list.
func (o *Orchestrator) LoadStarred(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.RequestTimeout)
	defer cancel()

	articles, err := o.enrichedStream(ctx, o.feed.FetchStarredItems)
	if err != nil {
		return 0, fmt.Errorf("load starred: %w", err)
	}

	for i := len(articles) - 1; i >= 0; i-- {
		a := articles[i]
		if prev, ok := o.store.Get(a.ID); ok {
			a = merge.Overlay(prev, a)
		}
		o.store.UpdateArticle(a)
	}
	metrics.StoreArticles.Set(float64(o.store.Len()))

	o.mu.Lock()
	o.starredLoaded = true
	o.mu.Unlock()

	return len(articles), nil
}

// View returns the active view with every article as the store holds it now.
func (o *Orchestrator) View() domain.View {
	o.mu.Lock()
	view := o.view
	o.mu.Unlock()

	if view.Filter.Type == domain.FilterStarred {
		view.Articles = o.store.StarredArticles()
		return view
	}
	return merge.Hydrate(view, o.store.Get)
}

// RewriteActiveCache stores the active view under its cache key. The
// mutation coordinator calls it after a committed change.
func (o *Orchestrator) RewriteActiveCache(ctx context.Context) {
	view := o.View()
	if view.Loading {
		return
	}
	logger := domain.LoggerFromContext(ctx)
	o.writeCache(ctx, logger, cache.Key(view.Filter, view.Slot), view)
}

// Refresh reloads filter metadata and, when a date filter is active,
// re-fetches it without consulting the cache.
func (o *Orchestrator) Refresh(ctx context.Context) (domain.FilterOptions, error) {
	logger := domain.LoggerFromContext(ctx)
	opts := o.loadFilterOptions(ctx, logger)

	o.mu.Lock()
	o.options = opts
	o.mu.Unlock()

	if err := o.reloadActiveDate(ctx, logger); err != nil {
		return opts, fmt.Errorf("refresh: %w", err)
	}
	return opts, nil
}

// reloadActiveDate re-fetches the active date filter without reading the
// cache. A fetch already in flight for it is left to finish instead, and a
// reload overtaken by a newer fetch is not an error.
func (o *Orchestrator) reloadActiveDate(ctx context.Context, logger *slog.Logger) error {
	o.mu.Lock()
	active := o.view
	if active.Filter.Type != domain.FilterDate {
		o.mu.Unlock()
		return nil
	}
	if active.Loading {
		o.mu.Unlock()
		logger.Debug("active date already loading, skipping reload", "date", active.Filter.Value, "slot", active.Slot)
		return nil
	}
	gen, fetchCtx := o.beginLocked(ctx, active.Filter, active.Slot)
	o.mu.Unlock()

	logger = logger.With("filter", active.Filter.Type, "value", active.Filter.Value, "slot", active.Slot)

	start := o.now()
	result, err := o.load(fetchCtx, active.Filter, active.Slot)
	metrics.FetchDuration.WithLabelValues(string(active.Filter.Type)).Observe(time.Since(start).Seconds())

	_, err = o.finish(ctx, logger, gen, active.Filter, cache.Key(active.Filter, active.Slot), result, err)
	if errors.Is(err, domain.ErrSuperseded) {
		logger.Debug("reload overtaken by a newer fetch", "generation", gen)
		return nil
	}
	return err
}

func (o *Orchestrator) loadFilterOptions(ctx context.Context, logger *slog.Logger) domain.FilterOptions {
	ctx, cancel := context.WithTimeout(ctx, o.config.RequestTimeout)
	defer cancel()

	opts := domain.FilterOptions{
		Dates:      []string{},
		Categories: []string{},
		Labels:     []domain.LabelCount{},
	}

	var g errgroup.Group
	g.Go(func() error {
		dates, err := o.content.AvailableDates(ctx, o.config.DateLimit)
		if err != nil {
			return fmt.Errorf("available dates: %w", err)
		}
		opts.Dates = dates
		return nil
	})
	g.Go(func() error {
		categories, err := o.content.Categories(ctx)
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		opts.Categories = categories
		return nil
	})
	g.Go(func() error {
		labels, err := o.feed.ListLabels(ctx)
		if err != nil {
			return fmt.Errorf("list labels: %w", err)
		}
		opts.Labels = labels
		return nil
	})
	status := "ok"
	if err := g.Wait(); err != nil {
		status = "partial"
		logger.Error("refresh filter options", "error", err)
	}
	metrics.RefreshesTotal.WithLabelValues(status).Inc()

	opts.TagUsage = o.store.TagUsage()
	opts.RefreshedAt = o.now().UTC()
	return opts
}

// FilterOptions returns the metadata of the last Refresh, with live tag usage.
func (o *Orchestrator) FilterOptions() domain.FilterOptions {
	o.mu.Lock()
	opts := o.options
	o.mu.Unlock()

	opts.TagUsage = o.store.TagUsage()
	return opts
}

// Wait blocks until background revalidations finish.
func (o *Orchestrator) Wait() {
	o.background.Wait()
}

// Close cancels the fetch in flight and waits for background work.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	o.mu.Unlock()
	o.Wait()
}

// labelName accepts either a bare label name or a full label tag.
func labelName(value string) string {
	if name, ok := tags.LabelName(value); ok {
		return name
	}
	return value
}
