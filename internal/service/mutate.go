package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"news_briefing/internal/config"
	"news_briefing/internal/domain"
	"news_briefing/internal/metrics"
	"news_briefing/internal/store"
	"news_briefing/internal/tags"
)

// ActiveView is the part of the orchestrator the coordinator depends on.
type ActiveView interface {
	View() domain.View
	RewriteActiveCache(ctx context.Context)
}

// Coordinator applies tag mutations to the feed backend and the store.
// The store only ever shows the state before a mutation or the state after
// every remote call of it succeeded.
type Coordinator struct {
	store     *store.Store
	editor    StateEditor
	views     ActiveView
	publisher Publisher
	logger    *slog.Logger
	config    config.SessionConfig

	// mutations run one at a time
	mu sync.Mutex
}

func NewCoordinator(
	st *store.Store,
	editor StateEditor,
	views ActiveView,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SessionConfig,
) *Coordinator {
	return &Coordinator{
		store:     st,
		editor:    editor,
		views:     views,
		publisher: publisher,
		logger:    logger.With("component", "coordinator"),
		config:    cfg,
	}
}

// SetArticleTags moves article id to the desired tag set. Starred and read
// changes are sent as their own calls, label changes as one batched edit.
// State tags other than starred and read are kept as they are.
func (c *Coordinator) SetArticleTags(ctx context.Context, id domain.ArticleID, desired []string) (domain.Article, error) {
	if id == "" {
		return domain.Article{}, fmt.Errorf("set article tags: empty id: %w", domain.ErrValidation)
	}
	if desired == nil {
		return domain.Article{}, fmt.Errorf("set article tags: missing tags: %w", domain.ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	logger := domain.LoggerFromContext(ctx).With("article_id", id)

	tx, err := c.store.Begin(id)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("set_tags", "not_found").Inc()
		return domain.Article{}, fmt.Errorf("set article tags: %w", err)
	}
	defer tx.Rollback()

	current, _ := tx.Previous(id)
	plan := planTagChange(current.Tags, desired)
	if plan.empty() {
		return current, nil
	}

	if err := tx.Stage(id, plan.added(), plan.removed()); err != nil {
		return domain.Article{}, fmt.Errorf("set article tags: %w", err)
	}
	if c.config.OptimisticMutations {
		tx.Apply()
	}

	var errs []error
	if plan.starChanged {
		errs = append(errs, c.call(ctx, "star", func() error {
			return c.editor.SetStarred(ctx, id, plan.starred)
		}))
	}
	if plan.readChanged {
		errs = append(errs, c.call(ctx, "read", func() error {
			return c.editor.SetRead(ctx, []domain.ArticleID{id}, plan.read)
		}))
	}
	if len(plan.labelAdd) > 0 || len(plan.labelRemove) > 0 {
		errs = append(errs, c.call(ctx, "edit_tags", func() error {
			return c.editor.EditTags(ctx, []domain.ArticleID{id}, plan.labelAdd, plan.labelRemove)
		}))
	}

	if err := errors.Join(errs...); err != nil {
		tx.Rollback()
		metrics.MutationsTotal.WithLabelValues("set_tags", "failed").Inc()
		logger.Warn("tag mutation rolled back", "error", err)
		return current, fmt.Errorf("set article tags: %w", err)
	}

	tx.Commit()
	metrics.MutationsTotal.WithLabelValues("set_tags", "committed").Inc()
	logger.Info("tags updated", "added", plan.added(), "removed", plan.removed())

	c.views.RewriteActiveCache(ctx)
	c.publish(ctx, logger, domain.StateChange{
		Action:     domain.StateChangeTags,
		ArticleIDs: []domain.ArticleID{id},
		Added:      plan.added(),
		Removed:    plan.removed(),
	})

	updated, _ := c.store.Get(id)
	return updated, nil
}

// MarkAllAsRead marks ids as read, or every article in view when ids is
// empty. Only articles not yet read are sent, in one call. It returns the
// number of articles that changed.
func (c *Coordinator) MarkAllAsRead(ctx context.Context, ids []domain.ArticleID) (int, error) {
	if len(ids) == 0 {
		ids = c.views.View().ArticleIDs()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	logger := domain.LoggerFromContext(ctx)

	var unread []domain.ArticleID
	for _, a := range c.store.GetMany(ids) {
		if !tags.Contains(a.Tags, tags.Read) && !slices.Contains(unread, a.ID) {
			unread = append(unread, a.ID)
		}
	}
	if len(unread) == 0 {
		return 0, nil
	}

	tx, err := c.store.Begin(unread...)
	if err != nil {
		return 0, fmt.Errorf("mark all as read: %w", err)
	}
	defer tx.Rollback()

	for _, id := range unread {
		if err := tx.Stage(id, []string{tags.Read}, nil); err != nil {
			return 0, fmt.Errorf("mark all as read: %w", err)
		}
	}
	if c.config.OptimisticMutations {
		tx.Apply()
	}

	err = c.call(ctx, "read", func() error {
		return c.editor.SetRead(ctx, unread, true)
	})
	if err != nil {
		tx.Rollback()
		metrics.MutationsTotal.WithLabelValues("mark_read", "failed").Inc()
		logger.Warn("mark all as read rolled back", "articles", len(unread), "error", err)
		return 0, fmt.Errorf("mark all as read: %w", err)
	}

	tx.Commit()
	metrics.MutationsTotal.WithLabelValues("mark_read", "committed").Inc()
	logger.Info("marked as read", "articles", len(unread))

	c.views.RewriteActiveCache(ctx)
	c.publish(ctx, logger, domain.StateChange{
		Action:     domain.StateChangeMarkRead,
		ArticleIDs: unread,
		Added:      []string{tags.Read},
	})

	return len(unread), nil
}

func (c *Coordinator) call(ctx context.Context, action string, fn func() error) error {
	err := fn()
	status := "ok"
	if err != nil {
		status = "error"
		domain.LoggerFromContext(ctx).Warn("remote call failed", "action", action, "error", err)
	}
	metrics.RemoteCallsTotal.WithLabelValues(action, status).Inc()
	return err
}

func (c *Coordinator) publish(ctx context.Context, logger *slog.Logger, change domain.StateChange) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishStateChange(ctx, change); err != nil {
		logger.Warn("publish state change", "action", change.Action, "error", err)
	}
}

// tagPlan is the wire-level delta between two tag sets. State tags other
// than starred and read are never part of it.
type tagPlan struct {
	starChanged bool
	starred     bool
	readChanged bool
	read        bool
	labelAdd    []string
	labelRemove []string
}

func planTagChange(current, desired []string) tagPlan {
	current = tags.Normalize(current)
	desired = tags.Normalize(desired)

	var p tagPlan
	p.starred = tags.Contains(desired, tags.Starred)
	p.starChanged = p.starred != tags.Contains(current, tags.Starred)
	p.read = tags.Contains(desired, tags.Read)
	p.readChanged = p.read != tags.Contains(current, tags.Read)
	p.labelAdd, p.labelRemove = tags.Diff(userTags(current), userTags(desired))
	return p
}

func (p tagPlan) empty() bool {
	return !p.starChanged && !p.readChanged && len(p.labelAdd) == 0 && len(p.labelRemove) == 0
}

func (p tagPlan) added() []string {
	out := slices.Clone(p.labelAdd)
	if p.starChanged && p.starred {
		out = append(out, tags.Starred)
	}
	if p.readChanged && p.read {
		out = append(out, tags.Read)
	}
	return out
}

func (p tagPlan) removed() []string {
	out := slices.Clone(p.labelRemove)
	if p.starChanged && !p.starred {
		out = append(out, tags.Starred)
	}
	if p.readChanged && !p.read {
		out = append(out, tags.Read)
	}
	return out
}

// userTags keeps every tag outside the state namespaces.
func userTags(list []string) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		if !tags.IsState(t) {
			out = append(out, t)
		}
	}
	return out
}
