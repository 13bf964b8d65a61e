package scheduler

import (
	"context"
	"log/slog"
	"time"

	"news_briefing/internal/domain"
)

// Refresher reloads filter metadata and the active date filter.
type Refresher interface {
	Refresh(ctx context.Context) (domain.FilterOptions, error)
}

type Scheduler struct {
	refresher Refresher
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

func NewScheduler(refresher Refresher, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		timeout:   timeout,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runRefresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runRefresh(ctx)
		}
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	refreshCtx = domain.ContextWithLogger(refreshCtx, s.logger)

	opts, err := s.refresher.Refresh(refreshCtx)
	if err != nil {
		s.logger.Error("refresh failed", "error", err)
		return
	}
	s.logger.Debug("refresh completed",
		"dates", len(opts.Dates),
		"categories", len(opts.Categories),
		"labels", len(opts.Labels),
	)
}
