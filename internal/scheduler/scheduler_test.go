package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"news_briefing/internal/domain"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(ctx context.Context) (domain.FilterOptions, error) {
	r.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return domain.FilterOptions{}, errors.New("refresh without deadline")
	}
	return domain.FilterOptions{}, r.err
}

func TestScheduler_RefreshesImmediatelyAndOnTick(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	r := &countingRefresher{}
	s := NewScheduler(r, 10*time.Millisecond, time.Second, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestScheduler_KeepsRunningAfterFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	r := &countingRefresher{err: domain.ErrUpstreamUnavailable}
	s := NewScheduler(r, 10*time.Millisecond, time.Second, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Start(ctx) }()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}
