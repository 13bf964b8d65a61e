package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"news_briefing/internal/cache"
	"news_briefing/internal/config"
	"news_briefing/internal/publisher"
	"news_briefing/internal/scheduler"
	"news_briefing/internal/service"
	"news_briefing/internal/source/freshrss"
	"news_briefing/internal/source/readability"
	"news_briefing/internal/storage/postgres"
	"news_briefing/internal/store"
	"news_briefing/internal/transport/web/router"
	"news_briefing/internal/transport/web/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	db, err := postgres.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	sessionCache, closeCache, err := setupCache(ctx, cfg.Cache)
	if err != nil {
		logger.Error("failed to set up session cache", "error", err)
		os.Exit(1)
	}
	defer closeCache()

	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	feed := freshrss.New(freshrss.Config{
		BaseURL:        cfg.FreshRSS.BaseURL,
		Username:       cfg.FreshRSS.Username,
		Password:       cfg.FreshRSS.Password,
		PageSize:       cfg.FreshRSS.PageSize,
		MaxPages:       cfg.FreshRSS.MaxPages,
		Timeout:        cfg.FreshRSS.Timeout,
		MaxAttempts:    cfg.FreshRSS.Retry.MaxAttempts,
		InitialBackoff: cfg.FreshRSS.Retry.InitialBackoff,
		MaxBackoff:     cfg.FreshRSS.Retry.MaxBackoff,
	}, logger)

	var readable service.ReadableSource
	if cfg.Readability.BaseURL != "" {
		readable = readability.New(readability.Config{
			BaseURL:          cfg.Readability.BaseURL,
			Timeout:          cfg.Readability.Timeout,
			MinContentLength: cfg.Readability.MinContentLength,
		}, logger)
	}

	articleStore := store.New()
	orchestrator := service.NewOrchestrator(
		postgres.NewArticleStore(db),
		feed,
		sessionCache,
		articleStore,
		logger,
		cfg.Session,
	)
	defer orchestrator.Close()

	coordinator := service.NewCoordinator(articleStore, feed, orchestrator, pub, logger, cfg.Session)
	resolver := service.NewContentResolver(articleStore, readable, logger)
	session := service.NewSession(articleStore, orchestrator, coordinator, resolver)

	srv := &server.Server{
		Addr: cfg.HTTP.Addr,
		Router: router.MakeRouter(
			session,
			strings.TrimRight(cfg.HTTP.PublicURL, "/")+"/rss/starred",
			cfg.HTTP.RSSAuthorName,
			cfg.HTTP.RSSAuthorEmail,
			logger,
		),
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		Logger:          logger,
	}
	sched := scheduler.NewScheduler(orchestrator, cfg.Session.RefreshInterval, cfg.Session.RequestTimeout, logger)

	logger.Info("starting news briefing",
		"addr", cfg.HTTP.Addr,
		"cache", cfg.Cache.Driver,
		"refresh_interval", cfg.Session.RefreshInterval,
		"background_revalidate", cfg.Session.BackgroundRevalidate,
		"optimistic_mutations", cfg.Session.OptimisticMutations,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return sched.Start(gctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("briefing stopped with error", "error", err)
		os.Exit(1)
	}
}

func setupCache(ctx context.Context, cfg config.CacheConfig) (service.SessionCache, func(), error) {
	if cfg.Driver != config.CacheDriverRedis {
		return cache.NewMemory(), func() {}, nil
	}

	rc, err := cache.NewRedis(ctx, cfg.RedisURL, cfg.Prefix)
	if err != nil {
		return nil, nil, err
	}
	return rc, func() { _ = rc.Close() }, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
