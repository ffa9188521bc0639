package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"

	"news_feed/internal/ads"
	"news_feed/internal/analytics"
	"news_feed/internal/api"
	"news_feed/internal/assembler"
	"news_feed/internal/config"
	"news_feed/internal/feedview"
	"news_feed/internal/publisher"
	"news_feed/internal/scheduler"
	"news_feed/internal/service"
	"news_feed/internal/session"
	"news_feed/internal/source/bravenews"
	"news_feed/internal/source/direct"
	"news_feed/internal/tabs"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	var eventPublisher analytics.Publisher
	if cfg.RabbitMQ.Enabled {
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
		eventPublisher = rabbitMQ
	} else {
		logger.Warn("rabbitmq disabled, analytics events will be discarded")
	}

	var (
		feedSource service.Source
		verifier   api.FeedVerifier
	)
	switch cfg.Feed.Source {
	case config.SourceDirect:
		src := direct.New(direct.Config{
			URLs:    cfg.Feed.DirectURLs,
			Timeout: cfg.Feed.Timeout,
		}, logger)
		feedSource, verifier = src, src
	default:
		feedSource = bravenews.New(bravenews.Config{
			BaseURL:        cfg.Feed.BaseURL,
			Timeout:        cfg.Feed.Timeout,
			MaxAttempts:    cfg.Feed.Retry.MaxAttempts,
			InitialBackoff: cfg.Feed.Retry.InitialBackoff,
			MaxBackoff:     cfg.Feed.Retry.MaxBackoff,
		}, logger)
	}

	feedService := service.NewFeedService(
		feedSource,
		assembler.New(logger),
		store.tabs,
		store.meta,
		store.txManager,
		logger,
	)

	queue := analytics.NewQueue(eventPublisher, cfg.Analytics.QueueSize, cfg.Analytics.PublishTimeout, logger)
	slot := ads.NewSlot()

	registry, err := tabs.NewRegistry(cfg.Session.Capacity, func(tabID string) *feedview.View {
		return feedview.New(session.New(tabID), feedService, queue, slot, logger)
	}, feedService, logger)
	if err != nil {
		logger.Error("failed to create tab registry", "error", err)
		os.Exit(1)
	}
	defer registry.Shutdown()

	sched := scheduler.NewScheduler(feedService, cfg.Feed.UpdateCheckInterval, cfg.Feed.Timeout, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	api.NewHandler(registry, slot, feedService, verifier, logger).Register(e)

	logger.Info("starting news feed service",
		"addr", cfg.Server.Addr,
		"source", feedSource.Name(),
		"storage", cfg.Storage.Driver,
		"session_capacity", cfg.Session.Capacity,
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := queue.Run(gCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := sched.Start(gCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := e.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health" || c.Request().URL.Path == "/metrics"
		},
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				logger.Debug("request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
				return nil
			}
			logger.Error("request failed",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"error", v.Error.Error())
			return nil
		},
	})
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
