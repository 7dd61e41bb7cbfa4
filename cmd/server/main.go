package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"market_relay/internal/app/di"
	"market_relay/internal/app/router"
	"market_relay/internal/platform/config"
	"market_relay/internal/platform/logging"
	"market_relay/internal/platform/metrics"
	infraredis "market_relay/internal/platform/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(os.Stdout, cfg.LogLevel))
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis（任意）
	rdb, err := infraredis.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, running without shared limiter and cache", "error", err)
		rdb = nil
	}
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close redis client", "error", err)
			}
		}()
	}

	// メトリクス
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.New(reg)

	// Usecase / Handler
	client := di.NewUpstreamClient(cfg.HTTP, rec)
	usecases := di.NewUsecases(cfg, client, rdb)
	handlers := di.NewHandlers(cfg.APIKey, usecases, rdb)

	// ルータ生成
	engine := router.NewRouter(handlers, router.Options{
		APIKey:     cfg.APIKey,
		Limiter:    di.NewLimiterStore(rdb, cfg.RateLimit),
		RetryAfter: int(cfg.RateLimit.Window.Seconds()),
		Recorder:   rec,
		Metrics:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	// API_KEYチェック（開発中の注意喚起）
	if cfg.APIKey == "" {
		slog.Warn("API_KEY is not set; every protected route will answer 401")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
