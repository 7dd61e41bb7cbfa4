package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"market_relay/internal/app/di"
	"market_relay/internal/feature/publish/domain/entity"
	"market_relay/internal/platform/config"
	"market_relay/internal/platform/logging"
)

// publish refreshes dataset snapshots once and exits, e.g. from a scheduler.
// With no arguments every dataset is published.
func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(os.Stdout, cfg.LogLevel))

	if !cfg.GitHub.Enabled() {
		slog.Error("GITHUB_TOKEN, GITHUB_OWNER and GITHUB_REPO are required")
		os.Exit(1)
	}

	datasets := flag.Args()
	if len(datasets) == 0 {
		for _, d := range entity.Datasets {
			datasets = append(datasets, string(d))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// キャッシュは使わず常に最新を取得する
	uc := di.NewUsecases(cfg, di.NewUpstreamClient(cfg.HTTP, nil), nil)

	failed := 0
	for _, d := range datasets {
		pub, err := uc.Publish.Publish(ctx, d)
		if err != nil {
			slog.Error("publish failed", "dataset", d, "error", err)
			failed++
			continue
		}
		slog.Info("publish ok", "dataset", d, "count", pub.Count, "path", pub.Path)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
