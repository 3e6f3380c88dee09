// fetchodds runs one odds refresh cycle against the configured provider and
// exits. Per-game failures are reported as warnings in the summary; only a
// top-level fetch failure produces a non-zero exit.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/walkerpaxton/GTSportsLine/internal/app"
	"github.com/walkerpaxton/GTSportsLine/internal/config"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logging.SetDefault(logger)

	services, cleanup, err := app.NewServices(cfg, logger)
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	summary, err := services.OddsIngest.Refresh(ctx)
	if err != nil {
		logger.Error("odds refresh failed", "error", err)
		_ = cleanup(ctx)
		os.Exit(1)
	}

	logger.Info("odds refresh complete",
		"processed", summary.Processed,
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
	)
	for _, warning := range summary.Warnings {
		logger.Warn("odds refresh warning", "detail", warning)
	}

	if err := cleanup(ctx); err != nil {
		logger.Error("close resources", "error", err)
	}
}
