package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZanzyTHEbar/hongyeon/internal/config"
	"github.com/ZanzyTHEbar/hongyeon/internal/errors"
	"github.com/ZanzyTHEbar/hongyeon/internal/monitoring"
	"github.com/ZanzyTHEbar/hongyeon/internal/server"
)

// @title        Hongyeon API
// @version      1.0
// @description  Birth-year and birth-hour compatibility scoring based on the stems, branches and five elements.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", errors.NewConfigurationError(err.Error(), err))
		os.Exit(1)
	}

	logger := monitoring.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, logger); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
