package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/hongyeon/internal/cache"
	"github.com/ZanzyTHEbar/hongyeon/internal/config"
	"github.com/ZanzyTHEbar/hongyeon/internal/frontend"
	"github.com/ZanzyTHEbar/hongyeon/internal/middleware"
	"github.com/ZanzyTHEbar/hongyeon/internal/monitoring"
	"github.com/ZanzyTHEbar/hongyeon/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 30 * time.Second

// Build creates the long-lived components for cfg. The returned cleanup
// releases them and must be called once the server has stopped.
func Build(ctx context.Context, cfg *config.Config, logger *monitoring.Logger) (Deps, func(), error) {
	metrics := monitoring.NewMetrics()

	redisClient, err := ratelimit.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		// limiter falls back to in-memory buckets
		slog.Warn("Redis unavailable, using in-memory rate limiting", "addr", cfg.Redis.Addr, "error", err)
	}

	limiter := ratelimit.NewRateLimiter(redisClient, ratelimit.Config{
		IPLimitPerMin:   cfg.RateLimit.PerMinute,
		BurstMultiplier: cfg.RateLimit.BurstMultiplier,
		IdleTimeout:     ratelimit.DefaultConfig().IdleTimeout,
	}, metrics)

	responseCache := cache.NewCache(cfg.CacheTTL)

	pages, err := frontend.NewHandler(metrics, logger)
	if err != nil {
		limiter.Close()
		responseCache.Close()
		_ = redisClient.Close()
		return Deps{}, nil, fmt.Errorf("failed to load page templates: %w", err)
	}

	cleanup := func() {
		limiter.Close()
		responseCache.Close()
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis client", "error", err)
		}
	}

	return Deps{
		Config:  cfg,
		Metrics: metrics,
		Logger:  logger,
		Redis:   redisClient,
		Limiter: limiter,
		Cache:   responseCache,
		Pages:   pages,

		Compression: middleware.NewCompressionMiddleware(middleware.DefaultCompressionConfig()),
	}, cleanup, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, cfg *config.Config, logger *monitoring.Logger) error {
	gin.SetMode(cfg.GinMode)

	deps, cleanup, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           New(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.SystemLogger("server_start", "listening on :"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server exited")
	return nil
}
