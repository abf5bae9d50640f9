package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/hongyeon/internal/monitoring"
	"github.com/ZanzyTHEbar/hongyeon/internal/resilience"
	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"
)

// Config holds rate limiter configuration
type Config struct {
	IPLimitPerMin   int           // requests per minute per client IP
	BurstMultiplier int           // burst capacity as a multiple of the limit
	IdleTimeout     time.Duration // in-memory limiters unused this long are dropped
}

// DefaultConfig returns default rate limiting configuration
func DefaultConfig() Config {
	return Config{
		IPLimitPerMin:   60,
		BurstMultiplier: 2,
		IdleTimeout:     10 * time.Minute,
	}
}

// Rate is a limit over a period
type Rate struct {
	Limit  int
	Period time.Duration
}

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

type fallbackEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits with Redis when available and falls back to an
// in-memory token bucket per key.
type RateLimiter struct {
	redisLimiter *redis_rate.Limiter
	redisClient  *RedisClient
	breaker      *resilience.CircuitBreaker
	config       Config
	metrics      *monitoring.Metrics

	fallbackLimiters map[string]*fallbackEntry
	fallbackMutex    sync.Mutex

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a new rate limiter. redisClient may be nil.
func NewRateLimiter(redisClient *RedisClient, config Config, metrics *monitoring.Metrics) *RateLimiter {
	if config.BurstMultiplier < 1 {
		config.BurstMultiplier = 1
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = DefaultConfig().IdleTimeout
	}
	if redisClient == nil {
		redisClient = &RedisClient{}
	}

	rl := &RateLimiter{
		redisClient:      redisClient,
		config:           config,
		metrics:          metrics,
		fallbackLimiters: make(map[string]*fallbackEntry),
		stop:             make(chan struct{}),
		breaker:          resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			FailureThreshold: 5,
			RecoveryTimeout:  30 * time.Second,
		}),
	}

	if redisClient.IsEnabled() {
		rl.redisLimiter = redis_rate.NewLimiter(redisClient.GetClient())
		slog.Info("Redis rate limiter initialized")
	} else {
		slog.Info("Using in-memory rate limiting")
	}

	go rl.cleanupFallbackLimiters()

	return rl
}

// AllowIP checks if an IP address may make another scoring request
func (rl *RateLimiter) AllowIP(ctx context.Context, ip string) (*Result, error) {
	return rl.Allow(ctx, fmt.Sprintf("ratelimit:ip:%s", ip), Rate{
		Limit:  rl.config.IPLimitPerMin,
		Period: time.Minute,
	})
}

// Allow checks key against r using Redis or the fallback
func (rl *RateLimiter) Allow(ctx context.Context, key string, r Rate) (*Result, error) {
	if r.Limit <= 0 || r.Period <= 0 {
		return nil, fmt.Errorf("invalid rate %d per %s", r.Limit, r.Period)
	}

	if rl.redisLimiter != nil && rl.redisClient.IsEnabled() {
		var result *Result
		err := rl.breaker.Call(func() error {
			var err error
			result, err = rl.allowRedis(ctx, key, r)
			return err
		})
		if err == nil {
			return result, nil
		}

		var open *resilience.CircuitBreakerError
		if errors.As(err, &open) {
			slog.Debug("Redis circuit open, using fallback", "key", key)
		} else {
			slog.Warn("Redis rate limit check failed, using fallback", "key", key, "error", err)
			if rl.metrics != nil {
				rl.metrics.IncrementRateLimitRedisError()
			}
		}
	}

	if rl.metrics != nil {
		rl.metrics.IncrementRateLimitFallback()
	}
	return rl.allowFallback(key, r), nil
}

func (rl *RateLimiter) burst(limit int) int {
	return limit * rl.config.BurstMultiplier
}

// allowRedis performs rate limiting using Redis GCRA
func (rl *RateLimiter) allowRedis(ctx context.Context, key string, r Rate) (*Result, error) {
	limit := redis_rate.Limit{
		Rate:   r.Limit,
		Burst:  rl.burst(r.Limit),
		Period: r.Period,
	}

	res, err := rl.redisLimiter.Allow(ctx, key, limit)
	if err != nil {
		return nil, fmt.Errorf("redis rate limit check failed: %w", err)
	}

	result := &Result{
		Allowed:   res.Allowed > 0,
		Limit:     res.Limit.Rate,
		Remaining: res.Remaining,
		ResetAt:   time.Now().Add(res.ResetAfter),
	}
	if !result.Allowed {
		result.RetryAfter = res.RetryAfter
	}

	return result, nil
}

// allowFallback performs rate limiting using an in-memory token bucket
func (rl *RateLimiter) allowFallback(key string, r Rate) *Result {
	now := time.Now()

	rl.fallbackMutex.Lock()
	entry, exists := rl.fallbackLimiters[key]
	if !exists {
		every := rate.Every(r.Period / time.Duration(r.Limit))
		entry = &fallbackEntry{limiter: rate.NewLimiter(every, rl.burst(r.Limit))}
		rl.fallbackLimiters[key] = entry
	}
	entry.lastSeen = now
	rl.fallbackMutex.Unlock()

	limiter := entry.limiter
	allowed := limiter.AllowN(now, 1)

	remaining := int(limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}

	result := &Result{
		Allowed:   allowed,
		Limit:     r.Limit,
		Remaining: remaining,
		ResetAt:   now.Add(r.Period),
	}

	if !allowed {
		reservation := limiter.ReserveN(now, 1)
		result.RetryAfter = reservation.DelayFrom(now)
		reservation.CancelAt(now)
	}

	return result
}

// cleanupFallbackLimiters periodically drops idle in-memory limiters
func (rl *RateLimiter) cleanupFallbackLimiters() {
	ticker := time.NewTicker(rl.config.IdleTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) int {
	rl.fallbackMutex.Lock()
	defer rl.fallbackMutex.Unlock()

	evicted := 0
	for key, entry := range rl.fallbackLimiters {
		if now.Sub(entry.lastSeen) > rl.config.IdleTimeout {
			delete(rl.fallbackLimiters, key)
			evicted++
		}
	}
	if evicted > 0 {
		slog.Debug("Evicted idle rate limiters", "count", evicted)
	}
	return evicted
}

// Close stops the background cleanup
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// GetStats returns rate limiter statistics
func (rl *RateLimiter) GetStats() map[string]interface{} {
	rl.fallbackMutex.Lock()
	fallbackCount := len(rl.fallbackLimiters)
	rl.fallbackMutex.Unlock()

	return map[string]interface{}{
		"redis_enabled":     rl.redisClient.IsEnabled(),
		"redis_pool":        rl.redisClient.GetPoolStats(),
		"redis_breaker":     rl.breaker.Stats(),
		"fallback_limiters": fallbackCount,
		"ip_limit_per_min":  rl.config.IPLimitPerMin,
		"burst_multiplier":  rl.config.BurstMultiplier,
	}
}
