package ratelimit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/hongyeon/internal/errors"
	"github.com/ZanzyTHEbar/hongyeon/internal/monitoring"
	"github.com/ZanzyTHEbar/hongyeon/internal/resilience"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, config Config) (*RateLimiter, *monitoring.Metrics) {
	t.Helper()
	metrics := monitoring.NewMetrics()
	limiter := NewRateLimiter(&RedisClient{enabled: false}, config, metrics)
	t.Cleanup(limiter.Close)
	return limiter, metrics
}

func TestRateLimiterFallbackMode(t *testing.T) {
	limiter, metrics := newTestLimiter(t, Config{IPLimitPerMin: 10, BurstMultiplier: 1})

	ctx := context.Background()
	rateLimit := Rate{Limit: 5, Period: time.Minute}

	for i := 0; i < 5; i++ {
		result, err := limiter.Allow(ctx, "test:ip:1", rateLimit)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "Request %d should be allowed", i+1)
		assert.Equal(t, 5, result.Limit)
	}

	result, err := limiter.Allow(ctx, "test:ip:1", rateLimit)
	require.NoError(t, err)
	assert.False(t, result.Allowed, "6th request should be blocked")
	assert.Equal(t, 0, result.Remaining)
	assert.Greater(t, result.RetryAfter, time.Duration(0))
	assert.Equal(t, int64(6), metrics.RateLimitFallbackCount)
}

func TestRateLimiterBurstCapacity(t *testing.T) {
	limiter, _ := newTestLimiter(t, Config{IPLimitPerMin: 10, BurstMultiplier: 2})

	allowed := 0
	for i := 0; i < 15; i++ {
		result, err := limiter.Allow(context.Background(), "test:burst", Rate{Limit: 5, Period: time.Minute})
		require.NoError(t, err)
		if result.Allowed {
			allowed++
		}
	}

	assert.Equal(t, 10, allowed)
}

func TestRateLimiterMultipleKeys(t *testing.T) {
	limiter, _ := newTestLimiter(t, Config{IPLimitPerMin: 10, BurstMultiplier: 1})

	ctx := context.Background()
	rateLimit := Rate{Limit: 3, Period: time.Minute}

	for _, key := range []string{"ip:1", "ip:2", "ip:3"} {
		for i := 0; i < 3; i++ {
			result, err := limiter.Allow(ctx, key, rateLimit)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "Key %s request %d should be allowed", key, i+1)
		}

		result, err := limiter.Allow(ctx, key, rateLimit)
		require.NoError(t, err)
		assert.False(t, result.Allowed, "Key %s 4th request should be blocked", key)
	}
}

func TestRateLimiterInvalidRate(t *testing.T) {
	limiter, _ := newTestLimiter(t, DefaultConfig())

	_, err := limiter.Allow(context.Background(), "k", Rate{Limit: 0, Period: time.Minute})
	assert.Error(t, err)
}

func TestRateLimiterEvictIdle(t *testing.T) {
	limiter, _ := newTestLimiter(t, Config{IPLimitPerMin: 10, BurstMultiplier: 1, IdleTimeout: time.Minute})

	_, err := limiter.AllowIP(context.Background(), "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, 0, limiter.evictIdle(time.Now()))
	assert.Equal(t, 1, limiter.evictIdle(time.Now().Add(2*time.Minute)))
	assert.Equal(t, 0, limiter.GetStats()["fallback_limiters"])
}

func TestRateLimiterStats(t *testing.T) {
	limiter, _ := newTestLimiter(t, DefaultConfig())

	stats := limiter.GetStats()
	assert.Equal(t, false, stats["redis_enabled"])
	assert.Equal(t, 60, stats["ip_limit_per_min"])
	assert.Equal(t, map[string]interface{}{"enabled": false}, stats["redis_pool"])
}

func TestRateLimiterRedisFailureOpensBreaker(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })

	metrics := monitoring.NewMetrics()
	limiter := NewRateLimiter(&RedisClient{client: client, enabled: true}, Config{IPLimitPerMin: 100, BurstMultiplier: 1}, metrics)
	t.Cleanup(limiter.Close)

	for i := 0; i < 8; i++ {
		result, err := limiter.AllowIP(context.Background(), "198.51.100.7")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	}

	assert.Equal(t, resilience.StateOpen, limiter.breaker.State())
	assert.Equal(t, int64(5), metrics.RateLimitRedisErrors, "open circuit skips Redis")
	assert.Equal(t, int64(8), metrics.RateLimitFallbackCount)
}

func TestHandleRateLimitStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter, metrics := newTestLimiter(t, Config{IPLimitPerMin: 30, BurstMultiplier: 2})

	r := gin.New()
	r.GET("/status", limiter.HandleRateLimitStatus())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/status", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Backend string `json:"backend"`
		Limits  struct {
			IPPerMinute struct {
				Limit int `json:"limit"`
				Burst int `json:"burst"`
			} `json:"ip_per_minute"`
		} `json:"limits"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "memory", body.Backend)
	assert.Equal(t, 30, body.Limits.IPPerMinute.Limit)
	assert.Equal(t, 60, body.Limits.IPPerMinute.Burst)
	assert.Equal(t, int64(0), metrics.RateLimitFallbackCount)
}

func TestNewRedisClientDisabledWithoutAddr(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "", "", 0)
	require.NoError(t, err)
	assert.False(t, client.IsEnabled())
	assert.NoError(t, client.Close())
	assert.Error(t, client.HealthCheck(context.Background()))
}

func TestIPRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter, metrics := newTestLimiter(t, Config{IPLimitPerMin: 2, BurstMultiplier: 1})

	r := gin.New()
	r.Use(limiter.IPRateLimitMiddleware())
	r.POST("/api/score", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/score", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		last = w
	}

	assert.Equal(t, []int{200, 200, 429}, codes)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
	assert.Equal(t, int64(1), metrics.RateLimitIPBlocks)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(last.Body.Bytes(), &body))
	assert.Equal(t, string(errors.CategoryRateLimit), body["category"])
}
