// Package server assembles the HTTP surface: the form pages, the JSON
// scoring API and the operational endpoints.
package server

import (
	"time"

	"github.com/ZanzyTHEbar/hongyeon/internal/cache"
	"github.com/ZanzyTHEbar/hongyeon/internal/config"
	"github.com/ZanzyTHEbar/hongyeon/internal/errors"
	"github.com/ZanzyTHEbar/hongyeon/internal/frontend"
	"github.com/ZanzyTHEbar/hongyeon/internal/middleware"
	"github.com/ZanzyTHEbar/hongyeon/internal/monitoring"
	"github.com/ZanzyTHEbar/hongyeon/internal/ratelimit"
	"github.com/ZanzyTHEbar/hongyeon/internal/security"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ZanzyTHEbar/hongyeon/docs"
)

// Version is reported by /health; overridden at build time
var Version = "dev"

const scorePath = "/api/score"

// Deps are the long-lived components the router is built from
type Deps struct {
	Config  *config.Config
	Metrics *monitoring.Metrics
	Logger  *monitoring.Logger
	Redis   *ratelimit.RedisClient
	Limiter *ratelimit.RateLimiter
	Cache   *cache.Cache
	Pages   *frontend.Handler

	Compression *middleware.CompressionMiddleware
}

// New builds the gin engine with all middleware and routes registered
func New(d Deps) *gin.Engine {
	r := gin.New()

	// Monitoring first so every request is counted, then error handling
	r.Use(monitoring.RequestIDMiddleware())
	r.Use(monitoring.MonitoringMiddleware(d.Metrics, d.Logger))
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())
	r.Use(d.Compression.Handler())

	r.Use(security.SecurityHeadersMiddleware())
	r.Use(security.CSPMiddleware())
	r.Use(security.RequestTimeoutMiddleware(d.Config.RequestTimeout))
	r.Use(security.BodyLimitMiddleware(d.Config.MaxBodyBytes))

	if len(d.Config.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.Config.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", monitoring.RequestIDHeader},
			ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After", "X-Cache", monitoring.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	h := &handlers{deps: d}

	// form and API share one per-IP scoring budget
	d.Pages.Register(r, d.Limiter.IPRateLimitMiddleware())

	api := r.Group("/api")
	api.GET("/elements", h.elements)
	api.GET("/rate-limit", d.Limiter.HandleRateLimitStatus())
	api.POST("/score",
		d.Limiter.IPRateLimitMiddleware(),
		security.RequireJSON(),
		d.Cache.Middleware(d.Metrics, scorePath, h.cachedScore),
		h.score,
	)

	r.GET("/health", h.health)
	r.GET("/metrics", h.metrics)
	r.GET("/metrics/prometheus", h.prometheus)

	if d.Config.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
