package ratelimit

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HandleRateLimitStatus reports the scoring limits that apply to the
// requesting IP. It does not consume a token.
func (rl *RateLimiter) HandleRateLimitStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		backend := "memory"
		if rl.redisLimiter != nil {
			backend = "redis"
		}

		c.JSON(http.StatusOK, gin.H{
			"ip": c.ClientIP(),
			"limits": gin.H{
				"ip_per_minute": gin.H{
					"limit":  rl.config.IPLimitPerMin,
					"burst":  rl.burst(rl.config.IPLimitPerMin),
					"period": "1 minute",
				},
			},
			"backend":   backend,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
