// api/middleware/rate_limiter.go

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/db"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

// RateLimiter counts requests per user, or per client IP for anonymous calls, in Redis.
// Without Redis every request is allowed.
func RateLimiter(limit int, per time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db.RedisClient == nil || limit <= 0 {
			c.Next()
			return
		}

		key := c.ClientIP()
		if user, err := util.GetUserIDFromContext(c); err == nil {
			key = "user:" + user
		}
		allowed, err := db.RateLimit(c, key, limit, per)
		if err != nil {
			// Fail open so a Redis outage does not take the API down with it.
			logger.Error("Rate limiting failed", zap.Error(err), zap.String("key", key))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Duration", per.String())

		if !allowed {
			logger.Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.Int("limit", limit),
				zap.Duration("per", per))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded", "kind": "RateLimited"})
			return
		}

		c.Next()
	}
}
