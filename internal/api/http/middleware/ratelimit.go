package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit:" // Counter per client IP: ratelimit:{ip}

// RateLimit rejects callers exceeding max requests per window with 429,
// counting in a Redis fixed window. A nil client disables limiting, and a
// Redis failure lets the request through: the limiter must never take the
// API down with it.
func RateLimit(client *redis.Client, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := rateLimitKeyPrefix + c.ClientIP()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("[ratelimit] redis incr failed: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}

		if count > int64(max) {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
