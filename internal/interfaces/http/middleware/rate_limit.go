// internal/interfaces/http/middleware/rate_limit.go
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const rateLimitWindow = time.Minute

// RateLimit counts requests per client IP in a fixed one-minute Redis window.
// When Redis is unavailable requests are allowed through.
func RateLimit(limit int, redisClient *redis.Client, logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s", c.ClientIP())

		ctx, cancel := context.WithTimeout(c.Request.Context(), 500*time.Millisecond)
		defer cancel()

		var incr *redis.IntCmd
		var ttl *redis.DurationCmd
		_, err := redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, rateLimitWindow)
			ttl = pipe.TTL(ctx, key)
			return nil
		})
		if err != nil {
			logger.WithError(err).Warn("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		count := int(incr.Val())
		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		reset := ttl.Val()
		if reset <= 0 {
			reset = rateLimitWindow
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(reset).Unix(), 10))

		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": int(reset.Seconds()),
			})
			return
		}

		c.Next()
	}
}
