package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
)

// RateLimiter caps requests per client on an endpoint. Counters live in Redis
// keyed by IP, method and route, so each surface gets its own window.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.Join([]string{"medisearch:ratelimit", c.ClientIP(), c.Request.Method, c.FullPath()}, ":")

		count, err := config.RedisClient.Incr(config.Ctx, key).Result()
		if err != nil {
			log.Printf("[middleware.rateLimiter] ERROR incrementing counter: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limiter unavailable"))
			c.Abort()
			return
		}
		if count == 1 {
			config.RedisClient.Expire(config.Ctx, key, window)
		}

		// The counter's TTL doubles as the window clock, so no separate
		// reset timestamp needs storing.
		ttl, err := config.RedisClient.TTL(config.Ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}
		resetAt := time.Now().Add(ttl)

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: int(ttl.Seconds()),
		}
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
