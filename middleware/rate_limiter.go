package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// RateLimiter is a fixed-window limiter keyed per IP, method and route.
// With a nil client the limiter lets everything through, so the storefront
// keeps serving when Redis is unavailable.
func RateLimiter(client *redis.Client, maxRequests int, window time.Duration, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		ip := c.ClientIP()
		endpoint := c.FullPath() // /api/v1/store/products, /api/v1/store/products/:id/price, etc.
		method := c.Request.Method

		key := "rl:storefront:" + ip + ":" + method + ":" + endpoint
		resetKey := key + ":resetAt"

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.WithError(err).Warn("⚠️ Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		// First request → set expiry and stable resetAt
		if count == 1 {
			client.Expire(ctx, key, window)
			resetAt := time.Now().Add(window)
			client.Set(ctx, resetKey, resetAt.Unix(), window)
		}

		resetAtUnix, _ := client.Get(ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := max(maxRequests-int(count), 0)
		resetInSeconds := max(int(time.Until(resetAt).Seconds()), 0)

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Store in context for the response envelope
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			return
		}

		c.Next()
	}
}
