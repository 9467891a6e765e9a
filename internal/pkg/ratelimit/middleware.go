package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/debanjo31/uLearnApi/internal/pkg/response"
)

// Middleware enforces the limiter per client IP. Applied to the credential
// endpoints to slow brute-force attempts.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			resetTime := limiter.GetResetTime(key)

			c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetTime.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(int(time.Until(resetTime).Seconds())+1))

			c.JSON(http.StatusTooManyRequests, response.APIResponse{
				Success:    false,
				StatusCode: http.StatusTooManyRequests,
				Message:    "Rate limit exceeded. Try again later.",
				Error:      "Rate limit exceeded. Try again later.",
				Data: gin.H{
					"retry_after": time.Until(resetTime).Round(time.Second).String(),
					"reset_time":  resetTime.Format(time.RFC3339),
				},
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.GetRemaining(key)))

		c.Next()
	}
}
