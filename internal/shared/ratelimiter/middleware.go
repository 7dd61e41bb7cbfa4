package ratelimiter

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// TooManyRequestsMessage is the fixed body message of a rejected request.
const TooManyRequestsMessage = "Too many requests. Please try again later."

// Middleware rejects a client with 429 once its window is exhausted.
// It must run before authentication so that rejected clients never reach the key check.
// Store errors fail open.
func Middleware(store Store, retryAfterSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.ClientIP()

		allowed, err := store.Allow(c.Request.Context(), clientID)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "client", clientID, "error", err)
			c.Next()
			return
		}
		if !allowed {
			if retryAfterSeconds > 0 {
				c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": TooManyRequestsMessage,
			})
			return
		}
		c.Next()
	}
}
