// Package handler provides platform-level HTTP handlers.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PingFunc checks one optional dependency.
type PingFunc func(ctx context.Context) error

// HealthHandler answers liveness probes and reports optional dependencies.
type HealthHandler struct {
	redis PingFunc
}

// NewHealthHandler creates a HealthHandler. A nil redis ping reports "disabled".
func NewHealthHandler(redis PingFunc) *HealthHandler {
	return &HealthHandler{redis: redis}
}

// Health serves /healthz.
// The relay stays live without Redis, so the status code is 200 either way.
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	redisState := "disabled"
	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := h.redis(ctx); err != nil {
			redisState = "down"
		} else {
			redisState = "up"
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "redis": redisState})
}
