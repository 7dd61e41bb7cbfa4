package di

import (
	"github.com/redis/go-redis/v9"

	"market_relay/internal/platform/config"
	"market_relay/internal/shared/ratelimiter"
)

// NewLimiterStore creates the inbound rate-limit store.
// If Redis is available, the window is shared through Redis.
// Otherwise, it falls back to process memory.
func NewLimiterStore(rdb *redis.Client, cfg config.RateLimitConfig) ratelimiter.Store {
	if rdb != nil {
		return ratelimiter.NewRedisStore(rdb, "ratelimit", cfg.Requests, cfg.Window)
	}
	return ratelimiter.NewMemoryStore(cfg.Requests, cfg.Window)
}
