// Package adapters decorates the statistics source with the Redis cache.
package adapters

import (
	"context"

	"github.com/redis/go-redis/v9"

	"market_relay/internal/feature/depository/domain/entity"
	"market_relay/internal/feature/depository/usecase"
	"market_relay/internal/platform/cache"
)

const statisticsKey = "statistics"

// CachedStatistics serves the raw pairs from Redis for the configured TTL.
type CachedStatistics struct {
	rt *cache.ReadThrough[[]entity.Pair]
}

var _ usecase.StatisticsSource = (*CachedStatistics)(nil)

// NewCachedStatistics wraps src. With a nil client it is a pass-through.
func NewCachedStatistics(src usecase.StatisticsSource, rdb *redis.Client, ttl cache.TTLFunc) *CachedStatistics {
	load := func(ctx context.Context, _ string) ([]entity.Pair, error) {
		return src.Statistics(ctx)
	}
	return &CachedStatistics{rt: cache.NewReadThrough(rdb, ttl, "cdsc", load)}
}

// Statistics implements usecase.StatisticsSource.
func (c *CachedStatistics) Statistics(ctx context.Context) ([]entity.Pair, error) {
	return c.rt.Get(ctx, statisticsKey)
}
