// Package adapters caches the symbol list until the next trading day opens.
package adapters

import (
	"context"

	"github.com/redis/go-redis/v9"

	"market_relay/internal/feature/market/usecase"
	"market_relay/internal/platform/cache"
	"market_relay/internal/shared/record"
)

// RefreshHour is the local hour (Asia/Kathmandu) at which the cached list expires.
const RefreshHour = 8

// CachedSymbols serves Symbols from Redis and delegates everything else.
type CachedSymbols struct {
	usecase.MarketSource
	rt *cache.ReadThrough[[]record.Record]
}

var _ usecase.MarketSource = (*CachedSymbols)(nil)

// NewCachedSymbols wraps src. With a nil client Symbols is a pass-through.
func NewCachedSymbols(src usecase.MarketSource, rdb *redis.Client) *CachedSymbols {
	load := func(ctx context.Context, _ string) ([]record.Record, error) {
		return src.Symbols(ctx)
	}
	return &CachedSymbols{
		MarketSource: src,
		rt:           cache.NewReadThrough(rdb, cache.UntilNext(cache.Kathmandu, RefreshHour), "companies", load),
	}
}

// Symbols implements usecase.MarketSource.
func (c *CachedSymbols) Symbols(ctx context.Context) ([]record.Record, error) {
	return c.rt.Get(ctx, "symbols")
}
