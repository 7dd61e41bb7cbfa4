// Package cache provides a Redis read-through cache for upstream payloads.
package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is used when no TTLFunc is given.
const DefaultTTL = 5 * time.Minute

// Loader fetches the value of key from the source of truth.
type Loader[T any] func(ctx context.Context, key string) (T, error)

// ReadThrough decorates a Loader with Redis caching.
// With a nil client every call goes straight to the loader.
type ReadThrough[T any] struct {
	rdb       *redis.Client
	ttl       TTLFunc
	namespace string
	load      Loader[T]
}

// NewReadThrough creates a ReadThrough. A nil ttl means DefaultTTL and an empty
// namespace means "relay".
func NewReadThrough[T any](rdb *redis.Client, ttl TTLFunc, namespace string, load Loader[T]) *ReadThrough[T] {
	if ttl == nil {
		ttl = Fixed(DefaultTTL)
	}
	if namespace == "" {
		namespace = "relay"
	}
	return &ReadThrough[T]{rdb: rdb, ttl: ttl, namespace: namespace, load: load}
}

// Get returns the cached value of key, loading and storing it on a miss.
// Redis errors never fail the call; they only cost a cache miss.
func (c *ReadThrough[T]) Get(ctx context.Context, key string) (T, error) {
	if c.rdb == nil {
		return c.load(ctx, key)
	}

	k := c.cacheKey(key)

	// 1) キャッシュを確認
	if b, err := c.rdb.Get(ctx, k).Bytes(); err == nil && len(b) > 0 {
		var out T
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err := dec.Decode(&out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, k).Err()
	}

	// 2) Fallback to the loader
	out, err := c.load(ctx, key)
	if err != nil {
		return out, err
	}

	// 3) Store (best effort)
	if b, err := json.Marshal(out); err == nil {
		if ttl := c.ttl(); ttl > 0 {
			if err := c.rdb.Set(ctx, k, b, ttl).Err(); err != nil {
				slog.Debug("cache write failed", "key", k, "error", err)
			}
		}
	}
	return out, nil
}

// cacheKey namespaces a key.
func (c *ReadThrough[T]) cacheKey(key string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(key))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
