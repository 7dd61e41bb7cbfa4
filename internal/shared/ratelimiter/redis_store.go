package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// slidingWindowScript prunes, counts and records atomically.
// KEYS[1] = window key, ARGV = now(ms), window(ms), limit, member.
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
if redis.call('ZCARD', key) >= limit then
	return 0
end
redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window)
return 1
`)

// RedisStore keeps the sliding window in a Redis sorted set per client so that
// several relay processes share one budget.
type RedisStore struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore. An empty prefix defaults to "ratelimit".
func NewRedisStore(client *redis.Client, prefix string, limit int, window time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit"
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// key returns the Redis key for a client.
func (r *RedisStore) key(clientID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, clientID)
}

// Allow implements Store.
func (r *RedisStore) Allow(ctx context.Context, clientID string) (bool, error) {
	now := r.now().UnixMilli()
	member := fmt.Sprintf("%d-%s", now, uuid.NewString())

	res, err := slidingWindowScript.Run(ctx, r.client, []string{r.key(clientID)},
		now, r.window.Milliseconds(), r.limit, member).Int()
	if err != nil {
		return false, fmt.Errorf("ratelimiter: redis window: %w", err)
	}
	return res == 1, nil
}
