package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_relay/internal/feature/depository/domain/entity"
	"market_relay/internal/platform/cache"
)

type countingSource struct {
	pairs []entity.Pair
	err   error
	calls int
}

func (s *countingSource) Statistics(context.Context) ([]entity.Pair, error) {
	s.calls++
	return s.pairs, s.err
}

func TestCachedStatistics(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	src := &countingSource{pairs: []entity.Pair{{Value: "6,000,000", Label: "Demat"}}}
	c := NewCachedStatistics(src, rdb, cache.Fixed(time.Minute))

	for i := 0; i < 3; i++ {
		got, err := c.Statistics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, src.pairs, got)
	}
	assert.Equal(t, 1, src.calls)
	assert.True(t, mr.Exists("cdsc:statistics"))
	assert.Equal(t, time.Minute, mr.TTL("cdsc:statistics"))

	// expiry forces a reload
	mr.FastForward(time.Minute)
	_, err := c.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestCachedStatistics_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	src := &countingSource{err: errors.New("boom")}
	c := NewCachedStatistics(src, rdb, cache.Fixed(time.Minute))

	_, err := c.Statistics(context.Background())
	assert.Error(t, err)
	assert.False(t, mr.Exists("cdsc:statistics"))
}

func TestCachedStatistics_WithoutRedis(t *testing.T) {
	t.Parallel()

	src := &countingSource{pairs: []entity.Pair{}}
	c := NewCachedStatistics(src, nil, nil)

	_, _ = c.Statistics(context.Background())
	_, _ = c.Statistics(context.Background())
	assert.Equal(t, 2, src.calls)
}
