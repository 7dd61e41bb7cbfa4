// Package ratelimiter limits how many requests one client may make within a rolling window.
package ratelimiter

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultLimit is the number of accepted requests per client and window.
	DefaultLimit = 10
	// DefaultWindow is the length of the rolling window.
	DefaultWindow = 60 * time.Second
)

// Store decides whether one more request of a client fits in its window.
// Allow is a check-and-increment: an accepted request is counted, a rejected one is not.
type Store interface {
	Allow(ctx context.Context, clientID string) (bool, error)
}

// MemoryStore is a process-local sliding window keyed by client id.
// Timestamps older than the window are discarded lazily on each check.
type MemoryStore struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu   sync.Mutex
	hits map[string][]time.Time
}

// MemoryStoreがStoreを実装していることをコンパイル時に検証します。
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore. Non-positive arguments fall back to the defaults.
func NewMemoryStore(limit int, window time.Duration) *MemoryStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &MemoryStore{
		limit:  limit,
		window: window,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
}

// Allow implements Store.
func (s *MemoryStore) Allow(_ context.Context, clientID string) (bool, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	// 期限切れのタイムスタンプを除外
	recent := s.hits[clientID][:0]
	for _, t := range s.hits[clientID] {
		if now.Sub(t) < s.window {
			recent = append(recent, t)
		}
	}

	if len(recent) >= s.limit {
		s.hits[clientID] = recent
		return false, nil
	}
	s.hits[clientID] = append(recent, now)
	return true, nil
}
