// Package store holds guardian verification caches keyed by guardian DID.
package store

import (
	"context"
	"sync"
	"time"

	psync "walletgate/pkg/platform/sync"
)

// MemoryStore keeps verification expiry times in process memory.
// Expired entries are dropped lazily on read and by Sweep.
type MemoryStore struct {
	locks   *psync.ShardedMutex
	mu      sync.RWMutex
	expires map[string]time.Time
	now     func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the clock used for expiry.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

func NewMemory(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		locks:   psync.NewShardedMutex(),
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) MarkVerified(_ context.Context, guardianDID string, ttl time.Duration) error {
	s.locks.WithLock(guardianDID, func() {
		s.mu.Lock()
		s.expires[guardianDID] = s.now().Add(ttl)
		s.mu.Unlock()
	})
	return nil
}

func (s *MemoryStore) IsVerified(_ context.Context, guardianDID string) (bool, error) {
	s.locks.Lock(guardianDID)
	defer s.locks.Unlock(guardianDID)
	s.mu.RLock()
	expiresAt, ok := s.expires[guardianDID]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if !s.now().Before(expiresAt) {
		s.mu.Lock()
		delete(s.expires, guardianDID)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Clear(_ context.Context, guardianDID string) error {
	s.locks.WithLock(guardianDID, func() {
		s.mu.Lock()
		delete(s.expires, guardianDID)
		s.mu.Unlock()
	})
	return nil
}

// Sweep removes every expired entry and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for did, expiresAt := range s.expires {
		if !now.Before(expiresAt) {
			delete(s.expires, did)
			removed++
		}
	}
	return removed
}
