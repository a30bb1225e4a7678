package audit

import (
	"context"
	"sync"
)

type InMemoryStore struct {
	mu        sync.RWMutex
	events    map[string][]Event
	retention int
}

// MemoryOption configures an InMemoryStore.
type MemoryOption func(*InMemoryStore)

// WithRetention caps the events kept per holder. Values below 1 are ignored.
func WithRetention(n int) MemoryOption {
	return func(s *InMemoryStore) {
		if n > 0 {
			s.retention = n
		}
	}
}

func NewInMemoryStore(opts ...MemoryOption) *InMemoryStore {
	s := &InMemoryStore{events: make(map[string][]Event), retention: DefaultRetention}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[string][]Event)
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := append(s.events[event.HolderDID], event)
	if over := len(events) - s.retention; over > 0 {
		events = append([]Event(nil), events[over:]...)
	}
	s.events[event.HolderDID] = events
	return nil
}

// ListByHolder returns a copy of the holder's events in append order.
// Holders with no events yield ErrNotFound.
func (s *InMemoryStore) ListByHolder(_ context.Context, holderDID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events, ok := s.events[holderDID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]Event{}, events...), nil
}
