// Package cache implements the time based revalidation cache used by the content fetcher.
package cache

import (
	"context"
	"sync"
	"time"
)

// Entry is a cached value together with the time it was loaded.
type Entry[V any] struct {
	Value    V         `json:"value"`
	StoredAt time.Time `json:"storedAt"`
}

// Store holds entries by key. Set replaces an entry as a whole; readers never
// observe a partially written entry.
type Store[V any] interface {
	Get(ctx context.Context, key string) (Entry[V], bool, error)
	Set(ctx context.Context, key string, entry Entry[V]) error
}

// MemoryStore is a process local Store.
type MemoryStore[V any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[V]
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore[V any]() *MemoryStore[V] {
	return &MemoryStore[V]{
		entries: make(map[string]Entry[V]),
	}
}

func (s *MemoryStore[V]) Get(_ context.Context, key string) (Entry[V], bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	return e, ok, nil
}

func (s *MemoryStore[V]) Set(_ context.Context, key string, entry Entry[V]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry
	return nil
}
