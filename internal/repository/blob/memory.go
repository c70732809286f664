package blob

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in a map. Used by tests and the memory backend.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemory() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	value, ok := s.items[key]
	s.mu.RUnlock()
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.items[key] = value
	s.mu.Unlock()
	return nil
}
