package store

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, decode(key, raw, dest)
}

func (s *memoryStore) Put(_ context.Context, key string, value any) error {
	raw, err := encode(key, value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// PutRaw stores bytes as-is. Tests use it to plant hand-edited contents.
func PutRaw(s Store, key string, raw []byte) bool {
	m, ok := s.(*memoryStore)
	if !ok {
		return false
	}
	m.mu.Lock()
	m.entries[key] = append([]byte(nil), raw...)
	m.mu.Unlock()
	return true
}
