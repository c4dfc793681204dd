package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests and local runs without
// Redis. Same semantics: absent slots load as nil.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, session, slot string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[session+"/"+slot]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, session, slot string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.slots[session+"/"+slot] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, session, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, session+"/"+slot)
	return nil
}
