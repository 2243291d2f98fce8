package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type entry struct {
	payload    json.RawMessage
	insertedAt time.Time
}

// MemoryStore keeps entries in a map guarded by a RWMutex
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     Clock
}

func NewMemoryStore(now Clock) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || !isValid(e.insertedAt, s.now()) {
		return nil, false, nil
	}
	return e.payload, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, payload json.RawMessage) error {
	stored := make(json.RawMessage, len(payload))
	copy(stored, payload)

	s.mu.Lock()
	s.entries[key] = entry{payload: stored, insertedAt: s.now()}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) InvalidateAll(_ context.Context) error {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Status(_ context.Context) (map[string]EntryStatus, error) {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	status := make(map[string]EntryStatus, len(s.entries))
	for key, e := range s.entries {
		status[key] = entryStatus(e.insertedAt, now)
	}
	return status, nil
}
