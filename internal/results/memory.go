package results

import (
	"context"
	"sync"
)

// MemoryStore keeps results in process memory. Used in tests and as the
// zero-configuration default.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []StoredResult
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, r StoredResult) error {
	s.mu.Lock()
	s.entries = append(s.entries, r)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Latest(_ context.Context, sessionFilename string) (StoredResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return latest(s.entries, sessionFilename)
}

func (s *MemoryStore) All(_ context.Context) ([]StoredResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]StoredResult, len(s.entries))
	copy(out, s.entries)
	return out, nil
}
