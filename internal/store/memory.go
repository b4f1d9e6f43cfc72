package store

import (
	"sync"

	"kb-go/internal/kanban"
)

// MemoryBackend is an in-memory implementation of the Backend interface.
// Nothing survives the process; it is useful for tests and throwaway boards.
// This implementation is safe for concurrent use.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryBackend creates a new in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

// Get retrieves the value stored under key.
func (m *MemoryBackend) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Put stores value under key, replacing any previous value.
func (m *MemoryBackend) Put(key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = stored
	return nil
}

// Close is a no-op for the in-memory backend.
func (m *MemoryBackend) Close() error { return nil }

// Compile-time check that MemoryBackend implements kanban.Backend
var _ kanban.Backend = (*MemoryBackend)(nil)
