package store

import "sync"

// Memory keeps values in process memory. Exists turns true after the first
// Sync. SyncErr, when set, makes Sync fail without committing anything.
type Memory struct {
	mu      sync.Mutex
	vals    values
	synced  bool
	SyncErr error
}

// NewMemory returns an empty memory store.
func NewMemory() *Memory {
	return &Memory{vals: newValues()}
}

// NewMemoryWith returns a memory store that behaves as if values had already
// been persisted.
func NewMemoryWith(initial map[string]string) *Memory {
	m := NewMemory()
	for key, value := range initial {
		m.vals.current[key] = value
	}
	m.synced = true
	return m
}

func (m *Memory) Path() string { return "memory" }

func (m *Memory) Exists() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.synced
}

func (m *Memory) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vals.get(key)
}

func (m *Memory) Contains(key string) bool {
	_, ok := m.Value(key)
	return ok
}

func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals.set(key, value)
}

func (m *Memory) Sync() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SyncErr != nil {
		m.vals.pending = map[string]string{}
		return m.SyncErr
	}
	m.vals.commit()
	m.synced = true
	return nil
}

// Persisted returns a copy of the committed values.
func (m *Memory) Persisted() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.vals.current))
	for key, value := range m.vals.current {
		out[key] = value
	}
	return out
}
