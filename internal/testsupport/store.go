package testsupport

import (
	"io"
	"testing"

	"lrc/internal/config"
	"lrc/internal/settings"
	"lrc/internal/store"
)

// MustOpenStore opens the store selected by cfg and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) settings.Store {
	t.Helper()

	s, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	if closer, ok := s.(io.Closer); ok {
		t.Cleanup(func() {
			_ = closer.Close()
		})
	}
	return s
}

// NewMemoryStore returns a memory store that already holds initial, or an
// empty never-synced store when initial is nil.
func NewMemoryStore(t testing.TB, initial map[string]string) *store.Memory {
	t.Helper()

	if initial == nil {
		return store.NewMemory()
	}
	return store.NewMemoryWith(initial)
}
