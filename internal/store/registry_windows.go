//go:build windows

package store

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/windows/registry"

	"lrc/internal/settings"
)

// Registry keeps values as REG_SZ entries under
// HKEY_CURRENT_USER\Software\<Organization>\<Application>.
type Registry struct {
	keyPath string

	mu     sync.Mutex
	vals   values
	exists bool
}

func openRegistry(ns Namespace) (settings.Store, error) {
	r, err := OpenRegistry(ns)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// OpenRegistry reads the string values stored for ns. A missing key is not
// an error; it is created by the first Sync.
func OpenRegistry(ns Namespace) (*Registry, error) {
	r := &Registry{
		keyPath: `Software\` + ns.Organization + `\` + ns.Application,
		vals:    newValues(),
	}

	key, err := registry.OpenKey(registry.CURRENT_USER, r.keyPath, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open registry key %s: %w", r.Path(), err)
	}
	defer key.Close()
	r.exists = true

	names, err := key.ReadValueNames(0)
	if err != nil {
		return nil, fmt.Errorf("list registry values: %w", err)
	}
	for _, name := range names {
		value, _, err := key.GetStringValue(name)
		if err != nil {
			// Values written by other tools with non-string types are skipped.
			continue
		}
		r.vals.current[name] = value
	}
	return r, nil
}

func (r *Registry) Path() string { return `HKEY_CURRENT_USER\` + r.keyPath }

func (r *Registry) Exists() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.exists
}

func (r *Registry) Value(key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.vals.get(key)
}

func (r *Registry) Contains(key string) bool {
	_, ok := r.Value(key)
	return ok
}

func (r *Registry) Set(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vals.set(key, value)
}

func (r *Registry) Sync() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, _, err := registry.CreateKey(registry.CURRENT_USER, r.keyPath, registry.SET_VALUE|registry.QUERY_VALUE)
	if err != nil {
		return fmt.Errorf("create registry key %s: %w", r.Path(), err)
	}
	defer key.Close()

	for _, name := range r.vals.pendingKeys() {
		if err := key.SetStringValue(name, r.vals.pending[name]); err != nil {
			return fmt.Errorf("write registry value %q: %w", name, err)
		}
	}
	r.vals.commit()
	r.exists = true
	return nil
}
