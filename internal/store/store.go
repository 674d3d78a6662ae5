package store

import (
	"errors"
	"fmt"
	"sort"

	"lrc/internal/config"
	"lrc/internal/settings"
)

// ErrBackendUnsupported is returned when a backend is unavailable on the
// running platform.
var ErrBackendUnsupported = errors.New("settings backend not supported on this platform")

// Namespace identifies the organization and application owning the values.
type Namespace struct {
	Organization string
	Application  string
}

// DefaultNamespace is the namespace every backend writes under.
var DefaultNamespace = Namespace{
	Organization: config.Organization,
	Application:  config.Application,
}

// Open returns a store for the backend selected in cfg. Callers should open
// one store per process and close it (if it implements io.Closer) on exit.
func Open(cfg *config.Config) (settings.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendFile:
		path, err := cfg.StorePath()
		if err != nil {
			return nil, err
		}
		f, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	case config.BackendSQLite:
		path, err := cfg.StorePath()
		if err != nil {
			return nil, err
		}
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.BackendRegistry:
		return openRegistry(DefaultNamespace)
	case config.BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("open settings store: unknown backend %q", cfg.Store.Backend)
	}
}

// values is the in-memory view shared by the persistent backends: what was
// read at open time plus the pending writes of the next Sync.
type values struct {
	current map[string]string
	pending map[string]string
}

func newValues() values {
	return values{current: map[string]string{}, pending: map[string]string{}}
}

func (v *values) get(key string) (string, bool) {
	if value, ok := v.pending[key]; ok {
		return value, true
	}
	value, ok := v.current[key]
	return value, ok
}

func (v *values) set(key, value string) {
	v.pending[key] = value
}

// commit folds pending writes into current after a successful Sync.
func (v *values) commit() {
	for key, value := range v.pending {
		v.current[key] = value
	}
	v.pending = map[string]string{}
}

func (v *values) pendingKeys() []string {
	keys := make([]string, 0, len(v.pending))
	for key := range v.pending {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
