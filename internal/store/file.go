package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"lrc/internal/fileutil"
)

// fileDocument keeps values under [General], the section desktop settings
// files use for top-level keys.
type fileDocument struct {
	General map[string]string `toml:"General"`
}

// File persists values in a TOML document. Sync holds an exclusive lock on
// "<path>.lock", merges pending writes into what is on disk, and replaces the
// file atomically.
type File struct {
	path string
	lock *flock.Flock

	mu   sync.Mutex
	vals values
}

// OpenFile loads the document at path if it exists. A missing file is not an
// error; it is created by the first Sync.
func OpenFile(path string) (*File, error) {
	f := &File{
		path: path,
		lock: flock.New(path + ".lock"),
		vals: newValues(),
	}
	current, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	f.vals.current = current
	return f, nil
}

func readDocument(path string) (map[string]string, error) {
	data, ok, err := fileutil.ReadFileIfExists(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	out := map[string]string{}
	if !ok {
		return out, nil
	}
	var doc fileDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	for key, value := range doc.General {
		out[key] = value
	}
	return out, nil
}

func (f *File) Path() string { return f.path }

func (f *File) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

func (f *File) Value(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.vals.get(key)
}

func (f *File) Contains(key string) bool {
	_, ok := f.Value(key)
	return ok
}

func (f *File) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vals.set(key, value)
}

func (f *File) Sync() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("lock settings %s: %w", f.path, err)
	}
	defer func() {
		_ = f.lock.Unlock()
	}()

	// Another process may have written since we opened; keep its keys.
	onDisk, err := readDocument(f.path)
	if err != nil {
		return err
	}
	for key, value := range f.vals.pending {
		onDisk[key] = value
	}

	data, err := toml.Marshal(fileDocument{General: onDisk})
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := fileutil.WriteFileAtomic(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	f.vals.current = onDisk
	f.vals.pending = map[string]string{}
	return nil
}
