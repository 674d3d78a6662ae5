package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"lrc/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The store defaults to the memory backend and console logging is off.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DefaultProjectDir = filepath.Join(base, "hermes", "projects")
	cfgVal.Paths.LogDir = filepath.Join(base, "hermes")
	cfgVal.Logging.Console = false
	cfgVal.Store.Backend = config.BackendMemory

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithBackend selects a store backend. File-backed stores are placed under
// the config's temp directory.
func WithBackend(backend string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Store.Backend = backend
		switch backend {
		case config.BackendFile:
			b.cfg.Store.Path = filepath.Join(b.baseDir, "config", config.Organization, config.Application+".toml")
		case config.BackendSQLite:
			b.cfg.Store.Path = filepath.Join(b.baseDir, "config", config.Organization, config.Application+".db")
		default:
			b.cfg.Store.Path = ""
		}
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// replaces PATH with their directory. If names is empty, ffmpeg is stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"ffmpeg"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}

// WriteConfig writes cfg as TOML into the base directory and returns its path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	path := filepath.Join(BaseDir(cfg), "config.toml")
	if err := config.Write(path, cfg); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
