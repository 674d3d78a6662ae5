package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"lrc/internal/config"
)

const (
	// DefaultFileName is the log file written inside the log directory.
	DefaultFileName = "log_hermes.log"
	// DefaultBackups is the number of rolled-over daily files kept.
	DefaultBackups = 90
)

// Options describes logger construction parameters.
type Options struct {
	// Dir receives the log file. It is created with any missing parents.
	Dir      string
	FileName string
	Level    string
	Backups  int
	// Console receives a copy of every line. Nil disables the console sink.
	Console io.Writer
	// Now overrides the clock used for daily rollover.
	Now func() time.Time
}

// Logger is the process log: one file sink plus an optional console sink
// sharing one line format.
type Logger struct {
	handler slog.Handler
	file    *dailyFile
	path    string

	mu    sync.Mutex
	named map[string]*slog.Logger
}

var (
	bootstrapOnce   sync.Once
	bootstrapLogger *Logger
	bootstrapErr    error
)

// Bootstrap builds the process logger on its first call. Later calls ignore
// opts and return the first result, so every component shares one set of
// sinks.
func Bootstrap(opts Options) (*Logger, error) {
	bootstrapOnce.Do(func() {
		bootstrapLogger, bootstrapErr = New(opts)
	})
	return bootstrapLogger, bootstrapErr
}

// New constructs a logger using the provided options. Most callers want
// Bootstrap; New exists for tools and tests that need an isolated instance.
func New(opts Options) (*Logger, error) {
	dir := strings.TrimSpace(opts.Dir)
	if dir == "" {
		return nil, errors.New("log directory must be set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}

	name := strings.TrimSpace(opts.FileName)
	if name == "" {
		name = DefaultFileName
	}
	backups := opts.Backups
	if backups <= 0 {
		backups = DefaultBackups
	}

	path := filepath.Join(dir, name)
	file, err := openDailyFile(path, backups, opts.Now)
	if err != nil {
		return nil, err
	}

	level := new(slog.LevelVar)
	level.Set(ParseLevel(opts.Level))

	var console slog.Handler
	if opts.Console != nil {
		console = newLineHandler(opts.Console, level)
	}

	return &Logger{
		handler: newFanoutHandler(newLineHandler(file, level), console),
		file:    file,
		path:    path,
		named:   make(map[string]*slog.Logger),
	}, nil
}

// OptionsFromConfig maps the bootstrap configuration onto logger options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Dir:      cfg.Paths.LogDir,
		FileName: cfg.Logging.FileName,
		Level:    cfg.Logging.Level,
		Backups:  cfg.Logging.RetentionDays,
	}
	if cfg.Logging.Console {
		opts.Console = os.Stdout
	}
	return opts
}

// Named returns the logger tagged with name, creating it on first use.
func (l *Logger) Named(name string) *slog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	if logger, ok := l.named[name]; ok {
		return logger
	}
	logger := slog.New(l.handler).With(String(FieldLogger, name))
	l.named[name] = logger
	return logger
}

// Path returns the active log file path.
func (l *Logger) Path() string {
	return l.path
}

// Close flushes and closes the log file. The process logger is normally left
// open until exit.
func (l *Logger) Close() error {
	return l.file.Close()
}
