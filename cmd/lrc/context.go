package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"lrc/internal/audio"
	"lrc/internal/config"
	"lrc/internal/logging"
	"lrc/internal/settings"
	"lrc/internal/store"
)

type loggerFactory func(logging.Options) (*logging.Logger, error)

type commandContext struct {
	configFlag string
	openLogger loggerFactory
	// ownsLogger closes the logger on exit. The process logger from
	// Bootstrap stays open.
	ownsLogger bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *logging.Logger
	loggerErr  error

	storeOnce sync.Once
	store     settings.Store
	storeErr  error
}

func newCommandContext(openLogger loggerFactory) *commandContext {
	return &commandContext{openLogger: openLogger}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*logging.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := c.openLogger(logging.OptionsFromConfig(cfg))
		if err != nil {
			c.loggerErr = fmt.Errorf("initialize logging: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) ensureStore() (settings.Store, error) {
	c.storeOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.storeErr = err
			return
		}
		s, err := store.Open(cfg)
		if err != nil {
			c.storeErr = fmt.Errorf("open settings store: %w", err)
			return
		}
		c.store = s
	})
	return c.store, c.storeErr
}

// service builds a settings service that prints to out.
func (c *commandContext) service(out io.Writer) (*settings.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	s, err := c.ensureStore()
	if err != nil {
		return nil, err
	}
	return settings.New(s,
		settings.WithLogger(logger.Named(settings.LoggerName)),
		settings.WithOutput(out),
		settings.WithConverter(audio.SetConverter),
		settings.WithDefaultProjectDir(cfg.Paths.DefaultProjectDir),
	), nil
}

// loadOrDefault returns the persisted preferences, or the defaults when
// nothing has been saved yet. The saved transcoder location is applied to
// the audio converter.
func (c *commandContext) loadOrDefault(svc *settings.Service) (settings.AppSettings, bool, error) {
	if !svc.Exists() {
		cfg, err := c.ensureConfig()
		if err != nil {
			return settings.AppSettings{}, false, err
		}
		return settings.Defaults(cfg.Paths.DefaultProjectDir), false, nil
	}
	record, err := svc.Load()
	if err != nil {
		return settings.AppSettings{}, true, err
	}
	audio.SetConverter(record.FFmpegLocation)
	return record, true, nil
}

func (c *commandContext) close() {
	if closer, ok := c.store.(io.Closer); ok {
		_ = closer.Close()
	}
	if c.ownsLogger && c.logger != nil {
		_ = c.logger.Close()
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
