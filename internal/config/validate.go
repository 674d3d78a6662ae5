package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateStore()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DefaultProjectDir) == "" {
		return errors.New("paths.default_project_dir must be set")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn or error)", c.Logging.Level)
	}
	if c.Logging.RetentionDays <= 0 {
		return errors.New("logging.retention_days must be positive")
	}
	if filepath.Base(c.Logging.FileName) != c.Logging.FileName {
		return fmt.Errorf("logging.file_name must be a bare file name, got %q", c.Logging.FileName)
	}
	return nil
}

func (c *Config) validateStore() error {
	switch c.Store.Backend {
	case BackendFile, BackendSQLite, BackendRegistry, BackendMemory:
		return nil
	default:
		return fmt.Errorf("store.backend: unsupported value %q (use file, sqlite, registry or memory)", c.Store.Backend)
	}
}
