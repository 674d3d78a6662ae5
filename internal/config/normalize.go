package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return c.normalizeStore()
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DefaultProjectDir) == "" {
		c.Paths.DefaultProjectDir = defaultProjectDir
	}
	if c.Paths.DefaultProjectDir, err = expandPath(c.Paths.DefaultProjectDir); err != nil {
		return fmt.Errorf("paths.default_project_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Dir(c.Paths.DefaultProjectDir)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.FileName = strings.TrimSpace(c.Logging.FileName)
	if c.Logging.FileName == "" {
		c.Logging.FileName = defaultLogFileName
	}
}

func (c *Config) normalizeStore() error {
	if value, ok := os.LookupEnv("LRC_STORE_BACKEND"); ok && strings.TrimSpace(value) != "" {
		c.Store.Backend = value
	}
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	if c.Store.Backend == "" {
		c.Store.Backend = defaultStoreBackend
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		c.Store.Path = ""
		return nil
	}
	var err error
	if c.Store.Path, err = expandPath(c.Store.Path); err != nil {
		return fmt.Errorf("store.path: %w", err)
	}
	return nil
}
