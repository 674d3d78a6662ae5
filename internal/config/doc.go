// Package config loads, normalizes, and validates the bootstrap
// configuration for the Language Resource Creator tools.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the LRC_STORE_BACKEND
// environment fallback. The Config type tells the rest of the program where
// the default project directory lives, where log files go, and which
// settings store backend holds the user's preferences.
//
// User preferences themselves (audio quality, microphone, ...) are not kept
// here; they live in the settings store managed by package settings.
package config
