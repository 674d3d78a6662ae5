//go:build !windows

package store

import (
	"fmt"

	"lrc/internal/settings"
)

func openRegistry(ns Namespace) (settings.Store, error) {
	return nil, fmt.Errorf("registry backend for %s/%s: %w", ns.Organization, ns.Application, ErrBackendUnsupported)
}
