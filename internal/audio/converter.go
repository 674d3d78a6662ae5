// Package audio holds process-wide state shared by the audio tools.
package audio

import (
	"strings"
	"sync"
)

// DefaultConverter is the transcoder resolved from PATH when no explicit
// location has been set.
const DefaultConverter = "ffmpeg"

var (
	converterMu   sync.RWMutex
	converterPath string
)

// SetConverter points every later conversion at path. An empty path restores
// the system FFmpeg. It matches settings.ConverterHook.
func SetConverter(path string) {
	converterMu.Lock()
	defer converterMu.Unlock()
	converterPath = strings.TrimSpace(path)
}

// Converter returns the binary conversions should execute.
func Converter() string {
	converterMu.RLock()
	defer converterMu.RUnlock()
	if converterPath == "" {
		return DefaultConverter
	}
	return converterPath
}
