// Package deps reports whether the external binaries used by the audio tools
// can be found. Nothing here blocks a save; callers only display the result.
package deps
