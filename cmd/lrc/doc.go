// Package main hosts the lrc CLI entrypoint and command graph.
//
// The Cobra command tree is a headless shell over the settings service:
// it shows, initialises and edits the persisted preferences, scaffolds the
// bootstrap configuration, and reports whether the transcoder can be found.
// Configuration, logging and the settings store are resolved lazily in
// commandContext so subcommands only pay for what they use.
package main
