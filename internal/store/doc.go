// Package store provides the backends that persist user preferences as
// string key/value pairs under the "CoEDL / Language Resource Creator"
// namespace.
//
// The file backend (TOML, the default) and the SQLite backend apply a Sync
// as a single all-or-nothing write. On Windows the registry backend keeps
// values under HKEY_CURRENT_USER like other desktop applications. The memory
// backend exists for tests.
//
// Backends buffer Set calls until Sync; nothing is created on disk before
// the first Sync.
package store
