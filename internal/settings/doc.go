// Package settings maps the user's recording preferences between the typed
// AppSettings record and the string-keyed settings store.
//
// Audio quality is persisted by display name ("High"), output format by the
// decimal ordinal of its OutputMode, and an unset FFmpeg location by the
// literal "None". The encoding tables are generated from one source table so
// that every quality level has exactly one persisted name.
//
// Service is the contract the application shell uses: Load, Save, Exists,
// Print and SetFFmpegLocation. The shell never touches the store directly.
package settings
