// Package repositories provides the persistence layer for locally stored
// application state.
//
// The catalog itself is never persisted client-side; the only thing written
// to disk is the settings table backing [SettingsRepository] (UI preferences
// such as language, menu state, and the last visited route).
package repositories
