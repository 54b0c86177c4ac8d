// Package ui implements the interactive catalog browser using bubbletea's
// Elm architecture.
//
// The TUI provides three views:
//  1. [SongListView] : searchable song list backed by the shared catalog caches
//  2. [SongDetailView] : one song's detail form with view/edit/submit modes
//  3. [ConfirmDeleteView] : blocking yes/no prompt guarding deletion
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Engine calls run as commands off the update loop; their results come back
// as typed messages carrying a payload and an error.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
