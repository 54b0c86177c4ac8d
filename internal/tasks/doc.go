// Package tasks implements the aggregation layer over the per-entity
// resource stores.
//
// The core abstraction is CatalogEngine, which joins songs with their artist
// and related companies into detail bundles, and sequences the multi-step
// writes a save requires (song write, then company membership reconciliation).
// Outcomes are reported to the UI through a Notifier.
package tasks
