package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Resource owns the cached client-side copy of one catalog collection.
//
// The collection is (re)fetched wholesale: once on the first Load and again
// after every create, update, or delete. The cache is never patched locally.
//
// Bulk loads swallow their errors (the stale cache is better than a crashed
// store); per-item operations propagate them.
type Resource[T any] struct {
	client *Client
	path   string
	logger *log.Logger

	mu      sync.RWMutex
	items   []T
	loading bool
}

// NewResource creates a store for the collection at path (e.g. "/songs").
func NewResource[T any](client *Client, path string, logger *log.Logger) *Resource[T] {
	return &Resource[T]{client: client, path: path, logger: logger}
}

// Path returns the collection path this store is bound to.
func (r *Resource[T]) Path() string {
	return r.path
}

// SetLogger redirects the store's failure logging, so callers that redraw the
// terminal can move it off stdout.
func (r *Resource[T]) SetLogger(logger *log.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

func (r *Resource[T]) log() *log.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logger
}

// All returns a copy of the cached collection.
func (r *Resource[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, len(r.items))
	copy(items, r.items)
	return items
}

// Loading reports whether a request is in flight. Overlapping calls may race
// on the flag's reset order; the store's busy indicator is advisory, not a
// lock.
func (r *Resource[T]) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

func (r *Resource[T]) setLoading(v bool) {
	r.mu.Lock()
	r.loading = v
	r.mu.Unlock()
}

// Load fetches the full collection and replaces the cache. Failures are
// logged and leave the cache unchanged.
func (r *Resource[T]) Load(ctx context.Context) {
	r.setLoading(true)
	defer r.setLoading(false)

	var items []T
	if err := r.client.Get(ctx, r.path, &items); err != nil {
		r.log().Error("failed to load collection", "path", r.path, "err", err)
		return
	}

	r.mu.Lock()
	r.items = items
	r.mu.Unlock()
}

// Get fetches a single entity by id. Always round-trips to the API rather
// than serving from the cache, so a stale collection can't mask a deletion.
func (r *Resource[T]) Get(ctx context.Context, id int) (T, error) {
	r.setLoading(true)
	defer r.setLoading(false)

	var item T
	if err := r.client.Get(ctx, fmt.Sprintf("%s/%d", r.path, id), &item); err != nil {
		return item, err
	}
	return item, nil
}

// Create posts a new entity, refreshes the collection, and returns the
// created entity with its server-assigned id.
func (r *Resource[T]) Create(ctx context.Context, data T) (T, error) {
	r.setLoading(true)
	defer r.setLoading(false)

	var created T
	if err := r.client.Post(ctx, r.path, data, &created); err != nil {
		return created, err
	}

	r.refresh(ctx)
	return created, nil
}

// Update patches an existing entity, refreshes the collection, and returns
// the updated entity.
func (r *Resource[T]) Update(ctx context.Context, id int, data T) (T, error) {
	r.setLoading(true)
	defer r.setLoading(false)

	var updated T
	if err := r.client.Patch(ctx, fmt.Sprintf("%s/%d", r.path, id), data, &updated); err != nil {
		return updated, err
	}

	r.refresh(ctx)
	return updated, nil
}

// Delete removes an entity and refreshes the collection.
func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	r.setLoading(true)
	defer r.setLoading(false)

	if err := r.client.Delete(ctx, fmt.Sprintf("%s/%d", r.path, id)); err != nil {
		return err
	}

	r.refresh(ctx)
	return nil
}

// refresh re-fetches the collection after a mutation. Like Load, failures
// only log: the mutation itself already succeeded.
func (r *Resource[T]) refresh(ctx context.Context) {
	var items []T
	if err := r.client.Get(ctx, r.path, &items); err != nil {
		r.log().Error("failed to refresh collection", "path", r.path, "err", err)
		return
	}

	r.mu.Lock()
	r.items = items
	r.mu.Unlock()
}
