package server

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed seed.json
var defaultSeed []byte

// Store holds the development catalog in memory as ordered collections of
// JSON objects, mirroring how a fixture-backed mock API behaves: ids are
// integers assigned in sequence, PATCH merges fields into the stored object.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]map[string]any
	nextID      map[string]int
}

// NewStore creates a store from a JSON seed of the form
// {"songs": [...], "artists": [...], "companies": [...]}. A nil seed loads
// the embedded fixture.
func NewStore(seed []byte) (*Store, error) {
	if seed == nil {
		seed = defaultSeed
	}

	var collections map[string][]map[string]any
	if err := json.Unmarshal(seed, &collections); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	nextID := make(map[string]int, len(collections))
	for name, items := range collections {
		for _, item := range items {
			if id, ok := itemID(item); ok && id >= nextID[name] {
				nextID[name] = id
			}
		}
		nextID[name]++
	}

	return &Store{collections: collections, nextID: nextID}, nil
}

// Collections returns the names of the seeded collections.
func (s *Store) Collections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names
}

// Has reports whether the named collection exists.
func (s *Store) Has(collection string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.collections[collection]
	return ok
}

// List returns all items in a collection.
func (s *Store) List(collection string) []map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]map[string]any, len(s.collections[collection]))
	copy(items, s.collections[collection])
	return items
}

// Get returns the item with the given id.
func (s *Store) Get(collection string, id int) (map[string]any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.collections[collection] {
		if itemHasID(item, id) {
			return item, true
		}
	}
	return nil, false
}

// Create appends a new item with the next sequential id and returns it.
func (s *Store) Create(collection string, body map[string]any) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID[collection]
	s.nextID[collection]++

	item := make(map[string]any, len(body)+1)
	for k, v := range body {
		item[k] = v
	}
	item["id"] = id

	s.collections[collection] = append(s.collections[collection], item)
	return item
}

// Update merges body into the stored item, preserving its id, and returns
// the merged item.
func (s *Store) Update(collection string, id int, body map[string]any) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.collections[collection] {
		if !itemHasID(item, id) {
			continue
		}

		for k, v := range body {
			if k == "id" {
				continue
			}
			item[k] = v
		}
		s.collections[collection][i] = item
		return item, true
	}
	return nil, false
}

// Delete removes the item with the given id.
func (s *Store) Delete(collection string, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.collections[collection]
	for i, item := range items {
		if itemHasID(item, id) {
			s.collections[collection] = append(items[:i:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// itemID extracts the integer id from a decoded JSON object. JSON numbers
// decode as float64.
func itemID(item map[string]any) (int, bool) {
	switch id := item["id"].(type) {
	case float64:
		return int(id), true
	case int:
		return id, true
	default:
		return 0, false
	}
}

func itemHasID(item map[string]any, id int) bool {
	got, ok := itemID(item)
	return ok && got == id
}
