package shared

import (
	"fmt"
	"sync"
)

// Setting keys persisted by [AppState].
const (
	SettingMenuOpen  = "menu_open"
	SettingLanguage  = "language"
	SettingLastRoute = "last_route"
)

// DefaultLanguage is used when no language preference has been stored.
const DefaultLanguage = "en"

// Languages lists the selectable UI languages.
var Languages = []string{"en", "es"}

// SettingsStore reads and writes persisted key/value settings. Implemented
// by repositories.SettingsRepository; tests substitute an in-memory map.
type SettingsStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// AppState owns the process-wide UI state that used to live in scattered
// singletons: menu visibility, language preference, and the last visited
// route. It is the single writer; consumers read through its accessors and
// mutate through its entry points, which persist as a side effect. Nothing
// echoes values back into AppState.
type AppState struct {
	store SettingsStore

	mu        sync.RWMutex
	menuOpen  bool
	language  string
	lastRoute string
}

// NewAppState initializes state from the store, falling back to defaults for
// anything never persisted.
func NewAppState(store SettingsStore) *AppState {
	s := &AppState{store: store, language: DefaultLanguage}

	if v, err := store.Get(SettingMenuOpen); err == nil {
		s.menuOpen = v == "true"
	}
	if v, err := store.Get(SettingLanguage); err == nil && v != "" {
		s.language = v
	}
	if v, err := store.Get(SettingLastRoute); err == nil {
		s.lastRoute = v
	}

	return s
}

// MenuOpen reports whether the navigation menu is open.
func (s *AppState) MenuOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.menuOpen
}

// ToggleMenu flips and persists the menu state, returning the new value.
func (s *AppState) ToggleMenu() (bool, error) {
	s.mu.Lock()
	s.menuOpen = !s.menuOpen
	open := s.menuOpen
	s.mu.Unlock()

	return open, s.store.Set(SettingMenuOpen, fmt.Sprintf("%t", open))
}

// CloseMenu closes and persists the menu state.
func (s *AppState) CloseMenu() error {
	s.mu.Lock()
	s.menuOpen = false
	s.mu.Unlock()

	return s.store.Set(SettingMenuOpen, "false")
}

// Language returns the current UI language.
func (s *AppState) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetLanguage validates and persists the language preference.
func (s *AppState) SetLanguage(lang string) error {
	valid := false
	for _, l := range Languages {
		if l == lang {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidArgument, lang)
	}

	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()

	return s.store.Set(SettingLanguage, lang)
}

// LastRoute returns the most recently visited route ("" when none).
func (s *AppState) LastRoute() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRoute
}

// SetRoute records and persists the current route.
func (s *AppState) SetRoute(route string) error {
	s.mu.Lock()
	s.lastRoute = route
	s.mu.Unlock()

	return s.store.Set(SettingLastRoute, route)
}

// MemorySettings is a map-backed [SettingsStore] for contexts with no
// database.
type MemorySettings struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemorySettings creates an empty in-memory settings store.
func NewMemorySettings() *MemorySettings {
	return &MemorySettings{values: make(map[string]string)}
}

func (m *MemorySettings) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: setting %q", ErrNotFound, key)
}

func (m *MemorySettings) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
