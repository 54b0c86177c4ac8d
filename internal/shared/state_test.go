package shared

import (
	"errors"
	"testing"
)

func TestAppState(t *testing.T) {
	t.Run("NewAppState", func(t *testing.T) {
		t.Run("empty store uses defaults", func(t *testing.T) {
			state := NewAppState(NewMemorySettings())

			if state.MenuOpen() {
				t.Error("expected menu closed by default")
			}
			if state.Language() != DefaultLanguage {
				t.Errorf("expected default language %s, got %s", DefaultLanguage, state.Language())
			}
			if state.LastRoute() != "" {
				t.Errorf("expected empty route, got %s", state.LastRoute())
			}
		})

		t.Run("restores persisted values", func(t *testing.T) {
			store := NewMemorySettings()
			store.Set(SettingMenuOpen, "true")
			store.Set(SettingLanguage, "es")
			store.Set(SettingLastRoute, "songs/3")

			state := NewAppState(store)

			if !state.MenuOpen() {
				t.Error("expected menu restored open")
			}
			if state.Language() != "es" {
				t.Errorf("expected language es, got %s", state.Language())
			}
			if state.LastRoute() != "songs/3" {
				t.Errorf("expected route songs/3, got %s", state.LastRoute())
			}
		})
	})

	t.Run("ToggleMenu flips and persists", func(t *testing.T) {
		store := NewMemorySettings()
		state := NewAppState(store)

		open, err := state.ToggleMenu()
		if err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		if !open || !state.MenuOpen() {
			t.Error("expected menu open after first toggle")
		}
		if v, _ := store.Get(SettingMenuOpen); v != "true" {
			t.Errorf("expected persisted true, got %q", v)
		}

		open, err = state.ToggleMenu()
		if err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		if open || state.MenuOpen() {
			t.Error("expected menu closed after second toggle")
		}
	})

	t.Run("CloseMenu persists closed state", func(t *testing.T) {
		store := NewMemorySettings()
		store.Set(SettingMenuOpen, "true")
		state := NewAppState(store)

		if err := state.CloseMenu(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
		if state.MenuOpen() {
			t.Error("expected menu closed")
		}
		if v, _ := store.Get(SettingMenuOpen); v != "false" {
			t.Errorf("expected persisted false, got %q", v)
		}
	})

	t.Run("SetLanguage", func(t *testing.T) {
		t.Run("accepts supported languages", func(t *testing.T) {
			store := NewMemorySettings()
			state := NewAppState(store)

			for _, lang := range Languages {
				if err := state.SetLanguage(lang); err != nil {
					t.Errorf("expected %s to be accepted: %v", lang, err)
				}
			}
			if v, _ := store.Get(SettingLanguage); v != Languages[len(Languages)-1] {
				t.Errorf("expected last language persisted, got %q", v)
			}
		})

		t.Run("rejects unsupported language", func(t *testing.T) {
			state := NewAppState(NewMemorySettings())

			err := state.SetLanguage("fr")
			if err == nil {
				t.Fatal("expected error for unsupported language")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
			if state.Language() != DefaultLanguage {
				t.Error("expected language unchanged after rejection")
			}
		})
	})

	t.Run("SetRoute persists the route", func(t *testing.T) {
		store := NewMemorySettings()
		state := NewAppState(store)

		if err := state.SetRoute("songs/7"); err != nil {
			t.Fatalf("set route failed: %v", err)
		}
		if state.LastRoute() != "songs/7" {
			t.Errorf("expected songs/7, got %s", state.LastRoute())
		}
		if v, _ := store.Get(SettingLastRoute); v != "songs/7" {
			t.Errorf("expected persisted route, got %q", v)
		}
	})
}

func TestMemorySettings(t *testing.T) {
	store := NewMemorySettings()

	if _, err := store.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing key, got %v", err)
	}

	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if v, err := store.Get("k"); err != nil || v != "v" {
		t.Errorf("expected v, got %q (%v)", v, err)
	}
}
