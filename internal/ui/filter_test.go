package ui

import (
	"testing"

	"github.com/desertthunder/songbook/internal/models"
)

func fixtureSongs() []models.Song {
	return []models.Song{
		{ID: 1, Title: "Paranoid Android", Genre: []string{"Alternative", "Rock"}, ArtistID: 1},
		{ID: 2, Title: "So What", Genre: []string{"Jazz"}, ArtistID: 2},
		{ID: 3, Title: "Nightcall", Genre: []string{"Electronic", "Synthwave"}, ArtistID: 3},
		{ID: 4, Title: "Instrumental No. 4", Genre: []string{"Ambient"}},
	}
}

func fixtureArtists() []models.Artist {
	return []models.Artist{
		{ID: 1, Name: "Radiohead"},
		{ID: 2, Name: "Miles Davis"},
		{ID: 3, Name: "Kavinsky"},
	}
}

func TestFilterSongs(t *testing.T) {
	songs := fixtureSongs()
	index := ArtistIndex(fixtureArtists())

	cases := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty query returns everything", "", []int{1, 2, 3, 4}},
		{"matches title substring", "night", []int{3}},
		{"matches genre", "jazz", []int{2}},
		{"matches artist name only", "radiohead", []int{1}},
		{"case insensitive", "MILES", []int{2}},
		{"partial artist", "kavin", []int{3}},
		{"no match", "polka", []int{}},
		{"song without artist matches on title", "instrumental", []int{4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterSongs(songs, index, tc.query)

			if len(got) != len(tc.want) {
				t.Fatalf("expected %d songs, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("position %d: expected song %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}

	t.Run("preserves collection order", func(t *testing.T) {
		got := FilterSongs(songs, index, "a")

		for i := 1; i < len(got); i++ {
			if got[i].ID < got[i-1].ID {
				t.Errorf("expected stable order, got %d before %d", got[i-1].ID, got[i].ID)
			}
		}
	})
}

func TestArtistIndex(t *testing.T) {
	index := ArtistIndex(fixtureArtists())

	if len(index) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(index))
	}
	if index[2].Name != "Miles Davis" {
		t.Errorf("expected Miles Davis at id 2, got %s", index[2].Name)
	}
	if _, ok := index[99]; ok {
		t.Error("expected missing id to be absent")
	}
}

func TestDeriveDisplayState(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		matched int
		want    DisplayState
	}{
		{"results present", "night", 1, DisplaySuccess},
		{"no results for a query", "polka", 0, DisplayEmpty},
		{"empty collection without query still loading", "", 0, DisplayLoading},
		{"full collection", "", 4, DisplaySuccess},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveDisplayState(tc.query, tc.matched); got != tc.want {
				t.Errorf("DeriveDisplayState(%q, %d) = %v, want %v", tc.query, tc.matched, got, tc.want)
			}
		})
	}
}
