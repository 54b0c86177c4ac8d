package ui

import (
	"strings"

	"github.com/desertthunder/songbook/internal/models"
)

// DisplayState is the coarse state of the song list: loading until something
// arrives, empty when a non-empty query matches nothing, success otherwise.
type DisplayState int

const (
	DisplayLoading DisplayState = iota
	DisplayEmpty
	DisplaySuccess
)

// ArtistIndex builds an id lookup over the artist collection. Recomputed
// whenever the collection changes.
func ArtistIndex(artists []models.Artist) map[int]models.Artist {
	index := make(map[int]models.Artist, len(artists))
	for _, artist := range artists {
		index[artist.ID] = artist
	}
	return index
}

// FilterSongs returns the songs matching query: a case-insensitive substring
// of the title, any genre tag, or the resolved artist's name. An empty query
// matches everything.
func FilterSongs(songs []models.Song, artists map[int]models.Artist, query string) []models.Song {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return songs
	}

	matched := []models.Song{}
	for _, song := range songs {
		if songMatches(song, artists, query) {
			matched = append(matched, song)
		}
	}
	return matched
}

func songMatches(song models.Song, artists map[int]models.Artist, query string) bool {
	if strings.Contains(strings.ToLower(song.Title), query) {
		return true
	}

	for _, genre := range song.Genre {
		if strings.Contains(strings.ToLower(genre), query) {
			return true
		}
	}

	if artist, ok := artists[song.ArtistID]; ok {
		if strings.Contains(strings.ToLower(artist.Name), query) {
			return true
		}
	}

	return false
}

// DeriveDisplayState maps the query and its result set onto a [DisplayState].
func DeriveDisplayState(query string, matched int) DisplayState {
	switch {
	case matched == 0 && strings.TrimSpace(query) != "":
		return DisplayEmpty
	case matched > 0:
		return DisplaySuccess
	default:
		return DisplayLoading
	}
}
