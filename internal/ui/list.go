package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/songbook/internal/models"
)

var _ list.Item = songItem{}

// songItem wraps [models.Song] to implement [list.Item]. The artist name is
// resolved at construction so the delegate doesn't need the artist index.
type songItem struct {
	song   models.Song
	artist string
}

func newSongItem(song models.Song, artists map[int]models.Artist) songItem {
	name := "unknown"
	if artist, ok := artists[song.ArtistID]; ok {
		name = artist.Name
	}
	return songItem{song: song, artist: name}
}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string       { return i.song.Title }
func (i songItem) Description() string {
	desc := fmt.Sprintf("%s • %d", i.artist, i.song.Year)
	if len(i.song.Genre) > 0 {
		desc = fmt.Sprintf("%s • %s", desc, strings.Join(i.song.Genre, ", "))
	}
	return desc
}
