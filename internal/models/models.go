// package models defines the data model for the song catalog client
package models

import (
	"fmt"
	"time"

	"github.com/desertthunder/songbook/internal/shared"
)

// DefaultPoster is the placeholder artwork assigned to songs created without
// their own poster URL.
const DefaultPoster = "http://dummyimage.com/400x600.png/cc0000/ffffff"

// Song represents one catalog entry. ArtistID is zero when the song has no
// linked artist; companies are not stored on the song (see [Company.Songs]).
type Song struct {
	ID       int      `json:"id,omitempty"`
	Title    string   `json:"title"`
	Poster   string   `json:"poster"`
	Genre    []string `json:"genre"`
	Year     int      `json:"year"`
	Duration int      `json:"duration"` // seconds
	Rating   float64  `json:"rating"`   // 0-10
	ArtistID int      `json:"artistId,omitempty"`
}

// Validate checks the fields required before a song may be saved.
func (s Song) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("%w: title is required", shared.ErrValidationFailed)
	}
	if s.ArtistID == 0 {
		return fmt.Errorf("%w: artist is required", shared.ErrValidationFailed)
	}
	if s.Year == 0 {
		return fmt.Errorf("%w: year is required", shared.ErrValidationFailed)
	}
	if s.Year < 1900 || s.Year > time.Now().Year() {
		return fmt.Errorf("%w: year must be between 1900 and %d", shared.ErrValidationFailed, time.Now().Year())
	}
	if s.Duration < 1 {
		return fmt.Errorf("%w: duration must be at least 1 second", shared.ErrValidationFailed)
	}
	if s.Rating < 0 || s.Rating > 10 {
		return fmt.Errorf("%w: rating must be between 0 and 10", shared.ErrValidationFailed)
	}
	return nil
}

// Artist represents a song's performer. The client only depends on ID and
// Name; the remaining fields ride along for display.
type Artist struct {
	ID     int     `json:"id,omitempty"`
	Name   string  `json:"name"`
	Image  string  `json:"img,omitempty"`
	Rating float64 `json:"rating,omitempty"`
}

// Company represents a record label. Songs holds the ids of the songs the
// company is linked to; this inverse list is the source of truth for
// song-company relationships.
type Company struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Songs   []int  `json:"songs"`
}

// HasSong reports whether the company's song list contains id.
func (c Company) HasSong(id int) bool {
	for _, songID := range c.Songs {
		if songID == id {
			return true
		}
	}
	return false
}

// SongDetail bundles everything the detail view needs for one song. Artist is
// nil when the song has no linked artist or the artist could not be resolved;
// that is never an error. RelatedCompanies is the subset of the company
// collection whose song list contains the song's id.
type SongDetail struct {
	Song             Song
	Artist           *Artist
	RelatedCompanies []Company
}

// CompanyIDs returns the ids of the bundle's related companies.
func (d SongDetail) CompanyIDs() []int {
	ids := make([]int, 0, len(d.RelatedCompanies))
	for _, company := range d.RelatedCompanies {
		ids = append(ids, company.ID)
	}
	return ids
}
