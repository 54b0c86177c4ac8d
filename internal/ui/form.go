package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/desertthunder/songbook/internal/models"
)

// formField identifies one focusable field of the detail form.
type formField int

const (
	fieldTitle formField = iota
	fieldPoster
	fieldArtist
	fieldGenres
	fieldCompanies
	fieldYear
	fieldRating
	fieldDuration
	fieldCount
)

var fieldLabels = map[formField]string{
	fieldTitle:     "Title",
	fieldPoster:    "Poster URL",
	fieldArtist:    "Artist",
	fieldGenres:    "Genres",
	fieldCompanies: "Companies",
	fieldYear:      "Year",
	fieldRating:    "Rating",
	fieldDuration:  "Duration (s)",
}

// SongForm holds the editable state of the detail view: text inputs for the
// scalar fields, a cycling artist selector, a company multi-select, and the
// genre list. A snapshot of the last loaded song backs cancel-edit.
type SongForm struct {
	title    textinput.Model
	poster   textinput.Model
	year     textinput.Model
	rating   textinput.Model
	duration textinput.Model

	artists   []models.Artist
	artistIdx int // index into artists, -1 = none selected

	companies       []models.Company
	companyCursor   int
	selectedCompany map[int]bool

	genres      []string
	genreCursor int
	genreInput  textinput.Model
	editingIdx  int // genre being edited in place, -1 = adding

	focus formField

	snapshot           *models.Song
	snapshotCompanyIDs []int
}

// NewSongForm creates an empty form over the given artist and company
// collections.
func NewSongForm(artists []models.Artist, companies []models.Company) *SongForm {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		return in
	}

	f := &SongForm{
		title:           newInput("song title", 120),
		poster:          newInput("https://…", 255),
		year:            newInput("1999", 4),
		rating:          newInput("0-10", 5),
		duration:        newInput("seconds", 6),
		genreInput:      newInput("add genre", 40),
		artists:         artists,
		companies:       companies,
		artistIdx:       -1,
		selectedCompany: map[int]bool{},
		editingIdx:      -1,
	}
	f.title.Focus()
	return f
}

// SetCollections refreshes the selectable artists and companies.
func (f *SongForm) SetCollections(artists []models.Artist, companies []models.Company) {
	f.artists = artists
	f.companies = companies
	if f.artistIdx >= len(artists) {
		f.artistIdx = len(artists) - 1
	}
	if f.companyCursor >= len(companies) {
		f.companyCursor = 0
	}
}

// SetDefaults prepares the form for a new song: placeholder poster, empty
// genre list, everything else blank.
func (f *SongForm) SetDefaults() {
	f.title.SetValue("")
	f.poster.SetValue(models.DefaultPoster)
	f.year.SetValue("")
	f.rating.SetValue("")
	f.duration.SetValue("")
	f.genres = nil
	f.genreCursor = 0
	f.artistIdx = -1
	f.selectedCompany = map[int]bool{}
	f.snapshot = nil
	f.snapshotCompanyIDs = nil
	f.setFocus(fieldTitle)
}

// SetSong populates the form from a loaded song bundle and snapshots it for
// cancel-edit.
func (f *SongForm) SetSong(song models.Song, companyIDs []int) {
	f.applySong(song, companyIDs)

	snap := song
	snap.Genre = append([]string(nil), song.Genre...)
	f.snapshot = &snap
	f.snapshotCompanyIDs = append([]int(nil), companyIDs...)
}

// Restore discards in-progress edits by reapplying the snapshot, including
// the genre list and company selection. No-op when nothing was loaded.
func (f *SongForm) Restore() {
	if f.snapshot == nil {
		return
	}
	f.applySong(*f.snapshot, f.snapshotCompanyIDs)
}

func (f *SongForm) applySong(song models.Song, companyIDs []int) {
	f.title.SetValue(song.Title)
	f.poster.SetValue(song.Poster)
	f.year.SetValue(itoaOrEmpty(song.Year))
	f.duration.SetValue(itoaOrEmpty(song.Duration))
	if song.Rating > 0 {
		f.rating.SetValue(strconv.FormatFloat(song.Rating, 'f', -1, 64))
	} else {
		f.rating.SetValue("")
	}

	f.genres = append([]string(nil), song.Genre...)
	f.genreCursor = 0
	f.genreInput.SetValue("")
	f.editingIdx = -1

	f.artistIdx = -1
	for i, artist := range f.artists {
		if artist.ID == song.ArtistID {
			f.artistIdx = i
			break
		}
	}

	f.selectedCompany = make(map[int]bool, len(companyIDs))
	for _, id := range companyIDs {
		f.selectedCompany[id] = true
	}

	f.setFocus(fieldTitle)
}

func itoaOrEmpty(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

// Focus returns the currently focused field.
func (f *SongForm) Focus() formField { return f.focus }

// NextField moves focus forward, wrapping at the end.
func (f *SongForm) NextField() { f.setFocus((f.focus + 1) % fieldCount) }

// PrevField moves focus backward, wrapping at the start.
func (f *SongForm) PrevField() { f.setFocus((f.focus + fieldCount - 1) % fieldCount) }

func (f *SongForm) setFocus(field formField) {
	f.focus = field
	for _, in := range []*textinput.Model{&f.title, &f.poster, &f.year, &f.rating, &f.duration} {
		in.Blur()
	}
	f.genreInput.Blur()

	switch field {
	case fieldTitle:
		f.title.Focus()
	case fieldPoster:
		f.poster.Focus()
	case fieldYear:
		f.year.Focus()
	case fieldRating:
		f.rating.Focus()
	case fieldDuration:
		f.duration.Focus()
	case fieldGenres:
		f.genreInput.Focus()
	}
}

// FocusedInput returns the textinput behind the focused field, nil for the
// selector fields.
func (f *SongForm) FocusedInput() *textinput.Model {
	return f.Input(f.focus)
}

// Input returns the textinput behind a text field, nil for the selector
// fields.
func (f *SongForm) Input(field formField) *textinput.Model {
	switch field {
	case fieldTitle:
		return &f.title
	case fieldPoster:
		return &f.poster
	case fieldYear:
		return &f.year
	case fieldRating:
		return &f.rating
	case fieldDuration:
		return &f.duration
	case fieldGenres:
		return &f.genreInput
	default:
		return nil
	}
}

// CycleArtist moves the artist selection by delta, clamped to the collection.
func (f *SongForm) CycleArtist(delta int) {
	if len(f.artists) == 0 {
		return
	}
	f.artistIdx += delta
	if f.artistIdx < 0 {
		f.artistIdx = 0
	}
	if f.artistIdx >= len(f.artists) {
		f.artistIdx = len(f.artists) - 1
	}
}

// SelectedArtist returns the selected artist, nil when none.
func (f *SongForm) SelectedArtist() *models.Artist {
	if f.artistIdx < 0 || f.artistIdx >= len(f.artists) {
		return nil
	}
	return &f.artists[f.artistIdx]
}

// MoveCompanyCursor moves the company cursor by delta, clamped.
func (f *SongForm) MoveCompanyCursor(delta int) {
	if len(f.companies) == 0 {
		return
	}
	f.companyCursor += delta
	if f.companyCursor < 0 {
		f.companyCursor = 0
	}
	if f.companyCursor >= len(f.companies) {
		f.companyCursor = len(f.companies) - 1
	}
}

// ToggleCompany flips membership of the company under the cursor.
func (f *SongForm) ToggleCompany() {
	if f.companyCursor < 0 || f.companyCursor >= len(f.companies) {
		return
	}
	id := f.companies[f.companyCursor].ID
	f.selectedCompany[id] = !f.selectedCompany[id]
}

// CompanyIDs returns the ids of the selected companies in collection order.
func (f *SongForm) CompanyIDs() []int {
	ids := []int{}
	for _, company := range f.companies {
		if f.selectedCompany[company.ID] {
			ids = append(ids, company.ID)
		}
	}
	return ids
}

// Genres returns the current genre list.
func (f *SongForm) Genres() []string {
	return append([]string(nil), f.genres...)
}

// AddGenre appends a genre unless it is blank or already present. Reports
// whether the list changed.
func (f *SongForm) AddGenre(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	for _, genre := range f.genres {
		if strings.EqualFold(genre, value) {
			return false
		}
	}
	f.genres = append(f.genres, value)
	return true
}

// EditGenre replaces the genre at index in place; an empty replacement
// removes the entry instead.
func (f *SongForm) EditGenre(index int, value string) {
	if index < 0 || index >= len(f.genres) {
		return
	}
	value = strings.TrimSpace(value)
	if value == "" {
		f.RemoveGenre(index)
		return
	}
	f.genres[index] = value
}

// RemoveGenre deletes the genre at index.
func (f *SongForm) RemoveGenre(index int) {
	if index < 0 || index >= len(f.genres) {
		return
	}
	f.genres = append(f.genres[:index:index], f.genres[index+1:]...)
	if f.genreCursor >= len(f.genres) && f.genreCursor > 0 {
		f.genreCursor--
	}
}

// MoveGenreCursor moves the genre cursor by delta, clamped.
func (f *SongForm) MoveGenreCursor(delta int) {
	if len(f.genres) == 0 {
		return
	}
	f.genreCursor += delta
	if f.genreCursor < 0 {
		f.genreCursor = 0
	}
	if f.genreCursor >= len(f.genres) {
		f.genreCursor = len(f.genres) - 1
	}
}

// Validate checks the form against the save rules and returns the list of
// problems, empty when the form may be submitted.
func (f *SongForm) Validate() []string {
	var problems []string

	if strings.TrimSpace(f.title.Value()) == "" {
		problems = append(problems, "title is required")
	}
	if f.SelectedArtist() == nil {
		problems = append(problems, "artist is required")
	}

	yearText := strings.TrimSpace(f.year.Value())
	if yearText == "" {
		problems = append(problems, "year is required")
	} else if year, err := strconv.Atoi(yearText); err != nil {
		problems = append(problems, "year must be a number")
	} else if year < 1900 || year > time.Now().Year() {
		problems = append(problems, fmt.Sprintf("year must be between 1900 and %d", time.Now().Year()))
	}

	durationText := strings.TrimSpace(f.duration.Value())
	if durationText == "" {
		problems = append(problems, "duration is required")
	} else if duration, err := strconv.Atoi(durationText); err != nil || duration < 1 {
		problems = append(problems, "duration must be at least 1 second")
	}

	if ratingText := strings.TrimSpace(f.rating.Value()); ratingText != "" {
		if rating, err := strconv.ParseFloat(ratingText, 64); err != nil || rating < 0 || rating > 10 {
			problems = append(problems, "rating must be between 0 and 10")
		}
	}

	return problems
}

// Song assembles a [models.Song] from the form. id is zero for new songs.
// Call only after Validate returns no problems.
func (f *SongForm) Song(id int) models.Song {
	year, _ := strconv.Atoi(strings.TrimSpace(f.year.Value()))
	duration, _ := strconv.Atoi(strings.TrimSpace(f.duration.Value()))
	rating, _ := strconv.ParseFloat(strings.TrimSpace(f.rating.Value()), 64)

	song := models.Song{
		ID:       id,
		Title:    strings.TrimSpace(f.title.Value()),
		Poster:   strings.TrimSpace(f.poster.Value()),
		Genre:    f.Genres(),
		Year:     year,
		Duration: duration,
		Rating:   rating,
	}
	if artist := f.SelectedArtist(); artist != nil {
		song.ArtistID = artist.ID
	}
	return song
}
