package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/songbook/internal/models"
)

func fixtureCompanies() []models.Company {
	return []models.Company{
		{ID: 1, Name: "Parlophone", Country: "UK", Songs: []int{1}},
		{ID: 2, Name: "Columbia Records", Country: "USA", Songs: []int{2}},
		{ID: 3, Name: "Record Makers", Country: "France", Songs: []int{3}},
	}
}

func fixtureForm() *SongForm {
	return NewSongForm(fixtureArtists(), fixtureCompanies())
}

func loadedForm() *SongForm {
	f := fixtureForm()
	f.SetSong(models.Song{
		ID:       1,
		Title:    "Paranoid Android",
		Poster:   "http://example.test/poster.png",
		Genre:    []string{"Alternative", "Rock"},
		Year:     1997,
		Duration: 386,
		Rating:   9.2,
		ArtistID: 1,
	}, []int{1})
	return f
}

func TestSongForm(t *testing.T) {
	t.Run("SetDefaults prepares a blank form with the placeholder poster", func(t *testing.T) {
		f := fixtureForm()
		f.SetDefaults()

		if got := f.Input(fieldPoster).Value(); got != models.DefaultPoster {
			t.Errorf("expected default poster, got %s", got)
		}
		if got := f.Input(fieldTitle).Value(); got != "" {
			t.Errorf("expected empty title, got %s", got)
		}
		if len(f.Genres()) != 0 {
			t.Errorf("expected no genres, got %v", f.Genres())
		}
		if f.SelectedArtist() != nil {
			t.Error("expected no artist selected")
		}
		if f.Focus() != fieldTitle {
			t.Errorf("expected focus on title, got %v", f.Focus())
		}
	})

	t.Run("SetSong populates every field", func(t *testing.T) {
		f := loadedForm()

		if got := f.Input(fieldTitle).Value(); got != "Paranoid Android" {
			t.Errorf("unexpected title: %s", got)
		}
		if got := f.Input(fieldYear).Value(); got != "1997" {
			t.Errorf("unexpected year: %s", got)
		}
		if got := f.Input(fieldRating).Value(); got != "9.2" {
			t.Errorf("unexpected rating: %s", got)
		}
		if artist := f.SelectedArtist(); artist == nil || artist.Name != "Radiohead" {
			t.Errorf("expected Radiohead selected, got %+v", artist)
		}
		if ids := f.CompanyIDs(); len(ids) != 1 || ids[0] != 1 {
			t.Errorf("expected company 1 selected, got %v", ids)
		}
		if got := f.Genres(); len(got) != 2 || got[0] != "Alternative" {
			t.Errorf("unexpected genres: %v", got)
		}
	})

	t.Run("Restore discards edits", func(t *testing.T) {
		f := loadedForm()

		f.Input(fieldTitle).SetValue("Mangled")
		f.Input(fieldYear).SetValue("2024")
		f.CycleArtist(1)
		f.ToggleCompany()
		f.AddGenre("Noise")
		f.RemoveGenre(0)

		f.Restore()

		if got := f.Input(fieldTitle).Value(); got != "Paranoid Android" {
			t.Errorf("expected title restored, got %s", got)
		}
		if got := f.Input(fieldYear).Value(); got != "1997" {
			t.Errorf("expected year restored, got %s", got)
		}
		if artist := f.SelectedArtist(); artist == nil || artist.ID != 1 {
			t.Errorf("expected artist restored, got %+v", artist)
		}
		if ids := f.CompanyIDs(); len(ids) != 1 || ids[0] != 1 {
			t.Errorf("expected company selection restored, got %v", ids)
		}
		genres := f.Genres()
		if len(genres) != 2 || genres[0] != "Alternative" || genres[1] != "Rock" {
			t.Errorf("expected genre order restored, got %v", genres)
		}
	})

	t.Run("Restore without a snapshot is a no-op", func(t *testing.T) {
		f := fixtureForm()
		f.SetDefaults()
		f.Input(fieldTitle).SetValue("Draft")

		f.Restore()

		if got := f.Input(fieldTitle).Value(); got != "Draft" {
			t.Errorf("expected draft kept, got %s", got)
		}
	})

	t.Run("field navigation wraps", func(t *testing.T) {
		f := fixtureForm()
		f.SetDefaults()

		for range int(fieldCount) {
			f.NextField()
		}
		if f.Focus() != fieldTitle {
			t.Errorf("expected wrap back to title, got %v", f.Focus())
		}

		f.PrevField()
		if f.Focus() != fieldCount-1 {
			t.Errorf("expected wrap to last field, got %v", f.Focus())
		}
	})

	t.Run("CycleArtist clamps at the ends", func(t *testing.T) {
		f := fixtureForm()
		f.SetDefaults()

		f.CycleArtist(1)
		if artist := f.SelectedArtist(); artist == nil || artist.ID != 1 {
			t.Errorf("expected first artist, got %+v", artist)
		}

		f.CycleArtist(-1)
		if artist := f.SelectedArtist(); artist == nil || artist.ID != 1 {
			t.Errorf("expected clamp at first artist, got %+v", artist)
		}

		for range 10 {
			f.CycleArtist(1)
		}
		if artist := f.SelectedArtist(); artist == nil || artist.ID != 3 {
			t.Errorf("expected clamp at last artist, got %+v", artist)
		}
	})

	t.Run("ToggleCompany tracks selection in collection order", func(t *testing.T) {
		f := fixtureForm()
		f.SetDefaults()

		f.MoveCompanyCursor(1)
		f.ToggleCompany()
		f.MoveCompanyCursor(-1)
		f.ToggleCompany()

		if ids := f.CompanyIDs(); len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
			t.Errorf("expected [1 2] in collection order, got %v", ids)
		}

		f.ToggleCompany()
		if ids := f.CompanyIDs(); len(ids) != 1 || ids[0] != 2 {
			t.Errorf("expected company 1 deselected, got %v", ids)
		}
	})

	t.Run("genres", func(t *testing.T) {
		t.Run("AddGenre rejects duplicates and blanks", func(t *testing.T) {
			f := fixtureForm()
			f.SetDefaults()

			if !f.AddGenre("Rock") {
				t.Error("expected first add to succeed")
			}
			if f.AddGenre("rock") {
				t.Error("expected case-insensitive duplicate to be rejected")
			}
			if f.AddGenre("   ") {
				t.Error("expected blank genre to be rejected")
			}
			if got := f.Genres(); len(got) != 1 {
				t.Errorf("expected one genre, got %v", got)
			}
		})

		t.Run("EditGenre replaces in place", func(t *testing.T) {
			f := fixtureForm()
			f.SetDefaults()
			f.AddGenre("Rock")
			f.AddGenre("Jazz")

			f.EditGenre(0, "Post-Rock")

			genres := f.Genres()
			if genres[0] != "Post-Rock" || genres[1] != "Jazz" {
				t.Errorf("expected in-place edit, got %v", genres)
			}
		})

		t.Run("EditGenre with empty value removes the chip", func(t *testing.T) {
			f := fixtureForm()
			f.SetDefaults()
			f.AddGenre("Rock")
			f.AddGenre("Jazz")

			f.EditGenre(0, "  ")

			genres := f.Genres()
			if len(genres) != 1 || genres[0] != "Jazz" {
				t.Errorf("expected Rock removed, got %v", genres)
			}
		})

		t.Run("RemoveGenre ignores out-of-range indices", func(t *testing.T) {
			f := fixtureForm()
			f.SetDefaults()
			f.AddGenre("Rock")

			f.RemoveGenre(5)
			f.RemoveGenre(-1)

			if got := f.Genres(); len(got) != 1 {
				t.Errorf("expected genre untouched, got %v", got)
			}
		})
	})

	t.Run("Validate", func(t *testing.T) {
		t.Run("accepts a complete form", func(t *testing.T) {
			f := loadedForm()

			if problems := f.Validate(); len(problems) != 0 {
				t.Errorf("expected no problems, got %v", problems)
			}
		})

		t.Run("reports missing required fields", func(t *testing.T) {
			f := fixtureForm()
			f.SetDefaults()

			problems := f.Validate()
			joined := strings.Join(problems, "; ")

			for _, want := range []string{
				"title is required",
				"artist is required",
				"year is required",
				"duration is required",
			} {
				if !strings.Contains(joined, want) {
					t.Errorf("expected %q in %q", want, joined)
				}
			}
		})

		t.Run("rejects out-of-range year", func(t *testing.T) {
			f := loadedForm()
			f.Input(fieldYear).SetValue("1800")

			problems := f.Validate()
			want := fmt.Sprintf("year must be between 1900 and %d", time.Now().Year())
			if len(problems) != 1 || problems[0] != want {
				t.Errorf("expected %q, got %v", want, problems)
			}
		})

		t.Run("rejects non-numeric year", func(t *testing.T) {
			f := loadedForm()
			f.Input(fieldYear).SetValue("ninety")

			problems := f.Validate()
			if len(problems) != 1 || problems[0] != "year must be a number" {
				t.Errorf("unexpected problems: %v", problems)
			}
		})

		t.Run("rejects zero duration", func(t *testing.T) {
			f := loadedForm()
			f.Input(fieldDuration).SetValue("0")

			problems := f.Validate()
			if len(problems) != 1 || problems[0] != "duration must be at least 1 second" {
				t.Errorf("unexpected problems: %v", problems)
			}
		})

		t.Run("rejects out-of-range rating", func(t *testing.T) {
			f := loadedForm()
			f.Input(fieldRating).SetValue("11")

			problems := f.Validate()
			if len(problems) != 1 || problems[0] != "rating must be between 0 and 10" {
				t.Errorf("unexpected problems: %v", problems)
			}
		})

		t.Run("empty rating is allowed", func(t *testing.T) {
			f := loadedForm()
			f.Input(fieldRating).SetValue("")

			if problems := f.Validate(); len(problems) != 0 {
				t.Errorf("expected rating to be optional, got %v", problems)
			}
		})
	})

	t.Run("Song assembles the edited values", func(t *testing.T) {
		f := loadedForm()
		f.Input(fieldTitle).SetValue("  Renamed  ")
		f.Input(fieldYear).SetValue("2001")
		f.AddGenre("Electronic")

		song := f.Song(1)

		if song.ID != 1 {
			t.Errorf("expected id carried through, got %d", song.ID)
		}
		if song.Title != "Renamed" {
			t.Errorf("expected trimmed title, got %q", song.Title)
		}
		if song.Year != 2001 {
			t.Errorf("expected year 2001, got %d", song.Year)
		}
		if song.ArtistID != 1 {
			t.Errorf("expected artist id 1, got %d", song.ArtistID)
		}
		if len(song.Genre) != 3 || song.Genre[2] != "Electronic" {
			t.Errorf("unexpected genres: %v", song.Genre)
		}
	})
}
