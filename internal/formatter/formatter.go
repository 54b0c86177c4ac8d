// package formatter renders catalog collections as plain-text tables and CSV for the CLI
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/desertthunder/songbook/internal/models"
)

// FormatDuration renders a duration in seconds as m:ss.
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// artistNames indexes artists by id for name resolution.
func artistNames(artists []models.Artist) map[int]string {
	names := make(map[int]string, len(artists))
	for _, artist := range artists {
		names[artist.ID] = artist.Name
	}
	return names
}

// resolveArtist returns the artist's name or a placeholder when the song has
// no artist or the id doesn't resolve.
func resolveArtist(names map[int]string, artistID int) string {
	if name, ok := names[artistID]; ok {
		return name
	}
	return "unknown"
}

// SongsToTable renders songs as an aligned text table with artist names
// resolved from the given collection.
func SongsToTable(songs []models.Song, artists []models.Artist) string {
	names := artistNames(artists)

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tARTIST\tYEAR\tDURATION\tRATING\tGENRES")
	for _, song := range songs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%.1f\t%s\n",
			song.ID,
			song.Title,
			resolveArtist(names, song.ArtistID),
			song.Year,
			FormatDuration(song.Duration),
			song.Rating,
			strings.Join(song.Genre, ", "),
		)
	}

	w.Flush()
	return buf.String()
}

// SongsToCSV renders songs as CSV with columns: ID, Title, Artist, Year, Duration, Rating, Genres.
func SongsToCSV(songs []models.Song, artists []models.Artist) ([]byte, error) {
	names := artistNames(artists)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Year", "Duration", "Rating", "Genres"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range songs {
		record := []string{
			strconv.Itoa(song.ID),
			song.Title,
			resolveArtist(names, song.ArtistID),
			strconv.Itoa(song.Year),
			strconv.Itoa(song.Duration),
			strconv.FormatFloat(song.Rating, 'f', -1, 64),
			strings.Join(song.Genre, "; "),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ArtistsToTable renders artists as an aligned text table.
func ArtistsToTable(artists []models.Artist) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tRATING")
	for _, artist := range artists {
		fmt.Fprintf(w, "%d\t%s\t%.1f\n", artist.ID, artist.Name, artist.Rating)
	}

	w.Flush()
	return buf.String()
}

// CompaniesToTable renders companies as an aligned text table, including how
// many songs each is linked to.
func CompaniesToTable(companies []models.Company) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tCOUNTRY\tSONGS")
	for _, company := range companies {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", company.ID, company.Name, company.Country, len(company.Songs))
	}

	w.Flush()
	return buf.String()
}

// DetailToText renders a song detail bundle for the `songs get` command.
func DetailToText(detail *models.SongDetail) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s (%d)\n", detail.Song.Title, detail.Song.Year)
	if detail.Artist != nil {
		fmt.Fprintf(&buf, "Artist:    %s\n", detail.Artist.Name)
	} else {
		fmt.Fprintln(&buf, "Artist:    unknown")
	}
	fmt.Fprintf(&buf, "Duration:  %s\n", FormatDuration(detail.Song.Duration))
	fmt.Fprintf(&buf, "Rating:    %.1f/10\n", detail.Song.Rating)
	if len(detail.Song.Genre) > 0 {
		fmt.Fprintf(&buf, "Genres:    %s\n", strings.Join(detail.Song.Genre, ", "))
	}

	if len(detail.RelatedCompanies) > 0 {
		companies := make([]string, 0, len(detail.RelatedCompanies))
		for _, company := range detail.RelatedCompanies {
			companies = append(companies, company.Name)
		}
		fmt.Fprintf(&buf, "Companies: %s\n", strings.Join(companies, ", "))
	}

	return buf.String()
}
