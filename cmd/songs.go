package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/songbook/internal/formatter"
	"github.com/desertthunder/songbook/internal/models"
	"github.com/desertthunder/songbook/internal/shared"
	"github.com/desertthunder/songbook/internal/ui"
	"github.com/urfave/cli/v3"
)

// SongsList prints the song collection, optionally filtered by a query
// matched against titles, genres, and artist names.
func (r *Runner) SongsList(ctx context.Context, cmd *cli.Command) error {
	query := cmd.String("query")

	r.songs.Load(ctx)
	r.artists.Load(ctx)

	songs := r.songs.All()
	artists := r.artists.All()

	if query != "" {
		songs = ui.FilterSongs(songs, ui.ArtistIndex(artists), query)
	}

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(songs, cmd.Bool("pretty"))
	case cmd.Bool("csv"):
		data, err := formatter.SongsToCSV(songs, artists)
		if err != nil {
			return fmt.Errorf("failed to render CSV: %w", err)
		}
		_, err = r.output.Write(data)
		return err
	default:
		return r.writePlain("%s", formatter.SongsToTable(songs, artists))
	}
}

// SongsGet fetches one song's detail bundle and prints it.
func (r *Runner) SongsGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: song id", shared.ErrMissingArgument)
	}

	r.companies.Load(ctx)

	detail, err := r.engine.GetSongByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch song %d: %w", id, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(detail, cmd.Bool("pretty"))
	}
	return r.writePlain("%s", formatter.DetailToText(detail))
}

// SongsCreate builds a song from flags and saves it through the engine so
// company links are reconciled alongside the create.
func (r *Runner) SongsCreate(ctx context.Context, cmd *cli.Command) error {
	song := models.Song{
		Title:    cmd.String("title"),
		Poster:   cmd.String("poster"),
		Genre:    cmd.StringSlice("genre"),
		Year:     cmd.Int("year"),
		Duration: cmd.Int("duration"),
		Rating:   cmd.Float("rating"),
		ArtistID: cmd.Int("artist"),
	}
	if song.Poster == "" {
		song.Poster = models.DefaultPoster
	}

	if err := song.Validate(); err != nil {
		return err
	}

	r.companies.Load(ctx)

	saved, err := r.engine.SaveSong(ctx, song, song.ArtistID, cmd.IntSlice("company"))
	if err != nil {
		return fmt.Errorf("failed to create song: %w", err)
	}

	r.logger.Info("song created", "id", saved.ID, "title", saved.Title)
	return r.writePlainln("created song %d: %s", saved.ID, saved.Title)
}

// SongsUpdate merges flag values over the stored song and saves the result.
// Omitted flags keep their current values.
func (r *Runner) SongsUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: song id", shared.ErrMissingArgument)
	}

	song, err := r.songs.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch song %d: %w", id, err)
	}

	if cmd.IsSet("title") {
		song.Title = cmd.String("title")
	}
	if cmd.IsSet("poster") {
		song.Poster = cmd.String("poster")
	}
	if cmd.IsSet("genre") {
		song.Genre = cmd.StringSlice("genre")
	}
	if cmd.IsSet("year") {
		song.Year = cmd.Int("year")
	}
	if cmd.IsSet("duration") {
		song.Duration = cmd.Int("duration")
	}
	if cmd.IsSet("rating") {
		song.Rating = cmd.Float("rating")
	}
	if cmd.IsSet("artist") {
		song.ArtistID = cmd.Int("artist")
	}

	if err := song.Validate(); err != nil {
		return err
	}

	r.companies.Load(ctx)

	companyIDs := r.linkedCompanies(id)
	if cmd.IsSet("company") {
		companyIDs = cmd.IntSlice("company")
	}

	saved, err := r.engine.SaveSong(ctx, song, song.ArtistID, companyIDs)
	if err != nil {
		return fmt.Errorf("failed to update song %d: %w", id, err)
	}

	r.logger.Info("song updated", "id", saved.ID, "title", saved.Title)
	return r.writePlainln("updated song %d: %s", saved.ID, saved.Title)
}

// SongsDelete removes a song after confirmation.
func (r *Runner) SongsDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: song id", shared.ErrMissingArgument)
	}

	if !cmd.Bool("yes") && !r.confirm(fmt.Sprintf("delete song %d?", id)) {
		return r.writePlainln("aborted")
	}

	if err := r.engine.DeleteSong(ctx, id); err != nil {
		return fmt.Errorf("failed to delete song %d: %w", id, err)
	}

	r.logger.Info("song deleted", "id", id)
	return r.writePlainln("deleted song %d", id)
}

// linkedCompanies returns the ids of companies currently listing the song.
func (r *Runner) linkedCompanies(songID int) []int {
	ids := []int{}
	for _, company := range r.companies.All() {
		if company.HasSong(songID) {
			ids = append(ids, company.ID)
		}
	}
	return ids
}
