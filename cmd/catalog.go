package main

import (
	"context"

	"github.com/desertthunder/songbook/internal/formatter"
	"github.com/urfave/cli/v3"
)

// ArtistsList prints the artist collection.
func (r *Runner) ArtistsList(ctx context.Context, cmd *cli.Command) error {
	r.artists.Load(ctx)
	artists := r.artists.All()

	if cmd.Bool("json") {
		return r.writeJSON(artists, cmd.Bool("pretty"))
	}
	return r.writePlain("%s", formatter.ArtistsToTable(artists))
}

// CompaniesList prints the publishing company collection.
func (r *Runner) CompaniesList(ctx context.Context, cmd *cli.Command) error {
	r.companies.Load(ctx)
	companies := r.companies.All()

	if cmd.Bool("json") {
		return r.writeJSON(companies, cmd.Bool("pretty"))
	}
	return r.writePlain("%s", formatter.CompaniesToTable(companies))
}
