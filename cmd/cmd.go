// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// songsCommand handles song catalog operations
func songsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "songs",
		Aliases: []string{"song"},
		Usage:   "Song catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List songs in the catalog",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Filter by title, genre, or artist name",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.SongsList,
			},
			{
				Name:  "get",
				Usage: "Show one song with its artist and publishing companies",
				Arguments: []cli.Argument{
					&cli.IntArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.SongsGet,
			},
			{
				Name:  "create",
				Usage: "Add a song to the catalog",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Song title",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "artist",
						Usage:    "Artist ID",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "year",
						Usage:    "Release year",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "duration",
						Usage:    "Duration in seconds",
						Required: true,
					},
					&cli.FloatFlag{
						Name:  "rating",
						Usage: "Rating from 0 to 10",
					},
					&cli.StringSliceFlag{
						Name:  "genre",
						Usage: "Genre tag, repeatable",
					},
					&cli.StringFlag{
						Name:  "poster",
						Usage: "Poster image URL",
					},
					&cli.IntSliceFlag{
						Name:  "company",
						Usage: "Publishing company ID, repeatable",
					},
				},
				Action: r.SongsCreate,
			},
			{
				Name:  "update",
				Usage: "Update an existing song",
				Arguments: []cli.Argument{
					&cli.IntArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "title",
						Usage: "Song title",
					},
					&cli.IntFlag{
						Name:  "artist",
						Usage: "Artist ID",
					},
					&cli.IntFlag{
						Name:  "year",
						Usage: "Release year",
					},
					&cli.IntFlag{
						Name:  "duration",
						Usage: "Duration in seconds",
					},
					&cli.FloatFlag{
						Name:  "rating",
						Usage: "Rating from 0 to 10",
					},
					&cli.StringSliceFlag{
						Name:  "genre",
						Usage: "Genre tag, repeatable (replaces existing genres)",
					},
					&cli.StringFlag{
						Name:  "poster",
						Usage: "Poster image URL",
					},
					&cli.IntSliceFlag{
						Name:  "company",
						Usage: "Publishing company ID, repeatable (replaces existing links)",
					},
				},
				Action: r.SongsUpdate,
			},
			{
				Name:    "delete",
				Aliases: []string{"rm"},
				Usage:   "Delete a song from the catalog",
				Arguments: []cli.Argument{
					&cli.IntArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.SongsDelete,
			},
		},
	}
}

// artistsCommand handles artist catalog operations
func artistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "artists",
		Aliases: []string{"artist"},
		Usage:   "Artist catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List artists in the catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.ArtistsList,
			},
		},
	}
}

// companiesCommand handles company catalog operations
func companiesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "companies",
		Aliases: []string{"company"},
		Usage:   "Publishing company operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List publishing companies",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.CompaniesList,
			},
		},
	}
}

// serveCommand runs the bundled development catalog API.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the development catalog API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on",
			},
			&cli.StringFlag{
				Name:  "seed",
				Usage: "Path to a seed JSON file (default: embedded fixture)",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles setup operations for configuration and the settings database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and the settings database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// langCommand reads or sets the preferred notification language.
func langCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "lang",
		Usage: "Show or set the notification language",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "code",
			},
		},
		Action: r.Lang,
	}
}

// tuiCommand returns the top-level TUI command for interactive catalog management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive catalog browser",
		Action:  r.TUI,
	}
}
