package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/songbook/internal/models"
	"github.com/desertthunder/songbook/internal/repositories"
	"github.com/desertthunder/songbook/internal/services"
	"github.com/desertthunder/songbook/internal/shared"
	"github.com/desertthunder/songbook/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	client    *services.Client
	songs     *services.Resource[models.Song]
	artists   *services.Resource[models.Artist]
	companies *services.Resource[models.Company]
	engine    *tasks.CatalogEngine
	logger    *log.Logger
	output    io.Writer
	input     io.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Client *services.Client
	Logger *log.Logger
	Output io.Writer
	Input  io.Reader
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Client == nil {
		opts.Client = services.NewClient(opts.Config.API)
	}

	songs := services.NewResource[models.Song](opts.Client, "/songs", opts.Logger)
	artists := services.NewResource[models.Artist](opts.Client, "/artists", opts.Logger)
	companies := services.NewResource[models.Company](opts.Client, "/companies", opts.Logger)

	notifier := &tasks.LogNotifier{Logger: opts.Logger}
	engine := tasks.NewCatalogEngine(songs, artists, companies, notifier, opts.Logger)

	return &Runner{
		config:    opts.Config,
		client:    opts.Client,
		songs:     songs,
		artists:   artists,
		companies: companies,
		engine:    engine,
		logger:    opts.Logger,
		output:    opts.Output,
		input:     opts.Input,
	}
}

// SetLogger swaps the Runner's logger and propagates it to the resource
// stores, so their swallowed load failures follow the redirect.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	r.songs.SetLogger(logger)
	r.artists.SetLogger(logger)
	r.companies.SetLogger(logger)
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, songsCommand, artistsCommand, companiesCommand, serveCommand, langCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// confirm prompts on output and reads a yes/no answer from input. Anything
// other than y or yes declines.
func (r *Runner) confirm(prompt string) bool {
	r.writePlain("%s [y/N]: ", prompt)

	reader := bufio.NewReader(r.input)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// openSettings opens the settings database and returns application state
// backed by it. The caller owns the returned closer.
func (r *Runner) openSettings() (*shared.AppState, func() error, error) {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open settings database: %w", err)
	}

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repo := repositories.NewSettingsRepository(db)
	return shared.NewAppState(repo), db.Close, nil
}
