package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/songbook/internal/shared"
	"github.com/desertthunder/songbook/internal/tasks"
	"github.com/desertthunder/songbook/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for browsing and editing the catalog.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	logPath := r.config.UI.LogPath
	if logPath == "" {
		logPath = "./tmp/songbook-tui.log"
	}
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	state, closer, err := r.openSettings()
	if err != nil {
		return err
	}
	defer closer()

	if r.config.UI.Language != "" {
		if err := state.SetLanguage(r.config.UI.Language); err != nil {
			fileLogger.Warn("ignoring configured language", "error", err)
		}
	}

	notifier := &ui.StatusNotifier{}
	engine := tasks.NewCatalogEngine(r.songs, r.artists, r.companies, notifier, fileLogger)

	model := ui.NewModel(ctx, engine, notifier, state, fileLogger)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
