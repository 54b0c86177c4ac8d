package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/songbook/internal/shared"
	"github.com/urfave/cli/v3"
)

// Lang prints the persisted notification language, or sets it when a code
// argument is given.
func (r *Runner) Lang(ctx context.Context, cmd *cli.Command) error {
	state, closer, err := r.openSettings()
	if err != nil {
		return err
	}
	defer closer()

	code := cmd.StringArg("code")
	if code == "" {
		return r.writePlainln("language: %s (available: %s)",
			state.Language(), strings.Join(shared.Languages, ", "))
	}

	if err := state.SetLanguage(code); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}

	r.logger.Info("language updated", "language", code)
	return r.writePlainln("language set to %s", code)
}
