package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mpx/internal/catalog"
	"github.com/desertthunder/mpx/internal/shared"
	"github.com/desertthunder/mpx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Play launches the player screen over the configured catalog.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	entries, err := catalog.Load(ctx, config.Catalog)
	if err != nil {
		return err
	}

	level, err := shared.ParseLogLevel(config.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: log level: %v", shared.ErrInvalidConfig, err)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, closeLog, err := shared.NewFileLogger(config.Log.Path)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer closeLog()
	shared.SetLogLevel(fileLogger, level)

	fileLogger.Info("starting player", "entries", len(entries), "source", config.Catalog.Source, "scheme", config.UI.ColorScheme)

	model := ui.NewModel(ui.Options{
		Entries: entries,
		UI:      config.UI,
		Logger:  shared.WithLogger(fileLogger, "component", "ui"),
	})

	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, r.programOpts...)

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	fileLogger.Info("player closed", "state", model.Snapshot())

	if cmd.Bool("dump-state") {
		return r.writeJSON(model.Snapshot(), false)
	}
	return nil
}
