package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/mpx/internal/shared"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = "config.toml"

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config      *shared.Config
	configPath  string
	logger      *log.Logger
	output      io.Writer
	programOpts []tea.ProgramOption
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
	// ProgramOptions are appended to the options the player screen starts with.
	ProgramOptions []tea.ProgramOption
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

	return &Runner{
		config:      opts.Config,
		configPath:  opts.ConfigPath,
		logger:      opts.Logger,
		output:      opts.Output,
		programOpts: opts.ProgramOptions,
	}
}

// command builds the root command. Running it without a subcommand launches the player.
func (r *Runner) command() *cli.Command {
	return &cli.Command{
		Name:     "mpx",
		Usage:    "A mock music player screen for the terminal",
		Version:  "0.1.0",
		Flags:    r.globalFlags(),
		Action:   r.Play,
		Commands: r.register(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		playCommand, catalogCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig resolves the configuration for a command: an explicit --config wins over the
// file found at startup, and flags override individual settings.
func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	config := *r.config

	if cmd.IsSet("config") {
		path := cmd.String("config")
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
		}

		loaded, err := shared.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = *loaded
	}

	if cmd.IsSet("scheme") {
		config.UI.ColorScheme = cmd.String("scheme")
	}
	if cmd.Bool("no-animation") {
		config.UI.Animations = false
	}
	if cmd.IsSet("count") {
		count := int(cmd.Int("count"))
		if count <= 0 {
			return nil, fmt.Errorf("%w: --count must be positive, got %d", shared.ErrInvalidFlag, count)
		}
		config.Catalog.Count = count
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
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
