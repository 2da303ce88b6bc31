// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// globalFlags are shared by every command.
func (r *Runner) globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   defaultConfigPath,
		},
		&cli.StringFlag{
			Name:  "scheme",
			Usage: "Color scheme (dark or light)",
		},
		&cli.BoolFlag{
			Name:  "no-animation",
			Usage: "Snap transitions instead of animating them",
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "Number of generated playlist entries",
		},
		&cli.BoolFlag{
			Name:  "dump-state",
			Usage: "Print the final view state as JSON on exit",
		},
	}
}

// playCommand launches the player screen.
func playCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "play",
		Aliases: []string{"ui"},
		Usage:   "Launch the player screen",
		Action:  r.Play,
	}
}

// catalogCommand inspects the configured playlist entries.
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Playlist entry operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print the entries the grid would show",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format (text, csv, markdown, json)",
						Value:   "text",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				},
				Action: r.CatalogList,
			},
			{
				Name:  "import",
				Usage: "Write the configured entries into a SQLite database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Usage:    "Path to the SQLite database to create or replace",
						Required: true,
					},
				},
				Action: r.CatalogImport,
			},
		},
	}
}

// configCommand manages the configuration file.
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path to write",
						Value:   defaultConfigPath,
					},
				},
				Action: r.ConfigInit,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration as TOML",
				Action: r.ConfigShow,
			},
		},
	}
}
