package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/desertthunder/mpx/internal/catalog"
	"github.com/desertthunder/mpx/internal/formatter"
	"github.com/desertthunder/mpx/internal/repositories"
	"github.com/desertthunder/mpx/internal/shared"
	"github.com/urfave/cli/v3"
)

const catalogTitle = "Fav"

// CatalogList prints the configured entries in the requested format.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	format := cmd.String("format")
	r.logger.Debug("listing catalog", "source", config.Catalog.Source, "format", format)

	entries, err := catalog.Load(ctx, config.Catalog)
	if err != nil {
		return err
	}

	if format == "json" {
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}

	data, err := formatter.Export(format, catalogTitle, entries)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// CatalogImport copies the configured entries into a SQLite database for the sqlite source.
func (r *Runner) CatalogImport(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	path := cmd.String("db")
	if config.Catalog.Source == shared.SourceSQLite && samePath(config.Catalog.Path, path) {
		return fmt.Errorf("%w: --db is the configured source database", shared.ErrInvalidFlag)
	}

	entries, err := catalog.Load(ctx, config.Catalog)
	if err != nil {
		return err
	}

	r.logger.Info("initializing database", "path", path)

	db, err := shared.NewDatabase(path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	repo := repositories.NewEntryRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return err
	}
	if err := repo.Replace(ctx, entries); err != nil {
		return err
	}

	stored, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	r.logger.Info("import complete", "entries", stored, "path", path)
	return r.writePlain("✓ Imported %d entries into %s\n", stored, path)
}

// samePath reports whether a and b name the same file once cleaned and made absolute.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
