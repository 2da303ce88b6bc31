package catalog

import (
	"context"
	"fmt"

	"github.com/desertthunder/mpx/internal/models"
	"github.com/desertthunder/mpx/internal/shared"
)

// Source produces the ordered entries for the grid.
type Source interface {
	Entries(ctx context.Context) ([]models.Entry, error)
}

var (
	_ Source = Generated{}
	_ Source = File{}
	_ Source = (*SQLite)(nil)
)

// Open builds the [Source] described by cfg. The returned close function releases any
// resources held by the source and is never nil.
func Open(cfg shared.CatalogConfig) (Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source {
	case shared.SourceGenerated, "":
		return Generated{Count: cfg.Count}, noop, nil
	case shared.SourceFile:
		return File{Path: cfg.Path}, noop, nil
	case shared.SourceSQLite:
		db, err := shared.NewReadOnlyDatabase(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLite(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", shared.ErrUnsupportedSource, cfg.Source)
	}
}

// Load reads and validates the entries from the source described by cfg.
func Load(ctx context.Context, cfg shared.CatalogConfig) ([]models.Entry, error) {
	src, closeFn, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	entries, err := src.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s catalog: %w", cfg.Source, err)
	}

	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Validate rejects entries with empty or repeated ids. Names may repeat.
func Validate(entries []models.Entry) error {
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("%w: position %d: %v", shared.ErrInvalidEntry, i, err)
		}
		if prev, ok := seen[e.ID]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", shared.ErrDuplicateEntry, e.ID, prev, i)
		}
		seen[e.ID] = i
	}
	return nil
}
