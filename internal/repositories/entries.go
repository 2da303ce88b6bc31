package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/mpx/internal/models"
)

const schema = `
	CREATE TABLE IF NOT EXISTS playlist_entries (
		id       TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name     TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_playlist_entries_position ON playlist_entries(position);
`

// EntryRepository stores the ordered entries shown in the grid.
type EntryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new EntryRepository with the given database connection
func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Migrate creates the playlist_entries table if it does not exist.
func (r *EntryRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create playlist_entries: %w", err)
	}
	return nil
}

// Replace swaps the stored entries for the given ones in a single transaction.
// Positions follow slice order starting at 1.
func (r *EntryRepository) Replace(ctx context.Context, entries []models.Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM playlist_entries"); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO playlist_entries (id, position, name) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("validation failed at position %d: %w", i+1, err)
		}
		if _, err := stmt.ExecContext(ctx, e.ID, i+1, e.Name); err != nil {
			return fmt.Errorf("failed to insert entry %q: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entries: %w", err)
	}
	return nil
}

// List returns all entries ordered by position.
func (r *EntryRepository) List(ctx context.Context) ([]models.Entry, error) {
	query := `
		SELECT id, name
		FROM playlist_entries
		ORDER BY position ASC, rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, models.NewEntry(id, name))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// Count returns the number of stored entries.
func (r *EntryRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM playlist_entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}
