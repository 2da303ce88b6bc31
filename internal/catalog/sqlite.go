package catalog

import (
	"context"
	"database/sql"

	"github.com/desertthunder/mpx/internal/models"
	"github.com/desertthunder/mpx/internal/repositories"
)

// SQLite reads entries from the playlist_entries table managed by [repositories.EntryRepository].
// The source itself never writes.
type SQLite struct {
	repo *repositories.EntryRepository
}

// NewSQLite creates a SQLite source over an open database connection.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{repo: repositories.NewEntryRepository(db)}
}

func (s *SQLite) Entries(ctx context.Context) ([]models.Entry, error) {
	return s.repo.List(ctx)
}
