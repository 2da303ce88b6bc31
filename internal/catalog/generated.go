package catalog

import (
	"context"
	"strconv"

	"github.com/desertthunder/mpx/internal/models"
	"github.com/desertthunder/mpx/internal/shared"
)

// Generated names its entries "1".."Count" and gives each a fresh UUID.
type Generated struct {
	Count int
}

func (g Generated) Entries(ctx context.Context) ([]models.Entry, error) {
	if g.Count <= 0 {
		return []models.Entry{}, nil
	}

	entries := make([]models.Entry, g.Count)
	for i := range entries {
		entries[i] = models.NewEntry(shared.GenerateID(), strconv.Itoa(i+1))
	}
	return entries, nil
}
