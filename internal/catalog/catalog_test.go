package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/desertthunder/mpx/internal/models"
	"github.com/desertthunder/mpx/internal/repositories"
	"github.com/desertthunder/mpx/internal/shared"
	tu "github.com/desertthunder/mpx/internal/testing"
)

func TestGenerated(t *testing.T) {
	ctx := context.Background()

	t.Run("names are sequential and ids unique", func(t *testing.T) {
		entries, err := Generated{Count: 60}.Entries(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 60 {
			t.Fatalf("expected 60 entries, got %d", len(entries))
		}
		for i, e := range entries {
			if e.Name != strconv.Itoa(i+1) {
				t.Errorf("entry %d name = %q", i, e.Name)
			}
		}
		if err := Validate(entries); err != nil {
			t.Errorf("generated entries should validate: %v", err)
		}
	})

	t.Run("non-positive count yields empty list", func(t *testing.T) {
		for _, n := range []int{0, -3} {
			entries, err := Generated{Count: n}.Entries(ctx)
			if err != nil || len(entries) != 0 {
				t.Errorf("Count=%d: got %d entries, err %v", n, len(entries), err)
			}
		}
	})
}

func TestFile(t *testing.T) {
	ctx := context.Background()

	t.Run("toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "entries.toml")
		tu.MustWriteFile(t, path, `[[entries]]
id = "a"
name = "Road trip"

[[entries]]
id = "b"
name = "Road trip"
`)

		entries, err := File{Path: path}.Entries(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []models.Entry{{ID: "a", Name: "Road trip"}, {ID: "b", Name: "Road trip"}}
		if len(entries) != len(want) {
			t.Fatalf("expected %d entries, got %d", len(want), len(entries))
		}
		for i := range want {
			if entries[i] != want[i] {
				t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
			}
		}
	})

	t.Run("yaml generates missing ids", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "entries.yml")
		tu.MustWriteFile(t, path, `entries:
  - id: x
    name: "1"
  - name: "2"
`)

		entries, err := File{Path: path}.Entries(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].ID != "x" {
			t.Errorf("expected id x, got %s", entries[0].ID)
		}
		if entries[1].ID == "" || entries[1].Name != "2" {
			t.Errorf("expected generated id for second entry, got %+v", entries[1])
		}
	})

	t.Run("yaml rejects unknown fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "entries.yaml")
		tu.MustWriteFile(t, path, "entries:\n  - id: x\n    title: nope\n")

		if _, err := (File{Path: path}).Entries(ctx); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "entries.json")
		tu.MustWriteFile(t, path, "{}")

		_, err := File{Path: path}.Entries(ctx)
		if !errors.Is(err, shared.ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := (File{Path: filepath.Join(t.TempDir(), "none.toml")}).Entries(ctx); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := shared.NewDatabase(path)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	repo := repositories.NewEntryRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	seed := []models.Entry{models.NewEntry("a", "one"), models.NewEntry("b", "two"), models.NewEntry("c", "three")}
	if err := repo.Replace(ctx, seed); err != nil {
		t.Fatalf("failed to seed database: %v", err)
	}

	t.Run("reads in position order", func(t *testing.T) {
		entries, err := NewSQLite(db).Entries(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var ids string
		for _, e := range entries {
			ids += e.ID
		}
		if ids != "abc" {
			t.Errorf("expected order abc, got %s", ids)
		}
	})

	if err := db.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}

	t.Run("Load opens database read-only", func(t *testing.T) {
		entries, err := Load(ctx, shared.CatalogConfig{Source: shared.SourceSQLite, Path: path})
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(entries) != 3 || entries[0].Name != "one" {
			t.Errorf("unexpected entries: %+v", entries)
		}
	})

	t.Run("missing table", func(t *testing.T) {
		empty, err := shared.NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer empty.Close()

		if _, err := NewSQLite(empty).Entries(ctx); err == nil {
			t.Error("expected query error")
		}
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("generated", func(t *testing.T) {
		entries, err := Load(ctx, shared.CatalogConfig{Source: shared.SourceGenerated, Count: 5})
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(entries) != 5 {
			t.Errorf("expected 5 entries, got %d", len(entries))
		}
	})

	t.Run("rejects duplicate ids from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "entries.toml")
		tu.MustWriteFile(t, path, "[[entries]]\nid = \"a\"\nname = \"1\"\n\n[[entries]]\nid = \"a\"\nname = \"2\"\n")

		_, err := Load(ctx, shared.CatalogConfig{Source: shared.SourceFile, Path: path})
		if !errors.Is(err, shared.ErrDuplicateEntry) {
			t.Errorf("expected ErrDuplicateEntry, got %v", err)
		}
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := Load(ctx, shared.CatalogConfig{Source: "http"})
		if !errors.Is(err, shared.ErrUnsupportedSource) {
			t.Errorf("expected ErrUnsupportedSource, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tc := []struct {
		name    string
		entries []models.Entry
		want    error
	}{
		{name: "empty list", entries: nil},
		{name: "fixture", entries: tu.Entries(60)},
		{name: "shared names", entries: []models.Entry{{ID: "1", Name: "x"}, {ID: "2", Name: "x"}}},
		{name: "empty id", entries: []models.Entry{{ID: "1", Name: "x"}, {ID: "", Name: "y"}}, want: shared.ErrInvalidEntry},
		{name: "duplicate id", entries: []models.Entry{{ID: "1", Name: "x"}, {ID: "1", Name: "y"}}, want: shared.ErrDuplicateEntry},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.entries)
			if tt.want == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
