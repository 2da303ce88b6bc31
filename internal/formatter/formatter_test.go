package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/mpx/internal/models"
	"github.com/desertthunder/mpx/internal/shared"
	th "github.com/desertthunder/mpx/internal/testing"
)

func TestExporters(t *testing.T) {
	entries := []models.Entry{
		{ID: "id-1", Name: "Morning"},
		{ID: "id-2", Name: "Rock | Roll"},
	}

	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(entries)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
		}
		if lines[0] != "Position,ID,Name" {
			t.Errorf("CSV missing headers, got: %s", lines[0])
		}
		if lines[1] != "1,id-1,Morning" {
			t.Errorf("unexpected first row: %s", lines[1])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown("Fav", entries)
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "# Fav\n") {
			t.Errorf("markdown missing title, got: %s", output)
		}
		if !strings.Contains(output, "**Entries**: 2") {
			t.Error("markdown missing entry count")
		}
		if !strings.Contains(output, `| 2 | Rock \| Roll | `+"`id-2`"+` |`) {
			t.Errorf("markdown did not escape pipe, got: %s", output)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText("Fav", th.Entries(3))
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		want := "Fav\nEntries: 3\n\n1. 1 (1)\n2. 2 (2)\n3. 3 (3)\n"
		if string(data) != want {
			t.Errorf("got %q, want %q", data, want)
		}
	})

	t.Run("ExportToText empty", func(t *testing.T) {
		data, err := ExportToText("Fav", nil)
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}
		if !strings.Contains(string(data), "Entries: 0") {
			t.Errorf("unexpected output: %q", data)
		}
	})

	t.Run("Export dispatches by format", func(t *testing.T) {
		tc := []struct {
			format string
			prefix string
		}{
			{format: "text", prefix: "Fav\n"},
			{format: "", prefix: "Fav\n"},
			{format: "CSV", prefix: "Position,ID,Name"},
			{format: "md", prefix: "# Fav"},
			{format: "markdown", prefix: "# Fav"},
		}
		for _, tt := range tc {
			data, err := Export(tt.format, "Fav", entries)
			if err != nil {
				t.Errorf("Export(%q) failed: %v", tt.format, err)
				continue
			}
			if !strings.HasPrefix(string(data), tt.prefix) {
				t.Errorf("Export(%q) = %q, want prefix %q", tt.format, data, tt.prefix)
			}
		}
	})

	t.Run("Export rejects unknown format", func(t *testing.T) {
		_, err := Export("xml", "Fav", entries)
		if !errors.Is(err, shared.ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})
}
