// package formatter renders catalog entries in plain text, CSV and Markdown
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/desertthunder/mpx/internal/models"
	"github.com/desertthunder/mpx/internal/shared"
)

// Output formats accepted by [Export].
const (
	FormatText     = "text"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// Export renders entries in the named format. JSON is handled by the caller's encoder.
func Export(format, title string, entries []models.Entry) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatText, "txt", "":
		return ExportToText(title, entries)
	case FormatCSV:
		return ExportToCSV(entries)
	case FormatMarkdown, "md":
		return ExportToMarkdown(title, entries)
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrUnsupportedFormat, format)
	}
}

// ExportToCSV converts entries to CSV format with columns: Position, ID, Name
func ExportToCSV(entries []models.Entry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Position", "ID", "Name"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, e := range entries {
		record := []string{fmt.Sprint(i + 1), e.ID, e.Name}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts entries to a Markdown document headed by title
func ExportToMarkdown(title string, entries []models.Entry) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Entries**: %d\n\n", len(entries)))

	buf.WriteString("| # | Name | ID |\n")
	buf.WriteString("|---|------|----|\n")
	for i, e := range entries {
		buf.WriteString(fmt.Sprintf("| %d | %s | `%s` |\n", i+1, escapeCell(e.Name), e.ID))
	}

	return buf.Bytes(), nil
}

// ExportToText converts entries to plain text format
func ExportToText(title string, entries []models.Entry) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", title))
	buf.WriteString(fmt.Sprintf("Entries: %d\n\n", len(entries)))

	for i, e := range entries {
		buf.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, e.Name, e.ID))
	}

	return buf.Bytes(), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
