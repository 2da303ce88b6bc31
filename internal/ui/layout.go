package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Screen geometry in terminal cells.
const (
	headerHeight     = 2
	sectionHeight    = 2
	tileHeight       = 5
	rowGap           = 1
	columnGap        = 2
	gridPadding      = 2
	panelHeight      = 3
	shadowHeight     = 1
	narrowPanelWidth = 15
	cardMargin       = 1
	minTileWidth     = 5

	// gridTop is the first screen row of the scrolling viewport, below the title and pinned section header.
	gridTop = headerHeight + sectionHeight
)

const (
	screenTitle  = "MusicPlayer"
	sectionTitle = "Fav"
	addLabel     = "+ Add"
)

// placeOverlay draws fg over bg with its top-left corner at (x, y).
// Lines of fg that fall outside bg are dropped; short bg lines are padded with spaces.
func placeOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	x = max(x, 0)

	for i, line := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}

		base := bgLines[row]
		if w := ansi.StringWidth(base); w < x {
			base += strings.Repeat(" ", x-w)
		}

		left := ansi.Truncate(base, x, "")
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(line), "")
		bgLines[row] = left + line + right
	}

	return strings.Join(bgLines, "\n")
}

// fitLines pads or cuts s to exactly height lines, each no wider than width.
func fitLines(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}

// dimLines repaints s in the backdrop style, discarding its own colors.
func dimLines(s string, style lipgloss.Style) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
