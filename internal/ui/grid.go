package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/mpx/internal/models"
)

// gridView renders entries two per row inside a scrolling viewport.
//
// It keeps only a cursor and a scroll offset, both ephemeral. Which tile is hidden is decided by the caller.
type gridView struct {
	entries   []models.Entry
	index     map[string]int
	cursor    int
	viewport  viewport.Model
	tileWidth int
	palette   Palette
}

func newGridView(entries []models.Entry, palette Palette) *gridView {
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.ID] = i
	}
	return &gridView{
		entries:   entries,
		index:     index,
		viewport:  viewport.New(0, 0),
		tileWidth: minTileWidth,
		palette:   palette,
	}
}

// SetSize fits the grid to a screen of the given width, with height rows available for the viewport.
func (g *gridView) SetSize(width, height int) {
	g.viewport.Width = width
	g.viewport.Height = max(height, 0)
	g.tileWidth = max((width-2*gridPadding-columnGap)/2, minTileWidth)
}

// Entry returns the entry with the given id.
func (g *gridView) Entry(id string) (models.Entry, bool) {
	i, ok := g.index[id]
	if !ok {
		return models.Entry{}, false
	}
	return g.entries[i], true
}

// Current returns the entry under the cursor.
func (g *gridView) Current() (models.Entry, bool) {
	if g.cursor < 0 || g.cursor >= len(g.entries) {
		return models.Entry{}, false
	}
	return g.entries[g.cursor], true
}

// Move shifts the cursor by dx columns and dy rows, stopping at the edges.
func (g *gridView) Move(dx, dy int) {
	if len(g.entries) == 0 {
		return
	}

	next := g.cursor + dx + dy*2
	if dx != 0 && (next/2 != g.cursor/2 || next < 0) {
		return
	}
	if next < 0 || next >= len(g.entries) {
		return
	}
	g.cursor = next
	g.ensureVisible()
}

// Focus puts the cursor on entry i.
func (g *gridView) Focus(i int) {
	if i >= 0 && i < len(g.entries) {
		g.cursor = i
	}
}

// ScrollTop jumps to the first tile.
func (g *gridView) ScrollTop() {
	g.cursor = 0
	g.viewport.GotoTop()
}

// Scroll moves the viewport by delta lines without touching the cursor.
func (g *gridView) Scroll(delta int) {
	g.viewport.SetYOffset(g.viewport.YOffset + delta)
}

// Offset is the current scroll position in content lines.
func (g *gridView) Offset() int {
	return g.viewport.YOffset
}

// visibleHeight excludes the rows covered by the floating control panel.
func (g *gridView) visibleHeight() int {
	return max(g.viewport.Height-panelHeight-shadowHeight, tileHeight)
}

func (g *gridView) ensureVisible() {
	row := g.cursor / 2
	top := rowTop(row)
	bottom := top + tileHeight

	switch {
	case row == 0:
		g.viewport.GotoTop()
	case top < g.viewport.YOffset:
		g.viewport.SetYOffset(top)
	case bottom > g.viewport.YOffset+g.visibleHeight():
		g.viewport.SetYOffset(bottom - g.visibleHeight())
	}
}

func rowTop(row int) int {
	return row * (tileHeight + rowGap)
}

// TileRect returns the on-screen rectangle of tile i. It may lie outside the viewport.
func (g *gridView) TileRect(i int) Rect {
	row, col := i/2, i%2
	return Rect{
		X: gridPadding + col*(g.tileWidth+columnGap),
		Y: gridTop + rowTop(row) - g.viewport.YOffset,
		W: g.tileWidth,
		H: tileHeight,
	}
}

// HitTest maps a screen cell to the tile under it.
func (g *gridView) HitTest(x, y int) (int, bool) {
	if y < gridTop || y >= gridTop+g.viewport.Height {
		return 0, false
	}

	for i := range g.entries {
		if g.TileRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Render rebuilds the viewport content. hidden marks tiles whose content has flown into the overlay.
func (g *gridView) Render(hidden func(models.Entry) bool, showCursor bool) {
	var b strings.Builder

	for i := 0; i < len(g.entries); i += 2 {
		left := g.renderTile(i, hidden, showCursor)
		row := left
		if i+1 < len(g.entries) {
			right := g.renderTile(i+1, hidden, showCursor)
			row = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", columnGap), right)
		}
		b.WriteString(row)
		b.WriteString(strings.Repeat("\n", rowGap+1))
	}

	// room to scroll the last row above the control panel
	b.WriteString(strings.Repeat("\n", panelHeight+shadowHeight))

	content := lipgloss.NewStyle().PaddingLeft(gridPadding).Render(b.String())
	g.viewport.SetContent(content)
}

func (g *gridView) renderTile(i int, hidden func(models.Entry) bool, showCursor bool) string {
	e := g.entries[i]
	focused := showCursor && i == g.cursor

	if hidden != nil && hidden(e) {
		style := g.palette.placeholder.Width(g.tileWidth - 2).Height(tileHeight - 2)
		if focused {
			style = style.BorderForeground(g.palette.focus)
		}
		return style.Render("")
	}

	style := g.palette.tile.Width(g.tileWidth - 2).Height(tileHeight - 2)
	if focused {
		style = style.BorderForeground(g.palette.focus)
	}
	return style.Render(g.palette.tileGlyph.Render(e.Initial()))
}

// Header renders the section title. It stays above the viewport while the tiles scroll.
func (g *gridView) Header() string {
	title := strings.Repeat(" ", gridPadding) + g.palette.section.Render(sectionTitle)
	return title + strings.Repeat("\n", sectionHeight-1)
}

// View renders the visible part of the grid.
func (g *gridView) View() string {
	return g.viewport.View()
}
