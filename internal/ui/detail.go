package ui

import (
	"github.com/desertthunder/mpx/internal/models"
)

// detailSwapPoint is the morph progress at which the tile glyph gives way to the detail title.
const detailSwapPoint = 0.5

// cardRect is the destination of the morph: the screen minus a margin, above the help line.
func cardRect(width, height int) Rect {
	return Rect{
		X: gridPadding,
		Y: cardMargin,
		W: max(width-2*gridPadding, 3),
		H: max(height-2*cardMargin, 3),
	}
}

// renderCard draws the morphing shape for e at r. Early in the morph it still looks like the tile;
// past the swap point it shows the detail title.
func renderCard(p Palette, e models.Entry, r Rect, progress float64) string {
	text := e.Initial()
	if progress >= detailSwapPoint {
		text = e.DetailTitle()
	}

	return p.card.
		Width(r.W - 2).
		Height(r.H - 2).
		MaxWidth(r.W).
		MaxHeight(r.H).
		Render(p.cardText.Render(text))
}
