package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/mpx/internal/shared"
)

// ColorScheme selects the tint used for chrome and controls.
type ColorScheme int

const (
	SchemeDark ColorScheme = iota
	SchemeLight
)

// ParseColorScheme maps a config value onto a [ColorScheme].
func ParseColorScheme(s string) (ColorScheme, error) {
	switch s {
	case shared.SchemeDark, "":
		return SchemeDark, nil
	case shared.SchemeLight:
		return SchemeLight, nil
	default:
		return SchemeDark, fmt.Errorf("%w: color scheme %q", shared.ErrInvalidConfig, s)
	}
}

const (
	colorGray      = "#8E8E93"
	colorWhite     = "#FFFFFF"
	colorBlack     = "#000000"
	colorFocusDark = "#FFD60A"
	colorFocusLite = "#0A84FF"
)

// Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title       lipgloss.Style
	action      lipgloss.Style
	section     lipgloss.Style
	tile        lipgloss.Style
	tileGlyph   lipgloss.Style
	placeholder lipgloss.Style
	card        lipgloss.Style
	cardText    lipgloss.Style
	bar         lipgloss.Style
	shadow      lipgloss.Style
	backdrop    lipgloss.Style
	focus       lipgloss.Color
}

// NewPalette builds the stylesheet for a color scheme. Tiles, card and bar are gray in both schemes;
// the tint is white on dark and black on light.
func NewPalette(scheme ColorScheme) Palette {
	tint, shadow, backdrop, focus := colorWhite, "#3A3A3C", "#48484A", colorFocusDark
	if scheme == SchemeLight {
		tint, shadow, backdrop, focus = colorBlack, "#C7C7CC", "#AEAEB2", colorFocusLite
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorGray)).
		Background(lipgloss.Color(colorGray)).
		Foreground(lipgloss.Color(colorWhite))

	return Palette{
		title:       NewBold(tint),
		action:      NewStyle(tint),
		section:     NewBold(tint).Underline(true),
		tile:        panel.Align(lipgloss.Center, lipgloss.Center),
		tileGlyph:   NewBold(colorWhite).Background(lipgloss.Color(colorGray)),
		placeholder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(backdrop)),
		card:        panel.Align(lipgloss.Center, lipgloss.Center),
		cardText:    NewBold(colorWhite).Background(lipgloss.Color(colorGray)),
		bar:         panel,
		shadow:      NewStyle(shadow),
		backdrop:    NewStyle(backdrop).Faint(true),
		focus:       lipgloss.Color(focus),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}
