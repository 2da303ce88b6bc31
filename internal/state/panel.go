package state

// Glyph is the symbol on the central control bar button.
type Glyph int

const (
	GlyphPause Glyph = iota
	GlyphPlay
)

// String returns the glyph name.
func (g Glyph) String() string {
	switch g {
	case GlyphPlay:
		return "play"
	case GlyphPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Layout is the width class of the control bar.
type Layout int

const (
	LayoutFull Layout = iota
	LayoutNarrow
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutFull:
		return "full"
	case LayoutNarrow:
		return "narrow"
	default:
		return "unknown"
	}
}

// Panel is the control bar state. The zero value is the initial state: full width, not playing.
type Panel struct {
	Collapsed bool `json:"collapsed"`
	Playing   bool `json:"playing"`
}

// Toggle flips both flags at once. This is the only transition.
func (p Panel) Toggle() Panel {
	return Panel{Collapsed: !p.Collapsed, Playing: !p.Playing}
}

// Layout derives the bar width from the collapsed flag.
func (p Panel) Layout() Layout {
	if p.Collapsed {
		return LayoutNarrow
	}
	return LayoutFull
}

// ShowsSkipControls reports whether previous/next are on screen.
func (p Panel) ShowsSkipControls() bool {
	return p.Layout() == LayoutFull
}

// Glyph shows "play" only when playing and collapsed, "pause" otherwise.
// Since both flags flip together, a playing bar shows "play".
func (p Panel) Glyph() Glyph {
	if p.Playing && p.Collapsed {
		return GlyphPlay
	}
	return GlyphPause
}
