package ui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/mpx/internal/state"
	"golang.org/x/time/rate"
)

var glyphSymbols = map[state.Glyph]string{
	state.GlyphPlay:  "▶",
	state.GlyphPause: "❚❚",
}

const (
	previousSymbol = "◀◀"
	nextSymbol     = "▶▶"
)

// controlPanel draws the floating playback bar. Its only own state is the animated width;
// collapsed and playing come from the store.
type controlPanel struct {
	width   springValue // 0 is narrow, 1 is full width
	palette Palette
	limiter *rate.Limiter
	logger  *log.Logger
}

func newControlPanel(palette Palette, fps int, duration, stubInterval time.Duration, animate bool, logger *log.Logger) *controlPanel {
	// critically damped spring whose response matches the requested duration
	frequency := 2 * math.Pi / math.Max(duration.Seconds(), 0.01)

	limit := rate.Inf
	if stubInterval > 0 {
		limit = rate.Every(stubInterval)
	}

	return &controlPanel{
		width:   newSpringValue(fps, frequency, 1.0, animate, 1),
		palette: palette,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// observe is a [state.Listener] retargeting the width and reporting the skip stubs.
func (c *controlPanel) observe(prev, next state.Snapshot, a state.Action) {
	if prev.Panel.Layout() != next.Panel.Layout() {
		if next.Panel.Layout() == state.LayoutNarrow {
			c.width.set(0)
		} else {
			c.width.set(1)
		}
	}

	switch a.Kind {
	case state.ActionPrevious, state.ActionNext:
		if c.logger != nil && c.limiter.Allow() {
			c.logger.Info("skip control has no player behind it", "action", a.Kind)
		}
	case state.ActionToggle:
		if c.logger != nil {
			c.logger.Info("play/pause", "playing", next.Panel.Playing, "glyph", next.Panel.Glyph())
		}
	}
}

func (c *controlPanel) step() {
	c.width.step()
}

func (c *controlPanel) moving() bool {
	return c.width.moving()
}

// Bounds returns the bar rectangle for a screen whose drawable area (above the help line) is width × height.
func (c *controlPanel) Bounds(width, height int) Rect {
	full := max(width-2*gridPadding, 3)
	narrow := min(narrowPanelWidth, full)
	w := narrow + int(math.Round(float64(full-narrow)*clamp01(c.width.pos)))

	return Rect{
		X: (width - w) / 2,
		Y: height - panelHeight - shadowHeight,
		W: w,
		H: panelHeight,
	}
}

// segments splits the bar interior into previous, play/pause and next columns.
func segments(inner int) (int, int, int) {
	side := inner / 3
	return side, inner - 2*side, side
}

// View renders the bar for p with its top-left at bounds.
func (c *controlPanel) View(p state.Panel, bounds Rect) string {
	inner := max(bounds.W-2, 1)
	glyph := glyphSymbols[p.Glyph()]

	var content string
	if p.ShowsSkipControls() && inner >= 3 {
		l, m, r := segments(inner)
		content = lipgloss.PlaceHorizontal(l, lipgloss.Center, previousSymbol) +
			lipgloss.PlaceHorizontal(m, lipgloss.Center, glyph) +
			lipgloss.PlaceHorizontal(r, lipgloss.Center, nextSymbol)
	} else {
		content = lipgloss.PlaceHorizontal(inner, lipgloss.Center, glyph)
	}

	return c.palette.bar.Width(inner).Render(content)
}

// Shadow renders the drop shadow strip for a bar at bounds.
func (c *controlPanel) Shadow(bounds Rect) string {
	return c.palette.shadow.Render(strings.Repeat("▀", bounds.W))
}

// HitTest maps a click inside bounds to the action of the affordance under it.
func (c *controlPanel) HitTest(x, y int, p state.Panel, bounds Rect) (state.Action, bool) {
	if !bounds.Contains(x, y) {
		return state.Action{}, false
	}
	if !p.ShowsSkipControls() {
		return state.ToggleAction(), true
	}

	l, m, _ := segments(max(bounds.W-2, 1))
	offset := x - bounds.X - 1
	switch {
	case offset < l:
		return state.PreviousAction(), true
	case offset < l+m:
		return state.ToggleAction(), true
	default:
		return state.NextAction(), true
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
