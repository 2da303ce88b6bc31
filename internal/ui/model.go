package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/mpx/internal/models"
	"github.com/desertthunder/mpx/internal/shared"
	"github.com/desertthunder/mpx/internal/state"
)

// Options carries the dependencies of a [Model].
type Options struct {
	Entries []models.Entry
	UI      shared.UIConfig
	Logger  *log.Logger
}

// Model is the root composition of the player screen. It exclusively owns the [state.Store].
type Model struct {
	store   *state.Store
	grid    *gridView
	panel   *controlPanel
	morph   *Transition
	palette Palette
	keys    keyMap
	help    help.Model
	logger  *log.Logger
	frame   time.Duration
	ticking bool
	width   int
	height  int
}

// NewModel creates the screen for the given entries.
func NewModel(opts Options) *Model {
	cfg := opts.UI
	defaults := shared.DefaultConfig().UI
	if cfg.FPS <= 0 {
		cfg.FPS = defaults.FPS
	}
	if cfg.SpringFrequency <= 0 || cfg.SpringDamping <= 0 {
		cfg.SpringFrequency, cfg.SpringDamping = defaults.SpringFrequency, defaults.SpringDamping
	}
	if cfg.PanelDurationMS <= 0 {
		cfg.PanelDurationMS = defaults.PanelDurationMS
	}

	scheme, err := ParseColorScheme(cfg.ColorScheme)
	if err != nil && opts.Logger != nil {
		opts.Logger.Warn("unknown color scheme, using dark", "scheme", cfg.ColorScheme)
	}
	palette := NewPalette(scheme)

	m := &Model{
		store:   state.NewStore(opts.Logger),
		grid:    newGridView(opts.Entries, palette),
		morph:   NewTransition(cfg.FPS, cfg.SpringFrequency, cfg.SpringDamping, cfg.Animations),
		palette: palette,
		keys:    newKeyMap(),
		help:    help.New(),
		logger:  opts.Logger,
		frame:   time.Second / time.Duration(cfg.FPS),
	}
	m.panel = newControlPanel(
		palette,
		cfg.FPS,
		time.Duration(cfg.PanelDurationMS)*time.Millisecond,
		time.Duration(cfg.StubLogIntervalMS)*time.Millisecond,
		cfg.Animations,
		opts.Logger,
	)

	m.store.Subscribe(m.observeSelection)
	m.store.Subscribe(m.panel.observe)

	return m
}

// observeSelection starts the tile/card morph when the overlay opens or closes.
func (m *Model) observeSelection(prev, next state.Snapshot, _ state.Action) {
	switch {
	case !prev.Selection.Expanded && next.Selection.Expanded:
		m.morph.Expand(next.Selection.Selected)
	case prev.Selection.Expanded && !next.Selection.Expanded:
		m.morph.Collapse()
	}
}

// Snapshot returns the current view state.
func (m *Model) Snapshot() state.Snapshot {
	return m.store.Snapshot()
}

// Init implements [tea.Model]. Nothing needs to load.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		cmd = m.handleKeys(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case Msg:
		switch msg.kind {
		case MsgFrame:
			cmd = m.step()
		case MsgDispatch:
			if a, ok := msg.data.(state.Action); ok {
				cmd = m.dispatch(a)
			}
		}
	}

	m.layout()
	return m, cmd
}

func (m *Model) handleKeys(msg tea.KeyMsg) tea.Cmd {
	expanded := m.store.Snapshot().Selection.Expanded

	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.playPause):
		return m.dispatch(state.ToggleAction())
	case key.Matches(msg, m.keys.previous):
		return m.dispatch(state.PreviousAction())
	case key.Matches(msg, m.keys.next):
		return m.dispatch(state.NextAction())
	case key.Matches(msg, m.keys.add):
		m.grid.ScrollTop()
		return m.dispatch(state.ScrollTopAction())
	}

	if expanded {
		if key.Matches(msg, m.keys.close) {
			return m.dispatch(state.DismissAction())
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.up):
		m.grid.Move(0, -1)
	case key.Matches(msg, m.keys.down):
		m.grid.Move(0, 1)
	case key.Matches(msg, m.keys.left):
		m.grid.Move(-1, 0)
	case key.Matches(msg, m.keys.right):
		m.grid.Move(1, 0)
	case key.Matches(msg, m.keys.open):
		if e, ok := m.grid.Current(); ok {
			return m.dispatch(state.SelectAction(e))
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	snap := m.store.Snapshot()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if !snap.Selection.Expanded {
			m.grid.Scroll(-rowGap - 1)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if !snap.Selection.Expanded {
			m.grid.Scroll(rowGap + 1)
		}
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	if a, ok := m.panel.HitTest(msg.X, msg.Y, snap.Panel, m.panelBounds()); ok {
		return m.dispatch(a)
	}

	if snap.Selection.Expanded {
		if !m.morphRect().Contains(msg.X, msg.Y) {
			return m.dispatch(state.DismissAction())
		}
		return nil
	}

	if m.addBounds().Contains(msg.X, msg.Y) {
		m.grid.ScrollTop()
		return m.dispatch(state.ScrollTopAction())
	}

	if i, ok := m.grid.HitTest(msg.X, msg.Y); ok {
		m.grid.Focus(i)
		if e, ok := m.grid.Current(); ok {
			return m.dispatch(state.SelectAction(e))
		}
	}
	return nil
}

// dispatch applies a through the store and starts animation frames if anything began moving.
func (m *Model) dispatch(a state.Action) tea.Cmd {
	m.store.Dispatch(a)
	return m.animate()
}

func (m *Model) animate() tea.Cmd {
	if m.ticking || !m.moving() {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m *Model) moving() bool {
	return m.morph.Moving() || m.panel.moving()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// step advances every running animation by one frame. A mutation between frames simply
// retargets the springs, so there is never more than one tick in flight.
func (m *Model) step() tea.Cmd {
	m.morph.Step()
	m.panel.step()

	if m.moving() {
		return m.tick()
	}
	m.ticking = false
	return nil
}

// layout sizes the grid for the current screen and rebuilds its content from state.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	m.help.Width = m.width
	m.grid.SetSize(m.width, m.drawHeight()-gridTop)

	snap := m.store.Snapshot()
	flying := m.morph.Key()
	hidden := func(e models.Entry) bool {
		return snap.Selection.IsSelected(e) || e.ID == flying
	}
	m.grid.Render(hidden, !snap.Selection.Expanded)
}

// drawHeight is the number of rows above the help footer.
func (m *Model) drawHeight() int {
	return max(m.height-lipgloss.Height(m.helpView()), 0)
}

func (m *Model) helpView() string {
	if m.help.ShowAll {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	if m.store.Snapshot().Selection.Expanded {
		return m.help.ShortHelpView(m.keys.expandedHelp())
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m *Model) panelBounds() Rect {
	return m.panel.Bounds(m.width, m.drawHeight())
}

func (m *Model) addBounds() Rect {
	w := lipgloss.Width(addLabel)
	return Rect{X: m.width - gridPadding - w, Y: 0, W: w, H: 1}
}

// morphRect resolves the current card rectangle from the morphing tile's geometry.
func (m *Model) morphRect() Rect {
	to := cardRect(m.width, m.drawHeight())
	from := to
	if e, ok := m.grid.Entry(m.morph.Key()); ok {
		from = m.grid.TileRect(m.grid.index[e.ID])
	}
	return m.morph.Rect(from, to).Clamp(m.width, m.drawHeight(), 3, 3)
}

func (m *Model) renderHeader() string {
	title := m.palette.title.Render(screenTitle)
	add := m.palette.action.Render(addLabel)
	gap := max(m.width-2*gridPadding-lipgloss.Width(title)-lipgloss.Width(add), 1)

	line := strings.Repeat(" ", gridPadding) + title + strings.Repeat(" ", gap) + add
	return line + strings.Repeat("\n", headerHeight-1)
}

// View renders the screen: header, pinned section title and grid, the backdrop and morphing card when a tile is open,
// the floating control panel on top, and the help footer.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	snap := m.store.Snapshot()
	height := m.drawHeight()

	screen := fitLines(m.renderHeader()+"\n"+m.grid.Header()+"\n"+m.grid.View(), m.width, height)

	if snap.Selection.Expanded {
		screen = dimLines(screen, m.palette.backdrop)
	}

	if m.morph.Visible() {
		if e, ok := m.grid.Entry(m.morph.Key()); ok {
			r := m.morphRect()
			screen = placeOverlay(r.X, r.Y, renderCard(m.palette, e, r, m.morph.Progress()), screen)
		}
	}

	bounds := m.panelBounds()
	if !snap.Selection.Expanded {
		screen = placeOverlay(bounds.X+1, bounds.Y+bounds.H, m.panel.Shadow(bounds), screen)
	}
	screen = placeOverlay(bounds.X, bounds.Y, m.panel.View(snap.Panel, bounds), screen)

	return fitLines(screen, m.width, height) + "\n" + m.helpView()
}
