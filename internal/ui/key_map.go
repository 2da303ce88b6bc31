package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	open      key.Binding
	close     key.Binding
	playPause key.Binding
	previous  key.Binding
	next      key.Binding
	add       key.Binding
	help      key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		playPause: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		previous:  key.NewBinding(key.WithKeys("[", ","), key.WithHelp("[", "previous")),
		next:      key.NewBinding(key.WithKeys("]", "."), key.WithHelp("]", "next")),
		add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.open, k.playPause, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right},
		{k.open, k.close, k.add},
		{k.playPause, k.previous, k.next},
		{k.help, k.quit},
	}
}

// expandedHelp is the short help while the detail overlay covers the grid.
func (k keyMap) expandedHelp() []key.Binding {
	return []key.Binding{k.close, k.playPause, k.help, k.quit}
}
