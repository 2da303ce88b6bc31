package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mpx/internal/state"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgFrame MsgKind = iota
	MsgDispatch
)

// frameMsg is the constructor for [MsgFrame]
func frameMsg(t time.Time) Msg {
	return Msg{kind: MsgFrame, data: t}
}

// DispatchMsg is the constructor for [MsgDispatch]. It feeds an action into a running program
// as if the user had produced it.
func DispatchMsg(a state.Action) Msg {
	return Msg{kind: MsgDispatch, data: a}
}
