// Package ui implements the player screen using bubbletea's Elm architecture.
//
// The screen composes three views over a [state.Store]:
//  1. Grid : two-column playlist tiles in a scrolling viewport, with a keyboard cursor
//  2. Detail overlay : a dimmed backdrop and a card that morphs out of the selected tile
//  3. Control panel : a floating play/pause bar that narrows while playing
//
// The root [Model] owns the store. Key presses and mouse clicks become [state.Action] values; views never mutate state.
// The morph between tile and card is a [Transition] keyed by entry id, driven by a harmonica spring and tea.Tick frames.
// With animations disabled every transition snaps to its destination, which keeps headless tests deterministic.
//
// Keyboard: arrows or h/j/k/l move, enter opens, esc closes, space or p plays/pauses, [ and ] skip, a scrolls to top, ? help, q quits.
package ui
