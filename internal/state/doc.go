// Package state holds the view state of the player screen and the rules that change it.
//
// Two records make up the state:
//   - [Selection] : at most one expanded entry; expanded and selected always change together
//   - [Panel] : the control bar's collapsed flag and the playing flag, flipped in lockstep
//
// Both are plain values with pure transition methods. [Reduce] maps a [Snapshot] and an [Action] to the next [Snapshot].
// A [Store] owns the current snapshot, applies actions through [Reduce], and notifies subscribers synchronously.
//
// All mutation happens on the bubbletea update goroutine, so the store does no locking.
package state
