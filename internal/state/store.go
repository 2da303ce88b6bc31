package state

import (
	"github.com/charmbracelet/log"
)

// Snapshot is the complete view state of the screen.
type Snapshot struct {
	Selection Selection `json:"selection"`
	Panel     Panel     `json:"panel"`
}

// Reduce returns the snapshot that results from applying a to s.
//
// Previous, next and scroll-top carry no modelled state and return s unchanged.
func Reduce(s Snapshot, a Action) Snapshot {
	switch a.Kind {
	case ActionSelect:
		s.Selection = s.Selection.Select(a.Entry)
	case ActionDismiss:
		s.Selection = s.Selection.Dismiss()
	case ActionToggle:
		s.Panel = s.Panel.Toggle()
	}
	return s
}

// Listener is notified after every dispatch with the snapshots on either side of the action.
type Listener func(prev, next Snapshot, a Action)

type subscription struct {
	id int
	fn Listener
}

// Store owns the screen's [Snapshot]. It is not safe for concurrent use.
type Store struct {
	snap      Snapshot
	listeners []subscription
	nextID    int
	logger    *log.Logger
}

// NewStore creates a store holding the initial snapshot. A nil logger disables action logging.
func NewStore(logger *log.Logger) *Store {
	return &Store{logger: logger}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	return s.snap
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: l})

	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispatch applies a, notifies listeners in subscription order, and returns the new snapshot.
func (s *Store) Dispatch(a Action) Snapshot {
	prev := s.snap
	s.snap = Reduce(prev, a)

	if s.logger != nil {
		s.logger.Debug("dispatch",
			"action", a.Kind,
			"selected", s.snap.Selection.Selected,
			"expanded", s.snap.Selection.Expanded,
			"collapsed", s.snap.Panel.Collapsed,
			"playing", s.snap.Panel.Playing,
		)
	}

	for _, sub := range s.listeners {
		sub.fn(prev, s.snap, a)
	}
	return s.snap
}
