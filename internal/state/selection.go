package state

import "github.com/desertthunder/mpx/internal/models"

// Selection records which entry, if any, is shown in the detail overlay.
//
// The zero value is the collapsed state. Expanded is true exactly when Selected is non-empty.
type Selection struct {
	Selected string `json:"selected"`
	Expanded bool   `json:"expanded"`
}

// Select expands the given entry.
//
// Selecting while already expanded leaves the selection unchanged.
// The grid is covered while expanded, so this only guards against stray input.
// Entries without an id are ignored.
func (s Selection) Select(e models.Entry) Selection {
	if s.Expanded || e.ID == "" {
		return s
	}
	return Selection{Selected: e.ID, Expanded: true}
}

// Dismiss collapses the overlay. Dismissing a collapsed selection is a no-op.
func (s Selection) Dismiss() Selection {
	return Selection{}
}

// IsSelected reports whether e is the expanded entry.
func (s Selection) IsSelected(e models.Entry) bool {
	return s.Expanded && s.Selected != "" && s.Selected == e.ID
}

// Valid reports whether the expanded flag agrees with the selected id.
func (s Selection) Valid() bool {
	return s.Expanded == (s.Selected != "")
}
