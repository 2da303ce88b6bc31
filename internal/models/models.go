// package models defines the data model for the player screen
package models

import (
	"fmt"
	"unicode/utf8"
)

// Entry is a single playlist tile.
type Entry struct {
	ID   string `json:"id" toml:"id" yaml:"id"`
	Name string `json:"name" toml:"name" yaml:"name"`
}

// NewEntry creates an [Entry] with the given id and name.
func NewEntry(id, name string) Entry {
	return Entry{ID: id, Name: name}
}

// Initial returns the first character of the name, or a single space for an empty name.
func (e Entry) Initial() string {
	r, size := utf8.DecodeRuneInString(e.Name)
	if size == 0 || r == utf8.RuneError {
		return " "
	}
	return string(r)
}

// DetailTitle is the heading shown in the expanded detail card.
func (e Entry) DetailTitle() string {
	return fmt.Sprintf("Details for %s", e.Name)
}

// Validate checks that the entry carries an id.
func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry %q has an empty id", e.Name)
	}
	return nil
}
