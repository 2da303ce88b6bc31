// Package models defines the entities shown on the player screen.
//
// [Entry] is the only entity: an immutable playlist tile with an opaque, unique id and a display name.
// Entries are created once at startup by a catalog source and never change afterwards.
// Identity and display value are separate; two entries may share a name but never an id.
package models
