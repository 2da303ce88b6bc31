// Package repositories implements SQLite persistence for playlist entries.
//
// [EntryRepository] owns the playlist_entries table. It is the write side of the sqlite catalog source:
// entries are imported once, in order, and read back by position.
package repositories
