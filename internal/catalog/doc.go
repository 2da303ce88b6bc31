// Package catalog supplies the ordered list of playlist entries shown on the grid.
//
// The screen treats its entries as external input. A [Source] produces them once at startup:
//   - [Generated] : sequential names "1".."n" with random v4 UUID ids (the default)
//   - [File] : a TOML or YAML document with an entries list
//   - [SQLite] : rows of a playlist_entries table, read without write access
//
// [Load] opens the source named in [shared.CatalogConfig], reads it, and checks the result with [Validate].
package catalog
