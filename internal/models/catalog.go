package models

import (
	"slices"
	"strconv"
)

type VersionEntry struct {
	Version int    `json:"version"`
	Name    string `json:"name"`
}

// VersionCatalog is the list of known game versions, always ordered by
// version number ascending regardless of how it was supplied.
type VersionCatalog struct {
	entries []VersionEntry
}

func NewVersionCatalog(names map[int]string) VersionCatalog {
	entries := make([]VersionEntry, 0, len(names))
	for v, name := range names {
		entries = append(entries, VersionEntry{Version: v, Name: name})
	}
	slices.SortFunc(entries, func(a, b VersionEntry) int { return a.Version - b.Version })
	return VersionCatalog{entries: entries}
}

func (c VersionCatalog) Entries() []VersionEntry {
	return slices.Clone(c.entries)
}

func (c VersionCatalog) Len() int {
	return len(c.entries)
}

func (c VersionCatalog) Name(version int) (string, bool) {
	i, ok := slices.BinarySearchFunc(c.entries, version, func(e VersionEntry, v int) int { return e.Version - v })
	if !ok {
		return "", false
	}
	return c.entries[i].Name, true
}

// DisplayName falls back to "Version N" for versions missing from the catalog.
func (c VersionCatalog) DisplayName(version int) string {
	if name, ok := c.Name(version); ok {
		return name
	}
	return "Version " + strconv.Itoa(version)
}

func (c VersionCatalog) Latest() (int, bool) {
	if len(c.entries) == 0 {
		return 0, false
	}
	return c.entries[len(c.entries)-1].Version, true
}

func (c VersionCatalog) names() map[int]string {
	out := make(map[int]string, len(c.entries))
	for _, e := range c.entries {
		out[e.Version] = e.Name
	}
	return out
}
