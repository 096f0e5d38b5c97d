package models

const StorageVersion = 1

// Storage is the on-disk envelope holding one snapshot per player id.
type Storage struct {
	Version int                  `json:"version"`
	Players map[string]*Snapshot `json:"players"`
}
