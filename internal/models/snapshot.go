package models

import (
	"fmt"
	"maps"
	"slices"

	json "github.com/goccy/go-json"
)

// MinimumSkillsVersion is the first version (Matixx) that records skill data.
const MinimumSkillsVersion = 5

const unknownSongName = "Unknown"

type Song struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Genre  string `json:"genre,omitempty"`
}

// Snapshot is everything the skills view needs for one player. It is built
// once and only read afterwards.
type Snapshot struct {
	players map[int]*PlayerRecord
	songs   map[int]Song
	catalog VersionCatalog
}

type wireSnapshot struct {
	Player   map[int]*PlayerRecord `json:"player"`
	Songs    map[int]Song          `json:"songs"`
	Versions map[int]string        `json:"versions"`
}

func NewSnapshot(players map[int]*PlayerRecord, songs map[int]Song, versions map[int]string) *Snapshot {
	s := &Snapshot{
		players: make(map[int]*PlayerRecord, len(players)),
		songs:   maps.Clone(songs),
		catalog: NewVersionCatalog(versions),
	}
	if s.songs == nil {
		s.songs = map[int]Song{}
	}
	for v, p := range players {
		if p == nil {
			continue
		}
		s.resolveNames(p)
		s.players[v] = p
	}
	return s
}

func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Snapshot) resolveNames(p *PlayerRecord) {
	for _, i := range Instruments {
		rec := p.Instrument(i)
		for _, pool := range [][]ScoreEntry{rec.Exist, rec.New} {
			for idx := range pool {
				if pool[idx].Name != "" {
					continue
				}
				if song, ok := s.songs[pool[idx].SongID]; ok && song.Name != "" {
					pool[idx].Name = song.Name
				} else {
					pool[idx].Name = unknownSongName
				}
			}
		}
	}
}

// Player returns the record for version. The record is shared, callers must not modify it.
func (s *Snapshot) Player(version int) (*PlayerRecord, bool) {
	p, ok := s.players[version]
	return p, ok
}

// Versions lists the versions the player has a record for, ascending.
func (s *Snapshot) Versions() []int {
	return slices.Sorted(maps.Keys(s.players))
}

func (s *Snapshot) Catalog() VersionCatalog {
	return s.catalog
}

func (s *Snapshot) Song(id int) (Song, bool) {
	song, ok := s.songs[id]
	return song, ok
}

// DefaultVersion is the newest version with a record, else the newest
// catalog version, else 0.
func (s *Snapshot) DefaultVersion() int {
	if versions := s.Versions(); len(versions) > 0 {
		return versions[len(versions)-1]
	}
	if v, ok := s.catalog.Latest(); ok {
		return v
	}
	return 0
}

func (s *Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireSnapshot{
		Player:   s.players,
		Songs:    s.songs,
		Versions: s.catalog.names(),
	})
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var w wireSnapshot
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	*s = *NewSnapshot(w.Player, w.Songs, w.Versions)
	return nil
}
