package models

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// ScoreEntry is one song chart on a skill list. Level and Skill are scaled by 100.
type ScoreEntry struct {
	SongID  int        `json:"music_id"`
	Name    string     `json:"music_name"`
	Chart   string     `json:"chart"`
	Level   int        `json:"music_difficulties"`
	Skill   int        `json:"skills_point"`
	Percent Percentage `json:"perc"`
}

// decodeEntries never fails: a missing list, a non-array, or array items that
// are not objects (the importer pads unused slots with -1) all mean no data.
func decodeEntries(raw json.RawMessage) []ScoreEntry {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	entries := make([]ScoreEntry, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			continue
		}
		var e ScoreEntry
		if err := json.Unmarshal(item, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}
