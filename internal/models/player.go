package models

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// InstrumentRecord holds the aggregate skill block and both chart pools for
// one instrument. Skill and level values are scaled by 100, counts are not.
type InstrumentRecord struct {
	Skill        int
	AllSkill     int
	ClassicSkill int

	Cleared   int
	FullCombo int
	Excellent int

	HighestClear     int
	HighestFullCombo int
	HighestExcellent int

	Exist []ScoreEntry
	New   []ScoreEntry
}

// PlayerRecord is one player's profile for a single game version.
type PlayerRecord struct {
	Name  string
	ExtID int
	Title string
	Plays int

	Guitar InstrumentRecord
	Drum   InstrumentRecord
}

func (p *PlayerRecord) Instrument(i Instrument) *InstrumentRecord {
	switch i {
	case Guitar:
		return &p.Guitar
	case Drum:
		return &p.Drum
	default:
		return nil
	}
}

// FormatExtID renders the card id the way the arcade shows it, 1234-5678.
func FormatExtID(id int) string {
	return fmt.Sprintf("%04d-%04d", id/10000, id%10000)
}

func (r *InstrumentRecord) fields(prefix string) map[string]*int {
	return map[string]*int{
		prefix + "_skills":             &r.Skill,
		prefix + "_all_skills":         &r.AllSkill,
		prefix + "_classic_all_skills": &r.ClassicSkill,
		prefix + "_clear_music_num":    &r.Cleared,
		prefix + "_full_music_num":     &r.FullCombo,
		prefix + "_exce_music_num":     &r.Excellent,
		prefix + "_clear_diff":         &r.HighestClear,
		prefix + "_full_diff":          &r.HighestFullCombo,
		prefix + "_exce_diff":          &r.HighestExcellent,
	}
}

// UnmarshalJSON reads the flat profile layout ("gf_skills", "dm_exist", ...).
// Fields with the wrong type are left at zero.
func (p *PlayerRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode player record: %w", err)
	}

	*p = PlayerRecord{}
	_ = json.Unmarshal(raw["name"], &p.Name)
	_ = json.Unmarshal(raw["extid"], &p.ExtID)
	_ = json.Unmarshal(raw["title"], &p.Title)
	_ = json.Unmarshal(raw["plays"], &p.Plays)

	for _, i := range Instruments {
		rec := p.Instrument(i)
		prefix := string(i)
		for key, dst := range rec.fields(prefix) {
			if v, ok := raw[key]; ok {
				_ = json.Unmarshal(v, dst)
			}
		}
		rec.Exist = decodeEntries(raw[prefix+"_exist"])
		rec.New = decodeEntries(raw[prefix+"_new"])
	}
	return nil
}

func (p PlayerRecord) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"name":  p.Name,
		"extid": p.ExtID,
		"title": p.Title,
		"plays": p.Plays,
	}
	for _, i := range Instruments {
		rec := p.Instrument(i)
		prefix := string(i)
		for key, v := range rec.fields(prefix) {
			out[key] = *v
		}
		out[prefix+"_exist"] = nonNilEntries(rec.Exist)
		out[prefix+"_new"] = nonNilEntries(rec.New)
	}
	return json.Marshal(out)
}

func nonNilEntries(entries []ScoreEntry) []ScoreEntry {
	if entries == nil {
		return []ScoreEntry{}
	}
	return entries
}
