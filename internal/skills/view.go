// Package skills turns a player snapshot into the per version skills
// layout: aggregate blocks and sortable score tables for each instrument.
package skills

import (
	"fmt"
	"skilld/internal/models"
	"skilld/internal/navigation"
	"strings"
)

const (
	UnsupportedNotice = "This version does not support skills."
	noProfileNotice   = "You have no profile for %s!"
)

var poolTitles = map[string]string{
	PoolExist: "Existing Charts",
	PoolNew:   "New Charts",
}

// View holds the version selection for one player. It never modifies the
// snapshot it reads from.
type View struct {
	playerID string
	snapshot *models.Snapshot
	history  navigation.History
	link     *navigation.Link
	selected int
}

func NewView(playerID string, snapshot *models.Snapshot, history navigation.History, link *navigation.Link) *View {
	return &View{
		playerID: playerID,
		snapshot: snapshot,
		history:  history,
		link:     link,
		selected: history.GetInitialState(snapshot.DefaultVersion()),
	}
}

func (v *View) Selected() int {
	return v.selected
}

// Select changes the selected version and records it in the history.
// Selecting the current version does nothing and reports false.
func (v *View) Select(version int) bool {
	if version == v.selected {
		return false
	}
	v.selected = version
	v.history.Navigate(version)
	return true
}

func (v *View) Render(sorts SortState) Page {
	catalog := v.snapshot.Catalog()
	page := Page{
		PlayerID:     v.playerID,
		Selected:     v.selected,
		SelectedName: catalog.DisplayName(v.selected),
	}

	player, ok := v.snapshot.Player(v.selected)
	if !ok {
		page.Picker = v.picker()
		page.Notice = fmt.Sprintf(noProfileNotice, page.SelectedName)
		return page
	}

	page.PlayerName = player.Name
	page.ProfileLink = v.link.Get(navigation.PageProfile, []string{v.playerID}, v.selected)
	page.Tabs = v.tabs()
	for _, i := range models.Instruments {
		page.Sections = append(page.Sections, v.section(i, player, sorts))
	}
	return page
}

func (v *View) picker() *VersionPicker {
	entries := v.snapshot.Catalog().Entries()
	picker := &VersionPicker{Options: make([]VersionOption, 0, len(entries))}
	for _, e := range entries {
		picker.Options = append(picker.Options, VersionOption{
			Version:  e.Version,
			Name:     e.Name,
			Href:     v.skillsLink(e.Version, nil),
			Selected: e.Version == v.selected,
		})
	}
	return picker
}

// tabs follow catalog order. Versions missing from the catalog go last.
func (v *View) tabs() []Tab {
	catalog := v.snapshot.Catalog()
	have := map[int]bool{}
	for _, ver := range v.snapshot.Versions() {
		have[ver] = true
	}

	tabs := make([]Tab, 0, len(have))
	add := func(ver int) {
		tabs = append(tabs, Tab{
			Version: ver,
			Name:    catalog.DisplayName(ver),
			Href:    v.skillsLink(ver, nil),
			Active:  ver == v.selected,
		})
		delete(have, ver)
	}
	for _, e := range catalog.Entries() {
		if have[e.Version] {
			add(e.Version)
		}
	}
	for _, ver := range v.snapshot.Versions() {
		if have[ver] {
			add(ver)
		}
	}
	return tabs
}

func (v *View) section(i models.Instrument, player *models.PlayerRecord, sorts SortState) InstrumentSection {
	section := InstrumentSection{Instrument: string(i), Name: i.Name()}
	if v.selected < models.MinimumSkillsVersion {
		section.Notice = UnsupportedNotice
		return section
	}

	rec := player.Instrument(i)
	section.Supported = true
	section.Stats = []LabelledValue{
		{Label: "Skill", Value: FormatScaled(rec.Skill)},
		{Label: "All Songs Skill", Value: FormatScaled(rec.AllSkill)},
		{Label: "Classic All Songs Skill", Value: FormatScaled(rec.ClassicSkill)},
		{Label: "Clear Songs", Value: formatCount(rec.Cleared)},
		{Label: "Full Combo Songs", Value: formatCount(rec.FullCombo)},
		{Label: "Excellent Songs", Value: formatCount(rec.Excellent)},
		{Label: "Highest Clear Level", Value: FormatScaled(rec.HighestClear)},
		{Label: "Highest Full Combo Level", Value: FormatScaled(rec.HighestFullCombo)},
		{Label: "Highest Excellent Level", Value: FormatScaled(rec.HighestExcellent)},
	}
	for _, pool := range []struct {
		name    string
		entries []models.ScoreEntry
	}{
		{PoolExist, rec.Exist},
		{PoolNew, rec.New},
	} {
		if len(pool.entries) == 0 {
			continue
		}
		section.Tables = append(section.Tables, v.table(TableID(i, pool.name), poolTitles[pool.name], pool.entries, sorts))
	}
	return section
}

func (v *View) table(id, title string, entries []models.ScoreEntry, sorts SortState) TableView {
	current := sorts.For(id)
	table := TableView{
		ID:      id,
		Title:   title,
		Sort:    current,
		Headers: make([]ColumnHeader, 0, len(columns)),
	}
	for _, c := range columns {
		h := ColumnHeader{
			Column: c.column,
			Label:  c.label,
			Href:   v.skillsLink(v.selected, sorts.With(id, current.Toggle(c.column))) + "#" + id,
			Active: c.column == current.Column,
		}
		if h.Active {
			h.Direction = current.Direction
		}
		table.Headers = append(table.Headers, h)
	}

	sorted := SortEntries(entries, current)
	table.Rows = make([]Row, 0, len(sorted))
	for _, e := range sorted {
		cells := make([]string, 0, len(columns))
		for _, c := range columns {
			cells = append(cells, c.cell(e))
		}
		table.Rows = append(table.Rows, Row{SongID: e.SongID, Cells: cells})
	}
	return table
}

func (v *View) skillsLink(version int, sorts SortState) string {
	href := v.link.Get(navigation.PageSkills, []string{v.playerID}, version)
	q := sorts.Values()
	if len(q) == 0 {
		return href
	}
	sep := "?"
	if strings.Contains(href, "?") {
		sep = "&"
	}
	return href + sep + q.Encode()
}

