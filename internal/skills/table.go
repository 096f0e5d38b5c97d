package skills

import (
	"net/url"
	"skilld/internal/models"
	"slices"
	"strings"
)

type Column string

const (
	ColumnName    Column = "name"
	ColumnChart   Column = "chart"
	ColumnLevel   Column = "level"
	ColumnSkill   Column = "skill"
	ColumnPercent Column = "percent"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

func (d Direction) flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

const (
	PoolExist = "exist"
	PoolNew   = "new"

	sortParamPrefix = "sort."
	dirParamPrefix  = "dir."
)

// TableID names the score table of one instrument and chart pool, "gf-exist".
func TableID(i models.Instrument, pool string) string {
	return string(i) + "-" + pool
}

type columnDef struct {
	column     Column
	label      string
	defaultDir Direction
	compare    func(a, b models.ScoreEntry) int
	cell       func(e models.ScoreEntry) string
}

var columns = []columnDef{
	{
		column:     ColumnName,
		label:      "Song Name",
		defaultDir: Ascending,
		compare:    func(a, b models.ScoreEntry) int { return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) },
		cell:       func(e models.ScoreEntry) string { return e.Name },
	},
	{
		column:     ColumnChart,
		label:      "Difficulty",
		defaultDir: Ascending,
		compare:    func(a, b models.ScoreEntry) int { return strings.Compare(a.Chart, b.Chart) },
		cell:       func(e models.ScoreEntry) string { return e.Chart },
	},
	{
		column:     ColumnLevel,
		label:      "Level",
		defaultDir: Descending,
		compare:    func(a, b models.ScoreEntry) int { return a.Level - b.Level },
		cell:       func(e models.ScoreEntry) string { return FormatScaled(e.Level) },
	},
	{
		column:     ColumnSkill,
		label:      "Skill Points",
		defaultDir: Descending,
		compare:    func(a, b models.ScoreEntry) int { return a.Skill - b.Skill },
		cell:       func(e models.ScoreEntry) string { return FormatScaled(e.Skill) },
	},
	{
		column:     ColumnPercent,
		label:      "Percentage",
		defaultDir: Descending,
		compare:    func(a, b models.ScoreEntry) int { return a.Percent.Compare(b.Percent) },
		cell:       func(e models.ScoreEntry) string { return FormatPercent(e.Percent) },
	},
}

func lookupColumn(c Column) (columnDef, bool) {
	for _, def := range columns {
		if def.column == c {
			return def, true
		}
	}
	return columnDef{}, false
}

// Sort is the ordering of a single table.
type Sort struct {
	Column    Column    `json:"column"`
	Direction Direction `json:"direction"`
}

// DefaultSort orders by skill points, highest first.
func DefaultSort() Sort {
	return Sort{Column: ColumnSkill, Direction: Descending}
}

// Toggle returns the sort after clicking the header of c. The active column
// flips direction, any other column starts at its own default direction.
func (s Sort) Toggle(c Column) Sort {
	if s.Column == c {
		return Sort{Column: c, Direction: s.Direction.flip()}
	}
	def, ok := lookupColumn(c)
	if !ok {
		return s
	}
	return Sort{Column: c, Direction: def.defaultDir}
}

// SortState holds the per table sort, keyed by TableID. Tables without an
// entry use DefaultSort.
type SortState map[string]Sort

func (s SortState) For(table string) Sort {
	if sort, ok := s[table]; ok {
		return sort
	}
	return DefaultSort()
}

// With returns a copy of s where table uses sort.
func (s SortState) With(table string, sort Sort) SortState {
	out := make(SortState, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[table] = sort
	return out
}

// Key is a stable string form of the state, used for cache keys.
func (s SortState) Key() string {
	return s.Values().Encode()
}

// Values encodes the state as sort.<table>=<column>&dir.<table>=<direction>.
// Tables on the default sort are omitted.
func (s SortState) Values() url.Values {
	q := url.Values{}
	for table, sort := range s {
		if sort == DefaultSort() {
			continue
		}
		q.Set(sortParamPrefix+table, string(sort.Column))
		q.Set(dirParamPrefix+table, string(sort.Direction))
	}
	return q
}

// ParseSortState reads the sort parameters from a query. Unknown columns are
// ignored; a known column without a valid direction uses its default one.
func ParseSortState(q url.Values) SortState {
	state := SortState{}
	for key, vals := range q {
		table, ok := strings.CutPrefix(key, sortParamPrefix)
		if !ok || table == "" || len(vals) == 0 {
			continue
		}
		def, ok := lookupColumn(Column(vals[0]))
		if !ok {
			continue
		}
		dir := Direction(q.Get(dirParamPrefix + table))
		if dir != Ascending && dir != Descending {
			dir = def.defaultDir
		}
		state[table] = Sort{Column: def.column, Direction: dir}
	}
	return state
}

// SortEntries returns a sorted copy of entries. Equal keys keep their
// original order in either direction.
func SortEntries(entries []models.ScoreEntry, s Sort) []models.ScoreEntry {
	out := slices.Clone(entries)
	def, ok := lookupColumn(s.Column)
	if !ok {
		def, _ = lookupColumn(DefaultSort().Column)
		s = DefaultSort()
	}
	slices.SortStableFunc(out, func(a, b models.ScoreEntry) int {
		if s.Direction == Descending {
			return def.compare(b, a)
		}
		return def.compare(a, b)
	})
	return out
}
