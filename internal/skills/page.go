package skills

// Page is the rendered skills layout. Exactly one of Picker or Sections is
// populated: Picker when the player has no profile for the selected version.
type Page struct {
	PlayerID     string `json:"player_id"`
	PlayerName   string `json:"player_name,omitempty"`
	Selected     int    `json:"selected"`
	SelectedName string `json:"selected_name"`

	Notice string         `json:"notice,omitempty"`
	Picker *VersionPicker `json:"picker,omitempty"`

	ProfileLink string              `json:"profile_link,omitempty"`
	Tabs        []Tab               `json:"tabs,omitempty"`
	Sections    []InstrumentSection `json:"sections,omitempty"`
}

func (p Page) HasProfile() bool {
	return p.Picker == nil
}

type VersionOption struct {
	Version  int    `json:"version"`
	Name     string `json:"name"`
	Href     string `json:"href"`
	Selected bool   `json:"selected"`
}

type VersionPicker struct {
	Options []VersionOption `json:"options"`
}

type Tab struct {
	Version int    `json:"version"`
	Name    string `json:"name"`
	Href    string `json:"href"`
	Active  bool   `json:"active"`
}

// InstrumentSection is one instrument's block. Unsupported sections carry
// only the notice.
type InstrumentSection struct {
	Instrument string          `json:"instrument"`
	Name       string          `json:"name"`
	Supported  bool            `json:"supported"`
	Notice     string          `json:"notice,omitempty"`
	Stats      []LabelledValue `json:"stats,omitempty"`
	Tables     []TableView     `json:"tables,omitempty"`
}

type LabelledValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type TableView struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Sort    Sort           `json:"sort"`
	Headers []ColumnHeader `json:"headers"`
	Rows    []Row          `json:"rows"`
}

// ColumnHeader links to the page with this column's sort toggled.
type ColumnHeader struct {
	Column    Column    `json:"column"`
	Label     string    `json:"label"`
	Href      string    `json:"href"`
	Active    bool      `json:"active"`
	Direction Direction `json:"direction,omitempty"`
}

// Row cells are formatted for display, in column order.
type Row struct {
	SongID int      `json:"song_id"`
	Cells  []string `json:"cells"`
}
