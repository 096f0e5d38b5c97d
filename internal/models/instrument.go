package models

type Instrument string

const (
	Guitar Instrument = "gf"
	Drum   Instrument = "dm"
)

// Instruments lists every instrument in display order.
var Instruments = []Instrument{Guitar, Drum}

func (i Instrument) Name() string {
	switch i {
	case Guitar:
		return "GuitarFreaks"
	case Drum:
		return "DrumMania"
	default:
		return string(i)
	}
}
