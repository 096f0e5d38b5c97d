package models

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"
)

// notAttemptedWire is how the importer marks a chart that was never played.
const notAttemptedWire = -1

// Percentage is a completion rate scaled by 100 (8745 means 87.45%).
// The zero value is a chart that was not attempted.
type Percentage struct {
	value     int
	attempted bool
}

func NotAttempted() Percentage {
	return Percentage{}
}

func PercentageOf(scaled int) Percentage {
	return Percentage{value: scaled, attempted: true}
}

func (p Percentage) Value() (int, bool) {
	return p.value, p.attempted
}

func (p Percentage) Attempted() bool {
	return p.attempted
}

// Compare orders not attempted charts below any attempted one.
func (p Percentage) Compare(o Percentage) int {
	switch {
	case !p.attempted && !o.attempted:
		return 0
	case !p.attempted:
		return -1
	case !o.attempted:
		return 1
	case p.value < o.value:
		return -1
	case p.value > o.value:
		return 1
	default:
		return 0
	}
}

func (p Percentage) MarshalJSON() ([]byte, error) {
	if !p.attempted {
		return []byte(strconv.Itoa(notAttemptedWire)), nil
	}
	return []byte(strconv.Itoa(p.value)), nil
}

// UnmarshalJSON treats null and any negative number as not attempted.
func (p *Percentage) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = NotAttempted()
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < 0 {
		*p = NotAttempted()
		return nil
	}
	*p = PercentageOf(v)
	return nil
}
