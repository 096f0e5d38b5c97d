package skills

import (
	"skilld/internal/models"
	"strconv"
)

// NotAttemptedMark replaces the percentage of a chart that was never played.
const NotAttemptedMark = "-"

// FormatScaled renders a value stored multiplied by 100 with two decimals,
// 12345 becomes "123.45".
func FormatScaled(v int) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	frac := strconv.Itoa(v % 100)
	if len(frac) < 2 {
		frac = "0" + frac
	}
	return sign + strconv.Itoa(v/100) + "." + frac
}

func FormatPercent(p models.Percentage) string {
	v, ok := p.Value()
	if !ok {
		return NotAttemptedMark
	}
	return FormatScaled(v) + "%"
}

func formatCount(v int) string {
	return strconv.Itoa(v)
}
