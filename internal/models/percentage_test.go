package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage_UnmarshalValue(t *testing.T) {
	var p Percentage
	require.NoError(t, json.Unmarshal([]byte("8745"), &p))
	v, ok := p.Value()
	assert.True(t, ok)
	assert.Equal(t, 8745, v)
}

func TestPercentage_UnmarshalSentinel(t *testing.T) {
	for _, in := range []string{"-1", "null", "-5"} {
		t.Run(in, func(t *testing.T) {
			p := PercentageOf(100)
			require.NoError(t, json.Unmarshal([]byte(in), &p))
			assert.False(t, p.Attempted())
		})
	}
}

func TestPercentage_UnmarshalInvalid(t *testing.T) {
	var p Percentage
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &p))
}

func TestPercentage_MarshalKeepsWireFormat(t *testing.T) {
	out, err := json.Marshal(NotAttempted())
	require.NoError(t, err)
	assert.Equal(t, "-1", string(out))

	out, err = json.Marshal(PercentageOf(9000))
	require.NoError(t, err)
	assert.Equal(t, "9000", string(out))
}

func TestPercentage_ZeroAttemptIsNotSentinel(t *testing.T) {
	var p Percentage
	require.NoError(t, json.Unmarshal([]byte("0"), &p))
	assert.True(t, p.Attempted())
}

func TestPercentage_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Percentage
		want int
	}{
		{"both missing", NotAttempted(), NotAttempted(), 0},
		{"missing below value", NotAttempted(), PercentageOf(0), -1},
		{"value above missing", PercentageOf(0), NotAttempted(), 1},
		{"lower", PercentageOf(10), PercentageOf(20), -1},
		{"higher", PercentageOf(20), PercentageOf(10), 1},
		{"equal", PercentageOf(20), PercentageOf(20), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}
