package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryHistory_InitialStateSeedsDefault(t *testing.T) {
	h := NewMemoryHistory()
	assert.Equal(t, 7, h.GetInitialState(7))
	assert.Equal(t, 1, h.Len())

	v, ok := h.Current()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestMemoryHistory_InitialStateRestores(t *testing.T) {
	h := NewMemoryHistory()
	h.Navigate(6)
	assert.Equal(t, 6, h.GetInitialState(10))
}

func TestMemoryHistory_BackAndForward(t *testing.T) {
	h := NewMemoryHistory()
	h.GetInitialState(5)
	h.Navigate(6)
	h.Navigate(7)

	v, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	v, ok = h.Back()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = h.Back()
	assert.False(t, ok)

	v, ok = h.Forward()
	assert.True(t, ok)
	assert.Equal(t, 6, v)
}

func TestMemoryHistory_NavigateDropsForward(t *testing.T) {
	h := NewMemoryHistory()
	h.GetInitialState(5)
	h.Navigate(6)
	h.Navigate(7)
	h.Back()
	h.Back()

	h.Navigate(9)
	assert.Equal(t, 2, h.Len())
	_, ok := h.Forward()
	assert.False(t, ok)
}

func TestMemoryHistory_EmptyCurrent(t *testing.T) {
	h := NewMemoryHistory()
	_, ok := h.Current()
	assert.False(t, ok)
	_, ok = h.Forward()
	assert.False(t, ok)
}
