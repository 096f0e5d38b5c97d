// Package navigation keeps the selected game version in sync with a
// history of visited versions and builds links between pages.
package navigation

// History records version selections so back/forward and direct links land
// on the same version.
type History interface {
	// GetInitialState returns the version restored from history, or def
	// when nothing was recorded yet.
	GetInitialState(def int) int
	// Navigate records a new selection.
	Navigate(version int)
}

// MemoryHistory is a browser-like stack of visited versions.
type MemoryHistory struct {
	entries []int
	cursor  int
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{cursor: -1}
}

func (h *MemoryHistory) GetInitialState(def int) int {
	if v, ok := h.Current(); ok {
		return v
	}
	h.entries = []int{def}
	h.cursor = 0
	return def
}

// Navigate pushes version and discards any forward entries.
func (h *MemoryHistory) Navigate(version int) {
	h.entries = append(h.entries[:h.cursor+1], version)
	h.cursor = len(h.entries) - 1
}

func (h *MemoryHistory) Current() (int, bool) {
	if h.cursor < 0 {
		return 0, false
	}
	return h.entries[h.cursor], true
}

func (h *MemoryHistory) Back() (int, bool) {
	if h.cursor <= 0 {
		return 0, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

func (h *MemoryHistory) Forward() (int, bool) {
	if h.cursor < 0 || h.cursor >= len(h.entries)-1 {
		return 0, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

func (h *MemoryHistory) Len() int {
	return len(h.entries)
}
