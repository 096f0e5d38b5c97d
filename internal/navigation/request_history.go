package navigation

import (
	"net/http"
	"net/url"

	"github.com/spf13/cast"
)

// RequestHistory reads the selected version from the request url. A
// Navigate call does not change the request, it records the url the
// client should be sent to so the selection lands in the browser history.
type RequestHistory struct {
	query    url.Values
	link     *Link
	player   string
	location string
}

// NewRequestHistory tracks the skills page of player. Recorded locations
// are built with link so they keep its prefix.
func NewRequestHistory(r *http.Request, link *Link, player string) *RequestHistory {
	return &RequestHistory{
		query:  r.URL.Query(),
		link:   link,
		player: player,
	}
}

func (h *RequestHistory) GetInitialState(def int) int {
	return parseVersion(h.query.Get(VersionParam), def)
}

func (h *RequestHistory) Navigate(version int) {
	h.location = h.link.Get(PageSkills, []string{h.player}, version)
}

// Location is the redirect target recorded by the last Navigate call.
func (h *RequestHistory) Location() (string, bool) {
	return h.location, h.location != ""
}

func parseVersion(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := cast.ToIntE(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// ParseVersion reads a positive version number, returning ok=false otherwise.
func ParseVersion(raw string) (int, bool) {
	v := parseVersion(raw, 0)
	return v, v > 0
}
