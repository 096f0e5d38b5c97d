package navigation

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	PageProfile = "profile"
	PageSkills  = "skills"

	VersionParam = "version"
)

var pageRoutes = map[string]string{
	PageProfile: "/players/{0}",
	PageSkills:  "/players/{0}/skills",
}

// Link builds page urls below a fixed prefix.
type Link struct {
	prefix string
}

func NewLink(prefix string) *Link {
	return &Link{prefix: strings.TrimSuffix(prefix, "/")}
}

// Get fills the {n} placeholders of page with params and appends the
// version query when version is positive. Unknown pages resolve to the root.
func (l *Link) Get(page string, params []string, version int) string {
	route, ok := pageRoutes[page]
	if !ok {
		return l.prefix + "/"
	}
	for i, p := range params {
		route = strings.ReplaceAll(route, "{"+strconv.Itoa(i)+"}", url.PathEscape(p))
	}
	if version > 0 {
		route += "?" + VersionParam + "=" + strconv.Itoa(version)
	}
	return l.prefix + route
}
