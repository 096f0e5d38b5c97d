// Package bootstrap seeds the importer database by running the external
// read importer once per (series, version) target, strictly in order.
package bootstrap

// Target is one importer invocation: read --series Series --version Version.
type Target struct {
	Series  string `toml:"series" yaml:"series"`
	Version string `toml:"version" yaml:"version"`
}

func (t Target) String() string {
	return t.Series + " " + t.Version
}

// Args returns the importer flags selecting this target.
func (t Target) Args() []string {
	return []string{"--series", t.Series, "--version", t.Version}
}

func series(name string, versions ...string) []Target {
	out := make([]Target, 0, len(versions))
	for _, v := range versions {
		out = append(out, Target{Series: name, Version: v})
	}
	return out
}

// DefaultTargets is the seeding order used when no targets file is given.
func DefaultTargets() []Target {
	var targets []Target
	for _, group := range [][]Target{
		series("pnm", "19", "20", "21", "22", "23", "24", "25", "26"),
		series("jubeat", "saucer", "saucer-fulfill", "prop", "qubell", "clan", "festo"),
		series("iidx", "20", "21", "22", "23", "24", "25", "26"),
		series("ddr", "12", "13", "14", "15", "16"),
		series("sdvx", "1", "2", "3", "4"),
		series("museca", "1", "1+1/2"),
		series("reflec", "1", "2", "3", "4", "5", "6"),
		series("danevo", "1"),
		series("gitadora", "5", "6", "7", "8", "9", "10"),
	} {
		targets = append(targets, group...)
	}
	return targets
}
