package domain

// SeriesOverride redirects one kind to a non-default location, e.g. a
// forces function object writing under forces_hull instead of forces.
type SeriesOverride struct {
	Dir    string
	File   string
	Object string
}

// Config is the resolved run configuration. The zero value is a valid
// configuration: current directory as case root, no time window, cheap
// fingerprints, default locations for every kind.
type Config struct {
	CaseDir    string
	TMin       *float64
	TMax       *float64
	ContentSum bool
	Overrides  map[Kind]SeriesOverride
}
