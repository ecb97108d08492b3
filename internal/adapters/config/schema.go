package config

// CaseFile represents the structure of the octopost.yaml configuration file.
type CaseFile struct {
	Case               string               `yaml:"case"`
	Window             WindowDTO            `yaml:"window"`
	ContentFingerprint bool                 `yaml:"contentFingerprint"`
	Series             map[string]SeriesDTO `yaml:"series"`
}

// WindowDTO restricts reads to an inclusive time range. Either bound
// may be omitted to leave that end open.
type WindowDTO struct {
	TMin *float64 `yaml:"tmin"`
	TMax *float64 `yaml:"tmax"`
}

// SeriesDTO overrides where one output kind is read from.
type SeriesDTO struct {
	Dir    string `yaml:"dir"`
	File   string `yaml:"file"`
	Object string `yaml:"object"`
}
