// Package octopost reads the time series that OpenFOAM function
// objects write under a case's postProcessing directory. A Reader
// discovers the per-time-directory data files of one output kind,
// parses them, merges restarts into a single monotonic table and caches
// the result so repeated reads of an unchanged case are free.
package octopost

import (
	"math"
	"path/filepath"

	"github.com/kaufmann-jan/octopost/internal/adapters/grammar"
	"github.com/kaufmann-jan/octopost/internal/adapters/locate"
	"github.com/kaufmann-jan/octopost/internal/core/domain"
	"github.com/kaufmann-jan/octopost/internal/core/ports"
	"github.com/kaufmann-jan/octopost/internal/engine/cache"
	"github.com/kaufmann-jan/octopost/pkg/table"
	"go.trai.ch/zerr"
)

// options collects the per-reader settings before validation.
type options struct {
	caseDir     string
	dir         string
	file        string
	object      string
	tmin        float64
	tmax        float64
	windowSet   bool
	contentSum  bool
	absoluteCoG bool
	log         ports.Logger
}

// Option configures a Reader at construction time.
type Option func(*options)

// WithCaseDir sets the case root directory. Defaults to the current
// working directory.
func WithCaseDir(dir string) Option {
	return func(o *options) { o.caseDir = dir }
}

// WithTimeWindow restricts returned rows to the inclusive range
// [tmin, tmax]. Use math.Inf for an open end.
func WithTimeWindow(tmin, tmax float64) Option {
	return func(o *options) {
		o.tmin, o.tmax = tmin, tmax
		o.windowSet = true
	}
}

// WithDir overrides the kind's subdirectory under postProcessing, for
// function objects registered under a non-default name.
func WithDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithFileName overrides the data file name inside each time directory.
func WithFileName(name string) Option {
	return func(o *options) { o.file = name }
}

// WithObject names the sub-object a series belongs to. Required for
// rigid-body state, where each body writes its own <object>.dat.
func WithObject(object string) Option {
	return func(o *options) { o.object = object }
}

// WithContentFingerprint adds a content hash to file fingerprints.
// Slower, but catches rewrites that preserve size and modification
// time.
func WithContentFingerprint() Option {
	return func(o *options) { o.contentSum = true }
}

// WithAbsoluteCoG keeps rigid-body positions in absolute coordinates
// instead of rebasing them on the first time step.
func WithAbsoluteCoG() Option {
	return func(o *options) { o.absoluteCoG = true }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(log ports.Logger) Option {
	return func(o *options) { o.log = log }
}

// Reader provides access to one output series of one case.
type Reader struct {
	kind       domain.Kind
	series     domain.SeriesID
	cache      *cache.Cache
	tmin, tmax float64
	log        ports.Logger
}

// NewReader creates a reader for the given output kind. Configuration
// problems (unknown kind, inverted time window, missing object name)
// are reported here, not at read time.
func NewReader(kind domain.Kind, opts ...Option) (*Reader, error) {
	spec, err := grammar.Lookup(kind)
	if err != nil {
		return nil, err
	}

	o := options{
		caseDir: ".",
		tmin:    math.Inf(-1),
		tmax:    math.Inf(1),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.windowSet && o.tmin > o.tmax {
		return nil, zerr.With(
			zerr.With(domain.ErrInvalidTimeWindow, "tmin", o.tmin),
			"tmax", o.tmax,
		)
	}

	dir := spec.Dir
	if o.dir != "" {
		dir = o.dir
	}
	file := spec.File
	if o.object != "" {
		file = o.object + ".dat"
	}
	if o.file != "" {
		file = o.file
	}
	if file == "" {
		return nil, zerr.With(domain.ErrMissingObject, "kind", string(kind))
	}

	series := domain.SeriesID{
		CaseDir: filepath.Clean(o.caseDir),
		Kind:    kind,
		Dir:     dir,
		File:    file,
	}

	var post func(*table.Table) *table.Table
	switch {
	case kind == domain.KindRigidBodyState && !o.absoluteCoG:
		post = rebaseCoG
	case kind == domain.KindResiduals:
		post = combineVelocityResiduals
	}

	locator := &locate.Locator{ContentSum: o.contentSum}

	return &Reader{
		kind:   kind,
		series: series,
		cache:  cache.New(locator, series, spec.Parse, post),
		tmin:   o.tmin,
		tmax:   o.tmax,
		log:    o.log,
	}, nil
}

// GetData returns the merged table of the series, restricted to the
// reader's time window. A series that does not exist on disk yields an
// empty table. The reader re-reads only files that changed since the
// previous call.
func (r *Reader) GetData() (*table.Table, error) {
	tbl, err := r.cache.Get()
	if err != nil {
		if r.log != nil {
			r.log.Error(err)
		}
		return nil, err
	}
	return tbl.FilterRange(domain.TimeColumn, r.tmin, r.tmax), nil
}

// Fields returns the data column names of the series, excluding the
// time column.
func (r *Reader) Fields() ([]string, error) {
	tbl, err := r.cache.Get()
	if err != nil {
		return nil, err
	}
	var fields []string
	for _, col := range tbl.Columns() {
		if col != domain.TimeColumn {
			fields = append(fields, col)
		}
	}
	return fields, nil
}

// Kind returns the output kind this reader serves.
func (r *Reader) Kind() domain.Kind {
	return r.kind
}

// Stats returns the reader's cache activity counters.
func (r *Reader) Stats() cache.Stats {
	return r.cache.Stats()
}

// rebaseCoG shifts the centre-of-gravity track so that motion starts at
// the origin; attitude and rate columns stay untouched.
func rebaseCoG(tbl *table.Table) *table.Table {
	if tbl.Len() == 0 {
		return tbl
	}
	for _, col := range []string{"x", "y", "z"} {
		first := tbl.Value(0, col)
		if math.IsNaN(first) {
			continue
		}
		tbl.Transform(col, func(_ int, v float64) float64 { return v - first })
	}
	return tbl
}

// combineVelocityResiduals folds the Ux/Uy/Uz residual components into a
// single U column, (Ux² + Uy² + Uz²)/3, appended after the remaining
// columns. A table missing any component passes through unchanged.
func combineVelocityResiduals(tbl *table.Table) *table.Table {
	for _, col := range []string{"Ux", "Uy", "Uz"} {
		if !tbl.HasColumn(col) {
			return tbl
		}
	}

	var kept []string
	for _, col := range tbl.Columns() {
		if col == "Ux" || col == "Uy" || col == "Uz" {
			continue
		}
		kept = append(kept, col)
	}

	out := table.New(append(kept, "U"))
	for i := 0; i < tbl.Len(); i++ {
		row := make([]float64, 0, len(kept)+1)
		for _, col := range kept {
			row = append(row, tbl.Value(i, col))
		}
		ux := tbl.Value(i, "Ux")
		uy := tbl.Value(i, "Uy")
		uz := tbl.Value(i, "Uz")
		row = append(row, (ux*ux+uy*uy+uz*uz)/3)
		out.AppendRow(row)
	}
	return out
}
