// Package cache keeps a series' merged table in memory and rebuilds it
// only when the underlying files change.
package cache

import (
	"sort"

	"github.com/kaufmann-jan/octopost/internal/core/domain"
	"github.com/kaufmann-jan/octopost/internal/core/ports"
	"github.com/kaufmann-jan/octopost/internal/engine/merge"
	"github.com/kaufmann-jan/octopost/pkg/table"
	"go.trai.ch/zerr"
)

// Stats counts cache activity since construction. Useful for verifying
// that repeated reads of an unchanged case do no parsing work.
type Stats struct {
	// Checks is the number of Get calls.
	Checks int
	// Reparses is the number of files parsed, across all rebuilds.
	Reparses int
	// Rebuilds is the number of times the merged table was recomputed.
	Rebuilds int
}

// Delta describes how the on-disk state diverged from a snapshot.
type Delta struct {
	// Changed holds paths that are new or whose fingerprint differs.
	Changed []string
	// Removed holds paths present in the snapshot but gone from disk.
	Removed []string
}

// Empty reports whether the delta requires no rebuild.
func (d Delta) Empty() bool {
	return len(d.Changed) == 0 && len(d.Removed) == 0
}

// Diff compares the current on-disk snapshot against a stored one.
func Diff(current, stored domain.Snapshot) Delta {
	var delta Delta
	for path, print := range current {
		if old, ok := stored[path]; !ok || !old.Equal(print) {
			delta.Changed = append(delta.Changed, path)
		}
	}
	for path := range stored {
		if _, ok := current[path]; !ok {
			delta.Removed = append(delta.Removed, path)
		}
	}
	sort.Strings(delta.Changed)
	sort.Strings(delta.Removed)
	return delta
}

// Cache owns the fragments and merged table of one series. It is not
// safe for concurrent use; callers that share a cache across goroutines
// must serialize access themselves.
type Cache struct {
	locator ports.Locator
	series  domain.SeriesID
	parse   ports.ParseFunc
	post    func(*table.Table) *table.Table

	frags map[string]*domain.Fragment
	snap  domain.Snapshot
	tbl   *table.Table
	stats Stats
}

// New creates an empty cache for one series. The optional post hook runs
// on every freshly merged table before it is stored, for normalizations
// that need the full history (e.g. rebasing positions on the first row,
// or folding component columns into a derived one).
func New(locator ports.Locator, series domain.SeriesID, parse ports.ParseFunc, post func(*table.Table) *table.Table) *Cache {
	return &Cache{
		locator: locator,
		series:  series,
		parse:   parse,
		post:    post,
		frags:   map[string]*domain.Fragment{},
		snap:    domain.Snapshot{},
	}
}

// Get returns the merged table, rebuilding it if any time file changed
// since the last call. Unchanged fragments are reused; only new or
// modified files are re-read and re-parsed.
func (c *Cache) Get() (*table.Table, error) {
	c.stats.Checks++

	files, err := c.locator.Enumerate(c.series)
	if err != nil {
		return nil, err
	}

	current := domain.Snapshot{}
	for _, file := range files {
		current[file.Path] = file.Print
	}

	if c.tbl != nil && Diff(current, c.snap).Empty() {
		return c.tbl, nil
	}

	frags := make(map[string]*domain.Fragment, len(files))
	ordered := make([]*domain.Fragment, 0, len(files))
	for _, file := range files {
		if old, ok := c.frags[file.Path]; ok && old.Print.Equal(file.Print) {
			frags[file.Path] = old
			ordered = append(ordered, old)
			continue
		}

		frag, parseErr := c.parseFile(file)
		if parseErr != nil {
			return nil, parseErr
		}
		c.stats.Reparses++
		frags[file.Path] = frag
		ordered = append(ordered, frag)
		current[file.Path] = frag.Print
	}

	tbl := merge.Fragments(ordered)
	if c.post != nil {
		tbl = c.post(tbl)
	}
	c.stats.Rebuilds++

	c.frags = frags
	c.snap = current
	c.tbl = tbl
	return tbl, nil
}

// Stats returns the activity counters.
func (c *Cache) Stats() Stats {
	return c.stats
}

// parseFile reads and parses one time file. The solver may be appending
// to the file while we read it; a read whose before/after fingerprints
// disagree is retried once against the newer fingerprint before giving
// up with ErrUnstableFile.
func (c *Cache) parseFile(file domain.TimeFile) (*domain.Fragment, error) {
	print := file.Print
	for attempt := 0; attempt < 2; attempt++ {
		data, err := c.locator.Read(file.Path)
		if err != nil {
			return nil, err
		}
		after, err := c.locator.Stat(file.Path)
		if err != nil {
			return nil, err
		}
		if !after.Equal(print) {
			print = after
			continue
		}

		columns, rows, err := c.parse(file.Path, data)
		if err != nil {
			return nil, err
		}
		return &domain.Fragment{
			Label:   file.Label,
			Source:  file.Path,
			Print:   print,
			Columns: columns,
			Rows:    rows,
		}, nil
	}
	return nil, zerr.With(domain.ErrUnstableFile, "path", file.Path)
}
