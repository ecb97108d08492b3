// Package locate implements time-directory discovery for a case's
// post-processing tree.
package locate

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/kaufmann-jan/octopost/internal/core/domain"
	"github.com/kaufmann-jan/octopost/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Locator = (*Locator)(nil)

// Locator enumerates the time directories of an output series. With
// ContentSum set, fingerprints additionally carry an xxhash64 of the
// file contents, for file systems whose mtime granularity is too coarse
// to catch rapid rewrites.
type Locator struct {
	ContentSum bool
}

// New creates a Locator using size+mtime fingerprints.
func New() *Locator {
	return &Locator{}
}

// Enumerate returns the series' time files ordered numerically by the
// directory label. Absence of the post-processing root or of the kind
// directory is a normal state and yields an empty result. Time
// directories whose data file is missing or empty produce no entry.
func (l *Locator) Enumerate(series domain.SeriesID) ([]domain.TimeFile, error) {
	base := filepath.Join(series.CaseDir, domain.PostProcessingDir, series.Dir)

	dirEntries, err := os.ReadDir(base)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to list time directories"), "dir", base)
	}

	var found []domain.TimeFile
	for _, entry := range dirEntries {
		if !entry.IsDir() {
			continue
		}
		label, parseErr := strconv.ParseFloat(entry.Name(), 64)
		if parseErr != nil {
			continue
		}

		path := filepath.Join(base, entry.Name(), series.File)
		print, statErr := l.Stat(path)
		if statErr != nil || print.Size == 0 {
			continue
		}

		found = append(found, domain.TimeFile{
			Label: label,
			Path:  path,
			Print: print,
		})
	}

	// Numeric order, not lexicographic: "10" sorts after "2".
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Label < found[j].Label
	})

	return found, nil
}

// Read returns the contents of a single data file.
func (l *Locator) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is discovered under the caller's case directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return data, nil
}

// Stat fingerprints a single file.
func (l *Locator) Stat(path string) (domain.Fingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Fingerprint{}, zerr.With(zerr.Wrap(err, "failed to stat data file"), "path", path)
	}

	print := domain.Fingerprint{
		Size:    info.Size(),
		ModTime: info.ModTime().UnixNano(),
	}

	if l.ContentSum {
		sum, sumErr := hashFile(path)
		if sumErr != nil {
			return domain.Fingerprint{}, sumErr
		}
		print.Sum = sum
	}

	return print, nil
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is discovered under the caller's case directory
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open data file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash data file"), "path", path)
	}
	return hasher.Sum64(), nil
}
