package ports

import "github.com/kaufmann-jan/octopost/internal/core/domain"

// Locator discovers the time-directory data files of one output series.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Enumerate returns the series' time files ordered numerically by
	// directory label. A missing post-processing root or kind directory
	// yields an empty slice, not an error. Time directories whose data
	// file is missing or empty are skipped.
	Enumerate(series domain.SeriesID) ([]domain.TimeFile, error)

	// Read returns the contents of a single data file.
	Read(path string) ([]byte, error)

	// Stat re-fingerprints a single file. Used to detect a file being
	// rewritten between enumeration and read.
	Stat(path string) (domain.Fingerprint, error)
}
