package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownKind is returned when a reader is constructed for an output kind that is not registered.
	ErrUnknownKind = zerr.New("unknown output kind")

	// ErrInvalidTimeWindow is returned when a reader is constructed with tmin greater than tmax.
	ErrInvalidTimeWindow = zerr.New("invalid time window, tmin must not exceed tmax")

	// ErrMalformedRow is returned when a data line does not match the expected column grammar.
	ErrMalformedRow = zerr.New("malformed data row")

	// ErrGroupDelimiter is returned when the vector-group delimiters of a data line do not balance.
	ErrGroupDelimiter = zerr.New("unbalanced vector group delimiters")

	// ErrMissingHeader is returned when a data file carries no comment header to derive column names from.
	ErrMissingHeader = zerr.New("missing column header")

	// ErrUnstableFile is returned when a source file keeps changing between
	// fingerprinting and reading, so no consistent content could be obtained.
	ErrUnstableFile = zerr.New("file changed during read")

	// ErrFileReadFailed is returned when a located data file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read data file")

	// ErrMissingObject is returned when a rigid-body reader is constructed without an object name.
	ErrMissingObject = zerr.New("missing rigid body object name")

	// ErrConfigReadFailed is returned when the defaults file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read defaults file")

	// ErrConfigParseFailed is returned when the defaults file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse defaults file")

	// ErrNoKindsSpecified is returned when a query names no output kinds.
	ErrNoKindsSpecified = zerr.New("no output kinds specified")
)
