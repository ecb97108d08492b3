package ports

// ParseFunc is the shared contract of the format grammar family: a pure
// function from file contents to column names and numeric rows. The
// source path is carried only for error reporting. Identical bytes must
// yield identical columns and rows.
type ParseFunc func(source string, data []byte) (columns []string, rows [][]float64, err error)
