package domain

// Fragment is the parsed contents of exactly one time directory's data
// file for one series. Immutable once created; discarded and recreated
// when its fingerprint no longer matches the source file.
type Fragment struct {
	Label   float64
	Source  string
	Print   Fingerprint
	Columns []string
	Rows    [][]float64
}
