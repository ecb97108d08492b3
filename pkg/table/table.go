// Package table provides the column-ordered numeric table that readers
// return. One column is always the time column; missing values are NaN.
package table

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Table is an immutable-by-convention numeric table with named, ordered
// columns and row-major storage. Operations that narrow a table return a
// copy; the receiver is never mutated by queries.
type Table struct {
	cols []string
	rows [][]float64
}

// New creates a table with the given column names and no rows.
func New(cols []string) *Table {
	return &Table{cols: append([]string(nil), cols...)}
}

// FromRows creates a table from column names and rows. Rows shorter than
// the column list are padded with NaN.
func FromRows(cols []string, rows [][]float64) *Table {
	t := New(cols)
	for _, row := range rows {
		t.AppendRow(row)
	}
	return t
}

// AppendRow adds a row, padding with NaN up to the column count.
func (t *Table) AppendRow(row []float64) {
	padded := make([]float64, len(t.cols))
	for i := range padded {
		if i < len(row) {
			padded[i] = row[i]
		} else {
			padded[i] = math.NaN()
		}
	}
	t.rows = append(t.rows, padded)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the ordered column names.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	return t.index(name) >= 0
}

// Column returns a copy of the named column's values, or nil if the
// column does not exist.
func (t *Table) Column(name string) []float64 {
	i := t.index(name)
	if i < 0 {
		return nil
	}
	out := make([]float64, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out
}

// Row returns a copy of the i-th row.
func (t *Table) Row(i int) []float64 {
	return append([]float64(nil), t.rows[i]...)
}

// Value returns the value at row i of the named column. NaN if the
// column does not exist.
func (t *Table) Value(i int, name string) float64 {
	c := t.index(name)
	if c < 0 {
		return math.NaN()
	}
	return t.rows[i][c]
}

// FilterRange returns a new table keeping rows whose value in the named
// column lies in [min, max]. Both bounds are inclusive; use -Inf/+Inf
// for open ends.
func (t *Table) FilterRange(name string, min, max float64) *Table {
	c := t.index(name)
	out := New(t.cols)
	if c < 0 {
		return out
	}
	for _, row := range t.rows {
		if row[c] >= min && row[c] <= max {
			out.rows = append(out.rows, append([]float64(nil), row...))
		}
	}
	return out
}

// SortBy returns a new table with rows sorted ascending by the named
// column. The sort is stable.
func (t *Table) SortBy(name string) *Table {
	c := t.index(name)
	out := New(t.cols)
	out.rows = make([][]float64, len(t.rows))
	for i, row := range t.rows {
		out.rows[i] = append([]float64(nil), row...)
	}
	if c < 0 {
		return out
	}
	sort.SliceStable(out.rows, func(i, j int) bool {
		return out.rows[i][c] < out.rows[j][c]
	})
	return out
}

// Transform applies fn in place to every value of the named column.
// It is the only mutating operation and is reserved for post-merge
// normalization before a table is published.
func (t *Table) Transform(name string, fn func(i int, v float64) float64) {
	c := t.index(name)
	if c < 0 {
		return
	}
	for i := range t.rows {
		t.rows[i][c] = fn(i, t.rows[i][c])
	}
}

// WriteCSV writes the table as comma-separated values with a header row.
func (t *Table) WriteCSV(w io.Writer) error {
	if _, err := io.WriteString(w, strings.Join(t.cols, ",")+"\n"); err != nil {
		return err
	}
	for _, row := range t.rows {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = formatValue(v)
		}
		if _, err := io.WriteString(w, strings.Join(fields, ",")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Format writes the table as aligned, human-readable text.
func (t *Table) Format(w io.Writer) error {
	widths := make([]int, len(t.cols))
	cells := make([][]string, len(t.rows))
	for i, name := range t.cols {
		widths[i] = len(name)
	}
	for r, row := range t.rows {
		cells[r] = make([]string, len(row))
		for i, v := range row {
			s := formatValue(v)
			cells[r][i] = s
			if len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
	}
	if err := writeAligned(w, t.cols, widths); err != nil {
		return err
	}
	for _, row := range cells {
		if err := writeAligned(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeAligned(w io.Writer, fields []string, widths []int) error {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%*s", widths[i], f)
	}
	_, err := io.WriteString(w, strings.Join(parts, "  ")+"\n")
	return err
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (t *Table) index(name string) int {
	for i, c := range t.cols {
		if c == name {
			return i
		}
	}
	return -1
}
