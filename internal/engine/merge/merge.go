// Package merge combines per-time-directory fragments of one series
// into a single monotonic table.
package merge

import (
	"math"
	"sort"

	"github.com/kaufmann-jan/octopost/internal/core/domain"
	"github.com/kaufmann-jan/octopost/pkg/table"
)

// Fragments merges fragments in the given order into one table. The
// order is significant: when a restart re-writes time steps that an
// earlier directory already covers, the later fragment's row wins.
// Columns are the union of all fragment columns in first-seen order
// with the time column first; rows missing a column are padded with
// NaN. The result is sorted by ascending time.
func Fragments(frags []*domain.Fragment) *table.Table {
	columns := []string{domain.TimeColumn}
	index := map[string]int{domain.TimeColumn: 0}
	for _, frag := range frags {
		for _, col := range frag.Columns {
			if _, ok := index[col]; !ok {
				index[col] = len(columns)
				columns = append(columns, col)
			}
		}
	}

	byTime := map[float64][]float64{}
	var times []float64
	for _, frag := range frags {
		for _, src := range frag.Rows {
			if len(src) == 0 || len(src) != len(frag.Columns) {
				continue
			}
			t := src[0]
			// A NaN time cannot key the dedup map or sort; drop the row.
			if math.IsNaN(t) {
				continue
			}
			row := make([]float64, len(columns))
			for i := range row {
				row[i] = math.NaN()
			}
			for i, col := range frag.Columns {
				row[index[col]] = src[i]
			}
			if _, ok := byTime[t]; !ok {
				times = append(times, t)
			}
			byTime[t] = row
		}
	}

	sort.Float64s(times)
	rows := make([][]float64, len(times))
	for i, t := range times {
		rows[i] = byTime[t]
	}

	return table.FromRows(columns, rows)
}
