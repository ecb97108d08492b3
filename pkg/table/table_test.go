package table_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaufmann-jan/octopost/pkg/table"
)

func sample() *table.Table {
	return table.FromRows(
		[]string{"time", "fx", "fy"},
		[][]float64{
			{0.5, 12.25, -3},
			{1, math.NaN(), 250000},
		},
	)
}

func TestAppendRow(t *testing.T) {
	tbl := table.New([]string{"time", "p", "k"})
	tbl.AppendRow([]float64{0.1, 0.5})

	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, 0.5, tbl.Value(0, "p"))
	assert.True(t, math.IsNaN(tbl.Value(0, "k")))
}

func TestColumnAccess(t *testing.T) {
	tbl := sample()

	assert.True(t, tbl.HasColumn("fx"))
	assert.False(t, tbl.HasColumn("fz"))
	assert.Nil(t, tbl.Column("fz"))
	assert.Equal(t, 12.25, tbl.Column("fx")[0])
	assert.True(t, math.IsNaN(tbl.Value(0, "fz")))
}

func TestFilterRange(t *testing.T) {
	tbl := table.FromRows(
		[]string{"time", "p"},
		[][]float64{{0.25, 1}, {0.5, 2}, {5, 3}, {10, 4}, {12, 5}},
	)

	t.Run("bounds are inclusive", func(t *testing.T) {
		got := tbl.FilterRange("time", 0.5, 10)
		assert.Equal(t, []float64{0.5, 5, 10}, got.Column("time"))
	})

	t.Run("open ends", func(t *testing.T) {
		got := tbl.FilterRange("time", math.Inf(-1), math.Inf(1))
		assert.Equal(t, tbl.Len(), got.Len())
	})

	t.Run("receiver is untouched", func(t *testing.T) {
		_ = tbl.FilterRange("time", 5, 5)
		assert.Equal(t, 5, tbl.Len())
	})
}

func TestSortBy(t *testing.T) {
	tbl := table.FromRows(
		[]string{"time", "p"},
		[][]float64{{5, 3}, {1, 1}, {2, 2}},
	)

	sorted := tbl.SortBy("time")
	assert.Equal(t, []float64{1, 2, 5}, sorted.Column("time"))
	assert.Equal(t, []float64{5, 1, 2}, tbl.Column("time"))
}

func TestTransform(t *testing.T) {
	tbl := table.FromRows(
		[]string{"time", "x"},
		[][]float64{{0.1, 100}, {0.2, 101}},
	)

	tbl.Transform("x", func(_ int, v float64) float64 { return v - 100 })
	assert.Equal(t, []float64{0, 1}, tbl.Column("x"))
}

func TestFormatGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sample().Format(&buf))

	g := goldie.New(t)
	g.Assert(t, "format", buf.Bytes())
}

func TestWriteCSVGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sample().WriteCSV(&buf))

	g := goldie.New(t)
	g.Assert(t, "csv", buf.Bytes())
}
