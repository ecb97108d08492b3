package grammar

import (
	"fmt"
	"strings"

	"github.com/kaufmann-jan/octopost/internal/core/domain"
	"go.trai.ch/zerr"
)

// axisSuffixes name the components of a three-component vector group.
var axisSuffixes = [3]string{"_x", "_y", "_z"}

// headerGrammar parses a file whose column names come from the last
// comment line before the data. Vector-valued columns expand into one
// scalar sub-column per component: a base name "force" over a
// three-component group becomes force_x, force_y, force_z.
func headerGrammar(source string, data []byte) ([]string, [][]float64, error) {
	header, rows := splitContent(data)
	if header == "" {
		return nil, nil, zerr.With(domain.ErrMissingHeader, "file", source)
	}

	names := strings.Fields(header)
	names[0] = domain.TimeColumn

	var (
		columns []string
		widths  []int
		values  [][]float64
	)

	for _, ln := range rows {
		fields, err := splitFields(source, ln)
		if err != nil {
			return nil, nil, err
		}
		if onlyMissing(fields) {
			continue
		}
		if len(fields) != len(names) {
			return nil, nil, rowError(domain.ErrMalformedRow, source, ln.num)
		}

		if widths == nil {
			widths = fieldWidths(fields)
			columns = expandNames(names, widths)
		} else if !sameShape(fields, widths) {
			return nil, nil, rowError(domain.ErrMalformedRow, source, ln.num)
		}

		row, err := parseScalars(source, ln, flatten(fields))
		if err != nil {
			return nil, nil, err
		}
		values = append(values, row)
	}

	if columns == nil {
		// Only header or missing-marker rows. The column set is still
		// derivable, assuming plain scalar columns.
		columns = expandNames(names, nil)
	}

	return columns, values, nil
}

// expandNames derives the scalar column names for per-field base names
// and observed field widths. A nil widths slice means all-scalar.
func expandNames(names []string, widths []int) []string {
	var out []string
	for i, name := range names {
		w := 1
		if widths != nil {
			w = widths[i]
		}
		switch {
		case w == 1:
			out = append(out, name)
		case w == len(axisSuffixes):
			for _, suffix := range axisSuffixes {
				out = append(out, name+suffix)
			}
		default:
			for c := 0; c < w; c++ {
				out = append(out, fmt.Sprintf("%s_%d", name, c))
			}
		}
	}
	return out
}

func fieldWidths(fields []field) []int {
	widths := make([]int, len(fields))
	for i, f := range fields {
		widths[i] = f.width()
	}
	return widths
}

func sameShape(fields []field, widths []int) bool {
	if len(fields) != len(widths) {
		return false
	}
	for i, f := range fields {
		if f.width() != widths[i] {
			return false
		}
	}
	return true
}

func parseScalars(source string, ln line, tokens []string) ([]float64, error) {
	row := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := parseValue(source, ln, tok)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}
