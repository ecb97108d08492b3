package grammar

import (
	"fmt"

	"github.com/kaufmann-jan/octopost/internal/core/domain"
)

// parseWaveBuoy parses a wave gauge height file. Gauges are written as
// (position, height) value pairs after the time token; only the heights
// are kept, named buoy0..buoyN in gauge order.
func parseWaveBuoy(source string, data []byte) ([]string, [][]float64, error) {
	_, rows := splitContent(data)

	var (
		columns []string
		picks   []int
		count   = -1
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

		tokens := flatten(fields)
		if count < 0 {
			// One time token plus one (position, height) pair per gauge.
			if len(tokens) < 3 || len(tokens)%2 == 0 {
				return nil, nil, rowError(domain.ErrMalformedRow, source, ln.num)
			}
			count = len(tokens)
			columns = []string{domain.TimeColumn}
			picks = []int{0}
			for gauge, i := 0, 2; i < count; gauge, i = gauge+1, i+2 {
				columns = append(columns, fmt.Sprintf("buoy%d", gauge))
				picks = append(picks, i)
			}
		} else if len(tokens) != count {
			return nil, nil, rowError(domain.ErrMalformedRow, source, ln.num)
		}

		all, err := parseScalars(source, ln, tokens)
		if err != nil {
			return nil, nil, err
		}
		row := make([]float64, len(picks))
		for i, p := range picks {
			row[i] = all[p]
		}
		values = append(values, row)
	}

	return columns, values, nil
}
