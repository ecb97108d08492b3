package grammar

import "github.com/kaufmann-jan/octopost/internal/core/domain"

// layoutGrammar parses files whose column names are fixed by convention
// rather than written to the header. The flattened scalar count of the
// first data row selects the layout; every following row must match it.
func layoutGrammar(source string, data []byte, layouts map[int][]string) ([]string, [][]float64, error) {
	_, rows := splitContent(data)

	var (
		columns []string
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
			names, ok := layouts[len(tokens)]
			if !ok {
				return nil, nil, rowError(domain.ErrMalformedRow, source, ln.num)
			}
			count = len(tokens)
			columns = names
		} else if len(tokens) != count {
			return nil, nil, rowError(domain.ErrMalformedRow, source, ln.num)
		}

		row, err := parseScalars(source, ln, tokens)
		if err != nil {
			return nil, nil, err
		}
		values = append(values, row)
	}

	return columns, values, nil
}
