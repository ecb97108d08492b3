package grammar

import "github.com/kaufmann-jan/octopost/internal/core/domain"

// Field min/max rows repeat per sampled field:
//
//	time field min (x y z) processor max (x y z) processor
//
// or, when location reporting is disabled, just time field min max. The
// fragment is pivoted wide: one row per time with min_<field> and
// max_<field> columns, locations and processor ranks dropped.
func parseFieldMinMax(source string, data []byte) ([]string, [][]float64, error) {
	_, rows := splitContent(data)

	type sample struct {
		min, max float64
	}

	var (
		times   []float64
		byTime  = map[float64]map[string]sample{}
		order []string
		seen    = map[string]bool{}
		count   = -1
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
			if len(tokens) != 12 && len(tokens) != 4 {
				return nil, nil, rowError(domain.ErrMalformedRow, source, ln.num)
			}
			count = len(tokens)
		} else if len(tokens) != count {
			return nil, nil, rowError(domain.ErrMalformedRow, source, ln.num)
		}

		t, err := parseValue(source, ln, tokens[0])
		if err != nil {
			return nil, nil, err
		}
		name := tokens[1]
		minIdx, maxIdx := 2, 3
		if count == 12 {
			maxIdx = 7
		}
		minV, err := parseValue(source, ln, tokens[minIdx])
		if err != nil {
			return nil, nil, err
		}
		maxV, err := parseValue(source, ln, tokens[maxIdx])
		if err != nil {
			return nil, nil, err
		}

		if _, ok := byTime[t]; !ok {
			byTime[t] = map[string]sample{}
			times = append(times, t)
		}
		byTime[t][name] = sample{min: minV, max: maxV}
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	if count < 0 {
		return nil, nil, nil
	}

	columns := []string{domain.TimeColumn}
	for _, name := range order {
		columns = append(columns, "min_"+name, "max_"+name)
	}

	values := make([][]float64, 0, len(times))
	for _, t := range times {
		row := []float64{t}
		for _, name := range order {
			s := byTime[t][name]
			row = append(row, s.min, s.max)
		}
		values = append(values, row)
	}

	return columns, values, nil
}
