package grammar

import "github.com/kaufmann-jan/octopost/internal/core/domain"

// Force rows decompose forces and moments into physical contributions
// (pressure, viscous and optionally porous), written as sibling vector
// groups on one line. Each contribution expands independently.
var forcesLayouts = map[int][]string{
	13: {
		domain.TimeColumn,
		"fp_x", "fp_y", "fp_z",
		"fv_x", "fv_y", "fv_z",
		"mp_x", "mp_y", "mp_z",
		"mv_x", "mv_y", "mv_z",
	},
	19: {
		domain.TimeColumn,
		"fp_x", "fp_y", "fp_z",
		"fv_x", "fv_y", "fv_z",
		"fpor_x", "fpor_y", "fpor_z",
		"mp_x", "mp_y", "mp_z",
		"mv_x", "mv_y", "mv_z",
		"mpor_x", "mpor_y", "mpor_z",
	},
}

// parseForces parses a forces.dat fragment and appends the derived total
// force columns fx, fy, fz (pressure plus viscous contribution).
func parseForces(source string, data []byte) ([]string, [][]float64, error) {
	columns, rows, err := layoutGrammar(source, data, forcesLayouts)
	if err != nil {
		return nil, nil, err
	}
	if columns == nil {
		return nil, nil, nil
	}

	columns = append(columns, "fx", "fy", "fz")
	for i, row := range rows {
		// fp_* sits at 1..3 and fv_* at 4..6 in both layouts.
		rows[i] = append(row, row[1]+row[4], row[2]+row[5], row[3]+row[6])
	}
	return columns, rows, nil
}
