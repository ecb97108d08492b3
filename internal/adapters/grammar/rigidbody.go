package grammar

import "github.com/kaufmann-jan/octopost/internal/core/domain"

// Rigid-body state rows carry centre-of-gravity position, orientation
// and their rates as three vector groups.
var rigidBodyLayouts = map[int][]string{
	13: {
		domain.TimeColumn,
		"x", "y", "z",
		"roll", "pitch", "yaw",
		"vx", "vy", "vz",
		"vroll", "vpitch", "vyaw",
	},
}

func parseRigidBodyState(source string, data []byte) ([]string, [][]float64, error) {
	return layoutGrammar(source, data, rigidBodyLayouts)
}
