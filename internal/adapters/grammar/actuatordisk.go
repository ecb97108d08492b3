package grammar

import "github.com/kaufmann-jan/octopost/internal/core/domain"

// Actuator disk output exists in two generations; the older one omits
// the advance ratio and the correction terms. The row width tells them
// apart.
var actuatorDiskLayouts = map[int][]string{
	11: {
		domain.TimeColumn,
		"thrust", "torque", "vp", "va", "n", "J", "FD",
		"alphacorrThrust", "alphacorrTorque", "fillgrade",
	},
	7: {
		domain.TimeColumn,
		"thrust", "torque", "vp", "va", "n", "FD",
	},
}

func parseActuatorDisk(source string, data []byte) ([]string, [][]float64, error) {
	return layoutGrammar(source, data, actuatorDiskLayouts)
}
