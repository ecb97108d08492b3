// Package domain holds the core value types of the post-processing reader.
package domain

// Kind identifies one output kind written by the solver's function objects.
type Kind string

const (
	// KindForces reads force and moment coefficients (forces.dat).
	KindForces Kind = "forces"
	// KindResiduals reads per-equation residual histories (residuals.dat).
	KindResiduals Kind = "residuals"
	// KindRigidBodyState reads rigid-body kinematics for a named object.
	KindRigidBodyState Kind = "rigidBodyState"
	// KindTimeMonitor reads per-step cpu/clock time monitoring (time.dat).
	KindTimeMonitor Kind = "timeMonitor"
	// KindFieldMinMax reads scalar field extrema (fieldMinMax.dat).
	KindFieldMinMax Kind = "fieldMinMax"
	// KindWaveBuoy reads free-surface heights at gauge locations (height.dat).
	KindWaveBuoy Kind = "waveBuoy"
	// KindActuatorDisk reads actuator disk state (actuatorDisk.dat).
	KindActuatorDisk Kind = "actuatorDisk"
	// KindVolFieldValue reads volume-averaged field values (volFieldValue.dat).
	KindVolFieldValue Kind = "volFieldValue"
)

// Kinds lists all known output kinds in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindForces,
		KindResiduals,
		KindRigidBodyState,
		KindTimeMonitor,
		KindFieldMinMax,
		KindWaveBuoy,
		KindActuatorDisk,
		KindVolFieldValue,
	}
}

// PostProcessingDir is the subdirectory of a case where the solver writes
// its derived monitoring data.
const PostProcessingDir = "postProcessing"

// TimeColumn is the name of the leading time column of every series.
const TimeColumn = "time"

// SeriesID identifies one logical output series within a case: the case
// root, the output kind, and the kind subdirectory plus data file that
// select a sub-object (e.g. one of several force regions).
type SeriesID struct {
	CaseDir string
	Kind    Kind
	Dir     string
	File    string
}

// TimeFile is one time directory's data file for a series as found on
// disk: the directory label parsed as a real number, the file path, and
// the file's fingerprint at enumeration time.
type TimeFile struct {
	Label float64
	Path  string
	Print Fingerprint
}
