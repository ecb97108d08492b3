// Package grammar parses the whitespace-and-group text formats written
// by OpenFOAM function objects into column names and scalar rows.
package grammar

import (
	"github.com/kaufmann-jan/octopost/internal/core/domain"
	"github.com/kaufmann-jan/octopost/internal/core/ports"
	"go.trai.ch/zerr"
)

// Spec binds a series kind to its default location under postProcessing
// and the parser for its file format. An empty File means the file name
// is caller-supplied, as with rigid-body state where it is derived from
// the body name.
type Spec struct {
	Dir   string
	File  string
	Parse ports.ParseFunc
}

var specs = map[domain.Kind]Spec{
	domain.KindForces:         {Dir: "forces", File: "forces.dat", Parse: parseForces},
	domain.KindResiduals:      {Dir: "residuals", File: "residuals.dat", Parse: headerGrammar},
	domain.KindRigidBodyState: {Dir: "rigidBodyState", Parse: parseRigidBodyState},
	domain.KindTimeMonitor:    {Dir: "timeMonitor", File: "time.dat", Parse: headerGrammar},
	domain.KindFieldMinMax:    {Dir: "fieldMinMax", File: "fieldMinMax.dat", Parse: parseFieldMinMax},
	domain.KindWaveBuoy:       {Dir: "waveBuoy", File: "height.dat", Parse: parseWaveBuoy},
	domain.KindActuatorDisk:   {Dir: "actuatorDisk", File: "actuatorDisk.dat", Parse: parseActuatorDisk},
	domain.KindVolFieldValue:  {Dir: "volFieldValue", File: "volFieldValue.dat", Parse: headerGrammar},
}

// Lookup returns the parsing spec for a kind.
func Lookup(kind domain.Kind) (Spec, error) {
	spec, ok := specs[kind]
	if !ok {
		return Spec{}, zerr.With(domain.ErrUnknownKind, "kind", string(kind))
	}
	return spec, nil
}
