package octopost

import (
	"github.com/kaufmann-jan/octopost/internal/core/domain"
	"github.com/kaufmann-jan/octopost/pkg/table"
)

// NewForces creates a reader for force and moment histories.
func NewForces(opts ...Option) (*Reader, error) {
	return NewReader(domain.KindForces, opts...)
}

// NewResiduals creates a reader for per-equation residual histories.
func NewResiduals(opts ...Option) (*Reader, error) {
	return NewReader(domain.KindResiduals, opts...)
}

// NewRigidBodyState creates a reader for the named body's kinematics.
func NewRigidBodyState(object string, opts ...Option) (*Reader, error) {
	return NewReader(domain.KindRigidBodyState, append(opts, WithObject(object))...)
}

// NewTimeMonitor creates a reader for per-step timing data.
func NewTimeMonitor(opts ...Option) (*Reader, error) {
	return NewReader(domain.KindTimeMonitor, opts...)
}

// NewFieldMinMax creates a reader for field extrema histories.
func NewFieldMinMax(opts ...Option) (*Reader, error) {
	return NewReader(domain.KindFieldMinMax, opts...)
}

// NewWaveBuoy creates a reader for wave gauge heights.
func NewWaveBuoy(opts ...Option) (*Reader, error) {
	return NewReader(domain.KindWaveBuoy, opts...)
}

// NewActuatorDisk creates a reader for actuator disk state.
func NewActuatorDisk(opts ...Option) (*Reader, error) {
	return NewReader(domain.KindActuatorDisk, opts...)
}

// NewVolFieldValue creates a reader for volume field value histories.
func NewVolFieldValue(opts ...Option) (*Reader, error) {
	return NewReader(domain.KindVolFieldValue, opts...)
}

// Forces reads force and moment histories in one call.
func Forces(opts ...Option) (*table.Table, error) {
	return readOnce(NewForces(opts...))
}

// Residuals reads residual histories in one call.
func Residuals(opts ...Option) (*table.Table, error) {
	return readOnce(NewResiduals(opts...))
}

// RigidBodyState reads the named body's kinematics in one call.
func RigidBodyState(object string, opts ...Option) (*table.Table, error) {
	return readOnce(NewRigidBodyState(object, opts...))
}

// TimeMonitor reads per-step timing data in one call.
func TimeMonitor(opts ...Option) (*table.Table, error) {
	return readOnce(NewTimeMonitor(opts...))
}

// FieldMinMax reads field extrema histories in one call.
func FieldMinMax(opts ...Option) (*table.Table, error) {
	return readOnce(NewFieldMinMax(opts...))
}

// WaveBuoy reads wave gauge heights in one call.
func WaveBuoy(opts ...Option) (*table.Table, error) {
	return readOnce(NewWaveBuoy(opts...))
}

// ActuatorDisk reads actuator disk state in one call.
func ActuatorDisk(opts ...Option) (*table.Table, error) {
	return readOnce(NewActuatorDisk(opts...))
}

// VolFieldValue reads volume field value histories in one call.
func VolFieldValue(opts ...Option) (*table.Table, error) {
	return readOnce(NewVolFieldValue(opts...))
}

func readOnce(r *Reader, err error) (*table.Table, error) {
	if err != nil {
		return nil, err
	}
	return r.GetData()
}
