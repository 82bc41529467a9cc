package lights

import "github.com/nullstride/tracer/pkg/core"

// Ambient is a constant, directionless light added to every shaded point
// without tracing a shadow ray.
type Ambient struct {
	Intensity core.Vec3
}

// NewAmbient creates an ambient light.
func NewAmbient(intensity core.Vec3) *Ambient {
	return &Ambient{Intensity: intensity}
}

// LightVector has no meaningful direction for an ambient term.
func (a *Ambient) LightVector(point core.Vec3) (core.Vec3, float64) {
	return core.Vec3{}, 0
}

// IntensityAt returns the constant ambient intensity everywhere.
func (a *Ambient) IntensityAt(point core.Vec3) core.Vec3 {
	return a.Intensity
}

// IsAmbient is always true for ambient lights.
func (a *Ambient) IsAmbient() bool { return true }
