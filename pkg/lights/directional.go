package lights

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
)

// Directional is an infinitely distant light, like sunlight, with a fixed
// direction and no attenuation.
type Directional struct {
	Direction core.Vec3 // direction the light travels (not toward the light)
	Intensity core.Vec3
}

// NewDirectional creates a directional light from the direction it travels.
func NewDirectional(direction, intensity core.Vec3) *Directional {
	return &Directional{Direction: direction.Normalize(), Intensity: intensity}
}

// LightVector returns the direction toward the light (opposite travel
// direction) and an effectively infinite distance.
func (d *Directional) LightVector(point core.Vec3) (core.Vec3, float64) {
	return d.Direction.Negate(), math.Inf(1)
}

// IntensityAt returns the constant intensity; directional lights do not attenuate.
func (d *Directional) IntensityAt(point core.Vec3) core.Vec3 {
	return d.Intensity
}

// IsAmbient is always false for directional lights.
func (d *Directional) IsAmbient() bool { return false }
