package lights

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
)

// Spot is a point light restricted to a cone, with the same distance
// falloff as Point and an additional smooth cutoff between the cone's
// inner (full intensity) and outer (zero intensity) angles.
type Spot struct {
	Position   core.Vec3
	Direction  core.Vec3 // direction the spot points, normalized
	Intensity  core.Vec3
	Falloff    float64
	ConeAngle  float64 // outer half-angle, radians
	InnerAngle float64 // inner half-angle, radians; full intensity within
}

// NewSpot creates a spot light pointed along direction with the given outer
// and inner cone half-angles in radians.
func NewSpot(position, direction, intensity core.Vec3, coneAngle, innerAngle float64) *Spot {
	return &Spot{
		Position:   position,
		Direction:  direction.Normalize(),
		Intensity:  intensity,
		ConeAngle:  coneAngle,
		InnerAngle: innerAngle,
	}
}

// LightVector returns the direction and distance from point to the light.
func (s *Spot) LightVector(point core.Vec3) (core.Vec3, float64) {
	toLight := s.Position.Subtract(point)
	dist := toLight.Length()
	if dist == 0 {
		return core.Vec3{}, 0
	}
	return toLight.Multiply(1 / dist), dist
}

// IntensityAt returns the distance-attenuated, cone-masked intensity at point.
func (s *Spot) IntensityAt(point core.Vec3) core.Vec3 {
	dir, dist := s.LightVector(point)
	if dist == 0 {
		return s.Intensity
	}

	cosAngle := dir.Negate().Dot(s.Direction)
	angle := math.Acos(max(-1, min(1, cosAngle)))

	var coneFactor float64
	switch {
	case angle <= s.InnerAngle:
		coneFactor = 1
	case angle >= s.ConeAngle:
		coneFactor = 0
	default:
		coneFactor = 1 - (angle-s.InnerAngle)/(s.ConeAngle-s.InnerAngle)
	}

	attenuation := 1.0 / (4 * math.Pi * dist * dist)
	attenuation /= 1 + s.Falloff*dist*dist

	return s.Intensity.Multiply(attenuation * coneFactor)
}

// IsAmbient is always false for spot lights.
func (s *Spot) IsAmbient() bool { return false }
