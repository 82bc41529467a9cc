package lights

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
)

// Surface is the minimal geometric capability an Area light needs from the
// shape backing it: a representative sample point and the outward normal
// there, used for a single-sample direct-lighting estimate (this renderer
// does not implement Monte Carlo area-light integration).
type Surface interface {
	SamplePoint() core.Vec3
	SampleNormal() core.Vec3
	Area() float64
}

// Area is a light whose radiance comes from a finite emissive surface.
// Direct lighting is estimated with a single shadow ray to the surface's
// representative sample point, weighted by the cosine of the surface
// normal and inverse-square falloff - consistent with this renderer's
// single-shadow-ray-per-light shading contract.
type Area struct {
	Surface   Surface
	Intensity core.Vec3
}

// NewArea creates an area light backed by the given surface.
func NewArea(surface Surface, intensity core.Vec3) *Area {
	return &Area{Surface: surface, Intensity: intensity}
}

// LightVector returns the direction and distance from point to the
// surface's sample point.
func (a *Area) LightVector(point core.Vec3) (core.Vec3, float64) {
	toLight := a.Surface.SamplePoint().Subtract(point)
	dist := toLight.Length()
	if dist == 0 {
		return core.Vec3{}, 0
	}
	return toLight.Multiply(1 / dist), dist
}

// IntensityAt returns the area-weighted, cosine-weighted, distance
// attenuated intensity arriving at point.
func (a *Area) IntensityAt(point core.Vec3) core.Vec3 {
	dir, dist := a.LightVector(point)
	if dist == 0 {
		return a.Intensity
	}

	cosSurface := math.Max(0, a.Surface.SampleNormal().Dot(dir.Negate()))
	solidAngleTerm := a.Surface.Area() * cosSurface / (dist * dist)

	return a.Intensity.Multiply(solidAngleTerm / math.Pi)
}

// IsAmbient is always false for area lights.
func (a *Area) IsAmbient() bool { return false }
