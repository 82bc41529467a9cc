package lights

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
)

// Point is an isotropic point light with inverse-square attenuation and an
// optional linear-distance falloff term: I/(4*pi*r^2) / (1 + alpha*r^2).
type Point struct {
	Position  core.Vec3
	Intensity core.Vec3
	Falloff   float64 // alpha, 0 disables the extra term
}

// NewPoint creates a point light with no extra falloff term.
func NewPoint(position core.Vec3, intensity core.Vec3) *Point {
	return &Point{Position: position, Intensity: intensity}
}

// LightVector returns the direction and distance from point to the light.
func (p *Point) LightVector(point core.Vec3) (core.Vec3, float64) {
	toLight := p.Position.Subtract(point)
	dist := toLight.Length()
	if dist == 0 {
		return core.Vec3{}, 0
	}
	return toLight.Multiply(1 / dist), dist
}

// IntensityAt returns the attenuated intensity at point.
func (p *Point) IntensityAt(point core.Vec3) core.Vec3 {
	_, dist := p.LightVector(point)
	if dist == 0 {
		return p.Intensity
	}
	attenuation := 1.0 / (4 * math.Pi * dist * dist)
	attenuation /= 1 + p.Falloff*dist*dist
	return p.Intensity.Multiply(attenuation)
}

// IsAmbient is always false for point lights.
func (p *Point) IsAmbient() bool { return false }
