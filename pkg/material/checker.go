package material

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
)

// Checker is a procedural material alternating between two base colors on
// a grid in the hit point's UV coordinates.
type Checker struct {
	Base     Phong
	ColorA   core.Vec3
	ColorB   core.Vec3
	Squares  float64 // number of checker squares across [0,1] of UV
}

// NewChecker creates a checker material with the given square count and the
// rest of its appearance (specular, shininess, reflectivity...) taken from base.
func NewChecker(base Phong, colorA, colorB core.Vec3, squares float64) *Checker {
	return &Checker{Base: base, ColorA: colorA, ColorB: colorB, Squares: squares}
}

// Sample picks ColorA or ColorB based on the parity of the scaled UV cell.
func (c *Checker) Sample(hit *core.GeometryHit) MaterialSample {
	ms := c.Base.Sample(hit)

	u := math.Floor(hit.UV.X * c.Squares)
	v := math.Floor(hit.UV.Y * c.Squares)
	if int(u+v)%2 == 0 {
		ms.BaseColor = c.ColorA
	} else {
		ms.BaseColor = c.ColorB
	}
	return ms
}
