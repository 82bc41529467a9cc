// Package noise implements the scalar noise fields used for procedural
// materials and normal perturbation: Perlin, FBM, Ridge, Simplex, and
// Voronoi. Each variant implements material.NormalNoise so a Material can
// carry one without importing this package's concrete generators.
package noise

import "github.com/nullstride/tracer/pkg/core"

// Field is a scalar noise field: value(p) -> f in R.
type Field interface {
	Value(p core.Vec3) float64
}

// Config holds the parameters shared by every noise variant: scale maps
// world-space coordinates into the noise's native frequency, offset shifts
// the sampled point, strength controls the amplitude used by normal
// perturbation, and eps is the finite-difference step.
type Config struct {
	Scale    float64
	Offset   core.Vec3
	Strength float64
	Eps      float64
}

// DefaultConfig returns reasonable defaults: unit scale, no offset, full
// strength, and a small finite-difference epsilon.
func DefaultConfig() Config {
	return Config{Scale: 1.0, Offset: core.Vec3{}, Strength: 1.0, Eps: 1e-3}
}

func (c Config) transform(p core.Vec3) core.Vec3 {
	return p.Add(c.Offset).Multiply(c.Scale)
}
