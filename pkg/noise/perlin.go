package noise

import (
	"github.com/aquilax/go-perlin"

	"github.com/nullstride/tracer/pkg/core"
)

// Perlin is classical gradient noise backed by aquilax/go-perlin's 256-entry
// permutation table and 3D gradient lattice.
type Perlin struct {
	Config
	gen *perlin.Perlin
}

// NewPerlin creates a Perlin noise field. The underlying generator is fixed
// at alpha 2, beta 2 and a single internal octave (n = 1); this package
// layers its own FBM/Ridge on top.
func NewPerlin(cfg Config, seed int64) *Perlin {
	return &Perlin{Config: cfg, gen: perlin.NewPerlin(2, 2, int32(1), seed)}
}

// Value samples the noise field at p.
func (n *Perlin) Value(p core.Vec3) float64 {
	tp := n.transform(p)
	return n.gen.Noise3D(tp.X, tp.Y, tp.Z)
}

// Scale returns the configured sampling scale.
func (n *Perlin) Scale() float64 { return n.Config.Scale }

// Strength returns the configured perturbation strength.
func (n *Perlin) Strength() float64 { return n.Config.Strength }

// Eps returns the configured finite-difference step.
func (n *Perlin) Eps() float64 { return n.Config.Eps }
