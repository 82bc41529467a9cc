package noise

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
)

// Voronoi returns the distance to the nearest feature point across the
// 3x3x3 neighborhood of integer cells around the sampled point. No
// ecosystem library in the available dependency set implements cellular
// noise, so this is hand-rolled on stdlib math.
type Voronoi struct {
	Config
	seed int64
}

// NewVoronoi creates a Voronoi (cellular) noise field.
func NewVoronoi(cfg Config, seed int64) *Voronoi {
	return &Voronoi{Config: cfg, seed: seed}
}

// hash maps a cell coordinate to a pseudo-random feature point within it.
func (v *Voronoi) hash(ix, iy, iz int) core.Vec3 {
	h := uint64(ix)*73856093 ^ uint64(iy)*19349663 ^ uint64(iz)*83492791 ^ uint64(v.seed)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33

	fx := float64(h&0xFFFF) / 0xFFFF
	fy := float64((h>>16)&0xFFFF) / 0xFFFF
	fz := float64((h>>32)&0xFFFF) / 0xFFFF
	return core.NewVec3(float64(ix)+fx, float64(iy)+fy, float64(iz)+fz)
}

// Value returns the distance from p to its nearest feature point.
func (v *Voronoi) Value(p core.Vec3) float64 {
	tp := v.transform(p)
	ix := int(math.Floor(tp.X))
	iy := int(math.Floor(tp.Y))
	iz := int(math.Floor(tp.Z))

	minDist := math.Inf(1)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				feature := v.hash(ix+dx, iy+dy, iz+dz)
				dist := feature.Subtract(tp).Length()
				if dist < minDist {
					minDist = dist
				}
			}
		}
	}
	return minDist
}

// Scale returns the configured sampling scale.
func (v *Voronoi) Scale() float64 { return v.Config.Scale }

// Strength returns the configured perturbation strength.
func (v *Voronoi) Strength() float64 { return v.Config.Strength }

// Eps returns the configured finite-difference step.
func (v *Voronoi) Eps() float64 { return v.Config.Eps }
