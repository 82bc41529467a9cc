package noise

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
)

// Simplex implements 3D simplex noise via skew/unskew into a simplicial
// grid. No ecosystem library in this codebase's dependency set implements
// simplex noise (aquilax/go-perlin is classical-lattice only), so this is
// hand-rolled on stdlib math.
type Simplex struct {
	Config
	perm [512]int
}

var simplexGrad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// NewSimplex creates a Simplex noise field, building its permutation table
// from a deterministic LCG seeded by the given value.
func NewSimplex(cfg Config, seed int64) *Simplex {
	s := &Simplex{Config: cfg}
	var base [256]int
	for i := range base {
		base[i] = i
	}
	state := uint64(seed)
	for i := 255; i > 0; i-- {
		state = state*6364136223846793005 + 1442695040888963407
		j := int(state>>33) % (i + 1)
		if j < 0 {
			j += i + 1
		}
		base[i], base[j] = base[j], base[i]
	}
	for i := 0; i < 512; i++ {
		s.perm[i] = base[i%256]
	}
	return s
}

func (s *Simplex) dot(g [3]float64, x, y, z float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z
}

// Value samples 3D simplex noise at p.
func (s *Simplex) Value(p core.Vec3) float64 {
	tp := s.transform(p)
	const f3 = 1.0 / 3.0
	const g3 = 1.0 / 6.0

	x, y, z := tp.X, tp.Y, tp.Z
	skew := (x + y + z) * f3
	i := math.Floor(x + skew)
	j := math.Floor(y + skew)
	k := math.Floor(z + skew)

	unskew := (i + j + k) * g3
	x0 := x - (i - unskew)
	y0 := y - (j - unskew)
	z0 := z - (k - unskew)

	var i1, j1, k1, i2, j2, k2 int
	switch {
	case x0 >= y0 && y0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
	case x0 >= z0 && z0 >= y0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
	case z0 >= x0 && x0 >= y0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
	case z0 >= y0 && y0 >= x0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
	case y0 >= z0 && z0 >= x0:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
	default:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := int(i) & 255
	jj := int(j) & 255
	kk := int(k) & 255

	gi0 := s.perm[ii+s.perm[jj+s.perm[kk]]] % 12
	gi1 := s.perm[ii+i1+s.perm[jj+j1+s.perm[kk+k1]]] % 12
	gi2 := s.perm[ii+i2+s.perm[jj+j2+s.perm[kk+k2]]] % 12
	gi3 := s.perm[ii+1+s.perm[jj+1+s.perm[kk+1]]] % 12

	n0 := corner(0.6, x0, y0, z0, simplexGrad3[gi0], s)
	n1 := corner(0.6, x1, y1, z1, simplexGrad3[gi1], s)
	n2 := corner(0.6, x2, y2, z2, simplexGrad3[gi2], s)
	n3 := corner(0.6, x3, y3, z3, simplexGrad3[gi3], s)

	return 32 * (n0 + n1 + n2 + n3)
}

func corner(falloff, x, y, z float64, g [3]float64, s *Simplex) float64 {
	t := falloff - x*x - y*y - z*z
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * s.dot(g, x, y, z)
}

// Scale returns the configured sampling scale.
func (s *Simplex) Scale() float64 { return s.Config.Scale }

// Strength returns the configured perturbation strength.
func (s *Simplex) Strength() float64 { return s.Config.Strength }

// Eps returns the configured finite-difference step.
func (s *Simplex) Eps() float64 { return s.Config.Eps }
