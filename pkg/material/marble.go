package material

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
)

// marbleField is the capability Marble needs from a noise source: a scalar
// field sampled at a world-space point.
type marbleField interface {
	Value(p core.Vec3) float64
}

// Marble is a procedural material modulating base color along a sine band
// warped by an FBM-like noise field, producing a marbled vein pattern.
type Marble struct {
	Base      Phong
	VeinColor core.Vec3
	Noise     marbleField
	Frequency float64
	Turbulence float64
}

// NewMarble creates a marble material whose veins run along Noise-warped
// sine bands of the world-space hit point.
func NewMarble(base Phong, veinColor core.Vec3, field marbleField, frequency, turbulence float64) *Marble {
	return &Marble{Base: base, VeinColor: veinColor, Noise: field, Frequency: frequency, Turbulence: turbulence}
}

// Sample blends BaseColor and VeinColor by a sine-warped noise value.
func (m *Marble) Sample(hit *core.GeometryHit) MaterialSample {
	ms := m.Base.Sample(hit)

	n := m.Noise.Value(hit.Point)
	band := math.Sin(m.Frequency*hit.Point.X + m.Turbulence*n)
	t := (band + 1) / 2

	ms.BaseColor = core.Lerp(ms.BaseColor, m.VeinColor, t)
	return ms
}
