package material

import "github.com/nullstride/tracer/pkg/core"

// rockField is the capability Rock needs from a noise source.
type rockField interface {
	Value(p core.Vec3) float64
}

// Rock is a procedural material that darkens and roughens base color in
// proportion to a Voronoi-like cellular noise field, approximating
// pitted stone.
type Rock struct {
	Base       Phong
	Noise      rockField
	DarkColor  core.Vec3
	Contrast   float64
}

// NewRock creates a rock material using field as its cellular noise source.
func NewRock(base Phong, field rockField, darkColor core.Vec3, contrast float64) *Rock {
	return &Rock{Base: base, Noise: field, DarkColor: darkColor, Contrast: contrast}
}

// Sample darkens BaseColor toward DarkColor as the noise value grows, and
// reduces shininess in the same proportion to suggest a rougher surface.
func (r *Rock) Sample(hit *core.GeometryHit) MaterialSample {
	ms := r.Base.Sample(hit)

	n := core.ClampFloat01(r.Noise.Value(hit.Point) * r.Contrast)
	ms.BaseColor = core.Lerp(ms.BaseColor, r.DarkColor, n)
	ms.Shininess = core.LerpFloat(ms.Shininess, 1, n)
	return ms
}
