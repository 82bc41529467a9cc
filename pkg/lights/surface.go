package lights

import "github.com/nullstride/tracer/pkg/core"

// PlanarSurface is a quad-shaped emissive surface usable as an Area light's
// backing Surface, independent of the geometry package's Quad primitive
// (which is inserted into the scene separately as visible geometry).
type PlanarSurface struct {
	Corner, U, V core.Vec3
}

// SamplePoint returns the quad's center.
func (p PlanarSurface) SamplePoint() core.Vec3 {
	return p.Corner.Add(p.U.Multiply(0.5)).Add(p.V.Multiply(0.5))
}

// SampleNormal returns the quad's outward normal.
func (p PlanarSurface) SampleNormal() core.Vec3 {
	return p.U.Cross(p.V).Normalize()
}

// Area returns the quad's surface area.
func (p PlanarSurface) Area() float64 {
	return p.U.Cross(p.V).Length()
}

// SphereSurface is a sphere-shaped emissive surface usable as an Area
// light's backing Surface.
type SphereSurface struct {
	Center core.Vec3
	Radius float64
	Toward core.Vec3 // representative direction from center used to pick a sample point
}

// SamplePoint returns the point on the sphere nearest to Toward.
func (s SphereSurface) SamplePoint() core.Vec3 {
	dir := s.Toward.Normalize()
	if dir.IsZero() {
		dir = core.NewVec3(0, 1, 0)
	}
	return s.Center.Add(dir.Multiply(s.Radius))
}

// SampleNormal returns the outward normal at the sample point.
func (s SphereSurface) SampleNormal() core.Vec3 {
	return s.SamplePoint().Subtract(s.Center).Normalize()
}

// Area returns the sphere's total surface area.
func (s SphereSurface) Area() float64 {
	const fourPi = 12.566370614359172
	return fourPi * s.Radius * s.Radius
}
