package geometry

import (
	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/material"
)

// Quad represents a planar quadrilateral defined by a corner and two edge
// vectors, tested as two triangles sharing the corner-to-opposite diagonal.
type Quad struct {
	Corner, U, V core.Vec3
	Material     material.Material
	GeometryID   int
}

// NewQuad creates a new quad from a corner and two edge vectors.
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	return &Quad{Corner: corner, U: u, V: v, Material: mat}
}

// Hit tests if a ray intersects with the quad, returning the nearer of the
// two triangle hits when both triangles are hit (for a planar quad that only
// happens on the shared diagonal, where both report the same t).
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	opposite := q.Corner.Add(q.U).Add(q.V)

	t1 := NewTriangle(q.Corner, q.Corner.Add(q.U), opposite, q.Material)
	t2 := NewTriangle(q.Corner, opposite, q.Corner.Add(q.V), q.Material)

	hit1, ok1 := t1.Hit(ray, tMin, tMax)
	hit2, ok2 := t2.Hit(ray, tMin, tMax)

	var si *material.SurfaceInteraction
	switch {
	case ok1 && ok2:
		if hit1.Hit.T <= hit2.Hit.T {
			si = hit1
		} else {
			si = hit2
		}
	case ok1:
		si = hit1
	case ok2:
		si = hit2
	default:
		return nil, false
	}

	// Recompute UV in the quad's own (u,v) parameterization rather than the
	// sub-triangle's barycentric coordinates.
	rel := si.Hit.Point.Subtract(q.Corner)
	uLen := q.U.LengthSquared()
	vLen := q.V.LengthSquared()
	if uLen > 0 {
		si.Hit.UV.X = rel.Dot(q.U) / uLen
	}
	if vLen > 0 {
		si.Hit.UV.Y = rel.Dot(q.V) / vLen
	}
	si.Hit.GeometryID = q.GeometryID

	return si, true
}
