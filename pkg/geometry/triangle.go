package geometry

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices, tested
// with the Moller-Trumbore algorithm.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   material.Material
	GeometryID int
}

// NewTriangle creates a new triangle from three vertices.
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
}

// Hit tests if a ray intersects with the triangle using Moller-Trumbore.
func (tri *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	edge1 := tri.V1.Subtract(tri.V0)
	edge2 := tri.V2.Subtract(tri.V0)

	pVec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pVec)
	if math.Abs(det) < 1e-8 {
		return nil, false
	}
	invDet := 1.0 / det

	tVec := ray.Origin.Subtract(tri.V0)
	u := tVec.Dot(pVec) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}

	qVec := tVec.Cross(edge1)
	v := ray.Direction.Dot(qVec) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}

	t := edge2.Dot(qVec) * invDet
	if t <= tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	outwardNormal := edge1.Cross(edge2).Normalize()

	hit := core.GeometryHit{
		T:          t,
		Point:      point,
		UV:         core.NewVec2(u, v),
		HasUV:      true,
		GeometryID: tri.GeometryID,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return &material.SurfaceInteraction{Hit: hit, Material: tri.Material}, true
}
