package geometry

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/material"
)

// Plane represents an infinite plane through Point with the given Normal.
type Plane struct {
	Point      core.Vec3
	Normal     core.Vec3
	Material   material.Material
	GeometryID int
}

// NewPlane creates a new plane, normalizing the supplied normal.
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), Material: mat}
}

// Hit tests if a ray intersects with the plane.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	denom := ray.Direction.Dot(p.Normal)
	if math.Abs(denom) < 1e-6 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denom
	if t <= tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	hit := core.GeometryHit{T: t, Point: point, GeometryID: p.GeometryID}
	hit.SetFaceNormal(ray, p.Normal)

	return &material.SurfaceInteraction{Hit: hit, Material: p.Material}, true
}
