package geometry

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/material"
)

// Sphere represents a sphere shape.
type Sphere struct {
	Center     core.Vec3
	Radius     float64
	Material   material.Material
	GeometryID int
}

// NewSphere creates a new sphere.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit tests if a ray intersects with the sphere.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	theta := math.Acos(max(-1, min(1, outwardNormal.Y)))
	phi := math.Atan2(outwardNormal.Z, outwardNormal.X)
	uv := core.NewVec2(phi/(2*math.Pi)+0.5, theta/math.Pi)

	tangent := core.NewVec3(-outwardNormal.Z, 0, outwardNormal.X).Normalize()
	bitangent := outwardNormal.Cross(tangent)

	hit := core.GeometryHit{
		T:          root,
		Point:      point,
		UV:         uv,
		HasUV:      true,
		Tangent:    tangent,
		Bitangent:  bitangent,
		HasTangent: true,
		GeometryID: s.GeometryID,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return &material.SurfaceInteraction{Hit: hit, Material: s.Material}, true
}
