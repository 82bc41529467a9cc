package geometry

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/material"
)

// Cylinder represents a finite cylinder between two end-cap centers, with no
// caps rendered (an open tube).
type Cylinder struct {
	Base, Top  core.Vec3
	Radius     float64
	Material   material.Material
	GeometryID int
}

// NewCylinder creates a finite cylinder from base center, top center, and radius.
func NewCylinder(base, top core.Vec3, radius float64, mat material.Material) *Cylinder {
	return &Cylinder{Base: base, Top: top, Radius: radius, Material: mat}
}

// Hit tests if a ray intersects the open lateral surface of the cylinder.
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	axis := c.Top.Subtract(c.Base)
	axisLen := axis.Length()
	if axisLen == 0 {
		return nil, false
	}
	axisDir := axis.Multiply(1 / axisLen)

	oc := ray.Origin.Subtract(c.Base)

	// Project ray direction and origin offset into the plane orthogonal to the axis.
	dPerp := ray.Direction.Subtract(axisDir.Multiply(ray.Direction.Dot(axisDir)))
	ocPerp := oc.Subtract(axisDir.Multiply(oc.Dot(axisDir)))

	a := dPerp.Dot(dPerp)
	if a < 1e-12 {
		return nil, false // ray parallel to axis
	}
	b := 2 * dPerp.Dot(ocPerp)
	cc := ocPerp.Dot(ocPerp) - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	roots := [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}

	for _, root := range roots {
		if root <= tMin || root > tMax {
			continue
		}
		point := ray.At(root)
		axialProj := point.Subtract(c.Base).Dot(axisDir)
		if axialProj < 0 || axialProj > axisLen {
			continue
		}

		axisPoint := c.Base.Add(axisDir.Multiply(axialProj))
		outwardNormal := point.Subtract(axisPoint).Normalize()

		v := axialProj / axisLen
		ref := referenceTangent(axisDir)
		bitangent := axisDir.Cross(ref)
		u := math.Atan2(outwardNormal.Dot(bitangent), outwardNormal.Dot(ref))
		if u < 0 {
			u += 2 * math.Pi
		}
		uv := core.NewVec2(u/(2*math.Pi), v)

		hit := core.GeometryHit{
			T:          root,
			Point:      point,
			UV:         uv,
			HasUV:      true,
			GeometryID: c.GeometryID,
		}
		hit.SetFaceNormal(ray, outwardNormal)

		return &material.SurfaceInteraction{Hit: hit, Material: c.Material}, true
	}

	return nil, false
}
