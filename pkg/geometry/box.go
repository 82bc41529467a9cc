package geometry

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/material"
)

// Box represents an axis-aligned box given by two opposite corners.
type Box struct {
	Min, Max   core.Vec3
	Material   material.Material
	GeometryID int
}

// NewBox creates a new box from two corners (order does not matter).
func NewBox(corner1, corner2 core.Vec3, mat material.Material) *Box {
	return &Box{
		Min: core.NewVec3(math.Min(corner1.X, corner2.X), math.Min(corner1.Y, corner2.Y), math.Min(corner1.Z, corner2.Z)),
		Max: core.NewVec3(math.Max(corner1.X, corner2.X), math.Max(corner1.Y, corner2.Y), math.Max(corner1.Z, corner2.Z)),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the box using the slab method.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	tEnter, tExit := tMin, tMax

	axes := [3]struct{ minV, maxV, origin, dir float64 }{
		{b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X},
		{b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y},
		{b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z},
	}

	for _, a := range axes {
		if math.Abs(a.dir) < 1e-12 {
			if a.origin < a.minV || a.origin > a.maxV {
				return nil, false
			}
			continue
		}
		invD := 1.0 / a.dir
		t1 := (a.minV - a.origin) * invD
		t2 := (a.maxV - a.origin) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tEnter = math.Max(tEnter, t1)
		tExit = math.Min(tExit, t2)
		if tEnter > tExit {
			return nil, false
		}
	}

	t := tEnter
	if t <= tMin {
		t = tExit
		if t <= tMin || t > tMax {
			return nil, false
		}
	}
	if t > tMax {
		return nil, false
	}

	point := ray.At(t)
	outwardNormal, uv := b.faceNormalAndUV(point)

	hit := core.GeometryHit{
		T:          t,
		Point:      point,
		UV:         uv,
		HasUV:      true,
		GeometryID: b.GeometryID,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return &material.SurfaceInteraction{Hit: hit, Material: b.Material}, true
}

// faceNormalAndUV identifies which of the six faces a point lies on (within
// an epsilon) and returns the outward normal plus a per-face [0,1]^2 UV in
// that face's tangent axes.
func (b *Box) faceNormalAndUV(p core.Vec3) (core.Vec3, core.Vec2) {
	const eps = 1e-6

	switch {
	case math.Abs(p.X-b.Min.X) < eps:
		return core.NewVec3(-1, 0, 0), core.NewVec2(frac(p.Z, b.Min.Z, b.Max.Z), frac(p.Y, b.Min.Y, b.Max.Y))
	case math.Abs(p.X-b.Max.X) < eps:
		return core.NewVec3(1, 0, 0), core.NewVec2(frac(p.Z, b.Min.Z, b.Max.Z), frac(p.Y, b.Min.Y, b.Max.Y))
	case math.Abs(p.Y-b.Min.Y) < eps:
		return core.NewVec3(0, -1, 0), core.NewVec2(frac(p.X, b.Min.X, b.Max.X), frac(p.Z, b.Min.Z, b.Max.Z))
	case math.Abs(p.Y-b.Max.Y) < eps:
		return core.NewVec3(0, 1, 0), core.NewVec2(frac(p.X, b.Min.X, b.Max.X), frac(p.Z, b.Min.Z, b.Max.Z))
	case math.Abs(p.Z-b.Min.Z) < eps:
		return core.NewVec3(0, 0, -1), core.NewVec2(frac(p.X, b.Min.X, b.Max.X), frac(p.Y, b.Min.Y, b.Max.Y))
	default:
		return core.NewVec3(0, 0, 1), core.NewVec2(frac(p.X, b.Min.X, b.Max.X), frac(p.Y, b.Min.Y, b.Max.Y))
	}
}

func frac(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}
