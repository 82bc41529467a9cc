package geometry

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/material"
)

// Torus represents a torus centered at Center, lying in the plane
// orthogonal to Axis, with major radius R (center of tube to center of
// torus) and minor radius r (tube radius).
type Torus struct {
	Center     core.Vec3
	Axis       core.Vec3
	MajorR     float64
	MinorR     float64
	Material   material.Material
	GeometryID int
}

// NewTorus creates a torus with the given center, rotation axis, major
// radius, and minor (tube) radius.
func NewTorus(center, axis core.Vec3, majorR, minorR float64, mat material.Material) *Torus {
	return &Torus{Center: center, Axis: axis.Normalize(), MajorR: majorR, MinorR: minorR, Material: mat}
}

// localBasis builds an orthonormal frame (u, v, axis) for the torus so the
// implicit equation can be evaluated in the torus's own coordinate system.
func (tr *Torus) localBasis() (u, v, axis core.Vec3) {
	axis = tr.Axis
	u = referenceTangent(axis)
	v = axis.Cross(u)
	return
}

// Hit tests if a ray intersects the torus by solving the quartic form of
// the implicit torus equation along the ray and filtering real roots to
// (tMin, tMax].
func (tr *Torus) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	u, v, axis := tr.localBasis()

	toLocal := func(p core.Vec3) core.Vec3 {
		rel := p.Subtract(tr.Center)
		return core.NewVec3(rel.Dot(u), rel.Dot(v), rel.Dot(axis))
	}

	o := toLocal(ray.Origin)
	d := core.NewVec3(ray.Direction.Dot(u), ray.Direction.Dot(v), ray.Direction.Dot(axis))

	R2 := tr.MajorR * tr.MajorR
	r2 := tr.MinorR * tr.MinorR

	dDotD := d.Dot(d)
	oDotD := o.Dot(d)
	oDotO := o.Dot(o)

	// Derived from (|p|^2 + R^2 - r^2)^2 = 4R^2(px^2+py^2), substituting
	// p = o + t*d, collected into a quartic in t.
	sum := oDotO - r2 - R2

	c4 := dDotD * dDotD
	c3 := 4 * dDotD * oDotD
	c2 := 2*dDotD*sum + 4*oDotD*oDotD + 4*R2*d.Z*d.Z
	c1 := 4*oDotD*sum + 8*R2*o.Z*d.Z
	c0 := sum*sum + 4*R2*o.Z*o.Z - 4*R2*r2

	roots := solveQuartic(c4, c3, c2, c1, c0)

	bestT := math.Inf(1)
	found := false
	for _, t := range roots {
		if t > tMin && t <= tMax && t < bestT {
			bestT = t
			found = true
		}
	}
	if !found {
		return nil, false
	}

	point := ray.At(bestT)
	p := toLocal(point)

	// Analytic gradient of F(p) = (|p|^2 + R^2 - r^2)^2 - 4R^2(px^2+py^2)
	alpha := p.Dot(p) + R2 - r2
	gx := 4*alpha*p.X - 8*R2*p.X
	gy := 4*alpha*p.Y - 8*R2*p.Y
	gz := 4 * alpha * p.Z
	gradLocal := core.NewVec3(gx, gy, gz)
	outwardNormal := u.Multiply(gradLocal.X).Add(v.Multiply(gradLocal.Y)).Add(axis.Multiply(gradLocal.Z)).Normalize()

	hit := core.GeometryHit{T: bestT, Point: point, GeometryID: tr.GeometryID}
	hit.SetFaceNormal(ray, outwardNormal)

	return &material.SurfaceInteraction{Hit: hit, Material: tr.Material}, true
}


// solveQuartic returns the real roots of c4*t^4 + c3*t^3 + c2*t^2 + c1*t + c0 = 0,
// via Ferrari's method on the depressed quartic. No third-party polynomial
// solver exists in the available ecosystem for this niche need, so this is
// implemented directly on stdlib math.
func solveQuartic(c4, c3, c2, c1, c0 float64) []float64 {
	if math.Abs(c4) < 1e-12 {
		return solveCubic(c3, c2, c1, c0)
	}
	a, b, c, d := c3/c4, c2/c4, c1/c4, c0/c4

	// Depress: t = y - a/4
	p := b - 3*a*a/8
	q := c - a*b/2 + a*a*a/8
	r := d - a*c/4 + a*a*b/16 - 3*a*a*a*a/256

	var ys []float64
	if math.Abs(q) < 1e-12 {
		// Biquadratic: y^4 + p*y^2 + r = 0
		for _, y2 := range solveQuadraticReal(1, p, r) {
			if y2 >= 0 {
				sq := math.Sqrt(y2)
				ys = append(ys, sq, -sq)
			}
		}
	} else {
		// Resolvent cubic: m^3 + 2p*m^2 + (p^2-4r)*m - q^2 = 0
		ms := solveCubic(1, 2*p, p*p-4*r, -q*q)
		m := 0.0
		for _, cand := range ms {
			if cand > 0 {
				m = cand
				break
			}
		}
		if m <= 0 {
			return nil
		}
		sqrtM := math.Sqrt(m)
		for _, s := range []float64{1, -1} {
			inner := -(2*p + m) - s*2*q/sqrtM
			if inner >= -1e-9 {
				sq := math.Sqrt(math.Max(0, inner))
				ys = append(ys, (s*sqrtM+sq)/2, (s*sqrtM-sq)/2)
			}
		}
	}

	roots := make([]float64, 0, 4)
	for _, y := range ys {
		roots = append(roots, y-a/4)
	}
	return roots
}

// solveCubic returns the real roots of c3*t^3 + c2*t^2 + c1*t + c0 = 0.
func solveCubic(c3, c2, c1, c0 float64) []float64 {
	if math.Abs(c3) < 1e-12 {
		return solveQuadraticReal(c2, c1, c0)
	}
	a, b, c := c2/c3, c1/c3, c0/c3

	q := (3*b - a*a) / 9
	rr := (9*a*b - 27*c - 2*a*a*a) / 54
	disc := q*q*q + rr*rr

	shift := a / 3
	if disc >= 0 {
		sqrtDisc := math.Sqrt(disc)
		s := math.Cbrt(rr + sqrtDisc)
		t := math.Cbrt(rr - sqrtDisc)
		return []float64{s + t - shift}
	}

	theta := math.Acos(rr / math.Sqrt(-q*q*q))
	sqrtNegQ := 2 * math.Sqrt(-q)
	return []float64{
		sqrtNegQ*math.Cos(theta/3) - shift,
		sqrtNegQ*math.Cos((theta+2*math.Pi)/3) - shift,
		sqrtNegQ*math.Cos((theta+4*math.Pi)/3) - shift,
	}
}

// solveQuadraticReal returns the real roots of a*t^2 + b*t + c = 0.
func solveQuadraticReal(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sqrtD := math.Sqrt(disc)
	return []float64{(-b + sqrtD) / (2 * a), (-b - sqrtD) / (2 * a)}
}
