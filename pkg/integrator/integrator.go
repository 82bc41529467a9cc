// Package integrator implements the recursive Whitted-style CastRay
// function: local shading at the closest hit, plus a single reflection or
// refraction bounce chosen by comparing the material's reflectivity and
// transparency.
package integrator

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/lights"
	"github.com/nullstride/tracer/pkg/material"
	"github.com/nullstride/tracer/pkg/noise"
	"github.com/nullstride/tracer/pkg/shading"
)

// Scene is the capability CastRay needs from the scene graph: closest-hit
// queries, shadow occlusion queries, and a background sampler for rays that
// miss everything.
type Scene interface {
	Intersect(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool)
	Occluded(origin, direction core.Vec3, maxDist float64) bool
	Background(direction core.Vec3) core.Vec3
	LightList() []lights.Light
}

// CastRay traces ray through scene, shading the closest hit with shader and
// recursing into reflection or refraction up to depth bounces. depth == 0
// returns black; a miss returns the scene's background color.
func CastRay(ray core.Ray, depth int, shader shading.Shader, scene Scene) core.Vec3 {
	if depth == 0 {
		return core.Vec3{}
	}

	hit, ok := scene.Intersect(ray, 1e-4, math.Inf(1))
	if !ok {
		return scene.Background(ray.Direction)
	}

	viewDir := ray.Direction.Negate().Normalize()
	local := shader.ShadeMultipleLights(hit, scene.LightList(), viewDir, scene).Clamp01()

	ms := hit.Material.Sample(&hit.Hit)
	r, t := ms.Reflectivity, ms.Transparency
	if r == 0 && t == 0 {
		return local
	}

	nGeom := hit.Hit.Normal
	nShade := nGeom
	if ms.Noise != nil {
		nShade = noise.PerturbNormal(ms.Noise, ms.Noise.Strength(), ms.Noise.Eps(), hit.Point(), nGeom)
	}

	bias := math.Max(1e-4, 1e-3*math.Min(1, hit.Hit.T))

	if r >= t {
		reflected := reflectRay(ray, hit, nGeom, nShade, bias)
		f0 := core.DielectricF0(math.Max(ms.IOR, 1))
		fresnel := core.FresnelSchlick(nShade, viewDir, f0)
		energy := core.ClampFloat01(r + (1-r)*fresnel)
		return local.Add(CastRay(reflected, depth-1, shader, scene).Multiply(energy)).Clamp01()
	}

	refracted, refractedOK := refractRay(ray, hit, nGeom, nShade, ms, bias)
	if !refractedOK {
		reflected := reflectRay(ray, hit, nGeom, nShade, bias)
		return local.Add(CastRay(reflected, depth-1, shader, scene).Multiply(r)).Clamp01()
	}
	return local.Add(CastRay(refracted, depth-1, shader, scene).Multiply(t)).Clamp01()
}

// reflectRay builds the reflection bounce ray, offsetting the origin along
// the geometric normal to avoid shadow-acne-style self-intersection.
func reflectRay(ray core.Ray, hit *material.SurfaceInteraction, nGeom, nShade core.Vec3, bias float64) core.Ray {
	n := nShade
	if n.Dot(ray.Direction) > 0 {
		n = n.Negate()
	}
	dir := core.Reflect(ray.Direction, n)
	origin := hit.Point().Add(nGeom.Multiply(bias))
	return core.NewRay(origin, dir)
}

// refractRay builds the transmission bounce ray. It reports false (with a
// zero ray) on total internal reflection, in which case the caller falls
// back to reflection.
func refractRay(ray core.Ray, hit *material.SurfaceInteraction, nGeom, nShade core.Vec3, ms material.MaterialSample, bias float64) (core.Ray, bool) {
	// nGeom and nShade already oppose the ray, so the side that was hit
	// comes from the hit record rather than from the normal's direction.
	frontFace := hit.Hit.FrontFace
	outwardN := nShade

	etaFrom, etaTo := 1.0, ms.IOR
	if !frontFace {
		etaFrom, etaTo = ms.IOR, 1.0
	}

	dir, ok := core.Refract(ray.Direction, outwardN, etaFrom, etaTo)
	if !ok {
		return core.Ray{}, false
	}

	origin := hit.Point().Subtract(nGeom.Multiply(bias))
	return core.NewRay(origin, dir), true
}
