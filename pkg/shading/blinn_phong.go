package shading

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/lights"
	"github.com/nullstride/tracer/pkg/material"
)

// BlinnPhong is the reference shading model: Lambertian diffuse plus a
// Blinn half-vector specular lobe, with Schlick Fresnel tinting the
// specular term on dielectrics.
type BlinnPhong struct{}

// Shade evaluates a single light's contribution at hit.
func (BlinnPhong) Shade(hit *material.SurfaceInteraction, light lights.Light, viewDir core.Vec3, scene Occluder) core.Vec3 {
	ms := hit.Material.Sample(&hit.Hit)
	n := shadingNormal(ms, hit)

	if light.IsAmbient() {
		return light.IntensityAt(hit.Point()).MultiplyVec(ms.BaseColor)
	}

	l, dist := light.LightVector(hit.Point())
	if shadowTrace(scene, hit.Point(), hit.Hit.Normal, l, dist) {
		return core.Vec3{}
	}

	return blinnPhongTerm(ms, n, l, viewDir, light.IntensityAt(hit.Point()))
}

// ShadeMultipleLights sums every light's contribution, then adds emission,
// and for transmissive surfaces an extra view-side specular lobe to retain
// a highlight on glass.
func (b BlinnPhong) ShadeMultipleLights(hit *material.SurfaceInteraction, lightList []lights.Light, viewDir core.Vec3, scene Occluder) core.Vec3 {
	ms := hit.Material.Sample(&hit.Hit)
	n := shadingNormal(ms, hit)

	sum := core.Vec3{}
	for _, light := range lightList {
		if light.IsAmbient() {
			sum = sum.Add(light.IntensityAt(hit.Point()).MultiplyVec(ms.BaseColor))
			continue
		}

		l, dist := light.LightVector(hit.Point())
		if shadowTrace(scene, hit.Point(), hit.Hit.Normal, l, dist) {
			continue
		}
		sum = sum.Add(blinnPhongTerm(ms, n, l, viewDir, light.IntensityAt(hit.Point())))
	}

	sum = sum.Add(ms.Emission)

	if ms.Transparency > 0 {
		h := viewDir.Add(n).Normalize()
		spec := math.Pow(math.Max(0, n.Dot(h)), ms.Shininess)
		sum = sum.Add(ms.SpecColor.Multiply(spec))
	}

	return sum.Clamp01()
}

// blinnPhongTerm computes the diffuse+specular contribution of one
// non-ambient light, already known to be unoccluded.
func blinnPhongTerm(ms material.MaterialSample, n, l, viewDir, lightColor core.Vec3) core.Vec3 {
	result := core.Vec3{}

	nDotL := math.Max(0, n.Dot(l))
	if ms.Opacity >= 1 {
		diffuse := ms.BaseColor.Multiply(nDotL)
		result = result.Add(diffuse.MultiplyVec(lightColor))
	}

	h := l.Add(viewDir).Normalize()
	specPower := math.Pow(math.Max(0, n.Dot(h)), ms.Shininess)
	specTint := ms.SpecColor

	if ms.IOR > 1 {
		f0 := core.DielectricF0(ms.IOR)
		f := core.FresnelSchlick(n, viewDir, f0)
		specTint = specTint.Multiply(f)
	}

	result = result.Add(specTint.Multiply(specPower).MultiplyVec(lightColor))
	return result
}
