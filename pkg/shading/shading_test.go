package shading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/geometry"
	"github.com/nullstride/tracer/pkg/lights"
	"github.com/nullstride/tracer/pkg/material"
	"github.com/nullstride/tracer/pkg/noise"
)

// noOccluder reports everything as unoccluded.
type noOccluder struct{}

func (noOccluder) Occluded(origin, direction core.Vec3, maxDist float64) bool { return false }

// fullOccluder reports everything as occluded.
type fullOccluder struct{}

func (fullOccluder) Occluded(origin, direction core.Vec3, maxDist float64) bool { return true }

func sphereHit(t *testing.T, mat material.Material) *material.SurfaceInteraction {
	t.Helper()
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	si, ok := sphere.Hit(ray, 0.001, 1000)
	assert.True(t, ok)
	return si
}

func TestBlinnPhong_AmbientAddsDirectly(t *testing.T) {
	mat := material.NewPhong(core.NewVec3(1, 1, 1), core.Vec3{}, 1)
	si := sphereHit(t, mat)
	ambient := lights.NewAmbient(core.NewVec3(0.2, 0.2, 0.2))

	result := BlinnPhong{}.Shade(si, ambient, core.NewVec3(0, 0, 1), noOccluder{})
	assert.InDelta(t, 0.2, result.X, 1e-9)
}

func TestBlinnPhong_ShadowedLightContributesNothing(t *testing.T) {
	mat := material.NewPhong(core.NewVec3(1, 1, 1), core.Vec3{}, 32)
	si := sphereHit(t, mat)
	point := lights.NewPoint(core.NewVec3(0, 5, -5), core.NewVec3(1, 1, 1))

	result := BlinnPhong{}.Shade(si, point, core.NewVec3(0, 0, 1), fullOccluder{})
	assert.Equal(t, core.Vec3{}, result)
}

func TestBlinnPhong_DiffuseSuppressedWhenTransparent(t *testing.T) {
	opaqueMat := material.NewPhong(core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), 32)
	transparentMat := material.NewDielectric(core.NewVec3(1, 1, 1), 1.5, 1.0)
	si := sphereHit(t, opaqueMat)

	n := si.Hit.Normal
	l := core.NewVec3(0, 0, 1)
	view := core.NewVec3(0, 0, 1)
	lightColor := core.NewVec3(1, 1, 1)

	opaqueResult := blinnPhongTerm(opaqueMat.Sample(&si.Hit), n, l, view, lightColor)
	transparentResult := blinnPhongTerm(transparentMat.Sample(&si.Hit), n, l, view, lightColor)

	assert.Greater(t, opaqueResult.X, transparentResult.X)
	// Only the Fresnel-tinted specular remains: f0 = 0.04 for IOR 1.5.
	assert.InDelta(t, 0.04, transparentResult.X, 1e-9)
}

func TestBlinnPhong_ShadeMultipleLights_AddsEmission(t *testing.T) {
	mat := material.NewEmissive(core.NewVec3(0.5, 0.5, 0.5))
	si := sphereHit(t, mat)

	result := BlinnPhong{}.ShadeMultipleLights(si, nil, core.NewVec3(0, 0, 1), noOccluder{})
	assert.InDelta(t, 0.5, result.X, 1e-9)
}

func TestBlinnPhong_SpecularTintedByFresnelOnDielectric(t *testing.T) {
	mat := material.NewDielectric(core.NewVec3(1, 1, 1), 1.5, 0.9)
	si := sphereHit(t, mat)
	ms := mat.Sample(&si.Hit)

	grazing := blinnPhongTerm(ms, si.Hit.Normal, core.NewVec3(0, 1, 0).Normalize(), core.NewVec3(0.01, 0.01, 1).Normalize(), core.NewVec3(1, 1, 1))
	normal := blinnPhongTerm(ms, si.Hit.Normal, core.NewVec3(0, 1, 0).Normalize(), core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1))
	assert.NotEqual(t, grazing, normal)
}

func TestNormalShader_MapsNormalToZeroOneRange(t *testing.T) {
	mat := material.NewPhong(core.NewVec3(1, 1, 1), core.Vec3{}, 1)
	si := sphereHit(t, mat)

	result := NormalShader{}.Shade(si, nil, core.NewVec3(0, 0, 1), noOccluder{})
	assert.True(t, result.X >= 0 && result.X <= 1)
	assert.True(t, result.Y >= 0 && result.Y <= 1)
	assert.True(t, result.Z >= 0 && result.Z <= 1)
}

func TestDepthShader_FarHitIsDarker(t *testing.T) {
	nearMat := material.NewPhong(core.Vec3{}, core.Vec3{}, 1)
	nearSphere := geometry.NewSphere(core.NewVec3(0, 0, -2), 1, nearMat)
	farSphere := geometry.NewSphere(core.NewVec3(0, 0, -8), 1, nearMat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	nearSi, _ := nearSphere.Hit(ray, 0.001, 1000)
	farSi, _ := farSphere.Hit(ray, 0.001, 1000)

	nearColor := DepthShader{}.Shade(nearSi, nil, core.NewVec3(0, 0, 1), noOccluder{})
	farColor := DepthShader{}.Shade(farSi, nil, core.NewVec3(0, 0, 1), noOccluder{})
	assert.True(t, farColor.X < nearColor.X)
}

func TestCurvatureShader_ProducesBoundedOutput(t *testing.T) {
	mat := material.NewPhong(core.Vec3{}, core.Vec3{}, 1)
	si := sphereHit(t, mat)

	result := CurvatureShader{}.Shade(si, nil, core.NewVec3(0, 0, 1), noOccluder{})
	assert.True(t, result.X >= 0 && result.X <= 1)
}

func TestCurvatureShader_FlatMaterialShadesZero(t *testing.T) {
	mat := material.NewPhong(core.Vec3{}, core.Vec3{}, 1)
	si := sphereHit(t, mat)

	result := CurvatureShader{}.Shade(si, nil, core.NewVec3(0, 0, 1), noOccluder{})
	assert.Equal(t, 0.0, result.X)
}

func TestCurvatureShader_NoiseBumpedMaterialVariesFromFlat(t *testing.T) {
	flatMat := material.NewPhong(core.Vec3{}, core.Vec3{}, 1)
	flatSi := sphereHit(t, flatMat)

	bumpedBase := material.NewPhong(core.Vec3{}, core.Vec3{}, 1)
	bumpedBase.Noise = noise.NewRidge(noise.Config{Scale: 4, Strength: 0.6, Eps: 1e-3}, 7)
	bumpedSi := sphereHit(t, bumpedBase)

	flatResult := CurvatureShader{}.Shade(flatSi, nil, core.NewVec3(0, 0, 1), noOccluder{})
	bumpedResult := CurvatureShader{}.Shade(bumpedSi, nil, core.NewVec3(0, 0, 1), noOccluder{})
	assert.Greater(t, bumpedResult.X, flatResult.X)
}

func TestDiffShader_RoutesByLeftRightPattern(t *testing.T) {
	leftMat := material.NewEmissive(core.NewVec3(1, 0, 0))
	rightMat := material.NewEmissive(core.NewVec3(0, 1, 0))

	leftSphere := geometry.NewSphere(core.NewVec3(-2, 0, -5), 1, leftMat)
	rightSphere := geometry.NewSphere(core.NewVec3(2, 0, -5), 1, rightMat)

	leftRay := core.NewRay(core.NewVec3(-2, 0, 0), core.NewVec3(0, 0, -1))
	rightRay := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1))

	leftSi, _ := leftSphere.Hit(leftRay, 0.001, 1000)
	rightSi, _ := rightSphere.Hit(rightRay, 0.001, 1000)

	diff := DiffShader{A: NormalShader{}, B: DepthShader{}, Pattern: PatternLeftRight}

	leftResult := diff.ShadeMultipleLights(leftSi, nil, core.NewVec3(0, 0, 1), noOccluder{})
	rightResult := diff.ShadeMultipleLights(rightSi, nil, core.NewVec3(0, 0, 1), noOccluder{})
	assert.NotEqual(t, leftResult, rightResult)
}
