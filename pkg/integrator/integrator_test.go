package integrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/geometry"
	"github.com/nullstride/tracer/pkg/lights"
	"github.com/nullstride/tracer/pkg/material"
	"github.com/nullstride/tracer/pkg/scene"
	"github.com/nullstride/tracer/pkg/shading"
)

func newTestScene(t *testing.T) *scene.Scene {
	t.Helper()
	cam := scene.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 60, 40, 30)
	s := scene.NewScene(cam)
	s.Lights = append(s.Lights, lights.NewAmbient(core.NewVec3(0.2, 0.2, 0.2)))
	s.Lights = append(s.Lights, lights.NewPoint(core.NewVec3(2, 2, 0), core.NewVec3(1, 1, 1)))
	return s
}

func TestCastRay_DepthZeroReturnsBlack(t *testing.T) {
	s := newTestScene(t)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	result := CastRay(ray, 0, shading.BlinnPhong{}, s)
	assert.Equal(t, core.Vec3{}, result)
}

func TestCastRay_MissReturnsBackground(t *testing.T) {
	s := newTestScene(t)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	result := CastRay(ray, 4, shading.BlinnPhong{}, s)
	assert.Equal(t, s.Background(ray.Direction), result)
}

func TestCastRay_OpaqueMatteStopsRecursion(t *testing.T) {
	s := newTestScene(t)
	s.Primitives = append(s.Primitives, geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.NewPhong(core.NewVec3(0.8, 0.1, 0.1), core.NewVec3(1, 1, 1), 32)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	result := CastRay(ray, 4, shading.BlinnPhong{}, s)
	assert.Greater(t, result.X, 0.0)
}

func TestCastRay_MirrorReflectsBackgroundColor(t *testing.T) {
	s := newTestScene(t)
	s.Primitives = append(s.Primitives, geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.NewMirror(core.NewVec3(1, 1, 1), 1.0)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	result := CastRay(ray, 4, shading.BlinnPhong{}, s)
	assert.True(t, result.Length() >= 0)

	// The bounce leaves straight back along +z and misses everything, so the
	// full background color is added on top of the local shading.
	bg := s.Background(core.NewVec3(0, 0, 1))
	assert.GreaterOrEqual(t, result.X, bg.X)
	assert.GreaterOrEqual(t, result.Y, bg.Y)
	assert.GreaterOrEqual(t, result.Z, bg.Z)
}

func TestCastRay_GlassTransmitsThroughSphere(t *testing.T) {
	s := newTestScene(t)
	s.Primitives = append(s.Primitives, geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.NewDielectric(core.NewVec3(1, 1, 1), 1.5, 0.9)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	result := CastRay(ray, 4, shading.BlinnPhong{}, s)
	assert.True(t, result.X >= 0 && result.X <= 1)
}

func TestCastRay_TotalInternalReflectionFallsBackToReflection(t *testing.T) {
	s := newTestScene(t)
	s.Primitives = append(s.Primitives, geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.NewDielectric(core.NewVec3(1, 1, 1), 2.4, 1.0)))

	grazing := core.NewRay(core.NewVec3(0, 0.98, 0), core.NewVec3(0, 0, -1))
	result := CastRay(grazing, 4, shading.BlinnPhong{}, s)
	assert.True(t, result.X >= 0)
}

func TestCastRay_ReflectionBiasOffsetsAwayFromSurface(t *testing.T) {
	s := newTestScene(t)
	mat := material.NewMirror(core.NewVec3(1, 1, 1), 1.0)
	si := &material.SurfaceInteraction{
		Hit: core.GeometryHit{
			T:      5,
			Point:  core.NewVec3(0, 0, -4),
			Normal: core.NewVec3(0, 0, 1),
		},
		Material: mat,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	reflected := reflectRay(ray, si, si.Hit.Normal, si.Hit.Normal, 1e-3)
	assert.Greater(t, reflected.Origin.Z, si.Hit.Point.Z)
}
