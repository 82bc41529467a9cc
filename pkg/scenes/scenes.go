// Package scenes builds the example scenes used for end-to-end testing and
// the CLI's demo renders: a Cornell-box-style room, a hard-shadow test, a
// glass ball, a total-internal-reflection corner case, and a noise-bumped
// sphere.
package scenes

import (
	"fmt"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/geometry"
	"github.com/nullstride/tracer/pkg/lights"
	"github.com/nullstride/tracer/pkg/loaders"
	"github.com/nullstride/tracer/pkg/material"
	"github.com/nullstride/tracer/pkg/noise"
	"github.com/nullstride/tracer/pkg/scene"
)

// Cornell builds a classic Cornell-box room: white floor/ceiling/back wall,
// red left wall, green right wall, a diffuse block and a mirror sphere, lit
// by a single area light set into the ceiling.
func Cornell(width, height int) *scene.Scene {
	const box = 555.0
	cam := scene.LookAt(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), core.NewVec3(0, 1, 0), 40, width, height)
	s := scene.NewScene(cam)

	white := material.NewPhong(core.NewVec3(0.73, 0.73, 0.73), core.Vec3{}, 1)
	red := material.NewPhong(core.NewVec3(0.65, 0.05, 0.05), core.Vec3{}, 1)
	green := material.NewPhong(core.NewVec3(0.12, 0.45, 0.15), core.Vec3{}, 1)

	floor := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(box, 0, 0), core.NewVec3(0, 0, box), white)
	ceiling := geometry.NewQuad(core.NewVec3(0, box, 0), core.NewVec3(box, 0, 0), core.NewVec3(0, 0, box), white)
	back := geometry.NewQuad(core.NewVec3(0, 0, box), core.NewVec3(box, 0, 0), core.NewVec3(0, box, 0), white)
	left := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, box), core.NewVec3(0, box, 0), red)
	right := geometry.NewQuad(core.NewVec3(box, 0, 0), core.NewVec3(0, 0, box), core.NewVec3(0, box, 0), green)

	block := geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white)
	mirrorSphere := geometry.NewSphere(core.NewVec3(370, 90, 350), 90, material.NewMirror(core.NewVec3(1, 1, 1), 0.9))

	s.Primitives = []geometry.Shape{floor, ceiling, back, left, right, block, mirrorSphere}

	s.Lights = []lights.Light{
		lights.NewAmbient(core.NewVec3(0.05, 0.05, 0.05)),
		lights.NewArea(
			lights.PlanarSurface{Corner: core.NewVec3(213, box - 1, 227), U: core.NewVec3(130, 0, 0), V: core.NewVec3(0, 0, 105)},
			core.NewVec3(15, 15, 15),
		),
	}
	return s
}

// ShadowTest builds a sphere casting a hard shadow from a single point light
// onto a ground plane, for verifying shadow-ray occlusion.
func ShadowTest(width, height int) *scene.Scene {
	cam := scene.LookAt(core.NewVec3(0, 3, 8), core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), 50, width, height)
	s := scene.NewScene(cam)

	ground := material.NewPhong(core.NewVec3(0.6, 0.6, 0.6), core.Vec3{}, 1)
	sphereMat := material.NewPhong(core.NewVec3(0.8, 0.2, 0.2), core.NewVec3(1, 1, 1), 64)

	s.Primitives = []geometry.Shape{
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, sphereMat),
	}
	s.Lights = []lights.Light{
		lights.NewAmbient(core.NewVec3(0.1, 0.1, 0.1)),
		lights.NewPoint(core.NewVec3(5, 8, 2), core.NewVec3(400, 400, 400)),
	}
	return s
}

// GlassBall builds a single dielectric sphere over a checkered ground plane,
// to exercise refraction and Fresnel-tinted specular highlights.
func GlassBall(width, height int) *scene.Scene {
	cam := scene.LookAt(core.NewVec3(0, 2, 6), core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), 45, width, height)
	s := scene.NewScene(cam)

	checker := material.NewChecker(
		*material.NewPhong(core.NewVec3(0.9, 0.9, 0.9), core.Vec3{}, 1),
		core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.2, 0.2), 8,
	)
	glass := material.NewDielectric(core.NewVec3(1, 1, 1), 1.5, 0.95)

	// A quad ground plane, rather than an infinite Plane, so the checker
	// material has (u,v) coordinates to alternate on - Plane never computes
	// surface UVs.
	ground := geometry.NewQuad(core.NewVec3(-20, 0, -20), core.NewVec3(40, 0, 0), core.NewVec3(0, 0, 40), checker)

	s.Primitives = []geometry.Shape{
		ground,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
	}
	s.Lights = []lights.Light{
		lights.NewAmbient(core.NewVec3(0.1, 0.1, 0.1)),
		lights.NewPoint(core.NewVec3(-4, 6, 4), core.NewVec3(300, 300, 300)),
	}
	return s
}

// TIRCorner builds a high-IOR glass sphere viewed at a grazing angle chosen
// to force total internal reflection on the far side of the sphere, to
// exercise the integrator's TIR-to-reflection fallback.
func TIRCorner(width, height int) *scene.Scene {
	cam := scene.LookAt(core.NewVec3(0, 0.95, 4), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 35, width, height)
	s := scene.NewScene(cam)

	glass := material.NewDielectric(core.NewVec3(0.9, 0.95, 1.0), 2.4, 1.0)
	s.Primitives = []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, glass),
	}
	s.Lights = []lights.Light{
		lights.NewAmbient(core.NewVec3(0.1, 0.1, 0.1)),
		lights.NewPoint(core.NewVec3(3, 4, 2), core.NewVec3(200, 200, 200)),
	}
	return s
}

// NoiseBump builds a rock-material sphere whose shading normal is perturbed
// by ridge noise, to exercise normal perturbation and the procedural
// materials together.
func NoiseBump(width, height int) *scene.Scene {
	cam := scene.LookAt(core.NewVec3(0, 1.5, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 45, width, height)
	s := scene.NewScene(cam)

	ridge := noise.NewRidge(noise.Config{Scale: 4, Strength: 0.6, Eps: 1e-3}, 7)
	base := material.NewPhong(core.NewVec3(0.5, 0.45, 0.4), core.NewVec3(0.3, 0.3, 0.3), 16)
	base.Noise = ridge
	rockMat := material.NewRock(*base, ridge, core.NewVec3(0.15, 0.12, 0.1), 1.5)

	ground := material.NewPhong(core.NewVec3(0.3, 0.3, 0.35), core.Vec3{}, 1)

	s.Primitives = []geometry.Shape{
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), ground),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, rockMat),
	}
	s.Lights = []lights.Light{
		lights.NewAmbient(core.NewVec3(0.1, 0.1, 0.1)),
		lights.NewPoint(core.NewVec3(-3, 4, 3), core.NewVec3(250, 250, 250)),
	}
	return s
}

// Mesh loads every triangle primitive out of a .gltf or .glb file at
// meshPath and drops them into a simple lit scene, for exercising the
// glTF mesh loader end to end.
func Mesh(width, height int, meshPath string) (*scene.Scene, error) {
	cam := scene.LookAt(core.NewVec3(0, 1.5, 4), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 45, width, height)
	s := scene.NewScene(cam)

	mat := material.NewPhong(core.NewVec3(0.7, 0.65, 0.6), core.NewVec3(0.3, 0.3, 0.3), 32)
	triangles, err := loaders.LoadMeshTriangles(meshPath, mat)
	if err != nil {
		return nil, fmt.Errorf("scenes: mesh: %w", err)
	}

	s.Primitives = make([]geometry.Shape, len(triangles))
	for i, tri := range triangles {
		s.Primitives[i] = tri
	}
	s.Lights = []lights.Light{
		lights.NewAmbient(core.NewVec3(0.15, 0.15, 0.15)),
		lights.NewPoint(core.NewVec3(-3, 4, 3), core.NewVec3(250, 250, 250)),
	}
	return s, nil
}
