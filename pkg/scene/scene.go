package scene

import (
	"fmt"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/geometry"
	"github.com/nullstride/tracer/pkg/lights"
	"github.com/nullstride/tracer/pkg/material"
)

// Background is a small capability for the environment seen by rays that
// miss every primitive: a gradient sky (default) or an environment map
// (EquirectangularSkybox).
type Background interface {
	Sample(direction core.Vec3) core.Vec3
}

// GradientSky is the default Background: a vertical lerp between a
// horizon and zenith color driven by the ray direction's Y component.
type GradientSky struct {
	Horizon core.Vec3
	Zenith  core.Vec3
}

// Sample returns the sky color in the given direction.
func (g GradientSky) Sample(direction core.Vec3) core.Vec3 {
	t := (direction.Normalize().Y + 1) / 2
	return core.Lerp(g.Horizon, g.Zenith, t)
}

// Scene owns the camera, lights, and primitives, and performs closest-hit
// aggregation across them. Scenes are built once and never mutated during
// a render; every per-ray structure produced from them is ephemeral.
type Scene struct {
	Camera     *Camera
	Lights     []lights.Light
	Primitives []geometry.Shape
	Skybox     Background
}

// NewScene creates an empty scene with a default gradient sky.
func NewScene(camera *Camera) *Scene {
	return &Scene{
		Camera: camera,
		Skybox: GradientSky{Horizon: core.NewVec3(1, 1, 1), Zenith: core.NewVec3(0.5, 0.7, 1.0)},
	}
}

// Validate checks the invariants the render driver requires before
// starting: a camera, and at least one primitive and one light.
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene has no camera")
	}
	if len(s.Primitives) == 0 {
		return fmt.Errorf("scene has no primitives")
	}
	if len(s.Lights) == 0 {
		return fmt.Errorf("scene has no lights")
	}
	return nil
}

// Intersect linearly scans every primitive, tracking the current closest
// hit, and returns the winning SurfaceInteraction. Complexity is O(N) per
// ray; acceleration structures are intentionally out of scope.
func (s *Scene) Intersect(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	var closest *material.SurfaceInteraction
	closestT := tMax

	for _, shape := range s.Primitives {
		if si, ok := shape.Hit(ray, tMin, closestT); ok {
			closest = si
			closestT = si.Hit.T
		}
	}

	return closest, closest != nil
}

// Background returns the color seen along direction when a ray hits
// nothing, degrading gracefully to the default gradient when no skybox is
// configured.
func (s *Scene) Background(direction core.Vec3) core.Vec3 {
	if s.Skybox == nil {
		return GradientSky{Zenith: core.NewVec3(0.5, 0.7, 1.0), Horizon: core.NewVec3(1, 1, 1)}.Sample(direction)
	}
	return s.Skybox.Sample(direction)
}

// LightList returns every light in the scene, for integrators that shade
// against the full light set without importing pkg/scene directly.
func (s *Scene) LightList() []lights.Light {
	return s.Lights
}

// Occluded reports whether any primitive blocks the segment from origin
// toward direction, up to maxDist. Used for shadow rays; no geometry_id
// self-exclusion is performed, relying entirely on the caller's bias offset.
func (s *Scene) Occluded(origin, direction core.Vec3, maxDist float64) bool {
	ray := core.NewRay(origin, direction)
	_, hit := s.Intersect(ray, 1e-4, maxDist-1e-4)
	return hit
}
