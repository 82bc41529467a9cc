// Package shading implements the Blinn-Phong reference shading model plus a
// family of diagnostic shaders (normal, depth, dot-product, curvature,
// diff) that share the same Shader contract so they can be swapped for
// debugging and comparison.
package shading

import (
	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/lights"
	"github.com/nullstride/tracer/pkg/material"
)

// Occluder is the scene capability shading needs for shadow rays, kept
// narrow so this package never imports pkg/scene directly.
type Occluder interface {
	Occluded(origin, direction core.Vec3, maxDist float64) bool
}

// Shader is implemented by the Blinn-Phong model and every diagnostic
// variant.
type Shader interface {
	Shade(hit *material.SurfaceInteraction, light lights.Light, viewDir core.Vec3, scene Occluder) core.Vec3
	ShadeMultipleLights(hit *material.SurfaceInteraction, lightList []lights.Light, viewDir core.Vec3, scene Occluder) core.Vec3
}

const shadowBias = 1e-4
