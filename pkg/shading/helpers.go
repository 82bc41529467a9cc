package shading

import (
	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/material"
	"github.com/nullstride/tracer/pkg/noise"
)

// shadingNormal returns the geometric normal perturbed by the material's
// noise field, if it carries one, or the geometric normal unchanged.
func shadingNormal(ms material.MaterialSample, hit *material.SurfaceInteraction) core.Vec3 {
	return shadingNormalAt(ms, hit.Hit.Normal, hit.Point())
}

// shadingNormalAt is shadingNormal generalized to an arbitrary world-space
// point p, so callers can probe the perturbed normal at points other than
// the hit itself (CurvatureShader finite-differences across p's neighbors).
func shadingNormalAt(ms material.MaterialSample, n, p core.Vec3) core.Vec3 {
	if ms.Noise == nil {
		return n
	}
	return noise.PerturbNormal(ms.Noise, ms.Noise.Strength(), ms.Noise.Eps(), p, n)
}

// shadowTrace reports whether the segment from point (offset along n by a
// bias) toward l is blocked before reaching dist.
func shadowTrace(scene Occluder, point, n, l core.Vec3, dist float64) bool {
	origin := point.Add(n.Multiply(shadowBias))
	return scene.Occluded(origin, l, dist)
}
