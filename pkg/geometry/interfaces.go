// Package geometry implements ray-primitive intersection for the seven
// supported shapes (sphere, plane, triangle, quad, box, cylinder, torus),
// each producing a consistent normal/UV/tangent convention via
// material.SurfaceInteraction.
package geometry

import (
	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/material"
)

// Shape is implemented by every primitive. Hit returns the nearest
// intersection with ray parameter in (tMin, tMax], or (nil, false) on a miss.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool)
}
