// Package lights implements the five light variants named in the data
// model: Point, Ambient, Directional, Spot, and Area. Each implements
// Light, exposing enough geometric information for the shading package to
// trace a shadow ray and enough radiometric information to weight the
// contribution.
package lights

import "github.com/nullstride/tracer/pkg/core"

// Light is implemented by every light variant.
type Light interface {
	// LightVector returns the unit direction from point toward the light
	// and the distance to travel along it before reaching the light.
	// Directional lights return math.Inf(1) for distance since they have
	// no finite position.
	LightVector(point core.Vec3) (dir core.Vec3, dist float64)

	// IntensityAt returns the radiance arriving at point from this light,
	// including any distance or cone falloff.
	IntensityAt(point core.Vec3) core.Vec3

	// IsAmbient reports whether this light should be added directly
	// without a shadow ray (ambient terms have no direction to occlude).
	IsAmbient() bool
}
