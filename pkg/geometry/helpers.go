package geometry

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
)

// referenceTangent returns a unit vector orthogonal to axis, used to build a
// stable tangent basis for azimuthal UV parameterization. Falls back to the
// X axis when axis is nearly aligned with Y, matching the degeneracy guard
// used throughout this renderer's tangent-basis construction.
func referenceTangent(axis core.Vec3) core.Vec3 {
	helper := core.NewVec3(0, 1, 0)
	if math.Abs(axis.Dot(helper)) > 0.999 {
		helper = core.NewVec3(1, 0, 0)
	}
	return axis.Cross(helper).Normalize()
}
