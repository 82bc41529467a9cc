package core

// GeometryHit is the result of a primitive intersection test, carrying only
// geometric information. The material that produced it is attached
// separately by the caller (see material.SurfaceInteraction) so that the
// geometry package never needs to import material.
type GeometryHit struct {
	T          float64 // ray parameter, t_min < T <= t_max
	Point      Vec3    // world-space intersection point
	Normal     Vec3    // unit-length, flipped to face the incoming ray
	FrontFace  bool    // true if the ray hit the outward-facing side
	UV         Vec2    // surface parametric coordinates, valid if HasUV
	HasUV      bool
	Tangent    Vec3 // ∂p/∂u, valid if HasTangents
	Bitangent  Vec3 // ∂p/∂v, valid if HasTangents
	HasTangent bool
	GeometryID int // advisory identity of the primitive that produced the hit
}

// SetFaceNormal sets Normal and FrontFace from an outward-facing geometric
// normal, flipping the normal so it always opposes the incoming ray.
func (h *GeometryHit) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
