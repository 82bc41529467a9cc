package noise

import "github.com/nullstride/tracer/pkg/core"

// PerturbNormal applies the renderer's standard noise-driven normal
// perturbation: sample the field at the hit point and at two small steps
// along an orthonormal tangent basis (T, B) around n, then bend n away
// from the directions of increasing noise value.
func PerturbNormal(field Field, strength, eps float64, p, n core.Vec3) core.Vec3 {
	t, b := TangentBasis(n)

	h0 := field.Value(p)
	ht := field.Value(p.Add(t.Multiply(eps)))
	hb := field.Value(p.Add(b.Multiply(eps)))

	perturbed := n.
		Subtract(t.Multiply(strength * (ht - h0) / eps)).
		Subtract(b.Multiply(strength * (hb - h0) / eps))

	return perturbed.Normalize()
}

// TangentBasis builds an orthonormal (T, B) basis around n, choosing a
// helper axis that avoids the degenerate case where n is nearly aligned
// with Y (use X instead).
func TangentBasis(n core.Vec3) (t, b core.Vec3) {
	helper := core.NewVec3(0, 1, 0)
	if n.Y > 0.999 || n.Y < -0.999 {
		helper = core.NewVec3(1, 0, 0)
	}
	t = helper.Cross(n).Normalize()
	b = n.Cross(t)
	return
}
