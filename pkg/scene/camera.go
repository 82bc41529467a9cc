package scene

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
)

// Camera is a pinhole camera. Rays are generated from normalized image
// plane coordinates (u,v) in [-0.5, 0.5], with (-0.5,-0.5) at the
// bottom-left of the frame. The image plane sits one unit ahead of Origin.
type Camera struct {
	Origin  core.Vec3
	UpHint  core.Vec3
	FovDeg  float64
	Width   int
	Height  int

	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	halfW   float64
	halfH   float64
}

// NewCamera creates a camera at origin looking along direction, with the
// given up hint, vertical field of view in degrees, and output resolution.
func NewCamera(origin, direction, upHint core.Vec3, fovDeg float64, width, height int) *Camera {
	c := &Camera{Origin: origin, UpHint: upHint, FovDeg: fovDeg, Width: width, Height: height}
	c.rebuild(direction)
	return c
}

// LookAt creates a camera at origin aimed at target.
func LookAt(origin, target, upHint core.Vec3, fovDeg float64, width, height int) *Camera {
	return NewCamera(origin, target.Subtract(origin), upHint, fovDeg, width, height)
}

// rebuild derives the right/up/forward orthonormal basis from direction and
// UpHint, guarding against UpHint nearly parallel to direction by swapping
// to an alternate up axis.
func (c *Camera) rebuild(direction core.Vec3) {
	forward := direction.Normalize()
	if forward.IsZero() {
		forward = core.NewVec3(0, 0, -1)
	}

	upHint := c.UpHint
	if upHint.IsZero() {
		upHint = core.NewVec3(0, 1, 0)
	}
	if math.Abs(forward.Dot(upHint.Normalize())) > 0.999 {
		upHint = core.NewVec3(1, 0, 0)
	}

	right := forward.Cross(upHint).Normalize()
	trueUp := right.Cross(forward).Normalize()

	c.forward = forward
	c.right = right
	c.up = trueUp

	aspect := float64(c.Width) / float64(c.Height)
	c.halfH = math.Tan(c.FovDeg * math.Pi / 180 / 2)
	c.halfW = aspect * c.halfH
}

// Forward returns the camera's unit forward direction.
func (c *Camera) Forward() core.Vec3 { return c.forward }

// Aspect returns the camera's width/height aspect ratio.
func (c *Camera) Aspect() float64 { return float64(c.Width) / float64(c.Height) }

// MakeRay returns a primary ray through normalized image coordinates (u,v).
func (c *Camera) MakeRay(u, v float64) core.Ray {
	dir := c.forward.
		Add(c.right.Multiply(u * 2 * c.halfW)).
		Add(c.up.Multiply(v * 2 * c.halfH)).
		Normalize()
	return core.NewRay(c.Origin, dir)
}

// Translate moves the camera by delta, keeping its orientation unchanged.
func (c *Camera) Translate(delta core.Vec3) {
	c.Origin = c.Origin.Add(delta)
}

// Zoom scales the field of view by factor (factor < 1 narrows the field of
// view, zooming in) and rebuilds the derived basis.
func (c *Camera) Zoom(factor float64) {
	c.FovDeg *= factor
	c.rebuild(c.forward)
}

// RotateAroundAxis rotates the camera's forward direction and up hint by
// angle radians around axis (Rodrigues rotation), then rebuilds the basis.
func (c *Camera) RotateAroundAxis(axis core.Vec3, angle float64) {
	newForward := c.forward.Rotate(axis, angle)
	c.UpHint = c.up.Rotate(axis, angle)
	c.rebuild(newForward)
}

// SetResolution updates the output resolution and rebuilds the basis, since
// aspect ratio depends on it.
func (c *Camera) SetResolution(width, height int) {
	c.Width = width
	c.Height = height
	c.rebuild(c.forward)
}
