package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-9)

	zero := NewVec3(0, 0, 0).Normalize()
	assert.True(t, zero.IsZero())
}

func TestVec3_DotCross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	assert.Equal(t, 0.0, x.Dot(y))
	assert.True(t, x.Cross(y).Equals(NewVec3(0, 0, 1)))
}

func TestVec3_Rotate_AroundOwnAxis(t *testing.T) {
	axis := NewVec3(0, 0, 1)
	v := axis.Multiply(2)
	rotated := v.Rotate(axis, math.Pi/3)
	assert.True(t, rotated.Equals(v))
}

func TestVec3_Rotate_QuarterTurn(t *testing.T) {
	v := NewVec3(1, 0, 0)
	axis := NewVec3(0, 0, 1)
	rotated := v.Rotate(axis, math.Pi/2)
	assert.InDelta(t, 0, rotated.X, 1e-9)
	assert.InDelta(t, 1, rotated.Y, 1e-9)
}

func TestReflect_PreservesLength(t *testing.T) {
	d := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	r := Reflect(d, n)
	assert.InDelta(t, d.Length(), r.Length(), 1e-9)
	assert.InDelta(t, -d.Dot(n), r.Dot(n), 1e-9)
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Grazing ray exiting a dense medium (ior 1.5) into air (ior 1.0)
	// at an angle beyond the critical angle must report TIR.
	n := NewVec3(0, 0, 1)
	d := NewVec3(math.Sin(1.2), 0, -math.Cos(1.2)).Normalize()
	_, ok := Refract(d, n, 1.5, 1.0)
	assert.False(t, ok)
}

func TestRefract_NormalIncidencePassesUnbent(t *testing.T) {
	n := NewVec3(0, 0, 1)
	d := NewVec3(0, 0, -1)
	refracted, ok := Refract(d, n, 1.0, 1.5)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, refracted.Length(), 1e-9)
	assert.True(t, refracted.Equals(d))
}

func TestLerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(10, 0, 0)
	assert.True(t, Lerp(a, b, 0.5).Equals(NewVec3(5, 0, 0)))
}
