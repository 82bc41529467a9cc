package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nullstride/tracer/pkg/core"
)

func TestPerlin_DeterministicForSeed(t *testing.T) {
	cfg := Config{Scale: 1.0, Strength: 1.0, Eps: 1e-3}
	a := NewPerlin(cfg, 7)
	b := NewPerlin(cfg, 7)
	p := core.NewVec3(1.2, 3.4, 5.6)
	assert.Equal(t, a.Value(p), b.Value(p))
}

func TestFBM_BoundedAfterNormalization(t *testing.T) {
	cfg := DefaultConfig()
	f := NewFBM(cfg, 5, 2.0, 0.5, 1)
	for _, p := range []core.Vec3{{X: 0.1, Y: 0.2, Z: 0.3}, {X: 5, Y: -3, Z: 2}} {
		v := f.Value(p)
		assert.GreaterOrEqual(t, v, -1.5)
		assert.LessOrEqual(t, v, 1.5)
	}
}

func TestRidge_NonNegative(t *testing.T) {
	r := NewRidge(DefaultConfig(), 3)
	v := r.Value(core.NewVec3(0.5, 0.5, 0.5))
	assert.GreaterOrEqual(t, v, 0.0)
}

func TestVoronoi_ZeroAtFeaturePoint(t *testing.T) {
	v := NewVoronoi(DefaultConfig(), 42)
	p := core.NewVec3(3.3, -1.1, 0.7)
	d1 := v.Value(p)
	d2 := v.Value(p.Add(core.NewVec3(0.01, 0, 0)))
	assert.NotEqual(t, d1, d2)
	assert.GreaterOrEqual(t, d1, 0.0)

	feature := v.hash(3, -2, 0)
	assert.InDelta(t, 0.0, v.Value(feature), 1e-12)
}

func TestSimplex_SmoothAcrossSmallStep(t *testing.T) {
	s := NewSimplex(DefaultConfig(), 9)
	a := s.Value(core.NewVec3(1, 1, 1))
	b := s.Value(core.NewVec3(1.001, 1, 1))
	assert.InDelta(t, a, b, 0.1)
}

func TestPerturbNormal_PreservesUnitLength(t *testing.T) {
	field := NewPerlin(DefaultConfig(), 1)
	n := core.NewVec3(0, 1, 0)
	perturbed := PerturbNormal(field, 0.5, 1e-3, core.NewVec3(1, 2, 3), n)
	assert.InDelta(t, 1.0, perturbed.Length(), 1e-9)
}

func TestPerturbNormal_NoNoiseMeansNoChange(t *testing.T) {
	field := constField{value: 0.5}
	n := core.NewVec3(0, 1, 0)
	perturbed := PerturbNormal(field, 0.5, 1e-3, core.NewVec3(1, 2, 3), n)
	assert.True(t, perturbed.Equals(n))
}

type constField struct{ value float64 }

func (c constField) Value(core.Vec3) float64 { return c.value }
