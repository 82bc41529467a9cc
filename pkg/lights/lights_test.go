package lights

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nullstride/tracer/pkg/core"
)

func TestPoint_InverseSquareFalloff(t *testing.T) {
	light := NewPoint(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))

	near := light.IntensityAt(core.NewVec3(1, 0, 0)).Luminance()
	far := light.IntensityAt(core.NewVec3(2, 0, 0)).Luminance()

	assert.InDelta(t, near/4, far, 1e-9)
	assert.False(t, light.IsAmbient())
}

func TestAmbient_ConstantEverywhere(t *testing.T) {
	light := NewAmbient(core.NewVec3(0.1, 0.1, 0.1))
	assert.Equal(t, light.IntensityAt(core.NewVec3(0, 0, 0)), light.IntensityAt(core.NewVec3(99, -5, 3)))
	assert.True(t, light.IsAmbient())
}

func TestDirectional_InfiniteDistance(t *testing.T) {
	light := NewDirectional(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1))
	_, dist := light.LightVector(core.NewVec3(0, 0, 0))
	assert.True(t, math.IsInf(dist, 1))
}

func TestSpot_ZeroOutsideCone(t *testing.T) {
	light := NewSpot(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1), math.Pi/8, math.Pi/16)
	inside := light.IntensityAt(core.NewVec3(0, 0, 0))
	outside := light.IntensityAt(core.NewVec3(10, 0, 0))

	assert.Greater(t, inside.Luminance(), 0.0)
	assert.Equal(t, 0.0, outside.Luminance())
}

func TestArea_ZeroAtGrazingSurfaceAngle(t *testing.T) {
	surface := PlanarSurface{Corner: core.NewVec3(-1, 5, -1), U: core.NewVec3(2, 0, 0), V: core.NewVec3(0, 0, 2)}
	light := NewArea(surface, core.NewVec3(1, 1, 1))

	onAxis := light.IntensityAt(core.NewVec3(0, 0, 0))
	grazing := light.IntensityAt(core.NewVec3(100, 5, 0))

	assert.Greater(t, onAxis.Luminance(), grazing.Luminance())
	assert.Equal(t, 0.0, grazing.Luminance())
}
