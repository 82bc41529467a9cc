package loaders

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/material"
)

func TestLoadMeshTriangles_MissingFileReturnsError(t *testing.T) {
	_, err := LoadMeshTriangles("/nonexistent/model.glb", material.NewPhong(core.NewVec3(1, 1, 1), core.Vec3{}, 1))
	assert.Error(t, err)
}
