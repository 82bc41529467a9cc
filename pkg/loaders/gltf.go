package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/geometry"
	"github.com/nullstride/tracer/pkg/material"
)

// LoadMeshTriangles opens a .gltf or .glb file and flattens every triangle
// primitive in it into a flat slice of geometry.Triangle, all sharing mat.
// Only the POSITION and indices accessors are read; normals are recomputed
// by Triangle.Hit from the face winding rather than trusting the file's
// NORMAL attribute, since Non-goals exclude vertex-normal interpolation.
func LoadMeshTriangles(path string, mat material.Material) ([]*geometry.Triangle, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open gltf %s: %w", path, err)
	}

	var triangles []*geometry.Triangle
	for _, m := range doc.Meshes {
		for primIdx, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}

			tris, err := loadPrimitiveTriangles(doc, prim, mat)
			if err != nil {
				return nil, fmt.Errorf("loaders: mesh %q primitive %d: %w", m.Name, primIdx, err)
			}
			triangles = append(triangles, tris...)
		}
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("loaders: %s contains no triangle primitives", path)
	}
	return triangles, nil
}

func loadPrimitiveTriangles(doc *gltf.Document, prim *gltf.Primitive, mat material.Material) ([]*geometry.Triangle, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("primitive has no POSITION attribute")
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}

	verts := make([]core.Vec3, len(positions))
	for i, p := range positions {
		verts[i] = core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2]))
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(verts))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	var triangles []*geometry.Triangle
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := verts[indices[i]]
		v1 := verts[indices[i+1]]
		v2 := verts[indices[i+2]]
		triangles = append(triangles, geometry.NewTriangle(v0, v1, v2, mat))
	}
	return triangles, nil
}
