package meshlet

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshprep/pkg/mesh"
)

// dedupShape appends the unique corners of shape to b.Vertices and returns
// tris extended with one triple of global vertex indices per triangle.
// The lookup table lives for one shape only, so equal corners in different
// shapes produce distinct vertices.
func (b *Builder) dedupShape(m *mesh.RawMesh, shape *mesh.Shape, tris [][3]uint32) [][3]uint32 {
	lookup := make(map[VertexKey]uint32, len(shape.Triangles)*3)

	for _, tri := range shape.Triangles {
		var out [3]uint32
		for c := 0; c < 3; c++ {
			key := VertexKey{
				Position: tri.Position[c],
				Normal:   tri.Normal[c],
				TexCoord: tri.TexCoord[c],
				Material: tri.Material,
			}
			idx, ok := lookup[key]
			if !ok {
				idx = uint32(len(b.Vertices))
				b.Vertices = append(b.Vertices, b.newVertex(m, key))
				lookup[key] = idx
			}
			out[c] = idx
		}
		tris = append(tris, out)
	}
	return tris
}

// newVertex fetches the attributes named by key. Missing or out-of-range
// attributes default to zero.
func (b *Builder) newVertex(m *mesh.RawMesh, key VertexKey) GPUVertex {
	pos, _ := m.Position(key.Position)
	nrm, _ := m.Normal(key.Normal)
	uv, _ := m.TexCoord(key.TexCoord)

	material := key.Material
	if material < 0 {
		material = mesh.NoMaterial
	} else {
		material += b.materialOffset
	}

	return GPUVertex{
		Position: mgl32.Vec4{pos[0], pos[1], pos[2], 1},
		Normal:   mgl32.Vec4{nrm[0], nrm[1], nrm[2], 0},
		TexCoord: mgl32.Vec4{uv[0], uv[1], 0, 0},
		Material: [4]int32{material, 0, 0, 0},
	}
}
