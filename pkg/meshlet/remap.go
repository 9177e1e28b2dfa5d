package meshlet

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshprep/pkg/atlas"
)

// RemapUVs rewrites material-local UVs into atlas space. Vertices without a
// material are left untouched.
func RemapUVs(vertices []GPUVertex, a *atlas.Atlas) error {
	res := mgl32.Vec2{float32(a.Resolution.X), float32(a.Resolution.Y)}

	for i := range vertices {
		v := &vertices[i]
		id := v.MaterialID()
		if id < 0 {
			continue
		}
		if int(id) >= len(a.Blocks) {
			return fmt.Errorf("vertex %d: material %d has no atlas block (%d blocks)", i, id, len(a.Blocks))
		}
		blk := a.Blocks[id]
		end := blk.End()
		start := mgl32.Vec2{float32(blk.Start.X) / res[0], float32(blk.Start.Y) / res[1]}
		stop := mgl32.Vec2{float32(end.X) / res[0], float32(end.Y) / res[1]}

		v.TexCoord[0] = mix(start[0], stop[0], v.TexCoord[0])
		v.TexCoord[1] = mix(start[1], stop[1], v.TexCoord[1])
	}
	return nil
}

// RemapUVs applies RemapUVs to every vertex built so far.
func (b *Builder) RemapUVs(a *atlas.Atlas) error {
	return RemapUVs(b.Vertices, a)
}

func mix(x, y, t float32) float32 {
	return x*(1-t) + y*t
}
