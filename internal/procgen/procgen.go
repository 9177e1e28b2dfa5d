// Package procgen builds deterministic meshes and materials for exercising
// the preprocessing pipeline without file loaders.
package procgen

import (
	"fmt"

	"github.com/Faultbox/meshprep/internal/config"
	"github.com/Faultbox/meshprep/internal/preprocess"
	"github.com/Faultbox/meshprep/pkg/atlas"
	"github.com/Faultbox/meshprep/pkg/mesh"
)

// Scene builds the ground plane followed by checker-textured cubes and
// solid-colour cubes as described by cfg.
func Scene(cfg config.SceneConfig, channels int) []preprocess.Model {
	var models []preprocess.Model

	if cfg.GridSize > 0 {
		models = append(models, preprocess.Model{Name: "ground", Mesh: Grid(cfg.GridSize, 1)})
	}

	for i := 0; i < cfg.Cubes; i++ {
		size := max(cfg.TextureSize>>i, 2)
		models = append(models, preprocess.Model{
			Name: fmt.Sprintf("cube_%02d", i),
			Mesh: Cube(float32(2*i), 0.5, 0, 0.5),
			Materials: []atlas.Material{{
				Name: fmt.Sprintf("checker_%d", size),
				Textures: []atlas.Texture{
					Checker(size, size, 4, channels),
					Solid(channels, 128, 128, 255, 255),
				},
			}},
		})
	}

	for i := 0; i < cfg.SolidMaterial; i++ {
		shade := byte(64 + 48*i)
		models = append(models, preprocess.Model{
			Name: fmt.Sprintf("solid_%02d", i),
			Mesh: Cube(float32(2*i), 0.5, 3, 0.5),
			Materials: []atlas.Material{{
				Name:     fmt.Sprintf("solid_%d", i),
				Textures: []atlas.Texture{Solid(channels, shade, 255-shade, shade/2, 255)},
			}},
		})
	}
	return models
}

// Grid returns an n x n quad ground plane on XZ with spacing step and no material.
func Grid(n int, step float32) *mesh.RawMesh {
	m := &mesh.RawMesh{
		Normals: []float32{0, 1, 0},
	}
	row := int32(n + 1)
	for z := 0; z <= n; z++ {
		for x := 0; x <= n; x++ {
			m.Positions = append(m.Positions, float32(x)*step, 0, float32(z)*step)
			m.TexCoords = append(m.TexCoords, float32(x)/float32(n), float32(z)/float32(n))
		}
	}

	tris := make([]mesh.Triangle, 0, 2*n*n)
	for z := int32(0); z < int32(n); z++ {
		for x := int32(0); x < int32(n); x++ {
			i := z*row + x
			for _, c := range [][3]int32{{i, i + row, i + 1}, {i + 1, i + row, i + row + 1}} {
				tris = append(tris, mesh.Triangle{
					Position: c,
					Normal:   [3]int32{0, 0, 0},
					TexCoord: c,
					Material: mesh.NoMaterial,
				})
			}
		}
	}
	m.Shapes = []mesh.Shape{{Name: "ground", Triangles: tris}}
	return m
}

// Cube returns an axis-aligned cube centred at (cx, cy, cz) with half-extent h.
// Each face is its own shape using material 0.
func Cube(cx, cy, cz, h float32) *mesh.RawMesh {
	m := &mesh.RawMesh{
		Normals: []float32{
			-1, 0, 0, 1, 0, 0,
			0, -1, 0, 0, 1, 0,
			0, 0, -1, 0, 0, 1,
		},
		TexCoords: []float32{0, 0, 1, 0, 1, 1, 0, 1},
	}
	for i := 0; i < 8; i++ {
		m.Positions = append(m.Positions,
			cx+sign(i&1)*h,
			cy+sign(i>>1&1)*h,
			cz+sign(i>>2&1)*h,
		)
	}

	faces := []struct {
		name   string
		normal int32
		quad   [4]int32
	}{
		{"-x", 0, [4]int32{0, 4, 6, 2}},
		{"+x", 1, [4]int32{5, 1, 3, 7}},
		{"-y", 2, [4]int32{0, 1, 5, 4}},
		{"+y", 3, [4]int32{6, 7, 3, 2}},
		{"-z", 4, [4]int32{1, 0, 2, 3}},
		{"+z", 5, [4]int32{4, 5, 7, 6}},
	}
	for _, f := range faces {
		n := [3]int32{f.normal, f.normal, f.normal}
		m.Shapes = append(m.Shapes, mesh.Shape{
			Name: f.name,
			Triangles: []mesh.Triangle{
				{Position: [3]int32{f.quad[0], f.quad[1], f.quad[2]}, Normal: n, TexCoord: [3]int32{0, 1, 2}},
				{Position: [3]int32{f.quad[0], f.quad[2], f.quad[3]}, Normal: n, TexCoord: [3]int32{0, 2, 3}},
			},
		})
	}
	return m
}

// Checker returns a w x h two-tone checkerboard with cells of the given size.
func Checker(w, h, cell, channels int) atlas.Texture {
	t := atlas.Texture{Width: w, Height: h, Channels: channels, Pixels: make([]byte, w*h*channels)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(48)
			if (x/cell+y/cell)%2 == 0 {
				v = 208
			}
			off := (y*w + x) * channels
			for c := 0; c < channels; c++ {
				t.Pixels[off+c] = v
			}
			if channels == 4 {
				t.Pixels[off+3] = 255
			}
		}
	}
	return t
}

// Solid returns a 1x1 texture holding the first channels components of rgba.
func Solid(channels int, r, g, b, a byte) atlas.Texture {
	rgba := [4]byte{r, g, b, a}
	px := make([]byte, channels)
	copy(px, rgba[:])
	return atlas.Texture{Width: 1, Height: 1, Channels: channels, Pixels: px}
}

func sign(bit int) float32 {
	if bit == 0 {
		return -1
	}
	return 1
}
