package meshlet

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshprep/pkg/atlas"
)

func testAtlas() *atlas.Atlas {
	return &atlas.Atlas{
		Resolution: image.Pt(8, 4),
		Channels:   4,
		Layers:     1,
		Blocks: []atlas.TextureBlock{
			{Start: image.Pt(0, 0), Width: 4, Height: 4},
			{Start: image.Pt(4, 0), Width: 2, Height: 2},
		},
	}
}

func vertexWithUV(material int32, u, v float32) GPUVertex {
	return GPUVertex{
		TexCoord: mgl32.Vec4{u, v, 0, 0},
		Material: [4]int32{material, 0, 0, 0},
	}
}

func TestRemapUVsRoundTrip(t *testing.T) {
	a := testAtlas()
	verts := []GPUVertex{
		vertexWithUV(1, 0, 0),
		vertexWithUV(1, 1, 1),
		vertexWithUV(0, 0.5, 0.5),
		vertexWithUV(-1, 0.3, 0.7),
	}
	if err := RemapUVs(verts, a); err != nil {
		t.Fatalf("RemapUVs() error: %v", err)
	}

	tests := []struct {
		name  string
		index int
		u, v  float32
	}{
		{"block start", 0, 4.0 / 8, 0},
		{"block end", 1, 6.0 / 8, 2.0 / 4},
		{"block centre", 2, 2.0 / 8, 2.0 / 4},
		{"no material untouched", 3, 0.3, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := verts[tt.index].TexCoord
			if uv[0] != tt.u || uv[1] != tt.v {
				t.Errorf("uv = (%v, %v), want (%v, %v)", uv[0], uv[1], tt.u, tt.v)
			}
		})
	}
}

func TestRemapUVsMissingBlock(t *testing.T) {
	verts := []GPUVertex{vertexWithUV(5, 0, 0)}
	if err := RemapUVs(verts, testAtlas()); err == nil {
		t.Error("RemapUVs() with unknown material returned nil error")
	}
}

func TestBuilderRemapUVs(t *testing.T) {
	b := mustBuilder(t, 64, 124)
	b.Vertices = append(b.Vertices, vertexWithUV(0, 1, 1))
	if err := b.RemapUVs(testAtlas()); err != nil {
		t.Fatalf("RemapUVs() error: %v", err)
	}
	if uv := b.Vertices[0].TexCoord; uv[0] != 0.5 || uv[1] != 1 {
		t.Errorf("uv = %v, want (0.5, 1)", uv)
	}
}
