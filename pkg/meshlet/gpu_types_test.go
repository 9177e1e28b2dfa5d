package meshlet

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func f32At(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off : off+4]))
}

func TestMarshalVertices(t *testing.T) {
	verts := []GPUVertex{
		{},
		{
			Position: mgl32.Vec4{1, 2, 3, 1},
			Normal:   mgl32.Vec4{0, 1, 0, 0},
			TexCoord: mgl32.Vec4{0.5, 0.25, 0, 0},
			Material: [4]int32{-1, 0, 0, 0},
		},
	}
	data := MarshalVertices(verts)
	if len(data) != 2*VertexStride {
		t.Fatalf("len = %d, want %d", len(data), 2*VertexStride)
	}

	b := data[VertexStride:]
	checks := []struct {
		name string
		off  int
		want float32
	}{
		{"position.x", 0, 1},
		{"position.z", 8, 3},
		{"position.w", 12, 1},
		{"normal.y", 20, 1},
		{"uv.x", 32, 0.5},
		{"uv.y", 36, 0.25},
	}
	for _, c := range checks {
		if got := f32At(b, c.off); got != c.want {
			t.Errorf("%s = %v, want %v", c.name, got, c.want)
		}
	}
	if got := int32(binary.LittleEndian.Uint32(b[48:52])); got != -1 {
		t.Errorf("material = %d, want -1", got)
	}
}

func TestMarshalDescriptors(t *testing.T) {
	ds := []Descriptor{{
		VertexCount: 64,
		PrimCount:   124,
		VertexBegin: 128,
		PrimBegin:   744,
		ModelID:     3,
		Sphere:      Sphere{Center: mgl32.Vec3{1, -1, 2}, Radius: 4.5},
	}}
	data := MarshalDescriptors(ds)
	if len(data) != DescriptorStride {
		t.Fatalf("len = %d, want %d", len(data), DescriptorStride)
	}

	u := []uint32{64, 124, 128, 744, 3}
	for i, want := range u {
		if got := binary.LittleEndian.Uint32(data[i*4:]); got != want {
			t.Errorf("word %d = %d, want %d", i, got, want)
		}
	}
	for off := 20; off < 32; off++ {
		if data[off] != 0 {
			t.Errorf("padding byte %d = %d, want 0", off, data[off])
		}
	}
	sphere := []float32{1, -1, 2, 4.5}
	for i, want := range sphere {
		if got := f32At(data, 32+i*4); got != want {
			t.Errorf("sphere[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestMarshalVertexIndices(t *testing.T) {
	data := MarshalVertexIndices([]uint32{0, 7, 0xdeadbeef})
	if len(data) != 12 {
		t.Fatalf("len = %d, want 12", len(data))
	}
	if got := binary.LittleEndian.Uint32(data[8:]); got != 0xdeadbeef {
		t.Errorf("index 2 = %#x, want 0xdeadbeef", got)
	}
}
