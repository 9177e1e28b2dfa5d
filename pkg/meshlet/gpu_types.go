package meshlet

import (
	"encoding/binary"
	"math"
)

// Storage-buffer strides in bytes (std430).
const (
	VertexStride     = 64
	DescriptorStride = 48
)

// MarshalVertices packs vertices for GPU upload:
// vec4 position, vec4 normal, vec4 uv, ivec4 material.
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, len(vertices)*VertexStride)
	for i := range vertices {
		v := &vertices[i]
		b := buf[i*VertexStride:]
		putVec4(b[0:16], v.Position)
		putVec4(b[16:32], v.Normal)
		putVec4(b[32:48], v.TexCoord)
		for c := 0; c < 4; c++ {
			binary.LittleEndian.PutUint32(b[48+c*4:], uint32(v.Material[c]))
		}
	}
	return buf
}

// MarshalDescriptors packs meshlet descriptors for GPU upload. The sphere
// starts at offset 32 to satisfy vec4 alignment; bytes 20..31 are padding.
func MarshalDescriptors(meshlets []Descriptor) []byte {
	buf := make([]byte, len(meshlets)*DescriptorStride)
	for i := range meshlets {
		d := &meshlets[i]
		b := buf[i*DescriptorStride:]
		binary.LittleEndian.PutUint32(b[0:4], d.VertexCount)
		binary.LittleEndian.PutUint32(b[4:8], d.PrimCount)
		binary.LittleEndian.PutUint32(b[8:12], d.VertexBegin)
		binary.LittleEndian.PutUint32(b[12:16], d.PrimBegin)
		binary.LittleEndian.PutUint32(b[16:20], d.ModelID)
		binary.LittleEndian.PutUint32(b[32:36], math.Float32bits(d.Sphere.Center[0]))
		binary.LittleEndian.PutUint32(b[36:40], math.Float32bits(d.Sphere.Center[1]))
		binary.LittleEndian.PutUint32(b[40:44], math.Float32bits(d.Sphere.Center[2]))
		binary.LittleEndian.PutUint32(b[44:48], math.Float32bits(d.Sphere.Radius))
	}
	return buf
}

// MarshalVertexIndices packs the global vertex-index array.
func MarshalVertexIndices(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

func putVec4(b []byte, v [4]float32) {
	for c := 0; c < 4; c++ {
		binary.LittleEndian.PutUint32(b[c*4:], math.Float32bits(v[c]))
	}
}
