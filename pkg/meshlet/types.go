// Package meshlet builds bounded vertex/triangle clusters for task and mesh shading.
package meshlet

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// Hardware-facing limits. Primitive indices are stored as uint8, so a
// meshlet can address at most 256 vertices.
const (
	MinVertexLimit = 3
	MaxVertexLimit = 256
)

// DefaultLimits follows the common 64 vertex / 124 triangle meshlet layout.
var DefaultLimits = Limits{MaxVertices: 64, MaxPrimitives: 124}

// ErrInvalidLimits is returned when meshlet caps cannot be honored.
var ErrInvalidLimits = errors.New("invalid meshlet limits")

// Limits caps the size of every meshlet.
type Limits struct {
	MaxVertices   int `yaml:"max_vertices"`
	MaxPrimitives int `yaml:"max_primitives"`
}

// VertexKey identifies a unique corner within a shape.
type VertexKey struct {
	Position int32
	Normal   int32
	TexCoord int32
	Material int32
}

// GPUVertex is the storage-buffer layout of a deduplicated vertex.
// Position.W is 1, Normal.W is 0, TexCoord.ZW are unused and Material.X
// holds the global material id (negative for none).
type GPUVertex struct {
	Position mgl32.Vec4
	Normal   mgl32.Vec4
	TexCoord mgl32.Vec4
	Material [4]int32
}

// MaterialID returns the global material id of the vertex.
func (v *GPUVertex) MaterialID() int32 {
	return v.Material[0]
}

// Sphere is a bounding sphere used for GPU-side culling.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// Contains reports whether p lies inside the sphere within eps.
func (s Sphere) Contains(p mgl32.Vec3, eps float32) bool {
	return p.Sub(s.Center).Len() <= s.Radius+eps
}

// Descriptor describes one meshlet. VertexBegin indexes the vertex-index
// array and PrimBegin indexes the primitive-index array (three entries per
// triangle).
type Descriptor struct {
	VertexCount uint32
	PrimCount   uint32
	VertexBegin uint32
	PrimBegin   uint32
	ModelID     uint32
	Sphere      Sphere
}
