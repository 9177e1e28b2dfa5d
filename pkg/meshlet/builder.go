package meshlet

import (
	"fmt"

	"github.com/Faultbox/meshprep/pkg/mesh"
)

// Builder accumulates meshlet output across successive AppendMesh calls.
// Material ids of every appended mesh are shifted by the running material
// offset so they stay globally unique. A Builder is not safe for concurrent use.
type Builder struct {
	limits         Limits
	materialOffset int32

	Vertices         []GPUVertex
	VertexIndices    []uint32
	PrimitiveIndices []uint8
	Meshlets         []Descriptor
}

// MeshRange reports what a single AppendMesh call produced.
type MeshRange struct {
	ModelID        uint32
	MaterialOffset int32
	FirstVertex    int
	VertexCount    int
	FirstMeshlet   int
	MeshletCount   int
	TriangleCount  int
}

// Stats summarizes the accumulated output.
type Stats struct {
	Meshlets       int
	Vertices       int
	Triangles      int
	VertexIndices  int
	AvgVertexFill  float64
	AvgPrimFill    float64
	MaterialOffset int32
}

// NewBuilder creates a builder with the given caps.
func NewBuilder(limits Limits) (*Builder, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return &Builder{limits: limits}, nil
}

// Validate checks that the caps are addressable by uint8 primitive indices
// and can hold at least one triangle.
func (l Limits) Validate() error {
	if l.MaxVertices < MinVertexLimit || l.MaxVertices > MaxVertexLimit {
		return fmt.Errorf("%w: max vertices %d outside [%d, %d]",
			ErrInvalidLimits, l.MaxVertices, MinVertexLimit, MaxVertexLimit)
	}
	if l.MaxPrimitives < 1 {
		return fmt.Errorf("%w: max primitives %d must be positive", ErrInvalidLimits, l.MaxPrimitives)
	}
	return nil
}

// Limits returns the caps the builder was created with.
func (b *Builder) Limits() Limits {
	return b.limits
}

// MaterialOffset returns the offset that will be applied to the next mesh.
func (b *Builder) MaterialOffset() int32 {
	return b.materialOffset
}

// AppendMesh deduplicates every shape of m, packs the mesh's triangles into
// meshlets tagged with modelID and advances the material offset by
// materialCount. Calls must be made serially; output of earlier calls is
// never modified.
func (b *Builder) AppendMesh(m *mesh.RawMesh, modelID uint32, materialCount int) MeshRange {
	r := MeshRange{
		ModelID:        modelID,
		MaterialOffset: b.materialOffset,
		FirstVertex:    len(b.Vertices),
		FirstMeshlet:   len(b.Meshlets),
	}

	tris := make([][3]uint32, 0, m.TriangleCount())
	for i := range m.Shapes {
		tris = b.dedupShape(m, &m.Shapes[i], tris)
	}
	b.assemble(tris, modelID)

	r.VertexCount = len(b.Vertices) - r.FirstVertex
	r.MeshletCount = len(b.Meshlets) - r.FirstMeshlet
	r.TriangleCount = len(tris)

	b.materialOffset += int32(materialCount)
	return r
}

// Stats computes summary statistics over all meshlets built so far.
func (b *Builder) Stats() Stats {
	s := Stats{
		Meshlets:       len(b.Meshlets),
		Vertices:       len(b.Vertices),
		Triangles:      len(b.PrimitiveIndices) / 3,
		VertexIndices:  len(b.VertexIndices),
		MaterialOffset: b.materialOffset,
	}
	if s.Meshlets == 0 {
		return s
	}
	var vfill, pfill float64
	for _, d := range b.Meshlets {
		vfill += float64(d.VertexCount) / float64(b.limits.MaxVertices)
		pfill += float64(d.PrimCount) / float64(b.limits.MaxPrimitives)
	}
	s.AvgVertexFill = vfill / float64(s.Meshlets)
	s.AvgPrimFill = pfill / float64(s.Meshlets)
	return s
}

// MeshletVertices returns the global vertex indices referenced by meshlet i.
func (b *Builder) MeshletVertices(i int) []uint32 {
	d := b.Meshlets[i]
	return b.VertexIndices[d.VertexBegin : d.VertexBegin+d.VertexCount]
}

// MeshletPrimitives returns the local primitive indices of meshlet i.
func (b *Builder) MeshletPrimitives(i int) []uint8 {
	d := b.Meshlets[i]
	return b.PrimitiveIndices[d.PrimBegin : d.PrimBegin+3*d.PrimCount]
}
