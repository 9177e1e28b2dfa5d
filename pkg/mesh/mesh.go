// Package mesh defines the decoded triangle mesh consumed by the preprocessing core.
package mesh

// Component counts of the flat attribute arrays.
const (
	PositionComponents = 3
	NormalComponents   = 3
	TexCoordComponents = 2
)

// NoIndex marks an absent attribute reference in a Triangle.
const NoIndex int32 = -1

// NoMaterial marks geometry without a material (ground planes, debug shapes).
const NoMaterial int32 = -1

// Triangle references one attribute entry per corner plus the material
// shared by all three corners.
type Triangle struct {
	Position [3]int32
	Normal   [3]int32
	TexCoord [3]int32
	Material int32
}

// Shape is a named group of triangles.
type Shape struct {
	Name      string
	Triangles []Triangle
}

// RawMesh holds flat attribute arrays and the shapes indexing them.
// Indices are raw vertex indices: position i lives at Positions[3*i : 3*i+3].
type RawMesh struct {
	Positions []float32
	Normals   []float32
	TexCoords []float32
	Shapes    []Shape
}

// PositionCount returns the number of complete positions.
func (m *RawMesh) PositionCount() int {
	return len(m.Positions) / PositionComponents
}

// TriangleCount returns the total number of triangles across all shapes.
func (m *RawMesh) TriangleCount() int {
	n := 0
	for i := range m.Shapes {
		n += len(m.Shapes[i].Triangles)
	}
	return n
}

// Position returns position idx, or false if idx is out of range.
func (m *RawMesh) Position(idx int32) ([3]float32, bool) {
	return fetch3(m.Positions, idx)
}

// Normal returns normal idx, or false if idx is absent or out of range.
func (m *RawMesh) Normal(idx int32) ([3]float32, bool) {
	return fetch3(m.Normals, idx)
}

// TexCoord returns texture coordinate idx, or false if idx is absent or out of range.
func (m *RawMesh) TexCoord(idx int32) ([2]float32, bool) {
	if idx < 0 {
		return [2]float32{}, false
	}
	off := int(idx) * TexCoordComponents
	if off+TexCoordComponents > len(m.TexCoords) {
		return [2]float32{}, false
	}
	return [2]float32{m.TexCoords[off], m.TexCoords[off+1]}, true
}

func fetch3(data []float32, idx int32) ([3]float32, bool) {
	if idx < 0 {
		return [3]float32{}, false
	}
	off := int(idx) * 3
	if off+3 > len(data) {
		return [3]float32{}, false
	}
	return [3]float32{data[off], data[off+1], data[off+2]}, true
}
