// Package preprocess runs the meshlet and atlas stages over a set of models.
package preprocess

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshprep/internal/config"
	"github.com/Faultbox/meshprep/internal/logger"
	"github.com/Faultbox/meshprep/pkg/atlas"
	"github.com/Faultbox/meshprep/pkg/mesh"
	"github.com/Faultbox/meshprep/pkg/meshlet"
)

// Model is one mesh plus the materials its triangles reference by local id.
type Model struct {
	Name      string
	Mesh      *mesh.RawMesh
	Materials []atlas.Material
}

// Result holds everything handed to the GPU upload stage.
type Result struct {
	Builder *meshlet.Builder
	Atlas   *atlas.Atlas
	Meshes  []meshlet.MeshRange
	Stats   Stats
}

// Stats summarizes a run.
type Stats struct {
	Models         int           `yaml:"models"`
	Materials      int           `yaml:"materials"`
	Meshlets       int           `yaml:"meshlets"`
	Vertices       int           `yaml:"vertices"`
	Triangles      int           `yaml:"triangles"`
	AvgVertexFill  float64       `yaml:"avg_vertex_fill"`
	AvgPrimFill    float64       `yaml:"avg_primitive_fill"`
	AtlasWidth     int           `yaml:"atlas_width"`
	AtlasHeight    int           `yaml:"atlas_height"`
	AtlasLayers    int           `yaml:"atlas_layers"`
	AtlasOccupancy float64       `yaml:"atlas_occupancy"`
	Buffers        BufferSizes   `yaml:"buffers"`
	Elapsed        time.Duration `yaml:"elapsed"`
}

// BufferSizes lists the byte size of each upload buffer.
type BufferSizes struct {
	Vertices         int `yaml:"vertices"`
	Descriptors      int `yaml:"descriptors"`
	VertexIndices    int `yaml:"vertex_indices"`
	PrimitiveIndices int `yaml:"primitive_indices"`
	Atlas            int `yaml:"atlas"`
}

// Run appends every model to one meshlet builder in order (model i gets
// ModelID i), packs all materials into one atlas and remaps vertex UVs into it.
func Run(cfg *config.Config, models []Model) (*Result, error) {
	start := time.Now()
	log := logger.Named("preprocess")

	builder, err := meshlet.NewBuilder(cfg.Meshlet)
	if err != nil {
		return nil, err
	}

	res := &Result{Builder: builder, Meshes: make([]meshlet.MeshRange, 0, len(models))}
	var materials []atlas.Material

	for i, m := range models {
		raw := m.Mesh
		if raw == nil {
			raw = &mesh.RawMesh{}
		}
		r := builder.AppendMesh(raw, uint32(i), len(m.Materials))
		materials = append(materials, m.Materials...)
		res.Meshes = append(res.Meshes, r)

		log.Debug("mesh appended",
			zap.String("model", m.Name),
			zap.Uint32("modelID", r.ModelID),
			zap.Int("triangles", r.TriangleCount),
			zap.Int("vertices", r.VertexCount),
			zap.Int("meshlets", r.MeshletCount),
			zap.Int32("materialOffset", r.MaterialOffset))
	}

	a, err := atlas.Pack(materials, cfg.Atlas.Channels)
	if err != nil {
		return nil, fmt.Errorf("packing atlas: %w", err)
	}
	res.Atlas = a

	log.Debug("atlas packed",
		zap.Int("materials", len(materials)),
		zap.Int("width", a.Resolution.X),
		zap.Int("height", a.Resolution.Y),
		zap.Int("layers", a.Layers),
		zap.Float64("occupancy", a.Occupancy()))

	if err := builder.RemapUVs(a); err != nil {
		return nil, fmt.Errorf("remapping uvs: %w", err)
	}

	res.Stats = collectStats(res, len(models), len(materials))
	res.Stats.Elapsed = time.Since(start)

	log.Info("preprocessing complete",
		zap.Int("models", res.Stats.Models),
		zap.Int("meshlets", res.Stats.Meshlets),
		zap.Int("vertices", res.Stats.Vertices),
		zap.Int("triangles", res.Stats.Triangles),
		zap.String("atlas", fmt.Sprintf("%dx%dx%d", a.Resolution.X, a.Resolution.Y, a.Layers)),
		zap.Duration("elapsed", res.Stats.Elapsed))

	return res, nil
}

func collectStats(res *Result, models, materials int) Stats {
	bs := res.Builder.Stats()
	a := res.Atlas
	return Stats{
		Models:         models,
		Materials:      materials,
		Meshlets:       bs.Meshlets,
		Vertices:       bs.Vertices,
		Triangles:      bs.Triangles,
		AvgVertexFill:  bs.AvgVertexFill,
		AvgPrimFill:    bs.AvgPrimFill,
		AtlasWidth:     a.Resolution.X,
		AtlasHeight:    a.Resolution.Y,
		AtlasLayers:    a.Layers,
		AtlasOccupancy: a.Occupancy(),
		Buffers: BufferSizes{
			Vertices:         bs.Vertices * meshlet.VertexStride,
			Descriptors:      bs.Meshlets * meshlet.DescriptorStride,
			VertexIndices:    bs.VertexIndices * 4,
			PrimitiveIndices: len(res.Builder.PrimitiveIndices),
			Atlas:            len(a.Pixels),
		},
	}
}
