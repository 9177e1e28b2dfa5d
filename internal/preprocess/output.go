package preprocess

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/meshprep/internal/logger"
	"github.com/Faultbox/meshprep/pkg/meshlet"
)

// Artifact file names written by WriteArtifacts.
const (
	VerticesFile         = "vertices.bin"
	DescriptorsFile      = "descriptors.bin"
	VertexIndicesFile    = "vertex_indices.bin"
	PrimitiveIndicesFile = "primitive_indices.bin"
	AtlasFile            = "atlas.bin"
)

// WriteArtifacts writes the upload buffers into dir and, when dumpBMP is
// set, one BMP per atlas layer. It returns the written paths.
func WriteArtifacts(res *Result, dir string, dumpBMP bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	b := res.Builder
	buffers := []struct {
		name string
		data []byte
	}{
		{VerticesFile, meshlet.MarshalVertices(b.Vertices)},
		{DescriptorsFile, meshlet.MarshalDescriptors(b.Meshlets)},
		{VertexIndicesFile, meshlet.MarshalVertexIndices(b.VertexIndices)},
		{PrimitiveIndicesFile, b.PrimitiveIndices},
		{AtlasFile, res.Atlas.Pixels},
	}

	var written []string
	for _, buf := range buffers {
		path := filepath.Join(dir, buf.name)
		if err := os.WriteFile(path, buf.data, 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", buf.name, err)
		}
		logger.Debug("buffer written", zap.String("path", path), zap.Int("bytes", len(buf.data)))
		written = append(written, path)
	}

	if !dumpBMP || len(res.Atlas.Pixels) == 0 {
		return written, nil
	}
	if res.Atlas.Channels == 2 {
		logger.Warn("skipping atlas BMP export", zap.Int("channels", res.Atlas.Channels))
		return written, nil
	}
	for layer := 0; layer < res.Atlas.Layers; layer++ {
		path := filepath.Join(dir, fmt.Sprintf("atlas_layer%d.bmp", layer))
		if err := res.Atlas.WriteBMP(path, layer); err != nil {
			return written, err
		}
		logger.Debug("atlas layer written", zap.String("path", path), zap.Int("layer", layer))
		written = append(written, path)
	}
	return written, nil
}
