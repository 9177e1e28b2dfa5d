// Package atlas packs per-material textures into one shared texture atlas.
package atlas

import (
	"errors"
	"fmt"
	"image"
)

// Material input errors.
var (
	ErrNoTextures         = errors.New("material has no textures")
	ErrEmptyTexture       = errors.New("texture has zero size")
	ErrChannelMismatch    = errors.New("texture channel count does not match atlas")
	ErrPixelDataTruncated = errors.New("texture pixel data truncated")
)

// Texture is a decoded, row-major image.
type Texture struct {
	Width    int
	Height   int
	Channels int
	Pixels   []byte
}

// Area returns the texel count.
func (t *Texture) Area() int {
	return t.Width * t.Height
}

// Stride returns the number of bytes per row.
func (t *Texture) Stride() int {
	return t.Width * t.Channels
}

// Material is an ordered list of textures sharing one atlas placement.
// Textures[0] is the primary (albedo) texture and determines the block size;
// further entries become additional atlas layers.
type Material struct {
	Name     string
	Textures []Texture
}

// Primary returns the texture that determines the material's placement.
func (m *Material) Primary() *Texture {
	return &m.Textures[0]
}

// TextureBlock is a material's placement inside the atlas.
type TextureBlock struct {
	Start  image.Point
	Width  int
	Height int
}

// Rect returns the block as a half-open rectangle.
func (b TextureBlock) Rect() image.Rectangle {
	return image.Rect(b.Start.X, b.Start.Y, b.Start.X+b.Width, b.Start.Y+b.Height)
}

// End returns the exclusive bottom-right corner.
func (b TextureBlock) End() image.Point {
	return image.Pt(b.Start.X+b.Width, b.Start.Y+b.Height)
}

// Atlas is the packed result. Pixels holds Layers consecutive images of
// Resolution.X * Resolution.Y * Channels bytes each.
type Atlas struct {
	Resolution image.Point
	Channels   int
	Layers     int
	Pixels     []byte
	Blocks     []TextureBlock
}

// LayerSize returns the byte size of one layer.
func (a *Atlas) LayerSize() int {
	return a.Resolution.X * a.Resolution.Y * a.Channels
}

// Stride returns the number of bytes per atlas row.
func (a *Atlas) Stride() int {
	return a.Resolution.X * a.Channels
}

// Layer returns the pixel data of layer i.
func (a *Atlas) Layer(i int) []byte {
	size := a.LayerSize()
	return a.Pixels[i*size : (i+1)*size]
}

// Occupancy returns the fraction of atlas texels covered by blocks.
func (a *Atlas) Occupancy() float64 {
	total := a.Resolution.X * a.Resolution.Y
	if total == 0 {
		return 0
	}
	used := 0
	for _, b := range a.Blocks {
		used += b.Width * b.Height
	}
	return float64(used) / float64(total)
}

// Release drops the pixel buffer once it has been uploaded. Placement
// metadata stays valid for UV remapping.
func (a *Atlas) Release() {
	a.Pixels = nil
}

// validate checks every material against the atlas channel count.
func validate(materials []Material, channels int) (layers int, err error) {
	for i := range materials {
		m := &materials[i]
		if len(m.Textures) == 0 {
			return 0, fmt.Errorf("material %d (%s): %w", i, m.Name, ErrNoTextures)
		}
		for j := range m.Textures {
			t := &m.Textures[j]
			if t.Width <= 0 || t.Height <= 0 {
				return 0, fmt.Errorf("material %d (%s) texture %d: %w", i, m.Name, j, ErrEmptyTexture)
			}
			if t.Channels != channels {
				return 0, fmt.Errorf("material %d (%s) texture %d: %w: got %d, want %d",
					i, m.Name, j, ErrChannelMismatch, t.Channels, channels)
			}
			if want := t.Area() * t.Channels; len(t.Pixels) < want {
				return 0, fmt.Errorf("material %d (%s) texture %d: %w: got %d bytes, want %d",
					i, m.Name, j, ErrPixelDataTruncated, len(t.Pixels), want)
			}
		}
		layers = max(layers, len(m.Textures))
	}
	return layers, nil
}
