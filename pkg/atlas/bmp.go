package atlas

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// ErrEmptyAtlas is returned when exporting an atlas with no texels.
var ErrEmptyAtlas = errors.New("atlas is empty")

// LayerImage wraps layer i as an image. 1, 3 and 4 channel atlases are supported.
func (a *Atlas) LayerImage(i int) (image.Image, error) {
	if a.Resolution.X == 0 || a.Resolution.Y == 0 || a.Pixels == nil {
		return nil, ErrEmptyAtlas
	}
	if i < 0 || i >= a.Layers {
		return nil, fmt.Errorf("layer %d out of range [0, %d)", i, a.Layers)
	}
	rect := image.Rect(0, 0, a.Resolution.X, a.Resolution.Y)
	data := a.Layer(i)

	switch a.Channels {
	case 1:
		return &image.Gray{Pix: data, Stride: a.Stride(), Rect: rect}, nil
	case 3:
		img := image.NewNRGBA(rect)
		for p, q := 0, 0; p < len(data); p, q = p+3, q+4 {
			img.Pix[q] = data[p]
			img.Pix[q+1] = data[p+1]
			img.Pix[q+2] = data[p+2]
			img.Pix[q+3] = 0xff
		}
		return img, nil
	case 4:
		return &image.NRGBA{Pix: data, Stride: a.Stride(), Rect: rect}, nil
	default:
		return nil, fmt.Errorf("unsupported channel count %d for image export", a.Channels)
	}
}

// EncodeBMP writes layer i as a BMP image.
func (a *Atlas) EncodeBMP(w io.Writer, layer int) error {
	img, err := a.LayerImage(layer)
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}

// WriteBMP writes layer i to path as a BMP image.
func (a *Atlas) WriteBMP(path string, layer int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.EncodeBMP(f, layer); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
