package atlas

import (
	"fmt"
	"image"
	"slices"
)

// Pack places every material into a shared atlas and copies its textures in.
// Blocks are index-aligned with materials. An empty material list yields a
// zero-size atlas.
func Pack(materials []Material, channels int) (*Atlas, error) {
	layers, err := validate(materials, channels)
	if err != nil {
		return nil, err
	}

	blocks, res := Place(materials)

	a := &Atlas{
		Resolution: res,
		Channels:   channels,
		Layers:     layers,
		Blocks:     blocks,
	}
	a.Pixels = make([]byte, a.LayerSize()*layers)

	for i := range materials {
		for layer := range materials[i].Textures {
			a.CopyInto(&materials[i].Textures[layer], blocks[i], layer)
		}
	}
	return a, nil
}

// Place computes a non-overlapping block for each material's primary texture
// and the resulting atlas resolution. Materials are placed largest first
// into the free block that keeps the atlas extent smallest.
func Place(materials []Material) ([]TextureBlock, image.Point) {
	blocks := make([]TextureBlock, len(materials))
	if len(materials) == 0 {
		return blocks, image.Point{}
	}

	order := make([]int, len(materials))
	var bound image.Point
	for i := range materials {
		order[i] = i
		p := materials[i].Primary()
		bound.X += p.Width
		bound.Y += p.Height
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return materials[b].Primary().Area() - materials[a].Primary().Area()
	})

	free := []TextureBlock{{Width: bound.X, Height: bound.Y}}
	var res image.Point

	for _, mi := range order {
		p := materials[mi].Primary()
		w, h := p.Width, p.Height

		best := -1
		bestExtent := 0
		for fi, fb := range free {
			if fb.Width < w || fb.Height < h {
				continue
			}
			extent := grow(res, fb.Start, w, h)
			score := max(extent.X, extent.Y)
			if best < 0 || score < bestExtent {
				best, bestExtent = fi, score
			}
		}
		if best < 0 {
			panic(fmt.Sprintf("atlas: no free block fits material %d (%dx%d)", mi, w, h))
		}

		chosen := free[best]
		free = slices.Delete(free, best, best+1)
		free = append(free, split(chosen, w, h)...)

		blocks[mi] = TextureBlock{Start: chosen.Start, Width: w, Height: h}
		res = grow(res, chosen.Start, w, h)
	}
	return blocks, res
}

// grow returns the componentwise max of res and start+(w,h).
func grow(res, start image.Point, w, h int) image.Point {
	return image.Pt(max(res.X, start.X+w), max(res.Y, start.Y+h))
}

// split returns the free space left in fb after a w x h block is taken from
// its top-left corner.
func split(fb TextureBlock, w, h int) []TextureBlock {
	dw := fb.Width - w
	dh := fb.Height - h
	out := make([]TextureBlock, 0, 3)
	if dw > 0 {
		out = append(out, TextureBlock{Start: image.Pt(fb.Start.X+w, fb.Start.Y), Width: dw, Height: h})
	}
	if dh > 0 {
		out = append(out, TextureBlock{Start: image.Pt(fb.Start.X, fb.Start.Y+h), Width: w, Height: dh})
	}
	if dw > 0 && dh > 0 {
		out = append(out, TextureBlock{Start: image.Pt(fb.Start.X+w, fb.Start.Y+h), Width: dw, Height: dh})
	}
	return out
}
