package atlas

// CopyInto writes tex into block on the given layer.
// A texture matching the block size is copied row by row. A 1x1 texture is
// broadcast over the whole block. Any other size is resampled with nearest
// neighbour filtering.
func (a *Atlas) CopyInto(tex *Texture, block TextureBlock, layer int) {
	dst := a.Layer(layer)
	stride := a.Stride()
	ch := a.Channels
	rowBytes := block.Width * ch

	switch {
	case tex.Width == 1 && tex.Height == 1:
		texel := tex.Pixels[:ch]
		for y := 0; y < block.Height; y++ {
			row := dst[(block.Start.Y+y)*stride+block.Start.X*ch:]
			for x := 0; x < block.Width; x++ {
				copy(row[x*ch:x*ch+ch], texel)
			}
		}

	case tex.Width == block.Width && tex.Height == block.Height:
		src := tex.Stride()
		for y := 0; y < block.Height; y++ {
			off := (block.Start.Y+y)*stride + block.Start.X*ch
			copy(dst[off:off+rowBytes], tex.Pixels[y*src:y*src+rowBytes])
		}

	default:
		src := tex.Stride()
		for y := 0; y < block.Height; y++ {
			sy := y * tex.Height / block.Height
			row := dst[(block.Start.Y+y)*stride+block.Start.X*ch:]
			for x := 0; x < block.Width; x++ {
				sx := x * tex.Width / block.Width
				s := sy*src + sx*ch
				copy(row[x*ch:x*ch+ch], tex.Pixels[s:s+ch])
			}
		}
	}
}
