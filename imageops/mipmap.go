package imageops

import (
	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rfimage"
)

// GenMipmaps builds a full mipmap chain for img by successive bilinear
// downscales in img's own format, stored contiguously in a single buffer
// level-after-level, per §4.2 and §8's mipmap-size testable property
// (rfimage.MipChainSize gives the expected total).
//
// The chain stops when both dimensions have reached 1, i.e. it has
// floor(log2(max(width,height)))+1 levels.
func GenMipmaps(img rfimage.Image) rfimage.MipmapsImage {
	if !img.Valid || img.Format.IsCompressed() {
		return rfimage.MipmapsImage{}
	}

	levels := 1
	for w, h := img.Width, img.Height; w > 1 || h > 1; levels++ {
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}

	total := rfimage.MipChainSize(img.Width, img.Height, levels, img.Format)
	data := make([]byte, total)
	copy(data[:img.Size()], img.Data)

	offset := img.Size()
	prev := img
	for level := 1; level < levels; level++ {
		w, h := rfimage.MipLevelDims(img.Width, img.Height, level)
		size := pixelformat.PixelBufferSize(w, h, img.Format)
		dst := data[offset : offset+size]
		scaled := ResizeBilinearToBuffer(dst, w, h, prev)
		if !scaled.Valid {
			return rfimage.MipmapsImage{}
		}
		prev = scaled
		offset += size
	}

	return rfimage.MipmapsImage{
		Image:   rfimage.Image{Data: data, Width: img.Width, Height: img.Height, Format: img.Format, Valid: true},
		Mipmaps: levels,
	}
}
