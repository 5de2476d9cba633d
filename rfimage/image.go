// Package rfimage defines the image-shaped entities shared by the
// pixel-format engine, the image-operations pipeline, and the container
// decoders (§3): Image, MipmapsImage, and Gif.
package rfimage

import "github.com/rayfork/rayfork-go/pixelformat"

// Image is the engine's canonical 2D pixel buffer (§3). Data is an
// untyped byte buffer of exactly pixelformat.PixelBufferSize(Width,
// Height, Format) bytes. Valid=false is the in-band failure signal: an
// invalid image must refuse all further operations (§3, §7).
//
// Image does not own its backing memory — the caller owns the allocator
// that produced Data, and freeing it explicitly means passing that same
// allocator back (§3).
type Image struct {
	Data   []byte
	Width  int
	Height int
	Format pixelformat.Format
	Valid  bool
}

// Invalid returns the zero-value invalid Image sentinel (§7: errors are
// absorbing — every operation that receives one returns another).
func Invalid() Image { return Image{} }

// Size returns the expected byte length of Data for img's dimensions and
// format (used to validate Data's actual length at mutation time).
func (img Image) Size() int {
	return pixelformat.PixelBufferSize(img.Width, img.Height, img.Format)
}

// MipmapsImage is an Image plus a mipmap level count (§3). Level 0 is
// stored first at full size; each subsequent level is stored contiguously
// at max(1, prev/2) in each dimension, all in the same pixel format.
type MipmapsImage struct {
	Image
	Mipmaps int
}

// MipLevelSize returns the byte size of mipmap level k (0-based), given
// the base dimensions and format.
func MipLevelSize(width, height int, level int, f pixelformat.Format) int {
	w, h := MipLevelDims(width, height, level)
	return pixelformat.PixelBufferSize(w, h, f)
}

// MipLevelDims returns the dimensions of mipmap level k, each halved and
// floored to a minimum of 1 per level, per §3.
func MipLevelDims(width, height, level int) (w, h int) {
	w, h = width, height
	for i := 0; i < level; i++ {
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}
	return
}

// MipChainSize returns the total byte size of a contiguous mipmap chain
// of `levels` levels over a width x height base image in format f, per
// §8's mipmap-size testable property:
// Σ max(1,⌊w/2ᵏ⌋) * max(1,⌊h/2ᵏ⌋) * bpp.
func MipChainSize(width, height, levels int, f pixelformat.Format) int {
	total := 0
	for k := 0; k < levels; k++ {
		total += MipLevelSize(width, height, k, f)
	}
	return total
}

// Gif is a demultiplexed animated GIF (§3): frame k begins at byte offset
// k * width * height * bytesPerPixel(format). Delays are in the units the
// decoder returned.
type Gif struct {
	Data        []byte
	Width       int
	Height      int
	FrameCount  int
	FrameDelays []int
	Format      pixelformat.Format
}

// Frame returns the byte slice for frame k.
func (g Gif) Frame(k int) []byte {
	bpp := pixelformat.BytesPerPixel(g.Format)
	frameSize := g.Width * g.Height * bpp
	off := k * frameSize
	return g.Data[off : off+frameSize]
}
