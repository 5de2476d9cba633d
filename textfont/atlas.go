package textfont

import (
	"math"

	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rfimage"
)

// ShelfAllocator packs rectangles into horizontal shelves: rows are as
// tall as the tallest item placed on them, items fill each shelf
// left-to-right until full, then a new shelf starts below. Adapted
// directly from the teacher's text/msdf/shelf.go (there packing
// MSDF glyph cells; here packing gray-alpha coverage-mask glyph cells).
type ShelfAllocator struct {
	width, height int
	padding       int
	shelves       []shelf
	usedArea      int
}

type shelf struct {
	y, height, x int
}

// NewShelfAllocator creates an allocator for an atlas of the given
// dimensions, leaving padding pixels of separation between glyphs.
func NewShelfAllocator(width, height, padding int) *ShelfAllocator {
	return &ShelfAllocator{width: width, height: height, padding: padding}
}

// Allocate finds space for a w x h rectangle, returning its top-left
// corner and whether space was found.
func (a *ShelfAllocator) Allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + a.padding
	paddedH := h + a.padding

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+paddedW > a.width {
			continue
		}
		if h > s.height {
			if i == len(a.shelves)-1 && s.y+paddedH <= a.height {
				s.height = h
				x, y = s.x, s.y
				s.x += paddedW
				a.usedArea += w * h
				return x, y, true
			}
			continue
		}
		x, y = s.x, s.y
		s.x += paddedW
		a.usedArea += w * h
		return x, y, true
	}

	newY := 0
	if n := len(a.shelves); n > 0 {
		last := a.shelves[n-1]
		newY = last.y + last.height + a.padding
	}
	if newY+paddedH > a.height || paddedW > a.width {
		return -1, -1, false
	}
	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: paddedW})
	a.usedArea += w * h
	return 0, newY, true
}

// Utilization returns the fraction of atlas area currently in use.
func (a *ShelfAllocator) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}

// AtlasEntry is a packed glyph's placement and render metrics within an
// Atlas.
type AtlasEntry struct {
	X, Y          int
	Width, Height int
	OffsetX       int
	OffsetY       int
	Advance       float32
}

// Atlas is a 2-channel gray+alpha glyph atlas (§4.5 "Atlas
// rasterization"): one rfimage.Image packed with every requested
// glyph's rasterized bitmap, plus a lookup table from rune to its
// placement. Channel 0 (gray) is always 255; channel 1 (alpha) carries
// the glyph's coverage, so the atlas can be sampled either as a plain
// alpha mask or tinted through the gray channel by a shader that
// ignores alpha.
type Atlas struct {
	Image  rfimage.Image
	Glyphs map[rune]AtlasEntry
}

// AtlasSize derives the square atlas side needed to pack dims glyphs
// with padding pixels of separation, per §4.5 "Atlas sizing": treating
// each glyph as (w+2p)x(h+2p), sum the areas, take
// ceil(sqrt(total))*1.3, and round up to the next power of two.
func AtlasSize(dims []AtlasGlyphDims, padding int) int {
	var total float64
	for _, d := range dims {
		w := float64(d.Width + 2*padding)
		h := float64(d.Height + 2*padding)
		total += w * h
	}
	side := math.Ceil(math.Sqrt(total)) * 1.3
	return nextPowerOfTwo(int(math.Ceil(side)))
}

// AtlasGlyphDims is one glyph's unpadded pixel dimensions, the input
// AtlasSize sums areas over.
type AtlasGlyphDims struct {
	Width, Height int
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// BuildAtlas rasterizes every rune in runes at face's bound size and
// packs the resulting coverage masks into a gray+alpha atlas sized by
// AtlasSize, using a ShelfAllocator for placement. Runes that don't fit
// are skipped, not erred on — this should not happen in practice since
// the atlas is sized to fit every glyph with room to spare (the 1.3
// fudge factor in AtlasSize), but a pathological padding/glyph-size
// combination could still starve the allocator.
func BuildAtlas(face *Face, runes []rune, padding int) *Atlas {
	bitmaps := make(map[rune]*GlyphBitmap, len(runes))
	dims := make([]AtlasGlyphDims, 0, len(runes))
	for _, r := range runes {
		bmp, ok := RasterizeGlyph(face, r)
		if !ok {
			continue
		}
		bitmaps[r] = bmp
		if bmp.Width > 0 && bmp.Height > 0 {
			dims = append(dims, AtlasGlyphDims{Width: bmp.Width, Height: bmp.Height})
		}
	}

	side := AtlasSize(dims, padding)
	img := rfimage.Image{
		Data:   make([]byte, pixelformat.PixelBufferSize(side, side, pixelformat.GrayAlpha)),
		Width:  side,
		Height: side,
		Format: pixelformat.GrayAlpha,
		Valid:  true,
	}
	for i := range img.Data {
		if i%2 == 0 {
			img.Data[i] = 255 // gray channel: always opaque white
		}
	}

	alloc := NewShelfAllocator(side, side, padding)
	glyphs := make(map[rune]AtlasEntry, len(runes))

	for _, r := range runes {
		bmp, ok := bitmaps[r]
		if !ok {
			continue
		}
		if bmp.Width == 0 || bmp.Height == 0 {
			glyphs[r] = AtlasEntry{Advance: bmp.Advance}
			continue
		}
		x, y, ok := alloc.Allocate(bmp.Width, bmp.Height)
		if !ok {
			continue
		}
		blit(&img, x, y, bmp)
		glyphs[r] = AtlasEntry{
			X: x, Y: y,
			Width: bmp.Width, Height: bmp.Height,
			OffsetX: bmp.OffsetX, OffsetY: bmp.OffsetY,
			Advance: bmp.Advance,
		}
	}

	return &Atlas{Image: img, Glyphs: glyphs}
}

// GlyphRect reports r's placement within the atlas image, for
// batch.DrawText/DrawTextRec's texture-region sampling.
func (a *Atlas) GlyphRect(r rune) (x, y, w, h int, ok bool) {
	e, found := a.Glyphs[r]
	if !found {
		return 0, 0, 0, 0, false
	}
	return e.X, e.Y, e.Width, e.Height, true
}

// blit writes bmp's single-channel coverage mask into img's gray+alpha
// pixel buffer at (x,y): channel 0 stays 255 (pre-filled), channel 1
// receives the coverage byte, per §4.5 "Atlas rasterization".
func blit(img *rfimage.Image, x, y int, bmp *GlyphBitmap) {
	for row := 0; row < bmp.Height; row++ {
		srcOff := row * bmp.Width
		for col := 0; col < bmp.Width; col++ {
			dstOff := ((y+row)*img.Width + (x + col)) * 2
			img.Data[dstOff] = 255
			img.Data[dstOff+1] = bmp.Pix[srcOff+col]
		}
	}
}
