package textfont

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GlyphBitmap is a rasterized glyph: an 8-bit alpha coverage mask
// (single channel, the §4.5 "scratch buffer sized for the largest
// glyph") plus the positioning data needed to place it relative to the
// pen. atlas.go's blit widens this single coverage channel into the
// atlas's 2-channel gray+alpha destination at pack time.
type GlyphBitmap struct {
	Pix           []byte // row-major alpha coverage, Width*Height bytes
	Width, Height int
	OffsetX       int // mask origin relative to the glyph's left-side bearing
	OffsetY       int // mask origin relative to the baseline (positive = down)
	Advance       float32
}

// RasterizeGlyph renders r to an alpha-coverage bitmap at face's bound
// size, grounded on the teacher's RasterizeGlyph (golang.org/x/image/
// font.Drawer against an opentype.Face), generalized from the
// teacher's glyph-ID-as-rune trick to a real glyph-index render by
// going through the codepoint directly (font.Drawer only accepts
// runes, same limitation the teacher's version has).
func RasterizeGlyph(f *Face, r rune) (*GlyphBitmap, bool) {
	otFace, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    f.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, false
	}
	defer otFace.Close()

	bounds, advance, ok := otFace.GlyphBounds(r)
	if !ok {
		return nil, false
	}

	minX := int(bounds.Min.X) >> 6
	minY := int(bounds.Min.Y) >> 6
	maxX := int(bounds.Max.X+63) >> 6
	maxY := int(bounds.Max.Y+63) >> 6
	if maxX <= minX || maxY <= minY {
		return &GlyphBitmap{Advance: fixedToFloat32(advance)}, true
	}

	rect := image.Rect(0, 0, maxX-minX, maxY-minY)
	mask := image.NewAlpha(rect)
	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: otFace,
		Dot:  fixed.Point26_6{X: fixed.I(0) - bounds.Min.X, Y: fixed.I(0) - bounds.Min.Y},
	}
	drawer.DrawString(string(r))

	return &GlyphBitmap{
		Pix:     mask.Pix,
		Width:   rect.Dx(),
		Height:  rect.Dy(),
		OffsetX: minX,
		OffsetY: minY,
		Advance: fixedToFloat32(advance),
	}, true
}
