package textfont

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a parsed font at a fixed pixel size, the unit every other
// textfont operation (metrics, rasterization, atlas packing) is keyed
// on. Grounded on the teacher's ximageParsedFont, generalized to carry
// its own size rather than taking ppem as a per-call parameter.
type Face struct {
	font *opentype.Font
	size float64
	buf  sfnt.Buffer
}

// NewFace parses src's font data and binds it to sizePx pixels per em.
func NewFace(src *FontSource, sizePx float64) (*Face, error) {
	f, err := opentype.Parse(src.data)
	if err != nil {
		return nil, fmt.Errorf("textfont: parse font: %w", err)
	}
	return &Face{font: f, size: sizePx}, nil
}

// Size returns the face's pixel size.
func (f *Face) Size() float64 { return f.size }

// Name returns the font's family name, or "" if absent.
func (f *Face) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	return ""
}

// NumGlyphs returns the number of glyphs defined in the font.
func (f *Face) NumGlyphs() int { return f.font.NumGlyphs() }

// UnitsPerEm returns the font's design units-per-em.
func (f *Face) UnitsPerEm() int { return int(f.font.UnitsPerEm()) }

// GlyphIndex maps a Unicode codepoint to its glyph ID, or 0 (the
// notdef glyph) if the font has no mapping for it.
func (f *Face) GlyphIndex(r rune) GlyphID {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// Advance returns gid's horizontal advance width at the face's size.
func (f *Face) Advance(gid GlyphID) float32 {
	adv, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), f.fixedSize(), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat32(adv)
}

// Bounds returns gid's bounding box at the face's size.
func (f *Face) Bounds(gid GlyphID) (minX, minY, maxX, maxY float32) {
	b, _, err := f.font.GlyphBounds(&f.buf, sfnt.GlyphIndex(gid), f.fixedSize(), font.HintingFull)
	if err != nil {
		return 0, 0, 0, 0
	}
	return fixedToFloat32(b.Min.X), fixedToFloat32(b.Min.Y), fixedToFloat32(b.Max.X), fixedToFloat32(b.Max.Y)
}

// Metrics returns the face's ascent/descent/line-gap/x-height/cap-height
// at its bound size.
func (f *Face) Metrics() FontMetrics {
	m, err := f.font.Metrics(&f.buf, f.fixedSize(), font.HintingFull)
	if err != nil {
		return FontMetrics{}
	}
	return FontMetrics{
		Ascent:    fixedToFloat32(m.Ascent),
		Descent:   fixedToFloat32(m.Descent),
		LineGap:   fixedToFloat32(m.Height) - fixedToFloat32(m.Ascent) - fixedToFloat32(m.Descent),
		XHeight:   fixedToFloat32(m.XHeight),
		CapHeight: fixedToFloat32(m.CapHeight),
	}
}

// GlyphInfo resolves r to its glyph and returns its combined
// metrics/bounds at the face's size.
func (f *Face) GlyphInfo(r rune) GlyphInfo {
	gid := f.GlyphIndex(r)
	minX, minY, maxX, maxY := f.Bounds(gid)
	return GlyphInfo{
		GID:     gid,
		Advance: f.Advance(gid),
		MinX:    minX, MinY: minY, MaxX: maxX, MaxY: maxY,
	}
}

// AdvanceRune implements GlyphSource for Face: r's glyph advance at the
// face's bound size. Always reports ok=true, same as raylib's
// font.Advance falling back to the .notdef glyph rather than failing.
func (f *Face) AdvanceRune(r rune) (float32, bool) {
	return f.Advance(f.GlyphIndex(r)), true
}

// BaseSize implements GlyphSource for Face: the pixel size AdvanceRune
// is expressed in.
func (f *Face) BaseSize() float32 { return float32(f.size) }

func (f *Face) fixedSize() fixed.Int26_6 {
	return fixed.Int26_6(f.size * 64)
}

func fixedToFloat32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
