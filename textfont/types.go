// Package textfont implements the text pipeline's TTF parsing glue,
// glyph metrics, atlas packing/rasterization, and measure/wrap helpers
// (§4.5). Font parsing and per-glyph metrics are grounded on the
// teacher's text/parser_ximage.go (golang.org/x/image/font/opentype +
// sfnt); rasterization on text/rasterize.go (golang.org/x/image/font's
// Drawer); atlas packing on text/msdf/shelf.go's shelf allocator,
// generalized from MSDF-specific packing to gray-alpha glyph bitmaps;
// complex-script shaping on text/shaper_gotext.go
// (go-text/typesetting's HarfBuzz shaper).
package textfont

// GlyphID identifies a glyph within a font, distinct from the Unicode
// codepoint it renders.
type GlyphID uint16

// FontSource holds raw font file bytes. A single FontSource can back
// multiple Face instances at different sizes.
type FontSource struct {
	data []byte
}

// NewFontSource wraps raw TTF/OTF bytes for later parsing by NewFace.
func NewFontSource(data []byte) *FontSource {
	return &FontSource{data: data}
}

// FontMetrics holds font-wide metrics scaled to a specific pixel size
// (§4.5).
type FontMetrics struct {
	Ascent    float32
	Descent   float32
	LineGap   float32
	XHeight   float32
	CapHeight float32
}

// LineHeight returns the recommended baseline-to-baseline distance.
func (m FontMetrics) LineHeight() float32 {
	return m.Ascent + m.Descent + m.LineGap
}

// GlyphInfo is a single glyph's shaping-independent metrics at a given
// face size.
type GlyphInfo struct {
	GID     GlyphID
	Advance float32
	MinX    float32
	MinY    float32
	MaxX    float32
	MaxY    float32
}
