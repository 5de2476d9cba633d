package batch

import (
	"github.com/rayfork/rayfork-go/gpusink"
	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/textfont"
)

// GlyphRectSource resolves a rune to its placement within an uploaded
// atlas texture, the shape both textfont.Atlas (TTF glyphs) and
// textfont.BitmapFont (color-key-scanned glyphs) already implement, so
// DrawText/DrawTextRec work against either backend.
type GlyphRectSource interface {
	GlyphRect(r rune) (x, y, w, h int, ok bool)
}

// DrawText lays out s via textfont.Layout at fontSize/spacing and
// draws each glyph as a textured quad sampled from tex at the
// rectangle rects reports, tinted by col. Driving the same Layout
// textfont.Measure/WrapText use means a caller can trust DrawText to
// break lines exactly where Measure said it would (§4.5 "Wrapping").
// Returns the measured size of the laid-out text.
func (b *Batcher) DrawText(src textfont.GlyphSource, rects GlyphRectSource, tex gpusink.TextureHandle, s string, pos mathx.Vec2, fontSize, spacing float32, col mathx.Color) mathx.Vec2 {
	result := textfont.Layout(src, s, fontSize, spacing, 0, func(r rune, penX, penY float32) {
		b.drawGlyphQuad(rects, tex, r, pos.X+penX, pos.Y+penY, col)
	})
	return mathx.Vec2{X: result.Width, Y: result.Height}
}

// DrawTextRec is DrawText constrained to wrap within rec's width,
// sharing the exact break decisions WrapText would report for the same
// inputs (§4.5 "Wrapping").
func (b *Batcher) DrawTextRec(src textfont.GlyphSource, rects GlyphRectSource, tex gpusink.TextureHandle, s string, rec Rect, fontSize, spacing float32, col mathx.Color) {
	textfont.Layout(src, s, fontSize, spacing, rec.Width, func(r rune, penX, penY float32) {
		b.drawGlyphQuad(rects, tex, r, rec.X+penX, rec.Y+penY, col)
	})
}

func (b *Batcher) drawGlyphQuad(rects GlyphRectSource, tex gpusink.TextureHandle, r rune, penX, penY float32, col mathx.Color) {
	x, y, w, h, ok := rects.GlyphRect(r)
	if !ok || w == 0 || h == 0 {
		return
	}
	srcRect := Rect{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
	dstRect := Rect{X: penX, Y: penY, Width: float32(w), Height: float32(h)}
	b.DrawTextureRegion(tex, srcRect, dstRect, mathx.Vec2{}, 0, col)
}
