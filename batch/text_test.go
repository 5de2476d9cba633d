package batch

import (
	"testing"

	"github.com/rayfork/rayfork-go/gpusink"
	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/textfont"
)

// fakeGlyphRects is a GlyphRectSource with a fixed w x h cell for every
// rune, for testing DrawText/DrawTextRec without a real Atlas or
// BitmapFont.
type fakeGlyphRects struct{ w, h int }

func (f fakeGlyphRects) GlyphRect(r rune) (x, y, w, h int, ok bool) {
	return 0, 0, f.w, f.h, true
}

func TestDrawTextEmitsOneQuadPerGlyph(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	f := textfont.DefaultBitmapFont()
	rects := fakeGlyphRects{w: 5, h: 10}
	tex := gpusink.TextureHandle{ID: 1, Width: 128, Height: 128}

	size := b.DrawText(f, rects, tex, "Hi", mathx.Vec2{}, 10, 1, mathx.Color{R: 255, G: 255, B: 255, A: 255})

	if size.X != 6 {
		t.Fatalf("DrawText measured width = %v, want 6 (matching Measure)", size.X)
	}
	// Each glyph quad starts with Begin, which resets Submitted, so only
	// the last quad's 4 corners remain.
	if len(sink.Submitted) != 4 {
		t.Fatalf("expected the last glyph's 4 corners in Submitted, got %d", len(sink.Submitted))
	}
}

func TestDrawTextSkipsUnknownGlyphsWithoutPanicking(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	f := textfont.DefaultBitmapFont()
	rects := fakeGlyphRects{w: 0, h: 0} // every rune reports a degenerate cell
	tex := gpusink.TextureHandle{ID: 1, Width: 128, Height: 128}

	b.DrawText(f, rects, tex, "Hi", mathx.Vec2{}, 10, 1, mathx.Color{R: 255, G: 255, B: 255, A: 255})
}

// TestDrawTextRecBreaksAtSameLinesAsWrapText exercises §8 scenario 6's
// wrap boundaries: Layout, run with the width DrawTextRec hands it, must
// split the text into exactly WrapText's lines, and DrawTextRec must
// then draw glyph quads for the same input.
func TestDrawTextRecBreaksAtSameLinesAsWrapText(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	f := textfont.DefaultBitmapFont()
	rects := fakeGlyphRects{w: 5, h: 10}
	tex := gpusink.TextureHandle{ID: 1, Width: 128, Height: 128}

	wantLines := textfont.WrapText(f, "lorem ipsum dolor sit", 10, 1, 60)
	if len(wantLines) != 3 {
		t.Fatalf("expected WrapText to produce 3 lines, got %d", len(wantLines))
	}

	// Reuse Layout directly (as DrawTextRec does internally) to confirm
	// its line split matches WrapText's exactly.
	result := textfont.Layout(f, "lorem ipsum dolor sit", 10, 1, 60, nil)

	if len(result.Lines) != len(wantLines) {
		t.Fatalf("Layout produced %d lines, WrapText produced %d", len(result.Lines), len(wantLines))
	}
	for i, line := range wantLines {
		if result.Lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, result.Lines[i], line)
		}
	}

	// Now confirm DrawTextRec itself doesn't panic and leaves the last
	// glyph's quad in Submitted.
	b.DrawTextRec(f, rects, tex, "lorem ipsum dolor sit", Rect{X: 0, Y: 0, Width: 60, Height: 200}, 10, 1, mathx.Color{R: 255, G: 255, B: 255, A: 255})
	if len(sink.Submitted) != 4 {
		t.Fatalf("expected the last glyph's 4 corners in Submitted, got %d", len(sink.Submitted))
	}
}
