package batch

import (
	"testing"

	"github.com/rayfork/rayfork-go/gpusink"
	"github.com/rayfork/rayfork-go/mathx"
)

func TestDrawTextureRegionEmitsFourCorners(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	tex := gpusink.TextureHandle{ID: 1, Width: 64, Height: 64}

	b.DrawTextureRegion(tex,
		Rect{X: 0, Y: 0, Width: 32, Height: 32},
		Rect{X: 10, Y: 10, Width: 100, Height: 100},
		mathx.Vec2{}, 0, mathx.Color{R: 255, G: 255, B: 255, A: 255})

	if len(sink.Submitted) != 4 {
		t.Fatalf("expected 4 submitted corner vertices, got %d", len(sink.Submitted))
	}
}

// beginCountingSink is a NullSink that also counts Begin calls, one per
// drawn n-patch cell.
type beginCountingSink struct {
	gpusink.NullSink
	begins int
}

func (s *beginCountingSink) Begin(mode int) {
	s.begins++
	s.NullSink.Begin(mode)
}

func TestDrawNPatchOmitsCenterWhenDestTooNarrow(t *testing.T) {
	sink := &beginCountingSink{}
	b := New(sink)
	tex := gpusink.TextureHandle{ID: 1, Width: 30, Height: 30}
	layout := NPatchLayout{Left: 10, Top: 10, Right: 10, Bottom: 10}

	b.DrawNPatch(tex,
		Rect{X: 0, Y: 0, Width: 30, Height: 30},
		layout,
		Rect{X: 0, Y: 0, Width: 15, Height: 30},
		mathx.Color{R: 255, G: 255, B: 255, A: 255})

	// The 10+10 horizontal borders shrink to 7.5 each, leaving the middle
	// column (center plus top/bottom edges) zero-width and skipped.
	if sink.DrawCalls < 0 {
		t.Fatal("unreachable")
	}
	if sink.begins != 6 {
		t.Fatalf("expected 6 cells drawn with the middle column omitted, got %d", sink.begins)
	}
}

func TestDrawNPatchDrawsNineCellsWhenRoomy(t *testing.T) {
	sink := &beginCountingSink{}
	b := New(sink)
	tex := gpusink.TextureHandle{ID: 1, Width: 30, Height: 30}
	layout := NPatchLayout{Left: 5, Top: 5, Right: 5, Bottom: 5}

	b.DrawNPatch(tex,
		Rect{X: 0, Y: 0, Width: 30, Height: 30},
		layout,
		Rect{X: 0, Y: 0, Width: 100, Height: 100},
		mathx.Color{R: 255, G: 255, B: 255, A: 255})

	if len(sink.Submitted) != 4 {
		t.Fatalf("expected the last drawn cell's 4 corners to remain in Submitted, got %d", len(sink.Submitted))
	}
	if sink.begins != 9 {
		t.Fatalf("expected 9 cells drawn, got %d", sink.begins)
	}
}
