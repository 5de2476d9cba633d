package batch

import (
	"testing"

	"github.com/rayfork/rayfork-go/gpusink"
	"github.com/rayfork/rayfork-go/mathx"
)

func TestDrawTriangleFanEmitsExpectedVertexCount(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	verts := []mathx.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	b.DrawTriangleFan(verts, mathx.Color{R: 255, A: 255})
	if got, want := len(sink.Submitted), 3*(len(verts)-2); got != want {
		t.Fatalf("got %d submitted vertices, want %d", got, want)
	}
}

func TestDrawTriangleFanSkipsDegenerateShape(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	b.DrawTriangleFan([]mathx.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}, mathx.Color{})
	if len(sink.Submitted) != 0 {
		t.Fatalf("expected no vertices for a 2-point fan, got %d", len(sink.Submitted))
	}
}

func TestDrawTriangleStripAlternatesWinding(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	verts := []mathx.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	b.DrawTriangleStrip(verts, mathx.Color{R: 255, A: 255})
	if got, want := len(sink.Submitted), 3*(len(verts)-2); got != want {
		t.Fatalf("got %d submitted vertices, want %d", got, want)
	}
}

func TestCircleSegmentCountFlooredAtFour(t *testing.T) {
	if got := CircleSegmentCount(0, 0, 360, 0.5); got != 4 {
		t.Fatalf("expected degenerate radius to floor at 4 segments, got %d", got)
	}
}

func TestCircleSegmentCountGrowsWithRadius(t *testing.T) {
	small := CircleSegmentCount(2, 0, 360, 0.5)
	large := CircleSegmentCount(200, 0, 360, 0.5)
	if large <= small {
		t.Fatalf("expected larger radius to need more segments, got small=%d large=%d", small, large)
	}
}

func TestDrawCircleSectorProducesTriangleFan(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	b.DrawCircleSector(mathx.Vec2{X: 0, Y: 0}, 10, 0, 90, mathx.Color{R: 255, A: 255})
	if len(sink.Submitted) == 0 {
		t.Fatal("expected circle sector to submit vertices")
	}
	if len(sink.Submitted)%3 != 0 {
		t.Fatalf("expected a whole number of triangles, got %d vertices", len(sink.Submitted))
	}
}

func TestDrawRingProducesTriangleStrip(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	b.DrawRing(mathx.Vec2{X: 0, Y: 0}, 5, 10, 0, 360, mathx.Color{R: 255, A: 255})
	if len(sink.Submitted) == 0 {
		t.Fatal("expected ring to submit vertices")
	}
}

func TestDrawLineThickBuildsQuad(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	b.DrawLineThick(mathx.Vec2{X: 0, Y: 0}, mathx.Vec2{X: 10, Y: 0}, 2, mathx.Color{R: 255, A: 255})
	if got, want := len(sink.Submitted), 6; got != want {
		t.Fatalf("expected a 4-vertex quad to submit 6 triangle vertices, got %d", got)
	}
}

func TestDrawLineThickZeroLengthIsNoop(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	b.DrawLineThick(mathx.Vec2{X: 1, Y: 1}, mathx.Vec2{X: 1, Y: 1}, 2, mathx.Color{})
	if len(sink.Submitted) != 0 {
		t.Fatalf("expected zero-length line to submit nothing, got %d", len(sink.Submitted))
	}
}

func TestDrawBezierLineThickSubmitsSegments(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	c := CubicBez{
		P0: mathx.Vec2{X: 0, Y: 0},
		P1: mathx.Vec2{X: 0, Y: 10},
		P2: mathx.Vec2{X: 10, Y: 10},
		P3: mathx.Vec2{X: 10, Y: 0},
	}
	b.DrawBezierLineThick(c, 1, mathx.Color{R: 255, A: 255})
	if len(sink.Submitted) == 0 {
		t.Fatal("expected bezier line to submit vertices across its subdivisions")
	}
}

func TestDrawRoundedRectProducesClosedFan(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	b.DrawRoundedRect(0, 0, 100, 50, 10, mathx.Color{R: 255, A: 255})
	if len(sink.Submitted) == 0 {
		t.Fatal("expected rounded rect to submit vertices")
	}
}

func TestFlushDelegatesToSinkDraw(t *testing.T) {
	sink := &gpusink.NullSink{}
	b := New(sink)
	b.Flush()
	if sink.DrawCalls != 1 {
		t.Fatalf("expected Flush to invoke one Draw call, got %d", sink.DrawCalls)
	}
}
