package batch

import (
	"testing"

	"github.com/rayfork/rayfork-go/mathx"
)

func TestQuadBezEvalEndpoints(t *testing.T) {
	q := QuadBez{P0: mathx.Vec2{X: 0, Y: 0}, P1: mathx.Vec2{X: 1, Y: 1}, P2: mathx.Vec2{X: 2, Y: 0}}
	if got := q.Eval(0); got != q.P0 {
		t.Fatalf("Eval(0) = %v, want P0 %v", got, q.P0)
	}
	if got := q.Eval(1); got != q.P2 {
		t.Fatalf("Eval(1) = %v, want P2 %v", got, q.P2)
	}
}

func TestQuadBezFlattenStraightLineNeedsNoSubdivision(t *testing.T) {
	// A "curve" whose control point lies on the chord is already flat.
	q := QuadBez{P0: mathx.Vec2{X: 0, Y: 0}, P1: mathx.Vec2{X: 1, Y: 0}, P2: mathx.Vec2{X: 2, Y: 0}}
	pts := q.Flatten(nil, 0.01, 8)
	if len(pts) != 1 {
		t.Fatalf("expected a collinear quad to flatten to 1 point, got %d", len(pts))
	}
}

func TestCubicBezFlattenProducesMultiplePointsForCurvedSegment(t *testing.T) {
	c := CubicBez{
		P0: mathx.Vec2{X: 0, Y: 0},
		P1: mathx.Vec2{X: 0, Y: 10},
		P2: mathx.Vec2{X: 10, Y: 10},
		P3: mathx.Vec2{X: 10, Y: 0},
	}
	pts := c.Flatten(nil, 0.01, 16)
	if len(pts) < 2 {
		t.Fatalf("expected curved cubic to flatten to multiple points, got %d", len(pts))
	}
	last := pts[len(pts)-1]
	if last != c.P3 {
		t.Fatalf("expected last flattened point to be the curve endpoint, got %v want %v", last, c.P3)
	}
}

func TestChordDeviationZeroForCollinearPoint(t *testing.T) {
	d := chordDeviation(mathx.Vec2{X: 0, Y: 0}, mathx.Vec2{X: 10, Y: 0}, mathx.Vec2{X: 5, Y: 0})
	if d != 0 {
		t.Fatalf("expected 0 deviation for collinear point, got %v", d)
	}
}
