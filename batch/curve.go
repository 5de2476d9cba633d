package batch

import "github.com/rayfork/rayfork-go/mathx"

// Curve tessellation for the batcher's shape-decomposition facet (§4.6):
// lines and bezier curves are recursively subdivided into straight
// segments the emitter can submit as a triangle strip/fan, the way
// the teacher's curve.go de Casteljau-subdivides QuadBez/CubicBez for
// its software rasterizer. Adapted from float64 Point/Vec2 arithmetic
// to this module's float32 mathx.Vec2.

// Line is a straight segment from P0 to P1.
type Line struct {
	P0, P1 mathx.Vec2
}

// Eval evaluates the line at parameter t in [0,1].
func (l Line) Eval(t float32) mathx.Vec2 { return l.P0.Lerp(l.P1, t) }

// QuadBez is a quadratic Bezier curve with control points P0, P1, P2.
type QuadBez struct {
	P0, P1, P2 mathx.Vec2
}

// Eval evaluates the curve at parameter t in Bernstein polynomial form.
func (q QuadBez) Eval(t float32) mathx.Vec2 {
	mt := 1 - t
	return mathx.Vec2{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	mid := q.Eval(0.5)
	return QuadBez{P0: q.P0, P1: q.P0.Lerp(q.P1, 0.5), P2: mid},
		QuadBez{P0: mid, P1: q.P1.Lerp(q.P2, 0.5), P2: q.P2}
}

// Flatten appends a polyline approximation of q to dst, recursively
// subdividing until the control point deviates from the P0-P2 chord by
// less than tolerance or maxDepth is reached.
func (q QuadBez) Flatten(dst []mathx.Vec2, tolerance float32, maxDepth int) []mathx.Vec2 {
	if maxDepth <= 0 || chordDeviation(q.P0, q.P2, q.P1) <= tolerance {
		return append(dst, q.P2)
	}
	a, b := q.Subdivide()
	dst = a.Flatten(dst, tolerance, maxDepth-1)
	return b.Flatten(dst, tolerance, maxDepth-1)
}

// CubicBez is a cubic Bezier curve with control points P0, P1, P2, P3.
type CubicBez struct {
	P0, P1, P2, P3 mathx.Vec2
}

// Eval evaluates the curve at parameter t in Bernstein polynomial form.
func (c CubicBez) Eval(t float32) mathx.Vec2 {
	mt := 1 - t
	mt2, mt3 := mt*mt, mt*mt*mt
	t2, t3 := t*t, t*t*t
	return mathx.Vec2{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 using de Casteljau's algorithm.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Flatten appends a polyline approximation of c to dst, recursively
// subdividing until both control points lie within tolerance of the
// P0-P3 chord or maxDepth is reached.
func (c CubicBez) Flatten(dst []mathx.Vec2, tolerance float32, maxDepth int) []mathx.Vec2 {
	d1 := chordDeviation(c.P0, c.P3, c.P1)
	d2 := chordDeviation(c.P0, c.P3, c.P2)
	if maxDepth <= 0 || (d1 <= tolerance && d2 <= tolerance) {
		return append(dst, c.P3)
	}
	a, b := c.Subdivide()
	dst = a.Flatten(dst, tolerance, maxDepth-1)
	return b.Flatten(dst, tolerance, maxDepth-1)
}

// chordDeviation returns the perpendicular distance of p from the line
// through a and b, used as the flatness test during curve subdivision.
func chordDeviation(a, b, p mathx.Vec2) float32 {
	chord := b.Sub(a)
	chordLen := chord.Len()
	if chordLen == 0 {
		return p.Sub(a).Len()
	}
	cross := chord.X*(p.Y-a.Y) - chord.Y*(p.X-a.X)
	if cross < 0 {
		cross = -cross
	}
	return cross / chordLen
}
