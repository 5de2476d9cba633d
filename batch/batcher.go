// Package batch implements the draw-call batcher (§4.6): an emitter API
// that accumulates vertices into the opaque GPU sink's ring buffers,
// flushing whenever a buffer-limit or scope-change would make further
// accumulation invisible to already-queued vertices. Shaped after the
// teacher's recording/recorder.go command-buffer-then-flush structure,
// adapted from path/brush commands to the GPU sink's emitter calls.
package batch

import (
	"math"

	"github.com/rayfork/rayfork-go/gpusink"
	"github.com/rayfork/rayfork-go/mathx"
)

// PrimitiveKind selects the topology interpretation of vertices emitted
// between Begin and End, per §4.6.
type PrimitiveKind int

const (
	Lines PrimitiveKind = iota
	Triangles
	Quads
)

// defaultCircleErrorRate is the error-rate constant (in pixels) used by
// the adaptive segment-count heuristic for circles/rings/sectors (§6).
const defaultCircleErrorRate = 0.5

// bezierLineDivisions is the fixed subdivision count for bezier line
// shape decomposition (§6's default constants).
const bezierLineDivisions = 24

// Batcher accumulates emitter calls and flushes them to a gpusink.Sink,
// consulting CheckBufferLimit before each primitive so that appending
// more vertices never silently overflows the sink's ring buffers (§4.6).
type Batcher struct {
	sink gpusink.Sink
}

// New returns a Batcher driving sink.
func New(sink gpusink.Sink) *Batcher {
	return &Batcher{sink: sink}
}

// reserve flushes the current batch if the sink reports no room for n
// more vertices, per §4.6's buffer-check predicate.
func (b *Batcher) reserve(n int) {
	if !b.sink.CheckBufferLimit(n) {
		b.sink.Draw()
	}
}

// Flush commits any vertices queued in the sink's ring buffers.
func (b *Batcher) Flush() { b.sink.Draw() }

// DrawTriangleFan reserves room for and emits verts as a triangle fan
// around verts[0], the shape every circle/sector/polygon decomposition
// in this package reduces to.
func (b *Batcher) DrawTriangleFan(verts []mathx.Vec2, col mathx.Color) {
	if len(verts) < 3 {
		return
	}
	b.reserve(3 * (len(verts) - 2))
	b.sink.Begin(int(Triangles))
	b.sink.Color4ub(col.R, col.G, col.B, col.A)
	for i := 1; i < len(verts)-1; i++ {
		emitVertex2f(b.sink, verts[0])
		emitVertex2f(b.sink, verts[i])
		emitVertex2f(b.sink, verts[i+1])
	}
	b.sink.End()
}

// DrawTriangleStrip reserves room for and emits verts as a triangle
// strip, alternating winding every other index per §4.6.
func (b *Batcher) DrawTriangleStrip(verts []mathx.Vec2, col mathx.Color) {
	if len(verts) < 3 {
		return
	}
	b.reserve(3 * (len(verts) - 2))
	b.sink.Begin(int(Triangles))
	b.sink.Color4ub(col.R, col.G, col.B, col.A)
	for i := 2; i < len(verts); i++ {
		a, c := i-2, i-1
		if i%2 == 1 {
			a, c = c, a
		}
		emitVertex2f(b.sink, verts[a])
		emitVertex2f(b.sink, verts[c])
		emitVertex2f(b.sink, verts[i])
	}
	b.sink.End()
}

func emitVertex2f(s gpusink.Emitter, v mathx.Vec2) { s.Vertex2f(v.X, v.Y) }

// CircleSegmentCount applies the adaptive segment-count heuristic
// th = acos(2*(1 - err/r)^2 - 1), segments = (endA-startA) * ceil(2*pi/th) / 360,
// floored at 4 (§4.6).
func CircleSegmentCount(radius, startAngle, endAngle, errRate float32) int {
	if errRate <= 0 {
		errRate = defaultCircleErrorRate
	}
	if radius <= 0 {
		return 4
	}
	ratio := 1 - errRate/radius
	th := math.Acos(2*float64(ratio)*float64(ratio) - 1)
	if th <= 0 {
		return 4
	}
	perCircle := math.Ceil(2 * math.Pi / th)
	sweep := float64(endAngle - startAngle)
	segments := int(sweep * perCircle / 360)
	if segments < 4 {
		segments = 4
	}
	return segments
}

// DrawCircleSector draws a filled circle sector from startAngle to
// endAngle (degrees) as a triangle fan from the center, with the
// segment count chosen by CircleSegmentCount.
func (b *Batcher) DrawCircleSector(center mathx.Vec2, radius, startAngle, endAngle float32, col mathx.Color) {
	segments := CircleSegmentCount(radius, startAngle, endAngle, defaultCircleErrorRate)
	verts := make([]mathx.Vec2, 0, segments+2)
	verts = append(verts, center)
	step := (endAngle - startAngle) / float32(segments)
	for i := 0; i <= segments; i++ {
		a := float64(startAngle+step*float32(i)) * math.Pi / 180
		verts = append(verts, mathx.Vec2{
			X: center.X + radius*float32(math.Cos(a)),
			Y: center.Y + radius*float32(math.Sin(a)),
		})
	}
	b.DrawTriangleFan(verts, col)
}

// DrawRing draws the annulus between innerRadius and outerRadius from
// startAngle to endAngle (degrees) as a triangle strip connecting two
// parallel arcs, per §4.6.
func (b *Batcher) DrawRing(center mathx.Vec2, innerRadius, outerRadius, startAngle, endAngle float32, col mathx.Color) {
	segments := CircleSegmentCount(outerRadius, startAngle, endAngle, defaultCircleErrorRate)
	step := (endAngle - startAngle) / float32(segments)
	verts := make([]mathx.Vec2, 0, 2*segments+2)
	for i := 0; i <= segments; i++ {
		a := float64(startAngle+step*float32(i)) * math.Pi / 180
		cos, sin := float32(math.Cos(a)), float32(math.Sin(a))
		verts = append(verts,
			mathx.Vec2{X: center.X + innerRadius*cos, Y: center.Y + innerRadius*sin},
			mathx.Vec2{X: center.X + outerRadius*cos, Y: center.Y + outerRadius*sin},
		)
	}
	b.DrawTriangleStrip(verts, col)
}

// DrawLineThick draws a line segment from p0 to p1 with the given
// thickness as a d x thick quad whose corners lie half the thickness
// either side of each endpoint along the line's normal (§4.6).
func (b *Batcher) DrawLineThick(p0, p1 mathx.Vec2, thickness float32, col mathx.Color) {
	dir := p1.Sub(p0)
	length := dir.Len()
	if length == 0 {
		return
	}
	nx, ny := -dir.Y/length*thickness/2, dir.X/length*thickness/2
	normal := mathx.Vec2{X: nx, Y: ny}
	quad := []mathx.Vec2{
		p0.Sub(normal), p0.Add(normal),
		p1.Sub(normal), p1.Add(normal),
	}
	b.DrawTriangleStrip(quad, col)
}

// bezierEaseInOut is the cubic ease-in-out curve the teacher's
// recorder-era stroker used for interpolating bezier-line thickness
// transitions smoothly instead of linearly; here it blends the
// y-coordinate between consecutive subdivided samples (§4.6).
func bezierEaseInOut(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := (2*t - 2)
	return 1 + f*f*f/2
}

// DrawBezierLineThick subdivides c into bezierLineDivisions segments and
// draws each as a thick line, with the y-coordinate of interpolated
// sample points eased via a cubic ease-in-out, per §4.6.
func (b *Batcher) DrawBezierLineThick(c CubicBez, thickness float32, col mathx.Color) {
	prev := c.P0
	for i := 1; i <= bezierLineDivisions; i++ {
		t := float32(i) / bezierLineDivisions
		p := c.Eval(t)
		eased := bezierEaseInOut(t)
		p.Y = c.P0.Y + (c.Eval(1).Y-c.P0.Y)*eased + (p.Y - (c.P0.Y + (c.Eval(1).Y-c.P0.Y)*t))
		b.DrawLineThick(prev, p, thickness, col)
		prev = p
	}
}

// DrawRoundedRect draws a filled rounded rectangle as a triangle fan
// over its perimeter vertex ring (§4.6's twelve-named-corner-point
// decomposition collapses, for a filled shape, to one fan around the
// rect center).
func (b *Batcher) DrawRoundedRect(x, y, w, h, radius float32, col mathx.Color) {
	segments := CircleSegmentCount(radius, 0, 90, defaultCircleErrorRate)
	ring := RoundedRectVertices(x, y, w, h, radius, segments)
	verts := make([]mathx.Vec2, 0, len(ring)+2)
	center := mathx.Vec2{X: x + w/2, Y: y + h/2}
	verts = append(verts, center)
	verts = append(verts, ring...)
	verts = append(verts, ring[0])
	b.DrawTriangleFan(verts, col)
}
