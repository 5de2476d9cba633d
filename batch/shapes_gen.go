package batch

import (
	"math"

	"github.com/rayfork/rayfork-go/mathx"
)

// RegularPolygonVertices returns the n vertices of a regular polygon
// centered at (x, y) with circumradius r, starting at rotation radians,
// for the batcher's shape-decomposition facet (§4.6). Adapted from the
// teacher's Context.DrawRegularPolygon, which built the same vertex ring
// via MoveTo/LineTo against a path instead of returning it directly.
func RegularPolygonVertices(n int, x, y, r, rotation float32) []mathx.Vec2 {
	if n < 3 {
		return nil
	}
	verts := make([]mathx.Vec2, n)
	angle := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := float64(rotation) + angle*float64(i)
		verts[i] = mathx.Vec2{
			X: x + r*float32(math.Cos(a)),
			Y: y + r*float32(math.Sin(a)),
		}
	}
	return verts
}

// CircleSegments returns vertices approximating a circle of radius r
// centered at (x, y) using segments straight edges: a regular polygon
// whose first vertex lies at angle 0.
func CircleSegments(x, y, r float32, segments int) []mathx.Vec2 {
	return RegularPolygonVertices(segments, x, y, r, 0)
}

// RingSegments returns a closed strip of vertices tracing an annulus
// between innerR and outerR, alternating inner/outer points so the
// emitter can submit them as a triangle strip.
func RingSegments(x, y, innerR, outerR float32, segments int) []mathx.Vec2 {
	if segments < 3 {
		return nil
	}
	verts := make([]mathx.Vec2, 0, segments*2+2)
	angle := 2 * math.Pi / float64(segments)
	for i := 0; i <= segments; i++ {
		a := angle * float64(i)
		cos, sin := float32(math.Cos(a)), float32(math.Sin(a))
		verts = append(verts,
			mathx.Vec2{X: x + innerR*cos, Y: y + innerR*sin},
			mathx.Vec2{X: x + outerR*cos, Y: y + outerR*sin},
		)
	}
	return verts
}

// RoundedRectVertices returns the vertex ring of an axis-aligned
// rectangle with circular-arc corners of radius r, built from four
// quarter-circle corner fans connected by the straight edges, per the
// batcher's rounded-rect decomposition.
func RoundedRectVertices(x, y, w, h, r float32, cornerSegments int) []mathx.Vec2 {
	if r <= 0 {
		return []mathx.Vec2{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
	}
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	corners := [4]mathx.Vec2{
		{X: x + w - r, Y: y + r},     // top-right center
		{X: x + w - r, Y: y + h - r}, // bottom-right center
		{X: x + r, Y: y + h - r},     // bottom-left center
		{X: x + r, Y: y + r},         // top-left center
	}
	var verts []mathx.Vec2
	for i, c := range corners {
		startAngle := -math.Pi/2 + math.Pi/2*float64(i)
		for s := 0; s <= cornerSegments; s++ {
			a := startAngle + (math.Pi/2)*float64(s)/float64(cornerSegments)
			verts = append(verts, mathx.Vec2{
				X: c.X + r*float32(math.Cos(a)),
				Y: c.Y + r*float32(math.Sin(a)),
			})
		}
	}
	return verts
}
