package mathx

// Rect is an axis-aligned rectangle with a top-left origin, float32 valued
// per §4.5/§4.6 usage (texture regions, n-patch borders, atlas rectangles).
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether p lies within r (inclusive of the edges).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersect returns the intersection of r and s, and whether it is non-empty.
func (r Rect) Intersect(s Rect) (Rect, bool) {
	x0 := max32(r.X, s.X)
	y0 := max32(r.Y, s.Y)
	x1 := min32(r.X+r.Width, s.X+s.Width)
	y1 := min32(r.Y+r.Height, s.Y+s.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}, true
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// IntRect is an integer-valued rectangle, used where pixel-exact bounds
// matter (crop, alpha-crop bounding box, atlas packing).
type IntRect struct {
	X, Y, Width, Height int
}

// Clamp returns r clamped to lie fully within [0,0,w,h].
func (r IntRect) Clamp(w, h int) IntRect {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > w {
		x1 = w
	}
	if y1 > h {
		y1 = h
	}
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return IntRect{x0, y0, x1 - x0, y1 - y0}
}

func (r IntRect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }
