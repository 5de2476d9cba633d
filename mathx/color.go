package mathx

// Color is a 4-byte RGBA color, the canonical in-memory color used across
// the pixel-format and image-operation pipelines (§3).
type Color struct {
	R, G, B, A uint8
}

// Equal reports whether c and o have identical R, G, B, and A.
func (c Color) Equal(o Color) bool { return c == o }

// EqualRGB reports whether c and o match on R, G, B, ignoring A (§3).
func (c Color) EqualRGB(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// Luma returns the ITU-R luma of c using the weights §4.1 specifies for
// grayscale conversion: 0.299r + 0.587g + 0.114b.
func (c Color) Luma() uint8 {
	v := 0.299*float32(c.R) + 0.587*float32(c.G) + 0.114*float32(c.B)
	return uint8(clampF(v, 0, 255))
}

// Normalized returns c as a normalized RGBA float tuple in [0,1], the
// canonical pivot representation for format conversion (§4.1).
func (c Color) Normalized() (r, g, b, a float32) {
	const inv = 1.0 / 255.0
	return float32(c.R) * inv, float32(c.G) * inv, float32(c.B) * inv, float32(c.A) * inv
}

// ColorFromNormalized builds a Color from a normalized RGBA float tuple,
// rounding each channel to the nearest byte.
func ColorFromNormalized(r, g, b, a float32) Color {
	return Color{
		R: uint8(clampF(r*255+0.5, 0, 255)),
		G: uint8(clampF(g*255+0.5, 0, 255)),
		B: uint8(clampF(b*255+0.5, 0, 255)),
		A: uint8(clampF(a*255+0.5, 0, 255)),
	}
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp returns the per-channel linear interpolation between c and o.
func (c Color) Lerp(o Color, t float32) Color {
	lerp := func(a, b uint8) uint8 {
		return uint8(clampF(float32(a)+(float32(b)-float32(a))*t, 0, 255))
	}
	return Color{lerp(c.R, o.R), lerp(c.G, o.G), lerp(c.B, o.B), lerp(c.A, o.A)}
}
