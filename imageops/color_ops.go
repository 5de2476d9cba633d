package imageops

import (
	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rfimage"
)

// perPixelRGBA32 decodes every pixel of img to RGBA32, applies op, and
// encodes the result back into img's original format in dst, per §4.2's
// "per-pixel RGBA32 conversion, operation, encode-back" shape shared by
// tint/invert/contrast/brightness/replace.
func perPixelRGBA32(dst []byte, img rfimage.Image, op func(mathx.Color) mathx.Color) rfimage.Image {
	if !img.Valid || img.Format.IsCompressed() {
		return rfimage.Invalid()
	}
	bpp := pixelformat.BytesPerPixel(img.Format)
	if len(dst) < img.Size() {
		return rfimage.Invalid()
	}

	for i := 0; i < img.Width*img.Height; i++ {
		off := i * bpp
		c := pixelformat.DecodeToRGBA32(img.Data[off:off+bpp], img.Format)
		c = op(c)
		r, g, b, a := c.Normalized()
		pixelformat.EncodeFromNormalized(dst[off:off+bpp], img.Format, r, g, b, a)
	}
	return rfimage.Image{Data: dst[:img.Size()], Width: img.Width, Height: img.Height, Format: img.Format, Valid: true}
}

// ColorTintToBuffer multiplies every pixel by tint (channel-wise, over
// [0,255]) into dst.
func ColorTintToBuffer(dst []byte, img rfimage.Image, tint mathx.Color) rfimage.Image {
	tr, tg, tb, ta := tint.Normalized()
	return perPixelRGBA32(dst, img, func(c mathx.Color) mathx.Color {
		r, g, b, a := c.Normalized()
		return mathx.ColorFromNormalized(r*tr, g*tg, b*tb, a*ta)
	})
}

// ColorTint allocates the destination buffer and calls ColorTintToBuffer.
func ColorTint(img rfimage.Image, tint mathx.Color) rfimage.Image {
	return ColorTintToBuffer(make([]byte, img.Size()), img, tint)
}

// ColorInvertToBuffer inverts every RGB channel (A unchanged) into dst.
// ColorInvertToBuffer(ColorInvertToBuffer(img)) == img for RGBA32 images
// (§8).
func ColorInvertToBuffer(dst []byte, img rfimage.Image) rfimage.Image {
	return perPixelRGBA32(dst, img, func(c mathx.Color) mathx.Color {
		return mathx.Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
	})
}

// ColorInvert allocates the destination buffer and calls ColorInvertToBuffer.
func ColorInvert(img rfimage.Image) rfimage.Image {
	return ColorInvertToBuffer(make([]byte, img.Size()), img)
}

// ColorContrastToBuffer applies contrast in [-100,100], mapping to a
// multiplier ((100+c)/100)² around the midpoint 0.5, per §4.2.
func ColorContrastToBuffer(dst []byte, img rfimage.Image, contrast float32) rfimage.Image {
	if contrast < -100 {
		contrast = -100
	}
	if contrast > 100 {
		contrast = 100
	}
	factor := ((100 + contrast) / 100)
	factor *= factor

	return perPixelRGBA32(dst, img, func(c mathx.Color) mathx.Color {
		r, g, b, a := c.Normalized()
		apply := func(v float32) float32 { return (v-0.5)*factor + 0.5 }
		return mathx.ColorFromNormalized(apply(r), apply(g), apply(b), a)
	})
}

// ColorContrast allocates the destination buffer and calls
// ColorContrastToBuffer.
func ColorContrast(img rfimage.Image, contrast float32) rfimage.Image {
	return ColorContrastToBuffer(make([]byte, img.Size()), img, contrast)
}

// ColorBrightnessToBuffer applies additive brightness in [-255,255],
// clamped per channel, per §4.2.
func ColorBrightnessToBuffer(dst []byte, img rfimage.Image, brightness int) rfimage.Image {
	if brightness < -255 {
		brightness = -255
	}
	if brightness > 255 {
		brightness = 255
	}
	b32 := float32(brightness)

	return perPixelRGBA32(dst, img, func(c mathx.Color) mathx.Color {
		clamp := func(v uint8) uint8 {
			r := float32(v) + b32
			if r < 0 {
				return 0
			}
			if r > 255 {
				return 255
			}
			return uint8(r)
		}
		return mathx.Color{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: c.A}
	})
}

// ColorBrightness allocates the destination buffer and calls
// ColorBrightnessToBuffer.
func ColorBrightness(img rfimage.Image, brightness int) rfimage.Image {
	return ColorBrightnessToBuffer(make([]byte, img.Size()), img, brightness)
}

// ColorReplaceToBuffer replaces every pixel equal to from (ignoring A, per
// EqualRGB) with to.
func ColorReplaceToBuffer(dst []byte, img rfimage.Image, from, to mathx.Color) rfimage.Image {
	return perPixelRGBA32(dst, img, func(c mathx.Color) mathx.Color {
		if c.EqualRGB(from) {
			return to
		}
		return c
	})
}

// ColorReplace allocates the destination buffer and calls
// ColorReplaceToBuffer.
func ColorReplace(img rfimage.Image, from, to mathx.Color) rfimage.Image {
	return ColorReplaceToBuffer(make([]byte, img.Size()), img, from, to)
}

// AlphaClearToBuffer replaces every pixel whose alpha is <= threshold*255
// with fill, per §4.2.
func AlphaClearToBuffer(dst []byte, img rfimage.Image, fill mathx.Color, threshold float32) rfimage.Image {
	cut := threshold * 255
	return perPixelRGBA32(dst, img, func(c mathx.Color) mathx.Color {
		if float32(c.A) <= cut {
			return fill
		}
		return c
	})
}

// AlphaClear allocates the destination buffer and calls AlphaClearToBuffer.
func AlphaClear(img rfimage.Image, fill mathx.Color, threshold float32) rfimage.Image {
	return AlphaClearToBuffer(make([]byte, img.Size()), img, fill, threshold)
}

// AlphaPremultiplyToBuffer scales (r,g,b) by alpha/255, per §4.2. Pixels
// with alpha=255 are unchanged (§8's premultiply-idempotence property).
func AlphaPremultiplyToBuffer(dst []byte, img rfimage.Image) rfimage.Image {
	return perPixelRGBA32(dst, img, func(c mathx.Color) mathx.Color {
		scale := float32(c.A) / 255
		return mathx.Color{
			R: uint8(float32(c.R) * scale),
			G: uint8(float32(c.G) * scale),
			B: uint8(float32(c.B) * scale),
			A: c.A,
		}
	})
}

// AlphaPremultiply allocates the destination buffer and calls
// AlphaPremultiplyToBuffer.
func AlphaPremultiply(img rfimage.Image) rfimage.Image {
	return AlphaPremultiplyToBuffer(make([]byte, img.Size()), img)
}

// AlphaCropBounds computes the tight bounding box of pixels whose alpha
// exceeds threshold*255, per §4.2. ok is false if no pixel qualifies.
func AlphaCropBounds(img rfimage.Image, threshold float32) (rect mathx.IntRect, ok bool) {
	if !img.Valid || img.Format.IsCompressed() {
		return mathx.IntRect{}, false
	}
	bpp := pixelformat.BytesPerPixel(img.Format)
	cut := threshold * 255
	minX, minY := img.Width, img.Height
	maxX, maxY := -1, -1

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			off := (y*img.Width + x) * bpp
			c := pixelformat.DecodeToRGBA32(img.Data[off:off+bpp], img.Format)
			if float32(c.A) > cut {
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if maxX < minX || maxY < minY {
		return mathx.IntRect{}, false
	}
	return mathx.IntRect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}, true
}

// AlphaCrop crops img to its tight alpha bounding box, per §4.2.
func AlphaCrop(img rfimage.Image, threshold float32) rfimage.Image {
	rect, ok := AlphaCropBounds(img, threshold)
	if !ok {
		return rfimage.Invalid()
	}
	return Crop(img, rect)
}
