package imageops

import (
	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rfimage"
)

// DrawInto composites src onto dst at the position and size described by
// dstRect (clamped to dst's bounds), alpha-blending each destination pixel
// with the "over" operator out.a = s.a + d.a*(1-s.a), per §4.2. If src's
// pixel dimensions differ from dstRect's, src is resized (bilinear) into a
// scratch buffer first. dst is mutated in place and returned.
func DrawInto(dst rfimage.Image, src rfimage.Image, dstRect mathx.IntRect) rfimage.Image {
	if !dst.Valid || !src.Valid || dst.Format.IsCompressed() || src.Format.IsCompressed() {
		return rfimage.Invalid()
	}
	dstRect = dstRect.Clamp(dst.Width, dst.Height)
	if dstRect.Empty() {
		return dst
	}

	if src.Width != dstRect.Width || src.Height != dstRect.Height {
		src = ResizeBilinear(src, dstRect.Width, dstRect.Height)
		if !src.Valid {
			return rfimage.Invalid()
		}
	}

	dstBpp := pixelformat.BytesPerPixel(dst.Format)
	srcBpp := pixelformat.BytesPerPixel(src.Format)

	for y := 0; y < dstRect.Height; y++ {
		for x := 0; x < dstRect.Width; x++ {
			sOff := (y*src.Width + x) * srcBpp
			sc := pixelformat.DecodeToRGBA32(src.Data[sOff:sOff+srcBpp], src.Format)

			dx, dy := dstRect.X+x, dstRect.Y+y
			dOff := (dy*dst.Width + dx) * dstBpp
			dc := pixelformat.DecodeToRGBA32(dst.Data[dOff:dOff+dstBpp], dst.Format)

			out := blendOver(sc, dc)
			r, g, b, a := out.Normalized()
			pixelformat.EncodeFromNormalized(dst.Data[dOff:dOff+dstBpp], dst.Format, r, g, b, a)
		}
	}
	return dst
}

// blendOver composites s over d using the standard alpha-over operator,
// per §4.2: out.a = s.a + d.a*(1-s.a); out.rgb is the alpha-weighted
// average of s.rgb and d.rgb, scaled back out of premultiplied space.
func blendOver(s, d mathx.Color) mathx.Color {
	sa := float32(s.A) / 255
	da := float32(d.A) / 255
	oa := sa + da*(1-sa)
	if oa <= 0 {
		return mathx.Color{}
	}

	blend := func(sc, dc uint8) uint8 {
		sv, dv := float32(sc)/255, float32(dc)/255
		ov := (sv*sa + dv*da*(1-sa)) / oa
		return uint8(mathx.Clamp(ov*255+0.5, 0, 255))
	}
	return mathx.Color{
		R: blend(s.R, d.R),
		G: blend(s.G, d.G),
		B: blend(s.B, d.B),
		A: uint8(mathx.Clamp(oa*255+0.5, 0, 255)),
	}
}
