package pixelformat

import (
	"math"

	"github.com/rayfork/rayfork-go/mathx"
)

// DecodeToRGBA32 decodes the pixel at src[0:bytesPerPixel(f)] (or the
// appropriate float width for the float formats) into an mathx.Color,
// per §4.1's decode_one_pixel_to_rgba32.
func DecodeToRGBA32(src []byte, f Format) mathx.Color {
	r, g, b, a := DecodeToNormalized(src, f)
	return mathx.ColorFromNormalized(r, g, b, a)
}

// DecodeToNormalized decodes the pixel at src into a normalized RGBA
// float tuple in [0,1], the canonical pivot representation (§4.1).
func DecodeToNormalized(src []byte, f Format) (r, g, b, a float32) {
	switch f {
	case Grayscale:
		v := float32(src[0]) / 255
		return v, v, v, 1
	case GrayAlpha:
		v := float32(src[0]) / 255
		return v, v, v, float32(src[1]) / 255
	case R5G6B5:
		px := uint16(src[0]) | uint16(src[1])<<8
		r5 := (px >> 11) & 0x1F
		g6 := (px >> 5) & 0x3F
		b5 := px & 0x1F
		return float32(r5) / 31, float32(g6) / 63, float32(b5) / 31, 1
	case R8G8B8:
		return float32(src[0]) / 255, float32(src[1]) / 255, float32(src[2]) / 255, 1
	case R5G5B5A1:
		px := uint16(src[0]) | uint16(src[1])<<8
		r5 := (px >> 11) & 0x1F
		g5 := (px >> 6) & 0x1F
		b5 := (px >> 1) & 0x1F
		a1 := px & 0x1
		alpha := float32(0)
		if a1 != 0 {
			alpha = 1
		}
		return float32(r5) / 31, float32(g5) / 31, float32(b5) / 31, alpha
	case R4G4B4A4:
		px := uint16(src[0]) | uint16(src[1])<<8
		r4 := (px >> 12) & 0xF
		g4 := (px >> 8) & 0xF
		b4 := (px >> 4) & 0xF
		a4 := px & 0xF
		return float32(r4) / 15, float32(g4) / 15, float32(b4) / 15, float32(a4) / 15
	case R8G8B8A8:
		return float32(src[0]) / 255, float32(src[1]) / 255, float32(src[2]) / 255, float32(src[3]) / 255
	case R32:
		v := math.Float32frombits(uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24)
		return v, v, v, 1
	case R32G32B32:
		r = readF32(src[0:4])
		g = readF32(src[4:8])
		b = readF32(src[8:12])
		return r, g, b, 1
	case R32G32B32A32:
		r = readF32(src[0:4])
		g = readF32(src[4:8])
		b = readF32(src[8:12])
		a = readF32(src[12:16])
		return r, g, b, a
	default:
		return 0, 0, 0, 0
	}
}

func readF32(b []byte) float32 {
	return math.Float32frombits(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

func writeF32(dst []byte, v float32) {
	bits := math.Float32bits(v)
	dst[0] = byte(bits)
	dst[1] = byte(bits >> 8)
	dst[2] = byte(bits >> 16)
	dst[3] = byte(bits >> 24)
}

// EncodeFromNormalized packs a normalized RGBA float tuple into dst using
// format f's bit-exact layout (§4.1). dst must be at least
// BytesPerPixel(f) long.
func EncodeFromNormalized(dst []byte, f Format, r, g, b, a float32) {
	switch f {
	case Grayscale:
		dst[0] = byte(clampRound(luma(r, g, b) * 255))
	case GrayAlpha:
		dst[0] = byte(clampRound(luma(r, g, b) * 255))
		dst[1] = byte(clampRound(a * 255))
	case R5G6B5:
		r5 := uint16(clampRound(r*31)) & 0x1F
		g6 := uint16(clampRound(g*63)) & 0x3F
		b5 := uint16(clampRound(b*31)) & 0x1F
		px := r5<<11 | g6<<5 | b5
		dst[0] = byte(px)
		dst[1] = byte(px >> 8)
	case R8G8B8:
		dst[0] = byte(clampRound(r * 255))
		dst[1] = byte(clampRound(g * 255))
		dst[2] = byte(clampRound(b * 255))
	case R5G5B5A1:
		r5 := uint16(clampRound(r*31)) & 0x1F
		g5 := uint16(clampRound(g*31)) & 0x1F
		b5 := uint16(clampRound(b*31)) & 0x1F
		// Alpha is 1 bit, thresholded at 50/255 (§4.1, §6).
		var a1 uint16
		if a*255 >= 50 {
			a1 = 1
		}
		px := r5<<11 | g5<<6 | b5<<1 | a1
		dst[0] = byte(px)
		dst[1] = byte(px >> 8)
	case R4G4B4A4:
		r4 := uint16(clampRound(r*15)) & 0xF
		g4 := uint16(clampRound(g*15)) & 0xF
		b4 := uint16(clampRound(b*15)) & 0xF
		a4 := uint16(clampRound(a*15)) & 0xF
		px := r4<<12 | g4<<8 | b4<<4 | a4
		dst[0] = byte(px)
		dst[1] = byte(px >> 8)
	case R8G8B8A8:
		dst[0] = byte(clampRound(r * 255))
		dst[1] = byte(clampRound(g * 255))
		dst[2] = byte(clampRound(b * 255))
		dst[3] = byte(clampRound(a * 255))
	case R32:
		writeF32(dst[0:4], luma(r, g, b))
	case R32G32B32:
		writeF32(dst[0:4], r)
		writeF32(dst[4:8], g)
		writeF32(dst[8:12], b)
	case R32G32B32A32:
		writeF32(dst[0:4], r)
		writeF32(dst[4:8], g)
		writeF32(dst[8:12], b)
		writeF32(dst[12:16], a)
	}
}

func luma(r, g, b float32) float32 { return 0.299*r + 0.587*g + 0.114*b }

func clampRound(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return float32(math.Round(float64(v)))
}

// ConvertPixel converts a single pixel from srcFmt to dstFmt: a plain copy
// if srcFmt==dstFmt, otherwise a decode to normalized float RGBA followed
// by an encode into dstFmt, per §4.1's format_pixels contract restricted
// to one pixel.
func ConvertPixel(dst []byte, dstFmt Format, src []byte, srcFmt Format) {
	if srcFmt == dstFmt {
		copy(dst, src[:BytesPerPixel(srcFmt)])
		return
	}
	r, g, b, a := DecodeToNormalized(src, srcFmt)
	EncodeFromNormalized(dst, dstFmt, r, g, b, a)
}

// FormatPixels bulk-converts a full image buffer from srcFmt to dstFmt,
// per §4.1. It returns false (and leaves dst unspecified) if either
// format is compressed, or if either buffer is shorter than
// width*height*bpp of its format,
// per §4.1 and §7's Bad-size error kind.
func FormatPixels(dst []byte, dstFmt Format, src []byte, srcFmt Format, width, height int) bool {
	if srcFmt.IsCompressed() || dstFmt.IsCompressed() {
		return false
	}
	srcBpp := BytesPerPixel(srcFmt)
	dstBpp := BytesPerPixel(dstFmt)
	if len(src) < width*height*srcBpp || len(dst) < width*height*dstBpp {
		return false
	}

	for i := 0; i < width*height; i++ {
		si := i * srcBpp
		di := i * dstBpp
		ConvertPixel(dst[di:di+dstBpp], dstFmt, src[si:si+srcBpp], srcFmt)
	}
	return true
}
