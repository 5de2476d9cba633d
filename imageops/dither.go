package imageops

import (
	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rfimage"
)

// DitherFloydSteinberg quantizes img to a reduced-depth destination format
// (one of the 16-bit packed formats) by diffusing per-channel quantization
// error to the four neighboring not-yet-visited pixels with the classic
// Floyd-Steinberg weights, per §4.2:
//
//	        *  7/16
//	 3/16  5/16  1/16
//
// Quantization truncates toward the destination format's per-channel bit
// width rather than rounding, since the diffused error corrects the bias.
func DitherFloydSteinberg(img rfimage.Image, dstFmt pixelformat.Format) rfimage.Image {
	if !img.Valid || img.Format.IsCompressed() || dstFmt.IsCompressed() {
		return rfimage.Invalid()
	}
	rBits, gBits, bBits, aBits := channelBits(dstFmt)
	if rBits == 0 {
		return rfimage.Invalid()
	}

	srcBpp := pixelformat.BytesPerPixel(img.Format)
	w, h := img.Width, img.Height

	// Working buffer of float error-accumulated RGBA, one pixel ahead of
	// quantization so diffusion can mutate not-yet-visited neighbors.
	work := make([][4]float32, w*h)
	for i := 0; i < w*h; i++ {
		off := i * srcBpp
		r, g, b, a := pixelformat.DecodeToNormalized(img.Data[off:off+srcBpp], img.Format)
		work[i] = [4]float32{r * 255, g * 255, b * 255, a * 255}
	}

	dst := make([]byte, pixelformat.PixelBufferSize(w, h, dstFmt))
	dstBpp := pixelformat.BytesPerPixel(dstFmt)

	quantChannel := func(v float32, bits int) (q uint8, err float32) {
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		levels := float32(int(1) << uint(bits))
		step := 256 / levels
		idx := float32(int(v / step))
		q8 := idx * step
		if q8 > 255 {
			q8 = 255
		}
		return uint8(idx), v - q8
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			px := work[i]

			rq, rErr := quantChannel(px[0], rBits)
			gq, gErr := quantChannel(px[1], gBits)
			bq, bErr := quantChannel(px[2], bBits)
			var aq uint8
			var aErr float32
			if aBits > 0 {
				aq, aErr = quantChannel(px[3], aBits)
			} else {
				aq = 1
			}

			diffuse := func(dx, dy int, weight float32) {
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					return
				}
				j := ny*w + nx
				work[j][0] += rErr * weight
				work[j][1] += gErr * weight
				work[j][2] += bErr * weight
				work[j][3] += aErr * weight
			}
			diffuse(1, 0, 7.0/16)
			diffuse(-1, 1, 3.0/16)
			diffuse(0, 1, 5.0/16)
			diffuse(1, 1, 1.0/16)

			packChannels(dst[i*dstBpp:(i+1)*dstBpp], dstFmt, rq, gq, bq, aq, rBits, gBits, bBits, aBits)
		}
	}

	return rfimage.Image{Data: dst, Width: w, Height: h, Format: dstFmt, Valid: true}
}

// channelBits returns the per-channel bit widths of one of the packed
// 16-bit destination formats dither targets, per §4.1's layouts.
func channelBits(f pixelformat.Format) (r, g, b, a int) {
	switch f {
	case pixelformat.R5G6B5:
		return 5, 6, 5, 0
	case pixelformat.R5G5B5A1:
		return 5, 5, 5, 1
	case pixelformat.R4G4B4A4:
		return 4, 4, 4, 4
	default:
		return 0, 0, 0, 0
	}
}

// packChannels packs already-quantized channel indices (not byte values)
// into dst according to f's bit layout.
func packChannels(dst []byte, f pixelformat.Format, r, g, b, a uint8, rBits, gBits, bBits, aBits int) {
	switch f {
	case pixelformat.R5G6B5:
		px := uint16(r)<<11 | uint16(g)<<5 | uint16(b)
		dst[0] = byte(px)
		dst[1] = byte(px >> 8)
	case pixelformat.R5G5B5A1:
		px := uint16(r)<<11 | uint16(g)<<6 | uint16(b)<<1 | uint16(a)
		dst[0] = byte(px)
		dst[1] = byte(px >> 8)
	case pixelformat.R4G4B4A4:
		px := uint16(r)<<12 | uint16(g)<<8 | uint16(b)<<4 | uint16(a)
		dst[0] = byte(px)
		dst[1] = byte(px >> 8)
	}
}
