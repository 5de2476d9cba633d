// Package imageops implements the image operations of §4.2: resize, crop,
// flip, rotate, color/alpha operations, dithering, procedural generation,
// mipmap chain construction, palette extraction, and image composition.
//
// Every mutating operation follows the teacher's _to_buffer-plus-
// convenience-wrapper shape (grounded on gg's Pixmap methods, which
// always operate against a caller-owned []byte): the *ToBuffer variant is
// the primitive, the allocating variant is a one-line wrapper, and size
// checks are explicit, returning an invalid image on mismatch (§4.2).
package imageops

import (
	ximagedraw "golang.org/x/image/draw"

	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rfimage"
)

// ResizeBilinearToBuffer resizes img into dst (sized for dstW x dstH in
// img's format) using bilinear filtering, per §4.2. Natively-resizable
// formats (grayscale, gray-alpha, RGB, RGBA) are resampled directly via
// golang.org/x/image/draw; any other uncompressed format is converted to
// RGBA32 in a scratch buffer, resampled, then converted back.
func ResizeBilinearToBuffer(dst []byte, dstW, dstH int, img rfimage.Image) rfimage.Image {
	if !img.Valid || dstW <= 0 || dstH <= 0 {
		return rfimage.Invalid()
	}
	want := pixelformat.PixelBufferSize(dstW, dstH, img.Format)
	if len(dst) < want {
		return rfimage.Invalid()
	}

	if isNativelyResizable(img.Format) {
		src := newAdapter(img)
		out := &rawAdapter{data: dst, width: dstW, height: dstH, format: img.Format}
		ximagedraw.BiLinear.Scale(out, out.Bounds(), src, src.Bounds(), ximagedraw.Src, nil)
		return rfimage.Image{Data: dst[:want], Width: dstW, Height: dstH, Format: img.Format, Valid: true}
	}

	// Pivot through RGBA32.
	srcRGBA := make([]byte, img.Width*img.Height*4)
	if !pixelformat.FormatPixels(srcRGBA, pixelformat.R8G8B8A8, img.Data, img.Format, img.Width, img.Height) {
		return rfimage.Invalid()
	}
	dstRGBA := make([]byte, dstW*dstH*4)
	srcAdapter := &rawAdapter{data: srcRGBA, width: img.Width, height: img.Height, format: pixelformat.R8G8B8A8}
	dstAdapter := &rawAdapter{data: dstRGBA, width: dstW, height: dstH, format: pixelformat.R8G8B8A8}
	ximagedraw.BiLinear.Scale(dstAdapter, dstAdapter.Bounds(), srcAdapter, srcAdapter.Bounds(), ximagedraw.Src, nil)

	if !pixelformat.FormatPixels(dst, img.Format, dstRGBA, pixelformat.R8G8B8A8, dstW, dstH) {
		return rfimage.Invalid()
	}
	return rfimage.Image{Data: dst[:want], Width: dstW, Height: dstH, Format: img.Format, Valid: true}
}

// ResizeBilinear allocates the destination buffer and calls
// ResizeBilinearToBuffer.
func ResizeBilinear(img rfimage.Image, dstW, dstH int) rfimage.Image {
	dst := make([]byte, pixelformat.PixelBufferSize(dstW, dstH, img.Format))
	return ResizeBilinearToBuffer(dst, dstW, dstH, img)
}

// ResizeNearestToBuffer resizes img into dst using nearest-neighbor
// sampling with 16-bit fixed-point ratios, per §4.2:
// ratio = (src<<16)/dst + 1, samples per pixel by shifting back.
func ResizeNearestToBuffer(dst []byte, dstW, dstH int, img rfimage.Image) rfimage.Image {
	if !img.Valid || dstW <= 0 || dstH <= 0 || img.Format.IsCompressed() {
		return rfimage.Invalid()
	}
	bpp := pixelformat.BytesPerPixel(img.Format)
	want := dstW * dstH * bpp
	if len(dst) < want {
		return rfimage.Invalid()
	}

	xRatio := (img.Width<<16)/dstW + 1
	yRatio := (img.Height<<16)/dstH + 1

	for y := 0; y < dstH; y++ {
		sy := (y * yRatio) >> 16
		if sy >= img.Height {
			sy = img.Height - 1
		}
		for x := 0; x < dstW; x++ {
			sx := (x * xRatio) >> 16
			if sx >= img.Width {
				sx = img.Width - 1
			}
			srcOff := (sy*img.Width + sx) * bpp
			dstOff := (y*dstW + x) * bpp
			copy(dst[dstOff:dstOff+bpp], img.Data[srcOff:srcOff+bpp])
		}
	}
	return rfimage.Image{Data: dst[:want], Width: dstW, Height: dstH, Format: img.Format, Valid: true}
}

// ResizeNearest allocates the destination buffer and calls
// ResizeNearestToBuffer.
func ResizeNearest(img rfimage.Image, dstW, dstH int) rfimage.Image {
	dst := make([]byte, pixelformat.PixelBufferSize(dstW, dstH, img.Format))
	return ResizeNearestToBuffer(dst, dstW, dstH, img)
}
