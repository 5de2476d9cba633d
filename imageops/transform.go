package imageops

import (
	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rfimage"
)

// CropToBuffer clamps rect to img's bounds, then copies the cropped
// region into dst pixel-by-pixel honoring the format's byte depth (§4.2).
func CropToBuffer(dst []byte, img rfimage.Image, rect mathx.IntRect) rfimage.Image {
	if !img.Valid || img.Format.IsCompressed() {
		return rfimage.Invalid()
	}
	rect = rect.Clamp(img.Width, img.Height)
	if rect.Empty() {
		return rfimage.Invalid()
	}
	bpp := pixelformat.BytesPerPixel(img.Format)
	want := rect.Width * rect.Height * bpp
	if len(dst) < want {
		return rfimage.Invalid()
	}

	for row := 0; row < rect.Height; row++ {
		srcOff := ((rect.Y+row)*img.Width + rect.X) * bpp
		dstOff := row * rect.Width * bpp
		copy(dst[dstOff:dstOff+rect.Width*bpp], img.Data[srcOff:srcOff+rect.Width*bpp])
	}
	return rfimage.Image{Data: dst[:want], Width: rect.Width, Height: rect.Height, Format: img.Format, Valid: true}
}

// Crop allocates the destination buffer and calls CropToBuffer.
func Crop(img rfimage.Image, rect mathx.IntRect) rfimage.Image {
	dst := make([]byte, rect.Width*rect.Height*pixelformat.BytesPerPixel(img.Format))
	return CropToBuffer(dst, img, rect)
}

// FlipVerticalToBuffer flips img top-to-bottom into dst. dst may alias
// img.Data, since the swap is safe in-place (§4.2).
func FlipVerticalToBuffer(dst []byte, img rfimage.Image) rfimage.Image {
	if !img.Valid || img.Format.IsCompressed() {
		return rfimage.Invalid()
	}
	bpp := pixelformat.BytesPerPixel(img.Format)
	rowBytes := img.Width * bpp
	if len(dst) < img.Size() {
		return rfimage.Invalid()
	}

	tmp := make([]byte, rowBytes)
	for y := 0; y < img.Height/2; y++ {
		top := y * rowBytes
		bottom := (img.Height - 1 - y) * rowBytes
		copy(tmp, img.Data[top:top+rowBytes])
		copy(dst[top:top+rowBytes], img.Data[bottom:bottom+rowBytes])
		copy(dst[bottom:bottom+rowBytes], tmp)
	}
	if img.Height%2 == 1 {
		mid := (img.Height / 2) * rowBytes
		copy(dst[mid:mid+rowBytes], img.Data[mid:mid+rowBytes])
	}
	return rfimage.Image{Data: dst[:img.Size()], Width: img.Width, Height: img.Height, Format: img.Format, Valid: true}
}

// FlipVertical flips img in place (Data is reused as the destination).
func FlipVertical(img rfimage.Image) rfimage.Image { return FlipVerticalToBuffer(img.Data, img) }

// FlipHorizontalToBuffer flips img left-to-right into dst. Safe in-place.
func FlipHorizontalToBuffer(dst []byte, img rfimage.Image) rfimage.Image {
	if !img.Valid || img.Format.IsCompressed() {
		return rfimage.Invalid()
	}
	bpp := pixelformat.BytesPerPixel(img.Format)
	if len(dst) < img.Size() {
		return rfimage.Invalid()
	}

	tmp := make([]byte, bpp)
	rowBytes := img.Width * bpp
	for y := 0; y < img.Height; y++ {
		rowOff := y * rowBytes
		for x := 0; x < img.Width/2; x++ {
			left := rowOff + x*bpp
			right := rowOff + (img.Width-1-x)*bpp
			copy(tmp, img.Data[left:left+bpp])
			copy(dst[left:left+bpp], img.Data[right:right+bpp])
			copy(dst[right:right+bpp], tmp)
		}
		if img.Width%2 == 1 {
			mid := rowOff + (img.Width/2)*bpp
			copy(dst[mid:mid+bpp], img.Data[mid:mid+bpp])
		}
	}
	return rfimage.Image{Data: dst[:img.Size()], Width: img.Width, Height: img.Height, Format: img.Format, Valid: true}
}

// FlipHorizontal flips img in place.
func FlipHorizontal(img rfimage.Image) rfimage.Image { return FlipHorizontalToBuffer(img.Data, img) }

// RotateCW rotates img 90 degrees clockwise into a new, differently-
// shaped image: dst[x*H + (H-1-y)] = src[y*W + x], per §4.2.
func RotateCW(img rfimage.Image) rfimage.Image {
	if !img.Valid || img.Format.IsCompressed() {
		return rfimage.Invalid()
	}
	bpp := pixelformat.BytesPerPixel(img.Format)
	w, h := img.Width, img.Height
	dst := make([]byte, w*h*bpp)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcOff := (y*w + x) * bpp
			dstIdx := x*h + (h - 1 - y)
			dstOff := dstIdx * bpp
			copy(dst[dstOff:dstOff+bpp], img.Data[srcOff:srcOff+bpp])
		}
	}
	return rfimage.Image{Data: dst, Width: h, Height: w, Format: img.Format, Valid: true}
}

// RotateCCW rotates img 90 degrees counter-clockwise; it is the inverse
// of RotateCW (§8's rotate-group property).
func RotateCCW(img rfimage.Image) rfimage.Image {
	if !img.Valid || img.Format.IsCompressed() {
		return rfimage.Invalid()
	}
	bpp := pixelformat.BytesPerPixel(img.Format)
	w, h := img.Width, img.Height
	dst := make([]byte, w*h*bpp)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcOff := (y*w + x) * bpp
			dstIdx := (w-1-x)*h + y
			dstOff := dstIdx * bpp
			copy(dst[dstOff:dstOff+bpp], img.Data[srcOff:srcOff+bpp])
		}
	}
	return rfimage.Image{Data: dst, Width: h, Height: w, Format: img.Format, Valid: true}
}
