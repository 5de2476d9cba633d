package imageops

import (
	stdcolor "image"
	"image/color"

	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rfimage"
)

// rawAdapter wraps a raw rayfork pixel buffer so it satisfies
// image.Image and draw.Image, letting golang.org/x/image/draw's
// resampling kernels operate directly on it without an intermediate
// copy into a stdlib image type (§4.2's bilinear Resize path for the
// four STB-native formats).
type rawAdapter struct {
	data   []byte
	width  int
	height int
	format pixelformat.Format
}

func (a *rawAdapter) ColorModel() color.Model { return color.NRGBAModel }

func (a *rawAdapter) Bounds() stdcolor.Rectangle {
	return stdcolor.Rect(0, 0, a.width, a.height)
}

func (a *rawAdapter) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return color.NRGBA{}
	}
	bpp := pixelformat.BytesPerPixel(a.format)
	off := (y*a.width + x) * bpp
	c := pixelformat.DecodeToRGBA32(a.data[off:off+bpp], a.format)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (a *rawAdapter) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return
	}
	bpp := pixelformat.BytesPerPixel(a.format)
	off := (y*a.width + x) * bpp
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	mc := mathx.Color{R: nrgba.R, G: nrgba.G, B: nrgba.B, A: nrgba.A}
	r, g, b, al := mc.Normalized()
	pixelformat.EncodeFromNormalized(a.data[off:off+bpp], a.format, r, g, b, al)
}

// isNativelyResizable reports whether f is one of the four formats the
// external resampler (here, x/image/draw) supports directly, per §4.2.
func isNativelyResizable(f pixelformat.Format) bool {
	switch f {
	case pixelformat.Grayscale, pixelformat.GrayAlpha, pixelformat.R8G8B8, pixelformat.R8G8B8A8:
		return true
	default:
		return false
	}
}

func newAdapter(img rfimage.Image) *rawAdapter {
	return &rawAdapter{data: img.Data, width: img.Width, height: img.Height, format: img.Format}
}
