package imageops

import (
	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rfimage"
)

// ExtractPalette scans img and returns the set of distinct colors it
// contains, up to maxColors entries, via linear-probe deduplication into a
// fixed-size buffer, per §4.2. ok is false if img has more than maxColors
// distinct colors or is invalid/compressed; in that case the returned
// slice holds whatever was collected before the cap was hit.
func ExtractPalette(img rfimage.Image, maxColors int) (palette []mathx.Color, ok bool) {
	if !img.Valid || img.Format.IsCompressed() || maxColors <= 0 {
		return nil, false
	}
	bpp := pixelformat.BytesPerPixel(img.Format)
	palette = make([]mathx.Color, 0, maxColors)

	for i := 0; i < img.Width*img.Height; i++ {
		off := i * bpp
		c := pixelformat.DecodeToRGBA32(img.Data[off:off+bpp], img.Format)

		found := false
		for _, p := range palette {
			if p.Equal(c) {
				found = true
				break
			}
		}
		if found {
			continue
		}
		if len(palette) >= maxColors {
			return palette, false
		}
		palette = append(palette, c)
	}
	return palette, true
}
