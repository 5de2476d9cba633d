package imageops

import (
	"testing"

	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rfimage"
)

func checkerImage(w, h int) rfimage.Image {
	data := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		off := i * 4
		v := byte((i * 37) % 256)
		data[off], data[off+1], data[off+2], data[off+3] = v, byte(255-v), v/2, 255
	}
	return rfimage.Image{Data: data, Width: w, Height: h, Format: pixelformat.R8G8B8A8, Valid: true}
}

func TestFlipVerticalInvolution(t *testing.T) {
	img := checkerImage(5, 7)
	once := FlipVertical(rfimage.Image{Data: append([]byte(nil), img.Data...), Width: img.Width, Height: img.Height, Format: img.Format, Valid: true})
	twice := FlipVertical(once)
	for i := range img.Data {
		if twice.Data[i] != img.Data[i] {
			t.Fatalf("flip vertical not involutive at byte %d", i)
		}
	}
}

func TestFlipHorizontalInvolution(t *testing.T) {
	img := checkerImage(8, 3)
	once := FlipHorizontal(rfimage.Image{Data: append([]byte(nil), img.Data...), Width: img.Width, Height: img.Height, Format: img.Format, Valid: true})
	twice := FlipHorizontal(once)
	for i := range img.Data {
		if twice.Data[i] != img.Data[i] {
			t.Fatalf("flip horizontal not involutive at byte %d", i)
		}
	}
}

func TestRotateGroup(t *testing.T) {
	img := checkerImage(4, 6)
	rotated := RotateCW(img)
	back := RotateCCW(rotated)
	if back.Width != img.Width || back.Height != img.Height {
		t.Fatalf("rotate round trip changed dimensions: got %dx%d want %dx%d", back.Width, back.Height, img.Width, img.Height)
	}
	for i := range img.Data {
		if back.Data[i] != img.Data[i] {
			t.Fatalf("rotate CW then CCW not identity at byte %d", i)
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	img := checkerImage(4, 6)
	cur := img
	for i := 0; i < 4; i++ {
		cur = RotateCW(cur)
	}
	if cur.Width != img.Width || cur.Height != img.Height {
		t.Fatalf("four CW rotations changed shape")
	}
	for i := range img.Data {
		if cur.Data[i] != img.Data[i] {
			t.Fatalf("four CW rotations not identity at byte %d", i)
		}
	}
}

func TestCropIdempotent(t *testing.T) {
	img := checkerImage(10, 10)
	rect := mathx.IntRect{X: 2, Y: 2, Width: 4, Height: 4}
	once := Crop(img, rect)
	twice := Crop(once, mathx.IntRect{X: 0, Y: 0, Width: once.Width, Height: once.Height})
	if once.Width != twice.Width || once.Height != twice.Height {
		t.Fatalf("crop-of-full-bounds changed shape")
	}
	for i := range once.Data {
		if once.Data[i] != twice.Data[i] {
			t.Fatalf("crop not idempotent at byte %d", i)
		}
	}
}

func TestColorInvertInvolution(t *testing.T) {
	img := checkerImage(6, 6)
	once := ColorInvert(img)
	twice := ColorInvert(once)
	for i := range img.Data {
		if twice.Data[i] != img.Data[i] {
			t.Fatalf("invert not involutive at byte %d", i)
		}
	}
}

func TestAlphaPremultiplyIdempotentForOpaque(t *testing.T) {
	w, h := 4, 4
	data := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		off := i * 4
		data[off], data[off+1], data[off+2], data[off+3] = byte(10*i), byte(20*i), byte(5*i), 255
	}
	img := rfimage.Image{Data: data, Width: w, Height: h, Format: pixelformat.R8G8B8A8, Valid: true}
	out := AlphaPremultiply(img)
	for i := range img.Data {
		if out.Data[i] != img.Data[i] {
			t.Fatalf("premultiply changed an opaque pixel at byte %d: got %d want %d", i, out.Data[i], img.Data[i])
		}
	}
}

func TestMipmapSizeIdentity(t *testing.T) {
	img := checkerImage(16, 8)
	mm := GenMipmaps(img)
	if !mm.Valid {
		t.Fatal("mipmap generation invalid")
	}
	want := rfimage.MipChainSize(img.Width, img.Height, mm.Mipmaps, img.Format)
	if len(mm.Data) != want {
		t.Fatalf("mipmap chain size mismatch: got %d want %d", len(mm.Data), want)
	}
	if mm.Data[0] != img.Data[0] {
		t.Fatalf("mipmap level 0 does not match source")
	}
}

func TestResizeNearestPreservesDimensions(t *testing.T) {
	img := checkerImage(5, 5)
	out := ResizeNearest(img, 10, 3)
	if out.Width != 10 || out.Height != 3 {
		t.Fatalf("resize nearest wrong dims: got %dx%d", out.Width, out.Height)
	}
}

func TestAlphaCropTightensBounds(t *testing.T) {
	w, h := 6, 6
	data := make([]byte, w*h*4)
	img := rfimage.Image{Data: data, Width: w, Height: h, Format: pixelformat.R8G8B8A8, Valid: true}
	setPixel := func(x, y int, a byte) {
		off := (y*w + x) * 4
		img.Data[off+3] = a
	}
	setPixel(2, 2, 255)
	setPixel(3, 4, 255)

	rect, ok := AlphaCropBounds(img, 0.5)
	if !ok {
		t.Fatal("expected alpha bounds to be found")
	}
	if rect.X != 2 || rect.Y != 2 || rect.Width != 2 || rect.Height != 3 {
		t.Fatalf("unexpected alpha crop bounds: %+v", rect)
	}
}

func TestExtractPaletteDedup(t *testing.T) {
	w, h := 2, 2
	data := []byte{
		10, 10, 10, 255,
		10, 10, 10, 255,
		20, 20, 20, 255,
		30, 30, 30, 255,
	}
	img := rfimage.Image{Data: data, Width: w, Height: h, Format: pixelformat.R8G8B8A8, Valid: true}
	palette, ok := ExtractPalette(img, 8)
	if !ok {
		t.Fatal("expected palette extraction to succeed")
	}
	if len(palette) != 3 {
		t.Fatalf("expected 3 distinct colors, got %d", len(palette))
	}
}

func TestExtractPaletteOverflow(t *testing.T) {
	w, h := 2, 2
	data := []byte{
		10, 10, 10, 255,
		20, 20, 20, 255,
		30, 30, 30, 255,
		40, 40, 40, 255,
	}
	img := rfimage.Image{Data: data, Width: w, Height: h, Format: pixelformat.R8G8B8A8, Valid: true}
	_, ok := ExtractPalette(img, 2)
	if ok {
		t.Fatal("expected palette extraction to report overflow")
	}
}

func TestDrawIntoBlendsOpaqueSourceDirectly(t *testing.T) {
	dst := checkerImage(4, 4)
	src := rfimage.Image{
		Data:   []byte{100, 150, 200, 255},
		Width:  1,
		Height: 1,
		Format: pixelformat.R8G8B8A8,
		Valid:  true,
	}
	out := DrawInto(dst, src, mathx.IntRect{X: 1, Y: 1, Width: 1, Height: 1})
	off := (1*out.Width + 1) * 4
	if out.Data[off] != 100 || out.Data[off+1] != 150 || out.Data[off+2] != 200 || out.Data[off+3] != 255 {
		t.Fatalf("opaque draw-into did not overwrite destination pixel: got %v", out.Data[off:off+4])
	}
}

func TestGenPlainColorFillsUniformly(t *testing.T) {
	c := mathx.Color{R: 12, G: 34, B: 56, A: 255}
	img := GenPlainColor(3, 3, c)
	for i := 0; i < img.Width*img.Height; i++ {
		off := i * 4
		if img.Data[off] != c.R || img.Data[off+1] != c.G || img.Data[off+2] != c.B || img.Data[off+3] != c.A {
			t.Fatalf("pixel %d not uniform: %v", i, img.Data[off:off+4])
		}
	}
}

func TestGenCheckerAlternates(t *testing.T) {
	a := mathx.Color{R: 255, A: 255}
	b := mathx.Color{B: 255, A: 255}
	img := GenChecker(4, 4, 2, 2, a, b)
	first := img.Data[0:4]
	if first[0] != a.R {
		t.Fatalf("expected first cell to be color a")
	}
	lastOff := (img.Width - 1) * 4
	last := img.Data[lastOff : lastOff+4]
	if last[2] != b.B {
		t.Fatalf("expected top-right cell to be color b")
	}
}
