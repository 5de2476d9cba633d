package textfont

import (
	"math"
	"testing"

	"github.com/rayfork/rayfork-go/pixelformat"
	"github.com/rayfork/rayfork-go/rfimage"
)

func TestShelfAllocatorPlacesFirstRectAtOrigin(t *testing.T) {
	a := NewShelfAllocator(100, 100, 1)
	x, y, ok := a.Allocate(10, 10)
	if !ok || x != 0 || y != 0 {
		t.Fatalf("expected first allocation at (0,0), got (%d,%d) ok=%v", x, y, ok)
	}
}

func TestShelfAllocatorPacksAlongShelfBeforeNewRow(t *testing.T) {
	a := NewShelfAllocator(100, 100, 0)
	x1, y1, _ := a.Allocate(10, 10)
	x2, y2, _ := a.Allocate(10, 10)
	if y1 != y2 {
		t.Fatalf("expected second rect on the same shelf, got y1=%d y2=%d", y1, y2)
	}
	if x2 <= x1 {
		t.Fatalf("expected second rect to the right of the first, got x1=%d x2=%d", x1, x2)
	}
}

func TestShelfAllocatorStartsNewShelfWhenRowFull(t *testing.T) {
	a := NewShelfAllocator(15, 100, 0)
	_, y1, ok1 := a.Allocate(10, 10)
	_, y2, ok2 := a.Allocate(10, 10)
	if !ok1 || !ok2 {
		t.Fatal("expected both allocations to succeed")
	}
	if y2 <= y1 {
		t.Fatalf("expected overflow rect on a new shelf below, got y1=%d y2=%d", y1, y2)
	}
}

func TestShelfAllocatorFailsWhenAtlasFull(t *testing.T) {
	a := NewShelfAllocator(10, 10, 0)
	_, _, ok := a.Allocate(20, 20)
	if ok {
		t.Fatal("expected oversized rect to fail to allocate")
	}
}

func TestShelfAllocatorUtilizationTracksAllocatedArea(t *testing.T) {
	a := NewShelfAllocator(100, 100, 0)
	a.Allocate(10, 10)
	if got := a.Utilization(); got <= 0 || got >= 1 {
		t.Fatalf("expected utilization in (0,1), got %v", got)
	}
}

// TestAtlasSizeIsPowerOfTwo exercises the §8 "Atlas coverage" Testable
// Property: the picked side is the least power-of-two >=
// ceil(sqrt(A*1.69)), where A is the total padded glyph area.
func TestAtlasSizeIsPowerOfTwo(t *testing.T) {
	dims := []AtlasGlyphDims{
		{Width: 12, Height: 16},
		{Width: 8, Height: 16},
		{Width: 20, Height: 24},
	}
	padding := 1

	var total float64
	for _, d := range dims {
		w := float64(d.Width + 2*padding)
		h := float64(d.Height + 2*padding)
		total += w * h
	}
	wantMin := math.Ceil(math.Sqrt(total * 1.69))

	side := AtlasSize(dims, padding)

	if side&(side-1) != 0 {
		t.Fatalf("expected a power of two, got %d", side)
	}
	if float64(side) < wantMin {
		t.Fatalf("expected side >= %v, got %d", wantMin, side)
	}
	if half := side / 2; half >= int(wantMin) && half&(half-1) == 0 {
		t.Fatalf("expected the LEAST power of two >= %v, but %d also qualifies", wantMin, half)
	}
}

func TestAtlasSizeEmptyGlyphSetReturnsOne(t *testing.T) {
	if got := AtlasSize(nil, 1); got != 1 {
		t.Fatalf("expected a degenerate atlas size of 1 for no glyphs, got %d", got)
	}
}

func TestBlitWritesCoverageIntoAlphaChannelKeepingGrayOpaque(t *testing.T) {
	const side = 8
	img := rfimage.Image{
		Data:   make([]byte, side*side*2),
		Width:  side,
		Height: side,
		Format: pixelformat.GrayAlpha,
		Valid:  true,
	}
	for i := 0; i < len(img.Data); i += 2 {
		img.Data[i] = 255
	}

	bmp := &GlyphBitmap{
		Pix:    []byte{10, 20, 30, 40},
		Width:  2,
		Height: 2,
	}
	blit(&img, 1, 1, bmp)

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			off := ((1+row)*side + (1 + col)) * 2
			if img.Data[off] != 255 {
				t.Fatalf("expected gray channel 255 at (%d,%d), got %d", col, row, img.Data[off])
			}
			want := bmp.Pix[row*2+col]
			if img.Data[off+1] != want {
				t.Fatalf("expected alpha channel %d at (%d,%d), got %d", want, col, row, img.Data[off+1])
			}
		}
	}
}
