package batch

import (
	"github.com/rayfork/rayfork-go/gpusink"
	"github.com/rayfork/rayfork-go/mathx"
)

// Rect is an axis-aligned rectangle in either source (texel) or
// destination (draw-space) coordinates.
type Rect struct {
	X, Y, Width, Height float32
}

// DrawTextureRegion draws the src rectangle of tex into the dst
// rectangle, rotated by angleDegrees around origin (in dst-local
// coordinates), applied as translate-rotate-translate on the sink's
// matrix stack per §4.6's texture-region contract.
func (b *Batcher) DrawTextureRegion(tex gpusink.TextureHandle, src, dst Rect, origin mathx.Vec2, angleDegrees float32, tint mathx.Color) {
	b.Flush()
	b.sink.EnableTexture(tex.ID)
	b.sink.Push()
	b.sink.Translate(dst.X, dst.Y, 0)
	b.sink.Rotate(angleDegrees, 0, 0, 1)
	b.sink.Translate(-origin.X, -origin.Y, 0)

	texW, texH := float32(tex.Width), float32(tex.Height)
	left, right := src.X/texW, (src.X+src.Width)/texW
	top, bottom := src.Y/texH, (src.Y+src.Height)/texH
	if src.Width < 0 {
		left, right = right, left
	}
	if src.Height < 0 {
		top, bottom = bottom, top
	}

	b.reserve(6)
	b.sink.Begin(int(Quads))
	b.sink.Color4ub(tint.R, tint.G, tint.B, tint.A)
	b.sink.Normal3f(0, 0, 1)

	b.sink.TexCoord2f(left, top)
	b.sink.Vertex2f(0, 0)
	b.sink.TexCoord2f(left, bottom)
	b.sink.Vertex2f(0, dst.Height)
	b.sink.TexCoord2f(right, bottom)
	b.sink.Vertex2f(dst.Width, dst.Height)
	b.sink.TexCoord2f(right, top)
	b.sink.Vertex2f(dst.Width, 0)

	b.sink.End()
	b.sink.Pop()
	b.Flush()
	b.sink.DisableTexture()
}

// NPatchLayout holds the independent border widths of a nine-slice (or
// three-slice, when Top==Bottom==0 or Left==Right==0) patch, per §4.6.
type NPatchLayout struct {
	Left, Top, Right, Bottom float32
}

// DrawNPatch draws tex's src rectangle, sliced by layout, stretched to
// fill dst: corners keep their native size, edges and center stretch.
// When dst is narrower (or shorter) than the sum of its borders, the
// corners shrink proportionally and the center region is omitted,
// matching the original's degenerate-size behavior exactly (§4.6).
func (b *Batcher) DrawNPatch(tex gpusink.TextureHandle, src Rect, layout NPatchLayout, dst Rect, tint mathx.Color) {
	left, right := layout.Left, layout.Right
	top, bottom := layout.Top, layout.Bottom

	if hSum := left + right; hSum > dst.Width && hSum > 0 {
		scale := dst.Width / hSum
		left *= scale
		right *= scale
	}
	if vSum := top + bottom; vSum > dst.Height && vSum > 0 {
		scale := dst.Height / vSum
		top *= scale
		bottom *= scale
	}

	srcXs := [4]float32{src.X, src.X + layout.Left, src.X + src.Width - layout.Right, src.X + src.Width}
	srcYs := [4]float32{src.Y, src.Y + layout.Top, src.Y + src.Height - layout.Bottom, src.Y + src.Height}
	dstXs := [4]float32{dst.X, dst.X + left, dst.X + dst.Width - right, dst.X + dst.Width}
	dstYs := [4]float32{dst.Y, dst.Y + top, dst.Y + dst.Height - bottom, dst.Y + dst.Height}

	omitCenter := left+right > dst.Width || top+bottom > dst.Height

	b.Flush()
	b.sink.EnableTexture(tex.ID)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if omitCenter && row == 1 && col == 1 {
				continue
			}
			cellSrc := Rect{
				X: srcXs[col], Y: srcYs[row],
				Width:  srcXs[col+1] - srcXs[col],
				Height: srcYs[row+1] - srcYs[row],
			}
			cellDst := Rect{
				X: dstXs[col], Y: dstYs[row],
				Width:  dstXs[col+1] - dstXs[col],
				Height: dstYs[row+1] - dstYs[row],
			}
			if cellSrc.Width <= 0 || cellSrc.Height <= 0 || cellDst.Width <= 0 || cellDst.Height <= 0 {
				continue
			}
			b.drawPatchCell(tex, cellSrc, cellDst, tint)
		}
	}
	b.sink.DisableTexture()
}

func (b *Batcher) drawPatchCell(tex gpusink.TextureHandle, src, dst Rect, tint mathx.Color) {
	texW, texH := float32(tex.Width), float32(tex.Height)
	left, right := src.X/texW, (src.X+src.Width)/texW
	top, bottom := src.Y/texH, (src.Y+src.Height)/texH

	b.reserve(6)
	b.sink.Begin(int(Quads))
	b.sink.Color4ub(tint.R, tint.G, tint.B, tint.A)
	b.sink.TexCoord2f(left, top)
	b.sink.Vertex2f(dst.X, dst.Y)
	b.sink.TexCoord2f(left, bottom)
	b.sink.Vertex2f(dst.X, dst.Y+dst.Height)
	b.sink.TexCoord2f(right, bottom)
	b.sink.Vertex2f(dst.X+dst.Width, dst.Y+dst.Height)
	b.sink.TexCoord2f(right, top)
	b.sink.Vertex2f(dst.X+dst.Width, dst.Y)
	b.sink.End()
}
