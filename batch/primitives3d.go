package batch

import (
	"math"

	"github.com/rayfork/rayfork-go/mathx"
)

// DrawCube draws an axis-aligned box centered at center with the given
// dimensions as 12 filled triangles (two per face), per §4.6.
func (b *Batcher) DrawCube(center mathx.Vec3, width, height, length float32, col mathx.Color) {
	hw, hh, hl := width/2, height/2, length/2

	b.reserve(36)
	b.sink.Begin(int(Triangles))
	b.sink.Color4ub(col.R, col.G, col.B, col.A)

	face := func(n mathx.Vec3, p0, p1, p2, p3 mathx.Vec3) {
		b.sink.Normal3f(n.X, n.Y, n.Z)
		emit := func(p mathx.Vec3) { b.sink.Vertex3f(center.X+p.X, center.Y+p.Y, center.Z+p.Z) }
		emit(p0)
		emit(p1)
		emit(p2)
		emit(p0)
		emit(p2)
		emit(p3)
	}

	face(mathx.Vec3{X: 0, Y: 0, Z: 1},
		mathx.Vec3{X: -hw, Y: -hh, Z: hl}, mathx.Vec3{X: hw, Y: -hh, Z: hl},
		mathx.Vec3{X: hw, Y: hh, Z: hl}, mathx.Vec3{X: -hw, Y: hh, Z: hl})
	face(mathx.Vec3{X: 0, Y: 0, Z: -1},
		mathx.Vec3{X: hw, Y: -hh, Z: -hl}, mathx.Vec3{X: -hw, Y: -hh, Z: -hl},
		mathx.Vec3{X: -hw, Y: hh, Z: -hl}, mathx.Vec3{X: hw, Y: hh, Z: -hl})
	face(mathx.Vec3{X: 0, Y: 1, Z: 0},
		mathx.Vec3{X: -hw, Y: hh, Z: hl}, mathx.Vec3{X: hw, Y: hh, Z: hl},
		mathx.Vec3{X: hw, Y: hh, Z: -hl}, mathx.Vec3{X: -hw, Y: hh, Z: -hl})
	face(mathx.Vec3{X: 0, Y: -1, Z: 0},
		mathx.Vec3{X: -hw, Y: -hh, Z: -hl}, mathx.Vec3{X: hw, Y: -hh, Z: -hl},
		mathx.Vec3{X: hw, Y: -hh, Z: hl}, mathx.Vec3{X: -hw, Y: -hh, Z: hl})
	face(mathx.Vec3{X: 1, Y: 0, Z: 0},
		mathx.Vec3{X: hw, Y: -hh, Z: hl}, mathx.Vec3{X: hw, Y: -hh, Z: -hl},
		mathx.Vec3{X: hw, Y: hh, Z: -hl}, mathx.Vec3{X: hw, Y: hh, Z: hl})
	face(mathx.Vec3{X: -1, Y: 0, Z: 0},
		mathx.Vec3{X: -hw, Y: -hh, Z: -hl}, mathx.Vec3{X: -hw, Y: -hh, Z: hl},
		mathx.Vec3{X: -hw, Y: hh, Z: hl}, mathx.Vec3{X: -hw, Y: hh, Z: -hl})

	b.sink.End()
}

// DrawSphere draws a UV sphere of rings x slices triangles, per §4.6.
func (b *Batcher) DrawSphere(center mathx.Vec3, radius float32, rings, slices int, col mathx.Color) {
	if rings < 3 {
		rings = 3
	}
	if slices < 3 {
		slices = 3
	}
	b.reserve(6 * rings * slices)
	b.sink.Begin(int(Triangles))
	b.sink.Color4ub(col.R, col.G, col.B, col.A)

	point := func(ring, slice int) (mathx.Vec3, mathx.Vec3) {
		theta := math.Pi * float64(ring) / float64(rings)
		phi := 2 * math.Pi * float64(slice) / float64(slices)
		n := mathx.Vec3{
			X: float32(math.Sin(theta) * math.Cos(phi)),
			Y: float32(math.Cos(theta)),
			Z: float32(math.Sin(theta) * math.Sin(phi)),
		}
		p := mathx.Vec3{X: center.X + radius*n.X, Y: center.Y + radius*n.Y, Z: center.Z + radius*n.Z}
		return p, n
	}
	emit := func(p, n mathx.Vec3) {
		b.sink.Normal3f(n.X, n.Y, n.Z)
		b.sink.Vertex3f(p.X, p.Y, p.Z)
	}

	for r := 0; r < rings; r++ {
		for s := 0; s < slices; s++ {
			p0, n0 := point(r, s)
			p1, n1 := point(r, s+1)
			p2, n2 := point(r+1, s+1)
			p3, n3 := point(r+1, s)
			emit(p0, n0)
			emit(p1, n1)
			emit(p2, n2)
			emit(p0, n0)
			emit(p2, n2)
			emit(p3, n3)
		}
	}
	b.sink.End()
}

// DrawCylinder draws a capped cylinder of the given radius and height
// with slices side faces plus top/bottom fans, per §4.6.
func (b *Batcher) DrawCylinder(center mathx.Vec3, radiusTop, radiusBottom, height float32, slices int, col mathx.Color) {
	if slices < 3 {
		slices = 3
	}
	halfH := height / 2
	b.reserve(6*slices + 6*slices)
	b.sink.Begin(int(Triangles))
	b.sink.Color4ub(col.R, col.G, col.B, col.A)

	ring := func(radius, y float64) []mathx.Vec3 {
		pts := make([]mathx.Vec3, slices+1)
		for i := 0; i <= slices; i++ {
			a := 2 * math.Pi * float64(i) / float64(slices)
			pts[i] = mathx.Vec3{
				X: center.X + float32(radius*math.Cos(a)),
				Y: center.Y + float32(y),
				Z: center.Z + float32(radius*math.Sin(a)),
			}
		}
		return pts
	}
	top := ring(float64(radiusTop), float64(halfH))
	bottom := ring(float64(radiusBottom), float64(-halfH))

	for i := 0; i < slices; i++ {
		a, c := bottom[i], bottom[i+1]
		d, e := top[i+1], top[i]
		n := c.Sub(a).Cross(d.Sub(a)).Norm()
		emit := func(p mathx.Vec3) {
			b.sink.Normal3f(n.X, n.Y, n.Z)
			b.sink.Vertex3f(p.X, p.Y, p.Z)
		}
		emit(a)
		emit(c)
		emit(d)
		emit(a)
		emit(d)
		emit(e)
	}

	topCenter := mathx.Vec3{X: center.X, Y: center.Y + halfH, Z: center.Z}
	bottomCenter := mathx.Vec3{X: center.X, Y: center.Y - halfH, Z: center.Z}
	for i := 0; i < slices; i++ {
		b.sink.Normal3f(0, 1, 0)
		b.sink.Vertex3f(topCenter.X, topCenter.Y, topCenter.Z)
		b.sink.Vertex3f(top[i].X, top[i].Y, top[i].Z)
		b.sink.Vertex3f(top[i+1].X, top[i+1].Y, top[i+1].Z)

		b.sink.Normal3f(0, -1, 0)
		b.sink.Vertex3f(bottomCenter.X, bottomCenter.Y, bottomCenter.Z)
		b.sink.Vertex3f(bottom[i+1].X, bottom[i+1].Y, bottom[i+1].Z)
		b.sink.Vertex3f(bottom[i].X, bottom[i].Y, bottom[i].Z)
	}
	b.sink.End()
}

// DrawGrid draws a cubic grid of lines spanning slices x slices cells
// of the given spacing, centered on the origin, per §4.6.
func (b *Batcher) DrawGrid(slices int, spacing float32, col mathx.Color) {
	if slices <= 0 {
		return
	}
	half := float32(slices) * spacing / 2
	lineCount := (slices + 1) * 2
	b.reserve(2 * lineCount)
	b.sink.Begin(int(Lines))
	b.sink.Color4ub(col.R, col.G, col.B, col.A)
	for i := 0; i <= slices; i++ {
		offset := -half + float32(i)*spacing
		b.sink.Vertex3f(offset, 0, -half)
		b.sink.Vertex3f(offset, 0, half)
		b.sink.Vertex3f(-half, 0, offset)
		b.sink.Vertex3f(half, 0, offset)
	}
	b.sink.End()
}

// DrawBillboard draws a textureless quad of the given size centered at
// position, always facing the camera: its right axis is the view
// matrix's right vector (camRight) and its up axis is world up, per
// §4.6.
func (b *Batcher) DrawBillboard(position mathx.Vec3, camRight mathx.Vec3, size float32, col mathx.Color) {
	up := mathx.Vec3{X: 0, Y: 1, Z: 0}
	right := camRight.Norm()

	half := size / 2
	rHalf := right.Scale(half)
	uHalf := up.Scale(half)

	p0 := position.Sub(rHalf).Sub(uHalf)
	p1 := position.Add(rHalf).Sub(uHalf)
	p2 := position.Add(rHalf).Add(uHalf)
	p3 := position.Sub(rHalf).Add(uHalf)

	normal := right.Cross(up)

	b.reserve(6)
	b.sink.Begin(int(Triangles))
	b.sink.Color4ub(col.R, col.G, col.B, col.A)
	b.sink.Normal3f(normal.X, normal.Y, normal.Z)

	emit := func(p mathx.Vec3, u, v float32) {
		b.sink.TexCoord2f(u, v)
		b.sink.Vertex3f(p.X, p.Y, p.Z)
	}
	emit(p0, 0, 0)
	emit(p1, 1, 0)
	emit(p2, 1, 1)
	emit(p0, 0, 0)
	emit(p2, 1, 1)
	emit(p3, 0, 1)

	b.sink.End()
}
