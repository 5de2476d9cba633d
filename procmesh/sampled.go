package procmesh

import (
	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/model"
	"github.com/rayfork/rayfork-go/rfimage"
)

// Heightmap generates a grid mesh of heights.Width x heights.Height
// vertices, displacing each vertex's Y by the corresponding grayscale
// sample (scaled to [0, maxHeight]) in heights, spanning size.X by
// size.Z in the XZ plane. Per-vertex normals are estimated from the
// four neighboring samples (central-difference gradient), the
// standard heightfield normal-reconstruction technique.
func Heightmap(heights rfimage.Image, size mathx.Vec3, maxHeight float32) model.Mesh {
	w, h := heights.Width, heights.Height
	if w < 2 || h < 2 {
		return model.Mesh{}
	}
	sample := func(x, z int) float32 {
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		if z < 0 {
			z = 0
		}
		if z >= h {
			z = h - 1
		}
		return float32(grayAt(heights, x, z)) / 255 * maxHeight
	}

	b := &builder{}
	grid := make([][]uint16, h)
	for iz := 0; iz < h; iz++ {
		grid[iz] = make([]uint16, w)
		for ix := 0; ix < w; ix++ {
			x := (float32(ix)/float32(w-1) - 0.5) * size.X
			z := (float32(iz)/float32(h-1) - 0.5) * size.Z
			y := sample(ix, iz)

			left, right := sample(ix-1, iz), sample(ix+1, iz)
			down, up := sample(ix, iz-1), sample(ix, iz+1)
			dx := size.X / float32(w-1)
			dz := size.Z / float32(h-1)
			normal := mathx.Vec3{X: (left - right) / (2 * dx), Y: 2, Z: (down - up) / (2 * dz)}.Norm()

			u := float32(ix) / float32(w-1)
			v := float32(iz) / float32(h-1)
			grid[iz][ix] = b.addVertex(mathx.Vec3{X: x, Y: y, Z: z}, normal, u, v)
		}
	}
	for iz := 0; iz < h-1; iz++ {
		for ix := 0; ix < w-1; ix++ {
			a, c := grid[iz][ix], grid[iz][ix+1]
			d, e := grid[iz+1][ix+1], grid[iz+1][ix]
			b.triangle(a, c, d)
			b.triangle(a, d, e)
		}
	}
	return b.mesh()
}

func grayAt(img rfimage.Image, x, y int) uint8 {
	stride := img.Width
	off := y*stride + x
	if off < 0 || off >= len(img.Data) {
		return 0
	}
	return img.Data[off]
}

// Cubicmap generates a 3D level mesh from a grayscale map image:
// non-black pixels become boxes of size cubeSize at their (x, z) grid
// position. A side face is emitted only where the neighbor in that
// direction is black or outside the map; the top and bottom faces of
// every box are always emitted.
func Cubicmap(mapImg rfimage.Image, cubeSize mathx.Vec3) model.Mesh {
	w, h := mapImg.Width, mapImg.Height
	b := &builder{}

	solid := func(x, z int) bool {
		if x < 0 || x >= w || z < 0 || z >= h {
			return false
		}
		return grayAt(mapImg, x, z) > 0
	}

	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			if !solid(x, z) {
				continue
			}
			cx := (float32(x) - float32(w)/2) * cubeSize.X
			cz := (float32(z) - float32(h)/2) * cubeSize.Z
			cy := float32(0)
			hw, hh, hl := cubeSize.X/2, cubeSize.Y/2, cubeSize.Z/2
			center := mathx.Vec3{X: cx, Y: cy, Z: cz}

			if !solid(x, z-1) {
				quad(b, center, hw, hh, hl, mathx.Vec3{X: 0, Y: 0, Z: -1})
			}
			if !solid(x, z+1) {
				quad(b, center, hw, hh, hl, mathx.Vec3{X: 0, Y: 0, Z: 1})
			}
			if !solid(x-1, z) {
				quad(b, center, hw, hh, hl, mathx.Vec3{X: -1, Y: 0, Z: 0})
			}
			if !solid(x+1, z) {
				quad(b, center, hw, hh, hl, mathx.Vec3{X: 1, Y: 0, Z: 0})
			}
			quad(b, center, hw, hh, hl, mathx.Vec3{X: 0, Y: 1, Z: 0})
			quad(b, center, hw, hh, hl, mathx.Vec3{X: 0, Y: -1, Z: 0})
		}
	}
	return b.mesh()
}

// quad emits the single face of an axis-aligned box in direction n,
// centered at c with half-extents hw/hh/hl.
func quad(b *builder, c mathx.Vec3, hw, hh, hl float32, n mathx.Vec3) {
	var a, p2, p3, p4 mathx.Vec3
	switch {
	case n.Z < 0:
		a, p2, p3, p4 = mathx.Vec3{X: hw, Y: -hh, Z: -hl}, mathx.Vec3{X: -hw, Y: -hh, Z: -hl}, mathx.Vec3{X: -hw, Y: hh, Z: -hl}, mathx.Vec3{X: hw, Y: hh, Z: -hl}
	case n.Z > 0:
		a, p2, p3, p4 = mathx.Vec3{X: -hw, Y: -hh, Z: hl}, mathx.Vec3{X: hw, Y: -hh, Z: hl}, mathx.Vec3{X: hw, Y: hh, Z: hl}, mathx.Vec3{X: -hw, Y: hh, Z: hl}
	case n.X < 0:
		a, p2, p3, p4 = mathx.Vec3{X: -hw, Y: -hh, Z: -hl}, mathx.Vec3{X: -hw, Y: -hh, Z: hl}, mathx.Vec3{X: -hw, Y: hh, Z: hl}, mathx.Vec3{X: -hw, Y: hh, Z: -hl}
	case n.X > 0:
		a, p2, p3, p4 = mathx.Vec3{X: hw, Y: -hh, Z: hl}, mathx.Vec3{X: hw, Y: -hh, Z: -hl}, mathx.Vec3{X: hw, Y: hh, Z: -hl}, mathx.Vec3{X: hw, Y: hh, Z: hl}
	case n.Y > 0:
		a, p2, p3, p4 = mathx.Vec3{X: -hw, Y: hh, Z: hl}, mathx.Vec3{X: hw, Y: hh, Z: hl}, mathx.Vec3{X: hw, Y: hh, Z: -hl}, mathx.Vec3{X: -hw, Y: hh, Z: -hl}
	default:
		a, p2, p3, p4 = mathx.Vec3{X: -hw, Y: -hh, Z: -hl}, mathx.Vec3{X: hw, Y: -hh, Z: -hl}, mathx.Vec3{X: hw, Y: -hh, Z: hl}, mathx.Vec3{X: -hw, Y: -hh, Z: hl}
	}
	i0 := b.addVertex(c.Add(a), n, 0, 0)
	i1 := b.addVertex(c.Add(p2), n, 1, 0)
	i2 := b.addVertex(c.Add(p3), n, 1, 1)
	i3 := b.addVertex(c.Add(p4), n, 0, 1)
	b.triangle(i0, i1, i2)
	b.triangle(i0, i2, i3)
}
