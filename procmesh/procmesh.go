// Package procmesh implements the procedural mesh generators of §4.6
// Component H: parametric shapes (cube, plane, sphere, hemisphere,
// cylinder, torus, knot, polygon) and sampled shapes (heightmap,
// cubicmap), all producing a model.Mesh with the engine's
// struct-of-arrays vertex layout. Grounded on the teacher's
// Context.DrawRegularPolygon (the one procedural-shape generator the
// teacher carried) generalized from emitting 2D path commands to
// building a full 3D mesh's parallel attribute arrays, and on
// spec.md's per-shape vertex/index counts.
package procmesh

import (
	"math"

	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/model"
)

type builder struct {
	positions []float32
	texcoords []float32
	normals   []float32
	indices   []uint16
}

func (b *builder) addVertex(p, n mathx.Vec3, u, v float32) uint16 {
	idx := uint16(len(b.positions) / 3)
	b.positions = append(b.positions, p.X, p.Y, p.Z)
	b.normals = append(b.normals, n.X, n.Y, n.Z)
	b.texcoords = append(b.texcoords, u, v)
	return idx
}

func (b *builder) triangle(a, c, d uint16) {
	b.indices = append(b.indices, a, c, d)
}

func (b *builder) mesh() model.Mesh {
	return model.Mesh{
		VertexCount:   len(b.positions) / 3,
		TriangleCount: len(b.indices) / 3,
		Vertices:      b.positions,
		Texcoords:     b.texcoords,
		Normals:       b.normals,
		Indices:       b.indices,
		Valid:         true,
	}
}

// Cube generates an axis-aligned box centered on the origin with the
// given width, height, and length, one quad (two triangles) per face
// with outward-facing normals.
func Cube(width, height, length float32) model.Mesh {
	hw, hh, hl := width/2, height/2, length/2
	b := &builder{}

	faces := []struct {
		normal             mathx.Vec3
		a, c, d, e         mathx.Vec3
	}{
		{mathx.Vec3{X: 0, Y: 0, Z: 1}, // front
			{X: -hw, Y: -hh, Z: hl}, {X: hw, Y: -hh, Z: hl}, {X: hw, Y: hh, Z: hl}, {X: -hw, Y: hh, Z: hl}},
		{mathx.Vec3{X: 0, Y: 0, Z: -1}, // back
			{X: hw, Y: -hh, Z: -hl}, {X: -hw, Y: -hh, Z: -hl}, {X: -hw, Y: hh, Z: -hl}, {X: hw, Y: hh, Z: -hl}},
		{mathx.Vec3{X: 0, Y: 1, Z: 0}, // top
			{X: -hw, Y: hh, Z: hl}, {X: hw, Y: hh, Z: hl}, {X: hw, Y: hh, Z: -hl}, {X: -hw, Y: hh, Z: -hl}},
		{mathx.Vec3{X: 0, Y: -1, Z: 0}, // bottom
			{X: -hw, Y: -hh, Z: -hl}, {X: hw, Y: -hh, Z: -hl}, {X: hw, Y: -hh, Z: hl}, {X: -hw, Y: -hh, Z: hl}},
		{mathx.Vec3{X: 1, Y: 0, Z: 0}, // right
			{X: hw, Y: -hh, Z: hl}, {X: hw, Y: -hh, Z: -hl}, {X: hw, Y: hh, Z: -hl}, {X: hw, Y: hh, Z: hl}},
		{mathx.Vec3{X: -1, Y: 0, Z: 0}, // left
			{X: -hw, Y: -hh, Z: -hl}, {X: -hw, Y: -hh, Z: hl}, {X: -hw, Y: hh, Z: hl}, {X: -hw, Y: hh, Z: -hl}},
	}

	for _, f := range faces {
		i0 := b.addVertex(f.a, f.normal, 0, 0)
		i1 := b.addVertex(f.c, f.normal, 1, 0)
		i2 := b.addVertex(f.d, f.normal, 1, 1)
		i3 := b.addVertex(f.e, f.normal, 0, 1)
		b.triangle(i0, i1, i2)
		b.triangle(i0, i2, i3)
	}

	return b.mesh()
}

// Plane generates a subdivided flat quad in the XZ plane centered on
// the origin, resX and resZ subdivisions along each axis (minimum 1).
func Plane(width, length float32, resX, resZ int) model.Mesh {
	if resX < 1 {
		resX = 1
	}
	if resZ < 1 {
		resZ = 1
	}
	b := &builder{}
	up := mathx.Vec3{X: 0, Y: 1, Z: 0}

	grid := make([][]uint16, resZ+1)
	for iz := 0; iz <= resZ; iz++ {
		grid[iz] = make([]uint16, resX+1)
		z := (float32(iz)/float32(resZ) - 0.5) * length
		for ix := 0; ix <= resX; ix++ {
			x := (float32(ix)/float32(resX) - 0.5) * width
			u := float32(ix) / float32(resX)
			v := float32(iz) / float32(resZ)
			grid[iz][ix] = b.addVertex(mathx.Vec3{X: x, Y: 0, Z: z}, up, u, v)
		}
	}
	for iz := 0; iz < resZ; iz++ {
		for ix := 0; ix < resX; ix++ {
			a, c := grid[iz][ix], grid[iz][ix+1]
			d, e := grid[iz+1][ix+1], grid[iz+1][ix]
			b.triangle(a, c, d)
			b.triangle(a, d, e)
		}
	}
	return b.mesh()
}

// Sphere generates a UV sphere of the given radius with rings latitude
// bands and slices longitude segments, the ring-times-slices
// decomposition spec.md §4.6 names for 3D primitives.
func Sphere(radius float32, rings, slices int) model.Mesh {
	if rings < 2 {
		rings = 2
	}
	if slices < 3 {
		slices = 3
	}
	b := &builder{}

	grid := make([][]uint16, rings+1)
	for ir := 0; ir <= rings; ir++ {
		grid[ir] = make([]uint16, slices+1)
		theta := math.Pi * float64(ir) / float64(rings)
		y := radius * float32(math.Cos(theta))
		ringR := radius * float32(math.Sin(theta))
		for is := 0; is <= slices; is++ {
			phi := 2 * math.Pi * float64(is) / float64(slices)
			x := ringR * float32(math.Cos(phi))
			z := ringR * float32(math.Sin(phi))
			p := mathx.Vec3{X: x, Y: y, Z: z}
			n := p.Scale(1 / radius)
			u := float32(is) / float32(slices)
			v := float32(ir) / float32(rings)
			grid[ir][is] = b.addVertex(p, n, u, v)
		}
	}
	for ir := 0; ir < rings; ir++ {
		for is := 0; is < slices; is++ {
			a, c := grid[ir][is], grid[ir][is+1]
			d, e := grid[ir+1][is+1], grid[ir+1][is]
			b.triangle(a, c, d)
			b.triangle(a, d, e)
		}
	}
	return b.mesh()
}

// Hemisphere generates the upper half (y >= 0) of a UV sphere, the same
// ring/slice decomposition as Sphere restricted to the first half of
// the polar angle range.
func Hemisphere(radius float32, rings, slices int) model.Mesh {
	if rings < 2 {
		rings = 2
	}
	if slices < 3 {
		slices = 3
	}
	b := &builder{}

	grid := make([][]uint16, rings+1)
	for ir := 0; ir <= rings; ir++ {
		grid[ir] = make([]uint16, slices+1)
		theta := (math.Pi / 2) * float64(ir) / float64(rings)
		y := radius * float32(math.Cos(theta))
		ringR := radius * float32(math.Sin(theta))
		for is := 0; is <= slices; is++ {
			phi := 2 * math.Pi * float64(is) / float64(slices)
			x := ringR * float32(math.Cos(phi))
			z := ringR * float32(math.Sin(phi))
			p := mathx.Vec3{X: x, Y: y, Z: z}
			n := p.Scale(1 / radius)
			u := float32(is) / float32(slices)
			v := float32(ir) / float32(rings)
			grid[ir][is] = b.addVertex(p, n, u, v)
		}
	}
	for ir := 0; ir < rings; ir++ {
		for is := 0; is < slices; is++ {
			a, c := grid[ir][is], grid[ir][is+1]
			d, e := grid[ir+1][is+1], grid[ir+1][is]
			b.triangle(a, c, d)
			b.triangle(a, d, e)
		}
	}
	return b.mesh()
}

// Cylinder generates a capped cylinder of the given radius and height,
// centered on the origin, with slices radial segments.
func Cylinder(radius, height float32, slices int) model.Mesh {
	if slices < 3 {
		slices = 3
	}
	b := &builder{}
	half := height / 2

	top := make([]uint16, slices+1)
	bottom := make([]uint16, slices+1)
	for is := 0; is <= slices; is++ {
		phi := 2 * math.Pi * float64(is) / float64(slices)
		x := radius * float32(math.Cos(phi))
		z := radius * float32(math.Sin(phi))
		n := mathx.Vec3{X: float32(math.Cos(phi)), Y: 0, Z: float32(math.Sin(phi))}
		u := float32(is) / float32(slices)
		top[is] = b.addVertex(mathx.Vec3{X: x, Y: half, Z: z}, n, u, 0)
		bottom[is] = b.addVertex(mathx.Vec3{X: x, Y: -half, Z: z}, n, u, 1)
	}
	for is := 0; is < slices; is++ {
		b.triangle(top[is], bottom[is], bottom[is+1])
		b.triangle(top[is], bottom[is+1], top[is+1])
	}

	topCenter := b.addVertex(mathx.Vec3{X: 0, Y: half, Z: 0}, mathx.Vec3{X: 0, Y: 1, Z: 0}, 0.5, 0.5)
	bottomCenter := b.addVertex(mathx.Vec3{X: 0, Y: -half, Z: 0}, mathx.Vec3{X: 0, Y: -1, Z: 0}, 0.5, 0.5)
	for is := 0; is < slices; is++ {
		phi0 := 2 * math.Pi * float64(is) / float64(slices)
		phi1 := 2 * math.Pi * float64(is+1) / float64(slices)
		up := mathx.Vec3{X: 0, Y: 1, Z: 0}
		down := mathx.Vec3{X: 0, Y: -1, Z: 0}
		t0 := b.addVertex(mathx.Vec3{X: radius * float32(math.Cos(phi0)), Y: half, Z: radius * float32(math.Sin(phi0))}, up, 0, 0)
		t1 := b.addVertex(mathx.Vec3{X: radius * float32(math.Cos(phi1)), Y: half, Z: radius * float32(math.Sin(phi1))}, up, 0, 0)
		b.triangle(topCenter, t0, t1)

		c0 := b.addVertex(mathx.Vec3{X: radius * float32(math.Cos(phi0)), Y: -half, Z: radius * float32(math.Sin(phi0))}, down, 0, 0)
		c1 := b.addVertex(mathx.Vec3{X: radius * float32(math.Cos(phi1)), Y: -half, Z: radius * float32(math.Sin(phi1))}, down, 0, 0)
		b.triangle(bottomCenter, c1, c0)
	}

	return b.mesh()
}

// Torus generates a torus of major radius and minor radius tube,
// radialSegments around the major circle and tubularSegments around
// the tube's cross-section.
func Torus(radius, tube float32, radialSegments, tubularSegments int) model.Mesh {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if tubularSegments < 3 {
		tubularSegments = 3
	}
	b := &builder{}

	grid := make([][]uint16, radialSegments+1)
	for i := 0; i <= radialSegments; i++ {
		grid[i] = make([]uint16, tubularSegments+1)
		u := 2 * math.Pi * float64(i) / float64(radialSegments)
		cu, su := float32(math.Cos(u)), float32(math.Sin(u))
		for j := 0; j <= tubularSegments; j++ {
			v := 2 * math.Pi * float64(j) / float64(tubularSegments)
			cv, sv := float32(math.Cos(v)), float32(math.Sin(v))

			x := (radius + tube*cv) * cu
			z := (radius + tube*cv) * su
			y := tube * sv

			nx, nz := cv*cu, cv*su
			n := mathx.Vec3{X: nx, Y: sv, Z: nz}

			grid[i][j] = b.addVertex(mathx.Vec3{X: x, Y: y, Z: z}, n,
				float32(i)/float32(radialSegments), float32(j)/float32(tubularSegments))
		}
	}
	for i := 0; i < radialSegments; i++ {
		for j := 0; j < tubularSegments; j++ {
			a, c := grid[i][j], grid[i+1][j]
			d, e := grid[i+1][j+1], grid[i][j+1]
			b.triangle(a, c, d)
			b.triangle(a, d, e)
		}
	}
	return b.mesh()
}

// Knot generates a trefoil-knot tube: a circular cross-section of
// radius tube swept along the (3,2) trefoil centerline
// p(t) = scale*(sin t + 2 sin 2t, cos t - 2 cos 2t, -sin 3t), t in
// [0, 2pi), the same centerline/cross-section tube-sweep Torus performs
// around a plain circle generalized to a non-planar curve. At each of
// tubularSegments centerline samples a Frenet-style frame (tangent from
// the analytic derivative, normal/binormal from tangent crossed against
// a fixed reference axis) orients a ring of radialSegments
// cross-section vertices, connected into quads exactly like Torus's
// grid.
func Knot(scale, tube float32, radialSegments, tubularSegments int) model.Mesh {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if tubularSegments < 3 {
		tubularSegments = 64
	}
	b := &builder{}

	centerline := func(t float64) mathx.Vec3 {
		return mathx.Vec3{
			X: scale * float32(math.Sin(t)+2*math.Sin(2*t)),
			Y: scale * float32(math.Cos(t)-2*math.Cos(2*t)),
			Z: scale * float32(-math.Sin(3*t)),
		}
	}
	tangentAt := func(t float64) mathx.Vec3 {
		return mathx.Vec3{
			X: float32(math.Cos(t) + 4*math.Cos(2*t)),
			Y: float32(-math.Sin(t) + 4*math.Sin(2*t)),
			Z: float32(-3 * math.Cos(3*t)),
		}.Norm()
	}

	reference := mathx.Vec3{X: 0, Y: 1, Z: 0}
	grid := make([][]uint16, tubularSegments+1)
	for i := 0; i <= tubularSegments; i++ {
		t := 2 * math.Pi * float64(i) / float64(tubularSegments)
		center := centerline(t)
		tangent := tangentAt(t)

		binormal := tangent.Cross(reference)
		if binormal.Len() < 1e-4 {
			binormal = tangent.Cross(mathx.Vec3{X: 1, Y: 0, Z: 0})
		}
		binormal = binormal.Norm()
		normal := binormal.Cross(tangent).Norm()

		grid[i] = make([]uint16, radialSegments+1)
		for j := 0; j <= radialSegments; j++ {
			theta := 2 * math.Pi * float64(j) / float64(radialSegments)
			ct, st := float32(math.Cos(theta)), float32(math.Sin(theta))
			offset := normal.Scale(tube * ct).Add(binormal.Scale(tube * st))
			pos := center.Add(offset)
			n := offset.Norm()

			grid[i][j] = b.addVertex(pos, n,
				float32(i)/float32(tubularSegments), float32(j)/float32(radialSegments))
		}
	}
	for i := 0; i < tubularSegments; i++ {
		for j := 0; j < radialSegments; j++ {
			a, c := grid[i][j], grid[i+1][j]
			d, e := grid[i+1][j+1], grid[i][j+1]
			b.triangle(a, c, d)
			b.triangle(a, d, e)
		}
	}
	return b.mesh()
}

// Polygon generates a flat regular n-gon of circumradius r in the XZ
// plane, a triangle fan from the center, the same vertex ring the
// batcher's 2D RegularPolygonVertices builds, lifted into 3D.
func Polygon(sides int, radius float32) model.Mesh {
	if sides < 3 {
		sides = 3
	}
	b := &builder{}
	up := mathx.Vec3{X: 0, Y: 1, Z: 0}
	center := b.addVertex(mathx.Vec3{}, up, 0.5, 0.5)

	ring := make([]uint16, sides+1)
	for i := 0; i <= sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		x := radius * float32(math.Cos(angle))
		z := radius * float32(math.Sin(angle))
		u := 0.5 + 0.5*float32(math.Cos(angle))
		v := 0.5 + 0.5*float32(math.Sin(angle))
		ring[i] = b.addVertex(mathx.Vec3{X: x, Y: 0, Z: z}, up, u, v)
	}
	for i := 0; i < sides; i++ {
		b.triangle(center, ring[i], ring[i+1])
	}
	return b.mesh()
}
