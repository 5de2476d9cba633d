package procmesh

import (
	"math"
	"testing"

	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/rfimage"
)

func TestCubeHasSixFacesTwelveTriangles(t *testing.T) {
	m := Cube(1, 1, 1)
	if m.TriangleCount != 12 {
		t.Fatalf("expected 12 triangles (6 faces x 2), got %d", m.TriangleCount)
	}
	if m.VertexCount != 24 {
		t.Fatalf("expected 24 vertices (4 per face, unshared across faces), got %d", m.VertexCount)
	}
	if !m.Valid {
		t.Fatal("expected a valid mesh")
	}
}

func TestPlaneSubdivision(t *testing.T) {
	m := Plane(10, 10, 4, 4)
	if m.VertexCount != 25 {
		t.Fatalf("expected (4+1)^2=25 vertices, got %d", m.VertexCount)
	}
	if m.TriangleCount != 32 {
		t.Fatalf("expected 4*4*2=32 triangles, got %d", m.TriangleCount)
	}
}

func TestSphereVertexCount(t *testing.T) {
	m := Sphere(1, 8, 12)
	wantVerts := (8 + 1) * (12 + 1)
	if m.VertexCount != wantVerts {
		t.Fatalf("expected %d vertices, got %d", wantVerts, m.VertexCount)
	}
	if m.TriangleCount != 8*12*2 {
		t.Fatalf("expected %d triangles, got %d", 8*12*2, m.TriangleCount)
	}
}

func TestPolygonFanTriangleCount(t *testing.T) {
	m := Polygon(6, 1)
	if m.TriangleCount != 6 {
		t.Fatalf("expected 6 triangles for a hexagon fan, got %d", m.TriangleCount)
	}
}

func TestCylinderClampsMinimumSlices(t *testing.T) {
	m := Cylinder(1, 2, 1)
	if m.TriangleCount == 0 {
		t.Fatal("expected a clamped slice count to still produce triangles")
	}
}

func TestTorusVertexAndTriangleCount(t *testing.T) {
	m := Torus(2, 0.5, 8, 16)
	wantVerts := (8 + 1) * (16 + 1)
	if m.VertexCount != wantVerts {
		t.Fatalf("expected %d vertices, got %d", wantVerts, m.VertexCount)
	}
	if m.TriangleCount != 8*16*2 {
		t.Fatalf("expected %d triangles, got %d", 8*16*2, m.TriangleCount)
	}
}

func TestKnotVertexAndTriangleCount(t *testing.T) {
	m := Knot(1, 0.3, 8, 32)
	wantVerts := (32 + 1) * (8 + 1)
	if m.VertexCount != wantVerts {
		t.Fatalf("expected %d vertices, got %d", wantVerts, m.VertexCount)
	}
	if m.TriangleCount != 32*8*2 {
		t.Fatalf("expected %d triangles, got %d", 32*8*2, m.TriangleCount)
	}
	if !m.Valid {
		t.Fatal("expected a valid mesh")
	}
}

func TestKnotClampsMinimumSegments(t *testing.T) {
	m := Knot(1, 0.3, 1, 2)
	if m.TriangleCount == 0 {
		t.Fatal("expected clamped segment counts to still produce triangles")
	}
}

func TestKnotTubeRadiusApproximatelyPreserved(t *testing.T) {
	m := Knot(1, 0.3, 12, 48)
	// Every ring vertex's offset from its centerline sample has
	// magnitude tube, since the cross-section is swept at constant
	// radius regardless of the centerline's curvature.
	for i := 0; i < m.VertexCount; i++ {
		x, y, z := m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]
		nx, ny, nz := m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]
		ring := i / (12 + 1)
		tt := 2 * math.Pi * float64(ring) / 48
		cx := float32(math.Sin(tt) + 2*math.Sin(2*tt))
		cy := float32(math.Cos(tt) - 2*math.Cos(2*tt))
		cz := float32(-math.Sin(3 * tt))
		dx, dy, dz := x-cx, y-cy, z-cz
		if d := dx*dx + dy*dy + dz*dz; d < 0.3*0.3*0.9 || d > 0.3*0.3*1.1 {
			t.Fatalf("expected offset from centerline of length 0.3, got squared length %v at vertex %d", d, i)
		}
		nlen := nx*nx + ny*ny + nz*nz
		if nlen < 0.9 || nlen > 1.1 {
			t.Fatalf("expected unit normal, got squared length %v at vertex %d", nlen, i)
		}
	}
}

func TestCubicmapOmitsInteriorFaces(t *testing.T) {
	// A 3x1 solid row: the middle cell's left/right faces border solid
	// neighbors and should be culled, leaving only its top/bottom/front/back.
	mapImg := rfimage.Image{
		Data:   []byte{255, 255, 255},
		Width:  3,
		Height: 1,
		Valid:  true,
	}
	m := Cubicmap(mapImg, mathx.Vec3{X: 1, Y: 1, Z: 1})
	// End cells: 5 faces each (one interior face culled). Middle cell: 4 faces.
	wantQuads := 5 + 5 + 4
	if m.TriangleCount != wantQuads*2 {
		t.Fatalf("expected %d triangles, got %d", wantQuads*2, m.TriangleCount)
	}
}

func TestHeightmapRejectsTooSmallImage(t *testing.T) {
	m := Heightmap(rfimage.Image{Width: 1, Height: 1}, mathx.Vec3{X: 1, Y: 1, Z: 1}, 1)
	if m.Valid {
		t.Fatal("expected a degenerate 1x1 heightmap to produce an invalid mesh")
	}
}
