package mathx

import "testing"

func TestMat4Invert(t *testing.T) {
	m := Translate4(Vec3{1, 2, 3}).Mul(RotateY4(0.7)).Mul(Scale4(Vec3{2, 3, 4}))
	inv := m.Invert()
	got := m.Mul(inv)
	want := Identity4()
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-3 || diff < -1e-3 {
			t.Fatalf("m*inv[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRayTriangleHitsCentroid(t *testing.T) {
	p0 := Vec3{0, 0, 0}
	p1 := Vec3{1, 0, 0}
	p2 := Vec3{0, 1, 0}
	centroid := p0.Add(p1).Add(p2).Scale(1.0 / 3)

	normal := p1.Sub(p0).Cross(p2.Sub(p0)).Norm()
	origin := centroid.Add(normal.Scale(5))
	ray := Ray{Origin: origin, Direction: normal.Negate()}

	c := RayTriangle(ray, p0, p1, p2)
	if !c.Hit {
		t.Fatal("expected hit")
	}
	wantDist := origin.Distance(centroid)
	if diff := c.Distance - wantDist; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("distance = %v, want ~%v", c.Distance, wantDist)
	}
}

func TestRayTriangleParallelMisses(t *testing.T) {
	p0 := Vec3{0, 0, 0}
	p1 := Vec3{1, 0, 0}
	p2 := Vec3{0, 1, 0}
	ray := Ray{Origin: Vec3{0, 0, 1}, Direction: Vec3{1, 0, 0}}

	c := RayTriangle(ray, p0, p1, p2)
	if c.Hit {
		t.Fatal("expected miss for ray parallel to the plane")
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {513, 1024},
	}
	for _, c := range cases {
		if got := NextPowerOfTwo(c.in); got != c.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestColorEqualRGBIgnoresAlpha(t *testing.T) {
	a := Color{10, 20, 30, 1}
	b := Color{10, 20, 30, 255}
	if !a.EqualRGB(b) {
		t.Error("EqualRGB should ignore alpha")
	}
	if a.Equal(b) {
		t.Error("Equal should not ignore alpha")
	}
}
