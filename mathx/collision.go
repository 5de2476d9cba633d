package mathx

import "math"

// RayCollision describes the result of a ray intersection test.
type RayCollision struct {
	Hit      bool
	Distance float32
	Point    Vec3
	Normal   Vec3
}

// RayTriangle tests a ray against a triangle using the Möller-Trumbore
// algorithm, per §4.3, with epsilon = 1e-6 on the determinant and no
// back-face culling.
func RayTriangle(ray Ray, p0, p1, p2 Vec3) RayCollision {
	const epsilon = 1e-6

	edge1 := p1.Sub(p0)
	edge2 := p2.Sub(p0)
	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	if det > -epsilon && det < epsilon {
		return RayCollision{}
	}
	invDet := 1 / det

	s := ray.Origin.Sub(p0)
	u := invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return RayCollision{}
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return RayCollision{}
	}

	t := invDet * edge2.Dot(q)
	if t < epsilon {
		return RayCollision{}
	}

	hitPoint := ray.Origin.Add(ray.Direction.Scale(t))
	normal := edge1.Cross(edge2).Norm()
	return RayCollision{Hit: true, Distance: t, Point: hitPoint, Normal: normal}
}

// RaySphere tests a ray against a sphere by projecting the center onto the
// ray and comparing the residual distance against the radius (§4.3). It
// reports the near intersection only.
func RaySphere(ray Ray, center Vec3, radius float32) RayCollision {
	oc := ray.Origin.Sub(center)
	proj := oc.Dot(ray.Direction)
	distSq := oc.Dot(oc) - proj*proj
	radiusSq := radius * radius

	if distSq > radiusSq {
		return RayCollision{}
	}

	thc := sqrt32(radiusSq - distSq)
	t0 := -proj - thc
	t1 := -proj + thc

	if t0 < 0 && t1 < 0 {
		return RayCollision{}
	}

	t := t0
	if t < 0 {
		t = t1
	}

	hitPoint := ray.Origin.Add(ray.Direction.Scale(t))
	normal := hitPoint.Sub(center).Norm()
	return RayCollision{Hit: true, Distance: t, Point: hitPoint, Normal: normal}
}

// RaySphereEx is the "_ex" form from §4.3: it returns the correct near/far
// intersection depending on whether the ray origin lies inside the sphere.
func RaySphereEx(ray Ray, center Vec3, radius float32) RayCollision {
	oc := ray.Origin.Sub(center)
	proj := oc.Dot(ray.Direction)
	distSq := oc.Dot(oc) - proj*proj
	radiusSq := radius * radius

	if distSq > radiusSq {
		return RayCollision{}
	}

	thc := sqrt32(radiusSq - distSq)
	t0 := -proj - thc
	t1 := -proj + thc

	inside := oc.Dot(oc) < radiusSq

	var t float32
	if inside {
		t = t1
	} else {
		t = t0
	}
	if t < 0 {
		return RayCollision{}
	}

	hitPoint := ray.Origin.Add(ray.Direction.Scale(t))
	normal := hitPoint.Sub(center).Norm()
	if inside {
		normal = normal.Negate()
	}
	return RayCollision{Hit: true, Distance: t, Point: hitPoint, Normal: normal}
}

// Box is an axis-aligned bounding box.
type Box struct{ Min, Max Vec3 }

// RayBox tests a ray against an axis-aligned box using the slab method.
func RayBox(ray Ray, box Box) RayCollision {
	tmin, tmax := float32(0), float32(math32Inf)

	for i := 0; i < 3; i++ {
		origin, dir := component(ray.Origin, i), component(ray.Direction, i)
		lo, hi := component(box.Min, i), component(box.Max, i)

		if dir == 0 {
			if origin < lo || origin > hi {
				return RayCollision{}
			}
			continue
		}

		invD := 1 / dir
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return RayCollision{}
		}
	}

	hitPoint := ray.Origin.Add(ray.Direction.Scale(tmin))
	return RayCollision{Hit: true, Distance: tmin, Point: hitPoint}
}

func component(v Vec3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

const math32Inf = 1e30

func sqrt32(v float32) float32 {
	if v < 0 {
		v = 0
	}
	return float32(math.Sqrt(float64(v)))
}
