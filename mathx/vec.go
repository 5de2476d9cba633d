// Package mathx implements the math and geometry primitives shared by
// every subsystem of rayfork: vectors, matrices, quaternions, rectangles,
// color structs, interpolation helpers, and ray/box/sphere/triangle
// intersection tests (§4.3).
package mathx

import "math"

// Vec2 is a 2-component vector of float32.
type Vec2 struct{ X, Y float32 }

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(w Vec2) float32   { return v.X*w.X + v.Y*w.Y }
func (v Vec2) Len() float32         { return float32(math.Sqrt(float64(v.Dot(v)))) }

func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

// Vec3 is a 3-component vector of float32.
type Vec3 struct{ X, Y, Z float32 }

func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) Dot(w Vec3) float32 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }
func (v Vec3) Len() float32       { return float32(math.Sqrt(float64(v.Dot(v)))) }

func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

func (v Vec3) Norm() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) Lerp(w Vec3, t float32) Vec3 {
	return Vec3{
		v.X + (w.X-v.X)*t,
		v.Y + (w.Y-v.Y)*t,
		v.Z + (w.Z-v.Z)*t,
	}
}

func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Distance returns the distance between v and w.
func (v Vec3) Distance(w Vec3) float32 { return v.Sub(w).Len() }

// Vec4 is a 4-component vector of float32, also used as a homogeneous point.
type Vec4 struct{ X, Y, Z, W float32 }

func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}
func (v Vec4) Dot(w Vec4) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Vec3FromVec4 drops the W component.
func Vec3FromVec4(v Vec4) Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Vec4FromVec3 extends v with the given w component.
func Vec4FromVec3(v Vec3, w float32) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }
