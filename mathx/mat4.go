package mathx

import "math"

// Mat4 is a 4x4 matrix of float32 stored column-major in a flat array, so
// that m[12], m[13], m[14] hold the translation column, matching the
// m0..m15 naming the original engine exposes (§9: the flat layout is kept
// for contiguous bulk operations; named access goes through accessors).
type Mat4 [16]float32

// M returns the element at the given row and column (both 0-based).
func (m Mat4) M(row, col int) float32 { return m[col*4+row] }

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate4 returns a translation matrix.
func Translate4(v Vec3) Mat4 {
	m := Identity4()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// Scale4 returns a scaling matrix.
func Scale4(v Vec3) Mat4 {
	m := Identity4()
	m[0], m[5], m[10] = v.X, v.Y, v.Z
	return m
}

// RotateX4 returns a rotation matrix around the X axis (radians).
func RotateX4(angle float32) Mat4 {
	c, s := float32(math.Cos(float64(angle))), float32(math.Sin(float64(angle)))
	m := Identity4()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// RotateY4 returns a rotation matrix around the Y axis (radians).
func RotateY4(angle float32) Mat4 {
	c, s := float32(math.Cos(float64(angle))), float32(math.Sin(float64(angle)))
	m := Identity4()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// RotateZ4 returns a rotation matrix around the Z axis (radians).
func RotateZ4(angle float32) Mat4 {
	c, s := float32(math.Cos(float64(angle))), float32(math.Sin(float64(angle)))
	m := Identity4()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// RotateAxis4 returns a rotation matrix around an arbitrary axis (radians).
func RotateAxis4(axis Vec3, angle float32) Mat4 {
	axis = axis.Norm()
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	return Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// Mul returns l * r.
func (m Mat4) Mul(r Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.M(j, k) * r.M(k, i)
			}
			out[i*4+j] = sum
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}

// Invert returns the inverse of m. If m is singular, the result is
// undefined (division by a near-zero determinant); callers that must
// detect this should check Determinant first.
func (m Mat4) Invert() Mat4 {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	idet := 1 / det

	return Mat4{
		(a11*b11 - a12*b10 + a13*b09) * idet,
		(a02*b10 - a01*b11 - a03*b09) * idet,
		(a31*b05 - a32*b04 + a33*b03) * idet,
		(a22*b04 - a21*b05 - a23*b03) * idet,
		(a12*b08 - a10*b11 - a13*b07) * idet,
		(a00*b11 - a02*b08 + a03*b07) * idet,
		(a32*b02 - a30*b05 - a33*b01) * idet,
		(a20*b05 - a22*b02 + a23*b01) * idet,
		(a10*b10 - a11*b08 + a13*b06) * idet,
		(a01*b08 - a00*b10 - a03*b06) * idet,
		(a30*b04 - a31*b02 + a33*b00) * idet,
		(a21*b02 - a20*b04 - a23*b00) * idet,
		(a11*b07 - a10*b09 - a12*b06) * idet,
		(a00*b09 - a01*b07 + a02*b06) * idet,
		(a31*b01 - a30*b03 - a32*b00) * idet,
		(a20*b03 - a21*b01 + a22*b00) * idet,
	}
}

// Determinant returns the determinant of m.
func (m Mat4) Determinant() float32 {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// MulVec4 transforms v by m.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m.M(0, 0)*v.X + m.M(0, 1)*v.Y + m.M(0, 2)*v.Z + m.M(0, 3)*v.W,
		m.M(1, 0)*v.X + m.M(1, 1)*v.Y + m.M(1, 2)*v.Z + m.M(1, 3)*v.W,
		m.M(2, 0)*v.X + m.M(2, 1)*v.Y + m.M(2, 2)*v.Z + m.M(2, 3)*v.W,
		m.M(3, 0)*v.X + m.M(3, 1)*v.Y + m.M(3, 2)*v.Z + m.M(3, 3)*v.W,
	}
}

// MulPoint3 transforms a 3D point (implicit w=1) and returns the x, y, z
// of the result; the resulting w is dropped and no perspective divide is
// applied.
func (m Mat4) MulPoint3(v Vec3) Vec3 {
	r := m.MulVec4(Vec4FromVec3(v, 1))
	return Vec3{r.X, r.Y, r.Z}
}

// Frustum builds an OpenGL-style clip-space frustum projection matrix.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	var m Mat4
	m[0] = near * 2 / rl
	m[5] = near * 2 / tb
	m[8] = (right + left) / rl
	m[9] = (top + bottom) / tb
	m[10] = -(far + near) / fn
	m[11] = -1
	m[14] = -(far * near * 2) / fn
	return m
}

// Perspective builds an OpenGL-style perspective projection matrix from a
// vertical field of view (radians), aspect ratio, and near/far planes.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	top := near * float32(math.Tan(float64(fovy)/2))
	right := top * aspect
	return Frustum(-right, right, -top, top, near, far)
}

// Ortho builds an OpenGL-style orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	m := Identity4()
	m[0] = 2 / rl
	m[5] = 2 / tb
	m[10] = -2 / fn
	m[12] = -(right + left) / rl
	m[13] = -(top + bottom) / tb
	m[14] = -(far + near) / fn
	return m
}

// LookAt builds the inverse of the view matrix for a camera at eye looking
// toward target with the given up vector, per §4.3.
func LookAt(eye, target, up Vec3) Mat4 {
	z := eye.Sub(target).Norm()
	x := up.Cross(z).Norm()
	y := z.Cross(x)

	return Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}
