package mathx

import "math"

// CameraProjection selects the projection family a Camera3D uses.
type CameraProjection int

const (
	// Perspective projects with depth-dependent foreshortening.
	Perspective3D CameraProjection = iota
	// Orthographic projects without foreshortening.
	Orthographic3D
)

// Camera3D describes a 3D viewpoint (§3/§4.3).
type Camera3D struct {
	Position   Vec3
	Target     Vec3
	Up         Vec3
	FovY       float32 // degrees for Perspective3D, ortho view height in world units for Orthographic3D
	Projection CameraProjection
}

// ViewMatrix returns the camera's view matrix (§4.3 look_at).
func (c Camera3D) ViewMatrix() Mat4 { return LookAt(c.Position, c.Target, c.Up) }

// ProjectionMatrix returns the camera's projection matrix for the given
// viewport aspect ratio and near/far planes.
func (c Camera3D) ProjectionMatrix(aspect, near, far float32) Mat4 {
	switch c.Projection {
	case Orthographic3D:
		top := c.FovY / 2
		right := top * aspect
		return Ortho(-right, right, -top, top, near, far)
	default:
		return Perspective(c.FovY*float32(math.Pi)/180, aspect, near, far)
	}
}

// Camera2D describes a 2D viewpoint (pan/zoom/rotation around a target).
type Camera2D struct {
	Offset   Vec2
	Target   Vec2
	Rotation float32 // degrees
	Zoom     float32
}

// Matrix builds the 2D camera transform per §4.3:
// translate(-target) * scale(zoom) * rotate(rotation) * translate(offset).
func (c Camera2D) Matrix() Mat4 {
	t1 := Translate4(Vec3{-c.Target.X, -c.Target.Y, 0})
	s := Scale4(Vec3{c.Zoom, c.Zoom, 1})
	r := RotateZ4(c.Rotation * float32(math.Pi) / 180)
	t2 := Translate4(Vec3{c.Offset.X, c.Offset.Y, 0})
	return t1.Mul(s).Mul(r).Mul(t2)
}

// Unproject maps a point in normalized device coordinates back to world
// space, per §4.3: invert proj*view, transform the point, divide by w.
func Unproject(sourceNDC Vec3, proj, view Mat4) Vec3 {
	inv := proj.Mul(view).Invert()
	p := inv.MulVec4(Vec4FromVec3(sourceNDC, 1))
	if p.W == 0 {
		return Vec3{}
	}
	return Vec3{p.X / p.W, p.Y / p.W, p.Z / p.W}
}

// Ray is a parametric ray: point(t) = Origin + t*Direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// MouseRay builds a world-space picking ray from a screen position, per
// §4.3: build the projection (perspective or ortho depending on camera
// type), compute NDC near/far points, unproject both, direction is the
// normalized difference, and origin is the camera position for
// perspective cameras or the unprojected near point for orthographic ones.
func MouseRay(screenPos, screenSize Vec2, camera Camera3D) Ray {
	aspect := screenSize.X / screenSize.Y

	x := (2*screenPos.X)/screenSize.X - 1
	y := 1 - (2*screenPos.Y)/screenSize.Y

	proj := camera.ProjectionMatrix(aspect, 0.01, 1000)
	view := camera.ViewMatrix()

	nearPoint := Unproject(Vec3{x, y, 0}, proj, view)
	farPoint := Unproject(Vec3{x, y, 1}, proj, view)

	direction := farPoint.Sub(nearPoint).Norm()

	origin := camera.Position
	if camera.Projection == Orthographic3D {
		origin = nearPoint
	}

	return Ray{Origin: origin, Direction: direction}
}
