package model

import "github.com/rayfork/rayfork-go/mathx"

// UpdateAnimation poses m's meshes at anim's given frame (§4.8):
// frame is modulo-reduced into [0, anim.FrameCount), and for every
// skinned vertex its first bone id selects a bind pose (in) and an
// animated pose (out); the vertex and its normal are re-expressed in
// the animated pose and written to AnimVertices/AnimNormals.
//
// Returns false without modifying m if anim is not CompatibleWith m or
// anim.FrameCount is zero — callers checking this return value get the
// non-inverted "faithful port" reading of the early-return condition
// (see DESIGN.md).
func UpdateAnimation(m *Model, anim Animation, frame int) bool {
	if !anim.CompatibleWith(*m) || anim.FrameCount == 0 {
		return false
	}
	frame = ((frame % anim.FrameCount) + anim.FrameCount) % anim.FrameCount
	pose := anim.FramePoses[frame]

	for mi := range m.Meshes {
		mesh := &m.Meshes[mi]
		if !mesh.HasSkinning() {
			continue
		}
		if mesh.AnimVertices == nil {
			mesh.AnimVertices = make([]float32, len(mesh.Vertices))
		}
		if mesh.AnimNormals == nil {
			mesh.AnimNormals = make([]float32, len(mesh.Normals))
		}

		for v := 0; v < mesh.VertexCount; v++ {
			boneID := int(mesh.BoneIDs[v*4])
			if boneID < 0 || boneID >= len(m.BindPose) || boneID >= len(pose) {
				continue
			}
			in := m.BindPose[boneID]
			out := pose[boneID]

			vertex := mathx.Vec3{
				X: mesh.Vertices[v*3], Y: mesh.Vertices[v*3+1], Z: mesh.Vertices[v*3+2],
			}
			rot := out.Rotation.Mul(in.Rotation.Invert())

			scaled := mathx.Vec3{X: vertex.X * out.Scale.X, Y: vertex.Y * out.Scale.Y, Z: vertex.Z * out.Scale.Z}
			animated := rot.RotateVec3(scaled.Sub(in.Translation)).Add(out.Translation)
			mesh.AnimVertices[v*3] = animated.X
			mesh.AnimVertices[v*3+1] = animated.Y
			mesh.AnimVertices[v*3+2] = animated.Z

			if len(mesh.Normals) >= (v+1)*3 {
				normal := mathx.Vec3{
					X: mesh.Normals[v*3], Y: mesh.Normals[v*3+1], Z: mesh.Normals[v*3+2],
				}
				animatedNormal := rot.RotateVec3(normal)
				mesh.AnimNormals[v*3] = animatedNormal.X
				mesh.AnimNormals[v*3+1] = animatedNormal.Y
				mesh.AnimNormals[v*3+2] = animatedNormal.Z
			}
		}
	}
	return true
}
