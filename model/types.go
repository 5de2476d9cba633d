// Package model defines the mesh/material/model/animation entities (§3)
// shared by every model loader (container/iqm, container/gltf,
// container/obj) and by procmesh's procedural generators, plus the
// load_meshes_and_materials_for_model post-processing step (§4.7) and
// skeletal animation update (§4.8).
package model

import "github.com/rayfork/rayfork-go/mathx"

// MaxMaterialMaps bounds material.maps, standing in for the "external
// enum" §6 defers to a GPU-sink-defined maximum for.
const MaxMaterialMaps = 12

// Material map slot indices (§6).
const (
	MapDiffuse = iota
	MapSpecular
	MapNormal
	MapRoughness
	MapMetalness
	MapOcclusion
	MapEmission
	MapHeight
)

// TextureHandle is the opaque GPU-sink texture id (§3's texture entity
// reduced to the one field model/material code actually threads through).
type TextureHandle struct {
	ID      uint32
	Width   int
	Height  int
	Mipmaps int
	Valid   bool
}

// MaterialMap is one slot of a material: an optional texture, a tint
// color, and a scalar factor (§3).
type MaterialMap struct {
	Texture TextureHandle
	Color   mathx.Color
	Value   float32
}

// ShaderHandle is the opaque GPU-sink shader id.
type ShaderHandle struct {
	ID    uint32
	Valid bool
}

// Material is `{shader, maps[MAX_MAPS]}` (§3).
type Material struct {
	Shader ShaderHandle
	Maps   [MaxMaterialMaps]MaterialMap
}

// DefaultMaterial returns a material with a diffuse map tinted white and
// no shader override, used as the fallback material slot 0 per §4.7.
func DefaultMaterial() Material {
	m := Material{}
	m.Maps[MapDiffuse].Color = mathx.Color{R: 255, G: 255, B: 255, A: 255}
	return m
}

// Mesh is the CPU-side struct-of-arrays vertex/index data (§3). Attribute
// arrays are either nil or exactly len == 3*VertexCount (or 2*VertexCount
// for texcoords, 4*VertexCount for tangents/colors/skinning). Indices has
// len == 3*TriangleCount.
type Mesh struct {
	VertexCount   int
	TriangleCount int

	Vertices   []float32 // 3n
	Texcoords  []float32 // 2n
	Texcoords2 []float32 // 2n
	Normals    []float32 // 3n
	Tangents   []float32 // 4n
	Colors     []float32 // 4n
	Indices    []uint16  // 3t

	// Optional skinning arrays: present together or not at all.
	BoneIDs      []uint8   // 4n
	BoneWeights  []float32 // 4n
	AnimVertices []float32 // 3n, posed by the current animation frame
	AnimNormals  []float32 // 3n

	// GPU-side opaque handles, populated by the GPU sink on upload.
	VAOID  uint32
	VBOIDs []uint32
	Valid  bool
}

// HasSkinning reports whether m carries bone-weight skinning data.
func (m Mesh) HasSkinning() bool {
	return len(m.BoneIDs) > 0 && len(m.BoneWeights) > 0
}

// Bone is a skeleton joint: a name, and a parent index (-1 for a root
// joint), per §3/§4.4's IQM joint-parent walk.
type Bone struct {
	Name   string
	Parent int
}

// Transform is a TRS triple, the unit every bind pose and animation frame
// pose is expressed in (§3).
type Transform struct {
	Translation mathx.Vec3
	Rotation    mathx.Quat
	Scale       mathx.Vec3
}

// IdentityTransform returns the neutral TRS triple.
func IdentityTransform() Transform {
	return Transform{Scale: mathx.Vec3{X: 1, Y: 1, Z: 1}, Rotation: mathx.IdentityQuat()}
}

// ToMat4 composes t into a single column-major matrix: scale, then
// rotate, then translate.
func (t Transform) ToMat4() mathx.Mat4 {
	s := mathx.Scale4(t.Scale)
	r := mathx.QuatToMat4(t.Rotation)
	m := r.Mul(s)
	m = mathx.Translate4(t.Translation).Mul(m)
	return m
}

// Model is `{meshes, materials, mesh_material, bones, bind_pose,
// transform}` (§3).
type Model struct {
	Meshes        []Mesh
	Materials     []Material
	MeshMaterial  []int // index into Materials, one per Mesh
	Bones         []Bone
	BindPose      []Transform // one per Bone, world-space
	Transform     mathx.Mat4
	Valid         bool
}

// Animation is `{bones, frame_poses, frame_count}` (§3). FramePoses is
// indexed [frame][bone].
type Animation struct {
	Bones      []Bone
	FramePoses [][]Transform
	FrameCount int
	Valid      bool
}

// CompatibleWith reports whether anim can be applied to m: §3 defines
// compatibility as identical bone count and identical parent indices.
func (a Animation) CompatibleWith(m Model) bool {
	if len(a.Bones) != len(m.Bones) {
		return false
	}
	for i := range a.Bones {
		if a.Bones[i].Parent != m.Bones[i].Parent {
			return false
		}
	}
	return true
}
