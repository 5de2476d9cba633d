// Package gpusink expresses the external, opaque GPU sink contract (§6)
// as a set of Go interfaces instead of a concrete backend: rayfork never
// owns a GPU device, only drives one supplied by the application, the
// same shape as the teacher's GPUAccelerator registered via
// RegisterAccelerator in accelerator.go. Facets split along the sink's
// five concerns (matrix stack, emitter, state, resources, lifecycle) so an adapter
// can implement only what it needs and the zero-value NullSink can stand
// in for every facet during tests.
package gpusink

import "github.com/rayfork/rayfork-go/mathx"

// MatrixMode selects which matrix the stack operations below affect.
type MatrixMode int

const (
	ModelView MatrixMode = iota
	Projection
)

// BlendMode selects the sink's pixel-combine function for subsequent
// draw calls, per §6's `blend_mode` state call.
type BlendMode int

const (
	BlendAlpha BlendMode = iota
	BlendAdditive
	BlendMultiplied
	BlendAddColors
	BlendSubtractColors
)

// MatrixStack is the GPU sink's transform-stack facet (§6).
type MatrixStack interface {
	Push()
	Pop()
	LoadIdentity()
	MultMatrixf(m mathx.Mat4)
	Translate(x, y, z float32)
	Rotate(angle, x, y, z float32)
	Scale(x, y, z float32)
	MatrixMode(mode MatrixMode)
	Frustum(left, right, bottom, top, near, far float64)
	Ortho(left, right, bottom, top, near, far float64)
}

// Emitter is the GPU sink's immediate-mode vertex-submission facet (§6).
// Vertices submitted between Begin/End are interpreted per the
// primitive mode Begin receives (lines, triangles, quads).
type Emitter interface {
	Begin(mode int)
	End()
	Vertex2i(x, y int)
	Vertex2f(x, y float32)
	Vertex3f(x, y, z float32)
	Color3f(r, g, b float32)
	Color4ub(r, g, b, a uint8)
	TexCoord2f(u, v float32)
	Normal3f(x, y, z float32)
}

// State is the GPU sink's render-state facet (§6).
type State interface {
	EnableTexture(id uint32)
	DisableTexture()
	EnableShader(shader ShaderHandle)
	DisableShader()
	SetBlendMode(mode BlendMode)
	EnableDepthTest()
	DisableDepthTest()
	EnableWireMode()
	DisableWireMode()
	Scissor(x, y, width, height int)
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a uint8)
	ClearScreenBuffers()
}

// TextureHandle mirrors the opaque handle the GPU sink hands back from
// LoadTexture, threaded through model.TextureHandle at the call site.
type TextureHandle struct {
	ID            uint32
	Width, Height int
}

// RenderTextureHandle is the framebuffer object handle returned by
// LoadRenderTexture, used to redirect draws via EnableRenderTexture.
type RenderTextureHandle struct {
	ID      uint32
	Texture TextureHandle
}

// MeshHandle is the opaque per-mesh GPU buffer-set handle returned by
// LoadMesh, mirroring model.Mesh's VAOID/VBOIDs fields.
type MeshHandle struct {
	VAOID  uint32
	VBOIDs []uint32
}

// ShaderHandle is the opaque compiled-shader handle LoadShader returns,
// bound via State.EnableShader. It is distinct from a texture ID: a
// shader selects the draw pipeline, a texture only supplies a sampled
// image, and the two must never share a bind slot.
type ShaderHandle struct {
	ID uint32
}

// Resources is the GPU sink's upload/teardown facet (§6).
type Resources interface {
	LoadTexture(pixels []byte, width, height int, format int) TextureHandle
	LoadTextureCubemap(pixels []byte, size int, format int) TextureHandle
	UpdateTexture(tex TextureHandle, pixels []byte)
	DeleteTextures(tex ...TextureHandle)
	GenerateMipmaps(tex TextureHandle) int
	SetTextureWrap(tex TextureHandle, mode int)
	SetTextureFilter(tex TextureHandle, mode int)
	ReadTexturePixels(tex TextureHandle) []byte
	ReadScreenPixels(width, height int) []byte

	LoadRenderTexture(width, height int) RenderTextureHandle
	EnableRenderTexture(rt RenderTextureHandle)
	DisableRenderTexture()
	DeleteRenderTextures(rt ...RenderTextureHandle)

	LoadMesh(vertices, texcoords, normals []float32, indices []uint16) MeshHandle
	UnloadMesh(mesh MeshHandle)
	DrawMesh(mesh MeshHandle, materialShader uint32, transform mathx.Mat4)
	UpdateBuffer(bufferID uint32, data []byte, offset int)
	LoadAttribBuffer(size int, dynamic bool) uint32
	LoadShader(vsSource, fsSource string) (ShaderHandle, error)
	UnloadShader(shader ShaderHandle)
}

// Lifecycle is the GPU sink's per-frame bookkeeping facet (§6):
// CheckBufferLimit reports whether the batcher's ring buffer has room
// for vertexCount more vertices without overflowing, and Draw flushes
// the currently queued batch.
type Lifecycle interface {
	CheckBufferLimit(vertexCount int) bool
	Draw()
}

// Sink aggregates every facet a GPU backend adapter must implement to
// back a Context (§6). Applications construct one Sink implementation
// (e.g. gpusink/example_adapter.go's wgpu-backed adapter) and pass it to
// NewContext; the resulting Context is installed once via Install.
type Sink interface {
	MatrixStack
	Emitter
	State
	Resources
	Lifecycle
}
