package gpusink

import "github.com/rayfork/rayfork-go/mathx"

// NullSink is a Sink implementation that performs no GPU work: state
// calls and every emitter call other than Vertex2i/2f/3f are no-ops, the
// vertex calls record their positions in Submitted, Draw counts
// DrawCalls, and every resource call returns a
// zero-value handle with a monotonically increasing ID, enough for
// batch and model tests to exercise upload/draw call sequencing without
// a real device, the same role the teacher's software.go fallback plays
// when no GPUAccelerator is registered.
type NullSink struct {
	nextID    uint32
	Submitted []Vertex // records the position of every Vertex2i/2f/3f call since the last Begin
	DrawCalls int
}

// Vertex is one emitted vertex, recorded by NullSink for test assertions.
type Vertex struct {
	X, Y, Z    float32
	R, G, B, A float32
	U, V       float32
}

func (s *NullSink) Push()                                 {}
func (s *NullSink) Pop()                                  {}
func (s *NullSink) LoadIdentity()                         {}
func (s *NullSink) MultMatrixf(m mathx.Mat4)               {}
func (s *NullSink) Translate(x, y, z float32)              {}
func (s *NullSink) Rotate(angle, x, y, z float32)          {}
func (s *NullSink) Scale(x, y, z float32)                  {}
func (s *NullSink) MatrixMode(mode MatrixMode)             {}
func (s *NullSink) Frustum(l, r, b, t, n, f float64)       {}
func (s *NullSink) Ortho(l, r, b, t, n, f float64)         {}

func (s *NullSink) Begin(mode int) { s.Submitted = nil }
func (s *NullSink) End()           {}
func (s *NullSink) Vertex2i(x, y int) {
	s.Submitted = append(s.Submitted, Vertex{X: float32(x), Y: float32(y)})
}
func (s *NullSink) Vertex2f(x, y float32) {
	s.Submitted = append(s.Submitted, Vertex{X: x, Y: y})
}
func (s *NullSink) Vertex3f(x, y, z float32) {
	s.Submitted = append(s.Submitted, Vertex{X: x, Y: y, Z: z})
}
func (s *NullSink) Color3f(r, g, b float32)      {}
func (s *NullSink) Color4ub(r, g, b, a uint8)    {}
func (s *NullSink) TexCoord2f(u, v float32)      {}
func (s *NullSink) Normal3f(x, y, z float32)     {}

func (s *NullSink) EnableTexture(id uint32)       {}
func (s *NullSink) DisableTexture()               {}
func (s *NullSink) EnableShader(shader ShaderHandle) {}
func (s *NullSink) DisableShader()                   {}
func (s *NullSink) SetBlendMode(mode BlendMode)   {}
func (s *NullSink) EnableDepthTest()              {}
func (s *NullSink) DisableDepthTest()             {}
func (s *NullSink) EnableWireMode()               {}
func (s *NullSink) DisableWireMode()              {}
func (s *NullSink) Scissor(x, y, w, h int)         {}
func (s *NullSink) Viewport(x, y, w, h int)        {}
func (s *NullSink) ClearColor(r, g, b, a uint8)    {}
func (s *NullSink) ClearScreenBuffers()            {}

func (s *NullSink) allocID() uint32 {
	s.nextID++
	return s.nextID
}

func (s *NullSink) LoadTexture(pixels []byte, width, height int, format int) TextureHandle {
	return TextureHandle{ID: s.allocID(), Width: width, Height: height}
}
func (s *NullSink) LoadTextureCubemap(pixels []byte, size int, format int) TextureHandle {
	return TextureHandle{ID: s.allocID(), Width: size, Height: size}
}
func (s *NullSink) UpdateTexture(tex TextureHandle, pixels []byte) {}
func (s *NullSink) DeleteTextures(tex ...TextureHandle)            {}
func (s *NullSink) GenerateMipmaps(tex TextureHandle) int          { return 1 }
func (s *NullSink) SetTextureWrap(tex TextureHandle, mode int)     {}
func (s *NullSink) SetTextureFilter(tex TextureHandle, mode int)   {}
func (s *NullSink) ReadTexturePixels(tex TextureHandle) []byte {
	return make([]byte, tex.Width*tex.Height*4)
}
func (s *NullSink) ReadScreenPixels(width, height int) []byte {
	return make([]byte, width*height*4)
}

func (s *NullSink) LoadRenderTexture(width, height int) RenderTextureHandle {
	return RenderTextureHandle{ID: s.allocID(), Texture: TextureHandle{ID: s.allocID(), Width: width, Height: height}}
}
func (s *NullSink) EnableRenderTexture(rt RenderTextureHandle) {}
func (s *NullSink) DisableRenderTexture()                      {}
func (s *NullSink) DeleteRenderTextures(rt ...RenderTextureHandle) {}

func (s *NullSink) LoadMesh(vertices, texcoords, normals []float32, indices []uint16) MeshHandle {
	return MeshHandle{VAOID: s.allocID(), VBOIDs: []uint32{s.allocID()}}
}
func (s *NullSink) UnloadMesh(mesh MeshHandle)                                      {}
func (s *NullSink) DrawMesh(mesh MeshHandle, materialShader uint32, t mathx.Mat4)   {}
func (s *NullSink) UpdateBuffer(bufferID uint32, data []byte, offset int)           {}
func (s *NullSink) LoadAttribBuffer(size int, dynamic bool) uint32                  { return s.allocID() }
func (s *NullSink) LoadShader(vsSource, fsSource string) (ShaderHandle, error) {
	return ShaderHandle{ID: s.allocID()}, nil
}
func (s *NullSink) UnloadShader(shader ShaderHandle) {}

func (s *NullSink) CheckBufferLimit(vertexCount int) bool { return true }
func (s *NullSink) Draw()                                 { s.DrawCalls++ }

var _ Sink = (*NullSink)(nil)
