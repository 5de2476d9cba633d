package rayfork

import (
	"math"

	"github.com/rayfork/rayfork-go/batch"
	"github.com/rayfork/rayfork-go/gpusink"
	"github.com/rayfork/rayfork-go/mathx"
)

// Context is the process-wide aggregate state every draw operation
// reads from: viewport size, the current scaling matrix, the default
// texture handle, the current shapes-texture (a 1x1 white texture by
// default, overridable for texture-atlas packing of primitives), and
// the current render/screen dimensions (§J). It holds no default shader
// or font handle.
//
// Context has lifetime equal to the application's: applications retain
// allocation control by constructing one with NewContext and installing
// it once via Install, the same single-pointer-setter shape the
// teacher's Context.go used for its own process-wide render state.
type Context struct {
	sink gpusink.Sink
	b    *batch.Batcher

	width, height int

	scale mathx.Mat4

	defaultTexture gpusink.TextureHandle
	shapesTexture  gpusink.TextureHandle

	viewportStack []viewportFrame
	renderTarget  gpusink.RenderTextureHandle
	inRenderPass  bool
}

type viewportFrame struct {
	width, height int
}

var current *Context

// Install sets the process-wide Context pointer. Applications call this
// once after construction; rayfork never constructs its own Context.
func Install(c *Context) { current = c }

// Current returns the process-wide Context installed via Install, or
// nil if none has been installed yet.
func Current() *Context { return current }

// NewContext constructs a Context of the given screen dimensions driven
// by sink. It installs a 1x1 white default shapes-texture and an
// identity scaling matrix, per §J.
func NewContext(sink gpusink.Sink, width, height int) *Context {
	c := &Context{
		sink:   sink,
		b:      batch.New(sink),
		width:  width,
		height: height,
		scale:  mathx.Identity4(),
	}
	white := []byte{255, 255, 255, 255}
	c.defaultTexture = sink.LoadTexture(white, 1, 1, 0)
	c.shapesTexture = c.defaultTexture
	return c
}

// Batcher returns the Context's draw-call batcher, the entry point for
// every shape-decomposition helper in package batch.
func (c *Context) Batcher() *batch.Batcher { return c.b }

// Width and Height return the Context's current render/screen
// dimensions, which BeginRenderToTexture temporarily overrides.
func (c *Context) Width() int  { return c.width }
func (c *Context) Height() int { return c.height }

// SetShapesTexture overrides the default 1x1 white shapes-texture,
// letting an application pack basic-shape draws into a texture atlas
// alongside sprite draws (§J).
func (c *Context) SetShapesTexture(tex gpusink.TextureHandle) { c.shapesTexture = tex }

// ShapesTexture returns the texture currently bound for basic-shape
// draws.
func (c *Context) ShapesTexture() gpusink.TextureHandle { return c.shapesTexture }

// Begin3D flushes any queued 2D batch, pushes the projection matrix,
// switches to a 3D projection/view built from fovy/aspect/near/far, and
// enables the depth test, per §J. End3D must be called to restore 2D
// state.
func (c *Context) Begin3D(fovy, aspect float64, near, far float64) {
	c.b.Flush()
	c.sink.MatrixMode(gpusink.Projection)
	c.sink.Push()
	c.sink.LoadIdentity()
	top := near * math.Tan(fovy*math.Pi/180/2)
	right := top * aspect
	c.sink.Frustum(-right, right, -top, top, near, far)
	c.sink.MatrixMode(gpusink.ModelView)
	c.sink.LoadIdentity()
	c.sink.EnableDepthTest()
}

// End3D flushes the 3D batch, restores the 2D orthographic projection,
// and disables the depth test (§J).
func (c *Context) End3D() {
	c.b.Flush()
	c.sink.DisableDepthTest()
	c.sink.MatrixMode(gpusink.Projection)
	c.sink.Pop()
	c.sink.MatrixMode(gpusink.ModelView)
	c.sink.LoadIdentity()
}

// BeginRenderToTexture flushes the current batch and redirects the sink
// to rt, pushing the prior viewport dimensions onto a nested stack so
// EndRenderToTexture can restore them (§J).
func (c *Context) BeginRenderToTexture(rt gpusink.RenderTextureHandle) {
	c.b.Flush()
	c.viewportStack = append(c.viewportStack, viewportFrame{c.width, c.height})
	c.renderTarget = rt
	c.inRenderPass = true
	c.width, c.height = rt.Texture.Width, rt.Texture.Height
	c.sink.EnableRenderTexture(rt)
	c.sink.Viewport(0, 0, c.width, c.height)
}

// EndRenderToTexture flushes the batch, disables the render-texture
// redirect, and pops the nested viewport-size stack (§J).
func (c *Context) EndRenderToTexture() {
	c.b.Flush()
	c.sink.DisableRenderTexture()
	c.inRenderPass = false
	if n := len(c.viewportStack); n > 0 {
		frame := c.viewportStack[n-1]
		c.viewportStack = c.viewportStack[:n-1]
		c.width, c.height = frame.width, frame.height
		c.sink.Viewport(0, 0, c.width, c.height)
	}
}

// BeginScissor flushes the current batch, since a mid-batch scissor
// change would be invisible to already-queued vertices, then restricts
// drawing to the given rectangle (§J).
func (c *Context) BeginScissor(x, y, width, height int) {
	c.b.Flush()
	c.sink.Scissor(x, y, width, height)
}

// EndScissor flushes the batch and restores scissoring to the full
// Context viewport (§J).
func (c *Context) EndScissor() {
	c.b.Flush()
	c.sink.Scissor(0, 0, c.width, c.height)
}

// BeginShader flushes the current batch and binds shader for subsequent
// draws, the same flush-then-switch rule BeginScissor follows (§J).
// Shader and texture binds are distinct sink facets — a shader never
// occupies the texture slot EnableTexture manages.
func (c *Context) BeginShader(shader gpusink.ShaderHandle) {
	c.b.Flush()
	c.sink.EnableShader(shader)
}

// EndShader flushes the batch and unbinds the active shader.
func (c *Context) EndShader() {
	c.b.Flush()
	c.sink.DisableShader()
}
