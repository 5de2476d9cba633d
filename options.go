package rayfork

import "github.com/rayfork/rayfork-go/gpusink"

// ContextOption configures a Context during construction, the same
// functional-options shape the teacher used for its own NewContext.
type ContextOption func(*Context)

// WithShapesTexture overrides the default 1x1 white shapes-texture a
// Context installs during construction, letting an application pack
// basic-shape draws into a texture atlas alongside sprite draws from
// the start rather than calling SetShapesTexture afterward (§J).
func WithShapesTexture(tex gpusink.TextureHandle) ContextOption {
	return func(c *Context) {
		c.shapesTexture = tex
	}
}

// NewContextWithOptions constructs a Context like NewContext, then
// applies opts in order.
func NewContextWithOptions(sink gpusink.Sink, width, height int, opts ...ContextOption) *Context {
	c := NewContext(sink, width, height)
	for _, opt := range opts {
		opt(c)
	}
	return c
}
