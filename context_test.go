package rayfork

import (
	"testing"

	"github.com/rayfork/rayfork-go/gpusink"
)

// recordingSink is a NullSink that remembers the last scissor rectangle
// and the shader bind state.
type recordingSink struct {
	gpusink.NullSink
	scissor     [4]int
	shader      gpusink.ShaderHandle
	shaderBound bool
}

func (s *recordingSink) Scissor(x, y, w, h int) { s.scissor = [4]int{x, y, w, h} }
func (s *recordingSink) EnableShader(shader gpusink.ShaderHandle) {
	s.shader, s.shaderBound = shader, true
}
func (s *recordingSink) DisableShader() { s.shaderBound = false }

func TestBeginShaderFlushesAndEnablesShader(t *testing.T) {
	sink := &recordingSink{}
	c := NewContext(sink, 100, 100)

	shader, err := sink.LoadShader("", "")
	if err != nil {
		t.Fatalf("LoadShader: %v", err)
	}

	flushedBefore := sink.DrawCalls
	c.BeginShader(shader)
	if sink.DrawCalls == flushedBefore {
		t.Error("BeginShader did not flush the batch")
	}
	if !sink.shaderBound || sink.shader != shader {
		t.Error("BeginShader did not bind the shader")
	}
}

func TestEndShaderFlushesAndDisablesShader(t *testing.T) {
	sink := &recordingSink{}
	c := NewContext(sink, 100, 100)

	shader, _ := sink.LoadShader("", "")
	c.BeginShader(shader)

	flushedBefore := sink.DrawCalls
	c.EndShader()
	if sink.DrawCalls == flushedBefore {
		t.Error("EndShader did not flush the batch")
	}
	if sink.shaderBound {
		t.Error("EndShader did not unbind the shader")
	}
}

func TestScissorRoundTripRestoresFullViewport(t *testing.T) {
	sink := &recordingSink{}
	c := NewContext(sink, 640, 480)

	c.BeginScissor(10, 10, 20, 20)
	c.EndScissor()
	if want := [4]int{0, 0, 640, 480}; sink.scissor != want {
		t.Errorf("EndScissor left scissor at %v, want %v", sink.scissor, want)
	}
}
