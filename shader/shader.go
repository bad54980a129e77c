// Package shader provides a WGSL compute shader that converts batches of
// colors between gamma-encoded sRGB and Oklab on the GPU, plus helpers to
// pack colors into and out of its storage buffers.
//
// The shader declares two bindings in group 0: a read-only input array and
// a read-write output array, both array<vec4<f32>>. The fourth component
// of every element passes through unchanged.
package shader

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/colorspace"
)

//go:embed oklab.wgsl
var oklabShaderWGSL string

// Entry points defined by the shader.
const (
	EntrySrgbToOklab = "srgb_to_oklab"
	EntryOklabToSrgb = "oklab_to_srgb"
)

// WorkgroupSize is the @workgroup_size of both entry points.
const WorkgroupSize = 64

// Source returns the WGSL source of the conversion shader.
func Source() string {
	return oklabShaderWGSL
}

// Compile compiles the shader to SPIR-V words.
func Compile() ([]uint32, error) {
	spirvBytes, err := naga.Compile(oklabShaderWGSL)
	if err != nil {
		colorspace.Logger().Warn("shader: compile failed", "err", err)
		return nil, fmt.Errorf("shader: failed to compile oklab shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	colorspace.Logger().Debug("shader: compiled oklab shader", "words", len(spirvCode))
	return spirvCode, nil
}

// Workgroups returns the number of workgroups to dispatch for n colors.
func Workgroups(n int) uint32 {
	if n <= 0 {
		return 0
	}
	//nolint:gosec // G115: n is a buffer element count
	return uint32((n + WorkgroupSize - 1) / WorkgroupSize)
}
