package colorspace

import "github.com/gogpu/gputypes"

// GPUColor returns c as an opaque WebGPU color.
//
// WebGPU clear values and blend constants are linear, so this is the form
// to hand to a render pass targeting an sRGB texture format.
func (c LinearRgb) GPUColor() gputypes.Color {
	return gputypes.NewColorRGB(float64(c.R), float64(c.G), float64(c.B))
}

// ClearColor returns the clear value that makes a texture of the given
// format display c.
//
// For sRGB formats (format.IsSrgb()) the hardware encodes the clear value
// on store, so the linear form of c is returned. For all other formats
// the value is stored as-is and the gamma-encoded components are returned.
func ClearColor(c Srgb, format gputypes.TextureFormat) gputypes.Color {
	if format.IsSrgb() {
		return c.ToLinear().GPUColor()
	}
	return gputypes.NewColorRGB(float64(c.R), float64(c.G), float64(c.B))
}

// SrgbFromGPU is the inverse of [ClearColor]. Alpha is dropped.
func SrgbFromGPU(c gputypes.Color, format gputypes.TextureFormat) Srgb {
	if format.IsSrgb() {
		return SrgbFromLinear(LinearRgb{R: float32(c.R), G: float32(c.G), B: float32(c.B)})
	}
	return Srgb{R: float32(c.R), G: float32(c.G), B: float32(c.B)}
}
