package colorspace

import "math"

// Color is implemented by color spaces connected directly to the XYZ hub:
// [Xyz], [LinearRgb] and [Oklab].
//
// Gamma-encoded and polar variants ([Srgb], [Oklch]) deliberately do not
// implement Color; convert them to their base space first.
type Color interface {
	// XYZ converts the color to the hub.
	XYZ() Xyz
}

// Space is the constraint satisfied by hub-connected color types that can
// also be built from XYZ. FromXYZ ignores its receiver.
type Space[T any] interface {
	Color
	FromXYZ(xyz Xyz) T
}

// Convert converts c to the color space T through the XYZ hub.
//
// Convert performs no validation and always succeeds for finite inputs;
// a float32 round trip loses some precision.
//
//	lab := colorspace.Convert[colorspace.Oklab](colorspace.LinearRgb{R: 0.4, G: 0.2, B: 0.6})
func Convert[T Space[T]](c Color) T {
	var zero T
	return zero.FromXYZ(c.XYZ())
}

// Hexer is implemented by colors with three channels nominally in [0, 1].
type Hexer interface {
	Components() (c0, c1, c2 float32)
}

// Hex packs the components of c into a 24-bit 0xRRGGBB value.
//
// Each channel is scaled by 255 and rounded half away from zero, so 0.5
// becomes 128. Channels outside [0, 1] are not clamped; the result for
// them is whatever the float to uint8 conversion produces.
func Hex(c Hexer) uint32 {
	c0, c1, c2 := c.Components()
	return uint32(scale8(c0))<<16 | uint32(scale8(c1))<<8 | uint32(scale8(c2))
}

// scale8 rounds n*255 computed in float32, so halfway cases match a
// float32 reference bit for bit.
func scale8(n float32) uint8 {
	//nolint:gosec // G115: out-of-range input is documented as unclamped
	return uint8(int32(math.Round(float64(n * 255))))
}

// boundsEpsilon is the slack allowed by InBounds checks, so values that
// drift just outside a range through float32 rounding still count.
const boundsEpsilon = 1e-4

func approxInRange(v, lo, hi float32) bool {
	return v >= lo-boundsEpsilon && v <= hi+boundsEpsilon
}
