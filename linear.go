package colorspace

import (
	"github.com/gogpu/colorspace/internal/mat3"
	"github.com/gogpu/colorspace/internal/transfer"
)

// LinearRgb is an RGB color without gamma encoding, using the sRGB
// primaries and the D65 white point.
type LinearRgb struct {
	// R is red (0 to 1).
	R float32
	// G is green (0 to 1).
	G float32
	// B is blue (0 to 1).
	B float32
}

// Reference colors in linear RGB.
var (
	LinearRgbBlack = LinearRgb{R: 0, G: 0, B: 0}
	LinearRgbWhite = LinearRgb{R: 1, G: 1, B: 1}
)

// linearToXYZ maps linear sRGB to XYZ (sRGB primaries, D65).
var linearToXYZ = mat3.Mat3{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// xyzToLinear is the inverse of linearToXYZ.
var xyzToLinear = mat3.Mat3{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// LinearRgbFromXYZ converts an XYZ color to linear RGB.
// Colors outside the sRGB gamut produce components outside [0, 1].
func LinearRgbFromXYZ(xyz Xyz) LinearRgb {
	v := xyzToLinear.Apply(mat3.Vec3{xyz.X, xyz.Y, xyz.Z})
	return LinearRgb{R: v[0], G: v[1], B: v[2]}
}

// XYZ converts c to the XYZ hub.
func (c LinearRgb) XYZ() Xyz {
	v := linearToXYZ.Apply(mat3.Vec3{c.R, c.G, c.B})
	return Xyz{X: v[0], Y: v[1], Z: v[2]}
}

// FromXYZ converts xyz to linear RGB. The receiver is ignored; the method
// exists so LinearRgb satisfies [Space].
func (LinearRgb) FromXYZ(xyz Xyz) LinearRgb {
	return LinearRgbFromXYZ(xyz)
}

// LinearFromSrgb8 converts 8-bit sRGB components to linear RGB using a
// lookup table. It is equivalent to Srgb{r/255, g/255, b/255}.ToLinear().
func LinearFromSrgb8(r, g, b uint8) LinearRgb {
	return LinearRgb{
		R: transfer.LinearizeByte(r),
		G: transfer.LinearizeByte(g),
		B: transfer.LinearizeByte(b),
	}
}

// Srgb8 gamma-encodes c to 8-bit sRGB components using a lookup table.
// Channels are clamped to [0, 1]; NaN maps to 0. The result is within one
// step of SrgbFromLinear(c) scaled to bytes, and exact for any color that
// came from LinearFromSrgb8.
func (c LinearRgb) Srgb8() (r, g, b uint8) {
	return transfer.DelinearizeByte(c.R),
		transfer.DelinearizeByte(c.G),
		transfer.DelinearizeByte(c.B)
}

// Components returns the red, green and blue channels.
func (c LinearRgb) Components() (r, g, b float32) {
	return c.R, c.G, c.B
}

// Hex packs c into 0xRRGGBB without gamma encoding.
func (c LinearRgb) Hex() uint32 {
	return Hex(c)
}

// InBounds reports whether every channel is within [0, 1].
func (c LinearRgb) InBounds() bool {
	return approxInRange(c.R, 0, 1) &&
		approxInRange(c.G, 0, 1) &&
		approxInRange(c.B, 0, 1)
}
