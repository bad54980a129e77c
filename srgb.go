package colorspace

import (
	"image/color"

	"github.com/gogpu/colorspace/internal/transfer"
)

// Srgb is a gamma-encoded sRGB color.
//
// Srgb is not a [Color]: it reaches the XYZ hub only through [LinearRgb].
//
//	xyz := srgb.ToLinear().XYZ()
//	lab := colorspace.Convert[colorspace.Oklab](srgb.ToLinear())
type Srgb struct {
	// R is red (0 to 1).
	R float32
	// G is green (0 to 1).
	G float32
	// B is blue (0 to 1).
	B float32
}

// Reference colors in sRGB.
var (
	SrgbBlack = Srgb{R: 0, G: 0, B: 0}
	SrgbWhite = Srgb{R: 1, G: 1, B: 1}
)

// Verify at compile time that Srgb implements color.Color.
var _ color.Color = Srgb{}

// SrgbFromLinear gamma-encodes a linear RGB color.
func SrgbFromLinear(c LinearRgb) Srgb {
	return Srgb{
		R: transfer.Delinearize(c.R),
		G: transfer.Delinearize(c.G),
		B: transfer.Delinearize(c.B),
	}
}

// ToLinear removes the gamma encoding.
func (c Srgb) ToLinear() LinearRgb {
	return LinearRgb{
		R: transfer.Linearize(c.R),
		G: transfer.Linearize(c.G),
		B: transfer.Linearize(c.B),
	}
}

// SrgbFromHex unpacks a 0xRRGGBB value. Bits above the low 24 are ignored.
func SrgbFromHex(hex uint32) Srgb {
	return Srgb{
		R: float32((hex>>16)&0xFF) / 255,
		G: float32((hex>>8)&0xFF) / 255,
		B: float32(hex&0xFF) / 255,
	}
}

// SrgbFromColor converts a standard color.Color to Srgb.
// Premultiplied alpha is divided out; a fully transparent color maps to
// black.
func SrgbFromColor(c color.Color) Srgb {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return SrgbBlack
	}
	fa := float32(a)
	return Srgb{
		R: float32(r) / fa,
		G: float32(g) / fa,
		B: float32(b) / fa,
	}
}

// RGBA implements color.Color. The color is opaque; channels are clamped
// to [0, 1] before scaling to 16 bits.
func (c Srgb) RGBA() (r, g, b, a uint32) {
	return scale16(c.R), scale16(c.G), scale16(c.B), 0xFFFF
}

// Components returns the red, green and blue channels.
func (c Srgb) Components() (r, g, b float32) {
	return c.R, c.G, c.B
}

// Hex packs c into 0xRRGGBB.
func (c Srgb) Hex() uint32 {
	return Hex(c)
}

// InBounds reports whether every channel is within [0, 1].
func (c Srgb) InBounds() bool {
	return approxInRange(c.R, 0, 1) &&
		approxInRange(c.G, 0, 1) &&
		approxInRange(c.B, 0, 1)
}

// scale16 clamps v to [0, 1] and scales it to [0, 0xFFFF] with rounding.
func scale16(v float32) uint32 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 0xFFFF
	}
	return uint32(v*0xFFFF + 0.5)
}
