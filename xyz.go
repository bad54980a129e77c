package colorspace

// Xyz is a color in the CIE 1931 XYZ color space.
//
// The D65 illuminant and the 2° standard observer are assumed. Xyz is the
// hub that every [Color] converts through.
type Xyz struct {
	// X is a mix of cone response curves chosen to be nonnegative.
	// Ranges from 0 to 0.95047.
	X float32
	// Y is the luminance. 0 is black, 1 is the brightest white.
	Y float32
	// Z is roughly the blueness. Ranges from 0 to 1.08883.
	Z float32
}

// Reference colors in XYZ. XyzWhite is the D65 white point.
var (
	XyzBlack = Xyz{X: 0, Y: 0, Z: 0}
	XyzWhite = Xyz{X: 0.95047, Y: 1.0, Z: 1.08883}
)

// XYZ returns c unchanged.
func (c Xyz) XYZ() Xyz {
	return c
}

// FromXYZ returns xyz unchanged. The receiver is ignored.
func (Xyz) FromXYZ(xyz Xyz) Xyz {
	return xyz
}

// InBounds reports whether c lies within the nominal D65 range.
func (c Xyz) InBounds() bool {
	return approxInRange(c.X, 0, XyzWhite.X) &&
		approxInRange(c.Y, 0, XyzWhite.Y) &&
		approxInRange(c.Z, 0, XyzWhite.Z)
}
