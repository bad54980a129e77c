package colorspace

import "math"

// Oklch is the polar form of [Oklab]: lightness, chroma and hue.
//
// Oklch is not a [Color]: it reaches the XYZ hub only through Oklab.
// At zero chroma the hue carries no information and does not survive a
// round trip.
type Oklch struct {
	// L is the lightness. 0 is black, 1 is the brightest white.
	L float32
	// C is the chroma, similar to (but not the same as) saturation.
	// 0 is colorless, 1 is the most vivid color.
	C float32
	// H is the hue.
	H Hue
}

// Reference colors in Oklch.
var (
	OklchBlack = Oklch{L: 0, C: 0, H: Hue{}}
	OklchWhite = Oklch{L: 1, C: 0, H: Hue{}}
)

// OklchFromOklab converts a Cartesian Oklab color to polar form.
// The hue comes from atan2, which already lies in (-180°, 180°].
func OklchFromOklab(c Oklab) Oklch {
	a, b := float64(c.A), float64(c.B)
	return Oklch{
		L: c.L,
		C: float32(math.Hypot(a, b)),
		H: HueFromDegrees(float32(math.Atan2(b, a) * 180 / math.Pi)),
	}
}

// ToOklab converts c back to Cartesian form. The signed hue angle is used
// so angles near 0° need no wraparound.
func (c Oklch) ToOklab() Oklab {
	h := float64(c.H.UnnormalizedDegrees()) * math.Pi / 180
	chroma := float64(c.C)
	return Oklab{
		L: c.L,
		A: float32(chroma * math.Cos(h)),
		B: float32(chroma * math.Sin(h)),
	}
}

// InBounds reports whether L and C are within [0, 1].
func (c Oklch) InBounds() bool {
	return approxInRange(c.L, 0, 1) && approxInRange(c.C, 0, 1)
}
