package colorspace

import (
	"math"

	"github.com/gogpu/colorspace/internal/mat3"
)

// Oklab is a color in Björn Ottosson's perceptual Oklab color space.
//
// See https://bottosson.github.io/posts/oklab/.
type Oklab struct {
	// L is the lightness. 0 is black, 1 is the brightest white.
	L float32
	// A is green vs red. -1 is green, 1 is red.
	A float32
	// B is blue vs yellow. -1 is blue, 1 is yellow.
	B float32
}

// Reference colors in Oklab.
var (
	OklabBlack = Oklab{L: 0, A: 0, B: 0}
	OklabWhite = Oklab{L: 1, A: 0, B: 0}
)

// xyzToLMS (M1) maps XYZ to an approximate cone response.
var xyzToLMS = mat3.Mat3{
	{0.8189330101, 0.3618667424, -0.1288597137},
	{0.0329845436, 0.9293118715, 0.0361456387},
	{0.0482003018, 0.2643662691, 0.6338517070},
}

// lmsToXYZ is the inverse of xyzToLMS.
var lmsToXYZ = mat3.Mat3{
	{1.2270138511, -0.5577999807, 0.2812561490},
	{-0.0405801784, 1.1122568696, -0.0716766787},
	{-0.0763812845, -0.4214819784, 1.5861632204},
}

// lmsToLab (M2) maps the nonlinear cone response to Lab.
var lmsToLab = mat3.Mat3{
	{0.2104542553, 0.7936177850, -0.0040720468},
	{1.9779984951, -2.4285922050, 0.4505937099},
	{0.0259040371, 0.7827717662, -0.8086757660},
}

// labToLMS is the inverse of lmsToLab.
var labToLMS = mat3.Mat3{
	{0.9999999985, 0.3963377922, 0.2158037581},
	{1.0000000089, -0.1055613423, -0.0638541748},
	{1.0000000547, -0.0894841821, -1.2914855379},
}

// OklabFromXYZ converts an XYZ color to Oklab.
func OklabFromXYZ(xyz Xyz) Oklab {
	lms := xyzToLMS.Apply(mat3.Vec3{xyz.X, xyz.Y, xyz.Z})
	for i, v := range lms {
		lms[i] = cbrt(v)
	}
	lab := lmsToLab.Apply(lms)
	return Oklab{L: lab[0], A: lab[1], B: lab[2]}
}

// XYZ converts c to the XYZ hub.
func (c Oklab) XYZ() Xyz {
	lms := labToLMS.Apply(mat3.Vec3{c.L, c.A, c.B})
	for i, v := range lms {
		lms[i] = v * v * v
	}
	xyz := lmsToXYZ.Apply(lms)
	return Xyz{X: xyz[0], Y: xyz[1], Z: xyz[2]}
}

// FromXYZ converts xyz to Oklab. The receiver is ignored; the method exists
// so Oklab satisfies [Space].
func (Oklab) FromXYZ(xyz Xyz) Oklab {
	return OklabFromXYZ(xyz)
}

// InBounds reports whether L is within [0, 1] and A, B within [-1, 1].
func (c Oklab) InBounds() bool {
	return approxInRange(c.L, 0, 1) &&
		approxInRange(c.A, -1, 1) &&
		approxInRange(c.B, -1, 1)
}

// cbrt is the real (signed) cube root.
func cbrt(v float32) float32 {
	return float32(math.Cbrt(float64(v)))
}
