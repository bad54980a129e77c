// Package colorspace converts colors between CIE XYZ, linear RGB, sRGB,
// Oklab and Oklch.
//
// # Overview
//
// colorspace is a Pure Go color conversion library for the GoGPU
// ecosystem. Every color is a small immutable value type with float32
// components; every conversion is a pure function. Nothing allocates and
// everything is safe for concurrent use.
//
// # Quick Start
//
//	import "github.com/gogpu/colorspace"
//
//	srgb := colorspace.Srgb{R: 0.5, G: 0.3, B: 0.8}
//	fmt.Printf("#%06X\n", srgb.Hex()) // #804DCC
//
//	// Gamma-encoded sRGB reaches the hub through linear RGB.
//	lab := colorspace.Convert[colorspace.Oklab](srgb.ToLinear())
//	lch := colorspace.OklchFromOklab(lab)
//	fmt.Println(lch.L, lch.C, lch.H.Degrees())
//
// # Conversion Graph
//
// CIE XYZ (D65, 2° observer) is the hub. Spaces connected directly to the
// hub implement [Color] and convert to each other with [Convert]:
//
//	Xyz ⇄ LinearRgb        3x3 matrix and its inverse
//	Xyz ⇄ Oklab            3x3, signed cube root, 3x3
//
// Variant spaces hang off a base space and have explicit conversions:
//
//	LinearRgb ⇄ Srgb       piecewise sRGB transfer curve
//	Oklab ⇄ Oklch          hypot/atan2 and cos/sin
//
// # Ranges and Errors
//
// No function returns an error. Out-of-gamut inputs convert to
// mathematically well-defined values outside the nominal ranges; use the
// InBounds method of each type to test plausibility. NaN and Inf
// propagate through the arithmetic.
//
// # Hue
//
// [Hue] stores degrees in (-180, 180] so congruent angles compare equal.
// [Hue.Degrees] reports the conventional [0, 360) form.
//
// # Hex
//
// [Srgb] and [LinearRgb] implement [Hexer]; [Hex] packs three channels
// into 0xRRGGBB, rounding half away from zero.
package colorspace

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
