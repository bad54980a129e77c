// Package transfer implements the sRGB transfer function pair.
//
// The thresholds are the breakpoints from IEC 61966-2-1. Both branches
// meet at the threshold to within float32 precision, so the curve has no
// visible discontinuity.
package transfer

import "math"

const (
	// LinearizeThreshold is the encoded value below which the curve is linear.
	LinearizeThreshold = 0.04045

	// DelinearizeThreshold is the linear value below which the curve is linear.
	DelinearizeThreshold = 0.0031308

	linearSlope = 12.92
	gamma       = 2.4
	offset      = 0.055
	scale       = 1.055
)

// Linearize converts a gamma-encoded sRGB component to linear light (EOTF).
// Formula: if n <= 0.04045: n/12.92; else: pow((n+0.055)/1.055, 2.4)
func Linearize(n float32) float32 {
	if n <= LinearizeThreshold {
		return n / linearSlope
	}
	return float32(math.Pow(float64((n+offset)/scale), gamma))
}

// Delinearize converts a linear component to gamma-encoded sRGB (OETF).
// Formula: if n <= 0.0031308: n*12.92; else: 1.055*pow(n, 1/2.4)-0.055
func Delinearize(n float32) float32 {
	if n <= DelinearizeThreshold {
		return n * linearSlope
	}
	return scale*float32(math.Pow(float64(n), 1.0/gamma)) - offset
}
