package colorspace

import (
	"cmp"
	"math"
)

// Hue is an angle on the color wheel.
//
// The angle is stored in the canonical range (-180, 180], so two hues built
// from congruent angles (10° and 370°) compare equal with ==. The zero
// value is 0°.
type Hue struct {
	unnormalized float32
}

// HueFromDegrees creates a Hue from an angle in degrees.
//
// Angles in (180, 540] are shifted down by one turn. Angles outside
// (-180, 540] are first reduced modulo 360, so every finite input ends up
// in the canonical range. NaN and ±Inf produce a NaN hue.
func HueFromDegrees(degrees float32) Hue {
	d := float64(degrees)
	if d > 540 || d <= -180 {
		d = math.Mod(d, 360)
		if d <= -180 {
			d += 360
		}
	}
	if d > 180 {
		d -= 360
	}
	if d == 0 {
		d = 0 // drop the sign of -0
	}
	return Hue{unnormalized: float32(d)}
}

// HueFromRadians creates a Hue from an angle in radians.
func HueFromRadians(radians float32) Hue {
	return HueFromDegrees(float32(float64(radians) * 180 / math.Pi))
}

// Degrees returns the hue in degrees, in [0, 360).
func (h Hue) Degrees() float32 {
	if h.unnormalized < 0 {
		d := h.unnormalized + 360
		// -1e-6 + 360 rounds to 360 in float32.
		if d >= 360 {
			return 0
		}
		return d
	}
	return h.unnormalized
}

// UnnormalizedDegrees returns the hue in degrees, in (-180, 180].
func (h Hue) UnnormalizedDegrees() float32 {
	return h.unnormalized
}

// Radians returns the hue in radians, in (-π, π].
func (h Hue) Radians() float32 {
	return float32(float64(h.unnormalized) * math.Pi / 180)
}

// Compare orders hues by their canonical angle. It returns -1, 0 or +1.
// NaN hues order before all others and compare equal to each other.
func (h Hue) Compare(other Hue) int {
	return cmp.Compare(h.unnormalized, other.unnormalized)
}

// Less reports whether h orders before other, using the same order as
// Compare. A NaN hue orders before every other hue.
func (h Hue) Less(other Hue) bool {
	return h.Compare(other) < 0
}
