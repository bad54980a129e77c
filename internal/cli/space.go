package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/colorspace"
)

// ErrUnknownSpace is returned for a color space name okcolor does not know.
var ErrUnknownSpace = errors.New("unknown color space")

// Space names a color space on the command line.
type Space string

// Supported spaces.
const (
	SpaceXYZ    Space = "xyz"
	SpaceLinear Space = "linear"
	SpaceSRGB   Space = "srgb"
	SpaceOklab  Space = "oklab"
	SpaceOklch  Space = "oklch"
)

// spaces lists every Space with its component labels, in display order.
var spaces = []struct {
	space      Space
	components [3]string
	about      string
}{
	{SpaceXYZ, [3]string{"X", "Y", "Z"}, "CIE 1931 XYZ, D65 white point (the hub)"},
	{SpaceLinear, [3]string{"R", "G", "B"}, "linear-light RGB with sRGB primaries"},
	{SpaceSRGB, [3]string{"R", "G", "B"}, "gamma-encoded sRGB; accepts #RRGGBB input"},
	{SpaceOklab, [3]string{"L", "a", "b"}, "Oklab perceptual space"},
	{SpaceOklch, [3]string{"L", "C", "h"}, "polar Oklab; hue in degrees"},
}

// ParseSpace resolves a space name, ignoring case.
func ParseSpace(name string) (Space, error) {
	s := Space(strings.ToLower(strings.TrimSpace(name)))
	for _, e := range spaces {
		if e.space == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSpace, name)
}

// ToXYZ interprets c as components in space s and converts them to the hub.
func ToXYZ(s Space, c [3]float32) colorspace.Xyz {
	switch s {
	case SpaceLinear:
		return colorspace.LinearRgb{R: c[0], G: c[1], B: c[2]}.XYZ()
	case SpaceSRGB:
		return colorspace.Srgb{R: c[0], G: c[1], B: c[2]}.ToLinear().XYZ()
	case SpaceOklab:
		return colorspace.Oklab{L: c[0], A: c[1], B: c[2]}.XYZ()
	case SpaceOklch:
		lch := colorspace.Oklch{L: c[0], C: c[1], H: colorspace.HueFromDegrees(c[2])}
		return lch.ToOklab().XYZ()
	default:
		return colorspace.Xyz{X: c[0], Y: c[1], Z: c[2]}
	}
}

// FromXYZ converts xyz to space s and returns its components. Oklch hue is
// reported in [0, 360).
func FromXYZ(s Space, xyz colorspace.Xyz) [3]float32 {
	switch s {
	case SpaceLinear:
		c := colorspace.Convert[colorspace.LinearRgb](xyz)
		return [3]float32{c.R, c.G, c.B}
	case SpaceSRGB:
		c := colorspace.SrgbFromLinear(colorspace.Convert[colorspace.LinearRgb](xyz))
		return [3]float32{c.R, c.G, c.B}
	case SpaceOklab:
		c := colorspace.Convert[colorspace.Oklab](xyz)
		return [3]float32{c.L, c.A, c.B}
	case SpaceOklch:
		c := colorspace.OklchFromOklab(colorspace.Convert[colorspace.Oklab](xyz))
		return [3]float32{c.L, c.C, c.H.Degrees()}
	default:
		return [3]float32{xyz.X, xyz.Y, xyz.Z}
	}
}

// displaySrgb returns the sRGB form of xyz clamped to the displayable range.
func displaySrgb(xyz colorspace.Xyz) colorspace.Srgb {
	c := FromXYZ(SpaceSRGB, xyz)
	return colorspace.Srgb{R: clamp01(c[0]), G: clamp01(c[1]), B: clamp01(c[2])}
}

func clamp01(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	return min(v, 1)
}
