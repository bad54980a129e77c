package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/colorspace"
)

func newConvertCmd() *cobra.Command {
	var (
		from   string
		to     []string
		swatch string
	)

	cmd := &cobra.Command{
		Use:   "convert [flags] C0 C1 C2 | #RRGGBB",
		Short: "Convert one color between spaces",
		Long: `Convert one color given as three components in the --from space into one or
more --to spaces. An sRGB color may also be given as a #RRGGBB hex value.

Examples:
  okcolor convert --from linear --to oklab 0.4 0.2 0.6
  okcolor convert --from srgb --to oklch,xyz '#6495ED'`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := ParseSpace(from)
			if err != nil {
				return err
			}
			targets := make([]Space, 0, len(to))
			for _, name := range to {
				s, err := ParseSpace(name)
				if err != nil {
					return err
				}
				targets = append(targets, s)
			}
			showSwatch, err := swatchEnabled(swatch, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			comps, err := parseComponents(src, args)
			if err != nil {
				return err
			}
			xyz := ToXYZ(src, comps)
			colorspace.Logger().Debug("okcolor: converted to hub", "from", src, "xyz", xyz)

			out := cmd.OutOrStdout()
			for _, s := range targets {
				fmt.Fprintln(out, formatComponents(s, FromXYZ(s, xyz)))
			}
			display := displaySrgb(xyz)
			fmt.Fprintf(out, "hex    #%06X\n", display.Hex())
			if showSwatch {
				fmt.Fprintln(out, Swatch(colorspace.Convert[colorspace.LinearRgb](xyz), 0))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", string(SpaceSRGB), "source color space")
	cmd.Flags().StringSliceVarP(&to, "to", "t", []string{string(SpaceOklch)}, "target color spaces (comma separated)")
	cmd.Flags().StringVar(&swatch, "swatch", "auto", "print a color swatch: auto, always or never")
	return cmd
}

// parseComponents reads either three numbers or, for sRGB, one hex value.
func parseComponents(s Space, args []string) ([3]float32, error) {
	var c [3]float32
	if len(args) == 1 {
		if s != SpaceSRGB {
			return c, fmt.Errorf("hex input requires --from %s", SpaceSRGB)
		}
		hex, err := parseHex(args[0])
		if err != nil {
			return c, err
		}
		srgb := colorspace.SrgbFromHex(hex)
		return [3]float32{srgb.R, srgb.G, srgb.B}, nil
	}
	if len(args) != 3 {
		return c, fmt.Errorf("expected 3 components, got %d", len(args))
	}
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return c, fmt.Errorf("component %d: %w", i, err)
		}
		c[i] = float32(v)
	}
	return c, nil
}

// parseHex parses "#RRGGBB", "RRGGBB" or "0xRRGGBB".
func parseHex(s string) (uint32, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(h) != 6 {
		return 0, fmt.Errorf("invalid hex color %q: want 6 digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return uint32(v), nil
}
