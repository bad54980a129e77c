package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/colorspace"
)

func newNamedCmd() *cobra.Command {
	var (
		list   bool
		swatch string
	)

	cmd := &cobra.Command{
		Use:   "named [NAME]",
		Short: "Show a CSS named color in every space",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list || len(args) == 0 {
				for _, n := range colorspace.Names() {
					fmt.Fprintln(out, n)
				}
				return nil
			}

			name := strings.Join(args, " ")
			srgb, ok := colorspace.Named(name)
			if !ok {
				return fmt.Errorf("unknown color name %q", name)
			}
			showSwatch, err := swatchEnabled(swatch, out)
			if err != nil {
				return err
			}

			xyz := srgb.ToLinear().XYZ()
			fmt.Fprintf(out, "%s #%06X\n", name, srgb.Hex())
			for _, e := range spaces {
				fmt.Fprintln(out, formatComponents(e.space, FromXYZ(e.space, xyz)))
			}
			if showSwatch {
				fmt.Fprintln(out, Swatch(srgb.ToLinear(), 0))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "list all known names")
	cmd.Flags().StringVar(&swatch, "swatch", "auto", "print a color swatch: auto, always or never")
	return cmd
}

func newSpacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spaces",
		Short: "List supported color spaces",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, e := range spaces {
				fmt.Fprintf(out, "%-6s %s %s %s  %s\n", e.space,
					e.components[0], e.components[1], e.components[2], e.about)
			}
		},
	}
}
