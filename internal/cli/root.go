// Package cli provides the command-line interface for okcolor.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/colorspace"
)

// NewRootCmd builds the okcolor command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "okcolor",
		Short: "Convert colors between XYZ, linear RGB, sRGB, Oklab and Oklch",
		Long: `okcolor converts colors between CIE XYZ, linear RGB, gamma-encoded sRGB,
Oklab and Oklch. Every conversion goes through XYZ.`,
		Version:      colorspace.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				colorspace.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newNamedCmd())
	root.AddCommand(newSpacesCmd())
	return root
}

// formatComponents prints three components with their labels.
func formatComponents(s Space, c [3]float32) string {
	labels := labelsFor(s)
	return fmt.Sprintf("%-6s %s=%.6f %s=%.6f %s=%.6f", s, labels[0], c[0], labels[1], c[1], labels[2], c[2])
}

func labelsFor(s Space) [3]string {
	for _, e := range spaces {
		if e.space == s {
			return e.components
		}
	}
	return [3]string{"0", "1", "2"}
}
