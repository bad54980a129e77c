// Command okcolor converts colors between XYZ, linear RGB, sRGB, Oklab and
// Oklch from the command line.
package main

import (
	"os"

	"github.com/gogpu/colorspace/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
