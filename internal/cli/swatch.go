package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/colorspace"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// Swatch returns a solid truecolor block showing the linear color c.
// Out-of-gamut channels are clamped.
func Swatch(c colorspace.LinearRgb, width int) string {
	if width <= 0 {
		width = swatchWidth
	}
	r, g, b := c.Srgb8()
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// swatchEnabled resolves the --swatch flag: "always", "never" or "auto".
func swatchEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		return isTerminal(w), nil
	default:
		return false, fmt.Errorf("invalid --swatch value %q (want auto, always or never)", mode)
	}
}
