package colorspace

import (
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Named returns the SVG 1.1 / CSS named color with the given name.
//
// The lookup is an exact match after Unicode case folding and removal of
// spaces, so "CornflowerBlue", "cornflowerblue" and "Cornflower Blue" all
// resolve to the same color. No other syntax is accepted.
func Named(name string) (Srgb, bool) {
	key := strings.ReplaceAll(cases.Fold().String(name), " ", "")
	c, ok := colornames.Map[key]
	if !ok {
		Logger().Debug("colorspace: unknown color name", "name", name)
		return Srgb{}, false
	}
	return SrgbFromColor(c), true
}

// Names returns the known color names in sorted order.
func Names() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}
