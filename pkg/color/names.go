package color

import (
	"fmt"
	stdcolor "image/color"

	"golang.org/x/image/colornames"
)

// hexNames maps six digit hex values back to the first CSS name, in
// alphabetical order, that produces them.
var hexNames = func() map[string]string {
	names := make(map[string]string, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		hex := fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
		if _, exists := names[hex]; !exists {
			names[hex] = name
		}
	}
	return names
}()

func namedColor(name string) (stdcolor.RGBA, bool) {
	c, ok := colornames.Map[name]
	return c, ok
}

// ToName returns the CSS name whose value matches c exactly. A fully
// transparent color is named "transparent"; any other translucent color has
// no name.
func ToName(c Color) (string, bool) {
	if c.A == 0 {
		return "transparent", true
	}
	if c.A < 1 {
		return "", false
	}
	name, ok := hexNames[ToHex(c, false)]
	return name, ok
}
