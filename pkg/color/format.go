package color

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// ToHex renders c as six hex digits without a leading '#'. With allow3 the
// three digit shorthand is used when every channel repeats its nibble.
func ToHex(c Color, allow3 bool) string {
	hex := [3]string{hexPair(c.R), hexPair(c.G), hexPair(c.B)}
	if allow3 && hex[0][0] == hex[0][1] && hex[1][0] == hex[1][1] && hex[2][0] == hex[2][1] {
		return hex[0][:1] + hex[1][:1] + hex[2][:1]
	}
	return hex[0] + hex[1] + hex[2]
}

// ToHexString is ToHex with a leading '#'.
func ToHexString(c Color, allow3 bool) string {
	return "#" + ToHex(c, allow3)
}

// ToHex8String renders c as #rrggbbaa.
func ToHex8String(c Color) string {
	return "#" + ToHex(c, false) + hexPair(c.A*255)
}

func hexPair(v float64) string {
	return fmt.Sprintf("%02x", int(math.Round(v)))
}

// ToRgb returns the channels of c with r, g and b rounded to integers.
func ToRgb(c Color) RGBA {
	return RGBA{R: math.Round(c.R), G: math.Round(c.G), B: math.Round(c.B), A: c.A}
}

// ToRgbString renders c as rgb(r, g, b), or rgba(r, g, b, a) when translucent.
func ToRgbString(c Color) string {
	r, g, b := int(math.Round(c.R)), int(math.Round(c.G)), int(math.Round(c.B))
	if c.A == 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(c.RoundA))
}

// ToHsl returns the HSL channels of c.
func ToHsl(c Color) HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L, A: c.A}
}

// ToHslString renders c as hsl(h, s%, l%) or hsla(h, s%, l%, a).
func ToHslString(c Color) string {
	return polarString("hsl", c.H, c.S, c.L, c)
}

// ToHsv returns the HSV channels of c.
func ToHsv(c Color) HSVA {
	h, s, v := rgbToHsv(c.R, c.G, c.B)
	return HSVA{H: h, S: s, V: v, A: c.A}
}

// ToHsvString renders c as hsv(h, s%, v%) or hsva(h, s%, v%, a).
func ToHsvString(c Color) string {
	hsv := ToHsv(c)
	return polarString("hsv", hsv.H, hsv.S, hsv.V, c)
}

// ToHusl returns c in HSLuv space: H in degrees, S and L in [0,1].
func ToHusl(c Color) HSLA {
	h, s, l := colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.HSLuv()
	return HSLA{H: h, S: s, L: l, A: c.A}
}

// FromHusl builds a Color from HSLuv channels.
func FromHusl(h, s, l, a float64) Color {
	col := colorful.HSLuv(normalizeHue(h), clamp01(s), clamp01(l)).Clamped()
	return buildRGB(col.R*255, col.G*255, col.B*255, a, FormatRGB)
}

func polarString(prefix string, h, s, x float64, c Color) string {
	hi := int(math.Round(h))
	si := int(math.Round(s * 100))
	xi := int(math.Round(x * 100))
	if c.A == 1 {
		return fmt.Sprintf("%s(%d, %d%%, %d%%)", prefix, hi, si, xi)
	}
	return fmt.Sprintf("%sa(%d, %d%%, %d%%, %s)", prefix, hi, si, xi, formatAlpha(c.RoundA))
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
