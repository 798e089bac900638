package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const snapEpsilon = 0.000001

// bound01 maps n from [0,max] onto [0,1]. Values within snapEpsilon of max
// become exactly 1. Non-finite and out of range values become 0.
func bound01(n, max float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	if math.Abs(n-max) < snapEpsilon {
		return 1
	}
	if n < 0 || n > max {
		return 0
	}
	return math.Mod(n, max) / max
}

// boundHue keeps a hue in [0,360).
func boundHue(h float64) float64 {
	h = bound01(h, 360) * 360
	if h >= 360 {
		return 0
	}
	return h
}

func boundAlpha(a float64) float64 {
	if math.IsNaN(a) || a < 0 || a > 1 {
		return 1
	}
	return a
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// normalizeHue wraps any angle into [0,360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// rgbToHsl takes channels in [0,255] and returns h in degrees, s and l in [0,1].
func rgbToHsl(r, g, b float64) (h, s, l float64) {
	h, s, l = colorful.Color{R: r / 255, G: g / 255, B: b / 255}.Hsl()
	return wrapHue(h), s, l
}

// hslToRgb takes h in degrees, s and l in [0,1] and returns channels in [0,255].
func hslToRgb(h, s, l float64) (r, g, b float64) {
	return scale255(colorful.Hsl(h, s, l))
}

// rgbToHsv takes channels in [0,255] and returns h in degrees, s and v in [0,1].
func rgbToHsv(r, g, b float64) (h, s, v float64) {
	h, s, v = colorful.Color{R: r / 255, G: g / 255, B: b / 255}.Hsv()
	return wrapHue(h), s, v
}

// hsvToRgb takes h in [0,360), s and v in [0,1] and returns channels in [0,255].
func hsvToRgb(h, s, v float64) (r, g, b float64) {
	return scale255(colorful.Hsv(h, s, v))
}

func scale255(c colorful.Color) (r, g, b float64) {
	c = c.Clamped()
	return c.R * 255, c.G * 255, c.B * 255
}

// wrapHue folds the 360 a rounding negative hue can land on back to 0.
func wrapHue(h float64) float64 {
	if h >= 360 {
		return h - 360
	}
	return h
}
