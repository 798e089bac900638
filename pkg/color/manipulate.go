package color

import (
	"math"
	"math/rand/v2"
)

// Brighten shifts every RGB channel up by amount percent of the full range.
func Brighten(c Color, amount float64) Color {
	shift := math.Round(255 * (amount / 100))
	channel := func(v float64) float64 {
		return math.Max(0, math.Min(255, math.Round(v)+shift))
	}
	return buildRGB(channel(c.R), channel(c.G), channel(c.B), c.A, FormatRGB)
}

// Lighten raises lightness by amount percentage points.
func Lighten(c Color, amount float64) Color {
	return FromHSLA(c.H, c.S, clamp01(c.L+amount/100), c.A)
}

// Darken lowers lightness by amount percentage points.
func Darken(c Color, amount float64) Color {
	return FromHSLA(c.H, c.S, clamp01(c.L-amount/100), c.A)
}

// Saturate raises saturation by amount percentage points.
func Saturate(c Color, amount float64) Color {
	return FromHSLA(c.H, clamp01(c.S+amount/100), c.L, c.A)
}

// Desaturate lowers saturation by amount percentage points.
func Desaturate(c Color, amount float64) Color {
	return FromHSLA(c.H, clamp01(c.S-amount/100), c.L, c.A)
}

// Grayscale removes all saturation.
func Grayscale(c Color) Color {
	return Desaturate(c, 100)
}

// HueRotate adds angle degrees to the hue. Results above 360 wrap once;
// negative results are not normalized and fall back to a hue of 0.
func HueRotate(c Color, angle float64) Color {
	h := c.H + angle
	if h > 360 {
		h -= 360
	}
	return FromHSLA(h, c.S, c.L, c.A)
}

// Alpha replaces the alpha channel.
func Alpha(c Color, a float64) Color {
	out := c
	out.A = boundAlpha(a)
	out.RoundA = math.Round(out.A*100) / 100
	if out.A != c.A {
		out.InitialValue = ""
	}
	return out
}

// Transparent returns c with alpha 0.
func Transparent(c Color) Color {
	return Alpha(c, 0)
}

// MultiplyAlpha scales the alpha channel by factor.
func MultiplyAlpha(c Color, factor float64) Color {
	return Alpha(c, c.A*factor)
}

// Invert flips every RGB channel, keeping alpha.
func Invert(c Color) Color {
	return buildRGB(255-c.R, 255-c.G, 255-c.B, c.A, FormatRGB)
}

// Gray returns a neutral color at amount of full brightness.
func Gray(amount, alpha float64) Color {
	v := math.Floor(clamp01(amount) * 255)
	return buildRGB(v, v, v, alpha, FormatRGB)
}

// Random returns a color with uniformly random channels and the given alpha.
func Random(alpha float64) Color {
	return buildRGB(rand.Float64()*255, rand.Float64()*255, rand.Float64()*255, alpha, FormatRGB)
}
