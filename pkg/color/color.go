// Package color implements a unified color value that carries RGB and HSL
// channels side by side, together with parsing, formatting, manipulation,
// mixing and distance metrics.
//
// Colors are plain values. Every operation returns a new Color and leaves its
// input untouched.
package color

import (
	stdcolor "image/color"
	"math"
	"strings"
)

// Format records the notation a Color was originally expressed in.
type Format string

const (
	FormatRGB  Format = "rgb"
	FormatHSL  Format = "hsl"
	FormatHSV  Format = "hsv"
	FormatHex  Format = "hex"
	FormatName Format = "name"
)

// Color is a color value with consistent RGB and HSL channels.
type Color struct {
	// R, G and B are in [0,255] and are not rounded.
	R, G, B float64
	// H is in [0,360), S and L are in [0,1].
	H, S, L float64
	// A is the alpha channel in [0,1].
	A float64
	// RoundA is A rounded to two decimals.
	RoundA float64
	Format Format
	// InitialValue holds the source string for hex and named inputs.
	InitialValue string
	// Valid is false when the input could not be interpreted; the channels
	// are then those of black.
	Valid bool
}

// RGB is an opaque color expressed with channels in [0,255].
type RGB struct{ R, G, B float64 }

// RGBA is an RGB color with an alpha channel in [0,1].
type RGBA struct{ R, G, B, A float64 }

// HSL is an opaque color with H in degrees and S, L in [0,1].
type HSL struct{ H, S, L float64 }

// HSLA is an HSL color with an alpha channel in [0,1].
type HSLA struct{ H, S, L, A float64 }

// HSV is an opaque color with H in degrees and S, V in [0,1].
type HSV struct{ H, S, V float64 }

// HSVA is an HSV color with an alpha channel in [0,1].
type HSVA struct{ H, S, V, A float64 }

// New builds a Color from input. Supported inputs are color strings, the
// channel structs of this package, maps with r/g/b(/a) or h/s/l(/a) keys,
// image/color values and existing Colors. A number followed by at least two
// channels is read as explicit r, g, b and an optional alpha.
//
// New never fails: anything it cannot interpret yields black with Valid set
// to false.
func New(input any, channels ...float64) Color {
	switch v := input.(type) {
	case string:
		return fromString(v)
	case Color:
		return v
	case *Color:
		if v != nil {
			return *v
		}
	case RGB:
		return buildRGB(v.R, v.G, v.B, 1, FormatRGB)
	case RGBA:
		return buildRGB(v.R, v.G, v.B, v.A, FormatRGB)
	case HSL:
		return buildHSL(v.H, v.S, v.L, 1, FormatHSL)
	case HSLA:
		return buildHSL(v.H, v.S, v.L, v.A, FormatHSL)
	case HSV:
		return buildHSV(v.H, v.S, v.V, 1)
	case HSVA:
		return buildHSV(v.H, v.S, v.V, v.A)
	case map[string]any:
		return fromMap(v)
	case stdcolor.Color:
		n := stdcolor.NRGBAModel.Convert(v).(stdcolor.NRGBA)
		return buildRGB(float64(n.R), float64(n.G), float64(n.B), float64(n.A)/255, FormatRGB)
	}

	if r, ok := toFloat(input); ok && len(channels) >= 2 {
		a := 1.0
		if len(channels) >= 3 {
			a = channels[2]
		}
		return buildRGB(r, channels[0], channels[1], a, FormatRGB)
	}

	return invalid()
}

// FromRGBA builds a Color from explicit channels.
func FromRGBA(r, g, b, a float64) Color {
	return buildRGB(r, g, b, a, FormatRGB)
}

// FromHSLA builds a Color from explicit HSL channels, keeping them as given.
func FromHSLA(h, s, l, a float64) Color {
	return buildHSL(h, s, l, a, FormatHSL)
}

// String renders the color as an rgb() or rgba() string.
func (c Color) String() string {
	return ToRgbString(c)
}

// RGBA implements image/color.Color with alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	scale := func(v float64) uint32 {
		return uint32(math.Round(v * 0xffff))
	}
	return scale(c.R / 255 * c.A), scale(c.G / 255 * c.A), scale(c.B / 255 * c.A), scale(c.A)
}

func fromString(input string) Color {
	if input == "" {
		return invalid()
	}
	if cached, ok := DefaultCache.Get(input); ok {
		return cached
	}

	parsed, ok := parseString(input)
	if !ok {
		return invalid()
	}
	DefaultCache.Set(input, parsed)
	return parsed
}

func fromMap(m map[string]any) Color {
	get := func(key string) (float64, bool) {
		for k, v := range m {
			if strings.EqualFold(k, key) {
				f, ok := toFloat(v)
				if !ok {
					return math.NaN(), true
				}
				return f, true
			}
		}
		return 0, false
	}

	a, ok := get("a")
	if !ok {
		a = 1
	}

	r, hasR := get("r")
	g, hasG := get("g")
	b, hasB := get("b")
	if hasR && hasG && hasB {
		return buildRGB(r, g, b, a, FormatRGB)
	}

	h, hasH := get("h")
	s, hasS := get("s")
	l, hasL := get("l")
	if hasH && hasS && hasL {
		return buildHSL(h, s, l, a, FormatHSL)
	}

	return invalid()
}

func invalid() Color {
	black := fromString("black")
	black.Valid = false
	return black
}

func buildRGB(r, g, b, a float64, format Format) Color {
	r = bound01(r, 255) * 255
	g = bound01(g, 255) * 255
	b = bound01(b, 255) * 255
	h, s, l := rgbToHsl(r, g, b)
	return assemble(r, g, b, h, s, l, a, format)
}

func buildHSL(h, s, l, a float64, format Format) Color {
	h = boundHue(h)
	s = bound01(s, 1)
	l = bound01(l, 1)
	r, g, b := hslToRgb(h, s, l)
	return assemble(r, g, b, h, s, l, a, format)
}

func buildHSV(h, s, v, a float64) Color {
	r, g, b := hsvToRgb(boundHue(h), bound01(s, 1), bound01(v, 1))
	return buildRGB(r, g, b, a, FormatHSV)
}

func assemble(r, g, b, h, s, l, a float64, format Format) Color {
	a = boundAlpha(a)
	return Color{
		R: r, G: g, B: b,
		H: h, S: s, L: l,
		A:      a,
		RoundA: math.Round(a*100) / 100,
		Format: format,
		Valid:  true,
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
