package color

import (
	"fmt"
	"math"
	"strings"

	tweenerrors "github.com/alexisbeaulieu97/tweenkit/pkg/errors"
)

// MixModel is the color space two colors are blended in.
type MixModel string

const (
	ModelRGB  MixModel = "rgb"
	ModelRGBA MixModel = "rgba"
	ModelHSL  MixModel = "hsl"
	ModelHSLA MixModel = "hsla"
	ModelHUSL MixModel = "husl"
)

// MixModels lists every supported model.
var MixModels = []MixModel{ModelRGB, ModelRGBA, ModelHSL, ModelHSLA, ModelHUSL}

// ParseMixModel resolves a model name case-insensitively.
func ParseMixModel(name string) (MixModel, error) {
	model := MixModel(strings.ToLower(strings.TrimSpace(name)))
	for _, m := range MixModels {
		if m == model {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mix model %q", name)
}

func (m MixModel) polar() bool {
	return m == ModelHSL || m == ModelHSLA || m == ModelHUSL
}

// achromatic is the saturation below which a hue carries no information.
// HSLuv conversions of neutral colors leave a little numeric noise, so the
// threshold is not exactly zero.
const achromatic = 1e-4

// mixPoint holds the four channels of a color in a mix space. For polar
// models the order is h, s, l, a; otherwise r, g, b, a.
type mixPoint [4]float64

// mixEndpoints converts a and b into the coordinates of model. For polar
// models an achromatic endpoint borrows the other's hue and the hue of b is
// shifted so that a straight line between the endpoints follows the shorter
// arc.
func mixEndpoints(a, b Color, model MixModel) (from, to mixPoint) {
	if !model.polar() {
		return mixPoint{a.R, a.G, a.B, a.A}, mixPoint{b.R, b.G, b.B, b.A}
	}

	var fa, fb HSLA
	if model == ModelHUSL {
		fa, fb = ToHusl(a), ToHusl(b)
	} else {
		fa, fb = ToHsl(a), ToHsl(b)
	}

	if fa.S < achromatic {
		fa.H = fb.H
	} else if fb.S < achromatic {
		fb.H = fa.H
	}

	delta := fb.H - fa.H
	if delta > 180 {
		fb.H -= 360
	} else if delta < -180 {
		fb.H += 360
	}

	return mixPoint{fa.H, fa.S, fa.L, fa.A}, mixPoint{fb.H, fb.S, fb.L, fb.A}
}

// Mix blends a towards b by fraction in the given model. With limit each
// channel is clamped between its two source values.
func Mix(a, b Color, fraction float64, limit bool, model MixModel) Color {
	from, to := mixEndpoints(a, b, model)

	var out mixPoint
	for i := range out {
		out[i] = lerp(from[i], to[i], fraction, limit)
	}

	alpha := clamp01(out[3])
	switch model {
	case ModelHUSL:
		return FromHusl(out[0], out[1], out[2], alpha)
	case ModelHSL, ModelHSLA:
		return FromHSLA(normalizeHue(out[0]), clamp01(out[1]), clamp01(out[2]), alpha)
	default:
		return FromRGBA(clampChannel(out[0]), clampChannel(out[1]), clampChannel(out[2]), alpha)
	}
}

// Mixer returns a function that blends a towards b for any fraction.
func Mixer(a, b Color, model MixModel) func(fraction float64) Color {
	return func(fraction float64) Color {
		return Mix(a, b, fraction, false, model)
	}
}

// Interpolate is Mix for callers holding untyped values. Both arguments must
// be a Color or *Color; anything else yields an InvalidColorError.
func Interpolate(a, b any, fraction float64, limit bool, model MixModel) (Color, error) {
	from, ok := asColor(a)
	if !ok {
		return Color{}, tweenerrors.NewInvalidColorError("a", a)
	}
	to, ok := asColor(b)
	if !ok {
		return Color{}, tweenerrors.NewInvalidColorError("b", b)
	}
	return Mix(from, to, fraction, limit, model), nil
}

// Distance measures a and b along the path Mix takes in model, with every
// channel scaled to [0,1]. The distance from a to Mix(a, b, t) is t times
// Distance(a, b).
func Distance(a, b Color, model MixModel) float64 {
	from, to := mixEndpoints(a, b, model)

	scale := mixPoint{1.0 / 255, 1.0 / 255, 1.0 / 255, 1}
	if model.polar() {
		scale = mixPoint{1.0 / 360, 1, 1, 1}
	}

	var sum float64
	for i := range from {
		d := (to[i] - from[i]) * scale[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func asColor(v any) (Color, bool) {
	switch c := v.(type) {
	case Color:
		return c, true
	case *Color:
		if c != nil {
			return *c, true
		}
	}
	return Color{}, false
}

func lerp(from, to, fraction float64, limit bool) float64 {
	v := from + (to-from)*fraction
	if limit {
		lo, hi := math.Min(from, to), math.Max(from, to)
		v = math.Max(lo, math.Min(hi, v))
	}
	return v
}

func clampChannel(v float64) float64 {
	return math.Max(0, math.Min(255, v))
}
