package interpolation

import (
	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
	tweenerrors "github.com/alexisbeaulieu97/tweenkit/pkg/errors"
)

type colorInterpolation struct {
	model color.MixModel
}

// ColorInterpolation blends colors in model. Endpoints may be color.Color,
// *color.Color or color strings; results are color.Color. Difference is the
// mix-space distance of color.Distance, so it is never negative.
//
// A missing endpoint, or two identical ones, yields the endpoint unchanged.
//
// Both methods panic with an *errors.InvalidColorError when an endpoint is
// not a color.
func ColorInterpolation(model color.MixModel) Interpolation {
	return colorInterpolation{model: model}
}

func (c colorInterpolation) Interpolate(from, to any) func(float64) any {
	if constant, ok := oneSided(from, to); ok {
		return constant
	}
	a, b := colorEndpoints(from, to)
	if a == b {
		return func(float64) any { return a }
	}
	return func(progress float64) any {
		return color.Mix(a, b, progress, false, c.model)
	}
}

func (c colorInterpolation) Difference(from, to any) float64 {
	if isUndefined(from) || isUndefined(to) {
		return 0
	}
	a, b := colorEndpoints(from, to)
	return color.Distance(a, b, c.model)
}

func colorEndpoints(from, to any) (color.Color, color.Color) {
	from, to = HandleUndefined(from, to)
	a, ok := asColor(from)
	if !ok {
		panic(tweenerrors.NewInvalidColorError("from", from))
	}
	b, ok := asColor(to)
	if !ok {
		panic(tweenerrors.NewInvalidColorError("to", to))
	}
	return a, b
}

func asColor(v any) (color.Color, bool) {
	switch c := v.(type) {
	case color.Color:
		return c, true
	case *color.Color:
		if c != nil {
			return *c, true
		}
	case string:
		parsed := color.New(c)
		return parsed, parsed.Valid
	}
	return color.Color{}, false
}
