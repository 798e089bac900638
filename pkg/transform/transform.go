// Package transform maps values from an input range onto an output range
// through interpolation strategies.
package transform

import (
	"math"

	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
	"github.com/alexisbeaulieu97/tweenkit/pkg/interpolation"
)

// Func maps an input value to an output value.
type Func func(input any) any

// Options configures a transform. The zero value uses interpolation.Default on
// both sides and does not clamp.
type Options struct {
	// InputInterpolation measures where an input sits within the input range.
	InputInterpolation interpolation.Interpolation
	// OutputInterpolation produces the output for that position.
	OutputInterpolation interpolation.Interpolation
	// Limit clamps the position to [0,1] so outputs stay inside the output
	// range.
	Limit bool
	// ColorModel, when set, gives each side left unset a dispatcher blending
	// colors in this model.
	ColorModel color.MixModel
}

func (o Options) strategies() (input, output interpolation.Interpolation) {
	input, output = o.InputInterpolation, o.OutputInterpolation

	var fallback interpolation.Interpolation = interpolation.Default
	if o.ColorModel != "" {
		fallback = interpolation.NewDynamic(interpolation.WithColorModel(o.ColorModel))
	}
	if input == nil {
		input = fallback
	}
	if output == nil {
		output = fallback
	}
	return input, output
}

// New builds a function mapping inputs between from[0] and from[1] onto
// to[0]..to[1].
//
// The input range is measured once. When it has zero length every input maps
// to to[0].
func New(from, to [2]any, opts Options) Func {
	input, output := opts.strategies()

	total := input.Difference(from[0], from[1])
	if total == 0 {
		return func(any) any {
			return to[0]
		}
	}

	interp := output.Interpolate(to[0], to[1])
	return func(x any) any {
		progress := input.Difference(from[0], x) / total
		if opts.Limit {
			progress = clamp01(progress)
		}
		return interp(progress)
	}
}

// Value maps a single input. Callers mapping many inputs over the same ranges
// should keep the Func returned by New instead.
func Value(input any, from, to [2]any, opts Options) any {
	return New(from, to, opts)(input)
}

// Modulate maps value from one numeric range onto another without going
// through the interpolation machinery.
func Modulate(value float64, from, to [2]float64, limit bool) float64 {
	span := from[1] - from[0]
	if span == 0 {
		return to[0]
	}

	progress := (value - from[0]) / span
	if limit {
		progress = clamp01(progress)
	}
	return to[0] + (to[1]-to[0])*progress
}

// Frames samples fn at n inputs spread evenly from from to to, endpoints
// included. Inputs are produced by interpolation.Default.
func Frames(fn Func, from, to any, n int) []any {
	if fn == nil || n <= 0 {
		return nil
	}
	if n == 1 {
		return []any{fn(from)}
	}

	inputs := interpolation.Default.Interpolate(from, to)
	frames := make([]any, n)
	for i := range frames {
		frames[i] = fn(inputs(float64(i) / float64(n-1)))
	}
	return frames
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Max(0, math.Min(1, v))
}
