package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
	"github.com/alexisbeaulieu97/tweenkit/pkg/interpolation"
)

func TestNewDegenerateRange(t *testing.T) {
	t.Parallel()

	fn := New([2]any{5, 5}, [2]any{1, 2}, Options{})

	for _, input := range []any{0, 5, 100, -3.5, "anything", nil} {
		assert.Equal(t, 1, fn(input))
	}
}

func TestNewNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		from  [2]any
		to    [2]any
		opts  Options
		input any
		want  float64
	}{
		{name: "midpoint", from: [2]any{0, 100}, to: [2]any{0, 1}, input: 50, want: 0.5},
		{name: "extrapolates", from: [2]any{0, 100}, to: [2]any{0, 1}, input: 150, want: 1.5},
		{name: "limited above", from: [2]any{0, 100}, to: [2]any{0, 1}, opts: Options{Limit: true}, input: 150, want: 1},
		{name: "limited below", from: [2]any{0, 100}, to: [2]any{10, 20}, opts: Options{Limit: true}, input: -40, want: 10},
		{name: "reversed input", from: [2]any{100, 0}, to: [2]any{0, 10}, input: 25, want: 7.5},
		{name: "reversed output", from: [2]any{0, 1}, to: [2]any{360, 0}, input: 0.25, want: 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := New(tt.from, tt.to, tt.opts)(tt.input)
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestNewColorOutput(t *testing.T) {
	t.Parallel()

	fn := New([2]any{0, 1}, [2]any{"red", "blue"}, Options{ColorModel: color.ModelRGB})

	got, ok := fn(0.5).(color.Color)
	require.True(t, ok)
	require.True(t, color.Equal(color.FromRGBA(127.5, 0, 127.5, 1), got, 1e-9))

	husl := New([2]any{0, 1}, [2]any{"red", "blue"}, Options{})(0.5).(color.Color)
	require.True(t, color.Equal(color.Mix(color.New("red"), color.New("blue"), 0.5, false, color.ModelHUSL), husl, 1e-9))
}

func TestNewColorInput(t *testing.T) {
	t.Parallel()

	fn := New([2]any{"black", "white"}, [2]any{0, 100}, Options{ColorModel: color.ModelRGB})

	require.InDelta(t, 50, fn(color.FromRGBA(127.5, 127.5, 127.5, 1)), 1e-9)
	require.InDelta(t, 100, fn("white"), 1e-9)
}

func TestNewExplicitStrategies(t *testing.T) {
	t.Parallel()

	fn := New([2]any{0, 10}, [2]any{"closed", "open"}, Options{
		InputInterpolation:  interpolation.Number,
		OutputInterpolation: interpolation.NoInterpolation,
	})

	assert.Equal(t, "closed", fn(4))
	assert.Equal(t, "open", fn(6))
}

func TestNewObjectOutput(t *testing.T) {
	t.Parallel()

	fn := New(
		[2]any{0, 1},
		[2]any{map[string]any{"x": 0, "y": 10}, map[string]any{"x": 10, "y": 0}},
		Options{},
	)

	assert.Equal(t, map[string]any{"x": 3.0, "y": 7.0}, fn(0.3))
}

func TestValue(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 25, Value(0.25, [2]any{0, 1}, [2]any{0, 100}, Options{}), 1e-9)
	assert.Equal(t, "start", Value(42, [2]any{1, 1}, [2]any{"start", "end"}, Options{}))
}

func TestModulate(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, Modulate(50, [2]float64{0, 100}, [2]float64{0, 1}, false), 1e-12)
	assert.InDelta(t, 2, Modulate(200, [2]float64{0, 100}, [2]float64{0, 1}, false), 1e-12)
	assert.InDelta(t, 1, Modulate(200, [2]float64{0, 100}, [2]float64{0, 1}, true), 1e-12)
	assert.InDelta(t, 75, Modulate(0.25, [2]float64{0, 1}, [2]float64{100, 0}, true), 1e-12)
	assert.Equal(t, 3.0, Modulate(9, [2]float64{4, 4}, [2]float64{3, 7}, false))
}

func TestModulateAgreesWithNew(t *testing.T) {
	t.Parallel()

	fn := New([2]any{-20.0, 80.0}, [2]any{1.0, 3.0}, Options{})
	for _, v := range []float64{-50, -20, 0, 33.3, 80, 120} {
		require.InDelta(t, Modulate(v, [2]float64{-20, 80}, [2]float64{1, 3}, false), fn(v), 1e-9)
	}
}

func TestFrames(t *testing.T) {
	t.Parallel()

	fn := New([2]any{0, 1}, [2]any{0, 100}, Options{})

	frames := Frames(fn, 0, 1, 5)
	require.Len(t, frames, 5)
	for i, want := range []float64{0, 25, 50, 75, 100} {
		require.InDelta(t, want, frames[i], 1e-9)
	}

	single := Frames(fn, 0, 1, 1)
	require.Len(t, single, 1)
	require.InDelta(t, 0, single[0], 1e-9)

	require.Nil(t, Frames(fn, 0, 1, 0))
	require.Nil(t, Frames(nil, 0, 1, 3))
}

func TestFramesOfColorRamp(t *testing.T) {
	t.Parallel()

	fn := New([2]any{0, 1}, [2]any{"black", "white"}, Options{ColorModel: color.ModelRGB})

	frames := Frames(fn, 0, 1, 3)
	require.Len(t, frames, 3)

	mid := frames[1].(color.Color)
	require.True(t, color.Equal(color.FromRGBA(127.5, 127.5, 127.5, 1), mid, 1e-9))
	assert.Equal(t, "#ffffff", color.ToHexString(frames[2].(color.Color), false))
}
