package interpolation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectInterpolation(t *testing.T) {
	t.Parallel()

	d, _ := quietDynamic(t)
	strategy := ObjectInterpolation(d)

	from := map[string]any{"a": 0, "b": 10}
	to := map[string]any{"a": 10, "b": 0}

	got := strategy.Interpolate(from, to)(0.5)
	require.Equal(t, map[string]any{"a": 5.0, "b": 5.0}, got)
	require.InDelta(t, math.Sqrt(200), strategy.Difference(from, to), 1e-9)
}

func TestObjectInterpolationUnionKeys(t *testing.T) {
	t.Parallel()

	d, _ := quietDynamic(t)
	strategy := ObjectInterpolation(d)

	from := map[string]any{"a": 0.0, "label": "keep"}
	to := map[string]any{"a": 10.0, "c": 3.0}

	got := strategy.Interpolate(from, to)(0.25).(map[string]any)
	require.InDelta(t, 2.5, got["a"], 1e-9)
	require.InDelta(t, 3.0, got["c"], 1e-9)
	require.Equal(t, "keep", got["label"])
	require.Len(t, got, 3)
}

func TestObjectInterpolationNested(t *testing.T) {
	t.Parallel()

	d, _ := quietDynamic(t)
	strategy := ObjectInterpolation(d)

	from := map[string]any{"pos": map[string]any{"x": 0, "y": 0}, "visible": false}
	to := map[string]any{"pos": map[string]any{"x": 10, "y": 20}, "visible": true}

	early := strategy.Interpolate(from, to)(0.25).(map[string]any)
	require.Equal(t, map[string]any{"x": 2.5, "y": 5.0}, early["pos"])
	require.Equal(t, false, early["visible"])

	late := strategy.Interpolate(from, to)(0.75).(map[string]any)
	require.Equal(t, true, late["visible"])
}

func TestObjectInterpolationTypedMaps(t *testing.T) {
	t.Parallel()

	d, _ := quietDynamic(t)
	strategy := ObjectInterpolation(d)

	from := map[string]float64{"w": 100, "h": 50}
	to := map[string]float64{"w": 200, "h": 50}

	got := strategy.Interpolate(from, to)(0.5)
	require.Equal(t, map[string]any{"w": 150.0, "h": 50.0}, got)
	require.InDelta(t, 100, strategy.Difference(from, to), 1e-9)
}

func TestObjectInterpolationBuildsFreshMaps(t *testing.T) {
	t.Parallel()

	d, _ := quietDynamic(t)
	strategy := ObjectInterpolation(d)

	from := map[string]any{"a": 0, "b": 10}
	to := map[string]any{"a": 10, "b": 0}
	interp := strategy.Interpolate(from, to)

	first := interp(0.5).(map[string]any)
	first["a"] = 99.0

	second := interp(0.5).(map[string]any)
	require.Equal(t, 5.0, second["a"])
	require.Equal(t, map[string]any{"a": 0, "b": 10}, from)
}

func TestObjectDifferenceIsNonNegative(t *testing.T) {
	t.Parallel()

	strategy := ObjectInterpolation(Number)

	require.InDelta(t, 5, strategy.Difference(map[string]any{"x": 5}, map[string]any{"x": 0}), 1e-9)
	require.Zero(t, strategy.Difference(map[string]any{"x": 1}, map[string]any{"x": 1}))
}

func TestObjectInterpolationUsesValueStrategy(t *testing.T) {
	t.Parallel()

	strategy := ObjectInterpolation(NoInterpolation)

	got := strategy.Interpolate(map[string]any{"x": 0}, map[string]any{"x": 10})(0.4).(map[string]any)
	require.Equal(t, 0, got["x"])
}

func TestObjectInverseLaw(t *testing.T) {
	t.Parallel()

	strategy := ObjectInterpolation(Number)
	from := map[string]any{"x": 0.0, "y": 4.0}
	to := map[string]any{"x": 3.0, "y": 0.0}

	interp := strategy.Interpolate(from, to)
	total := strategy.Difference(from, to)
	require.InDelta(t, 5, total, 1e-9)

	for _, fraction := range []float64{0, 0.3, 0.6, 1} {
		x := interp(fraction).(map[string]any)
		got := interp(strategy.Difference(from, x) / total).(map[string]any)
		require.InDelta(t, x["x"], got["x"], 1e-9)
		require.InDelta(t, x["y"], got["y"], 1e-9)
	}
}
