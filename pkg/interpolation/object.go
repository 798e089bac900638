package interpolation

import (
	"maps"
	"math"
	"reflect"
)

type objectInterpolation struct {
	values Interpolation
}

// ObjectInterpolation interpolates maps keyed by strings, key by key, using
// values for each entry. A nil values strategy means Default, which recurses
// into nested maps.
//
// Keys present on either side take part; a key missing on one side is
// constant at the other side's value. Each call of the returned function
// builds a fresh map starting from a shallow copy of from.
func ObjectInterpolation(values Interpolation) Interpolation {
	if values == nil {
		values = Default
	}
	return objectInterpolation{values: values}
}

func (o objectInterpolation) Interpolate(from, to any) func(float64) any {
	if constant, ok := oneSided(from, to); ok {
		return constant
	}
	a, b := asObject(from), asObject(to)

	entries := make(map[string]func(float64) any, len(a)+len(b))
	for _, key := range unionKeys(a, b) {
		entries[key] = o.values.Interpolate(a[key], b[key])
	}

	return func(progress float64) any {
		out := make(map[string]any, len(entries))
		maps.Copy(out, a)
		for key, interp := range entries {
			out[key] = interp(progress)
		}
		return out
	}
}

// Difference is the Euclidean norm of the per-key differences.
func (o objectInterpolation) Difference(from, to any) float64 {
	from, to = HandleUndefined(from, to)
	a, b := asObject(from), asObject(to)

	var sum float64
	for _, key := range unionKeys(a, b) {
		d := o.values.Difference(a[key], b[key])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func unionKeys(a, b map[string]any) []string {
	keys := make([]string, 0, len(a)+len(b))
	for key := range a {
		keys = append(keys, key)
	}
	for key := range b {
		if _, ok := a[key]; !ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func isObject(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
}

// asObject views any string-keyed map as map[string]any. Other values read as
// an empty map.
func asObject(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	if !isObject(v) {
		return map[string]any{}
	}

	rv := reflect.ValueOf(v)
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out
}
