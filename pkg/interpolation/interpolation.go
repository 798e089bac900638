// Package interpolation blends two values of the same shape at a progress
// between 0 and 1 and measures how far apart two values are.
//
// Every strategy honours the same contract: for interp := Interpolate(from, to)
// and total := Difference(from, to), interp(Difference(from, x)/total) yields x
// for any x reachable by interp.
package interpolation

import (
	"math"
	"reflect"
)

// Interpolation is a strategy for one shape of value.
type Interpolation interface {
	// Interpolate returns a function yielding the value at progress between
	// from (progress 0) and to (progress 1).
	Interpolate(from, to any) func(progress float64) any
	// Difference measures the separation of from and to.
	Difference(from, to any) float64
}

// HandleUndefined substitutes a missing endpoint with the other one, so
// interpolating from or to nil is constant. Nil pointers count as missing.
func HandleUndefined(from, to any) (any, any) {
	if isUndefined(from) {
		from = to
	}
	if isUndefined(to) {
		to = from
	}
	return from, to
}

func isUndefined(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// oneSided returns a function yielding the defined endpoint unchanged when
// the other one is missing. Both missing yields nil.
func oneSided(from, to any) (func(float64) any, bool) {
	fromMissing, toMissing := isUndefined(from), isUndefined(to)
	if !fromMissing && !toMissing {
		return nil, false
	}

	var value any
	switch {
	case !fromMissing:
		value = from
	case !toMissing:
		value = to
	}
	return func(float64) any { return value }, true
}

type numberInterpolation struct{}

// Number interpolates numeric values linearly. Any Go integer or float kind is
// accepted; results are float64, except that a missing endpoint yields the
// other one unchanged. Its Difference is signed.
var Number Interpolation = numberInterpolation{}

func (numberInterpolation) Interpolate(from, to any) func(float64) any {
	if constant, ok := oneSided(from, to); ok {
		return constant
	}
	a, b := toNumber(from), toNumber(to)
	return func(progress float64) any {
		return a + (b-a)*progress
	}
}

func (numberInterpolation) Difference(from, to any) float64 {
	from, to = HandleUndefined(from, to)
	return toNumber(to) - toNumber(from)
}

type discreteInterpolation struct{}

// NoInterpolation steps from one value to the other at progress 0.5. Its
// Difference is 0 for equal values and 1 otherwise.
var NoInterpolation Interpolation = discreteInterpolation{}

func (discreteInterpolation) Interpolate(from, to any) func(float64) any {
	from, to = HandleUndefined(from, to)
	return func(progress float64) any {
		if progress < 0.5 {
			return from
		}
		return to
	}
}

func (discreteInterpolation) Difference(from, to any) float64 {
	from, to = HandleUndefined(from, to)
	if sameValue(from, to) {
		return 0
	}
	return 1
}

// sameValue compares functions by code pointer and everything else deeply.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == reflect.Func || vb.Kind() == reflect.Func {
		return va.Kind() == vb.Kind() && va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
	}
	return reflect.DeepEqual(a, b)
}

func isNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// toNumber reads any numeric kind as float64. Non-numeric values are NaN.
func toNumber(v any) float64 {
	if !isNumber(v) {
		return math.NaN()
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}
