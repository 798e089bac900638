package color

import "math"

// DefaultTolerance is the per-channel tolerance Equal uses when callers have
// no better value.
const DefaultTolerance = 0.1

// Difference is a perceptual distance between a and b: a weighted Euclidean
// RGB distance with a red-mean correction. It ranges from 0 to 765.
func Difference(a, b Color) float64 {
	redMean := (a.R + b.R) / 2
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	dr2, dg2, db2 := dr*dr, dg*dg, db*db
	return math.Sqrt(2*dr2 + 4*dg2 + 3*db2 + redMean*(dr2-db2)/256)
}

// Equal reports whether every channel of a and b, alpha included, differs by
// less than tolerance.
func Equal(a, b Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) < tolerance &&
		math.Abs(a.G-b.G) < tolerance &&
		math.Abs(a.B-b.B) < tolerance &&
		math.Abs(a.A-b.A) < tolerance
}
