package layer

import "math"

// finite replaces NaN and ±Inf with 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// nonNeg coerces v to a finite, non-negative number.
func nonNeg(v float64) float64 {
	v = finite(v)
	if v < 0 {
		return 0
	}
	return v
}

// clamp limits v to [lo, hi]. When hi < lo the result is lo.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ratio returns to/from, or 1 when from is not a usable divisor.
func ratio(to, from float64) float64 {
	if !(from > 0) || math.IsInf(from, 0) {
		return 1
	}
	return nonNeg(to / from)
}

func sanitizePoint(p Point) Point {
	return Point{X: nonNeg(p.X), Y: nonNeg(p.Y)}
}

func sanitizeSize(s Size) Size {
	return Size{Width: nonNeg(s.Width), Height: nonNeg(s.Height)}
}
