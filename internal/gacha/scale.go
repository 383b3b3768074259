package gacha

import "math"

// RateScale is the fixed-point scale factor: 6 decimal digits of precision.
// Every probability-bearing float is converted to an int64 multiple of
// 1/RateScale at construction; cumulative sums and comparisons happen in
// that integer domain, and floats reappear only at the public boundary.
const RateScale = 1_000_000

// maxScalable bounds the inputs we accept: a scaled value may later be
// multiplied by another scaled rate (<= RateScale), so the scaled form must
// stay below MaxInt64/RateScale or the product overflows.
const maxScalable = float64(math.MaxInt64 / (RateScale * RateScale))

// scaleRate converts a non-negative float to its scaled integer form using
// round-half-up.
func scaleRate(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v >= maxScalable {
		return 0, ErrScaleOverflow
	}
	return int64(math.Floor(v*RateScale + 0.5)), nil
}

// unscaleRate converts a scaled integer back to its float form.
func unscaleRate(v int64) float64 {
	return float64(v) / RateScale
}
