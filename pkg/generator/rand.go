package generator

import (
	"fmt"
	"math"
	mathrand "math/rand/v2"
)

// RandomSource yields uniform reals in [0, 1). *rand.Rand from
// math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

// TextProvider returns n words of filler text.
type TextProvider interface {
	Words(n int) string
}

// globalSource draws from the global math/rand/v2 source.
type globalSource struct{}

func (globalSource) Float64() float64 { return mathrand.Float64() }

// Bounds of int as float64. maxIntBound is 2^63 itself, one past MaxInt64.
const (
	minIntBound = -(1 << 63)
	maxIntBound = 1 << 63
)

// RandomInt returns a uniform integer in [ceil(lo), floor(hi)].
// The draw is floored, never rounded. Bounds that are NaN or whose integer
// range does not fit in an int are rejected with ErrRangeOverflow.
func RandomInt(r RandomSource, lo, hi float64) (int, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, fmt.Errorf("%w: NaN bound in [%v, %v]", ErrRangeOverflow, lo, hi)
	}
	bot := math.Ceil(lo)
	top := math.Floor(hi)
	if bot > top {
		return 0, fmt.Errorf("%w: no integer in [%v, %v]", ErrEmptyRange, lo, hi)
	}
	if bot < minIntBound || top >= maxIntBound {
		return 0, fmt.Errorf("%w: [%v, %v] exceeds int", ErrRangeOverflow, lo, hi)
	}
	v := math.Floor(r.Float64()*(top-bot+1)) + bot
	// Wide spans lose precision and can round past either end.
	v = math.Max(bot, math.Min(v, top))
	return int(v), nil
}

// RandomNumber returns a uniform real in [lo, hi). When lo == hi the
// result is lo. Both bounds must be finite.
func RandomNumber(r RandomSource, lo, hi float64) (float64, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, fmt.Errorf("%w: non-finite bound in [%v, %v)", ErrRangeOverflow, lo, hi)
	}
	if hi < lo {
		return 0, fmt.Errorf("%w: [%v, %v)", ErrEmptyRange, lo, hi)
	}
	v := r.Float64()*(hi-lo) + lo
	// A draw just below 1 can round up to hi.
	if v >= hi && hi > lo {
		v = math.Nextafter(hi, lo)
	}
	return v, nil
}

// RandomBoolean returns true or false with equal probability.
func RandomBoolean(r RandomSource) bool {
	return r.Float64() < 0.5
}
