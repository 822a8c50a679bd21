// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// maxExactFloat is the largest integer every smaller non-negative integer of
// which is exactly representable as a float64.
const maxExactFloat = 1 << 53

// Uint64 converts a signed integer to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Int64 converts an unsigned integer to int64 while guarding against overflow.
func Int64[T ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// Uint64FromFloat converts a float holding a non-negative integral value to uint64.
func Uint64FromFloat(v float64) (uint64, error) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0, fmt.Errorf("value %v is not finite", v)
	case v < 0 || v > maxExactFloat:
		return 0, fmt.Errorf("value %v out of uint64 range", v)
	case v != math.Trunc(v):
		return 0, fmt.Errorf("value %v is not an integer", v)
	}
	return uint64(v), nil
}
