package util

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

func Max[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	max := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg > max {
			max = arg
		}
	}
	return max
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v T, lo T, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SaturateUint8 rounds half to even and clips to the 8 bit range. NaN
// saturates to 0.
func SaturateUint8(v float32) float32 {
	if isNan(v) {
		return 0
	}
	return float32(Clamp(math.RoundToEven(float64(v)), 0, 255))
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}
