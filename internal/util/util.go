package util

import (
	"cmp"
	"strings"
)

// ContainsFold reports whether substr appears in s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// EqualFold reports whether s and t are equal, ignoring case.
func EqualFold(s, t string) bool {
	return strings.EqualFold(s, t)
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
