// Package core provides fundamental types and utilities for the weather
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep simulation logic pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// PercentToCell maps a viewport fraction onto a cell index in [0, size).
// ok is false when the fraction lies outside the viewport.
func PercentToCell(percent float64, size int) (cell int, ok bool) {
	if percent < 0 || percent >= 1 || size <= 0 {
		return 0, false
	}
	cell = int(percent * float64(size))
	if cell >= size {
		cell = size - 1
	}
	return cell, true
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
