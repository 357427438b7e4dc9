// Package testutil provides reusable test helper functions for the
// histospline upscaler tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-9
	CoarseTolerance  = 1e-6
)

// channels per pixel in test rasters.
const channels = 3

// Sample mirrors the scaler's supported pixel depths.
type Sample interface {
	uint8 | uint16
}

// SolidRows builds height rows of width interleaved RGB pixels, every
// sample set to v.
func SolidRows[T Sample](width, height int, v T) [][]T {
	rows := make([][]T, height)
	for y := range rows {
		rows[y] = make([]T, width*channels)
		for i := range rows[y] {
			rows[y][i] = v
		}
	}
	return rows
}

// ImpulseRows builds height rows of width black pixels with a single
// pixel at (x, y) set to v in every channel.
func ImpulseRows[T Sample](width, height, x, y int, v T) [][]T {
	rows := SolidRows[T](width, height, 0)
	for ch := 0; ch < channels; ch++ {
		rows[y][x*channels+ch] = v
	}
	return rows
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice of ints is strictly increasing.
func AssertMonotonic(t *testing.T, s []int, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not strictly increasing",
				"s[%d]=%d <= s[%d]=%d", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and
// expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}
