package kernel

import "math"

const (
	// channels is the number of interleaved samples per pixel.
	// The kernel is fixed to three-channel (RGB) rasters.
	channels = 3

	// minAxisSize is the smallest coarse axis the solver supports. The
	// boundary formulas assume the exact forward-substitution multipliers
	// and the asymptotic tail never overlap, which needs at least this
	// many coarse cells per axis.
	minAxisSize = 15

	// exactMultiplierCount is how many forward-substitution multipliers
	// are taken from the recurrence before the solver switches to the
	// asymptotic fixed point. The recurrence converges geometrically;
	// after six steps the next term agrees with the fixed point to
	// better than float64 rounding of the quantized output.
	exactMultiplierCount = 6

	// Sample depth limits.
	maxValue8  = 255
	maxValue16 = 65535

	// windowPad is the zero padding appended to each combined coefficient
	// row so the four-wide synthesis window can be read branch-free at the
	// right edge.
	windowPad = 2
)

// Diagonal entries of the histospline tridiagonal system. Interior rows are
// (1, 4, 1); the natural-boundary end rows are (5, 1) and (1, 5). The same
// values are the full-cell integrals of the corresponding basis functions.
const (
	boundaryDiagonal = 5.0
	interiorDiagonal = 4.0
	sideIntegral     = 1.0
)

var (
	// multiplierInfty is the fixed point of r -> 1/(4-r), which the
	// forward-substitution multipliers converge to.
	multiplierInfty = 2 - math.Sqrt(3)

	// exactMultipliers holds the leading terms of the multiplier
	// recurrence, starting from the natural-boundary row.
	exactMultipliers = computeExactMultipliers()

	// multiplierLast folds the trailing boundary diagonal into the first
	// back-substitution step.
	multiplierLast = 1 / (boundaryDiagonal - multiplierInfty)
)

func computeExactMultipliers() [exactMultiplierCount]float64 {
	var m [exactMultiplierCount]float64
	m[0] = 1 / boundaryDiagonal
	for k := 1; k < exactMultiplierCount; k++ {
		m[k] = 1 / (interiorDiagonal - m[k-1])
	}
	return m
}

// multiplier returns the forward-substitution multiplier for interior
// position k of a line solve.
func multiplier(k int) float64 {
	if k < exactMultiplierCount {
		return exactMultipliers[k]
	}
	return multiplierInfty
}
