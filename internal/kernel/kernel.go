package kernel

import (
	"errors"
	"fmt"
)

// Sample constrains the raster sample depths the kernel supports.
type Sample interface {
	uint8 | uint16
}

// RowReader supplies input scanlines, one interleaved row per call, in
// top-to-bottom order. ReadRow must fill dst completely or return an error.
type RowReader[T Sample] interface {
	ReadRow(dst []T) error
}

// RowWriter receives synthesized output rows in top-to-bottom order. The
// slice is reused between calls; implementations must not retain it.
type RowWriter[T Sample] interface {
	WriteRow(row []T) error
}

// ErrGeometry indicates an input/output size combination the kernel does
// not support. Callers are expected to validate sizes at the boundary; this
// is the backstop.
var ErrGeometry = errors.New("unsupported raster geometry")

// Upsample enlarges an inWidth x inHeight three-channel raster read from
// src to outWidth x outHeight, streaming each synthesized row to dst as it
// is produced. Input rows are consumed exactly once; the full coefficient
// array is held in memory because the vertical solve needs whole-column
// visibility, but no output buffering beyond one row occurs.
//
// The operation is synchronous, deterministic, and reentrant for disjoint
// buffers.
func Upsample[T Sample](dst RowWriter[T], src RowReader[T], inWidth, inHeight, outWidth, outHeight int) error {
	if inWidth < minAxisSize || inHeight < minAxisSize {
		return fmt.Errorf("%w: input %dx%d is below the %dx%d minimum",
			ErrGeometry, inWidth, inHeight, minAxisSize, minAxisSize)
	}
	if outWidth < inWidth || outHeight < inHeight {
		return fmt.Errorf("%w: output %dx%d shrinks input %dx%d",
			ErrGeometry, outWidth, outHeight, inWidth, inHeight)
	}

	// Pre-absorb the fine/coarse area ratio into the coefficients; an
	// average is an integral divided by an area, and folding the division
	// in here costs one multiply per input sample instead of one per
	// output sample.
	scale := (float64(outWidth) * float64(outHeight)) /
		(float64(inWidth) * float64(inHeight))

	coef := newCoefficients(inHeight, inWidth)
	rowBuf := make([]T, inWidth*channels)
	for i := 0; i < inHeight; i++ {
		if err := src.ReadRow(rowBuf); err != nil {
			return fmt.Errorf("reading input row %d: %w", i, err)
		}
		ingestRow(coef, i, rowBuf, scale)
	}
	coef.solveVertical()

	rowPlan := axisPlan(inHeight, outHeight)
	colPlan := axisPlan(inWidth, outWidth)

	return synthesize(dst, coef, rowPlan, colPlan, maxValueOf[T]())
}

// maxValueOf returns the saturation limit for a sample type.
func maxValueOf[T Sample]() int64 {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return maxValue8
	case uint16:
		return maxValue16
	default:
		panic("kernel: unsupported sample type")
	}
}
