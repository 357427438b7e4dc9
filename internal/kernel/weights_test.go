package kernel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/simd/f64"
)

func TestAntiderivativeFullCellIntegrals(t *testing.T) {
	// Each full-cell integral is the antiderivative at the right edge.
	assert.InDelta(t, sideIntegral, interiorLeft(1), 1e-15)
	assert.InDelta(t, interiorDiagonal, interiorCenter(1), 1e-15)
	assert.InDelta(t, sideIntegral, interiorRight(1), 1e-15)
	assert.InDelta(t, boundaryDiagonal, leadingBoundary(1), 1e-15)
	assert.InDelta(t, sideIntegral, leadingBoundaryLeft(1), 1e-15)
	assert.InDelta(t, boundaryDiagonal, trailingBoundary(1), 1e-15)
	assert.InDelta(t, sideIntegral, trailingBoundaryRight(1), 1e-15)
}

func TestAxisPlanPartitionOfUnity(t *testing.T) {
	// The basis functions sum to 6 pointwise, so the weights of one fine
	// cell must sum to 6*coarse/fine regardless of where the cell falls.
	pairs := []struct{ coarse, fine int }{
		{15, 15},
		{15, 16},
		{15, 30},
		{15, 97},
		{17, 100},
		{33, 128},
		{101, 401},
	}

	for _, p := range pairs {
		t.Run(fmt.Sprintf("%dto%d", p.coarse, p.fine), func(t *testing.T) {
			plan := axisPlan(p.coarse, p.fine)
			require.Len(t, plan, p.fine)

			want := 6 * float64(p.coarse) / float64(p.fine)
			for kk, cp := range plan {
				sum := f64.Sum(cp.w[:cp.count])
				assert.InDelta(t, want, sum, 1e-9, "fine cell %d", kk)
			}
		})
	}
}

func TestAxisPlanWindows(t *testing.T) {
	const coarse, fine = 15, 46
	plan := axisPlan(coarse, fine)

	for kk, cp := range plan {
		assert.GreaterOrEqual(t, cp.count, 2, "fine cell %d", kk)
		assert.LessOrEqual(t, cp.count, 4, "fine cell %d", kk)
		assert.GreaterOrEqual(t, cp.base, 0, "fine cell %d", kk)
		assert.LessOrEqual(t, cp.base+cp.count, coarse, "fine cell %d", kk)

		// Unused window slots must be zero so synthesis can read all four.
		for s := cp.count; s < len(cp.w); s++ {
			assert.Zero(t, cp.w[s], "fine cell %d slot %d", kk, s)
		}
	}

	// Windows advance monotonically across the axis.
	for kk := 1; kk < fine; kk++ {
		assert.GreaterOrEqual(t, plan[kk].base, plan[kk-1].base, "fine cell %d", kk)
	}
}

func TestAxisPlanIdentity(t *testing.T) {
	// At 1:1 each fine cell is a coarse cell and the weights are exactly
	// the matrix rows: (5,1) at the ends, (1,4,1) inside.
	const n = 15
	plan := axisPlan(n, n)

	first := plan[0]
	assert.Equal(t, 0, first.base)
	assert.InDelta(t, boundaryDiagonal, first.w[0], 1e-12)
	assert.InDelta(t, sideIntegral, first.w[1], 1e-12)
	assert.InDelta(t, 0.0, first.w[2], 1e-12)

	for kk := 1; kk < n-1; kk++ {
		cp := plan[kk]
		assert.Equal(t, kk-1, cp.base, "fine cell %d", kk)
		assert.InDelta(t, sideIntegral, cp.w[0], 1e-12, "fine cell %d", kk)
		assert.InDelta(t, interiorDiagonal, cp.w[1], 1e-12, "fine cell %d", kk)
		assert.InDelta(t, sideIntegral, cp.w[2], 1e-12, "fine cell %d", kk)
		if cp.count == 4 {
			assert.InDelta(t, 0.0, cp.w[3], 1e-12, "fine cell %d", kk)
		}
	}

	last := plan[n-1]
	assert.Equal(t, n-2, last.base)
	assert.Equal(t, 2, last.count)
	assert.InDelta(t, sideIntegral, last.w[0], 1e-12)
	assert.InDelta(t, boundaryDiagonal, last.w[1], 1e-12)
}

func TestAxisWeightsIntegerMagnification(t *testing.T) {
	// At integer magnification every boundary-straddling fine cell ends
	// exactly on the coarse boundary, so no farright spill occurs.
	const coarse, fine = 15, 45
	overlap := LastOverlapping(coarse, fine)
	aw := computeAxisWeights(coarse, fine, overlap)

	for k, v := range aw.farright[:coarse-1] {
		assert.Zero(t, v, "coarse cell %d", k)
	}
}

func TestAxisWeightsNonNegativeCenter(t *testing.T) {
	// The quadratic B-spline is nonnegative, so every weight is a
	// nonnegative integral, up to rounding in the sliding subtraction.
	const coarse, fine = 19, 83
	plan := axisPlan(coarse, fine)
	for kk, cp := range plan {
		for s := 0; s < cp.count; s++ {
			assert.GreaterOrEqual(t, cp.w[s], -1e-12, "fine cell %d slot %d", kk, s)
		}
	}
}
