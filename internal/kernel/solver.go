package kernel

import (
	"gonum.org/v1/gonum/floats"
)

// coefficients holds the histospline coefficient planes, one per channel,
// each rows x cols in row-major order. Input samples are deinterleaved into
// planar storage so the vertical sweeps and the synthesis row combinations
// run over contiguous memory.
type coefficients struct {
	rows, cols int
	plane      [channels][]float64
}

func newCoefficients(rows, cols int) *coefficients {
	c := &coefficients{rows: rows, cols: cols}
	for ch := range c.plane {
		c.plane[ch] = make([]float64, rows*cols)
	}
	return c
}

// row returns the i-th scanline of one channel plane.
func (c *coefficients) row(ch, i int) []float64 {
	return c.plane[ch][i*c.cols : (i+1)*c.cols]
}

// ingestRow deinterleaves one input scanline into the coefficient planes,
// rescales it by the fine/coarse area ratio, and runs the horizontal line
// solve. Rescaling here pre-absorbs the division by the fine-cell area that
// synthesis would otherwise perform once per output pixel.
func ingestRow[T Sample](c *coefficients, i int, row []T, scale float64) {
	for ch := 0; ch < channels; ch++ {
		dst := c.row(ch, i)
		for j := range dst {
			dst[j] = float64(row[j*channels+ch]) * scale
		}
		solveLine(dst)
	}
}

// solveLine solves one 1-D histospline system in place. The line holds the
// right-hand side on entry and the spline coefficients on return.
//
// The system matrix is tridiagonal with rows (1, 4, 1) and natural-boundary
// end rows (5, 1) and (1, 5); its LU factorization multipliers converge
// geometrically to the fixed point 2-sqrt(3), so only the first few are
// computed exactly (see multiplier). This shortcut is what makes the solve
// O(len) with a constant close to a plain scan.
func solveLine(line []float64) {
	last := len(line) - 1

	for j := 1; j <= last; j++ {
		line[j] -= line[j-1] * multiplier(j-1)
	}

	line[last] *= multiplierLast
	for j := last - 1; j >= 0; j-- {
		line[j] = (line[j] - line[j+1]) * multiplier(j)
	}
}

// solveVertical runs the transposed sweep: the same elimination as
// solveLine, but down the columns of each plane, operating on whole
// scanlines at a time so the inner loops stay vectorizable.
func (c *coefficients) solveVertical() {
	for ch := range c.plane {
		for i := 1; i < c.rows; i++ {
			floats.AddScaled(c.row(ch, i), -multiplier(i-1), c.row(ch, i-1))
		}

		floats.Scale(multiplierLast, c.row(ch, c.rows-1))
		for i := c.rows - 2; i >= 0; i-- {
			r := c.row(ch, i)
			floats.Sub(r, c.row(ch, i+1))
			floats.Scale(multiplier(i), r)
		}
	}
}
