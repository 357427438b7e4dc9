package kernel

import (
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// synthesize walks the fine grid row by row. For each output row it first
// combines the 2-4 contributing coefficient rows into one row per channel,
// then sweeps the output columns reading a four-wide window of the combined
// row per pixel. Both steps are driven by the precomputed axis plans, so
// the amortized cost is O(1) per output pixel.
//
// The output row buffer is reused between WriteRow calls.
func synthesize[T Sample](dst RowWriter[T], coef *coefficients, rowPlan, colPlan []contribution, maxVal int64) error {
	n := coef.cols

	var combined [channels][]float64
	for ch := range combined {
		// Padded so the window can read past the last coefficient; the
		// pad stays zero and is only ever multiplied by zero weights.
		combined[ch] = make([]float64, n+windowPad)
	}

	out := make([]T, len(colPlan)*channels)

	for _, rp := range rowPlan {
		for ch := 0; ch < channels; ch++ {
			combineRows(combined[ch][:n], coef, ch, rp)
		}

		for jj, cp := range colPlan {
			for ch := 0; ch < channels; ch++ {
				c := combined[ch][cp.base:]
				v := cp.w[0]*c[0] + cp.w[1]*c[1] + cp.w[2]*c[2] + cp.w[3]*c[3]
				out[jj*channels+ch] = quantize[T](v, maxVal)
			}
		}

		if err := dst.WriteRow(out); err != nil {
			return err
		}
	}
	return nil
}

// combineRows forms the row-weighted combination of the contributing
// coefficient rows for one channel.
func combineRows(dst []float64, coef *coefficients, ch int, rp contribution) {
	f64.Scale(dst, coef.row(ch, rp.base), rp.w[0])
	for t := 1; t < rp.count; t++ {
		floats.AddScaled(dst, rp.w[t], coef.row(ch, rp.base+t))
	}
}

// quantize rounds to the nearest integer, half away from zero, and
// saturates to [0, maxVal]. Overshoot from the spline's negative lobes is
// clipped rather than wrapped.
func quantize[T Sample](x float64, maxVal int64) T {
	v := int64(x + 0.5)
	if v < 0 {
		v = 0
	} else if v > maxVal {
		v = maxVal
	}
	return T(v)
}
