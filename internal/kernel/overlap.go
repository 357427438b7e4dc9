// Package kernel implements exact-area image upsampling with natural
// biquadratic histosplines: a spline surface is fitted so that its integral
// over every input pixel reproduces that pixel's value, and output pixels
// are computed as exact integrals of the surface over their footprints.
package kernel

// LastOverlapping returns, for each coarse cell on one axis, the index of
// the last fine cell whose span intersects it. The returned table has
// coarse-1 entries; the trailing coarse cell needs none because synthesis
// consumes every remaining fine cell there.
//
// Cells use the convention that coarse cells have unit width, so entry k is
// the largest j with j*coarse < (k+1)*fine. The walk below maintains both
// products incrementally; no divisions are performed, so the values stay
// exact for any axis size that fits in an int.
func LastOverlapping(coarse, fine int) []int {
	last := make([]int, coarse-1)

	if fine == coarse {
		for k := range last {
			last[k] = k
		}
		return last
	}

	kk := 0
	kkPlusOneTimesCoarse := coarse
	kPlusOneTimesFine := fine
	for k := range last {
		// Fine cells are narrower than coarse ones, so the first fine
		// cell overlapping a coarse cell is never also the last.
		kk++
		kkPlusOneTimesCoarse += coarse
		for kkPlusOneTimesCoarse < kPlusOneTimesFine {
			kk++
			kkPlusOneTimesCoarse += coarse
		}
		last[k] = kk
		kPlusOneTimesFine += fine
	}
	return last
}
