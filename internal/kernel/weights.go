package kernel

// Antiderivatives of the quadratic B-spline pieces, in Horner form, with
// constants of integration chosen so each is zero at the left edge of the
// cell of interest. A fine cell's integral against a basis function is then
// one antiderivative subtraction. The "left" piece of a spline doubles as
// the contribution a cell receives from its right neighbour's spline, and
// vice versa.
func interiorLeft(x float64) float64 {
	return x * x * x
}

func interiorCenter(x float64) float64 {
	return x * (3 - x*(-3+x+x))
}

func interiorRight(x float64) float64 {
	return x * (3 + x*(-3+x))
}

// Natural-boundary variants for the first and last coarse cells. With
// natural boundary conditions the trailing-cell "right" piece coincides
// with the interior one; it gets its own name because the trailing sweep
// uses it from a different antiderivative origin.
func leadingBoundary(x float64) float64 {
	return x * (6 - x*x)
}

func leadingBoundaryLeft(x float64) float64 {
	return x * x * x
}

func trailingBoundary(x float64) float64 {
	return x * (3 + x*(3-x))
}

func trailingBoundaryRight(x float64) float64 {
	return x * (3 + x*(-3+x))
}

// axisWeights holds, per fine cell, the integrals of the overlapping basis
// functions: left/center/right relative to the coarse cell the fine cell
// starts in, and farright for fine cells that straddle a coarse boundary.
// Entries of farright index coarse cells; the last one is never read.
type axisWeights struct {
	left, center, right []float64
	farright            []float64
}

// computeAxisWeights evaluates the exact basis integrals for every fine
// cell of one axis. A single left-to-right pass carries the previous
// antiderivative value forward so each integral costs one subtraction.
//
// Boundary-crossing local coordinates are recomputed from the integer cell
// indices rather than accumulated, so they stay exact for large axes.
func computeAxisWeights(coarse, fine int, overlap []int) axisWeights {
	w := axisWeights{
		left:     make([]float64, fine),
		center:   make([]float64, fine),
		right:    make([]float64, fine),
		farright: make([]float64, coarse),
	}

	invFine := 1 / float64(fine)
	h := float64(coarse) * invFine

	x := 0.0
	var prevL float64
	prevC, prevR := 0.0, 0.0

	// Fine cells fully inside the first coarse cell.
	kk := 0
	for last := overlap[0]; kk < last; kk++ {
		x += h

		ic := leadingBoundary(x)
		w.center[kk] = ic - prevC
		prevC = ic

		ir := leadingBoundaryLeft(x)
		w.right[kk] = ir - prevR
		prevR = ir
	}

	// Last fine cell overlapping the first coarse cell. Crossing into the
	// next coarse cell swaps each spline's piece: the new local coordinate
	// is measured from that cell's left edge, and is zero exactly when the
	// fine cell ends on the boundary, in which case the next cell
	// contributes nothing.
	x = float64((kk+1)*coarse-fine) * invFine

	prevL = interiorRight(x)
	w.center[kk] = prevL + (boundaryDiagonal - prevC)
	prevC = interiorCenter(x)
	w.right[kk] = prevC + (sideIntegral - prevR)
	prevR = interiorLeft(x)
	w.farright[0] = prevR

	// Interior coarse cells.
	for k := 1; k < coarse-1; k++ {
		last := overlap[k]
		for kk++; kk < last; kk++ {
			x += h

			il := interiorRight(x)
			w.left[kk] = il - prevL
			prevL = il

			ic := interiorCenter(x)
			w.center[kk] = ic - prevC
			prevC = ic

			ir := interiorLeft(x)
			w.right[kk] = ir - prevR
			prevR = ir
		}

		x = float64((kk+1)*coarse-(k+1)*fine) * invFine

		w.left[kk] = 1 - prevL
		prevL = interiorRight(x)
		w.center[kk] = prevL + (interiorDiagonal - prevC)
		prevC = interiorCenter(x)
		w.right[kk] = prevC + (sideIntegral - prevR)
		prevR = interiorLeft(x)
		w.farright[k] = prevR
	}

	// The boundary-crossing cell above used the interior center piece for
	// the trailing coarse cell's contribution. If that cell actually
	// overlaps the trailing coarse cell, swap in the boundary piece. When
	// the magnification is an integer the overlap is empty and both pieces
	// evaluate to zero, so no correction applies.
	if fine%coarse != 0 {
		w.right[kk] -= prevC
		prevC = trailingBoundary(x)
		w.right[kk] += prevC
	}

	// Fine cells fully inside the last coarse cell.
	for kk++; kk < fine; kk++ {
		x += h

		il := trailingBoundaryRight(x)
		w.left[kk] = il - prevL
		prevL = il

		ic := trailingBoundary(x)
		w.center[kk] = ic - prevC
		prevC = ic
	}

	return w
}

// contribution describes how one fine cell integrates against up to four
// consecutive coefficient lines: w[t] weights line base+t. Unused window
// slots hold zero, so the synthesis dot product can always read four terms.
type contribution struct {
	base  int
	count int
	w     [4]float64
}

// buildPlan folds an axis's weight vectors and overlap table into one
// contribution per fine cell. The plan encodes the boundary asymmetries
// once, so synthesis itself needs no edge special-casing: the first and
// last coarse cells contribute two-term windows, boundary-straddling fine
// cells gain a farright term, and everything else is a three-term window.
func buildPlan(coarse, fine int, overlap []int, aw axisWeights) []contribution {
	plan := make([]contribution, fine)

	kk := 0
	for last := overlap[0]; kk < last; kk++ {
		plan[kk] = contribution{base: 0, count: 2,
			w: [4]float64{aw.center[kk], aw.right[kk]}}
	}
	plan[kk] = contribution{base: 0, count: 3,
		w: [4]float64{aw.center[kk], aw.right[kk], aw.farright[0]}}
	kk++

	for k := 1; k < coarse-2; k++ {
		for last := overlap[k]; kk < last; kk++ {
			plan[kk] = contribution{base: k - 1, count: 3,
				w: [4]float64{aw.left[kk], aw.center[kk], aw.right[kk]}}
		}
		plan[kk] = contribution{base: k - 1, count: 4,
			w: [4]float64{aw.left[kk], aw.center[kk], aw.right[kk], aw.farright[k]}}
		kk++
	}

	// Second-to-last coarse cell: its boundary-straddling fine cell needs
	// no farright term, so the whole range is uniform.
	for last := overlap[coarse-2]; kk <= last; kk++ {
		plan[kk] = contribution{base: coarse - 3, count: 3,
			w: [4]float64{aw.left[kk], aw.center[kk], aw.right[kk]}}
	}

	// Last coarse cell.
	for ; kk < fine; kk++ {
		plan[kk] = contribution{base: coarse - 2, count: 2,
			w: [4]float64{aw.left[kk], aw.center[kk]}}
	}

	return plan
}

// axisPlan computes the full per-axis synthesis plan for one axis.
func axisPlan(coarse, fine int) []contribution {
	overlap := LastOverlapping(coarse, fine)
	return buildPlan(coarse, fine, overlap, computeAxisWeights(coarse, fine, overlap))
}
