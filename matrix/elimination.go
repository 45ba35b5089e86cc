// SPDX-License-Identifier: MIT

// Package matrix - Gaussian elimination engine: row echelon form, reduced row
// echelon form, determinant and trace, with per-instance caching.
//
// Pivoting & rank policy (fixed, documented, enforced in tests):
//   - Partial pivoting scans the pivot column from the pivot row downward for
//     the element of maximum absolute value and swaps only when a STRICTLY
//     larger candidate exists below; every swap increments the counter.
//   - A column whose remaining entries are all exactly zero advances the
//     column index only — the pivot row stays available for later columns.
//   - With pivoting disabled, an exactly zero pivot over nonzero entries
//     below fails with ErrZeroPivot (the division-by-zero class).
//   - Subtraction residues with |x| < zeroTolerance snap to exact zero.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opRef   = "Ref"
	opRref  = "Rref"
	opDet   = "Det"
	opTrace = "Trace"
)

// refInPlace reduces d to row echelon form in place and reports the number of
// row swaps performed. The caller owns cache invalidation.
func refInPlace(d *Dense, pivoting bool, zeroTol float64) (int, error) {
	var (
		swaps      int     // row swaps performed (sign bookkeeping for Det)
		row        int     // current pivot row
		col        int     // current pivot column
		r, c       int     // scan iterators
		maxIdx     int     // row index of the largest-magnitude candidate
		maxAbs     float64 // its absolute value
		pivot      float64 // pivot entry after optional swap
		entry, res float64 // element being eliminated; subtraction residue
		factor     float64 // entry / pivot multiplier
	)
	for col = 0; col < d.cols && row < d.rows; col++ {
		// Scan the column from the pivot row downward for the max |value|.
		maxIdx = row
		maxAbs = math.Abs(d.data[row*d.cols+col])
		for r = row + 1; r < d.rows; r++ {
			if v := math.Abs(d.data[r*d.cols+col]); v > maxAbs {
				maxIdx, maxAbs = r, v
			}
		}

		// Entirely zero below (pivot included): rank-deficient column.
		// Advance the column only — this row may still host a later pivot.
		if maxAbs == 0 {
			continue
		}

		pivot = d.data[row*d.cols+col]

		// Partial pivoting: swap only a strictly larger candidate into place.
		if pivoting && maxIdx != row && maxAbs > math.Abs(pivot) {
			swapRows(d, row, maxIdx)
			swaps++
			pivot = d.data[row*d.cols+col]
		}

		// Exactly zero pivot with swapping disabled: the caller must retry
		// with pivoting or accept singularity under this strategy.
		if pivot == 0 {
			return swaps, matrixErrorf(opRef, ErrZeroPivot)
		}

		// Eliminate below the pivot; snap sub-tolerance residues to zero.
		for r = row + 1; r < d.rows; r++ {
			entry = d.data[r*d.cols+col]
			if entry == 0 {
				continue // nothing to eliminate
			}
			factor = entry / pivot
			d.data[r*d.cols+col] = 0 // eliminated by construction
			for c = col + 1; c < d.cols; c++ {
				res = d.data[r*d.cols+c] - factor*d.data[row*d.cols+c]
				if math.Abs(res) < zeroTol {
					res = 0 // snap numeric dust to exact zero
				}
				d.data[r*d.cols+c] = res
			}
		}

		row++ // pivot placed: advance both indices (col via the loop)
	}

	return swaps, nil
}

// swapRows exchanges rows a and b of d in place. O(cols).
func swapRows(d *Dense, a, b int) {
	rowA := d.data[a*d.cols : (a+1)*d.cols]
	rowB := d.data[b*d.cols : (b+1)*d.cols]
	for j := range rowA {
		rowA[j], rowB[j] = rowB[j], rowA[j]
	}
}

// rrefInPlace back-substitutes a matrix already in row echelon form:
// every pivot row is scaled so the pivot becomes exactly 1, then the pivot's
// column is cleared in all rows ABOVE it (elimination already zeroed below).
func rrefInPlace(d *Dense) {
	var (
		row, r, c int
		pivotCol  int
		pivot     float64
		factor    float64
	)
	for row = 0; row < d.rows; row++ {
		// Locate the leading nonzero entry of this row (left-to-right scan).
		pivotCol = -1
		for c = 0; c < d.cols; c++ {
			if d.data[row*d.cols+c] != 0 {
				pivotCol = c
				break
			}
		}
		if pivotCol < 0 {
			continue // zero row: no pivot to normalize
		}

		// Scale the pivot row so the pivot becomes exactly 1.
		pivot = d.data[row*d.cols+pivotCol]
		d.data[row*d.cols+pivotCol] = 1
		for c = pivotCol + 1; c < d.cols; c++ {
			d.data[row*d.cols+c] /= pivot
		}

		// Clear the pivot column in every row above.
		for r = 0; r < row; r++ {
			factor = d.data[r*d.cols+pivotCol]
			if factor == 0 {
				continue
			}
			d.data[r*d.cols+pivotCol] = 0
			for c = pivotCol + 1; c < d.cols; c++ {
				d.data[r*d.cols+c] -= factor * d.data[row*d.cols+c]
			}
		}
	}
}

// Ref returns the row echelon form of m and the number of row swaps used.
// Implementation:
//   - Stage 1: serve from the cache when a REF produced under the same
//     pivoting mode is present (the swap count rides along for free).
//   - Stage 2: otherwise reduce a clone via Gaussian elimination, cache the
//     result and hand the caller an independent copy.
//
// Behavior highlights:
//   - The receiver is never modified; cached forms are private copies, so the
//     returned matrix is always safe to mutate.
//
// Inputs:
//   - opts: WithPivoting/WithoutPivoting, WithZeroTolerance.
//
// Returns:
//   - *Dense: the echelon form; int: row swaps performed.
//
// Errors:
//   - ErrZeroPivot when pivoting is disabled and a zero pivot blocks progress.
//
// Complexity:
//   - Time O(r*c*min(r,c)) (O(n³) square), Space O(r*c).
func (m *Dense) Ref(opts ...Option) (*Dense, int, error) {
	o := gatherOptions(opts...)

	// Cache hit requires the same pivoting mode; zero tolerance is a numeric
	// policy, not an identity — first computation wins, as with the source
	// contents themselves.
	if m.cache.ref != nil && m.cache.refPivoted == o.pivoting {
		return m.cache.ref.Clone(), m.cache.refSwaps, nil
	}

	work := m.Clone()
	swaps, err := refInPlace(work, o.pivoting, o.zeroTol)
	if err != nil {
		return nil, swaps, err
	}
	m.storeRef(work, swaps, o.pivoting)

	return work.Clone(), swaps, nil
}

// MRef reduces the receiver to row echelon form in place and returns the
// number of row swaps performed. The cache is invalidated (this is a
// mutation: the contents become the echelon form).
// Errors: ErrZeroPivot as in Ref; on error the receiver holds the partially
// reduced state, mirroring in-place elimination semantics.
// Complexity: Time O(r*c*min(r,c)), Space O(1) extra.
func (m *Dense) MRef(opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	swaps, err := refInPlace(m, o.pivoting, o.zeroTol)
	m.invalidate()

	return swaps, err
}

// Rref returns the reduced row echelon form of m.
// Implementation:
//   - Stage 1: serve a cached RREF if present.
//   - Stage 2: otherwise obtain a REF — reusing any cached one, else computing
//     with pivoting enabled — then back-substitute: scale pivots to exactly 1
//     and clear each pivot column above.
//
// Errors:
//   - none in practice: the pivoted elimination cannot hit ErrZeroPivot.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func (m *Dense) Rref(opts ...Option) (*Dense, error) {
	if m.cache.rref != nil {
		return m.cache.rref.Clone(), nil
	}

	o := gatherOptions(opts...)

	// Reuse whichever REF is cached; otherwise compute one with pivoting on.
	var work *Dense
	if m.cache.ref != nil {
		work = m.cache.ref.Clone()
	} else {
		work = m.Clone()
		swaps, err := refInPlace(work, true, o.zeroTol)
		if err != nil {
			return nil, matrixErrorf(opRref, err) // unreachable with pivoting
		}
		m.storeRef(work.Clone(), swaps, true)
	}

	rrefInPlace(work)
	m.storeRref(work)

	return work.Clone(), nil
}

// MRref reduces the receiver to reduced row echelon form in place and
// invalidates the cache.
// Complexity: Time O(r*c*min(r,c)), Space O(1) extra.
func (m *Dense) MRref(opts ...Option) error {
	o := gatherOptions(opts...)
	if _, err := refInPlace(m, true, o.zeroTol); err != nil {
		m.invalidate()

		return matrixErrorf(opRref, err) // unreachable with pivoting
	}
	rrefInPlace(m)
	m.invalidate()

	return nil
}

// Det returns the determinant of a square matrix.
// Implementation:
//   - Stage 1: serve the cached value when present; reject non-square input.
//   - Stage 2: closed cofactor forms for 1×1, 2×2 and 3×3 (speed and
//     numerical stability).
//   - Stage 3: larger matrices reduce a clone WITHOUT pivoting and multiply
//     the diagonal, applying the sign factor (-1)^swaps. A zero-pivot failure
//     on this path means linearly dependent rows — the determinant is then
//     exactly 0 by definition, and that value is cached like any other.
//
// Errors:
//   - ErrNonSquare — the only non-zero-result failure mode.
//
// Complexity:
//   - Time O(1) for n ≤ 3, O(n³) above; Space O(n²) for the working clone.
func (m *Dense) Det() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if m.cache.det != nil {
		return *m.cache.det, nil
	}

	var det float64
	switch m.rows {
	case 1:
		det = m.data[0]
	case 2:
		// | a b |
		// | c d |  = ad - bc
		det = m.data[0]*m.data[3] - m.data[1]*m.data[2]
	case 3:
		// Direct cofactor expansion along the first row.
		det = m.data[0]*(m.data[4]*m.data[8]-m.data[5]*m.data[7]) -
			m.data[1]*(m.data[3]*m.data[8]-m.data[5]*m.data[6]) +
			m.data[2]*(m.data[3]*m.data[7]-m.data[4]*m.data[6])
	default:
		work := m.Clone()
		swaps, err := refInPlace(work, false, DefaultZeroTolerance)
		if err != nil {
			// Zero pivot under the no-swap strategy: rows are linearly
			// dependent, so the determinant is exactly zero. Deliberate
			// internal recovery, not an error.
			det = 0
		} else {
			det = 1
			for i := 0; i < work.rows; i++ {
				det *= work.data[i*work.cols+i] // product of the diagonal
			}
			if swaps%2 != 0 {
				det = -det // sign factor (-1)^swaps
			}
		}
	}
	m.storeDet(det)

	return det, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
// Errors: ErrNonSquare.
// Complexity: O(n); cached afterwards.
func (m *Dense) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	if m.cache.trace != nil {
		return *m.cache.trace, nil
	}

	var tr float64
	for i := 0; i < m.rows; i++ {
		tr += m.data[i*m.cols+i]
	}
	m.storeTrace(tr)

	return tr, nil
}
