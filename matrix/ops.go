// SPDX-License-Identifier: MIT

// Package matrix - arithmetic, comparison, transpose and join kernels.
//
// Every operation comes in two forms:
//   - non-mutating: clone the receiver, delegate to the mutating kernel on the
//     clone, return it. The receiver (and its cache) is untouched.
//   - mutating (M-prefixed): operate in place, invalidate the cache, return
//     the receiver for chaining.
//
// All kernels use fixed loop orders on the flat row-major buffer; results are
// deterministic for identical inputs.

package matrix

import "github.com/katalvlaran/linalg/scalar"

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opJoinRight  = "JoinRight"
	opJoinBottom = "JoinBottom"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is keeps matching. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return validatorErrorf(tag, err)
}

// addSub computes in place m = m + sign*b for sign ∈ {+1, -1}.
func (m *Dense) addSub(b *Dense, sign float64, opTag string) (*Dense, error) {
	// Shapes must match exactly for element-wise arithmetic.
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	for idx := range m.data { // deterministic flat 0..n-1 walk
		m.data[idx] += sign * b.data[idx]
	}
	m.invalidate()

	return m, nil
}

// Add returns a new matrix with the element-wise sum m + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense) Add(b *Dense) (*Dense, error) { return m.Clone().MAdd(b) }

// MAdd adds b into the receiver in place and returns it.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense) MAdd(b *Dense) (*Dense, error) { return m.addSub(b, +1, opAdd) }

// Sub returns a new matrix with the element-wise difference m - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense) Sub(b *Dense) (*Dense, error) { return m.Clone().MSub(b) }

// MSub subtracts b from the receiver in place and returns it.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense) MSub(b *Dense) (*Dense, error) { return m.addSub(b, -1, opSub) }

// Mul returns the matrix product m × b as a fresh instance.
// Implementation:
//   - Stage 1: validate m.Cols == b.Rows.
//   - Stage 2: classic triple loop in i→k→j order with row-major strides,
//     skipping zero multipliers.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out := &Dense{rows: m.rows, cols: b.cols, size: m.rows * b.cols, data: make([]float64, m.rows*b.cols), opts: m.opts}
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 float64
	)
	for i = 0; i < m.rows; i++ {
		rowOffsetA = i * m.cols
		rowOffsetR = i * b.cols
		for k = 0; k < m.cols; k++ {
			av = m.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.cols
			for j = 0; j < b.cols; j++ {
				out.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return out, nil
}

// MMul replaces the receiver with the product m × b (shape becomes
// m.Rows × b.Cols) and returns it.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c) for the new buffer.
func (m *Dense) MMul(b *Dense) (*Dense, error) {
	out, err := m.Mul(b)
	if err != nil {
		return nil, err
	}
	// Adopt the product's shape and storage in place.
	m.rows, m.cols, m.size, m.data = out.rows, out.cols, out.size, out.data
	m.invalidate()

	return m, nil
}

// Scale returns a new matrix with every element multiplied by alpha.
// Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) *Dense { return m.Clone().MScale(alpha) }

// MScale multiplies every element by alpha in place and returns the receiver.
// Complexity: O(r*c).
func (m *Dense) MScale(alpha float64) *Dense {
	for idx := range m.data {
		m.data[idx] *= alpha
	}
	m.invalidate()

	return m
}

// Negate returns a new matrix with every element's sign flipped.
// Complexity: O(r*c).
func (m *Dense) Negate() *Dense { return m.Scale(-1) }

// MNegate flips every element's sign in place and returns the receiver.
// Complexity: O(r*c).
func (m *Dense) MNegate() *Dense { return m.MScale(-1) }

// Apply returns a new matrix with fn applied to every element.
// The finite-value policy is NOT re-checked on fn's results; callers mapping
// through non-finite values own the consequences.
// Complexity: O(r*c) plus fn's cost.
func (m *Dense) Apply(fn func(v float64) float64) *Dense { return m.Clone().MApply(fn) }

// MApply applies fn to every element in place and returns the receiver.
// Complexity: O(r*c) plus fn's cost.
func (m *Dense) MApply(fn func(v float64) float64) *Dense {
	for idx := range m.data {
		m.data[idx] = fn(m.data[idx])
	}
	m.invalidate()

	return m
}

// Equal reports whether b has the same shape and every corresponding pair of
// elements lies within tol. A nil b or a shape mismatch is simply "not equal"
// — comparisons never fail.
// Complexity: O(r*c).
func (m *Dense) Equal(b *Dense, tol float64) bool {
	if b == nil || m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for idx := range m.data {
		if !scalar.AreEqual(m.data[idx], b.data[idx], tol) {
			return false
		}
	}

	return true
}

// EqualExact reports whether b has the same shape and bitwise-equal elements
// (no tolerance).
// Complexity: O(r*c).
func (m *Dense) EqualExact(b *Dense) bool {
	if b == nil || m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// Transpose returns a new matrix with rows and columns swapped.
// Single-row and single-column shapes are special-cased: their flat buffer is
// already the transposed layout, so only the dimensions flip (no element
// shuffling).
// Complexity: O(r*c) general case; O(r*c) copy, O(1) shuffle for vectors.
func (m *Dense) Transpose() *Dense { return m.Clone().MTranspose() }

// MTranspose transposes the receiver in place (updating dimensions),
// invalidates the cache and returns the receiver.
// Complexity: O(r*c); O(1) data movement for single-row/column shapes.
func (m *Dense) MTranspose() *Dense {
	if m.rows == 1 || m.cols == 1 {
		// Vector-shaped: row-major 1×n and n×1 share the same flat layout.
		m.rows, m.cols = m.cols, m.rows
		m.invalidate()

		return m
	}

	// General case: rebuild into a fresh buffer with swapped strides.
	out := make([]float64, m.size)
	var i, j, baseSrc int
	for i = 0; i < m.rows; i++ {
		baseSrc = i * m.cols
		for j = 0; j < m.cols; j++ {
			out[j*m.rows+i] = m.data[baseSrc+j]
		}
	}
	m.rows, m.cols = m.cols, m.rows
	m.data = out
	m.invalidate()

	return m
}

// JoinRight returns a new matrix with b's columns appended to the right of m.
// Errors: ErrNilMatrix; ErrDimensionMismatch when row counts differ.
// Complexity: O(r*(c1+c2)).
func (m *Dense) JoinRight(b *Dense) (*Dense, error) { return m.Clone().MJoinRight(b) }

// MJoinRight appends b's columns to the receiver in place and returns it.
// Errors: ErrNilMatrix; ErrDimensionMismatch when row counts differ.
// Complexity: O(r*(c1+c2)).
func (m *Dense) MJoinRight(b *Dense) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opJoinRight, err)
	}
	if m.rows != b.rows {
		return nil, matrixErrorf(opJoinRight, ErrDimensionMismatch)
	}

	// Interleave rows of both operands into a wider buffer.
	cols := m.cols + b.cols
	out := make([]float64, m.rows*cols)
	for i := 0; i < m.rows; i++ {
		copy(out[i*cols:i*cols+m.cols], m.data[i*m.cols:(i+1)*m.cols])         // left block
		copy(out[i*cols+m.cols:(i+1)*cols], b.data[i*b.cols:(i+1)*b.cols])     // right block
	}
	m.cols, m.size, m.data = cols, m.rows*cols, out
	m.invalidate()

	return m, nil
}

// JoinBottom returns a new matrix with b's rows appended below m.
// Errors: ErrNilMatrix; ErrDimensionMismatch when column counts differ.
// Complexity: O((r1+r2)*c).
func (m *Dense) JoinBottom(b *Dense) (*Dense, error) { return m.Clone().MJoinBottom(b) }

// MJoinBottom appends b's rows below the receiver in place and returns it.
// Errors: ErrNilMatrix; ErrDimensionMismatch when column counts differ.
// Complexity: O((r1+r2)*c).
func (m *Dense) MJoinBottom(b *Dense) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opJoinBottom, err)
	}
	if m.cols != b.cols {
		return nil, matrixErrorf(opJoinBottom, ErrDimensionMismatch)
	}

	// Row-major layout makes a vertical join a single append.
	out := make([]float64, len(m.data)+len(b.data))
	copy(out, m.data)
	copy(out[len(m.data):], b.data)
	m.rows, m.size, m.data = m.rows+b.rows, len(out), out
	m.invalidate()

	return m, nil
}
