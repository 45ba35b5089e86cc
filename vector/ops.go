// SPDX-License-Identifier: MIT

// Package vector - arithmetic, products, joins and orientation changes.
//
// Shape-preserving operations delegate straight to the matrix kernels and
// return *Vector. Operations whose result shape is data-dependent (Mul and
// the joins) return *matrix.Dense in their non-mutating form; the mutating
// M-forms keep the receiver a vector or fail with ErrResultNotVector.

package vector

import (
	"github.com/katalvlaran/linalg/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opDot        = "Dot"
	opCross      = "Cross"
	opJoinRight  = "JoinRight"
	opJoinBottom = "JoinBottom"
)

// Add returns a new vector with the element-wise sum v + b. Operands must
// have identical shape (size AND orientation).
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n).
func (v *Vector) Add(b *Vector) (*Vector, error) { return v.Clone().MAdd(b) }

// MAdd adds b into the receiver in place and returns it.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n).
func (v *Vector) MAdd(b *Vector) (*Vector, error) {
	if b == nil {
		return nil, vectorErrorf(opAdd, matrix.ErrNilMatrix)
	}
	if _, err := v.mat.MAdd(b.mat); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}

	return v, nil
}

// Sub returns a new vector with the element-wise difference v - b.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n).
func (v *Vector) Sub(b *Vector) (*Vector, error) { return v.Clone().MSub(b) }

// MSub subtracts b from the receiver in place and returns it.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n).
func (v *Vector) MSub(b *Vector) (*Vector, error) {
	if b == nil {
		return nil, vectorErrorf(opSub, matrix.ErrNilMatrix)
	}
	if _, err := v.mat.MSub(b.mat); err != nil {
		return nil, vectorErrorf(opSub, err)
	}

	return v, nil
}

// Scale returns a new vector with every element multiplied by alpha.
// Complexity: O(n).
func (v *Vector) Scale(alpha float64) *Vector { return v.Clone().MScale(alpha) }

// MScale multiplies every element by alpha in place and returns the receiver.
// Complexity: O(n).
func (v *Vector) MScale(alpha float64) *Vector {
	v.mat.MScale(alpha)

	return v
}

// Negate returns a new vector with every element's sign flipped.
func (v *Vector) Negate() *Vector { return v.Scale(-1) }

// MNegate flips every element's sign in place and returns the receiver.
func (v *Vector) MNegate() *Vector { return v.MScale(-1) }

// Apply returns a new vector with fn applied to every element.
// Complexity: O(n) plus fn's cost.
func (v *Vector) Apply(fn func(x float64) float64) *Vector { return v.Clone().MApply(fn) }

// MApply applies fn to every element in place and returns the receiver.
func (v *Vector) MApply(fn func(x float64) float64) *Vector {
	v.mat.MApply(fn)

	return v
}

// Equal reports whether b has the same shape (size and orientation) and every
// corresponding pair of elements lies within tol. Never fails.
// Complexity: O(n).
func (v *Vector) Equal(b *Vector, tol float64) bool {
	if b == nil {
		return false
	}

	return v.mat.Equal(b.mat, tol)
}

// EqualExact reports whether b has the same shape and bitwise-equal elements.
// Complexity: O(n).
func (v *Vector) EqualExact(b *Vector) bool {
	if b == nil {
		return false
	}

	return v.mat.EqualExact(b.mat)
}

// Mul returns the matrix product v × b under ordinary dimension rules.
// The result shape is data-dependent (an outer product of a column by a row
// is a full matrix), so the general type is returned; use FromMatrix to
// narrow a vector-shaped result back to a Vector.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n·m).
func (v *Vector) Mul(b *Vector) (*matrix.Dense, error) {
	if b == nil {
		return nil, vectorErrorf(opMul, matrix.ErrNilMatrix)
	}
	out, err := v.mat.Mul(b.mat)
	if err != nil {
		return nil, vectorErrorf(opMul, err)
	}

	return out, nil
}

// MMul replaces the receiver with the product v × b when that product is
// still a vector, re-inferring the orientation from the result shape.
// Mutation cannot change the receiver's kind: a non-vector product fails
// with ErrResultNotVector and leaves the receiver untouched.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// ErrResultNotVector.
// Complexity: O(n·m).
func (v *Vector) MMul(b *Vector) (*Vector, error) {
	out, err := v.Mul(b)
	if err != nil {
		return nil, err
	}
	if !isVectorShape(out.Rows(), out.Cols()) {
		return nil, vectorErrorf(opMul, ErrResultNotVector)
	}
	v.mat = out
	v.orient = orientationOf(out.Rows(), out.Cols())

	return v, nil
}

// Dot returns the sum of element-wise products of two equal-size vectors,
// read as flat sequences regardless of orientation.
// Errors: matrix.ErrNilMatrix; matrix.ErrDimensionMismatch when sizes differ.
// Complexity: O(n).
func (v *Vector) Dot(b *Vector) (float64, error) {
	if b == nil {
		return 0, vectorErrorf(opDot, matrix.ErrNilMatrix)
	}
	if v.Size() != b.Size() {
		return 0, vectorErrorf(opDot, matrix.ErrDimensionMismatch)
	}

	va, vb := v.ToSlice(), b.ToSlice()
	var sum float64
	for i := range va {
		sum += va[i] * vb[i]
	}

	return sum, nil
}

// Cross returns the 3D cross product v × b. Both operands must have exactly
// 3 elements; orientation is ignored for the computation and the result
// inherits the receiver's orientation.
// Errors: matrix.ErrNilMatrix; ErrCrossSize for any size other than 3.
// Complexity: O(1).
func (v *Vector) Cross(b *Vector) (*Vector, error) {
	if b == nil {
		return nil, vectorErrorf(opCross, matrix.ErrNilMatrix)
	}
	if v.Size() != 3 || b.Size() != 3 {
		return nil, vectorErrorf(opCross, ErrCrossSize)
	}

	a, c := v.ToSlice(), b.ToSlice()
	out := []float64{
		a[1]*c[2] - a[2]*c[1],
		a[2]*c[0] - a[0]*c[2],
		a[0]*c[1] - a[1]*c[0],
	}

	return FromSlice(out, v.orient)
}

// JoinRight returns b's columns appended to the right of v. Two row vectors
// stay a (wider) row; any other combination is a general matrix, hence the
// *matrix.Dense return (narrow with FromMatrix when applicable).
// Errors: matrix.ErrNilMatrix; matrix.ErrDimensionMismatch when row counts
// differ.
// Complexity: O(n+m).
func (v *Vector) JoinRight(b *Vector) (*matrix.Dense, error) {
	if b == nil {
		return nil, vectorErrorf(opJoinRight, matrix.ErrNilMatrix)
	}
	out, err := v.mat.JoinRight(b.mat)
	if err != nil {
		return nil, vectorErrorf(opJoinRight, err)
	}

	return out, nil
}

// MJoinRight appends b's columns to the receiver in place. Only row vectors
// can absorb a rightward join and remain vectors; a column receiver fails
// with ErrResultNotVector untouched.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// ErrResultNotVector.
// Complexity: O(n+m).
func (v *Vector) MJoinRight(b *Vector) (*Vector, error) {
	out, err := v.JoinRight(b)
	if err != nil {
		return nil, err
	}
	if !isVectorShape(out.Rows(), out.Cols()) {
		return nil, vectorErrorf(opJoinRight, ErrResultNotVector)
	}
	v.mat = out
	v.orient = orientationOf(out.Rows(), out.Cols())

	return v, nil
}

// JoinBottom returns b's rows appended below v. Two column vectors stay a
// (taller) column; any other combination is a general matrix.
// Errors: matrix.ErrNilMatrix; matrix.ErrDimensionMismatch when column
// counts differ.
// Complexity: O(n+m).
func (v *Vector) JoinBottom(b *Vector) (*matrix.Dense, error) {
	if b == nil {
		return nil, vectorErrorf(opJoinBottom, matrix.ErrNilMatrix)
	}
	out, err := v.mat.JoinBottom(b.mat)
	if err != nil {
		return nil, vectorErrorf(opJoinBottom, err)
	}

	return out, nil
}

// MJoinBottom appends b's rows below the receiver in place. Only column
// vectors can absorb a downward join and remain vectors.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// ErrResultNotVector.
// Complexity: O(n+m).
func (v *Vector) MJoinBottom(b *Vector) (*Vector, error) {
	out, err := v.JoinBottom(b)
	if err != nil {
		return nil, err
	}
	if !isVectorShape(out.Rows(), out.Cols()) {
		return nil, vectorErrorf(opJoinBottom, ErrResultNotVector)
	}
	v.mat = out
	v.orient = orientationOf(out.Rows(), out.Cols())

	return v, nil
}

// Transpose returns a new vector with the opposite orientation. A complete
// no-op for size-1 vectors, which stay Column by convention.
// Complexity: O(n) for the clone, O(1) data movement.
func (v *Vector) Transpose() *Vector { return v.Clone().MTranspose() }

// MTranspose flips the receiver's orientation in place, updating both the
// underlying dimensions and the stored orientation tag, and returns it.
// Complexity: O(1) data movement (vector-shaped transpose reshapes only).
func (v *Vector) MTranspose() *Vector {
	if v.Size() == 1 {
		return v // 1×1 stays a Column
	}
	v.mat.MTranspose()
	if v.orient == Row {
		v.orient = Column
	} else {
		v.orient = Row
	}

	return v
}
