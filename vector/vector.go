// SPDX-License-Identifier: MIT

// Package vector - Vector type, construction, factories & accessors.

package vector

import (
	"math/rand"

	"github.com/katalvlaran/linalg/matrix"
)

// Orientation distinguishes row vectors (1×n) from column vectors (n×1).
type Orientation int

const (
	// Column is an n×1 vector. A 1×1 vector is a Column by convention.
	Column Orientation = iota
	// Row is a 1×n vector.
	Row
)

// String implements fmt.Stringer for diagnostics.
func (o Orientation) String() string {
	if o == Row {
		return "Row"
	}

	return "Column"
}

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxFromSlice  = "FromSlice"
	ctxFromMatrix = "FromMatrix"
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxSubvector  = "Subvector"
)

// Vector is a matrix constrained to exactly one row or one column.
// It composes a matrix.Dense with an Orientation tag; the Dense is private,
// so the shape invariant holds for the instance's whole lifetime.
//
// The zero value is not usable; construct via New, FromSlice, FromMatrix or
// a factory.
type Vector struct {
	mat    *matrix.Dense
	orient Orientation
}

// orientationOf infers the orientation from a vector-compatible shape.
// Ties (1×1) resolve to Column.
func orientationOf(rows, cols int) Orientation {
	if cols == 1 {
		return Column
	}

	return Row
}

// isVectorShape reports whether rows×cols satisfies the vector constraint.
func isVectorShape(rows, cols int) bool {
	return rows == 1 || cols == 1
}

// New constructs a Vector from a nested row-major literal.
// The literal must pass matrix validation AND have one dimension equal to 1.
// Errors: matrix.ErrEmpty, matrix.ErrJagged, matrix.ErrNaNInf; ErrNotVector
// for any other shape (a 2×2 literal is a matrix, not a vector).
// Complexity: O(n).
func New(data [][]float64, opts ...matrix.Option) (*Vector, error) {
	m, err := matrix.New(data, opts...)
	if err != nil {
		return nil, vectorErrorf(ctxNew, err)
	}
	if !isVectorShape(m.Rows(), m.Cols()) {
		return nil, vectorErrorf(ctxNew, ErrNotVector)
	}

	return &Vector{mat: m, orient: orientationOf(m.Rows(), m.Cols())}, nil
}

// FromSlice builds a Vector from a flat slice with the requested orientation.
// The slice is copied, never aliased.
// Errors: matrix.ErrEmpty for an empty slice; matrix.ErrNaNInf under the
// finite-value policy.
// Complexity: O(n).
func FromSlice(values []float64, orient Orientation, opts ...matrix.Option) (*Vector, error) {
	if len(values) == 0 {
		return nil, vectorErrorf(ctxFromSlice, matrix.ErrEmpty)
	}

	var data [][]float64
	if orient == Row {
		row := make([]float64, len(values))
		copy(row, values)
		data = [][]float64{row}
	} else {
		data = make([][]float64, len(values))
		for i, v := range values {
			data[i] = []float64{v}
		}
	}

	m, err := matrix.New(data, opts...)
	if err != nil {
		return nil, vectorErrorf(ctxFromSlice, err)
	}

	return &Vector{mat: m, orient: orient}, nil
}

// FromMatrix narrows a vector-shaped matrix into a Vector, copying the data.
// This is the inverse of the type promotion performed by Mul and the joins.
// Errors: matrix.ErrNilMatrix; ErrNotVector when neither dimension is 1.
// Complexity: O(n).
func FromMatrix(m *matrix.Dense) (*Vector, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, vectorErrorf(ctxFromMatrix, err)
	}
	if !isVectorShape(m.Rows(), m.Cols()) {
		return nil, vectorErrorf(ctxFromMatrix, ErrNotVector)
	}

	return &Vector{mat: m.Clone(), orient: orientationOf(m.Rows(), m.Cols())}, nil
}

// Fill returns a size-element vector of the given orientation with every
// element set to value.
// Errors: matrix.ErrInvalidDimensions if size <= 0.
// Complexity: O(n).
func Fill(size int, value float64, orient Orientation, opts ...matrix.Option) (*Vector, error) {
	m, err := fillFactory(size, orient, func(rows, cols int) (*matrix.Dense, error) {
		return matrix.Fill(rows, cols, value, opts...)
	})
	if err != nil {
		return nil, err
	}

	return &Vector{mat: m, orient: orient}, nil
}

// Random returns a size-element vector of uniform floats in [min, max).
// rng is the injectable value source; nil selects the matrix package fallback.
// Errors: matrix.ErrInvalidDimensions, matrix.ErrBadRange.
// Complexity: O(n).
func Random(size int, min, max float64, orient Orientation, rng *rand.Rand, opts ...matrix.Option) (*Vector, error) {
	m, err := fillFactory(size, orient, func(rows, cols int) (*matrix.Dense, error) {
		return matrix.Random(rows, cols, min, max, rng, opts...)
	})
	if err != nil {
		return nil, err
	}

	return &Vector{mat: m, orient: orient}, nil
}

// RandomInt returns a size-element vector of uniform integers in [min, max],
// stored as float64 values.
// Errors: matrix.ErrInvalidDimensions, matrix.ErrBadRange.
// Complexity: O(n).
func RandomInt(size, min, max int, orient Orientation, rng *rand.Rand, opts ...matrix.Option) (*Vector, error) {
	m, err := fillFactory(size, orient, func(rows, cols int) (*matrix.Dense, error) {
		return matrix.RandomInt(rows, cols, min, max, rng, opts...)
	})
	if err != nil {
		return nil, err
	}

	return &Vector{mat: m, orient: orient}, nil
}

// fillFactory maps (size, orientation) onto the matrix factory's (rows, cols).
func fillFactory(size int, orient Orientation, build func(rows, cols int) (*matrix.Dense, error)) (*matrix.Dense, error) {
	if orient == Row {
		return build(1, size)
	}

	return build(size, 1)
}

// Size returns the number of elements. Complexity: O(1).
func (v *Vector) Size() int { return v.mat.Size() }

// Rows returns the underlying row count. Complexity: O(1).
func (v *Vector) Rows() int { return v.mat.Rows() }

// Cols returns the underlying column count. Complexity: O(1).
func (v *Vector) Cols() int { return v.mat.Cols() }

// Orientation returns Row or Column. Complexity: O(1).
func (v *Vector) Orientation() Orientation { return v.orient }

// index translates a logical position into the underlying (row, col) pair.
func (v *Vector) index(i int) (int, int) {
	if v.orient == Row {
		return 0, i
	}

	return i, 0
}

// At retrieves the element at logical index i.
// Errors: matrix.ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	r, c := v.index(i)
	x, err := v.mat.At(r, c)
	if err != nil {
		return 0, vectorErrorf(ctxAt, err)
	}

	return x, nil
}

// Set assigns x at logical index i.
// Errors: matrix.ErrOutOfRange, matrix.ErrNaNInf.
// Complexity: O(1).
func (v *Vector) Set(i int, x float64) error {
	r, c := v.index(i)
	if err := v.mat.Set(r, c, x); err != nil {
		return vectorErrorf(ctxSet, err)
	}

	return nil
}

// IsSet reports whether logical index i lies inside the vector.
// Complexity: O(1).
func (v *Vector) IsSet(i int) bool {
	r, c := v.index(i)

	return v.mat.IsSet(r, c)
}

// Remove always fails: elements cannot be individually deleted.
// Errors: matrix.ErrRemoveUnsupported.
func (v *Vector) Remove(i int) error {
	r, c := v.index(i)

	return v.mat.Remove(r, c)
}

// Clone returns a deep copy. Complexity: O(n).
func (v *Vector) Clone() *Vector {
	return &Vector{mat: v.mat.Clone(), orient: v.orient}
}

// ToMatrix returns a detached matrix.Dense copy of the contents. The result
// shares no storage with the vector, so mutating it cannot break the vector
// shape invariant.
// Complexity: O(n).
func (v *Vector) ToMatrix() *matrix.Dense { return v.mat.Clone() }

// ToSlice returns the elements as a flat slice regardless of orientation.
// Complexity: O(n).
func (v *Vector) ToSlice() []float64 {
	out := make([]float64, v.Size())
	if v.orient == Row {
		copy(out, v.mat.ToArray()[0])

		return out
	}
	for i, row := range v.mat.ToArray() {
		out[i] = row[0]
	}

	return out
}

// String implements fmt.Stringer with the matrix row-per-line rendering.
func (v *Vector) String() string { return v.mat.String() }

// Subvector extracts a contiguous sub-range of length elements starting at
// start along the vector's long axis.
// Errors: matrix.ErrOutOfRange for a negative start, non-positive length, or
// a range exceeding the vector's size.
// Complexity: O(length).
func (v *Vector) Subvector(start, length int) (*Vector, error) {
	var sub *matrix.Dense
	var err error
	if v.orient == Row {
		sub, err = v.mat.Submatrix(0, start, 1, length)
	} else {
		sub, err = v.mat.Submatrix(start, 0, length, 1)
	}
	if err != nil {
		return nil, vectorErrorf(ctxSubvector, err)
	}

	return &Vector{mat: sub, orient: v.orient}, nil
}
