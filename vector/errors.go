// SPDX-License-Identifier: MIT

// Package vector - sentinel errors.
//
// Shape and bounds failures propagate the matrix package's sentinels
// (matrix.ErrDimensionMismatch, matrix.ErrOutOfRange, ...); the sentinels
// below cover the vector-specific failure kinds. Match with errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrNotVector indicates input whose shape is not a vector: neither the
	// row count nor the column count equals 1.
	ErrNotVector = errors.New("vector: shape is not a vector (no dimension equals 1)")

	// ErrResultNotVector indicates a mutating operation whose result shape
	// would break the vector constraint. Mutation cannot change the
	// receiver's kind; use the non-mutating form, which returns a matrix.
	ErrResultNotVector = errors.New("vector: operation result is not a vector")

	// ErrCrossSize indicates a cross product on vectors whose size is not 3.
	ErrCrossSize = errors.New("vector: cross product requires 3-element vectors")
)

// vectorErrorf wraps err with an operation tag, preserving the sentinel via
// %w so errors.Is keeps matching. Call only with err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("vector.%s: %w", tag, err)
}
