// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrEmpty is returned when a literal has no rows or contains an empty row.
	ErrEmpty = errors.New("matrix: empty matrix literal")

	// ErrJagged is returned when rows of a literal differ in length.
	ErrJagged = errors.New("matrix: jagged rows")

	// ErrNaNInf signals a NaN or ±Inf value where the finite-value policy is
	// active (construction, Set, ingestion of literals).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// (factories such as Fill, Identity, Random).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates an index (row or column) outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, Mul where a.Cols != b.Rows, or joins
	// on non-conforming edges.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Det, Trace).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrZeroPivot is the division-by-zero class: elimination hit an exactly
	// zero pivot while partial pivoting was disabled. Retry with pivoting or
	// accept singularity under the no-swap strategy.
	ErrZeroPivot = errors.New("matrix: zero pivot with pivoting disabled")

	// ErrBadRange indicates an inverted interval (min > max) for the Random
	// factories.
	ErrBadRange = errors.New("matrix: min exceeds max")

	// ErrRemoveUnsupported marks element removal, which a dense matrix cannot
	// support: every cell always holds a value.
	ErrRemoveUnsupported = errors.New("matrix: element removal is not supported")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
