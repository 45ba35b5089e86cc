// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/bounds checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Literal validation runs O(r*c) once per construction.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Returns wrapped ErrNonSquare otherwise. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape — Composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil — Composite: NotNil → Square.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquareNonNil(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// validateIndex checks 0 ≤ row < m.rows and 0 ≤ col < m.cols.
// Returns plain ErrOutOfRange (callers attach coordinates). Complexity: O(1).
func validateIndex(m *Dense, row, col int) error {
	if row < 0 || row >= m.rows {
		return ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}

// validateLiteral checks a nested literal for emptiness, jagged rows and —
// when the finite-value policy is active — NaN/±Inf elements, identifying the
// offending coordinate in the wrapped error.
// Errors: ErrEmpty, ErrJagged, ErrNaNInf. Complexity: O(r*c).
func validateLiteral(data [][]float64, validateNaNInf bool) error {
	// An empty outer slice has no shape at all.
	if len(data) == 0 {
		return validatorErrorf("validateLiteral", ErrEmpty)
	}

	width := len(data[0])
	var i, j int
	for i = range data {
		// Every row must be non-empty and match the first row's width.
		if len(data[i]) == 0 {
			return fmt.Errorf("validateLiteral: row %d: %w", i, ErrEmpty)
		}
		if len(data[i]) != width {
			return fmt.Errorf("validateLiteral: row %d: %w", i, ErrJagged)
		}
		// Element policy: finite values only, unless disabled.
		if validateNaNInf {
			for j = range data[i] {
				if math.IsNaN(data[i][j]) || math.IsInf(data[i][j], 0) {
					return fmt.Errorf("validateLiteral: (%d,%d)=%v: %w", i, j, data[i][j], ErrNaNInf)
				}
			}
		}
	}

	return nil
}
