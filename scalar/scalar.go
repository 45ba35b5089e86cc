// SPDX-License-Identifier: MIT

// Package scalar: tolerance-aware comparisons and integer arithmetic used as
// collaborators by matrix, vector and rational. All helpers are pure and O(1)
// (GCD is O(log min(a,b))) and never panic on user input.

package scalar

import "math"

// DefaultTolerance is the package-wide default for zero/equality tests.
// Matrix comparison and elimination default their tolerances to this value.
const DefaultTolerance = 1e-8

// Three-way sign results; kept as named constants to avoid magic numbers.
const (
	SignNegative = -1 // x < 0
	SignZero     = 0  // x == 0
	SignPositive = 1  // x > 0
)

// IsZero reports whether |x| ≤ tol.
// Complexity: O(1).
func IsZero(x, tol float64) bool {
	return math.Abs(x) <= tol // symmetric band around zero
}

// IsNotZero reports whether |x| > tol; the exact negation of IsZero.
// Complexity: O(1).
func IsNotZero(x, tol float64) bool {
	return !IsZero(x, tol)
}

// AreEqual reports whether |a-b| ≤ tol.
// Implementation:
//   - Stage 1: reduce to a zero test on the difference.
//
// Behavior highlights:
//   - Symmetric in a and b; AreEqual(a, b, 0) is exact float equality.
//
// Complexity:
//   - Time O(1), Space O(1).
func AreEqual(a, b, tol float64) bool {
	return IsZero(a-b, tol) // |a-b| ≤ tol
}

// Sign classifies x into {-1, 0, +1} by exact comparison against zero.
// NaN classifies as zero (it compares false against everything).
// Complexity: O(1).
func Sign(x float64) int {
	if x > 0 {
		return SignPositive
	}
	if x < 0 {
		return SignNegative
	}

	return SignZero
}

// SignInt classifies an integer into {-1, 0, +1}.
// Complexity: O(1).
func SignInt(x int) int {
	if x > 0 {
		return SignPositive
	}
	if x < 0 {
		return SignNegative
	}

	return SignZero
}

// GCD computes the greatest common divisor of a and b via the recursive
// Euclidean algorithm: GCD(a, 0) = a, GCD(a, b) = GCD(b, a mod b).
// The result carries the sign of the surviving operand; callers needing a
// non-negative divisor take the absolute value (rational does exactly that).
// Complexity: O(log min(|a|,|b|)) recursion depth.
func GCD(a, b int) int {
	if b == 0 {
		return a // base case: GCD(a, 0) = a
	}

	return GCD(b, a%b) // Euclidean step
}
