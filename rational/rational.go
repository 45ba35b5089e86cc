// SPDX-License-Identifier: MIT

// Package rational - mixed-number normalization core.
//
// Purpose:
//   - Keep every constructed value in one canonical shape so equality is
//     structural and String/FromString round-trip losslessly.
//   - Normalization is the single non-trivial algorithm here; every
//     constructor funnels through it.

package rational

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/scalar"
)

// DefaultPrecision bounds the denominator search in FromFloat: candidates run
// from MinSearchDenominator up to round(1/precision).
const DefaultPrecision = 1e-3

// MinSearchDenominator is the first candidate denominator tried by FromFloat
// (1 is covered by the whole-part split, so the search starts at 2).
const MinSearchDenominator = 2

// Operation name constants for unified error wrapping.
const (
	opNew        = "New"
	opFromString = "FromString"
)

// rationalErrorf wraps err with an operation tag, preserving the sentinel
// for errors.Is at call sites. Call only with err != nil.
func rationalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Rational is an immutable exact fraction in mixed-number form.
// The zero value is the canonical representation of 0 (0 + 0/1 reads as 0/1
// internally; Denominator() reports 1 for it).
type Rational struct {
	whole int // integer part; sign-aligned with num when both nonzero
	num   int // proper-fraction numerator, |num| < den after normalization
	den   int // denominator, > 0; forced to 1 when num == 0
}

// New constructs a normalized Rational from a whole part and a fraction.
// Implementation:
//   - Stage 1: reject den == 0 (ErrZeroDenominator).
//   - Stage 2: normalize — sign transfer, whole-part extraction, sign-alignment
//     borrow, GCD reduction, canonical zero fraction, ±1/1 fold.
//
// Behavior highlights:
//   - New(1, 4, 2) → 3; New(-1, 1, 2) → -1/2 (borrow aligns the signs).
//   - The residual ±1/1 fold keeps integers fully in the whole part, so
//     New(0, 2, 2) → 1 exactly; String never prints "1/1".
//
// Inputs:
//   - whole: integer part (any sign).
//   - num, den: fraction; den may be negative (sign moves to num).
//
// Returns:
//   - Rational: canonical value.
//
// Errors:
//   - ErrZeroDenominator when den == 0.
//
// Complexity:
//   - Time O(log min(|num|, den)) for the GCD, Space O(1).
func New(whole, num, den int) (Rational, error) {
	// Reject the undefined case before any arithmetic.
	if den == 0 {
		return Rational{}, rationalErrorf(opNew, ErrZeroDenominator)
	}

	// Move the denominator sign onto the numerator: den > 0 from here on.
	if den < 0 {
		num, den = -num, -den
	}

	// Extract the whole part when the fraction is improper. Truncating
	// division keeps the remainder's sign equal to the numerator's.
	if num > den || -num > den {
		whole += num / den
		num %= den
	}

	// Sign-alignment borrow: when whole and num carry opposite signs, move
	// one unit from the whole part into the fraction so both agree.
	if whole != 0 && num != 0 && scalar.SignInt(whole) != scalar.SignInt(num) {
		signBefore := scalar.SignInt(whole)
		whole -= signBefore
		if num < 0 {
			num = (den + num) * signBefore // den - |num|, num < 0
		} else {
			num = (den - num) * signBefore
		}
	}

	// Reduce to lowest terms; repeat until the divisor degenerates to 1.
	for num != 0 {
		g := scalar.GCD(num, den)
		if g < 0 {
			g = -g
		}
		if g == 1 {
			break
		}
		num /= g
		den /= g
	}

	// Canonical integer representation: zero fraction pins den to 1.
	if num == 0 {
		den = 1
	}

	// Fold a residual ±1/1 into the whole part (den == 1 implies num ∈ {-1,1}
	// after reduction; integers live entirely in whole).
	if den == 1 && num != 0 {
		whole += num
		num = 0
	}

	return Rational{whole: whole, num: num, den: den}, nil
}

// FromInt builds the Rational representing the integer n.
// Complexity: O(1).
func FromInt(n int) Rational {
	return Rational{whole: n, num: 0, den: 1}
}

// FromFloat approximates x as a Rational within the given precision.
// Implementation:
//   - Stage 1: split x into a truncated whole part and a fractional remainder.
//   - Stage 2: if the remainder is within precision of zero, return the whole
//     part alone; otherwise scan denominators d = 2..round(1/precision) for the
//     first d where frac*d is within precision of an integer.
//
// Behavior highlights:
//   - The search is bounded; when no denominator qualifies the result degrades
//     to the whole part alone. That fallback is a legitimate answer, not an
//     error — FromFloat never fails.
//
// Inputs:
//   - x: value to approximate; sign flows into whole and numerator.
//   - precision: search tolerance and bound; non-positive or non-finite values
//     fall back to DefaultPrecision.
//
// Returns:
//   - Rational: canonical approximation of x.
//
// Determinism:
//   - Fixed ascending denominator scan; first match wins.
//
// Complexity:
//   - Time O(1/precision) worst case, Space O(1).
func FromFloat(x float64, precision float64) Rational {
	// Normalize the search policy to a sane positive tolerance.
	if !(precision > 0) || math.IsInf(precision, 0) {
		precision = DefaultPrecision
	}

	// Split into truncated whole and remainder; both keep x's sign.
	whole := int(math.Trunc(x))
	frac := x - math.Trunc(x)

	// Remainder indistinguishable from zero: the integer alone suffices.
	if scalar.IsZero(frac, precision) {
		return FromInt(whole)
	}

	// Bounded denominator search: first d whose product lands on an integer.
	maxDen := int(math.Round(1 / precision))
	var scaled, nearest float64
	for d := MinSearchDenominator; d <= maxDen; d++ {
		scaled = frac * float64(d)
		nearest = math.Round(scaled)
		if scalar.AreEqual(scaled, nearest, precision) {
			r, err := New(whole, int(nearest), d)
			if err != nil {
				break // unreachable: d ≥ 2; degrade to whole-only below
			}

			return r
		}
	}

	// No candidate within the bound: degrade to the whole part only.
	return FromInt(whole)
}

// Whole returns the integer part.
func (r Rational) Whole() int { return r.whole }

// Numerator returns the proper-fraction numerator (sign-aligned with Whole).
func (r Rational) Numerator() int { return r.num }

// Denominator returns the positive denominator (1 for integer values).
func (r Rational) Denominator() int {
	if r.den == 0 {
		return 1 // zero value of the struct reads as canonical 0
	}

	return r.den
}

// Float64 converts to floating point: whole + num/den.
// Complexity: O(1).
func (r Rational) Float64() float64 {
	return float64(r.whole) + float64(r.num)/float64(r.Denominator())
}
