// SPDX-License-Identifier: MIT

// Package rational - textual form.
//
// The format is the mixed-number convention used everywhere in this package:
// "[-]W [N/D]" or "[-]N/D", e.g. "3", "-1 1/3", "1/2", "0". String and
// FromString are exact inverses on canonical values.

package rational

import (
	"fmt"
	"strconv"
	"strings"
)

// Formatting literals; kept as constants for consistency with parsing.
const (
	fracSep  = "/" // numerator/denominator separator
	partsSep = " " // whole/fraction separator
	zeroText = "0" // canonical rendering of the zero value
)

// String renders the canonical mixed-number form.
// Implementation:
//   - Stage 1: print the whole part when nonzero, or "0" when the value is zero.
//   - Stage 2: append "|num|/den" when the fraction is nonzero; the sign is
//     already carried by a nonzero whole, or directly by num when whole == 0.
//
// Complexity: O(digits).
func (r Rational) String() string {
	den := r.Denominator()

	// Pure integer (including canonical zero).
	if r.num == 0 {
		return strconv.Itoa(r.whole)
	}

	// Fraction only: the numerator carries the sign itself.
	if r.whole == 0 {
		return strconv.Itoa(r.num) + fracSep + strconv.Itoa(den)
	}

	// Mixed number: sign lives on the whole part, fraction prints unsigned.
	n := r.num
	if n < 0 {
		n = -n
	}

	return strconv.Itoa(r.whole) + partsSep + strconv.Itoa(n) + fracSep + strconv.Itoa(den)
}

// FromString parses "[-]W [N/D]" or "[-]N/D" into a normalized Rational.
// Implementation:
//   - Stage 1: trim and split on whitespace; accept one or two tokens.
//   - Stage 2: classify each token (integer vs fraction), enforce a positive
//     denominator, and force the numerator negative when the whole part is.
//   - Stage 3: delegate to New for canonical normalization.
//
// Behavior highlights:
//   - "13 3/8" → 13 3/8; "-6/5" → -1 1/5 in mixed form (whole=-1, num=-1).
//   - A negative whole with a separate fraction forces the numerator's sign
//     to match: "-1 1/3" means -(1 + 1/3).
//
// Errors:
//   - ErrParse for extra tokens, missing denominator, negative denominator,
//     or non-numeric parts; ErrZeroDenominator for "N/0".
//
// Complexity: O(len(s)).
func FromString(s string) (Rational, error) {
	fields := strings.Fields(strings.TrimSpace(s))

	var (
		whole, num int
		den        = 1
		err        error
	)
	switch len(fields) {
	case 1:
		// Single token: either a bare integer or a bare fraction.
		if strings.Contains(fields[0], fracSep) {
			num, den, err = parseFraction(fields[0])
		} else {
			whole, err = parseInt(fields[0])
		}
		if err != nil {
			return Rational{}, err
		}
	case 2:
		// Two tokens: signed whole followed by an unsigned fraction.
		if whole, err = parseInt(fields[0]); err != nil {
			return Rational{}, err
		}
		if num, den, err = parseFraction(fields[1]); err != nil {
			return Rational{}, err
		}
		// Mixed-number convention: the fraction inherits a negative whole's sign.
		if whole < 0 && num > 0 {
			num = -num
		}
	default:
		// Empty input or extra tokens are malformed.
		return Rational{}, rationalErrorf(opFromString, ErrParse)
	}

	r, err := New(whole, num, den)
	if err != nil {
		return Rational{}, rationalErrorf(opFromString, err)
	}

	return r, nil
}

// parseInt parses a signed integer token, mapping failures to ErrParse.
func parseInt(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, rationalErrorf(opFromString, fmt.Errorf("%w: %q", ErrParse, tok))
	}

	return n, nil
}

// parseFraction parses "N/D", requiring exactly one slash, integer parts and
// a strictly positive denominator.
func parseFraction(tok string) (num, den int, err error) {
	parts := strings.Split(tok, fracSep)
	if len(parts) != 2 {
		return 0, 0, rationalErrorf(opFromString, fmt.Errorf("%w: %q", ErrParse, tok))
	}
	if num, err = parseInt(parts[0]); err != nil {
		return 0, 0, err
	}
	if den, err = parseInt(parts[1]); err != nil {
		return 0, 0, err
	}
	// A negative denominator in text is malformed (sign belongs up front);
	// zero is deferred to New so it surfaces as ErrZeroDenominator.
	if den < 0 {
		return 0, 0, rationalErrorf(opFromString, fmt.Errorf("%w: %q", ErrParse, tok))
	}

	return num, den, nil
}
