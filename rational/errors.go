// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// rational package. Constructors MUST return these sentinels and tests MUST
// check them via errors.Is. No code path panics on user input.

package rational

import "errors"

var (
	// ErrZeroDenominator is returned when a fraction is constructed with a
	// zero denominator; the value is mathematically undefined.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrParse indicates malformed textual input to FromString: extra tokens,
	// a missing denominator after a slash, a negative denominator, or
	// non-numeric parts.
	ErrParse = errors.New("rational: unparsable input")
)
