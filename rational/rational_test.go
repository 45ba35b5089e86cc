// Package rational_test contains unit tests for mixed-number normalization,
// parsing, formatting and float approximation.
package rational_test

import (
	"testing"

	"github.com/katalvlaran/linalg/rational"
	"github.com/stretchr/testify/require"
)

// requireParts asserts the canonical triple of a Rational.
func requireParts(t *testing.T, r rational.Rational, whole, num, den int) {
	t.Helper()
	require.Equal(t, whole, r.Whole())       // integer part
	require.Equal(t, num, r.Numerator())     // proper-fraction numerator
	require.Equal(t, den, r.Denominator())   // positive denominator
}

// TestNewZeroDenominator ensures the undefined case is rejected.
func TestNewZeroDenominator(t *testing.T) {
	_, err := rational.New(1, 1, 0)
	require.ErrorIs(t, err, rational.ErrZeroDenominator)
}

// TestNewWholeExtraction verifies improper fractions fold into the whole part.
func TestNewWholeExtraction(t *testing.T) {
	r, err := rational.New(1, 4, 2) // 1 + 4/2 = 3 exactly
	require.NoError(t, err)
	requireParts(t, r, 3, 0, 1)

	r, err = rational.New(0, 7, 2) // 7/2 = 3 1/2
	require.NoError(t, err)
	requireParts(t, r, 3, 1, 2)

	r, err = rational.New(0, -7, 2) // -7/2 = -3 1/2 in mixed form
	require.NoError(t, err)
	requireParts(t, r, -3, -1, 2)
}

// TestNewSignAlignmentBorrow verifies the borrow when whole and numerator
// carry opposite signs.
func TestNewSignAlignmentBorrow(t *testing.T) {
	r, err := rational.New(-1, 1, 2) // -1 + 1/2 = -1/2
	require.NoError(t, err)
	requireParts(t, r, 0, -1, 2)

	r, err = rational.New(1, -1, 2) // 1 - 1/2 = 1/2
	require.NoError(t, err)
	requireParts(t, r, 0, 1, 2)

	r, err = rational.New(-2, 1, 4) // -2 + 1/4 = -1 3/4
	require.NoError(t, err)
	requireParts(t, r, -1, -3, 4)
}

// TestNewNegativeDenominator checks the sign transfer onto the numerator.
func TestNewNegativeDenominator(t *testing.T) {
	r, err := rational.New(0, 1, -2) // 1/-2 = -1/2
	require.NoError(t, err)
	requireParts(t, r, 0, -1, 2)

	r, err = rational.New(0, -1, -2) // -1/-2 = 1/2
	require.NoError(t, err)
	requireParts(t, r, 0, 1, 2)
}

// TestNewReduction checks GCD reduction to lowest terms.
func TestNewReduction(t *testing.T) {
	r, err := rational.New(0, 6, 8)
	require.NoError(t, err)
	requireParts(t, r, 0, 3, 4)

	r, err = rational.New(0, -10, 15)
	require.NoError(t, err)
	requireParts(t, r, 0, -2, 3)
}

// TestNewUnitFractionFold pins the ±1/1 fold into the whole part; integers
// never survive as 1/1 fractions.
func TestNewUnitFractionFold(t *testing.T) {
	r, err := rational.New(0, 2, 2) // 2/2 = 1
	require.NoError(t, err)
	requireParts(t, r, 1, 0, 1)

	r, err = rational.New(3, 5, 5) // 3 + 5/5 = 4
	require.NoError(t, err)
	requireParts(t, r, 4, 0, 1)

	r, err = rational.New(0, -4, 4) // -4/4 = -1
	require.NoError(t, err)
	requireParts(t, r, -1, 0, 1)
}

// TestFromInt checks the integer factory.
func TestFromInt(t *testing.T) {
	requireParts(t, rational.FromInt(-5), -5, 0, 1)
	requireParts(t, rational.FromInt(0), 0, 0, 1)
}

// TestFromFloat exercises the bounded denominator search and its fallback.
func TestFromFloat(t *testing.T) {
	requireParts(t, rational.FromFloat(0.5, 1e-3), 0, 1, 2)    // first hit at d=2
	requireParts(t, rational.FromFloat(0.25, 1e-3), 0, 1, 4)   // d=4
	requireParts(t, rational.FromFloat(2.75, 1e-3), 2, 3, 4)   // whole + fraction
	requireParts(t, rational.FromFloat(-1.5, 1e-3), -1, -1, 2) // sign-aligned
	requireParts(t, rational.FromFloat(3.0, 1e-3), 3, 0, 1)    // remainder ~ 0
	requireParts(t, rational.FromFloat(1.0/3.0, 1e-3), 0, 1, 3)
}

// TestFromFloatIntegerShortcut verifies the whole-only path for values whose
// remainder sits inside the precision band.
func TestFromFloatIntegerShortcut(t *testing.T) {
	requireParts(t, rational.FromFloat(7.0, 1e-3), 7, 0, 1)
	requireParts(t, rational.FromFloat(-4.0005, 1e-3), -4, 0, 1) // negative remainder in band
	requireParts(t, rational.FromFloat(6.9999, 1e-3), 7, 0, 1)   // 2/2 residue folds back to 7
}

// TestFloat64 checks the float conversion identity.
func TestFloat64(t *testing.T) {
	r, err := rational.New(2, 3, 4)
	require.NoError(t, err)
	require.InDelta(t, 2.75, r.Float64(), 1e-12)

	r, err = rational.New(-1, -1, 2)
	require.NoError(t, err)
	require.InDelta(t, -1.5, r.Float64(), 1e-12)

	require.Equal(t, 0.0, rational.Rational{}.Float64()) // zero value reads as 0
}

// TestFromString covers the documented grammar.
func TestFromString(t *testing.T) {
	r, err := rational.FromString("13 3/8")
	require.NoError(t, err)
	requireParts(t, r, 13, 3, 8)

	r, err = rational.FromString("-6/5")
	require.NoError(t, err)
	requireParts(t, r, -1, -1, 5)

	r, err = rational.FromString("-1 1/3") // fraction inherits the negative sign
	require.NoError(t, err)
	requireParts(t, r, -1, -1, 3)

	r, err = rational.FromString("  2  ") // whitespace is trimmed
	require.NoError(t, err)
	requireParts(t, r, 2, 0, 1)

	r, err = rational.FromString("0")
	require.NoError(t, err)
	requireParts(t, r, 0, 0, 1)
}

// TestFromStringMalformed enumerates rejection cases.
func TestFromStringMalformed(t *testing.T) {
	for _, in := range []string{
		"",        // empty
		"1 2 3",   // extra tokens
		"1/",      // missing denominator after slash
		"/2",      // missing numerator
		"1/-2",    // negative denominator
		"--1",     // double sign
		"a/b",     // non-numeric
		"1.5",     // floats are not part of the grammar
		"1 2",     // second token must be a fraction
	} {
		_, err := rational.FromString(in)
		require.ErrorIs(t, err, rational.ErrParse, "input %q", in)
	}

	_, err := rational.FromString("1/0") // zero denominator surfaces as its own kind
	require.ErrorIs(t, err, rational.ErrZeroDenominator)
}

// TestStringRendering checks canonical formatting.
func TestStringRendering(t *testing.T) {
	r, _ := rational.New(0, 1, 2)
	require.Equal(t, "1/2", r.String())

	r, _ = rational.New(-1, -1, 3)
	require.Equal(t, "-1 1/3", r.String())

	r, _ = rational.New(0, 0, 1)
	require.Equal(t, "0", r.String())

	r, _ = rational.New(2, 0, 1)
	require.Equal(t, "2", r.String())

	r, _ = rational.New(13, 3, 8)
	require.Equal(t, "13 3/8", r.String())
}

// TestStringRoundTrip verifies FromString(String(r)) == r on canonical values.
func TestStringRoundTrip(t *testing.T) {
	for _, text := range []string{"1/2", "-1 1/3", "0", "2", "13 3/8", "-7", "3 1/2"} {
		r, err := rational.FromString(text)
		require.NoError(t, err, "input %q", text)
		require.Equal(t, text, r.String(), "round-trip of %q", text) // exact inverse

		again, err := rational.FromString(r.String())
		require.NoError(t, err)
		require.Equal(t, r, again) // structural equality after the second pass
	}
}
