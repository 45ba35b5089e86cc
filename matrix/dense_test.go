// Package matrix_test contains unit tests for Dense construction, accessors
// and formatting.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewValidation enumerates rejected literals.
func TestNewValidation(t *testing.T) {
	_, err := matrix.New([][]float64{}) // no rows at all
	require.ErrorIs(t, err, matrix.ErrEmpty)

	_, err = matrix.New([][]float64{{}}) // an empty row
	require.ErrorIs(t, err, matrix.ErrEmpty)

	_, err = matrix.New([][]float64{{1, 2}, {3}}) // jagged rows
	require.ErrorIs(t, err, matrix.ErrJagged)

	_, err = matrix.New([][]float64{{1, math.NaN()}}) // NaN under the finite policy
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.New([][]float64{{math.Inf(1)}}) // +Inf likewise
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewPolicyDisabled verifies the escape hatch for non-finite ingestion.
func TestNewPolicyDisabled(t *testing.T) {
	m, err := matrix.New([][]float64{{math.Inf(1), 1}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err) // policy off: +Inf is accepted
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

// TestNewTrustedSkipsChecks confirms the unvalidated fast path.
func TestNewTrustedSkipsChecks(t *testing.T) {
	m := matrix.NewTrusted([][]float64{{1, 2, 3}}) // well-formed input, no checks
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 3, m.Size())
}

// TestDimensionsAndSize verifies Rows/Cols/Size bookkeeping.
func TestDimensionsAndSize(t *testing.T) {
	m, err := matrix.New([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6, m.Size())
}

// TestAtSetBounds ensures At/Set return ErrOutOfRange on invalid access.
func TestAtSetBounds(t *testing.T) {
	m, err := matrix.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = m.At(-1, 0) // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2) // column past the edge
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(2, 0, 1.23) // row past the edge
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(0, -1, 4.56) // negative column
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGetRoundTrip validates Set followed by At on valid indices, plus the
// element policy on Set.
func TestSetGetRoundTrip(t *testing.T) {
	m, err := matrix.New([][]float64{{0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)

	err = m.Set(0, 0, math.NaN()) // policy rejects NaN on Set as well
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestIsSetContains verifies the tuple-keyed "contains" check.
func TestIsSetContains(t *testing.T) {
	m, err := matrix.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.True(t, m.IsSet(0, 0))   // inside
	require.True(t, m.IsSet(1, 1))   // far corner
	require.False(t, m.IsSet(2, 0))  // below
	require.False(t, m.IsSet(0, 2))  // right
	require.False(t, m.IsSet(-1, 0)) // negative
}

// TestRemoveUnsupported pins the unconditional removal failure.
func TestRemoveUnsupported(t *testing.T) {
	m, err := matrix.New([][]float64{{1}})
	require.NoError(t, err)
	require.ErrorIs(t, m.Remove(0, 0), matrix.ErrRemoveUnsupported)
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.New([][]float64{{1, 0}, {0, 2}})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0)) // mutate the clone only

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // original unchanged
}

// TestToArrayCopies verifies the nested-slice export is detached.
func TestToArrayCopies(t *testing.T) {
	m, err := matrix.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	out := m.ToArray()
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, out)

	out[0][0] = 99 // mutating the export must not leak back
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestSubmatrix exercises window extraction and its bounds checks.
func TestSubmatrix(t *testing.T) {
	m, err := matrix.New([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)

	sub, err := m.Submatrix(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 6}, {8, 9}}, sub.ToArray())

	_, err = m.Submatrix(-1, 0, 1, 1) // negative anchor
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Submatrix(0, 0, 0, 1) // degenerate height
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Submatrix(2, 2, 2, 1) // window exceeds the extent
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestStringFormat checks the bracketed row-per-line rendering.
func TestStringFormat(t *testing.T) {
	m, err := matrix.New([][]float64{{1, 2}, {3, 4.5}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4.5]", m.String()) // no trailing whitespace
}
