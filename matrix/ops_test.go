// Package matrix_test: arithmetic, comparison, transpose and join tests.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/stretchr/testify/require"
)

// mustNew builds a Dense from a literal or fails the test.
func mustNew(t *testing.T, data [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(data)
	require.NoError(t, err)

	return m
}

// TestAddSub verifies element-wise arithmetic and the add-then-sub identity.
func TestAddSub(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 8}, {10, 12}}, sum.ToArray())
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToArray()) // receiver untouched

	back, err := sum.Sub(b) // add then sub returns the original
	require.NoError(t, err)
	require.True(t, back.EqualExact(a))

	_, err = a.Add(mustNew(t, [][]float64{{1, 2, 3}})) // shape mismatch
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Sub(nil) // nil operand
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMutatingAddSub verifies in-place forms mutate the receiver.
func TestMutatingAddSub(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}})
	b := mustNew(t, [][]float64{{10, 20}})

	self, err := a.MAdd(b)
	require.NoError(t, err)
	require.Same(t, a, self) // returns the receiver for chaining
	require.Equal(t, [][]float64{{11, 22}}, a.ToArray())

	_, err = a.MSub(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}}, a.ToArray())
}

// TestMul verifies the triple-loop product and its dimension rule.
func TestMul(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2×3
	b := mustNew(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}) // 3×2

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, p.ToArray())

	_, err = a.Mul(a) // inner dimensions disagree (3 vs 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMMulReshapes verifies the in-place product adopts the result shape.
func TestMMulReshapes(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}}) // 1×3
	b := mustNew(t, [][]float64{{1}, {2}, {3}}) // 3×1

	_, err := a.MMul(b) // 1×3 · 3×1 → 1×1
	require.NoError(t, err)
	require.Equal(t, 1, a.Rows())
	require.Equal(t, 1, a.Cols())
	require.Equal(t, [][]float64{{14}}, a.ToArray())
}

// TestScaleNegate verifies scalar multiplication and sign change.
func TestScaleNegate(t *testing.T) {
	a := mustNew(t, [][]float64{{1, -2}, {0, 4}})

	require.Equal(t, [][]float64{{2, -4}, {0, 8}}, a.Scale(2).ToArray())
	require.Equal(t, [][]float64{{-1, 2}, {0, -4}}, a.Negate().ToArray())
	require.Equal(t, [][]float64{{1, -2}, {0, 4}}, a.ToArray()) // untouched

	a.MScale(10) // in place
	require.Equal(t, [][]float64{{10, -20}, {0, 40}}, a.ToArray())
	a.MNegate()
	require.Equal(t, [][]float64{{-10, 20}, {0, -40}}, a.ToArray())
}

// TestApply verifies the element-wise map.
func TestApply(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	sq := a.Apply(func(v float64) float64 { return v * v })
	require.Equal(t, [][]float64{{1, 4}, {9, 16}}, sq.ToArray())
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToArray())
}

// TestEqual verifies tolerance-aware and exact comparison.
func TestEqual(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}})
	b := mustNew(t, [][]float64{{1 + 1e-10, 2 - 1e-10}})

	require.True(t, a.Equal(b, scalar.DefaultTolerance)) // inside tolerance
	require.False(t, a.EqualExact(b))                    // but not bitwise equal
	require.True(t, a.EqualExact(a.Clone()))             // clone is exact

	require.False(t, a.Equal(mustNew(t, [][]float64{{1}, {2}}), 1)) // shape mismatch
	require.False(t, a.Equal(nil, 1))                               // nil operand
}

// TestTranspose verifies the general and vector-shaped paths plus involution.
func TestTranspose(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr := a.Transpose()
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.ToArray())
	require.True(t, tr.Transpose().EqualExact(a)) // transpose(transpose(M)) == M

	// Single-row special case: reshape only, values in identical order.
	row := mustNew(t, [][]float64{{7, 8, 9}})
	col := row.Transpose()
	require.Equal(t, 3, col.Rows())
	require.Equal(t, 1, col.Cols())
	require.Equal(t, [][]float64{{7}, {8}, {9}}, col.ToArray())

	// Mutating form updates the receiver's dimensions.
	row.MTranspose()
	require.Equal(t, 3, row.Rows())
	require.Equal(t, 1, row.Cols())
}

// TestJoins verifies horizontal and vertical concatenation.
func TestJoins(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{5}, {6}})

	wide, err := a.JoinRight(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 5}, {3, 4, 6}}, wide.ToArray())

	c := mustNew(t, [][]float64{{7, 8}})
	tall, err := a.JoinBottom(c)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}, {7, 8}}, tall.ToArray())

	_, err = a.JoinRight(c) // row counts differ
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.JoinBottom(b) // column counts differ
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Mutating variants reshape the receiver.
	_, err = a.MJoinRight(b)
	require.NoError(t, err)
	require.Equal(t, 3, a.Cols())
	require.Equal(t, 6, a.Size())
}
