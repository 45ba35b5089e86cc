// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(r*c) validation+copy; At/Set/IsSet: O(1); Clone: O(r*c);
//     Submatrix: O(h*w); ToArray: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxRemove    = "Remove"    // method tag used in error wrappers
	ctxSubmatrix = "Submatrix" // extraction tag
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]"
	fmtSep      = ", "
	fmtRowBreak = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - rows, cols hold dimensions; size is kept equal to rows*cols.
//   - data is a flat buffer of length rows*cols (offset = i*cols + j).
//   - opts carries the per-instance policies (element validation, caching).
//   - cache holds derived values; see cache.go for the invalidation contract.
//
// The zero value is not usable; construct via New, NewTrusted or a factory.
type Dense struct {
	rows, cols int       // dimensions, both >= 1 for any constructed instance
	size       int       // rows*cols, maintained on every shape change
	data       []float64 // flat backing storage, length == size
	opts       Options   // element/caching policy fixed at construction
	cache      cacheState
}

// New constructs a Dense from a nested row-major literal, validating shape
// and elements.
// Implementation:
//   - Stage 1 (Validate): non-empty, rectangular, finite elements (policy).
//   - Stage 2 (Prepare): flatten into a fresh backing slice.
//   - Stage 3 (Finalize): return the instance; the literal is never aliased.
//
// Errors:
//   - ErrEmpty, ErrJagged, ErrNaNInf (with the offending coordinate).
//
// Complexity: O(r*c) time and memory.
func New(data [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := validateLiteral(data, o.validateNaNInf); err != nil {
		return nil, err
	}

	return newFromLiteral(data, o), nil
}

// NewTrusted constructs a Dense from a literal, skipping ALL validation.
// This is the fast path for results already known to be well-formed (e.g.
// freshly computed transposes). Feeding it malformed data silently violates
// invariants — an accepted internal-grade escape hatch, not a public
// guarantee.
// Complexity: O(r*c) copy; no checks.
func NewTrusted(data [][]float64, opts ...Option) *Dense {
	return newFromLiteral(data, gatherOptions(opts...))
}

// newFromLiteral flattens a (trusted) rectangular literal into a Dense.
func newFromLiteral(data [][]float64, o Options) *Dense {
	rows := len(data)
	cols := len(data[0])
	flat := make([]float64, rows*cols)
	for i := range data {
		copy(flat[i*cols:(i+1)*cols], data[i]) // row-major flattening
	}

	return &Dense{rows: rows, cols: cols, size: rows * cols, data: flat, opts: o}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// Size returns rows*cols. Complexity: O(1).
func (m *Dense) Size() int { return m.size }

// At retrieves the element at (row, col).
// Returns ErrOutOfRange (wrapped with coordinates) on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if err := validateIndex(m, row, col); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[row*m.cols+col], nil
}

// Set assigns v at (row, col), enforcing the finite-value policy, and
// invalidates the cache (a successful Set is a mutation).
// Errors: ErrOutOfRange, ErrNaNInf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if err := validateIndex(m, row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.opts.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[row*m.cols+col] = v
	m.invalidate() // derived values no longer describe the contents

	return nil
}

// IsSet reports whether (row, col) lies inside the matrix extent — the
// "contains" check of the index-pair accessor interface. Every in-bounds cell
// of a dense matrix holds a value.
// Complexity: O(1).
func (m *Dense) IsSet(row, col int) bool {
	return validateIndex(m, row, col) == nil
}

// Remove always fails with ErrRemoveUnsupported: elements cannot be
// individually deleted from a dense matrix.
// Complexity: O(1).
func (m *Dense) Remove(row, col int) error {
	return denseErrorf(ctxRemove, row, col, ErrRemoveUnsupported)
}

// Clone returns a deep copy of the matrix. Policies are inherited; the cache
// is NOT copied (derived values are recomputed on demand by the copy).
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{rows: m.rows, cols: m.cols, size: m.size, data: copyData, opts: m.opts}
}

// ToArray returns the contents as a fresh nested row-major slice; mutating
// the result never affects the matrix.
// Complexity: O(r*c).
func (m *Dense) ToArray() [][]float64 {
	out := make([][]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = make([]float64, m.cols)
		copy(out[i], m.data[i*m.cols:(i+1)*m.cols])
	}

	return out
}

// Submatrix extracts a copy of the h×w window anchored at (row0, col0).
// Errors: ErrOutOfRange for a negative anchor, non-positive extent, or a
// window exceeding the matrix bounds.
// Complexity: O(h*w).
func (m *Dense) Submatrix(row0, col0, h, w int) (*Dense, error) {
	// The window must be non-degenerate and fully inside the extent.
	if row0 < 0 || col0 < 0 || h <= 0 || w <= 0 || row0+h > m.rows || col0+w > m.cols {
		return nil, denseErrorf(ctxSubmatrix, row0, col0, ErrOutOfRange)
	}

	out := &Dense{rows: h, cols: w, size: h * w, data: make([]float64, h*w), opts: m.opts}
	for i := 0; i < h; i++ {
		srcBase := (row0+i)*m.cols + col0 // window row start in the source
		copy(out.data[i*w:(i+1)*w], m.data[srcBase:srcBase+w])
	}

	return out, nil
}

// String implements fmt.Stringer: one bracketed row per line,
// "[e1, e2, e3]" with rows joined by newlines and no trailing whitespace.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(fmtRowBreak) // newline-joined, no trailing break
		}
		sb.WriteString(fmtRowOpen)
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.cols+j], 'g', -1, 64))
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
