// SPDX-License-Identifier: MIT

// Package matrix - factory constructors.
//
// Determinism note: the Random factories take an explicit *rand.Rand so tests
// and callers control the value source; passing nil falls back to a process-
// wide seeded source. No factory touches hidden global state beyond that
// documented fallback.

package matrix

import (
	"math/rand"
	"time"
)

// defaultRand is the fallback value source for Random/RandomInt when the
// caller passes a nil generator. Seeded once per process.
var defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// Fill returns a rows×cols matrix with every element set to value.
// Errors: ErrInvalidDimensions if rows <= 0 or cols <= 0.
// Complexity: O(r*c).
func Fill(rows, cols int, value float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	m := &Dense{rows: rows, cols: cols, size: rows * cols, data: make([]float64, rows*cols), opts: gatherOptions(opts...)}
	for i := range m.data {
		m.data[i] = value
	}

	return m, nil
}

// Identity returns the n×n identity matrix I_n.
// Errors: ErrInvalidDimensions if n <= 0.
// Complexity: O(n²) zero-init + O(n) diagonal writes.
func Identity(n int, opts ...Option) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	m := &Dense{rows: n, cols: n, size: n * n, data: make([]float64, n*n), opts: gatherOptions(opts...)}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Random returns a rows×cols matrix of uniform floats in [min, max).
// rng is the injectable value source; nil selects the package fallback.
// Errors: ErrInvalidDimensions for non-positive dimensions, ErrBadRange when
// min > max.
// Complexity: O(r*c).
func Random(rows, cols int, min, max float64, rng *rand.Rand, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if min > max {
		return nil, ErrBadRange
	}
	if rng == nil {
		rng = defaultRand
	}

	m := &Dense{rows: rows, cols: cols, size: rows * cols, data: make([]float64, rows*cols), opts: gatherOptions(opts...)}
	span := max - min
	for i := range m.data {
		m.data[i] = min + rng.Float64()*span // uniform in [min, max)
	}

	return m, nil
}

// RandomInt returns a rows×cols matrix of uniform integers in [min, max],
// stored as float64 values. rng as in Random.
// Errors: ErrInvalidDimensions, ErrBadRange.
// Complexity: O(r*c).
func RandomInt(rows, cols, min, max int, rng *rand.Rand, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if min > max {
		return nil, ErrBadRange
	}
	if rng == nil {
		rng = defaultRand
	}

	m := &Dense{rows: rows, cols: cols, size: rows * cols, data: make([]float64, rows*cols), opts: gatherOptions(opts...)}
	span := max - min + 1 // inclusive upper bound
	for i := range m.data {
		m.data[i] = float64(min + rng.Intn(span))
	}

	return m, nil
}
