// Package linalg is your in-memory toolbox for dense numeric linear algebra —
// matrices, vectors and exact rational arithmetic, from validated construction
// to Gaussian elimination.
//
// 🚀 What is linalg?
//
//	A small, deterministic, zero-surprise library that brings together:
//		• Dense matrices: validated construction, arithmetic, joins, transpose
//		• Gaussian elimination: REF / RREF with optional partial pivoting
//		• Determinant & trace with transparent per-instance caching
//		• Vectors: orientation-aware wrappers with dot & cross products
//		• Rational: exact mixed-number fractions with parsing & formatting
//
// ✨ Why choose linalg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, strict validation, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, injectable randomness, stable output
//
// Under the hood, everything is organized under four subpackages:
//
//	scalar/   — tolerance-aware float comparison, sign and integer GCD
//	rational/ — immutable exact fractions in mixed-number form
//	matrix/   — the Dense container and its elimination engine
//	vector/   — single-row / single-column specialization of Dense
//
// Quick ASCII example:
//
//	    ⎡ 5  1  4 ⎤   MRef    ⎡ 5    1    4   ⎤
//	    ⎣ 6  1  8 ⎦  ─────▶   ⎣ 0  -0.2  3.2  ⎦
//
//	row-reduces a 2×3 system in place, snapping near-zeros to exact zero.
//
// All operations are synchronous and CPU-bound; instances are not internally
// locked — callers sharing one instance across goroutines must synchronize.
//
//	go get github.com/katalvlaran/linalg
package linalg
