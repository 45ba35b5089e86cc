// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction policy and the
// elimination engine. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

import (
	"math"

	"github.com/katalvlaran/linalg/scalar"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on
	// construction and Set. This is the Go rendition of a class-specific
	// element check: the type system already guarantees float64, so the only
	// residual per-element rule is finiteness.
	DefaultValidateNaNInf = true

	// DefaultPivoting enables partial pivoting (row swaps) in Ref/MRef.
	// Det intentionally overrides this to false for its elimination pass.
	DefaultPivoting = true

	// DefaultZeroTolerance is the snap-to-zero threshold applied to residues
	// produced by elimination subtraction steps.
	DefaultZeroTolerance = scalar.DefaultTolerance

	// DefaultCaching stores derived values (Ref, Rref, Det, Trace) on the
	// instance until the next mutation.
	DefaultCaching = true
)

// Internal panic messages (no magic strings).
const panicZeroToleranceInvalid = "matrix: WithZeroTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	// numeric element policy
	validateNaNInf bool // DefaultValidateNaNInf

	// elimination policy
	pivoting bool    // DefaultPivoting
	zeroTol  float64 // DefaultZeroTolerance; >= 0

	// cache policy
	caching bool // DefaultCaching
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// NaN and ±Inf are rejected on construction and Set.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value policy (use with care).
// Non-finite values then flow through arithmetic and elimination unchecked.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithPivoting enables partial pivoting in Ref/MRef (the default): the
// largest-magnitude candidate below the pivot is swapped into place and the
// swap counter incremented.
// Complexity: O(1).
func WithPivoting() Option {
	return func(o *Options) { o.pivoting = true }
}

// WithoutPivoting disables row swaps in Ref/MRef. Elimination then fails with
// ErrZeroPivot when a pivot entry is exactly zero while nonzero entries remain
// below it — the caller may retry with pivoting or treat the matrix as
// singular under the no-swap strategy.
// Complexity: O(1).
func WithoutPivoting() Option {
	return func(o *Options) { o.pivoting = false }
}

// WithZeroTolerance sets the snap-to-zero threshold used by elimination:
// any residue with |x| < tol after a subtraction step becomes exactly zero.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0 (panic otherwise).
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - tol = 0 disables snapping entirely.
//
// Complexity: O(1).
func WithZeroTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicZeroToleranceInvalid)
	}

	return func(o *Options) { o.zeroTol = tol }
}

// WithoutCache disables the per-instance cache: derived values are recomputed
// on every call and never stored.
// Complexity: O(1).
func WithoutCache() Option {
	return func(o *Options) { o.caching = false }
}

// gatherOptions applies user-provided setters on top of documented defaults.
// Last-writer-wins; deterministic for a given sequence of setters.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		pivoting:       DefaultPivoting,
		zeroTol:        DefaultZeroTolerance,
		caching:        DefaultCaching,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
