// SPDX-License-Identifier: MIT

// Package vector provides a one-dimensional numeric vector built on top of
// matrix.Dense: a Vector is a matrix constrained to exactly one row or one
// column, plus an Orientation tag (Row or Column).
//
// What you get:
//   - Construction from nested literals (New), flat slices (FromSlice) and
//     size-oriented factories (Fill, Random, RandomInt).
//   - Logical single-index accessors (At, Set, IsSet) that translate to the
//     underlying (row, col) pair according to the orientation.
//   - Element-wise arithmetic delegated to the matrix kernels (Add, Sub,
//     Scale, Negate, Apply and their mutating M-forms).
//   - Dot for equal-size vectors and Cross for 3-element vectors.
//   - Transpose/MTranspose flipping the orientation tag along with the shape.
//   - Subvector extraction along the long axis.
//
// Type promotion:
//
// Some operations have a result shape that no longer fits the vector
// constraint — the outer product of a column by a row, or two column vectors
// joined side by side. Their non-mutating forms (Mul, JoinRight, JoinBottom)
// therefore return the general *matrix.Dense; when the result happens to be
// vector-shaped, FromMatrix narrows it back to a Vector. The mutating forms
// (MMul, MJoinRight, MJoinBottom) refuse to change the receiver's kind: they
// fail with ErrResultNotVector whenever the result would not be a vector,
// leaving the receiver untouched.
//
// Interop with the matrix package goes through ToMatrix (a detached Dense
// copy) and FromMatrix. The underlying storage is never shared with callers,
// so a Vector's shape invariant cannot be broken from outside.
//
// Concurrency: like matrix.Dense, a Vector is not synchronized; sharing an
// instance across goroutines requires external locking by the caller.
package vector
