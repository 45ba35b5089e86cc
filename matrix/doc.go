// Package matrix provides the Dense container: a mutable, row-major matrix of
// float64 values with validated construction, arithmetic, joins, transpose,
// and a Gaussian-elimination engine producing row echelon form, reduced row
// echelon form, determinant and trace.
//
// 🚀 What is Dense?
//
//	A rectangular float64 container with two families of operations:
//	  • non-mutating: Add, Sub, Mul, Scale, Negate, Transpose, JoinRight,
//	    JoinBottom, Ref, Rref — clone first, return a fresh *Dense
//	  • mutating (M-prefixed): MAdd, MSub, MMul, MScale, MNegate, MTranspose,
//	    MJoinRight, MJoinBottom, MRef, MRref — operate in place, return the
//	    receiver, and invalidate every cached derived value
//
// ✨ Key guarantees:
//
//   - Strict fail-fast validation with sentinel errors (errors.Is-friendly)
//   - Deterministic loop orders; injectable randomness for Random factories
//   - Derived scalars (Det, Trace) and forms (Ref, Rref) cached per instance;
//     any mutation clears the whole cache unconditionally in O(1)
//   - Elimination snaps sub-tolerance residues to exact zero for stable,
//     reproducible echelon forms
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linalg/matrix"
//
//	m, err := matrix.New([][]float64{{5, 1, 4}, {6, 1, 8}})
//	swaps, err := m.MRef(matrix.WithoutPivoting())  // in-place REF, no swaps
//	d, err := matrix.Identity(3)
//	det, err := d.Det()                              // 1, cached
//
// Elements follow a finite-value policy: NaN and ±Inf are rejected on
// construction and Set unless explicitly disabled via WithNoValidateNaNInf.
// The NewTrusted constructor skips all checks — an internal-grade fast path
// for data already known to be well-formed; misuse can silently break
// invariants and is not a public guarantee.
//
// Complex-valued matrices are an extension point, not a feature: the element
// policy and elimination kernels are float64-only.
//
// Instances are not internally locked. All operations are synchronous and
// CPU-bound; callers sharing one instance across goroutines must provide
// external synchronization (this includes the cache, which is ordinary
// per-instance mutable state).
package matrix
