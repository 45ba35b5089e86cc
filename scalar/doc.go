// Package scalar provides tolerance-aware numeric helpers shared across the
// linalg packages: zero and equality tests under an explicit tolerance,
// three-way sign classification, and the Euclidean integer GCD.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linalg/scalar"
//
//	scalar.IsZero(1e-12, scalar.DefaultTolerance) // true
//	scalar.AreEqual(0.1+0.2, 0.3, 1e-9)           // true
//	scalar.Sign(-4.2)                             // -1
//	scalar.GCD(12, 18)                            // 6
//
// Every helper is pure, allocation-free and deterministic. Tolerances are
// always explicit parameters — there is no hidden global epsilon; use
// DefaultTolerance when the caller has no stricter policy of its own.
package scalar
