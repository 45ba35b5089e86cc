// Package rational implements immutable exact fractions stored in
// mixed-number form: a whole part plus a proper fraction whose sign is
// aligned with the whole part.
//
// 🚀 What is a mixed-number rational?
//
//	Instead of a single improper fraction (7/2), a value is kept as
//	whole + numerator/denominator (3 1/2) with these invariants after
//	normalization:
//	  • denominator > 0
//	  • |numerator| < denominator, fraction reduced to lowest terms
//	  • sign(whole) == sign(numerator) unless either is zero
//	  • numerator == 0 ⇒ denominator == 1 (canonical integers)
//	  • a residual ±1/1 folds into the whole part
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linalg/rational"
//
//	r, _ := rational.New(1, 4, 2)          // normalizes to 3
//	r, _ = rational.FromString("13 3/8")   // whole=13, 3/8
//	r, _ = rational.FromFloat(0.5, 1e-3)   // 1/2 via denominator search
//	s := r.String()                        // "1/2"
//
// Values are plain structs; every operation returns a new value and the zero
// value is the canonical 0. Construction is the only fallible step:
// ErrZeroDenominator for a zero denominator, ErrParse for malformed text.
// Arithmetic uses native int; there is no big-integer promotion.
package rational
