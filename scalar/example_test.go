// SPDX-License-Identifier: MIT

package scalar_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// ExampleAreEqual demonstrates tolerance-aware float comparison.
func ExampleAreEqual() {
	fmt.Println(scalar.AreEqual(0.1+0.2, 0.3, 1e-9))
	fmt.Println(scalar.AreEqual(1.0, 1.5, 1e-9))
	// Output:
	// true
	// false
}

// ExampleGCD demonstrates the Euclidean greatest common divisor.
func ExampleGCD() {
	fmt.Println(scalar.GCD(12, 18))
	fmt.Println(scalar.GCD(0, 5))
	// Output:
	// 6
	// 5
}
