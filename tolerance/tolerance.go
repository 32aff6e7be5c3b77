// Package tolerance compares floating-point reduction results against
// a reference within an absolute threshold.
//
// Sum reductions accumulate in an unspecified merge order, so their
// results may differ from a sequential baseline by floating-point
// rounding; they must be compared with Close. Max-magnitude results
// are exact and may be compared with ==.
package tolerance

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// Default is the absolute threshold used by the demo harness.
const Default = 1e-4

// Close reports whether a and b are equal within the absolute
// threshold.
func Close(a, b, threshold float64) bool {
	return scalar.EqualWithinAbs(a, b, threshold)
}
