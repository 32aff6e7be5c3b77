// Package sequential provides strictly sequential implementations of
// the reductions in package reduce, for testing and debugging
// purposes.
//
// Each function makes a single pass over its input with no concurrency
// at all, so its result is a deterministic baseline for the parallel
// engine.
package sequential

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DotProduct returns the dot product of a and b. It panics if the
// lengths differ.
func DotProduct(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// SumOfSquares returns the sum of the squares of all elements of a.
func SumOfSquares(a *mat.Dense) float64 {
	m, _ := a.Dims()
	var sum float64
	for i := 0; i < m; i++ {
		row := a.RawRowView(i)
		sum += floats.Dot(row, row)
	}
	return sum
}

// FrobeniusNorm returns the Frobenius norm of a.
func FrobeniusNorm(a *mat.Dense) float64 {
	return mat.Norm(a, 2)
}

// MaxAbs returns the largest magnitude of any element of a, seeded
// with the magnitude of the first element.
func MaxAbs(a *mat.Dense) float64 {
	m, _ := a.Dims()
	max := math.Abs(a.At(0, 0))
	for i := 0; i < m; i++ {
		if v := floats.Norm(a.RawRowView(i), math.Inf(1)); v > max {
			max = v
		}
	}
	return max
}
