// Package reduce provides fork-join parallel reductions over vectors
// and matrices.
//
// Every reduction partitions its input, runs one worker goroutine per
// partition descriptor, and merges the workers' local results into a
// single shared accumulator under mutual exclusion. The input is never
// mutated; it is shared read-only by all workers. Preconditions are
// checked before any worker is spawned, so a failed call has done no
// concurrent work at all.
//
// The final value of a sum reduction depends on the merge order only
// through floating-point rounding; callers comparing it against a
// sequential baseline must allow an absolute tolerance (see package
// tolerance). Max-magnitude reductions are exact.
package reduce

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/hpcgo/forkreduce/partition"
)

// DotProduct computes the dot product of a and b with one worker task
// per element.
//
// Each worker computes its single product outside any lock and adds it
// to the shared sum inside the accumulator's critical section.
// DotProduct returns only when all workers have terminated.
//
// DotProduct requires len(a) == len(b) and at least one element.
func DotProduct(a, b []float64) (float64, error) {
	return dotProduct(a, b, 1)
}

// DotProductBlocked computes the dot product of a and b with one
// worker task per contiguous block of k elements.
//
// DotProductBlocked requires len(a) == len(b), at least one element,
// and that k evenly divides the length; a non-dividing k is rejected
// with partition.ErrInvalidPartition rather than silently dropping the
// remainder elements.
func DotProductBlocked(k int, a, b []float64) (float64, error) {
	return dotProduct(a, b, k)
}

func dotProduct(a, b []float64, k int) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.Wrapf(partition.ErrInvalidPartition, "vector lengths %d and %d differ", len(a), len(b))
	}
	spans, err := partition.Blocks(len(a), k)
	if err != nil {
		return 0, err
	}
	acc := newAccumulator(opSum, 0)
	forkJoin(spans, acc, func(s partition.Span) float64 {
		var local float64
		for i := s.Low; i < s.High; i++ {
			local += a[i] * b[i]
		}
		return local
	})
	return acc.final(), nil
}

// SumOfSquares computes the sum of the squares of all elements of a
// with one worker task per row.
//
// SumOfSquares requires a non-empty matrix.
func SumOfSquares(a *mat.Dense) (float64, error) {
	m, n := a.Dims()
	rows, err := partition.Rows(m, n)
	if err != nil {
		return 0, err
	}
	raw := a.RawMatrix()
	acc := newAccumulator(opSum, 0)
	forkJoin(rows, acc, func(r partition.Row) float64 {
		row := raw.Data[r.Index*raw.Stride : r.Index*raw.Stride+r.Cols]
		var local float64
		for _, v := range row {
			local += v * v
		}
		return local
	})
	return acc.final(), nil
}

// FrobeniusNorm computes the Frobenius norm of a as a row-parallel sum
// of squares followed by a square root. The square root is applied
// after the join barrier, when the accumulator is no longer shared.
func FrobeniusNorm(a *mat.Dense) (float64, error) {
	sum, err := SumOfSquares(a)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sum), nil
}

// MaxAbs computes the largest magnitude of any element of a with one
// worker task per row.
//
// The shared maximum is seeded with the magnitude of the first
// element, and each worker seeds its local maximum with the first
// element of its own row. Max is idempotent and order-independent, so
// the result is exact; callers may compare it with ==.
//
// MaxAbs requires a non-empty matrix.
func MaxAbs(a *mat.Dense) (float64, error) {
	m, n := a.Dims()
	rows, err := partition.Rows(m, n)
	if err != nil {
		return 0, err
	}
	raw := a.RawMatrix()
	acc := newAccumulator(opMax, math.Abs(raw.Data[0]))
	forkJoin(rows, acc, func(r partition.Row) float64 {
		row := raw.Data[r.Index*raw.Stride : r.Index*raw.Stride+r.Cols]
		local := math.Abs(row[0])
		for _, v := range row[1:] {
			if abs := math.Abs(v); abs > local {
				local = abs
			}
		}
		return local
	})
	return acc.final(), nil
}
