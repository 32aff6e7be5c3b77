package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpcgo/forkreduce/partition"
)

// The final sum must not depend on which worker merges first.
func TestAccumulatorMergeSum(t *testing.T) {
	left := newAccumulator(opSum, 0)
	right := newAccumulator(opSum, 0)
	for _, v := range []float64{1, 2, 3} {
		left.merge(v)
	}
	for _, v := range []float64{3, 2, 1} {
		right.merge(v)
	}
	assert.Equal(t, left.final(), right.final())
}

func TestAccumulatorMergeMax(t *testing.T) {
	acc := newAccumulator(opMax, 5)
	acc.merge(3)
	assert.Equal(t, 5.0, acc.final())
	acc.merge(8)
	acc.merge(8)
	assert.Equal(t, 8.0, acc.final())
}

func TestForkJoinBarrier(t *testing.T) {
	spans, err := partition.Elements(100)
	require.NoError(t, err)
	acc := newAccumulator(opSum, 0)
	forkJoin(spans, acc, func(s partition.Span) float64 {
		return float64(s.Low)
	})
	assert.Equal(t, 4950.0, acc.final())
}

// A worker panic must surface from the coordinator after the join
// barrier, never a partial result.
func TestForkJoinPanicPropagates(t *testing.T) {
	spans, err := partition.Elements(8)
	require.NoError(t, err)
	acc := newAccumulator(opSum, 0)
	assert.Panics(t, func() {
		forkJoin(spans, acc, func(s partition.Span) float64 {
			if s.Low == 5 {
				panic("worker failure")
			}
			return 1
		})
	})
}
