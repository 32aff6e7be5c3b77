// Package partition splits the index domain of a reduction into work
// descriptors, one per worker task.
//
// A partitioning covers every index of the input exactly once: the
// descriptors never overlap and never leave a gap. All preconditions
// are checked eagerly, before any descriptor is handed to a worker, so
// a violation never leaves partially spawned work behind.
package partition

import (
	"github.com/pkg/errors"
)

// ErrInvalidPartition reports a size or block-size precondition
// violation. It is returned (wrapped with context) before any worker
// task is spawned, so the caller can retry with corrected parameters.
var ErrInvalidPartition = errors.New("invalid partition")

// Span is a contiguous half-open index range [Low, High) assigned to
// exactly one worker task.
type Span struct {
	Low, High int
}

// Len returns the number of indices the span covers.
func (s Span) Len() int { return s.High - s.Low }

// Row assigns one full matrix row to a worker task: the row index and
// the number of columns in that row.
type Row struct {
	Index, Cols int
}

// Blocks partitions the index domain {0, …, n-1} into n/k spans of k
// contiguous indices each.
//
// Blocks requires n > 0, k > 0, and that k evenly divides n; any
// remainder would silently drop elements from the partition, so it is
// rejected as ErrInvalidPartition instead.
func Blocks(n, k int) ([]Span, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidPartition, "element count %d is not positive", n)
	}
	if k <= 0 {
		return nil, errors.Wrapf(ErrInvalidPartition, "block size %d is not positive", k)
	}
	if n%k != 0 {
		return nil, errors.Wrapf(ErrInvalidPartition, "block size %d does not divide element count %d", k, n)
	}
	spans := make([]Span, n/k)
	for i := range spans {
		spans[i] = Span{Low: i * k, High: (i + 1) * k}
	}
	return spans, nil
}

// Elements partitions the index domain {0, …, n-1} into n spans of one
// index each. It is the block-size-1 extreme of Blocks, not a separate
// code path.
//
// Elements requires n > 0.
func Elements(n int) ([]Span, error) {
	return Blocks(n, 1)
}

// Rows partitions an m×n matrix into m descriptors, one per row.
//
// Rows requires m > 0 and n > 0.
func Rows(m, n int) ([]Row, error) {
	if m <= 0 {
		return nil, errors.Wrapf(ErrInvalidPartition, "row count %d is not positive", m)
	}
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidPartition, "column count %d is not positive", n)
	}
	rows := make([]Row, m)
	for i := range rows {
		rows[i] = Row{Index: i, Cols: n}
	}
	return rows, nil
}
