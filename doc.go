// This package provides a fork-join engine for parallel numeric
// reductions: an input vector or matrix is partitioned across worker
// goroutines, each worker computes a local scalar, and the locals are
// merged into a single shared accumulator under mutual exclusion.
//
// It provides the following subpackages:
//
// forkreduce/partition produces the work descriptors a reduction is
// split into (per element, per contiguous block, or per matrix row)
// and enforces the partition preconditions.
//
// forkreduce/reduce implements the fork-join coordinator, the locked
// shared accumulator, and the public reductions: dot products,
// row-parallel sum of squares, Frobenius norm, and max-magnitude.
//
// forkreduce/sequential provides strictly sequential implementations
// of the same reductions, for use as correctness baselines.
//
// forkreduce/tolerance compares a parallel result against a sequential
// baseline within an absolute threshold.
package forkreduce
