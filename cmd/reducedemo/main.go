// Command reducedemo exercises the fork-join reduction engine on ramp
// inputs and validates every parallel result against its sequential
// baseline.
//
// It runs four scenarios: a per-element dot product, a blocked dot
// product, a row-parallel Frobenius norm, and a row-parallel
// max-magnitude reduction. Sum-based results are compared within an
// absolute threshold; the max result must match exactly. The process
// exits non-zero if any comparison fails.
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/hpcgo/forkreduce/reduce"
	"github.com/hpcgo/forkreduce/sequential"
	"github.com/hpcgo/forkreduce/tolerance"
)

var (
	n         = flag.Int("n", 10, "vector length for the per-element dot product")
	blockedN  = flag.Int("blocked-n", 9, "vector length for the blocked dot product")
	blockSize = flag.Int("k", 3, "block size for the blocked dot product")
	rows      = flag.Int("rows", 5, "matrix row count")
	cols      = flag.Int("cols", 8, "matrix column count")
	threshold = flag.Float64("threshold", tolerance.Default, "absolute comparison threshold")
)

// ramp returns the vector [0, 1, …, n-1].
func ramp(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i)
	}
	return v
}

func rampMatrix(m, n int) *mat.Dense {
	return mat.NewDense(m, n, ramp(m*n))
}

// report prints both results and returns whether they agree. Sum-based
// scenarios compare within the threshold; max compares exactly.
func report(name string, ref, res float64, exact bool) bool {
	fmt.Printf("%s: reference = %f, parallel = %f\n", name, ref, res)
	ok := res == ref
	if !exact {
		ok = tolerance.Close(res, ref, *threshold)
	}
	if ok {
		fmt.Println("OK")
	} else {
		fmt.Printf("ERROR: difference between reference and parallel result is above threshold\n")
	}
	return ok
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	ok := true

	a := ramp(*n)
	b := ramp(*n)
	fmt.Printf("a = %v\nb = %v\n", a, b)
	res, err := reduce.DotProduct(a, b)
	if err != nil {
		klog.Exitf("per-element dot product: %v", err)
	}
	ok = report("dot product (per element)", sequential.DotProduct(a, b), res, false) && ok

	a = ramp(*blockedN)
	b = ramp(*blockedN)
	fmt.Printf("\na = %v\nb = %v\n", a, b)
	res, err = reduce.DotProductBlocked(*blockSize, a, b)
	if err != nil {
		klog.Exitf("blocked dot product: %v", err)
	}
	ok = report(fmt.Sprintf("dot product (blocks of %d)", *blockSize), sequential.DotProduct(a, b), res, false) && ok

	m := rampMatrix(*rows, *cols)
	fmt.Printf("\nA =\n%v\n", mat.Formatted(m))
	res, err = reduce.FrobeniusNorm(m)
	if err != nil {
		klog.Exitf("Frobenius norm: %v", err)
	}
	ok = report("Frobenius norm (per row)", sequential.FrobeniusNorm(m), res, false) && ok

	res, err = reduce.MaxAbs(m)
	if err != nil {
		klog.Exitf("max magnitude: %v", err)
	}
	ok = report("max magnitude (per row)", sequential.MaxAbs(m), res, true) && ok

	if !ok {
		os.Exit(1)
	}
}
