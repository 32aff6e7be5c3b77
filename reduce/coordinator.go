package reduce

import (
	"sync"

	"k8s.io/klog/v2"

	"github.com/hpcgo/forkreduce/internal"
)

// op tags the merge operator of a reduction.
type op int

const (
	opSum op = iota
	opMax
)

// accumulator is the single shared merge target of one reduction call.
// The coordinator creates it immediately before spawning workers, each
// worker merges into it exactly once, and the coordinator reads it
// exactly once after the join barrier, when no concurrent writer can
// remain.
type accumulator struct {
	mu    sync.Mutex
	op    op
	value float64
}

func newAccumulator(o op, identity float64) *accumulator {
	return &accumulator{op: o, value: identity}
}

// merge folds one worker's local result into the shared value. The
// lock is held for the merge only, never during local computation, and
// is released on every exit path.
func (acc *accumulator) merge(local float64) {
	acc.mu.Lock()
	defer acc.mu.Unlock()
	switch acc.op {
	case opSum:
		acc.value += local
	case opMax:
		if local > acc.value {
			acc.value = local
		}
	}
}

// final returns the accumulated value. It must not be called before
// the join barrier has been passed.
func (acc *accumulator) final() float64 {
	return acc.value
}

// forkJoin spawns one worker goroutine per descriptor, merging each
// worker's local result into acc, and returns only when every worker
// has terminated. The number of workers in flight at any time is
// capped, but exactly one task still runs per descriptor.
//
// If one or more workers panic, the corresponding goroutines recover
// the panics, and forkJoin eventually panics with the left-most
// recovered panic value.
func forkJoin[D any](descs []D, acc *accumulator, worker func(D) float64) {
	limit := internal.MaxWorkers(len(descs))
	klog.V(2).Infof("fork-join: %d tasks, at most %d in flight", len(descs), limit)
	gate := internal.NewGate(limit)
	var wg sync.WaitGroup
	wg.Add(len(descs))
	panics := make([]interface{}, len(descs))
	for i, desc := range descs {
		i, desc := i, desc
		gate.Go(func() {
			defer func() {
				panics[i] = internal.WrapPanic(recover())
				wg.Done()
			}()
			acc.merge(worker(desc))
		})
	}
	wg.Wait()
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
}
