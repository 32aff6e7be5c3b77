package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// MaxWorkers returns the soft cap on concurrently running worker
// goroutines for a reduction with the given task count, taking
// runtime.NumCPU() into account. The cap never exceeds the task count.
func MaxWorkers(tasks int) (workers int) {
	switch {
	case tasks > 0:
		workers = 2 * runtime.NumCPU()
		if workers > tasks {
			workers = tasks
		}
	case tasks == 0:
		workers = 1
	default:
		panic(fmt.Sprintf("invalid task count: %v", tasks))
	}
	return
}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		if err, isError := p.(error); isError {
			return fmt.Errorf("%w\n%s\nrethrown at", err, debug.Stack())
		}
		return fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	}
	return nil
}
