package internal

import (
	"sync"
)

// Gate bounds the number of worker goroutines running at the same
// time. Every task still runs in its own goroutine; the gate only
// delays spawning when the limit is reached.
type Gate struct {
	// limit is a soft target on the number of concurrently running
	// tasks. A non-positive limit disables the gate.
	limit   int
	mu      sync.Mutex
	cond    sync.Cond
	running int
}

// NewGate returns a gate that keeps at most limit tasks in flight. A
// non-positive limit means unlimited.
func NewGate(limit int) *Gate {
	g := &Gate{limit: limit}
	g.cond = sync.Cond{L: &g.mu}
	return g
}

// lockedIsFull reports whether all slots are in use.
//
// It must be called with g.mu held.
func (g *Gate) lockedIsFull() bool {
	return g.limit > 0 && g.running >= g.limit
}

// Go runs task in its own goroutine, waiting first until a slot is
// available. It returns as soon as the task has been spawned; the
// caller synchronizes task completion separately.
func (g *Gate) Go(task func()) {
	if g.limit <= 0 {
		go task()
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for g.lockedIsFull() {
		g.cond.Wait()
	}
	g.running++
	go func() {
		task()
		g.mu.Lock()
		g.running--
		g.cond.Signal()
		g.mu.Unlock()
	}()
}
