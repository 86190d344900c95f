package parser

import (
	"runtime"
	"sync"
)

// DefaultBatchSize is the number of lines processed between yields.
const DefaultBatchSize = 50000

// Scheduler controls how line-oriented work is split up. A cooperative
// scheduler processes lines in batches, yields the processor between
// batches and runs independent units on their own goroutines. A direct
// scheduler does everything inline. Both produce identical results.
type Scheduler struct {
	// BatchSize is the number of lines per batch (0 means DefaultBatchSize).
	BatchSize int
	// Cooperative enables batching, yielding and concurrent units.
	Cooperative bool
}

// Cooperative returns a batching scheduler.
func Cooperative(batchSize int) Scheduler {
	return Scheduler{BatchSize: batchSize, Cooperative: true}
}

// Direct returns a scheduler that never yields.
func Direct() Scheduler {
	return Scheduler{}
}

func (s Scheduler) batchSize() int {
	if s.BatchSize <= 0 {
		return DefaultBatchSize
	}
	return s.BatchSize
}

// Each calls fn for every index in [0, n) in order. Iteration stops as soon
// as fn returns false.
func (s Scheduler) Each(n int, fn func(i int) bool) {
	if !s.Cooperative {
		for i := 0; i < n; i++ {
			if !fn(i) {
				return
			}
		}
		return
	}

	size := s.batchSize()
	for start := 0; start < n; start += size {
		runtime.Gosched()

		end := min(start+size, n)
		for i := start; i < end; i++ {
			if !fn(i) {
				return
			}
		}
	}
}

// Run calls fn for every unit in [0, n). Cooperative schedulers run the
// units concurrently and wait for all of them; fn must only write to state
// owned by its own unit.
func (s Scheduler) Run(n int, fn func(i int)) {
	if !s.Cooperative || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			fn(i)
		}(i)
	}
	wg.Wait()
}
