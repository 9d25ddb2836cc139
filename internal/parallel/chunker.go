// Package parallel implements the fixed fan-out/fan-in chunker used by the
// Bluestein driver's element-wise passes. It is deliberately narrow: no
// long-lived pool, no cancellation, no task queue — a call to Run submits a
// small, fixed number of disjoint-range tasks, blocks until all complete,
// and returns.
package parallel

import (
	"fmt"
	"sync"
)

// Chunker partitions a linear range into contiguous equal chunks and runs a
// worker function over each chunk concurrently.
type Chunker struct {
	threshold2 int
	threshold4 int
	maxWorkers int
}

// New creates a Chunker with the given worker-count thresholds and the
// maximum number of workers it is permitted to use.
func New(threshold2, threshold4, maxWorkers int) *Chunker {
	return &Chunker{
		threshold2: threshold2,
		threshold4: threshold4,
		maxWorkers: maxWorkers,
	}
}

// WorkerCount reports how many workers Run would use for a range of length
// n, following spec.md's selection rule: 4 workers if the configured
// maximum allows it and n is large enough, else 2, else serial (1).
func (c *Chunker) WorkerCount(n int) int {
	if c.maxWorkers >= 4 && n >= c.threshold4 {
		return 4
	}
	if c.maxWorkers >= 2 && n >= c.threshold2 {
		return 2
	}
	return 1
}

// Run partitions [0, n) into WorkerCount(n) contiguous chunks (the last
// chunk absorbs any remainder) and runs fn(lo, hi) for each chunk. If
// WorkerCount(n) is 1, fn runs synchronously on the calling goroutine.
//
// If any invocation of fn panics, Run recovers it, reports it through the
// returned error, and still waits for the remaining chunks to finish before
// returning — this is the "internal_error" case of spec.md §7; unlike the
// legacy behavior it replaces, the failure is never silently swallowed.
func (c *Chunker) Run(n int, fn func(lo, hi int)) error {
	workers := c.WorkerCount(n)
	if workers <= 1 || n == 0 {
		return runOne(fn, 0, n)
	}

	chunk := n / workers
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := lo + chunk
		if i == workers-1 {
			hi = n
		}

		wg.Add(1)
		go func(idx, lo, hi int) {
			defer wg.Done()
			errs[idx] = runOne(fn, lo, hi)
		}(i, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func runOne(fn func(lo, hi int), lo, hi int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parallel chunk [%d,%d) panicked: %v", lo, hi, r)
		}
	}()
	fn(lo, hi)
	return nil
}
