// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the fixed-size worker pool behind the parallel
// sorters. A Pool is created once, sized to the available processing units,
// and shared by every fork-join split of a sort as well as by the parallel
// frequency pass.
//
// Usage:
//
//	pool := workerpool.New(freq.AvailableCPUs())
//	defer pool.Close()
//
//	pool.Do(
//	    func() { sortRange(lo, p-1) },
//	    func() { sortRange(p+1, hi) },
//	)
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused; the worker count never changes afterwards.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is a single unit of work handed to a worker.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup

	// claimed is set for fork-join items. Whoever flips it first (a worker
	// or the forking goroutine) runs fn; the other side skips it.
	claimed *atomic.Bool
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Room for every worker to have pending work.
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		if item.claimed != nil && !item.claimed.CompareAndSwap(false, true) {
			// The forking goroutine already ran it inline.
			continue
		}
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Pending work still completes.
// Calling Close multiple times is safe. Close must not race with Do or
// ParallelFor calls on the same pool.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Do runs a and b as a fork-join pair and returns once both have finished.
//
// b is offered to the pool without blocking and a runs on the calling
// goroutine. If no worker has started b by the time a returns, the caller
// takes b back and runs it inline; otherwise it waits for the worker. When
// the queue is full or the pool is closed both run inline, in order.
//
// a and b must not touch overlapping data.
func (p *Pool) Do(a, b func()) {
	if p == nil || p.closed.Load() {
		a()
		b()
		return
	}

	var (
		wg      sync.WaitGroup
		claimed atomic.Bool
	)
	wg.Add(1)

	select {
	case p.workC <- workItem{fn: b, barrier: &wg, claimed: &claimed}:
	default:
		a()
		b()
		return
	}

	a()

	if claimed.CompareAndSwap(false, true) {
		b()
		return
	}
	wg.Wait()
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
// ParallelFor must not be called from inside a task running on the same
// pool; use Do for nested parallelism.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p == nil || p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
