// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting slice
// evaluations into lane-aligned chunks. A Pool is created once and reused
// across calls, so a bulk evaluation costs one channel send per chunk and no
// goroutine spawns.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(in), 4, func(start, end int) {
//	    math.Exp(in[start:end], out[start:end])
//	})
//
// Chunk boundaries are multiples of the requested alignment, so only the
// last chunk can end in a partial vector.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once in New and
// live until Close.
type Pool struct {
	numWorkers int
	tasks      chan task

	// mu is held for reading while a call sends chunks and for writing
	// while Close closes tasks, so no send can reach a closed channel.
	mu     sync.RWMutex
	closed bool
}

// task is one chunk of a parallel call.
type task struct {
	run  func()
	done *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued chunks have run. It is safe to call
// Close more than once and concurrently with ParallelFor: Close waits for
// calls that are handing out chunks, and later calls run on the calling
// goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.tasks)
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous chunks whose
// boundaries are multiples of align, runs fn(start, end) on each and blocks
// until all of them return. align <= 0 is treated as 1.
func (p *Pool) ParallelFor(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if align <= 0 {
		align = 1
	}

	blocks := (n + align - 1) / align
	workers := min(p.numWorkers, blocks)
	if workers <= 1 {
		fn(0, n)
		return
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	chunk := ((blocks + workers - 1) / workers) * align

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.tasks <- task{
			run:  func() { fn(start, end) },
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelForBatched hands out chunks of batch elements to whichever worker
// is free, which balances load when the cost per element varies (for
// example when some elements take the scalar fallback). batch is rounded up
// to a multiple of align. fn receives [start, end) and blocks until all
// chunks are done.
func (p *Pool) ParallelForBatched(n, batch, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if align <= 0 {
		align = 1
	}
	if batch < align {
		batch = align
	}
	batch = ((batch + align - 1) / align) * align

	numBatches := (n + batch - 1) / batch
	workers := min(p.numWorkers, numBatches)
	if workers <= 1 {
		fn(0, n)
		return
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					start := int(next.Add(1)-1) * batch
					if start >= n {
						return
					}
					fn(start, min(start+batch, n))
				}
			},
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
