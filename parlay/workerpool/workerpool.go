// Copyright 2025 The go-parlay Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the fork-join scheduling substrate for the
// parlay primitives: a persistent, reusable worker pool plus two-way and
// three-way synchronous forks. Unlike per-call goroutine spawning, a Pool
// is created once and reused across many operations, eliminating
// allocation and spawn overhead on the hot path of block-decomposed
// algorithms.
//
// Usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	// Reuse pool across many operations
//	for _, col := range columns {
//	    pool.For(len(col), 0, false, func(i int) {
//	        process(col[i])
//	    })
//	}
//
// All entry points are synchronous: they return only after every spawned
// unit of work has completed. There is no cancellation; issued work always
// runs to completion.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
//
// A nil *Pool is valid and runs everything sequentially in the caller's
// goroutine, which is convenient for tests and for forcing serial
// execution without touching call sites.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single unit of iteration work to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
//
// If numWorkers <= 0, the pool is sized to the machine: GOMAXPROCS capped
// at the physical core count. The block kernels scheduled here are
// memory-bound, so hyperthread oversubscription buys nothing.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers()
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

func defaultWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if pc := cpuid.CPU.PhysicalCores; pc > 0 && pc < n {
		n = pc
	}
	return n
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool. A nil pool reports
// a single worker.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe. Operations issued after Close run
// sequentially in the caller's goroutine.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Do runs f and g as a two-way fork and returns once both have finished.
//
// Forks run on fresh goroutines rather than on the pool's workers, so
// recursive fork trees of any depth cannot starve the fixed worker set;
// the pool bounds iteration work only. If either function panics, the
// other still runs to completion and the left-most recovered panic value
// is re-raised in the caller after the join.
func (p *Pool) Do(f, g func()) {
	if p == nil || p.closed.Load() {
		f()
		g()
		return
	}

	var gPanic any
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		gPanic = protect(g)
		wg.Done()
	}()
	fPanic := protect(f)
	wg.Wait()

	if fPanic != nil {
		panic(fPanic)
	}
	if gPanic != nil {
		panic(gPanic)
	}
}

// Do3 runs f, g, and h as a three-way fork and returns once all three have
// finished. Panic semantics match Do: join everything, then re-raise the
// left-most recovered panic.
func (p *Pool) Do3(f, g, h func()) {
	if p == nil || p.closed.Load() {
		f()
		g()
		h()
		return
	}

	var gPanic, hPanic any
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		gPanic = protect(g)
		wg.Done()
	}()
	go func() {
		hPanic = protect(h)
		wg.Done()
	}()
	fPanic := protect(f)
	wg.Wait()

	for _, pv := range [...]any{fPanic, gPanic, hPanic} {
		if pv != nil {
			panic(pv)
		}
	}
}

// protect invokes f and converts a panic into a returned value.
func protect(f func()) (pv any) {
	defer func() { pv = recover() }()
	f()
	return nil
}

// For applies fn to every index in [0, n), handing contiguous chunks of
// the range to the pool's workers, and blocks until every index has been
// processed.
//
// grain suggests how many indices a worker grabs at a time; grain <= 0
// divides the range evenly across the workers. conservative halves the
// chunk size, trading a little scheduling overhead for finer interleaving
// when the call is nested inside an already-parallel context.
//
// fn must not issue pool operations itself; every worker that picks up a
// chunk runs it to completion without suspending. Forks (Do, Do3) are the
// nesting points. If fn panics, the remaining chunks still run and the
// panic raised earliest in range order is re-raised after the join.
func (p *Pool) For(n, grain int, conservative bool, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.closed.Load() {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := grain
	if chunk <= 0 {
		chunk = (n + p.numWorkers - 1) / p.numWorkers
	}
	if conservative && chunk > 1 {
		chunk = (chunk + 1) / 2
	}

	numChunks := (n + chunk - 1) / chunk
	workers := min(p.numWorkers, numChunks)
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var (
		cursor chunkCursor
		trap   panicTrap
		wg     sync.WaitGroup
	)
	wg.Add(workers)
	body := func() {
		for {
			start := int(cursor.next.Add(int64(chunk))) - chunk
			if start >= n {
				return
			}
			end := min(start+chunk, n)
			trap.run(start, func() {
				for i := start; i < end; i++ {
					fn(i)
				}
			})
		}
	}
	for i := 0; i < workers; i++ {
		p.workC <- workItem{fn: body, barrier: &wg}
	}
	wg.Wait()
	trap.rethrow()
}

// chunkCursor is the shared index dispenser for For. The padding keeps the
// hot cursor off the cache line holding the caller's join state.
type chunkCursor struct {
	_    cpu.CacheLinePad
	next atomic.Int64
	_    cpu.CacheLinePad
}

// panicTrap records the panic raised earliest in range order so parallel
// iteration surfaces a deterministic failure after the join, mirroring a
// sequential left-to-right execution.
type panicTrap struct {
	mu  sync.Mutex
	idx int
	val any
}

func (t *panicTrap) run(index int, f func()) {
	defer func() {
		if pv := recover(); pv != nil {
			t.mu.Lock()
			if t.val == nil || index < t.idx {
				t.idx, t.val = index, pv
			}
			t.mu.Unlock()
		}
	}()
	f()
}

func (t *panicTrap) rethrow() {
	if t.val != nil {
		panic(t.val)
	}
}
