// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/ishake/internal/pool/pool.go

// Package pool implements the task stack and worker pool that back iSHAKE's
// mutation protocol (spec.md §5). A Task is an owned block plus the group
// operation to fold its digest into the aggregate with. Producers push onto
// a LIFO stack under a mutex and signal a condition variable; idle workers
// wait on it. Ordering is irrelevant because the combiner is commutative and
// associative (spec.md §5's "Ordering guarantee"), so a stack is used purely
// because it is the cheapest structure to push/pop under a lock, exactly as
// the teacher's safe package wraps a shared generator behind a lock-free
// channel for the analogous reason (cheap concurrent access, no fairness
// requirement).
package pool

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/SymbolNotFound/ishake/internal/blockhash"
	"github.com/SymbolNotFound/ishake/internal/word"
)

// Task is one unit of work: hash Block and fold the result into the shared
// aggregate using Op.
type Task struct {
	Block blockhash.Block
	Op    word.Op
}

// Pool owns the aggregate's combine step and, when started with Threads > 0,
// a fixed set of worker goroutines draining a LIFO task stack. With
// Threads == 0 it runs every task synchronously on the caller's goroutine,
// matching spec.md's "otherwise fully synchronous single-threaded execution"
// scheduling fork.
type Pool struct {
	outputBits int
	threads    int

	aggMu sync.Mutex
	agg   []uint64

	stackMu sync.Mutex
	cond    *sync.Cond
	stack   []*Task
	done    bool

	wg sync.WaitGroup

	poisoned atomic.Bool
	workerErr atomic.Value // stores error
	errOnce   sync.Once
}

// New constructs a Pool with an aggregate of outputBits/64 zero words and
// starts threads worker goroutines (threads == 0 means synchronous mode).
func New(outputBits int, threads int) *Pool {
	p := &Pool{
		outputBits: outputBits,
		threads:    threads,
		agg:        make([]uint64, outputBits/64),
	}
	p.cond = sync.NewCond(&p.stackMu)
	for i := 0; i < threads; i++ {
		p.wg.Add(1)
		go p.workerLoop()
	}
	return p
}

// Submit enqueues task. In synchronous mode (Threads == 0) it is hashed and
// combined immediately on the calling goroutine; otherwise it is pushed onto
// the LIFO stack (the "Producer" step of spec.md §5) and a worker is woken.
func (p *Pool) Submit(t *Task) error {
	if p.threads == 0 {
		return p.process(t)
	}

	p.stackMu.Lock()
	if p.done {
		p.stackMu.Unlock()
		return fmt.Errorf("pool: submit after Drain")
	}
	p.stack = append(p.stack, t)
	p.stackMu.Unlock()
	p.cond.Signal()
	return nil
}

// workerLoop is the per-goroutine loop described in spec.md §5: wait for
// work or shutdown, pop, hash (no shared state), combine under the
// aggregate's own lock, repeat.
func (p *Pool) workerLoop() {
	defer p.wg.Done()
	for {
		p.stackMu.Lock()
		for len(p.stack) == 0 && !p.done {
			p.cond.Wait()
		}
		if len(p.stack) == 0 && p.done {
			p.stackMu.Unlock()
			return
		}
		last := len(p.stack) - 1
		t := p.stack[last]
		p.stack = p.stack[:last]
		p.stackMu.Unlock()

		if err := p.process(t); err != nil {
			p.errOnce.Do(func() { p.workerErr.Store(err) })
			p.poisoned.Store(true)
		}
	}
}

// process hashes t.Block and folds it into the aggregate under aggMu. It is
// called both from worker goroutines and directly from Submit in
// synchronous mode, so the hash-then-combine sequence has exactly one
// implementation.
func (p *Pool) process(t *Task) error {
	digest, err := blockhash.Hash(t.Block, p.outputBits)
	if err != nil {
		return fmt.Errorf("pool: hashing block: %w", err)
	}

	p.aggMu.Lock()
	word.CombineInto(p.agg, digest, t.Op)
	p.aggMu.Unlock()
	return nil
}

// Drain signals shutdown, wakes every waiting worker, and blocks until all
// in-flight and queued tasks have completed. Safe to call once; the engine's
// Final is the only caller.
func (p *Pool) Drain() {
	if p.threads == 0 {
		return
	}
	p.stackMu.Lock()
	p.done = true
	p.stackMu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}

// Poisoned reports whether any worker failed to hash its block, and the
// first such error. spec.md §7 requires this to be surfaced rather than
// silently dropping the block, unlike the original C implementation.
func (p *Pool) Poisoned() (bool, error) {
	if !p.poisoned.Load() {
		return false, nil
	}
	err, _ := p.workerErr.Load().(error)
	return true, err
}

// Snapshot returns a copy of the current aggregate. Safe to call at any
// time; concurrent Submits may race with the copy but the aggregate's
// invertibility means any snapshot is a valid intermediate state.
func (p *Pool) Snapshot() []uint64 {
	p.aggMu.Lock()
	defer p.aggMu.Unlock()
	out := make([]uint64, len(p.agg))
	copy(out, p.agg)
	return out
}
