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
// github.com:SymbolNotFound/ishake/internal/pool/elastic.go

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/JekaMas/workerpool"

	"github.com/SymbolNotFound/ishake/internal/blockhash"
	"github.com/SymbolNotFound/ishake/internal/word"
)

// ElasticPool is an alternative executor for the same task/combine
// discipline as Pool, backed by github.com/JekaMas/workerpool's elastic
// goroutine pool instead of a fixed LIFO stack. It is not the default
// scheduler (spec.md's fixed thread_count is), but gives callers who want a
// pool that grows and shrinks under load a drop-in with the same ordering
// guarantee: the combiner is commutative and associative, so elastic
// scheduling is exactly as valid as LIFO scheduling.
type ElasticPool struct {
	outputBits int
	wp         *workerpool.WorkerPool

	aggMu sync.Mutex
	agg   []uint64

	poisoned  atomic.Bool
	workerErr atomic.Value
	errOnce   sync.Once
}

// NewElastic constructs an ElasticPool with maxWorkers goroutines managed
// by the underlying workerpool.
func NewElastic(outputBits int, maxWorkers int) *ElasticPool {
	return &ElasticPool{
		outputBits: outputBits,
		wp:         workerpool.New(maxWorkers),
		agg:        make([]uint64, outputBits/64),
	}
}

// Submit schedules task on the elastic pool. Unlike Pool.Submit it has no
// synchronous mode and returns no error; the underlying pool queues the
// work internally, and a hashing failure is reported through Poisoned.
func (p *ElasticPool) Submit(t *Task) {
	p.wp.Submit(func() {
		digest, err := blockhash.Hash(t.Block, p.outputBits)
		if err != nil {
			p.errOnce.Do(func() { p.workerErr.Store(err) })
			p.poisoned.Store(true)
			return
		}
		p.aggMu.Lock()
		word.CombineInto(p.agg, digest, t.Op)
		p.aggMu.Unlock()
	})
}

// Drain stops accepting new work and waits for everything queued to finish.
func (p *ElasticPool) Drain() {
	p.wp.StopWait()
}

// Poisoned mirrors Pool.Poisoned.
func (p *ElasticPool) Poisoned() (bool, error) {
	if !p.poisoned.Load() {
		return false, nil
	}
	err, _ := p.workerErr.Load().(error)
	return true, err
}

// Snapshot mirrors Pool.Snapshot.
func (p *ElasticPool) Snapshot() []uint64 {
	p.aggMu.Lock()
	defer p.aggMu.Unlock()
	out := make([]uint64, len(p.agg))
	copy(out, p.agg)
	return out
}
