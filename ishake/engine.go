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
// github.com:SymbolNotFound/ishake/ishake/engine.go

// Package ishake implements the incremental SHAKE hash engine described in
// SPEC_FULL.md: per-block SHAKE digests combined under a commutative 64-bit
// word group, so appends, inserts, deletes and updates never require
// rehashing the whole input.
package ishake

import (
	"fmt"
	"sync/atomic"

	"github.com/SymbolNotFound/ishake/internal/blockhash"
	"github.com/SymbolNotFound/ishake/internal/pool"
	"github.com/SymbolNotFound/ishake/internal/word"
)

// state is the engine's lifecycle, per spec.md §4.6.
type state int

const (
	stateFresh state = iota
	stateIngesting
	stateFinalized
)

// Block is re-exported from blockhash so callers never need to import the
// internal package directly.
type Block = blockhash.Block

// IndexHeader and LinkedHeader construct the two header shapes a Block may
// carry; re-exported for the same reason as Block.
var (
	IndexHeader  = blockhash.IndexHeader
	LinkedHeader = blockhash.LinkedHeader
)

// Engine is the incremental SHAKE hash engine. The zero value is not usable;
// construct with New.
type Engine struct {
	cfg   Config
	p     *pool.Pool
	state state

	residual []byte
	blockNo  uint64
	procBytes uint64

	blocksHashed   atomic.Uint64
	bytesProcessed atomic.Uint64
	tasksQueued    atomic.Uint64
}

// Stats reports lightweight counters, the only observability surface this
// module carries (see SPEC_FULL.md §8): no logging framework has another
// call site in library code, so one is not introduced here.
type Stats struct {
	BlocksHashed   uint64
	BytesProcessed uint64
	TasksQueued    uint64
}

// New validates cfg and returns a fresh Engine, starting cfg.Threads worker
// goroutines (or none, for synchronous execution, when cfg.Threads == 0).
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, newError(KindValidation, "New", err)
	}
	return &Engine{
		cfg:   cfg,
		p:     pool.New(cfg.OutputBits, cfg.Threads),
		state: stateFresh,
	}, nil
}

func (e *Engine) enterIngesting() {
	if e.state == stateFresh {
		e.state = stateIngesting
	}
}

func (e *Engine) checkNotFinalized(op string) error {
	if e.state == stateFinalized {
		return newError(KindState, op, ErrFinalized)
	}
	return nil
}

// Append ingests bytes in AppendOnly mode, slicing the residual+incoming
// buffer into BlockSize-8 byte blocks (the 8 reserved bytes are the
// append-only index header), each assigned the next monotonic index and
// queued for hashing. Any data that doesn't fill a whole block is kept in
// the residual buffer for the next Append or for Final's flush.
func (e *Engine) Append(data []byte) error {
	if err := e.checkNotFinalized("Append"); err != nil {
		return err
	}
	if e.cfg.Mode != AppendOnly {
		return newError(KindValidation, "Append", ErrWrongMode)
	}
	e.enterIngesting()

	unit := e.cfg.BlockSize - headerReserve
	input := append(e.residual, data...)
	e.residual = nil

	offset := 0
	for len(input)-offset >= unit {
		chunk := input[offset : offset+unit]
		if err := e.submitIndexed(chunk); err != nil {
			return newError(KindWorker, "Append", err)
		}
		offset += unit
		e.procBytes += uint64(unit)
	}
	e.residual = append([]byte(nil), input[offset:]...)

	return nil
}

// submitIndexed queues data as the next append-only block.
func (e *Engine) submitIndexed(data []byte) error {
	e.blockNo++
	b := blockhash.Block{Data: data, Header: blockhash.IndexHeader(e.blockNo)}
	e.tasksQueued.Add(1)
	e.blocksHashed.Add(1)
	e.bytesProcessed.Add(uint64(len(data)))
	return e.p.Submit(&pool.Task{Block: b, Op: word.OpAdd})
}

// Update folds out (old, new) as sub(hash(old)); add(hash(new)). The engine
// does not verify that old and new share a nonce/index; that is the
// caller's contract, per spec.md §4.5.
func (e *Engine) Update(old, newBlock Block) error {
	if err := e.checkNotFinalized("Update"); err != nil {
		return err
	}
	e.enterIngesting()

	if err := e.submit(old, word.OpSub); err != nil {
		return newError(KindWorker, "Update", err)
	}
	if err := e.submit(newBlock, word.OpAdd); err != nil {
		return newError(KindWorker, "Update", err)
	}
	return nil
}

// Insert adds newBlock to the live set. If previous is non-nil, the
// predecessor's neighbor field is first rewritten to point at newBlock's
// nonce via an internal Update, before newBlock itself is added. Both
// previous (if given) and newBlock must carry 16-byte linked headers.
func (e *Engine) Insert(previous *Block, newBlock Block) error {
	if err := e.checkNotFinalized("Insert"); err != nil {
		return err
	}
	if e.cfg.Mode != Full {
		return newError(KindValidation, "Insert", ErrWrongMode)
	}
	if newBlock.Header.Kind != blockhash.KindLinked {
		return newError(KindValidation, "Insert", ErrWrongHeaderLength)
	}
	e.enterIngesting()

	if previous != nil {
		if previous.Header.Kind != blockhash.KindLinked {
			return newError(KindValidation, "Insert", ErrWrongHeaderLength)
		}
		prevPrime := Block{
			Data:   previous.Data,
			Header: previous.Header.WithNeighbor(newBlock.Header.Nonce),
		}
		if err := e.Update(*previous, prevPrime); err != nil {
			return err
		}
	}

	if err := e.submit(newBlock, word.OpAdd); err != nil {
		return newError(KindWorker, "Insert", err)
	}
	return nil
}

// Delete retires deleted from the live set. If previous is non-nil, its
// neighbor field is first rewritten to what deleted.Header.Neighbor was
// (linking around the retired block), before deleted itself is subtracted.
func (e *Engine) Delete(previous *Block, deleted Block) error {
	if err := e.checkNotFinalized("Delete"); err != nil {
		return err
	}
	if e.cfg.Mode != Full {
		return newError(KindValidation, "Delete", ErrWrongMode)
	}
	if deleted.Header.Kind != blockhash.KindLinked {
		return newError(KindValidation, "Delete", ErrWrongHeaderLength)
	}
	e.enterIngesting()

	if previous != nil {
		if previous.Header.Kind != blockhash.KindLinked {
			return newError(KindValidation, "Delete", ErrWrongHeaderLength)
		}
		prevPrime := Block{
			Data:   previous.Data,
			Header: previous.Header.WithNeighbor(deleted.Header.Neighbor),
		}
		if err := e.Update(*previous, prevPrime); err != nil {
			return err
		}
	}

	if err := e.submit(deleted, word.OpSub); err != nil {
		return newError(KindWorker, "Delete", err)
	}
	return nil
}

func (e *Engine) submit(b Block, op word.Op) error {
	e.tasksQueued.Add(1)
	e.blocksHashed.Add(1)
	e.bytesProcessed.Add(uint64(len(b.Data)))
	return e.p.Submit(&pool.Task{Block: b, Op: op})
}

// Final flushes any residual partial block (AppendOnly only), drains the
// worker pool, and writes the OutputBits/8-byte digest into out. After
// Final returns successfully the engine is Finalized; every further
// operation, including a second Final, returns ErrFinalized.
func (e *Engine) Final(out []byte) error {
	if err := e.checkNotFinalized("Final"); err != nil {
		return err
	}
	if out == nil {
		return newError(KindValidation, "Final", ErrNilOutput)
	}
	want := e.cfg.OutputBits / 8
	if len(out) != want {
		return newError(KindValidation, "Final", fmt.Errorf("%w: want %d, got %d", ErrOutputLengthMismatch, want, len(out)))
	}

	if e.cfg.Mode == AppendOnly && (len(e.residual) > 0 || e.blockNo == 0) {
		if err := e.submitIndexed(e.residual); err != nil {
			return newError(KindWorker, "Final", err)
		}
		e.procBytes += uint64(len(e.residual))
		e.residual = nil
	}

	e.p.Drain()

	if poisoned, werr := e.p.Poisoned(); poisoned {
		e.state = stateFinalized
		return newError(KindWorker, "Final", fmt.Errorf("%w: %v", ErrPoisoned, werr))
	}

	copy(out, blockhash.WordsToBytes(e.p.Snapshot()))
	e.state = stateFinalized
	return nil
}

// Cleanup releases any resources held by a Finalized (or abandoned) engine.
// Go's garbage collector and Final's own Drain already reclaim everything
// this engine holds, so Cleanup is a no-op kept only so callers translating
// from the C API's ishake_cleanup have somewhere to put that call.
func (e *Engine) Cleanup() {}

// Stats returns a snapshot of the engine's lightweight counters.
func (e *Engine) Stats() Stats {
	return Stats{
		BlocksHashed:   e.blocksHashed.Load(),
		BytesProcessed: e.bytesProcessed.Load(),
		TasksQueued:    e.tasksQueued.Load(),
	}
}

// OneShotHash is the init+append+final convenience wrapper from spec.md
// §6.1: hash data in AppendOnly mode at the given output length, using
// DefaultBlockSize and the optionally-provided thread count (0, i.e.
// synchronous, if omitted).
func OneShotHash(data []byte, outputBits int, threads ...int) ([]byte, error) {
	n := 0
	if len(threads) > 0 {
		n = threads[0]
	}
	e, err := New(Config{
		BlockSize:  DefaultBlockSize,
		OutputBits: outputBits,
		Mode:       AppendOnly,
		Threads:    n,
	})
	if err != nil {
		return nil, err
	}
	if err := e.Append(data); err != nil {
		return nil, err
	}
	out := make([]byte, outputBits/8)
	if err := e.Final(out); err != nil {
		return nil, err
	}
	return out, nil
}
