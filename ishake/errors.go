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
// github.com:SymbolNotFound/ishake/ishake/errors.go

package ishake

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure the way spec.md §7 requires: validation
// errors are synchronous and leave engine state unchanged, allocation
// failures leave the engine safe to clean up, and worker-path failures mean
// a queued block could not be hashed and the aggregate is no longer trusted.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindAllocation
	KindWorker
	KindState
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAllocation:
		return "allocation"
	case KindWorker:
		return "worker"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error wraps a failure with the operation that raised it and its Kind.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ishake: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Sentinel validation/state errors, wrapped into an *Error by the engine at
// the point they are raised.
var (
	ErrFinalized         = errors.New("engine is already finalized")
	ErrWrongMode         = errors.New("operation is not valid in the engine's mode")
	ErrWrongHeaderLength = errors.New("block header length does not match the engine's mode")
	ErrBadBlockSize      = errors.New("block size must exceed the 8-byte header reserve")
	ErrBadOutputBits     = errors.New("output length must be a multiple of 64 within a supported window")
	ErrNilOutput          = errors.New("output buffer is nil")
	ErrOutputLengthMismatch = errors.New("output buffer length does not match the configured digest size")
	ErrPoisoned          = errors.New("a worker failed to hash a queued block; aggregate is untrustworthy")
)
