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
// github.com:SymbolNotFound/ishake/internal/testutil/source.go

// Package testutil generates deterministic pseudorandom data for property
// tests, the same role the teacher's gorng package (a SHA-1-backed
// math/rand-style Source) plays, rebuilt on the XOF this module already
// depends on instead of a second hash family.
package testutil

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Source is a deterministic byte and word generator seeded once at
// construction; the same seed always yields the same sequence, which is
// what makes it useful for reproducing a failing property test.
type Source struct {
	xof sha3.ShakeHash
}

// NewSource seeds a Source from an arbitrary byte string. Two Sources
// constructed from equal seeds produce identical output sequences.
func NewSource(seed []byte) *Source {
	xof := sha3.NewShake256()
	xof.Write(seed)
	return &Source{xof: xof}
}

// NewSeededUint64 is a convenience constructor matching the teacher's
// NewSourceSeeded(seed, more...) shape for callers that only have integers
// on hand.
func NewSeededUint64(seed uint64, more ...uint64) *Source {
	buf := make([]byte, 8*(1+len(more)))
	binary.BigEndian.PutUint64(buf[0:8], seed)
	for i, v := range more {
		binary.BigEndian.PutUint64(buf[8*(i+1):8*(i+2)], v)
	}
	return NewSource(buf)
}

// Uint64 draws the next 8 bytes from the stream as a big-endian uint64.
func (s *Source) Uint64() uint64 {
	var b [8]byte
	s.xof.Read(b[:])
	return binary.BigEndian.Uint64(b[:])
}

// Bytes draws n bytes from the stream.
func (s *Source) Bytes(n int) []byte {
	b := make([]byte, n)
	s.xof.Read(b)
	return b
}
