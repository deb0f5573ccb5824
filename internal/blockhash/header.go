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
// github.com:SymbolNotFound/ishake/internal/blockhash/header.go

package blockhash

import "encoding/binary"

// Kind distinguishes the two header shapes a Block may carry.
type Kind int

const (
	// KindIndex is the 8-byte append-only header: a monotonic block index.
	KindIndex Kind = iota
	// KindLinked is the 16-byte full-mode header: (nonce, neighbor).
	KindLinked
)

// Header is the tagged union of the two header shapes from the spec. Length
// is derived from Kind rather than stored, per the REDESIGN FLAGS guidance
// against carrying a raw-pointer union with an explicit length field.
type Header struct {
	Kind     Kind
	Index    uint64 // valid when Kind == KindIndex
	Nonce    uint64 // valid when Kind == KindLinked
	Neighbor uint64 // valid when Kind == KindLinked; "next" convention, see SPEC_FULL.md
}

// IndexHeader builds an append-only header carrying the given block index.
func IndexHeader(idx uint64) Header {
	return Header{Kind: KindIndex, Index: idx}
}

// LinkedHeader builds a full-mode header for a block identified by nonce,
// linked to the block whose nonce is neighbor.
func LinkedHeader(nonce, neighbor uint64) Header {
	return Header{Kind: KindLinked, Nonce: nonce, Neighbor: neighbor}
}

// Len reports the serialized header length in bytes: 8 for KindIndex, 16 for
// KindLinked.
func (h Header) Len() int {
	if h.Kind == KindLinked {
		return 16
	}
	return 8
}

// Bytes serializes the header as big-endian integers, independent of host
// endianness (the original C source did this with a runtime IS_BIG_ENDIAN
// check and a byte-swap; Go's encoding/binary makes that unconditional).
func (h Header) Bytes() []byte {
	buf := make([]byte, h.Len())
	if h.Kind == KindLinked {
		binary.BigEndian.PutUint64(buf[0:8], h.Nonce)
		binary.BigEndian.PutUint64(buf[8:16], h.Neighbor)
	} else {
		binary.BigEndian.PutUint64(buf[0:8], h.Index)
	}
	return buf
}

// WithNeighbor returns a copy of h with Neighbor replaced. Used by the
// engine's insert/delete bookkeeping to synthesize the rewritten predecessor
// block without mutating caller-owned state.
func (h Header) WithNeighbor(neighbor uint64) Header {
	h.Neighbor = neighbor
	return h
}
