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
// github.com:SymbolNotFound/ishake/internal/blockhash/blockhash.go

// Package blockhash computes the per-block digest iSHAKE combines into its
// aggregate. It plays the role the teacher's sha1 package plays for a plain
// Merkle-Damgard hash (an io.Writer-shaped Hasher producing a fixed Digest),
// generalized to an XOF backend whose output length is chosen per engine
// (SHAKE128 below 4161 bits, SHAKE256 at or above 6528), and to blocks whose
// hashed message is data followed by a header rather than raw bytes alone.
package blockhash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// ErrEmptyHeaderMismatch names a header whose length does not match its
// kind. No function in this package currently returns it.
var ErrEmptyHeaderMismatch = errors.New("blockhash: header length does not match its kind")

// Block is a value hashed as one iSHAKE unit: data followed by its header.
type Block struct {
	Data   []byte
	Header Header
}

// Backend selects which Keccak-based XOF services a given output length, per
// spec.md's two non-overlapping windows.
type Backend int

const (
	Backend128 Backend = iota
	Backend256
)

// SelectBackend returns SHAKE128 for H <= 4160 bits, SHAKE256 otherwise. The
// caller (ishake.Config.Validate) is responsible for rejecting H outside the
// two legal windows before this is ever called.
func SelectBackend(outputBits int) Backend {
	if outputBits <= 4160 {
		return Backend128
	}
	return Backend256
}

func newShake(b Backend) sha3.ShakeHash {
	if b == Backend128 {
		return sha3.NewShake128()
	}
	return sha3.NewShake256()
}

// Hash serializes block as data‖header (header big-endian, appended after
// the data, never prepended) and returns outputBits/64 big-endian 64-bit
// words read from the XOF. A data_len == 0 block is legal: only the header
// bytes are absorbed.
func Hash(block Block, outputBits int) ([]uint64, error) {
	if outputBits <= 0 || outputBits%64 != 0 {
		return nil, fmt.Errorf("blockhash: output length %d is not a positive multiple of 64", outputBits)
	}

	xof := newShake(SelectBackend(outputBits))
	if _, err := xof.Write(block.Data); err != nil {
		return nil, fmt.Errorf("blockhash: writing block data: %w", err)
	}
	headerBytes := block.Header.Bytes()
	if _, err := xof.Write(headerBytes); err != nil {
		return nil, fmt.Errorf("blockhash: writing block header: %w", err)
	}

	outBytes := outputBits / 8
	out := make([]byte, outBytes)
	if _, err := xof.Read(out); err != nil {
		return nil, fmt.Errorf("blockhash: reading XOF output: %w", err)
	}

	return repackWords(out), nil
}

// repackWords views a big-endian byte slice as H/64 big-endian 64-bit words.
func repackWords(out []byte) []uint64 {
	words := make([]uint64, len(out)/8)
	for i := range words {
		b := out[i*8 : i*8+8]
		words[i] = uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
			uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
	}
	return words
}

// WordsToBytes is the inverse of repackWords: serialize H/64 words as
// H/8 big-endian bytes, used when writing the final aggregate digest.
func WordsToBytes(words []uint64) []byte {
	out := make([]byte, len(words)*8)
	for i, w := range words {
		b := out[i*8 : i*8+8]
		b[0] = byte(w >> 56)
		b[1] = byte(w >> 48)
		b[2] = byte(w >> 40)
		b[3] = byte(w >> 32)
		b[4] = byte(w >> 24)
		b[5] = byte(w >> 16)
		b[6] = byte(w >> 8)
		b[7] = byte(w)
	}
	return out
}
