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
// github.com:SymbolNotFound/ishake/internal/word/word.go

// Package word implements the Abelian group iSHAKE combines per-block
// digests under: 64-bit words with addition modulo 2^64 as the group
// operation and subtraction as its inverse. Wrap-around unsigned integer
// arithmetic is already exactly invertible, so no explicit modulus is
// carried the way the original C sources threaded one through add_mod/sub_mod.
package word

// Add returns a+b mod 2^64. Branch-free, constant-time in its operands.
func Add(a, b uint64) uint64 {
	return a + b
}

// Sub returns a-b mod 2^64, the inverse of Add.
func Sub(a, b uint64) uint64 {
	return a - b
}

// Op is one of the two group operations applied during a combine step.
type Op int

const (
	OpAdd Op = iota
	OpSub
)

// Apply dispatches to Add or Sub.
func (op Op) Apply(a, b uint64) uint64 {
	if op == OpSub {
		return Sub(a, b)
	}
	return Add(a, b)
}

// CombineInto applies op element-wise, writing the result into agg:
// agg[i] = op(agg[i], delta[i]). Both slices must have equal length;
// callers within this module guarantee that via shared sizing from H.
func CombineInto(agg []uint64, delta []uint64, op Op) {
	for i := range agg {
		agg[i] = op.Apply(agg[i], delta[i])
	}
}

// AddInto is CombineInto with OpAdd, a distinct entry point that does not
// branch on the operation. The pool's combine step uses CombineInto.
func AddInto(agg []uint64, delta []uint64) {
	for i := range agg {
		agg[i] += delta[i]
	}
}

// SubInto is CombineInto with OpSub.
func SubInto(agg []uint64, delta []uint64) {
	for i := range agg {
		agg[i] -= delta[i]
	}
}
