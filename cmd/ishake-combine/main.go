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
// github.com:SymbolNotFound/ishake/cmd/ishake-combine/main.go

// ishake-combine applies the group operation to two hex-encoded digests,
// the Go counterpart of the original combine.c: given two equal-length
// digests, it word-wise adds or subtracts the second into the first and
// prints the result as hex.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/SymbolNotFound/ishake/internal/word"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\t%s [--add|--sub] hash1 hash2\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\t--add\t\tApply the addition operation. Default.\n")
	fmt.Fprintf(os.Stderr, "\t--sub\t\tApply the subtraction operation.\n")
	fmt.Fprintf(os.Stderr, "\t--help\t\tPrint this help.\n")
	fmt.Fprintf(os.Stderr, "\thash1\t\tThe first operand to the operation requested.\n")
	fmt.Fprintf(os.Stderr, "\thash2\t\tThe second operand to the operation requested.\n")
}

func panicf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s: ", os.Args[0])
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
	usage()
	os.Exit(1)
}

func bytesToWords(b []byte) []uint64 {
	words := make([]uint64, len(b)/8)
	for i := range words {
		words[i] = binary.BigEndian.Uint64(b[i*8 : i*8+8])
	}
	return words
}

func wordsToBytes(words []uint64) []byte {
	out := make([]byte, len(words)*8)
	for i, w := range words {
		binary.BigEndian.PutUint64(out[i*8:i*8+8], w)
	}
	return out
}

func main() {
	op := word.OpAdd
	var hash1, hash2 string

	for _, arg := range os.Args[1:] {
		switch arg {
		case "--sub":
			op = word.OpSub
		case "--add":
			op = word.OpAdd
		case "--help":
			usage()
			return
		default:
			switch {
			case hash1 != "" && hash2 != "":
				panicf("cannot combine more than two hashes.")
			case hash1 != "":
				hash2 = arg
			default:
				hash1 = arg
			}
		}
	}

	if hash1 == "" || hash2 == "" {
		panicf("two hashes are required.")
	}
	if len(hash1) != len(hash2) {
		panicf("both hashes must have the same length.")
	}
	if len(hash1)%16 != 0 {
		panicf("the length of the hashes must be multiple of 16.")
	}

	bin1, err := hex.DecodeString(hash1)
	if err != nil {
		panicf("hash1 is not valid hex: %v", err)
	}
	bin2, err := hex.DecodeString(hash2)
	if err != nil {
		panicf("hash2 is not valid hex: %v", err)
	}

	agg := bytesToWords(bin1)
	delta := bytesToWords(bin2)
	word.CombineInto(agg, delta, op)

	fmt.Println(hex.EncodeToString(wordsToBytes(agg)))
}
