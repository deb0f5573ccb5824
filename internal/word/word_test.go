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
// github.com:SymbolNotFound/ishake/internal/word/word_test.go

package word_test

import (
	"math"
	"testing"

	"github.com/SymbolNotFound/ishake/internal/word"
	"github.com/stretchr/testify/require"
)

func Test_AddSubInverse(t *testing.T) {
	cases := []struct {
		name string
		a, b uint64
	}{
		{"zero", 0, 0},
		{"small", 3, 5},
		{"overflow", math.MaxUint64, 1},
		{"both max", math.MaxUint64, math.MaxUint64},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			sum := word.Add(tt.a, tt.b)
			require.Equal(t, tt.a, word.Sub(sum, tt.b))
		})
	}
}

func Test_AddCommutative(t *testing.T) {
	require.Equal(t, word.Add(17, 42), word.Add(42, 17))
}

func Test_CombineInto_RoundTrip(t *testing.T) {
	agg := []uint64{1, 2, 3, 4}
	delta := []uint64{10, 20, 30, 40}
	original := append([]uint64(nil), agg...)

	word.CombineInto(agg, delta, word.OpAdd)
	require.Equal(t, []uint64{11, 22, 33, 44}, agg)

	word.CombineInto(agg, delta, word.OpSub)
	require.Equal(t, original, agg)
}

func Test_AddInto_SubInto(t *testing.T) {
	d1 := []uint64{1, 2, 3}
	d2 := []uint64{100, 200, 300}

	combinedA := append([]uint64(nil), d1...)
	word.AddInto(combinedA, d2)
	combinedB := append([]uint64(nil), d2...)
	word.AddInto(combinedB, d1)
	require.Equal(t, combinedA, combinedB, "combine_add must be commutative")

	word.SubInto(combinedA, d2)
	require.Equal(t, d1, combinedA, "combine_sub(combine_add(d1,d2),d2) == d1")
}
