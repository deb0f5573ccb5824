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
// github.com:SymbolNotFound/ishake/internal/blockhash/blockhash_test.go

package blockhash_test

import (
	"testing"

	"github.com/SymbolNotFound/ishake/internal/blockhash"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

// shake128 returns n bytes of SHAKE128 over the concatenation of parts.
func shake128(n int, parts ...[]byte) []byte {
	xof := sha3.NewShake128()
	for _, p := range parts {
		xof.Write(p)
	}
	out := make([]byte, n)
	xof.Read(out)
	return out
}

func Test_SelectBackend(t *testing.T) {
	require.Equal(t, blockhash.Backend128, blockhash.SelectBackend(2688))
	require.Equal(t, blockhash.Backend128, blockhash.SelectBackend(4160))
	require.Equal(t, blockhash.Backend256, blockhash.SelectBackend(6528))
	require.Equal(t, blockhash.Backend256, blockhash.SelectBackend(16512))
}

func Test_Hash_Deterministic(t *testing.T) {
	b := blockhash.Block{Data: []byte("hello block"), Header: blockhash.IndexHeader(1)}
	h1, err := blockhash.Hash(b, 2688)
	require.NoError(t, err)
	h2, err := blockhash.Hash(b, 2688)
	require.NoError(t, err)
	require.Equal(t, h1, h2)
	require.Len(t, h1, 2688/64)
}

func Test_Hash_EmptyDataLegal(t *testing.T) {
	b := blockhash.Block{Data: nil, Header: blockhash.IndexHeader(1)}
	h, err := blockhash.Hash(b, 2688)
	require.NoError(t, err)
	require.Len(t, h, 2688/64)
}

func Test_Hash_HeaderAppendedAfterData(t *testing.T) {
	// Same data, different header -> different digest: the header must be
	// absorbed, not silently dropped or prepended-and-cancelled.
	data := []byte("same payload")
	h1, err := blockhash.Hash(blockhash.Block{Data: data, Header: blockhash.IndexHeader(1)}, 2688)
	require.NoError(t, err)
	h2, err := blockhash.Hash(blockhash.Block{Data: data, Header: blockhash.IndexHeader(2)}, 2688)
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)

	// The digest is SHAKE128 over data followed by the big-endian header.
	want := shake128(2688/8, data, blockhash.IndexHeader(1).Bytes())
	require.Equal(t, want, blockhash.WordsToBytes(h1))
}

func Test_Hash_LinkedHeaderAffectsDigest(t *testing.T) {
	data := make([]byte, 48)
	copy(data, "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	h1, err := blockhash.Hash(blockhash.Block{Data: data, Header: blockhash.LinkedHeader(10, 20)}, 2688)
	require.NoError(t, err)
	h2, err := blockhash.Hash(blockhash.Block{Data: data, Header: blockhash.LinkedHeader(10, 30)}, 2688)
	require.NoError(t, err)
	require.NotEqual(t, h1, h2, "neighbor rewrite must change the digest")
}

func Test_HeaderLen(t *testing.T) {
	require.Equal(t, 8, blockhash.IndexHeader(5).Len())
	require.Equal(t, 16, blockhash.LinkedHeader(1, 2).Len())
}

func Test_WordsBytes_RoundTrip(t *testing.T) {
	b := blockhash.Block{Data: []byte("roundtrip"), Header: blockhash.IndexHeader(7)}
	words, err := blockhash.Hash(b, 2688)
	require.NoError(t, err)

	raw := blockhash.WordsToBytes(words)
	require.Len(t, raw, 2688/8)
	require.Equal(t, shake128(2688/8, b.Data, b.Header.Bytes()), raw)
}

func Test_Hash_RejectsBadOutputLength(t *testing.T) {
	_, err := blockhash.Hash(blockhash.Block{Header: blockhash.IndexHeader(1)}, 100)
	require.Error(t, err)
}
