/*
Copyright 2023 The HexaDB Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uca_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexadb/collations/internal/uca"
)

func weightsForCodepoint(table uca.Weights, codepoint rune) (result []uint16) {
	pagePtr := table[codepoint>>8]
	if pagePtr == nil {
		return nil
	}

	page := *pagePtr
	offset := int(codepoint & 0xFF)
	ceCount := int(page[offset])

	for ce := 0; ce < ceCount; ce++ {
		result = append(result,
			page[256+(ce*3+0)*256+offset],
			page[256+(ce*3+1)*256+offset],
			page[256+(ce*3+2)*256+offset],
		)
	}
	return
}

func allWeights(coll *uca.Collation900, input []byte) (weights []uint16) {
	it := coll.Iterator(input, -1)
	defer it.Done()
	for {
		w, ok := it.Next()
		if !ok {
			return
		}
		weights = append(weights, w)
	}
}

func newDefault(levels int) *uca.Collation900 {
	return uca.New900(uca.Table900{Table: uca.WeightTable_uca900, Levels: levels})
}

func TestDefaultTableWeights(t *testing.T) {
	lower := weightsForCodepoint(uca.WeightTable_uca900, 'a')
	upper := weightsForCodepoint(uca.WeightTable_uca900, 'A')
	require.Len(t, lower, 3)
	require.Len(t, upper, 3)

	assert.Equal(t, lower[0], upper[0], "case pairs must share their primary")
	assert.Equal(t, lower[1], upper[1], "case pairs must share their secondary")
	assert.Equal(t, uint16(0x0002), lower[2])
	assert.Equal(t, uint16(0x0008), upper[2])

	var prev uint16
	for cp := 'a'; cp <= 'z'; cp++ {
		w := weightsForCodepoint(uca.WeightTable_uca900, cp)
		require.Len(t, w, 3, "U+%04X", cp)
		assert.Greater(t, w[0], prev, "primaries must ascend through the alphabet")
		prev = w[0]
	}

	space := weightsForCodepoint(uca.WeightTable_uca900, ' ')
	zero := weightsForCodepoint(uca.WeightTable_uca900, '0')
	a := weightsForCodepoint(uca.WeightTable_uca900, 'a')
	assert.Less(t, space[0], zero[0], "whitespace sorts before digits")
	assert.Less(t, zero[0], a[0], "digits sort before letters")
}

func TestDefaultTableExpansions(t *testing.T) {
	e := weightsForCodepoint(uca.WeightTable_uca900, 'e')
	eAcute := weightsForCodepoint(uca.WeightTable_uca900, 'é')
	require.Len(t, eAcute, 6, "é must decompose into a base element and an accent element")

	assert.Equal(t, e[0], eAcute[0], "é must share e's primary")
	assert.Equal(t, uint16(0), eAcute[3], "the accent element is primary ignorable")
	assert.NotEqual(t, uint16(0), eAcute[4], "the accent element carries a secondary")
}

func TestIteratorLevels(t *testing.T) {
	coll := newDefault(3)
	a := weightsForCodepoint(uca.WeightTable_uca900, 'a')

	assert.Equal(t, []uint16{a[0], 0, a[1], 0, a[2]}, allWeights(coll, []byte("a")))

	// single level mode emits no separators
	assert.Equal(t, []uint16{a[0]}, allWeights(newDefault(1), []byte("a")))
}

func TestIteratorMalformedInput(t *testing.T) {
	coll := newDefault(3)

	// a malformed sequence ends the scan for every level
	assert.Equal(t, []uint16{0, 0}, allWeights(coll, []byte{0xFF, 0xFE}))

	a := weightsForCodepoint(uca.WeightTable_uca900, 'a')
	assert.Equal(t, []uint16{a[0], 0, a[1], 0, a[2]}, allWeights(coll, append([]byte("a"), 0xFF)))
}

func TestImplicitWeights(t *testing.T) {
	coll := newDefault(1)

	// core Han ideographs have no table entry; their weights are
	// derived from the codepoint
	assert.Equal(t, []uint16{0xFB40, 0xCE00}, allWeights(coll, []byte("一")))

	prev := []byte("一")
	for _, cp := range []string{"丁", "鿿", "\U00020000"} {
		assert.Negative(t, coll.Collate(prev, []byte(cp), false),
			"implicit weights must preserve codepoint order (%q < %q)", prev, cp)
		prev = []byte(cp)
	}
}

func TestHangulDecomposition(t *testing.T) {
	coll := newDefault(1)

	lead := weightsForCodepoint(uca.WeightTable_uca900, 0x1100)
	vowel := weightsForCodepoint(uca.WeightTable_uca900, 0x1161)
	trail := weightsForCodepoint(uca.WeightTable_uca900, 0x11A8)
	require.NotEmpty(t, lead)
	require.NotEmpty(t, vowel)
	require.NotEmpty(t, trail)

	// U+AC00 decomposes into lead+vowel, U+AC01 into lead+vowel+trail
	assert.Equal(t, []uint16{lead[0], vowel[0]}, allWeights(coll, []byte("가")))
	assert.Equal(t, []uint16{lead[0], vowel[0], trail[0]}, allWeights(coll, []byte("각")))

	assert.Negative(t, coll.Collate([]byte("가"), []byte("각"), false))
}

func TestWeightsEqual(t *testing.T) {
	assert.True(t, newDefault(1).WeightsEqual('a', 'A'))
	assert.True(t, newDefault(1).WeightsEqual('e', 'é'))
	assert.True(t, newDefault(2).WeightsEqual('a', 'A'))
	assert.False(t, newDefault(2).WeightsEqual('e', 'é'))
	assert.False(t, newDefault(3).WeightsEqual('a', 'A'))
	assert.False(t, newDefault(3).WeightsEqual('a', 'b'))
	assert.True(t, newDefault(3).WeightsEqual('a', 'a'))
}

func TestLegacyTableWeights(t *testing.T) {
	coll := uca.NewLegacy(uca.WeightTable_uca520, nil, uca.MaxCodepoint-1)

	// the legacy table is primary-only: case and accents are invisible
	assert.Zero(t, coll.Collate([]byte("a"), []byte("A"), false))
	assert.Zero(t, coll.Collate([]byte("e"), []byte("é"), false))
	assert.Negative(t, coll.Collate([]byte("a"), []byte("b"), false))
	assert.Positive(t, coll.Collate([]byte("b"), []byte("a"), false))
}
