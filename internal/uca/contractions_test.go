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

	"github.com/hexadb/collations/internal/uca"
)

func TestContractionMatching(t *testing.T) {
	coll := uca.New900(uca.Table900{
		Table:  uca.WeightTable_uca900,
		Levels: 1,
		Contractions: []uca.Contraction{
			{Path: []rune{'c', 'h'}, Weights: []uint16{0x5000, 0x0020, 0x0002}},
			{Path: []rune{'c', 'h', 'x'}, Weights: []uint16{0x5100, 0x0020, 0x0002}},
		},
	})

	c := weightsForCodepoint(uca.WeightTable_uca900, 'c')
	h := weightsForCodepoint(uca.WeightTable_uca900, 'h')
	x := weightsForCodepoint(uca.WeightTable_uca900, 'x')
	y := weightsForCodepoint(uca.WeightTable_uca900, 'y')

	// "ch" collapses into a single element; "cx" does not
	assert.Equal(t, []uint16{0x5000}, allWeights(coll, []byte("ch")))
	assert.Equal(t, []uint16{c[0], x[0]}, allWeights(coll, []byte("cx")))

	// longest match wins
	assert.Equal(t, []uint16{0x5100}, allWeights(coll, []byte("chx")))
	assert.Equal(t, []uint16{0x5000, h[0]}, allWeights(coll, []byte("chh")))

	// a match mid-string resumes normal scanning afterwards
	assert.Equal(t, []uint16{x[0], 0x5000, y[0]}, allWeights(coll, []byte("xchy")))
	assert.Equal(t, []uint16{x[0], 0x5100}, allWeights(coll, []byte("xchx")))
}

func TestContextualContraction(t *testing.T) {
	coll := uca.New900(uca.Table900{
		Table:  uca.WeightTable_uca900,
		Levels: 1,
		Contractions: []uca.Contraction{
			{Path: []rune{'t', 'x'}, Weights: []uint16{0x6000, 0x0020, 0x0002}, Contextual: true},
		},
	})

	a := weightsForCodepoint(uca.WeightTable_uca900, 'a')
	t0 := weightsForCodepoint(uca.WeightTable_uca900, 't')
	x := weightsForCodepoint(uca.WeightTable_uca900, 'x')

	// the pair never matches at the start of the scan
	assert.Equal(t, []uint16{t0[0], x[0]}, allWeights(coll, []byte("tx")))

	// with a preceding codepoint, 'x' after 't' takes the pair weight
	assert.Equal(t, []uint16{a[0], t0[0], 0x6000}, allWeights(coll, []byte("atx")))

	// the context codepoint must immediately precede
	assert.Equal(t, []uint16{a[0], t0[0], a[0], x[0]}, allWeights(coll, []byte("atax")))
}

func TestContractionMaxLength(t *testing.T) {
	path := []rune{'a', 'b', 'c', 'd', 'e', 'f'}
	coll := uca.New900(uca.Table900{
		Table:  uca.WeightTable_uca900,
		Levels: 1,
		Contractions: []uca.Contraction{
			{Path: path, Weights: []uint16{0x7000, 0x0020, 0x0002}},
		},
	})

	assert.Equal(t, []uint16{0x7000}, allWeights(coll, []byte("abcdef")))

	// a near-miss falls back to per-codepoint weights
	weights := allWeights(coll, []byte("abcdeg"))
	assert.Len(t, weights, 6)
	assert.Equal(t, weightsForCodepoint(uca.WeightTable_uca900, 'a')[0], weights[0])
}
