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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexadb/collations/internal/uca"
)

func TestWeightStringOrder(t *testing.T) {
	coll := newDefault(3)

	inputs := []string{"", "A", "a", "aa", "ab", "b", "ba", "é", "z"}
	sorted := []string{"", "a", "A", "aa", "ab", "b", "ba", "é", "z"}

	keys := make(map[string][]byte)
	for _, in := range inputs {
		keys[in] = coll.WeightString(nil, []byte(in), 0)
	}

	for i := 0; i+1 < len(sorted); i++ {
		l, r := sorted[i], sorted[i+1]
		assert.Negative(t, bytes.Compare(keys[l], keys[r]),
			"weight strings must sort like Collate: %q < %q", l, r)
		assert.Negative(t, coll.Collate([]byte(l), []byte(r), false))
	}
}

func TestWeightStringNilDestination(t *testing.T) {
	coll := newDefault(3)

	// a nil destination is unbounded, not full
	key := coll.WeightString(nil, []byte("abc"), 0)
	require.NotEmpty(t, key)
	assert.Equal(t, coll.WeightString(make([]byte, 0, 128), []byte("abc"), 0), key)

	legacy := uca.NewLegacy(uca.WeightTable_uca520, nil, uca.MaxCodepoint-1)
	assert.NotEmpty(t, legacy.WeightString(nil, []byte("abc"), 0))
}

func TestWeightStringPrefixLaw(t *testing.T) {
	coll := newDefault(3)
	input := []byte("hello world")

	full := coll.WeightString(nil, input, 0)
	for capacity := 1; capacity < len(full)+4; capacity++ {
		bounded := coll.WeightString(make([]byte, 0, capacity), input, 0)
		assert.LessOrEqual(t, len(bounded), capacity)
		assert.True(t, bytes.HasPrefix(full, bounded),
			"cap=%d: %#v is not a prefix of %#v", capacity, bounded, full)
	}
}

func TestWeightStringCharPadding(t *testing.T) {
	coll := newDefault(3)

	// emulating a CHAR(4) column: "ab" is padded with spaces up to 4
	// codepoints, per level
	padded := coll.WeightString(nil, []byte("ab"), 4)
	explicit := coll.WeightString(nil, []byte("ab  "), 4)
	assert.Equal(t, explicit, padded)

	// and longer inputs are truncated
	truncated := coll.WeightString(nil, []byte("abcdef"), 4)
	direct := coll.WeightString(nil, []byte("abcd"), 4)
	assert.Equal(t, direct, truncated)
}

func TestWeightStringPadToMax(t *testing.T) {
	coll := newDefault(3)

	dst := coll.WeightString(make([]byte, 0, 32), []byte("a"), uca.PadToMax)
	require.Len(t, dst, 32)

	plain := coll.WeightString(nil, []byte("a"), 0)
	assert.True(t, bytes.HasPrefix(dst, plain))
	for _, b := range dst[len(plain):] {
		assert.Zero(t, b)
	}
}

func TestWeightStringLen(t *testing.T) {
	coll := newDefault(3)

	for _, input := range []string{"a", "abc", "é", "각", "hello world"} {
		bound := coll.WeightStringLen(len([]rune(input)))
		ws := coll.WeightString(nil, []byte(input), 0)
		assert.LessOrEqual(t, len(ws), bound, "WeightStringLen(%q)", input)
	}
}

func TestWeightStringLegacy(t *testing.T) {
	coll := uca.NewLegacy(uca.WeightTable_uca520, nil, uca.MaxCodepoint-1)

	a := coll.WeightString(nil, []byte("a"), 0)
	aPadded := coll.WeightString(nil, []byte("a"), 3)
	aSpaces := coll.WeightString(nil, []byte("a  "), 3)
	assert.Equal(t, aSpaces, aPadded)
	assert.True(t, bytes.HasPrefix(aPadded, a))

	full := coll.WeightString(nil, []byte("abc"), 0)
	bounded := coll.WeightString(make([]byte, 0, 3), []byte("abc"), 0)
	assert.True(t, bytes.HasPrefix(full, bounded))
}
