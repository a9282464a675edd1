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

func mustCompile(t *testing.T, rules string, levels int) *uca.Collation900 {
	t.Helper()
	rs, err := uca.ParseTailoring(t.Name(), rules)
	require.NoError(t, err)
	table, err := rs.Compile(uca.WeightTable_uca900)
	require.NoError(t, err)
	table.Levels = levels
	return uca.New900(table)
}

func assertOrder(t *testing.T, coll *uca.Collation900, inputs ...string) {
	t.Helper()
	for i := 0; i+1 < len(inputs); i++ {
		assert.Negative(t, coll.Collate([]byte(inputs[i]), []byte(inputs[i+1]), false),
			"expected %q < %q", inputs[i], inputs[i+1])
	}
}

func TestTailorPrimaryShift(t *testing.T) {
	coll := mustCompile(t, "&n < ñ <<< Ñ", 1)

	assertOrder(t, coll, "n", "ñ", "o")
	assert.Zero(t, coll.Collate([]byte("ñ"), []byte("Ñ"), false))

	// the rest of the table is untouched
	assertOrder(t, coll, "a", "b", "m", "n")
}

func TestTailorContraction(t *testing.T) {
	coll1 := mustCompile(t, "&a << ch <<< Ch <<< CH", 1)
	coll3 := mustCompile(t, "&a << ch <<< Ch <<< CH", 3)

	// "ch" is one element now, equal to "a" at the primary level
	assert.Zero(t, coll1.Collate([]byte("ch"), []byte("a"), false))
	assert.Zero(t, coll1.Collate([]byte("ch"), []byte("Ch"), false))
	assert.Zero(t, coll1.Collate([]byte("ch"), []byte("CH"), false))

	// and the case variants order at the tertiary level
	assertOrder(t, coll3, "a", "ch", "Ch", "CH", "b")

	// untailored case combinations still scan per codepoint
	assert.Negative(t, coll3.Collate([]byte("cH"), []byte("d"), false))
}

func TestTailorBefore(t *testing.T) {
	coll := mustCompile(t, "&[before 1]b < œ", 1)

	assertOrder(t, coll, "a", "œ", "b", "c")

	// an ignorable anchor has no weight at the level to move before
	rs, err := uca.ParseTailoring("t", "&[before 1]\u0001 < x")
	require.NoError(t, err)
	_, err = rs.Compile(uca.WeightTable_uca900)
	require.Error(t, err)
	assert.Equal(t, uca.ErrSemantic, err.(*uca.TailoringError).Kind)
}

func TestTailorBeforeChained(t *testing.T) {
	coll := mustCompile(t, "&[before 1]b < x < y", 1)

	// every link of the chain stays short of the original anchor
	assertOrder(t, coll, "a", "x", "y", "b", "c")
	assert.NotZero(t, coll.Collate([]byte("y"), []byte("b"), false))
}

func TestTailorExpansion(t *testing.T) {
	coll := mustCompile(t, "&d <<< đ/h", 1)

	// đ expands to the primaries of "dh"
	assert.Zero(t, coll.Collate([]byte("đ"), []byte("dh"), false))
	assertOrder(t, coll, "d", "đ", "e")
}

func TestTailorContextual(t *testing.T) {
	coll := mustCompile(t, "&u << t|x", 1)

	// after a 't' mid-string, 'x' collates as the tailored pair
	assert.Zero(t, coll.Collate([]byte("atx"), []byte("atu"), false))

	// at the start of the scan the pair does not engage
	assert.NotZero(t, coll.Collate([]byte("tx"), []byte("tu"), false))
}

func TestTailorCaseFirstUpper(t *testing.T) {
	lowerFirst := mustCompile(t, "&n < ñ", 3)
	upperFirst := mustCompile(t, "[caseFirst upper] &n < ñ", 3)

	assert.Negative(t, lowerFirst.Collate([]byte("a"), []byte("A"), false))
	assert.Positive(t, upperFirst.Collate([]byte("a"), []byte("A"), false))

	// primary and secondary ordering is unaffected
	assert.Negative(t, upperFirst.Collate([]byte("a"), []byte("b"), false))
	assertOrder(t, upperFirst, "n", "ñ", "o")
}

func TestTailorReorder(t *testing.T) {
	base := mustCompile(t, "&n < ñ", 1)
	reordered := mustCompile(t, "[reorder Cyrl] &n < ñ", 1)

	greek := "β"
	cyrillic := "б"

	// by default Greek sorts before Cyrillic; the reorder moves the
	// Cyrillic block directly after Latin
	assertOrder(t, base, "z", greek, cyrillic)
	assertOrder(t, reordered, "z", cyrillic, greek)

	// Latin weights stay put
	assertOrder(t, reordered, "a", "z", cyrillic)
}

func TestTailorDecompositionPropagation(t *testing.T) {
	coll := mustCompile(t, "&z < e", 2)

	// the explicit rule moves e after z; é follows its base letter
	assertOrder(t, coll, "z", "e", "é")

	// characters with other bases are untouched
	assertOrder(t, coll, "a", "á", "b")
}

func TestTailorShiftExpandMethod(t *testing.T) {
	coll := mustCompile(t, "[shift-after-method expand] &a < x", 1)

	// the expand method appends a margin element instead of touching
	// the anchor's own weight
	assertOrder(t, coll, "a", "x", "b")
	assert.NotZero(t, coll.Collate([]byte("x"), []byte("a"), false))
}

func TestTailorCapacityOverflow(t *testing.T) {
	rs, err := uca.ParseTailoring("t", "&a < x/bcdefghi")
	require.NoError(t, err)
	_, err = rs.Compile(uca.WeightTable_uca900)
	require.Error(t, err)
	assert.Equal(t, uca.ErrCapacity, err.(*uca.TailoringError).Kind)
}

func TestTailorEqualShift(t *testing.T) {
	coll := mustCompile(t, "&b < x = y", 3)

	assert.Zero(t, coll.Collate([]byte("x"), []byte("y"), false))
	assertOrder(t, coll, "b", "x", "c")
}

func TestTailorQuaternaryShift(t *testing.T) {
	// quaternary distinctions have no storage in a 3-level table; the
	// shifted character lands on the anchor's position
	coll := mustCompile(t, "&b <<<< x", 3)
	assert.Zero(t, coll.Collate([]byte("x"), []byte("b"), false))
}

func TestTailorCopyOnWrite(t *testing.T) {
	before := weightsForCodepoint(uca.WeightTable_uca900, 'ñ')
	mustCompile(t, "&n < ñ", 1)
	after := weightsForCodepoint(uca.WeightTable_uca900, 'ñ')

	// compiling a tailoring must never mutate the base table
	assert.Equal(t, before, after)
}
