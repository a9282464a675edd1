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

package collations

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortWith(coll Collation, in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool {
		return coll.Collate([]byte(out[i]), []byte(out[j]), false) < 0
	})
	return out
}

func TestSpanishTraditionalOrdering(t *testing.T) {
	coll := LookupByName("utf8mb4_es_trad_0900_ai_ci")
	require.NotNil(t, coll)

	// ch and ll sort as single letters after c and l
	sorted := sortWith(coll, []string{"cuando", "charla", "czar", "dado", "coche"})
	assert.Equal(t, []string{"coche", "cuando", "czar", "charla", "dado"}, sorted)

	sorted = sortWith(coll, []string{"luz", "llama", "lobo", "mapa"})
	assert.Equal(t, []string{"lobo", "luz", "llama", "mapa"}, sorted)

	// ñ is its own letter between n and o
	assert.Negative(t, coll.Collate([]byte("niño"), []byte("ñame"), false))
	assert.Negative(t, coll.Collate([]byte("ñame"), []byte("obra"), false))
	assert.Zero(t, coll.Collate([]byte("ñame"), []byte("ÑAME"), false))
}

func TestCzechOrdering(t *testing.T) {
	coll := LookupByName("utf8mb4_cs_0900_ai_ci")
	require.NotNil(t, coll)

	sorted := sortWith(coll, []string{"chlap", "cibule", "hrad", "ihned", "čaj"})
	assert.Equal(t, []string{"cibule", "čaj", "hrad", "chlap", "ihned"}, sorted)

	assert.Negative(t, coll.Collate([]byte("šiška"), []byte("tabule"), false))
	assert.Positive(t, coll.Collate([]byte("šiška"), []byte("sval"), false))
}

func TestGermanPhonebookOrdering(t *testing.T) {
	coll := LookupByName("utf8mb4_de_pb_0900_ai_ci")
	require.NotNil(t, coll)

	// umlauts sort with their base+e digraph
	assert.Zero(t, coll.Collate([]byte("Mäller"), []byte("MAELLER"), false))
	assert.Positive(t, coll.Collate([]byte("Mahler"), []byte("Mäller"), false))
	assert.Negative(t, coll.Collate([]byte("Mäller"), []byte("Mafler"), false))
	assert.Zero(t, coll.Collate([]byte("Göthe"), []byte("goethe"), false))
}

func TestDanishOrdering(t *testing.T) {
	coll := LookupByName("utf8mb4_da_0900_ai_ci")
	require.NotNil(t, coll)

	// æ, ø, å are separate letters after z; aa is equivalent to å
	sorted := sortWith(coll, []string{"åben", "ære", "zebra", "øre", "ydre"})
	assert.Equal(t, []string{"ydre", "zebra", "ære", "øre", "åben"}, sorted)

	assert.Zero(t, coll.Collate([]byte("aalborg"), []byte("ålborg"), false))
	assert.Positive(t, coll.Collate([]byte("aalborg"), []byte("zebra"), false))

	// the whole æ/ø/å chain stays below its anchor point
	assert.Negative(t, coll.Collate([]byte("ø"), []byte("ǀ"), false))
	assert.Negative(t, coll.Collate([]byte("å"), []byte("ǀ"), false))
}

func TestDanishCaseFirstUpper(t *testing.T) {
	ci := LookupByName("utf8mb4_da_0900_ai_ci")
	cs := LookupByName("utf8mb4_da_0900_as_cs")
	require.NotNil(t, cs)

	assert.Zero(t, ci.Collate([]byte("aksel"), []byte("Aksel"), false))
	assert.Positive(t, cs.Collate([]byte("aksel"), []byte("Aksel"), false),
		"uppercase must sort first at the tertiary level")
	assert.Zero(t, cs.Collate([]byte("Aalborg"), []byte("Aalborg"), false))
}

func TestRussianReorder(t *testing.T) {
	coll := LookupByName("utf8mb4_ru_0900_ai_ci")
	require.NotNil(t, coll)
	base := LookupByName("utf8mb4_0900_ai_ci")

	// Cyrillic moves ahead of Greek under [reorder Cyrl]
	assert.Positive(t, base.Collate([]byte("москва"), []byte("αθήνα"), false))
	assert.Negative(t, coll.Collate([]byte("москва"), []byte("αθήνα"), false))

	// Latin stays first, Cyrillic is internally unchanged
	assert.Negative(t, coll.Collate([]byte("zurich"), []byte("москва"), false))
	assert.Negative(t, coll.Collate([]byte("москва"), []byte("париж"), false))
}

func TestTailoredWeightStrings(t *testing.T) {
	coll := LookupByName("utf8mb4_es_trad_0900_ai_ci")

	words := []string{"coche", "cuando", "czar", "charla", "dado"}
	keys := make([]string, len(words))
	for i, w := range words {
		keys[i] = string(coll.WeightString(nil, []byte(w), 0))
	}
	sort.Strings(keys)

	var fromKeys []string
	sorted := sortWith(coll, words)
	for _, w := range sorted {
		fromKeys = append(fromKeys, string(coll.WeightString(nil, []byte(w), 0)))
	}
	assert.Equal(t, keys, fromKeys, "weight strings must sort like Collate")
}

func TestTailoredPadSpace(t *testing.T) {
	for _, name := range []string{"utf8mb4_es_trad_0900_ai_ci", "utf8mb4_ru_0900_ai_ci"} {
		coll := LookupByName(name)
		assert.Zero(t, coll.CollateSP([]byte("ñu"), []byte("ñu   ")), name)
		assert.Zero(t, coll.CollateSP([]byte(strings.Repeat(" ", 10)), nil), name)
		assert.Negative(t, coll.CollateSP([]byte("ñu"), []byte("ñus")), name)
	}
}
