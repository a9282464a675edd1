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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{
		"binary",
		"utf8mb4_0900_ai_ci",
		"utf8mb4_0900_as_ci",
		"utf8mb4_0900_as_cs",
		"utf8mb4_unicode_520_ci",
		"utf8mb4_es_trad_0900_ai_ci",
		"utf8mb4_cs_0900_ai_ci",
		"utf8mb4_da_0900_as_cs",
		"utf8mb4_ru_0900_ai_ci",
	} {
		coll := LookupByName(name)
		require.NotNil(t, coll, "collation %q must be registered", name)
		assert.Equal(t, name, coll.Name())

		byId := LookupById(coll.Id())
		require.NotNil(t, byId)
		assert.Equal(t, coll.Name(), byId.Name())
	}

	assert.Nil(t, LookupByName("utf8mb4_klingon_ci"))
	assert.Nil(t, LookupById(0))
}

func TestAll(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := make(map[ID]string)
	for _, coll := range all {
		_, dup := seen[coll.Id()]
		require.False(t, dup, "duplicate collation id %d", coll.Id())
		seen[coll.Id()] = coll.Name()
	}
	assert.Equal(t, "binary", seen[63])
	assert.Equal(t, "utf8mb4_0900_ai_ci", seen[255])
}

func TestRegisterRejections(t *testing.T) {
	_, err := Register("utf8mb4_0900_ai_ci", 999, "utf8mb4_0900_ai_ci", "&a < b")
	assert.Error(t, err, "duplicate name must be rejected")

	_, err = Register("utf8mb4_x_test", 63, "utf8mb4_0900_ai_ci", "&a < b")
	assert.Error(t, err, "duplicate id must be rejected")

	_, err = Register("utf8mb4_x_test", 999, "binary", "&a < b")
	assert.Error(t, err, "non-UCA base must be rejected")

	_, err = Register("utf8mb4_x_test", 999, "utf8mb4_0900_ai_ci", "&a <")
	assert.Error(t, err, "malformed rules must be rejected")
	assert.Nil(t, LookupByName("utf8mb4_x_test"), "nothing may be registered on failure")
}

func TestRegisterDynamic(t *testing.T) {
	coll, err := Register("utf8mb4_test_phone_ci", 1024, "utf8mb4_0900_ai_ci", "&z < q")
	require.NoError(t, err)

	// the returned collation is usable as-is, no lookup required
	assert.Negative(t, coll.Collate([]byte("z"), []byte("q"), false))
	assert.Negative(t, coll.Collate([]byte("p"), []byte("r"), false))
	assert.NotEmpty(t, coll.WeightString(nil, []byte("q"), 0))

	assert.Same(t, coll, LookupByName("utf8mb4_test_phone_ci"))
}

func TestBinaryCollation(t *testing.T) {
	coll := LookupByName("binary")

	assert.Negative(t, coll.Collate([]byte("A"), []byte("a"), false))
	assert.Zero(t, coll.Collate([]byte("abc"), []byte("abc"), false))
	assert.Zero(t, coll.Collate([]byte("abcdef"), []byte("abc"), true))
	assert.NotZero(t, coll.CollateSP([]byte("abc"), []byte("abc ")))

	ws := coll.WeightString(nil, []byte("abc"), 0)
	assert.Equal(t, []byte("abc"), ws)

	padded := coll.WeightString(make([]byte, 0, 6), []byte("abc"), PadToMax)
	assert.Equal(t, []byte{'a', 'b', 'c', 0, 0, 0}, padded)
}

func TestWeightStringsAgreeWithCollate(t *testing.T) {
	inputs := []string{"", "a", "A", "ab", "b", "ch", "cz", "é", "ñ", "z", "б", "β", "가"}

	for _, name := range []string{
		"utf8mb4_0900_ai_ci",
		"utf8mb4_0900_as_cs",
		"utf8mb4_es_trad_0900_ai_ci",
		"utf8mb4_ru_0900_ai_ci",
		"utf8mb4_unicode_520_ci",
	} {
		coll := LookupByName(name)
		require.NotNil(t, coll)

		for _, l := range inputs {
			for _, r := range inputs {
				cmp := coll.Collate([]byte(l), []byte(r), false)
				wcmp := bytes.Compare(coll.WeightString(nil, []byte(l), 0), coll.WeightString(nil, []byte(r), 0))
				if cmp < 0 {
					assert.Negative(t, wcmp, "%s: %q vs %q", name, l, r)
				} else if cmp > 0 {
					assert.Positive(t, wcmp, "%s: %q vs %q", name, l, r)
				} else {
					assert.Zero(t, wcmp, "%s: %q vs %q", name, l, r)
				}
			}
		}
	}
}

func TestHashAgreesWithCollate(t *testing.T) {
	for _, name := range []string{"utf8mb4_0900_ai_ci", "utf8mb4_0900_as_cs"} {
		coll := LookupByName(name)

		assert.Equal(t, coll.Collate([]byte("foo"), []byte("FOO"), false) == 0,
			coll.Hash([]byte("foo"), 0) == coll.Hash([]byte("FOO"), 0), name)
		assert.NotEqual(t, coll.Hash([]byte("foo"), 0), coll.Hash([]byte("bar"), 0), name)
	}

	// PAD SPACE: trailing spaces do not change the hash
	legacy := LookupByName("utf8mb4_unicode_520_ci")
	assert.Equal(t, legacy.Hash([]byte("abc"), 0), legacy.Hash([]byte("abc   "), 0))
	assert.NotEqual(t, legacy.Hash([]byte("abc"), 0), legacy.Hash([]byte(" abc"), 0))
}
