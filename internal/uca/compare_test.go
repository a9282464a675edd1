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

func TestCollateLevels(t *testing.T) {
	ai_ci := newDefault(1)
	as_ci := newDefault(2)
	as_cs := newDefault(3)

	// primary level: case and accents are invisible
	assert.Zero(t, ai_ci.Collate([]byte("abc"), []byte("ABC"), false))
	assert.Zero(t, ai_ci.Collate([]byte("ecole"), []byte("école"), false))
	assert.Negative(t, ai_ci.Collate([]byte("abc"), []byte("abd"), false))

	// secondary level: accents count, case does not
	assert.Zero(t, as_ci.Collate([]byte("abc"), []byte("ABC"), false))
	assert.Negative(t, as_ci.Collate([]byte("ecole"), []byte("école"), false))

	// tertiary level: everything counts, lowercase first
	assert.Negative(t, as_cs.Collate([]byte("abc"), []byte("ABC"), false))
	assert.Zero(t, as_cs.Collate([]byte("abc"), []byte("abc"), false))

	// a difference at a lower level beats any difference at a higher
	// one
	assert.Negative(t, as_cs.Collate([]byte("Abc"), []byte("abd"), false))
}

func TestCollatePrefix(t *testing.T) {
	coll := newDefault(3)

	assert.Zero(t, coll.Collate([]byte("hello world"), []byte("hello"), true))
	assert.Zero(t, coll.Collate([]byte("hello"), []byte("hello"), true))
	assert.Positive(t, coll.Collate([]byte("hello world"), []byte("hello"), false))
	assert.Negative(t, coll.Collate([]byte("hellish"), []byte("hello"), true))

	// prefix bounds are codepoints, not bytes
	assert.Zero(t, coll.Collate([]byte("ééé"), []byte("éé"), true))
}

func TestCollateSP(t *testing.T) {
	coll := newDefault(3)

	assert.Zero(t, coll.CollateSP([]byte("abc"), []byte("abc   ")))
	assert.Zero(t, coll.CollateSP([]byte("abc  "), []byte("abc")))
	assert.Zero(t, coll.CollateSP([]byte(""), []byte("  ")))

	// only trailing spaces are invisible
	assert.NotZero(t, coll.CollateSP([]byte("ab c"), []byte("abc")))
	assert.NotZero(t, coll.CollateSP([]byte(" abc"), []byte("abc")))

	// characters below the space weight still sort before a padded
	// operand; characters above sort after
	assert.Positive(t, coll.CollateSP([]byte("abc!"), []byte("abc")))
	assert.Negative(t, coll.CollateSP([]byte("ab"), []byte("abc")))

	// ordering decisions match Collate when no padding applies
	assert.Negative(t, coll.CollateSP([]byte("abc"), []byte("abd")))
	assert.Negative(t, coll.CollateSP([]byte("abc"), []byte("ABC")))
}

func TestCollateSPLegacy(t *testing.T) {
	coll := uca.NewLegacy(uca.WeightTable_uca520, nil, uca.MaxCodepoint-1)

	assert.Zero(t, coll.CollateSP([]byte("abc"), []byte("abc   ")))
	assert.Zero(t, coll.CollateSP([]byte("ABC  "), []byte("abc")))
	assert.Negative(t, coll.CollateSP([]byte("abc"), []byte("abd ")))
	assert.NotZero(t, coll.CollateSP([]byte("ab c"), []byte("abc")))
}
