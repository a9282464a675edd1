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

func TestParseRules(t *testing.T) {
	rs, err := uca.ParseTailoring("test", "&a < b << c <<< d <<<< e = f")
	require.NoError(t, err)
	require.Len(t, rs.Rules, 1)

	rule := rs.Rules[0]
	assert.Equal(t, []rune{'a'}, rule.Reset)
	assert.Zero(t, rule.BeforeLevel)
	require.Len(t, rule.Shifts, 5)
	for i, want := range []int{1, 2, 3, 4, 0} {
		assert.Equal(t, want, rule.Shifts[i].Level)
	}

	rs, err = uca.ParseTailoring("test", "&ae << ä &n < ch <<< Ch")
	require.NoError(t, err)
	require.Len(t, rs.Rules, 2)
	assert.Equal(t, []rune{'a', 'e'}, rs.Rules[0].Reset)
	assert.Equal(t, []rune{'ä'}, rs.Rules[0].Shifts[0].Chars)
	assert.Equal(t, []rune{'c', 'h'}, rs.Rules[1].Shifts[0].Chars)
}

func TestParseEscapes(t *testing.T) {
	rs, err := uca.ParseTailoring("test", `&a < \u00F1`)
	require.NoError(t, err)
	assert.Equal(t, []rune{'ñ'}, rs.Rules[0].Shifts[0].Chars)

	rs, err = uca.ParseTailoring("test", `&a < \u1D360`)
	require.NoError(t, err)
	assert.Equal(t, []rune{0x1D360}, rs.Rules[0].Shifts[0].Chars)

	rs, err = uca.ParseTailoring("test", `&a < \<`)
	require.NoError(t, err)
	assert.Equal(t, []rune{'<'}, rs.Rules[0].Shifts[0].Chars)
}

func TestParseExpansionAndContext(t *testing.T) {
	rs, err := uca.ParseTailoring("test", "&d <<< q/h")
	require.NoError(t, err)
	assert.Equal(t, []rune{'q'}, rs.Rules[0].Shifts[0].Chars)
	assert.Equal(t, []rune{'h'}, rs.Rules[0].Shifts[0].Expansion)

	rs, err = uca.ParseTailoring("test", "&u << t|x")
	require.NoError(t, err)
	assert.True(t, rs.Rules[0].Shifts[0].Contextual)
	assert.Equal(t, []rune{'t', 'x'}, rs.Rules[0].Shifts[0].Chars)
}

func TestParseBefore(t *testing.T) {
	rs, err := uca.ParseTailoring("test", "&[before 2]a << x")
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Rules[0].BeforeLevel)

	_, err = uca.ParseTailoring("test", "&[before 9]a << x")
	require.Error(t, err)
}

func TestParseSettings(t *testing.T) {
	rs, err := uca.ParseTailoring("test",
		"[version 5.2.0] [shift-after-method expand] [caseFirst upper] [reorder Cyrl Grek] &a < b")
	require.NoError(t, err)
	assert.Equal(t, 520, rs.Version)
	assert.Equal(t, uca.ShiftExpand, rs.Shift)
	assert.True(t, rs.UpperCaseFirst)
	assert.Equal(t, []string{"Cyrl", "Grek"}, rs.ReorderGroups)

	// the version defaults to 9.0.0
	rs, err = uca.ParseTailoring("test", "&a < b")
	require.NoError(t, err)
	assert.Equal(t, 900, rs.Version)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input string
		kind  string
	}{
		{"a < b", uca.ErrSyntax},                 // missing reset
		{"&a", uca.ErrSyntax},                    // no shift operator
		{"& < b", uca.ErrSyntax},                 // empty reset
		{"&a <", uca.ErrSyntax},                  // empty shift sequence
		{"&a < b /", uca.ErrSyntax},              // empty expansion
		{"&a < bc | x", uca.ErrSemantic},         // context on a sequence
		{"&a < \\uFFFFFFFF", uca.ErrSyntax},      // not a codepoint
		{"[version 7.0.0] &a < b", uca.ErrSemantic},
		{"[reorder Klingon] &a < b", uca.ErrSemantic},
		{"[bogus] &a < b", uca.ErrSyntax},
		{"[unterminated &a < b", uca.ErrSyntax},
		{"&abcdefgh < x", uca.ErrSemantic}, // reset too long
	}

	for _, tc := range cases {
		_, err := uca.ParseTailoring("testcoll", tc.input)
		require.Error(t, err, "input %q", tc.input)

		terr, ok := err.(*uca.TailoringError)
		require.True(t, ok, "input %q returned %T", tc.input, err)
		assert.Equal(t, tc.kind, terr.Kind, "input %q", tc.input)
		assert.Equal(t, "testcoll", terr.Collation)
	}
}

func TestParseErrorContext(t *testing.T) {
	_, err := uca.ParseTailoring("test", "&a < b || nonsense that goes on and on and on")
	require.Error(t, err)

	terr := err.(*uca.TailoringError)
	assert.NotEmpty(t, terr.Context)
	assert.LessOrEqual(t, len(terr.Context), 30)
}
