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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWildcard(t *testing.T, collname, pat, in string, want bool) {
	t.Helper()
	coll := LookupByName(collname)
	require.NotNil(t, coll)
	matcher := coll.Wildcard([]byte(pat), 0, 0, 0)
	assert.Equal(t, want, matcher.Match([]byte(in)), "%s: %q LIKE %q", collname, in, pat)
}

func TestWildcardMatches(t *testing.T) {
	cases := []struct {
		pat, in string
		match   bool
	}{
		{"abc", "abc", true},
		{"abc", "abcd", false},
		{"a_c", "abc", true},
		{"a_c", "ac", false},
		{"a%", "abcdef", true},
		{"a%", "b", false},
		{"%c", "abc", true},
		{"a%c", "abdefc", true},
		{"a%c", "abdefd", false},
		{"%", "", true},
		{"_", "", false},
		{"a\\%b", "a%b", true},
		{"a\\%b", "axb", false},
		{"a\\_b", "a_b", true},
		{"", "", true},
		{"", "a", false},
		{"%%%c", "abc", true},
		{"é%", "également", true},
	}
	for _, tc := range cases {
		testWildcard(t, "utf8mb4_0900_as_cs", tc.pat, tc.in, tc.match)
	}
}

func TestWildcardCaseFolding(t *testing.T) {
	// matching uses the collation's own equality
	testWildcard(t, "utf8mb4_0900_ai_ci", "FOO%", "foobar", true)
	testWildcard(t, "utf8mb4_0900_ai_ci", "f_o", "FOO", true)
	testWildcard(t, "utf8mb4_0900_ai_ci", "caf_", "CAFÉ", true)
	testWildcard(t, "utf8mb4_0900_as_cs", "FOO%", "foobar", false)
	testWildcard(t, "binary", "FOO%", "foobar", false)
	testWildcard(t, "binary", "foo%", "foobar", true)
}

func TestWildcardCustomMetacharacters(t *testing.T) {
	coll := LookupByName("utf8mb4_0900_as_cs")
	matcher := coll.Wildcard([]byte("a?b*"), '?', '*', '$')
	assert.True(t, matcher.Match([]byte("axbyyy")))
	assert.False(t, matcher.Match([]byte("ab")))

	escaped := coll.Wildcard([]byte("a$*b"), '?', '*', '$')
	assert.True(t, escaped.Match([]byte("a*b")))
	assert.False(t, escaped.Match([]byte("axb")))
}

func TestWildcardFastPaths(t *testing.T) {
	coll := LookupByName("utf8mb4_0900_ai_ci")

	// no metacharacters: plain equality
	exact := coll.Wildcard([]byte("hello"), 0, 0, 0)
	assert.True(t, exact.Match([]byte("HELLO")))
	assert.False(t, exact.Match([]byte("hello!")))

	// trailing %: prefix comparison
	prefix := coll.Wildcard([]byte("hello%"), 0, 0, 0)
	assert.True(t, prefix.Match([]byte("Hello, world")))
	assert.False(t, prefix.Match([]byte("hell")))
}

func TestWildcardDeepRecursion(t *testing.T) {
	coll := LookupByName("utf8mb4_0900_ai_ci")

	var pat, in []byte
	for i := 0; i < 40; i++ {
		pat = append(pat, []byte("%a")...)
		in = append(in, []byte("xa")...)
	}
	matcher := coll.Wildcard(pat, 0, 0, 0)
	assert.False(t, matcher.Match(in), "recursion depth limit must fail the match")
}
