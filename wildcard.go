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
	"unicode/utf8"

	"github.com/hexadb/collations/charset"
)

type match byte

const (
	matchOK match = iota
	matchFail
	matchOver
)

// wildcardRecursionDepth bounds the backtracking when resolving
// many-wildcards; patterns that exceed it fail to match.
const wildcardRecursionDepth = 32

// patternMatchOne is a special value for compiled patterns which matches a single char (it usually replaces '_' or '?')
const patternMatchOne = -128

// patternMatchMany is a special value for compiled pattern that matches any amount of chars (it usually replaces '%' or '*')
const patternMatchMany = -256

// nopMatcher is an implementation of WildcardPattern that never matches anything.
// It is returned when we detect that a provided wildcard pattern cannot match anything
type nopMatcher struct{}

func (nopMatcher) Match(_ []byte) bool {
	return false
}

// emptyMatcher is an implementation of WildcardPattern that only matches the empty string
type emptyMatcher struct{}

func (emptyMatcher) Match(in []byte) bool {
	return len(in) == 0
}

// fastMatcher is an implementation of WildcardPattern that uses a collation's Collate method
// to perform wildcard matching.
// It is returned:
//   - when the wildcard pattern has no wildcard characters at all
//   - when the wildcard pattern has a single '%' (patternMatchMany) and it is the very last
//     character of the pattern (in this case, we set isPrefix to true to use prefix-match collation)
type fastMatcher struct {
	collate  func(left, right []byte, isPrefix bool) int
	pattern  []byte
	isPrefix bool
}

func (cm *fastMatcher) Match(in []byte) bool {
	return cm.collate(in, cm.pattern, cm.isPrefix) == 0
}

// unicodeWildcard is an implementation of WildcardPattern for multibyte charsets;
// it matches codepoint by codepoint with the collation's equality primitive
type unicodeWildcard struct {
	equals  func(a, b rune) bool
	charset charset.Charset
	pattern []rune
}

func newUnicodeWildcardMatcher(
	cs charset.Charset,
	equals func(a rune, b rune) bool,
	collate func(left []byte, right []byte, isPrefix bool) int,
	pat []byte, chOne, chMany, chEsc rune,
) WildcardPattern {
	var escape bool
	var chOneCount, chManyCount, chEscCount int
	var parsedPattern = make([]rune, 0, len(pat))
	var patOriginal = pat

	if chOne == 0 {
		chOne = '_'
	}
	if chMany == 0 {
		chMany = '%'
	}
	if chEsc == 0 {
		chEsc = '\\'
	}

	for len(pat) > 0 {
		cp, width := cs.DecodeRune(pat)
		if cp == charset.RuneError && width < 3 {
			return nopMatcher{}
		}
		pat = pat[width:]

		if escape {
			parsedPattern = append(parsedPattern, cp)
			escape = false
			continue
		}

		switch cp {
		case chOne:
			chOneCount++
			parsedPattern = append(parsedPattern, patternMatchOne)
		case chMany:
			if len(parsedPattern) > 0 && parsedPattern[len(parsedPattern)-1] == patternMatchMany {
				continue
			}
			chManyCount++
			parsedPattern = append(parsedPattern, patternMatchMany)
		case chEsc:
			chEscCount++
			escape = true
		default:
			parsedPattern = append(parsedPattern, cp)
		}
	}
	if escape {
		parsedPattern = append(parsedPattern, chEsc)
	}

	// if we have a collation callback, we can detect some common cases for patterns
	// here and optimize them away without having to return a full WildcardPattern
	if collate != nil {
		if len(parsedPattern) == 0 {
			return emptyMatcher{}
		}
		if chOneCount == 0 && chEscCount == 0 {
			if chManyCount == 0 {
				return &fastMatcher{
					collate:  collate,
					pattern:  patOriginal,
					isPrefix: false,
				}
			}
			if chManyCount == 1 && chMany < utf8.RuneSelf && parsedPattern[len(parsedPattern)-1] == patternMatchMany {
				return &fastMatcher{
					collate:  collate,
					pattern:  patOriginal[:len(patOriginal)-1],
					isPrefix: true,
				}
			}
		}
	}

	return &unicodeWildcard{
		equals:  equals,
		charset: cs,
		pattern: parsedPattern,
	}
}

func (wc *unicodeWildcard) Match(in []byte) bool {
	return wc.match(in, wc.pattern, 0) == matchOK
}

// match walks pattern and input in lockstep until the pattern's next
// many-wildcard, which is where backtracking starts.
func (wc *unicodeWildcard) match(in []byte, pat []rune, depth int) match {
	if depth >= wildcardRecursionDepth {
		return matchFail
	}

	cs := wc.charset
	for len(pat) > 0 {
		if pat[0] == patternMatchMany {
			return wc.matchAfterMany(in, pat[1:], depth)
		}

		cp, width := cs.DecodeRune(in)
		if cp == charset.RuneError && width < 3 {
			return matchFail
		}
		if pat[0] != patternMatchOne && !wc.equals(pat[0], cp) {
			return matchFail
		}
		in = in[width:]
		pat = pat[1:]
	}

	if len(in) == 0 {
		return matchOK
	}
	return matchFail
}

// matchAfterMany resolves one many-wildcard: wildcards immediately
// following it are folded in first, then every occurrence of the next
// literal in the input is tried as a restart point for the remaining
// pattern. matchOver means the input ran out, which also fails the
// enclosing attempt without retrying shorter restarts.
func (wc *unicodeWildcard) matchAfterMany(in []byte, pat []rune, depth int) match {
	cs := wc.charset
	for len(pat) > 0 {
		if pat[0] == patternMatchMany {
			pat = pat[1:]
			continue
		}
		if pat[0] != patternMatchOne {
			break
		}
		cp, width := cs.DecodeRune(in)
		if cp == charset.RuneError && width < 3 {
			return matchFail
		}
		in = in[width:]
		pat = pat[1:]
	}
	if len(pat) == 0 {
		return matchOK
	}

	for {
		var width int
		for len(in) > 0 {
			var cp rune
			cp, width = cs.DecodeRune(in)
			if cp == charset.RuneError && width < 3 {
				return matchFail
			}
			if wc.equals(cp, pat[0]) {
				break
			}
			in = in[width:]
		}
		if len(in) == 0 {
			return matchOver
		}
		in = in[width:]

		if m := wc.match(in, pat[1:], depth+1); m != matchFail {
			return m
		}
	}
}
