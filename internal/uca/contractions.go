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

package uca

import (
	"fmt"

	"github.com/hexadb/collations/charset"
)

// MaxContractionRunes is the longest codepoint sequence a contraction
// can span.
const MaxContractionRunes = 6

// Contraction is a multi-codepoint sequence that collates as a single
// unit with its own collation elements. Weights are flattened CEs with
// a stride of MaxLevels. A Contextual contraction spans exactly two
// codepoints and only matches when Path[0] is the codepoint scanned
// immediately before Path[1].
type Contraction struct {
	Path       []rune
	Weights    []uint16
	Contextual bool
}

// ContractionFlag describes the roles a codepoint can play inside
// some contraction. The scanner consults these before walking the
// trie so that codepoints that cannot participate are rejected with a
// single lookup.
type ContractionFlag uint16

const (
	ContractionHead ContractionFlag = 1 << iota
	ContractionTail
	ContractionMid1
	ContractionMid2
	ContractionMid3
	ContractionMid4
	ContextHead
	ContextTail
)

func midFlag(position int) ContractionFlag {
	// interior positions 1..4 of a 6-codepoint contraction
	return ContractionMid1 << (position - 1)
}

type trie struct {
	children map[rune]*trie
	weights  []uint16
}

func (t *trie) walk(cs charset.Charset, remainder []byte, depth int) ([]uint16, []byte, int) {
	if len(remainder) > 0 && depth < MaxContractionRunes {
		cp, width := cs.DecodeRune(remainder)
		if cp == charset.RuneError && width < 3 {
			return t.weights, remainder, depth
		}
		if ch := t.children[cp]; ch != nil {
			if weights, rem, d := ch.walk(cs, remainder[width:], depth+1); weights != nil {
				return weights, rem, d
			}
		}
	}
	return t.weights, remainder, depth
}

func (t *trie) insert(path []rune, weights []uint16) error {
	if len(path) == 0 {
		if t.weights != nil {
			return fmt.Errorf("duplicate contraction")
		}
		t.weights = weights
		return nil
	}

	if t.children == nil {
		t.children = make(map[rune]*trie)
	}
	ch := t.children[path[0]]
	if ch == nil {
		ch = &trie{}
		t.children[path[0]] = ch
	}
	return ch.insert(path[1:], weights)
}

type contractions struct {
	tr    trie
	ctx   trie
	flags map[rune]ContractionFlag
}

func (ctr *contractions) insert(c *Contraction) error {
	if len(c.Path) < 2 || len(c.Path) > MaxContractionRunes {
		return fmt.Errorf("contraction spans %d codepoints, must be 2 to %d", len(c.Path), MaxContractionRunes)
	}
	if len(c.Weights)%MaxLevels != 0 {
		return fmt.Errorf("contraction weights are not well-formed: %#v has len=%d", c.Weights, len(c.Weights))
	}
	if c.Contextual {
		if len(c.Path) != 2 {
			return fmt.Errorf("contextual contractions can only span 2 codepoints")
		}
		ctr.flags[c.Path[0]] |= ContextHead
		ctr.flags[c.Path[1]] |= ContextTail
		return ctr.ctx.insert(c.Path, c.Weights)
	}

	for i, cp := range c.Path {
		switch i {
		case 0:
			ctr.flags[cp] |= ContractionHead
		case len(c.Path) - 1:
			ctr.flags[cp] |= ContractionTail
		default:
			ctr.flags[cp] |= midFlag(i)
		}
	}
	return ctr.tr.insert(c.Path, c.Weights)
}

// weightForContraction matches the longest contraction starting at cp
// against the remainder of the input. It returns the contraction's
// weights, the input left after the match, and how many extra
// codepoints the match consumed.
func (ctr *contractions) weightForContraction(cs charset.Charset, cp rune, remainder []byte) ([]uint16, []byte, int) {
	if ctr == nil || ctr.flags[cp]&ContractionHead == 0 {
		return nil, nil, 0
	}
	if tr := ctr.tr.children[cp]; tr != nil {
		weights, rem, depth := tr.walk(cs, remainder, 1)
		if weights != nil {
			return weights, rem, depth - 1
		}
	}
	return nil, nil, 0
}

// weightForContextualContraction matches the (prev, cp) pair against
// the registered previous-context contractions.
func (ctr *contractions) weightForContextualContraction(prev, cp rune) []uint16 {
	if ctr == nil || ctr.flags[cp]&ContextTail == 0 {
		return nil
	}
	if tr := ctr.ctx.children[prev]; tr != nil {
		if trc := tr.children[cp]; trc != nil {
			return trc.weights
		}
	}
	return nil
}

func newContractions(all []Contraction) *contractions {
	if len(all) == 0 {
		return nil
	}
	ctr := &contractions{flags: make(map[rune]ContractionFlag)}
	for i := range all {
		if err := ctr.insert(&all[i]); err != nil {
			panic(err.Error())
		}
	}
	return ctr
}
