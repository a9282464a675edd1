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
	"github.com/hexadb/collations/charset"
)

// WeightIteratorLegacy scans a byte string over a single-level stride
// table.
type WeightIteratorLegacy struct {
	// Constant
	*CollationLegacy

	// Internal state
	codepoint codepointIteratorLegacy
	input     []byte
	maxChars  int
	length    int
	prev      rune
}

type codepointIteratorLegacy struct {
	weights []uint16
	scratch [2]uint16
}

func (it *codepointIteratorLegacy) next() (uint16, bool) {
	for len(it.weights) > 0 {
		weight := it.weights[0]
		it.weights = it.weights[1:]
		if weight != 0x0 {
			return weight, true
		}
	}
	return 0, false
}

func (it *codepointIteratorLegacy) init(table Weights, cp rune) {
	p, offset := PageOffset(cp)
	if p >= len(table) {
		it.weights = nil
		return
	}
	page := table[p]
	if page == nil {
		unicodeImplicitWeightsLegacy(it.scratch[:2], cp)
		it.weights = it.scratch[:2]
		return
	}

	stride := int((*page)[0])
	position := 1 + stride*offset
	it.weights = (*page)[position : position+stride]
}

func (it *codepointIteratorLegacy) initContraction(weights []uint16) {
	it.weights = weights
}

func (it *WeightIteratorLegacy) reset(input []byte, maxChars int) {
	it.input = input
	it.maxChars = maxChars
	it.length = 0
	it.prev = 0
	it.codepoint.weights = nil
}

// Done returns the iterator to its collation's pool.
func (it *WeightIteratorLegacy) Done() {
	it.input = nil
	it.iterpool.Put(it)
}

// Next returns the next non-zero primary weight. The second return is
// false at end of input.
func (it *WeightIteratorLegacy) Next() (uint16, bool) {
	for {
		if w, ok := it.codepoint.next(); ok {
			return w, true
		}

		if it.maxChars >= 0 && it.length >= it.maxChars {
			return 0, false
		}
		cp, width := it.charset.DecodeRune(it.input)
		if cp == charset.RuneError && width < 3 {
			return 0, false
		}
		it.input = it.input[width:]
		it.length++

		if cp > it.maxCodepoint {
			it.prev = 0
			return 0xFFFD, true
		}
		if it.contract != nil {
			// a previous-context pair only matches when something
			// precedes it: the head may not open the scan
			if it.length > 2 {
				if weights := it.contract.weightForContextualContraction(it.prev, cp); weights != nil {
					it.codepoint.initContraction(weights)
					it.prev = cp
					continue
				}
			}
			if weights, remainder, skip := it.contract.weightForContraction(it.charset, cp, it.input); weights != nil {
				it.codepoint.initContraction(weights)
				it.input = remainder
				it.length += skip
				it.prev = 0
				continue
			}
		}
		it.codepoint.init(it.table, cp)
		it.prev = cp
	}
}

// Length is the number of codepoints consumed so far.
func (it *WeightIteratorLegacy) Length() int {
	return it.length
}
