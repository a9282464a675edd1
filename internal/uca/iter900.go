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

// Tertiary case tags as assigned by the default tables.
const (
	caseLowerTertiary = 0x0002
	caseUpperTertiary = 0x0008
)

// codepointIterator walks the collation elements of a single
// codepoint (or contraction) at one level, skipping zero weights.
type codepointIterator struct {
	page    *[]uint16
	flat    []uint16
	offset  int
	ce      int
	ceCount int
	scratch [4 * MaxLevels]uint16
}

func (it *codepointIterator) next(level int) (uint16, bool) {
	for it.ce < it.ceCount {
		var w uint16
		if it.page != nil {
			w = (*it.page)[CodepointsPerPage+(it.ce*MaxLevels+level)*CodepointsPerPage+it.offset]
		} else {
			w = it.flat[it.ce*MaxLevels+level]
		}
		it.ce++
		if w != 0 {
			return w, true
		}
	}
	return 0, false
}

func (it *codepointIterator) init(c *Collation900, cp rune) {
	it.ce = 0
	it.page = nil

	p, offset := PageOffset(cp)
	if p < len(c.table) {
		if page := c.table[p]; page != nil {
			if count := int((*page)[offset]); count > 0 {
				it.page = page
				it.offset = offset
				it.ceCount = count
				return
			}
		}
	}

	if isHangulSyllable(cp) {
		it.initHangul(c, cp)
		return
	}

	unicodeImplicitWeights900(it.scratch[:2*MaxLevels], cp)
	it.flat = it.scratch[:2*MaxLevels]
	it.ceCount = 2
}

// initHangul decomposes the syllable into its Jamo and gathers their
// collation elements.
func (it *codepointIterator) initHangul(c *Collation900, cp rune) {
	lead, vowel, trail := decomposeHangulSyllable(cp)
	jamo := [3]rune{lead, vowel, trail}

	var n int
	for _, j := range jamo {
		if j == 0 {
			continue
		}
		p, offset := PageOffset(j)
		page := c.table[p]
		if page == nil {
			continue
		}
		count := int((*page)[offset])
		for ce := 0; ce < count && n < 4; ce++ {
			for l := 0; l < MaxLevels; l++ {
				it.scratch[n*MaxLevels+l] = (*page)[CodepointsPerPage+(ce*MaxLevels+l)*CodepointsPerPage+offset]
			}
			n++
		}
	}

	it.flat = it.scratch[:n*MaxLevels]
	it.ceCount = n
}

func (it *codepointIterator) initContraction(weights []uint16) {
	it.ce = 0
	it.page = nil
	it.flat = weights
	it.ceCount = len(weights) / MaxLevels
}

// WeightIterator900 scans a byte string into its sequence of ordering
// weights. In multi-level mode it walks every comparison level in
// order, emitting a zero separator weight between levels; zero is
// never produced as a comparison weight inside a level.
type WeightIterator900 struct {
	// Constant
	*Collation900

	// Internal state
	codepoint codepointIterator
	original  []byte
	input     []byte
	maxChars  int
	chars     int
	level     int
	prev      rune
}

func (it *WeightIterator900) reset(input []byte, maxChars int) {
	it.original = input
	it.input = input
	it.maxChars = maxChars
	it.chars = 0
	it.level = 0
	it.prev = 0
	it.codepoint = codepointIterator{}
}

// Done returns the iterator to its collation's pool.
func (it *WeightIterator900) Done() {
	it.putIterator(it)
}

// Level is the comparison level the most recent weight belongs to.
func (it *WeightIterator900) Level() int {
	return it.level
}

func (it *WeightIterator900) decodeNext() rune {
	if len(it.input) == 0 || (it.maxChars >= 0 && it.chars >= it.maxChars) {
		return -1
	}
	if it.asciiFast && it.input[0] < 0x80 {
		cp := rune(it.input[0])
		it.input = it.input[1:]
		it.chars++
		return cp
	}
	cp, width := it.charset.DecodeRune(it.input)
	if cp == charset.RuneError && width < 3 {
		return -1
	}
	it.input = it.input[width:]
	it.chars++
	return cp
}

// Next returns the next non-zero weight at the current level, or the
// zero level separator when the scan moves on to the next level. The
// second return is false once all levels are exhausted.
func (it *WeightIterator900) Next() (uint16, bool) {
	for {
		if w, ok := it.codepoint.next(it.level); ok {
			return it.adjust(w), true
		}

		cp := it.decodeNext()
		if cp < 0 {
			if it.level+1 < it.levelsForCompare {
				it.level++
				it.input = it.original
				it.chars = 0
				it.prev = 0
				it.codepoint = codepointIterator{}
				return 0, true
			}
			return 0, false
		}

		if cp > it.maxCodepoint {
			it.prev = 0
			return 0xFFFD, true
		}

		if it.contract != nil {
			// a previous-context pair only matches when something
			// precedes it: the head may not open the scan
			if it.chars > 2 {
				if weights := it.contract.weightForContextualContraction(it.prev, cp); weights != nil {
					it.codepoint.initContraction(weights)
					it.prev = cp
					continue
				}
			}
			if weights, remainder, skip := it.contract.weightForContraction(it.charset, cp, it.input); weights != nil {
				it.codepoint.initContraction(weights)
				it.input = remainder
				it.chars += skip
				it.prev = 0
				continue
			}
		}

		it.codepoint.init(it.Collation900, cp)
		it.prev = cp
	}
}

func (it *WeightIterator900) adjust(w uint16) uint16 {
	switch it.level {
	case 0:
		for _, r := range it.reorder {
			if w >= r.FromMin && w <= r.FromMax {
				return w - r.FromMin + r.ToMin
			}
		}
	case 2:
		if it.upperCaseFirst {
			switch w {
			case caseLowerTertiary:
				return caseUpperTertiary
			case caseUpperTertiary:
				return caseLowerTertiary
			}
		}
	}
	return w
}
