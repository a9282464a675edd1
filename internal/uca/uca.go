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

// Package uca implements the Unicode Collation Algorithm as used by
// MySQL-compatible collations: multi-level weight tables stored as
// sparse page arrays, contraction matching, implicit weights for
// unassigned codepoints, and a tailoring compiler that derives new
// weight tables from a base table using MySQL's collation
// customization rule language.
package uca

import (
	"sync"

	"github.com/hexadb/collations/charset"
)

const (
	// MaxCodepoint is the first codepoint not representable in any
	// weight table.
	MaxCodepoint = 0x10FFFF + 1

	// CodepointsPerPage is the number of consecutive codepoints
	// stored in a single weight page.
	CodepointsPerPage = 256

	// MaxCollationElements is the largest number of collation
	// elements a single codepoint or contraction can expand into.
	MaxCollationElements = 8

	// MaxLevels is the number of comparison levels in a 900 table:
	// primary, secondary, tertiary.
	MaxLevels = 3
)

// Weights is a sparse table of weight pages. A nil page means no
// codepoint in that page has explicit weights; their weights are
// computed implicitly.
//
// Page layout for 900 tables: page[offset] holds the number of
// collation elements for the codepoint, and the weight for element n
// at level l lives at page[256+(n*3+l)*256+offset].
type Weights []*[]uint16

// PageOffset splits a codepoint into its page number and the offset
// within the page.
func PageOffset(cp rune) (int, int) {
	return int(cp >> 8), int(cp & 0xFF)
}

// Patch replaces the weights of a single codepoint when applied on
// top of a base table.
type Patch struct {
	Codepoint rune
	Patch     []uint16
}

// Reorder remaps one contiguous range of primary weights onto
// another. Applied lazily while scanning.
type Reorder struct {
	FromMin, FromMax uint16
	ToMin, ToMax     uint16
}

// Collation900 is an immutable 900-layout collation table plus its
// scan-time options. It is built once, then shared by any number of
// concurrent iterators.
type Collation900 struct {
	table            Weights
	maxCodepoint     rune
	contract         *contractions
	reorder          []Reorder
	upperCaseFirst   bool
	reverseLevel     [MaxLevels]bool
	levelsForCompare int

	charset   charset.Charset
	asciiFast bool

	spaceWeights [MaxLevels]uint16

	iterpool sync.Pool
}

// Table900 describes a 900-layout collation to New900.
type Table900 struct {
	Table          Weights
	Contractions   []Contraction
	Reorder        []Reorder
	UpperCaseFirst bool

	// ReverseLevel flips the byte order of that level's section of a
	// sort key (kana-sensitive collations reverse the tertiary).
	ReverseLevel [MaxLevels]bool

	// Levels is how many levels Collate walks through, 1 to 3.
	Levels int
}

// New900 builds a Collation900 over the given table. The table is
// retained by reference and must never be mutated afterwards.
func New900(t Table900) *Collation900 {
	cs := charset.Charset_utf8mb4{}
	coll := &Collation900{
		table:            t.Table,
		maxCodepoint:     rune(len(t.Table)*CodepointsPerPage - 1),
		contract:         newContractions(t.Contractions),
		reorder:          t.Reorder,
		upperCaseFirst:   t.UpperCaseFirst,
		reverseLevel:     t.ReverseLevel,
		levelsForCompare: t.Levels,
		charset:          cs,
		asciiFast:        true,
	}
	coll.iterpool.New = func() any {
		return &WeightIterator900{Collation900: coll}
	}
	for l := 0; l < MaxLevels; l++ {
		coll.spaceWeights[l] = coll.weightForCodepointAtLevel(' ', l)
	}
	return coll
}

// Charset returns the charset used to decode scanner input.
func (c *Collation900) Charset() charset.Charset {
	return c.charset
}

// Levels returns how many levels a full comparison walks through.
func (c *Collation900) Levels() int {
	return c.levelsForCompare
}

// WeightsEqual reports whether two codepoints have identical weights
// over the levels this collation compares. This is the per-codepoint
// equality primitive that wildcard matching and case-insensitive
// comparison are built on.
func (c *Collation900) WeightsEqual(left, right rune) bool {
	if left == right {
		return true
	}
	for l := 0; l < c.levelsForCompare; l++ {
		var li, ri codepointIterator
		li.init(c, left)
		ri.init(c, right)
		for {
			lw, lok := li.next(l)
			rw, rok := ri.next(l)
			if lok != rok || lw != rw {
				return false
			}
			if !lok {
				break
			}
		}
	}
	return true
}

func (c *Collation900) weightForCodepointAtLevel(cp rune, level int) uint16 {
	var it codepointIterator
	it.init(c, cp)
	w, _ := it.next(level)
	return w
}

// Iterator returns a scanner over the weights of the input, walking
// all comparison levels in sequence with a zero level separator in
// between. maxChars bounds the scan per level; a negative bound scans
// everything.
func (c *Collation900) Iterator(input []byte, maxChars int) *WeightIterator900 {
	iter := c.iterpool.Get().(*WeightIterator900)
	iter.reset(input, maxChars)
	return iter
}

func (c *Collation900) putIterator(it *WeightIterator900) {
	it.original = nil
	it.input = nil
	c.iterpool.Put(it)
}

// CollationLegacy is a single-level collation table in the legacy
// stride layout: page[0] holds the per-codepoint weight count and the
// weights for a codepoint start at page[1+stride*offset].
type CollationLegacy struct {
	table        Weights
	maxCodepoint rune
	contract     *contractions
	charset      charset.Charset

	spaceWeight uint16

	iterpool sync.Pool
}

// NewLegacy builds a CollationLegacy over the given stride-layout
// table.
func NewLegacy(table Weights, contract []Contraction, maxCodepoint rune) *CollationLegacy {
	coll := &CollationLegacy{
		table:        table,
		maxCodepoint: maxCodepoint,
		contract:     newContractions(contract),
		charset:      charset.Charset_utf8mb4{},
	}
	coll.iterpool.New = func() any {
		return &WeightIteratorLegacy{CollationLegacy: coll}
	}
	it := coll.Iterator([]byte{' '}, -1)
	coll.spaceWeight, _ = it.Next()
	it.Done()
	return coll
}

// Charset returns the charset used to decode scanner input.
func (c *CollationLegacy) Charset() charset.Charset {
	return c.charset
}

// SpaceWeight is the weight the PAD SPACE comparison pads shorter
// operands with.
func (c *CollationLegacy) SpaceWeight() uint16 {
	return c.spaceWeight
}

// WeightsEqual reports whether two codepoints have identical primary
// weights.
func (c *CollationLegacy) WeightsEqual(left, right rune) bool {
	if left == right {
		return true
	}
	var li, ri codepointIteratorLegacy
	li.init(c.table, left)
	ri.init(c.table, right)
	for {
		lw, lok := li.next()
		rw, rok := ri.next()
		if lok != rok || lw != rw {
			return false
		}
		if !lok {
			return true
		}
	}
}

// Iterator returns a scanner over the primary weights of the input.
func (c *CollationLegacy) Iterator(input []byte, maxChars int) *WeightIteratorLegacy {
	iter := c.iterpool.Get().(*WeightIteratorLegacy)
	iter.reset(input, maxChars)
	return iter
}
