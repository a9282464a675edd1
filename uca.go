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
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/hexadb/collations/charset"
	"github.com/hexadb/collations/internal/uca"
)

func init() {
	register(&Collation_utf8mb4_uca_0900{
		id:     255,
		name:   "utf8mb4_0900_ai_ci",
		levels: 1,
		table:  uca.WeightTable_uca900,
	})
	register(&Collation_utf8mb4_uca_0900{
		id:     305,
		name:   "utf8mb4_0900_as_ci",
		levels: 2,
		table:  uca.WeightTable_uca900,
	})
	register(&Collation_utf8mb4_uca_0900{
		id:     278,
		name:   "utf8mb4_0900_as_cs",
		levels: 3,
		table:  uca.WeightTable_uca900,
	})
	register(&Collation_uca_legacy{
		id:    246,
		name:  "utf8mb4_unicode_520_ci",
		table: uca.WeightTable_uca520,
	})
	registerBuiltinTailorings()
}

// Collation_utf8mb4_uca_0900 is a NO PAD collation over a 3-level UCA
// weight table in the columnar 0900 layout.
type Collation_utf8mb4_uca_0900 struct {
	id     ID
	name   string
	levels int
	table  uca.Weights

	tailoring uca.Table900
	tailored  bool

	once sync.Once
	uca  *uca.Collation900
}

func (c *Collation_utf8mb4_uca_0900) init() {
	c.once.Do(func() {
		t := c.tailoring
		if !c.tailored {
			t = uca.Table900{Table: c.table}
		}
		t.Levels = c.levels
		c.uca = uca.New900(t)
	})
}

func (c *Collation_utf8mb4_uca_0900) Id() ID {
	return c.id
}

func (c *Collation_utf8mb4_uca_0900) Name() string {
	return c.name
}

func (c *Collation_utf8mb4_uca_0900) Charset() charset.Charset {
	return c.uca.Charset()
}

func (c *Collation_utf8mb4_uca_0900) Collate(left, right []byte, rightIsPrefix bool) int {
	return c.uca.Collate(left, right, rightIsPrefix)
}

func (c *Collation_utf8mb4_uca_0900) CollateSP(left, right []byte) int {
	return c.uca.CollateSP(left, right)
}

func (c *Collation_utf8mb4_uca_0900) WeightString(dst, src []byte, numCodepoints int) []byte {
	return c.uca.WeightString(dst, src, numCodepoints)
}

func (c *Collation_utf8mb4_uca_0900) WeightStringLen(numCodepoints int) int {
	return c.uca.WeightStringLen(numCodepoints)
}

func (c *Collation_utf8mb4_uca_0900) Hash(src []byte, numCodepoints int) uint64 {
	var h xxhash.Digest
	h.Reset()

	bound := -1
	if numCodepoints > 0 && numCodepoints != PadToMax {
		bound = numCodepoints
	}
	it := c.uca.Iterator(src, bound)
	defer it.Done()

	var scratch [2]byte
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		scratch[0], scratch[1] = byte(w>>8), byte(w)
		h.Write(scratch[:])
	}
	return h.Sum64()
}

func (c *Collation_utf8mb4_uca_0900) Wildcard(pat []byte, matchOne, matchMany, escape rune) WildcardPattern {
	return newUnicodeWildcardMatcher(c.uca.Charset(), c.uca.WeightsEqual, c.Collate, pat, matchOne, matchMany, escape)
}

// Collation_uca_legacy is a PAD SPACE collation over a single-level
// UCA weight table in the legacy stride layout.
type Collation_uca_legacy struct {
	id    ID
	name  string
	table uca.Weights

	once sync.Once
	uca  *uca.CollationLegacy
}

func (c *Collation_uca_legacy) init() {
	c.once.Do(func() {
		c.uca = uca.NewLegacy(c.table, nil, uca.MaxCodepoint-1)
	})
}

func (c *Collation_uca_legacy) Id() ID {
	return c.id
}

func (c *Collation_uca_legacy) Name() string {
	return c.name
}

func (c *Collation_uca_legacy) Charset() charset.Charset {
	return c.uca.Charset()
}

func (c *Collation_uca_legacy) Collate(left, right []byte, rightIsPrefix bool) int {
	return c.uca.Collate(left, right, rightIsPrefix)
}

func (c *Collation_uca_legacy) CollateSP(left, right []byte) int {
	return c.uca.CollateSP(left, right)
}

func (c *Collation_uca_legacy) WeightString(dst, src []byte, numCodepoints int) []byte {
	return c.uca.WeightString(dst, src, numCodepoints)
}

func (c *Collation_uca_legacy) WeightStringLen(numCodepoints int) int {
	return c.uca.WeightStringLen(numCodepoints)
}

// Hash ignores trailing weights equal to the space weight so that
// strings equal under CollateSP hash alike.
func (c *Collation_uca_legacy) Hash(src []byte, numCodepoints int) uint64 {
	var h xxhash.Digest
	h.Reset()

	bound := -1
	if numCodepoints > 0 && numCodepoints != PadToMax {
		bound = numCodepoints
	}
	it := c.uca.Iterator(src, bound)
	defer it.Done()

	space := c.uca.SpaceWeight()
	var scratch [2]byte
	var pendingSpaces int
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		if w == space {
			pendingSpaces++
			continue
		}
		scratch[0], scratch[1] = byte(space>>8), byte(space)
		for ; pendingSpaces > 0; pendingSpaces-- {
			h.Write(scratch[:])
		}
		scratch[0], scratch[1] = byte(w>>8), byte(w)
		h.Write(scratch[:])
	}
	return h.Sum64()
}

func (c *Collation_uca_legacy) Wildcard(pat []byte, matchOne, matchMany, escape rune) WildcardPattern {
	return newUnicodeWildcardMatcher(c.uca.Charset(), c.uca.WeightsEqual, c.Collate, pat, matchOne, matchMany, escape)
}
