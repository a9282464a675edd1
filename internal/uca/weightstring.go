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
	"math"

	"github.com/hexadb/collations/charset"
)

// PadToMax requests a sort key padded all the way to the output
// buffer's capacity.
const PadToMax = math.MaxInt32

// put16 appends one big-endian weight. A bounded destination truncates
// at its capacity; a single leftover byte still receives the high half
// so that truncated sort keys stay byte-prefixes of longer ones.
func put16(dst []byte, w uint16, bounded bool) []byte {
	if bounded {
		switch cap(dst) - len(dst) {
		case 0:
			return dst
		case 1:
			return append(dst, byte(w>>8))
		}
	}
	return append(dst, byte(w>>8), byte(w))
}

// WeightString appends the sort key of src to dst, bounded by
// cap(dst); a nil or zero-capacity dst grows as needed. A zero
// separator splits the levels of a multi-level key. numCodepoints > 0
// restricts the scan to that many codepoints and pads shorter inputs
// with SPACE weights up to it, per level; PadToMax zero-fills to the
// full buffer capacity instead.
func (c *Collation900) WeightString(dst, src []byte, numCodepoints int) []byte {
	bounded := cap(dst) > 0
	maxChars := -1
	var missing int
	switch numCodepoints {
	case 0, PadToMax:
	default:
		maxChars = numCodepoints
		if n := charset.Length(c.charset, src); n < numCodepoints {
			missing = numCodepoints - n
		}
	}

	it := c.Iterator(src, maxChars)
	defer it.Done()

	level := 0
	sectionStart := len(dst)
	for {
		w, ok := it.Next()
		if ok && !(w == 0 && it.Level() != level) {
			dst = put16(dst, w, bounded)
			continue
		}

		// end of a level: space-pad it, then close the section
		for i := 0; i < missing; i++ {
			dst = put16(dst, c.spaceWeights[level], bounded)
		}
		if c.reverseLevel[level] {
			reverseSection(dst[sectionStart:])
		}
		if !ok {
			break
		}
		level = it.Level()
		dst = put16(dst, 0, bounded)
		sectionStart = len(dst)
	}

	if numCodepoints == PadToMax && bounded {
		for len(dst) < cap(dst) {
			dst = append(dst, 0x0)
		}
	}
	return dst
}

func reverseSection(section []byte) {
	for i, j := 0, len(section)-1; i < j; i, j = i+1, j-1 {
		section[i], section[j] = section[j], section[i]
	}
}

// WeightStringLen is an upper bound for the size of the sort key of
// numCodepoints codepoints.
func (c *Collation900) WeightStringLen(numCodepoints int) int {
	return c.levelsForCompare*(numCodepoints*MaxCollationElements*2) + (c.levelsForCompare-1)*2
}

// WeightString appends the legacy single-level sort key of src to
// dst, bounded by cap(dst); a nil or zero-capacity dst grows as
// needed.
func (c *CollationLegacy) WeightString(dst, src []byte, numCodepoints int) []byte {
	bounded := cap(dst) > 0
	maxChars := -1
	padToMax := false
	switch numCodepoints {
	case 0:
	case PadToMax:
		padToMax = true
	default:
		maxChars = numCodepoints
	}

	it := c.Iterator(src, maxChars)
	defer it.Done()

	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		dst = put16(dst, w, bounded)
	}

	if padToMax && bounded {
		for cap(dst) > len(dst) {
			dst = put16(dst, c.spaceWeight, true)
		}
	} else if maxChars > 0 {
		for n := it.Length(); n < maxChars; n++ {
			dst = put16(dst, c.spaceWeight, bounded)
		}
	}
	return dst
}

// WeightStringLen is an upper bound for the size of the legacy sort
// key of numCodepoints codepoints.
func (c *CollationLegacy) WeightStringLen(numCodepoints int) int {
	return numCodepoints * MaxCollationElements * 2
}
