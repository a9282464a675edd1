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
	"bytes"

	"github.com/cespare/xxhash/v2"

	"github.com/hexadb/collations/charset"
)

func init() {
	register(&Collation_binary{})
}

func collationBinary(left, right []byte, rightIsPrefix bool) int {
	minLen := minInt(len(left), len(right))
	if cmp := bytes.Compare(left[:minLen], right[:minLen]); cmp != 0 {
		return cmp
	}
	if rightIsPrefix {
		left = left[:minLen]
	}
	return len(left) - len(right)
}

// Collation_binary is the binary collation: NO PAD, bytewise order,
// no case folding.
type Collation_binary struct{}

func (c *Collation_binary) init() {}

func (c *Collation_binary) Id() ID {
	return 63
}

func (c *Collation_binary) Name() string {
	return "binary"
}

func (c *Collation_binary) Charset() charset.Charset {
	return charset.Charset_binary{}
}

func (c *Collation_binary) Collate(left, right []byte, rightIsPrefix bool) int {
	return collationBinary(left, right, rightIsPrefix)
}

func (c *Collation_binary) CollateSP(left, right []byte) int {
	return collationBinary(left, right, false)
}

func (c *Collation_binary) WeightString(dst, src []byte, numCodepoints int) []byte {
	padToMax := false
	copyCodepoints := len(src)
	if cap(dst) > 0 {
		copyCodepoints = minInt(copyCodepoints, cap(dst))
	}

	switch numCodepoints {
	case 0: // no-op
	case PadToMax:
		padToMax = true
	default:
		copyCodepoints = minInt(copyCodepoints, numCodepoints)
	}

	dst = append(dst, src[:copyCodepoints]...)
	if padToMax {
		for len(dst) < cap(dst) {
			dst = append(dst, 0x0)
		}
	}
	return dst
}

func (c *Collation_binary) WeightStringLen(numCodepoints int) int {
	return numCodepoints
}

func (c *Collation_binary) Hash(src []byte, numCodepoints int) uint64 {
	if numCodepoints > 0 && numCodepoints != PadToMax {
		src = src[:minInt(len(src), numCodepoints)]
	}
	return xxhash.Sum64(src)
}

func (c *Collation_binary) Wildcard(pat []byte, matchOne, matchMany, escape rune) WildcardPattern {
	equals := func(a, b rune) bool { return a == b }
	return newUnicodeWildcardMatcher(charset.Charset_binary{}, equals, c.Collate, pat, matchOne, matchMany, escape)
}
