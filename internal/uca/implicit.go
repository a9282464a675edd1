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

// Hangul syllable composition constants (Unicode chapter 3.12).
const (
	hangulSBase = 0xAC00
	hangulSEnd  = 0xD7A3
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7
	hangulVCnt  = 21
	hangulTCnt  = 28
)

func isHangulSyllable(cp rune) bool {
	return cp >= hangulSBase && cp <= hangulSEnd
}

// decomposeHangulSyllable splits a precomposed Hangul syllable into
// its 2 or 3 conjoining Jamo. The trailing consonant is 0 when the
// syllable has none.
func decomposeHangulSyllable(cp rune) (lead, vowel, trail rune) {
	sIndex := cp - hangulSBase
	lead = hangulLBase + sIndex/(hangulVCnt*hangulTCnt)
	vowel = hangulVBase + (sIndex%(hangulVCnt*hangulTCnt))/hangulTCnt
	if tIndex := sIndex % hangulTCnt; tIndex > 0 {
		trail = hangulTBase + tIndex
	}
	return
}

func isUnifiedIdeograph(cp rune) bool {
	return (cp >= 0x3400 && cp <= 0x4DBF) ||
		(cp >= 0x4E00 && cp <= 0x9FFF) ||
		(cp >= 0xFA0E && cp <= 0xFA29) ||
		(cp >= 0x20000 && cp <= 0x3FFFD)
}

func isCoreHan(cp rune) bool {
	return (cp >= 0x4E00 && cp <= 0x9FFF) || (cp >= 0xFA0E && cp <= 0xFA29)
}

// unicodeImplicitWeights900 computes the two collation elements of a
// codepoint with no explicit table entry and writes them into weights
// (stride MaxLevels). The embedded low half of the codepoint keeps
// the implicit primaries in codepoint order within each base range.
func unicodeImplicitWeights900(weights []uint16, cp rune) {
	var base uint16
	switch {
	case isCoreHan(cp):
		base = 0xFB40
	case isUnifiedIdeograph(cp):
		base = 0xFB80
	default:
		base = 0xFBC0
	}

	weights[0] = base + uint16(cp>>15)
	weights[1] = 0x0020
	weights[2] = 0x0002
	weights[3] = uint16(cp&0x7FFF) | 0x8000
	weights[4] = 0
	weights[5] = 0
}

// unicodeImplicitWeightsLegacy computes the two primary weight halves
// used by the legacy stride tables.
func unicodeImplicitWeightsLegacy(weights []uint16, cp rune) {
	var base uint16
	switch {
	case isCoreHan(cp):
		base = 0xFB40
	case isUnifiedIdeograph(cp):
		base = 0xFB80
	default:
		base = 0xFBC0
	}
	weights[0] = base + uint16(cp>>15)
	weights[1] = uint16(cp&0x7FFF) | 0x8000
}
