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

	"golang.org/x/text/unicode/norm"
)

// expandMargin is the weight gap reserved under shift-after-method
// "expand" so that elements inserted before an anchor cannot collide
// with elements shifted after it.
const expandMargin = 0x1000

const (
	defaultSecondary = 0x0020
	defaultTertiary  = 0x0002
)

// tableArena synthesizes a tailored weight table on top of a base
// table. Every page starts out shared with the base; the first rule
// that touches a page copies it, exactly once.
type tableArena struct {
	out   Weights
	owned []bool
}

func newTableArena(base Weights) *tableArena {
	out := make(Weights, len(base))
	copy(out, base)
	return &tableArena{
		out:   out,
		owned: make([]bool, len(base)),
	}
}

// pageCECapacity is how many collation elements per codepoint a page
// can hold.
func pageCECapacity(page *[]uint16) int {
	if page == nil {
		return 0
	}
	return (len(*page)/CodepointsPerPage - 1) / MaxLevels
}

func newPage(capacity int) *[]uint16 {
	page := make([]uint16, CodepointsPerPage*(1+capacity*MaxLevels))
	return &page
}

// own returns a mutable page able to hold ceNeeded collation elements
// per codepoint, copying or growing the shared page on first touch.
func (a *tableArena) own(p int, ceNeeded int) *[]uint16 {
	page := a.out[p]
	if a.owned[p] && pageCECapacity(page) >= ceNeeded {
		return page
	}

	capacity := pageCECapacity(page)
	if capacity < ceNeeded {
		capacity = ceNeeded
	}
	grown := newPage(capacity)
	if page != nil {
		for offset := 0; offset < CodepointsPerPage; offset++ {
			count := int((*page)[offset])
			(*grown)[offset] = uint16(count)
			for ce := 0; ce < count; ce++ {
				for l := 0; l < MaxLevels; l++ {
					(*grown)[CodepointsPerPage+(ce*MaxLevels+l)*CodepointsPerPage+offset] =
						(*page)[CodepointsPerPage+(ce*MaxLevels+l)*CodepointsPerPage+offset]
				}
			}
		}
	}
	a.out[p] = grown
	a.owned[p] = true
	return grown
}

// setWeights replaces the collation elements of one codepoint.
// Weights are flattened CEs with stride MaxLevels.
func (a *tableArena) setWeights(cp rune, weights []uint16) {
	ceCount := len(weights) / MaxLevels
	p, offset := PageOffset(cp)
	page := a.own(p, ceCount)
	(*page)[offset] = uint16(ceCount)
	for ce := 0; ce < ceCount; ce++ {
		for l := 0; l < MaxLevels; l++ {
			(*page)[CodepointsPerPage+(ce*MaxLevels+l)*CodepointsPerPage+offset] = weights[ce*MaxLevels+l]
		}
	}
}

// weightsFor reads the current collation elements of a codepoint from
// the developing table, falling back to Hangul decomposition and
// implicit weights exactly like the scanner does.
func (a *tableArena) weightsFor(cp rune) []uint16 {
	p, offset := PageOffset(cp)
	if p < len(a.out) {
		if page := a.out[p]; page != nil {
			if count := int((*page)[offset]); count > 0 {
				weights := make([]uint16, count*MaxLevels)
				for ce := 0; ce < count; ce++ {
					for l := 0; l < MaxLevels; l++ {
						weights[ce*MaxLevels+l] = (*page)[CodepointsPerPage+(ce*MaxLevels+l)*CodepointsPerPage+offset]
					}
				}
				return weights
			}
		}
	}

	if isHangulSyllable(cp) {
		var weights []uint16
		lead, vowel, trail := decomposeHangulSyllable(cp)
		for _, j := range [3]rune{lead, vowel, trail} {
			if j != 0 {
				weights = append(weights, a.weightsFor(j)...)
			}
		}
		return weights
	}

	weights := make([]uint16, 2*MaxLevels)
	unicodeImplicitWeights900(weights, cp)
	return weights
}

// tailoring tracks the state of one rule compilation pass.
type tailoring struct {
	rules *RuleSet
	arena *tableArena

	contractions []Contraction
	contractMap  map[string][]uint16
	tailored     map[rune][]uint16

	// running anchor state
	anchor []uint16
	diffs  [MaxLevels]int
}

// Compile synthesizes a tailored table from the parsed rules and the
// base table. On any error the whole tailoring is rejected; no
// partially patched table is ever returned.
func (rs *RuleSet) Compile(base Weights) (Table900, error) {
	t := &tailoring{
		rules:       rs,
		arena:       newTableArena(base),
		contractMap: make(map[string][]uint16),
		tailored:    make(map[rune][]uint16),
	}

	for i := range rs.Rules {
		if err := t.applyRule(&rs.Rules[i]); err != nil {
			return Table900{}, err
		}
	}

	if rs.Version >= 900 {
		t.propagateDecompositions()
	}

	reorder, err := rs.buildReorder()
	if err != nil {
		return Table900{}, err
	}

	return Table900{
		Table:          t.arena.out,
		Contractions:   t.contractions,
		Reorder:        reorder,
		UpperCaseFirst: rs.UpperCaseFirst,
	}, nil
}

func (t *tailoring) errSemantic(format string, args ...any) error {
	return &TailoringError{Collation: t.rules.Name, Kind: ErrSemantic, Message: fmt.Sprintf(format, args...)}
}

func (t *tailoring) errCapacity(format string, args ...any) error {
	return &TailoringError{Collation: t.rules.Name, Kind: ErrCapacity, Message: fmt.Sprintf(format, args...)}
}

// resolve returns the current collation elements of a codepoint
// sequence, concatenating each codepoint's elements. Sequences that
// were tailored into contractions resolve to the contraction's
// weights.
func (t *tailoring) resolve(chars []rune) ([]uint16, error) {
	if len(chars) > 1 {
		if weights, ok := t.contractMap[string(chars)]; ok {
			return weights, nil
		}
	}
	var weights []uint16
	for _, cp := range chars {
		if cp >= MaxCodepoint {
			return nil, t.errSemantic("codepoint U+%04X is out of range", cp)
		}
		weights = append(weights, t.arena.weightsFor(cp)...)
	}
	if len(weights)/MaxLevels > MaxCollationElements {
		return nil, t.errCapacity("sequence %q expands to more than %d collation elements", string(chars), MaxCollationElements)
	}
	return weights, nil
}

func (t *tailoring) applyRule(rule *Rule) error {
	anchor, err := t.resolve(rule.Reset)
	if err != nil {
		return err
	}
	if len(anchor) == 0 {
		return t.errSemantic("reset anchor %q has no weights", string(rule.Reset))
	}

	t.anchor = anchor
	t.diffs = [MaxLevels]int{}

	if rule.BeforeLevel > 0 {
		if err := t.applyBefore(rule); err != nil {
			return err
		}
	}

	for i := range rule.Shifts {
		if err := t.applyShift(&rule.Shifts[i]); err != nil {
			return err
		}
	}
	return nil
}

// applyBefore moves the anchor below its own position at the rule's
// before-level, so that every shift in the rule's chain lands short of
// the original anchor. The simple method leaves room for exactly the
// chained shifts at that level; the expand method reserves the full
// margin so that elements shifted after neighbouring anchors cannot
// collide.
func (t *tailoring) applyBefore(rule *Rule) error {
	level := rule.BeforeLevel
	last := len(t.anchor) - MaxLevels
	w := t.anchor[last+level-1]
	if w == 0 {
		return t.errSemantic("no preceding non-ignorable element at level %d", level)
	}

	margin := uint16(1)
	for i := range rule.Shifts {
		if rule.Shifts[i].Level == level {
			margin++
		}
	}
	if t.rules.Shift == ShiftExpand && level == 1 {
		margin = expandMargin
	}
	if w <= margin {
		return t.errSemantic("no room before the anchor at level %d", level)
	}

	anchor := make([]uint16, len(t.anchor))
	copy(anchor, t.anchor)
	anchor[last+level-1] = w - margin
	t.anchor = anchor
	return nil
}

// applyShift computes the shifted sequence's new weights from the
// running anchor and the cumulative diff odometer, and writes them
// into the table or the contraction list.
func (t *tailoring) applyShift(shift *Shift) error {
	switch {
	case shift.Level == 0:
		// "=": same position as the previous element
	case shift.Level <= MaxLevels:
		t.diffs[shift.Level-1]++
		for l := shift.Level; l < MaxLevels; l++ {
			t.diffs[l] = 0
		}
	default:
		// a quaternary shift does not move any stored weight;
		// the tables carry three levels
	}

	weights, err := t.shiftedWeights()
	if err != nil {
		return err
	}

	if len(shift.Expansion) > 0 {
		extra, err := t.resolve(shift.Expansion)
		if err != nil {
			return err
		}
		weights = append(weights, extra...)
		if len(weights)/MaxLevels > MaxCollationElements {
			return t.errCapacity("expansion of %q exceeds %d collation elements", string(shift.Chars), MaxCollationElements)
		}
	}

	if len(shift.Chars) == 1 {
		cp := shift.Chars[0]
		if cp >= MaxCodepoint {
			return t.errSemantic("codepoint U+%04X is out of range", cp)
		}
		t.arena.setWeights(cp, weights)
		t.tailored[cp] = weights
		return nil
	}

	if _, dup := t.contractMap[string(shift.Chars)]; dup {
		return t.errSemantic("duplicate contraction %q", string(shift.Chars))
	}
	t.contractions = append(t.contractions, Contraction{
		Path:       append([]rune(nil), shift.Chars...),
		Weights:    weights,
		Contextual: shift.Contextual,
	})
	t.contractMap[string(shift.Chars)] = weights
	return nil
}

// shiftedWeights materializes the current odometer position as a
// weight list.
func (t *tailoring) shiftedWeights() ([]uint16, error) {
	last := len(t.anchor) - MaxLevels

	if t.rules.Shift == ShiftExpand && t.diffs[0] > 0 {
		// expand: keep the whole anchor and append a margin element
		weights := make([]uint16, len(t.anchor)+MaxLevels)
		copy(weights, t.anchor)
		extra := weights[len(t.anchor):]
		extra[0] = expandMargin + uint16(t.diffs[0])
		extra[1] = defaultSecondary + uint16(t.diffs[1])
		extra[2] = defaultTertiary + uint16(t.diffs[2])
		if len(weights)/MaxLevels > MaxCollationElements {
			return nil, t.errCapacity("expanded weights exceed %d collation elements", MaxCollationElements)
		}
		return weights, nil
	}

	weights := make([]uint16, len(t.anchor))
	copy(weights, t.anchor)
	for l := 0; l < MaxLevels; l++ {
		if t.diffs[l] == 0 {
			continue
		}
		w := int(weights[last+l]) + t.diffs[l]
		if w > 0xFFFF {
			return nil, t.errCapacity("weight overflow at level %d", l+1)
		}
		if weights[last+l] == 0 {
			// shifting an ignorable level starts from its default
			w = t.levelDefault(l) + t.diffs[l]
		}
		weights[last+l] = uint16(w)
	}
	return weights, nil
}

func (t *tailoring) levelDefault(level int) int {
	switch level {
	case 1:
		return defaultSecondary
	case 2:
		return defaultTertiary
	}
	return 0
}

// propagateDecompositions extends explicit rules on a base letter to
// every character whose canonical decomposition starts with that
// letter, unless the character was itself tailored. The derived
// weights are the tailored base weights followed by the combining
// marks' own weights.
func (t *tailoring) propagateDecompositions() {
	if len(t.tailored) == 0 {
		return
	}
	for cp := rune(0xC0); cp <= 0x1FFF; cp++ {
		if _, explicit := t.tailored[cp]; explicit {
			continue
		}
		d := []rune(norm.NFD.String(string(cp)))
		if len(d) < 2 {
			continue
		}
		base, ok := t.tailored[d[0]]
		if !ok {
			continue
		}

		weights := append([]uint16(nil), base...)
		for _, mark := range d[1:] {
			weights = append(weights, t.arena.weightsFor(mark)...)
		}
		if len(weights)/MaxLevels > MaxCollationElements {
			continue
		}
		t.arena.setWeights(cp, weights)
	}
}

// buildReorder turns the listed reorder groups into a piecewise
// primary-weight remap: the groups are packed immediately after the
// Latin script, and the scripts they displace are packed after them,
// keeping every range disjoint.
func (rs *RuleSet) buildReorder() ([]Reorder, error) {
	if len(rs.ReorderGroups) == 0 {
		return nil, nil
	}

	listed := make(map[string]bool, len(rs.ReorderGroups))
	order := make([]scriptRange, 0, len(reorderScripts))
	for _, name := range rs.ReorderGroups {
		if name == "Latn" || listed[name] {
			continue
		}
		listed[name] = true
		sr, ok := reorderGroupRange(name)
		if !ok {
			return nil, &TailoringError{Collation: rs.Name, Kind: ErrSemantic, Message: fmt.Sprintf("unknown reorder group %q", name)}
		}
		order = append(order, sr)
	}

	// Latin stays put; everything else follows in tailored order.
	var anchorEnd uint16
	for _, sr := range reorderScripts {
		if sr.name == "Latn" {
			anchorEnd = sr.max
		} else if !listed[sr.name] {
			order = append(order, sr)
		}
	}

	var out []Reorder
	cursor := anchorEnd + 1
	for _, sr := range order {
		size := sr.max - sr.min
		if sr.min != cursor {
			out = append(out, Reorder{FromMin: sr.min, FromMax: sr.max, ToMin: cursor, ToMax: cursor + size})
		}
		cursor += size + 1
	}
	return out, nil
}

type scriptRange struct {
	name     string
	min, max uint16
}

func reorderGroupRange(name string) (scriptRange, bool) {
	for _, sr := range reorderScripts {
		if sr.name == name {
			return sr, true
		}
	}
	return scriptRange{}, false
}
