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

// Collate compares two strings by advancing their weight scanners in
// lockstep; the first differing weight pair decides. When
// rightIsPrefix is set, the comparison only spans right's codepoint
// length, so any left string starting with right compares equal.
func (c *Collation900) Collate(left, right []byte, rightIsPrefix bool) int {
	maxLeft := -1
	if rightIsPrefix {
		maxLeft = charset.Length(c.charset, right)
	}

	li := c.Iterator(left, maxLeft)
	ri := c.Iterator(right, -1)
	defer li.Done()
	defer ri.Done()

	for {
		lw, lok := li.Next()
		rw, rok := ri.Next()
		switch {
		case lok && rok:
			if lw != rw {
				return int(lw) - int(rw)
			}
		case lok:
			return drain900(li, lw)
		case rok:
			return -drain900(ri, rw)
		default:
			return 0
		}
	}
}

// drain900 decides the comparison when one side has weights left over.
// Level separators do not count; any remaining real weight makes the
// longer side greater.
func drain900(it *WeightIterator900, w uint16) int {
	ok := true
	for ok {
		if w != 0 {
			return 1
		}
		w, ok = it.Next()
	}
	return 0
}

// CollateSP is the PAD SPACE comparison: the shorter operand scans as
// if it were padded with spaces to the longer operand's codepoint
// length. Padding is synthesized at the end of every level, before
// the level separator, which keeps the two scans aligned.
func (c *Collation900) CollateSP(left, right []byte) int {
	nl := charset.Length(c.charset, left)
	nr := charset.Length(c.charset, right)

	li := c.Iterator(left, -1)
	ri := c.Iterator(right, -1)
	defer li.Done()
	defer ri.Done()

	lp := spacePadded{it: li, coll: c}
	rp := spacePadded{it: ri, coll: c}
	if nl < nr {
		lp.pad = nr - nl
	} else {
		rp.pad = nl - nr
	}

	for {
		lw, lok := lp.next()
		rw, rok := rp.next()
		switch {
		case lok && rok:
			if lw != rw {
				return int(lw) - int(rw)
			}
		case lok:
			return 1
		case rok:
			return -1
		default:
			return 0
		}
	}
}

// spacePadded decorates a weight scanner so that every level appears
// to end with pad extra SPACE codepoints.
type spacePadded struct {
	it   *WeightIterator900
	coll *Collation900

	pad       int
	remaining int
	level     int
	pending   bool
	pendingW  uint16
	pendingOK bool
}

func (p *spacePadded) next() (uint16, bool) {
	if p.remaining > 0 {
		p.remaining--
		return p.coll.spaceWeights[p.level], true
	}
	if p.pending {
		p.pending = false
		p.level = p.it.Level()
		return p.pendingW, p.pendingOK
	}

	w, ok := p.it.Next()
	if ok && !(w == 0 && p.it.Level() != p.level) {
		return w, ok
	}

	// the level ended: hold the separator back until the padding for
	// this level has been emitted
	p.pendingW, p.pendingOK = w, ok
	p.pending = true
	p.remaining = p.pad
	return p.next()
}

// Collate compares two strings over the legacy single-level table.
func (c *CollationLegacy) Collate(left, right []byte, rightIsPrefix bool) int {
	maxLeft := -1
	if rightIsPrefix {
		maxLeft = charset.Length(c.charset, right)
	}

	li := c.Iterator(left, maxLeft)
	ri := c.Iterator(right, -1)
	defer li.Done()
	defer ri.Done()

	for {
		lw, lok := li.Next()
		rw, rok := ri.Next()
		switch {
		case lok && rok:
			if lw != rw {
				return int(lw) - int(rw)
			}
		case lok:
			return 1
		case rok:
			return -1
		default:
			return 0
		}
	}
}

// CollateSP is the PAD SPACE comparison over the legacy table: the
// shorter operand reads as an infinite run of spaces.
func (c *CollationLegacy) CollateSP(left, right []byte) int {
	li := c.Iterator(left, -1)
	ri := c.Iterator(right, -1)
	defer li.Done()
	defer ri.Done()

	for {
		lw, lok := li.Next()
		rw, rok := ri.Next()
		switch {
		case lok && rok:
			if lw != rw {
				return int(lw) - int(rw)
			}
		case lok:
			return drainSPLegacy(li, lw, c.spaceWeight)
		case rok:
			return -drainSPLegacy(ri, rw, c.spaceWeight)
		default:
			return 0
		}
	}
}

func drainSPLegacy(it *WeightIteratorLegacy, w uint16, space uint16) int {
	ok := true
	for ok {
		if w != space {
			return int(w) - int(space)
		}
		w, ok = it.Next()
	}
	return 0
}
