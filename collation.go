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

// Generate ucadata.go from the JSON weight dump
//go:generate go run ./tools/makeucadata/

package collations

import (
	"fmt"
	"math"

	"github.com/hexadb/collations/charset"
)

// ID is a numeric identifier for a collation. These IDs live in the
// same numeric space as MySQL collation IDs so they can round-trip
// through the wire protocol.
type ID uint16

// PadToMax is a special value for the numCodepoints argument of
// WeightString: the resulting weight string is padded with level
// separators and zeroes until it fills the capacity of the
// destination slice.
const PadToMax = math.MaxInt32

// Collation implements a MySQL-compatible collation. All
// implementations in this package are safe for concurrent use.
type Collation interface {
	// init initializes the internal tables for this collation. It is
	// called lazily the first time the collation is looked up and
	// must be idempotent.
	init()

	// Id returns the numeric identifier for this collation.
	Id() ID

	// Name returns the name of this collation.
	Name() string

	// Charset returns the charset this collation decodes its input
	// with.
	Charset() charset.Charset

	// Collate returns a negative, zero or positive number when left
	// sorts before, equal to or after right. A malformed byte
	// sequence ends that operand's scan. When rightIsPrefix is true,
	// left is truncated to the length of right in codepoints before
	// comparing.
	Collate(left, right []byte, rightIsPrefix bool) int

	// CollateSP compares like Collate but with PAD SPACE semantics:
	// trailing weights equal to the weight of an ASCII space on the
	// longer operand do not participate in the comparison.
	CollateSP(left, right []byte) int

	// WeightString appends the binary sort key for src to dst and
	// returns it. Sort keys compare bytewise in collation order, and
	// a sort key generated with a capacity-bounded dst is a prefix of
	// the unbounded sort key. numCodepoints is 0 for "the whole
	// string", PadToMax to fill dst's capacity, or a positive count
	// to emulate a CHAR(n) column.
	WeightString(dst, src []byte, numCodepoints int) []byte

	// WeightStringLen returns a size (in bytes) that would fit any
	// weight string for a string with the given number of codepoints.
	WeightStringLen(numCodepoints int) int

	// Hash returns a hash of src that is equal for all strings that
	// Collate as equal. numCodepoints follows WeightString semantics.
	Hash(src []byte, numCodepoints int) uint64

	// Wildcard compiles a LIKE-style pattern into a matcher that
	// matches with this collation's equality. Zero values for the
	// metacharacters select the defaults '_', '%' and '\'.
	Wildcard(pat []byte, matchOne, matchMany, escape rune) WildcardPattern
}

// WildcardPattern is a compiled wildcard expression. Matching is
// case-sensitive or not depending on the collation that compiled it.
type WildcardPattern interface {
	Match(in []byte) bool
}

func minInt(i1, i2 int) int {
	if i1 < i2 {
		return i1
	}
	return i2
}

var collationsByName = make(map[string]Collation)
var collationsById = make(map[ID]Collation)

func register(c Collation) {
	duplicated := func(old Collation) {
		panic(fmt.Sprintf("duplicated collation: %s[%d] (existing collation is %s[%d])",
			c.Name(), c.Id(), old.Name(), old.Id(),
		))
	}
	if old, found := collationsByName[c.Name()]; found {
		duplicated(old)
	}
	if old, found := collationsById[c.Id()]; found {
		duplicated(old)
	}
	collationsByName[c.Name()] = c
	collationsById[c.Id()] = c
}

// LookupByName returns the collation with the given name, or nil if
// no such collation is registered.
func LookupByName(name string) Collation {
	csi := collationsByName[name]
	if csi != nil {
		csi.init()
	}
	return csi
}

// LookupById returns the collation with the given numeric identifier,
// or nil if no such collation is registered.
func LookupById(id ID) Collation {
	csi := collationsById[id]
	if csi != nil {
		csi.init()
	}
	return csi
}

// All returns all registered collations in no particular order.
func All() (all []Collation) {
	all = make([]Collation, 0, len(collationsById))
	for _, col := range collationsById {
		col.init()
		all = append(all, col)
	}
	return
}
