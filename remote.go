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
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/hexadb/collations/charset"
)

// RemoteCollation implements the Collation interface by performing
// every operation on a live MySQL server. It is not efficient
// compared to the native implementations, but it gives authoritative
// results for any collation the server knows about and is how the
// native implementations are tested against MySQL.
type RemoteCollation struct {
	name string
	id   ID

	prefix string
	suffix string

	mu   sync.Mutex
	conn *sql.DB
	sql  strings.Builder
	err  error
}

// RemoteByName returns a RemoteCollation that runs its operations on
// the given connection. The collation name is not validated locally;
// a name the server does not know about surfaces through LastError.
func RemoteByName(conn *sql.DB, collname string) *RemoteCollation {
	var collid ID
	if known, ok := collationsByName[collname]; ok {
		collid = known.Id()
	}

	coll := &RemoteCollation{
		name: collname,
		id:   collid,
		conn: conn,
	}

	cs := collname
	if idx := strings.IndexByte(collname, '_'); idx >= 0 {
		cs = collname[:idx]
	}
	coll.prefix = fmt.Sprintf("_%s X'", cs)
	coll.suffix = fmt.Sprintf("' COLLATE %q", collname)
	return coll
}

// LastError returns the error from the most recent remote operation,
// if any. The Collation interface has no error returns on the hot
// path, so remote failures are reported out of band.
func (c *RemoteCollation) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *RemoteCollation) init() {}

func (c *RemoteCollation) Id() ID {
	return c.id
}

func (c *RemoteCollation) Name() string {
	return c.name
}

func (c *RemoteCollation) Charset() charset.Charset {
	return charset.Charset_utf8mb4{}
}

func (c *RemoteCollation) writeLiteral(b []byte) {
	c.sql.WriteString(c.prefix)
	c.sql.WriteString(hex.EncodeToString(b))
	c.sql.WriteString(c.suffix)
}

func (c *RemoteCollation) Collate(left, right []byte, rightIsPrefix bool) int {
	if rightIsPrefix {
		panic("unsupported: rightIsPrefix with RemoteCollation")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sql.Reset()
	c.sql.WriteString("SELECT STRCMP(")
	c.writeLiteral(left)
	c.sql.WriteString(", ")
	c.writeLiteral(right)
	c.sql.WriteString(")")

	var cmp int64
	if c.err = c.conn.QueryRow(c.sql.String()).Scan(&cmp); c.err != nil {
		return 0
	}
	return int(cmp)
}

func (c *RemoteCollation) CollateSP(left, right []byte) int {
	return c.Collate(left, right, false)
}

func (c *RemoteCollation) WeightString(dst, src []byte, numCodepoints int) []byte {
	if numCodepoints == PadToMax {
		panic("unsupported: PadToMax with RemoteCollation")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sql.Reset()
	c.sql.WriteString("SELECT WEIGHT_STRING(")
	c.writeLiteral(src)
	if numCodepoints > 0 {
		fmt.Fprintf(&c.sql, " AS CHAR(%d)", numCodepoints)
	}
	c.sql.WriteString(")")

	var weights []byte
	if c.err = c.conn.QueryRow(c.sql.String()).Scan(&weights); c.err != nil {
		return nil
	}
	if dst == nil {
		return weights
	}
	return append(dst, weights...)
}

func (c *RemoteCollation) WeightStringLen(_ int) int {
	return 0
}

func (c *RemoteCollation) Hash(_ []byte, _ int) uint64 {
	panic("unsupported: Hash with RemoteCollation")
}

func (c *RemoteCollation) Wildcard(pat []byte, matchOne, matchMany, escape rune) WildcardPattern {
	equals := func(a, b rune) bool {
		return c.Collate([]byte(string(a)), []byte(string(b)), false) == 0
	}
	return newUnicodeWildcardMatcher(charset.Charset_utf8mb4{}, equals, c.Collate, pat, matchOne, matchMany, escape)
}
