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

package charset

import (
	"unicode/utf8"
)

// RuneError is returned by DecodeRune when the next codepoint in the
// input cannot be decoded. A decoder that returns (RuneError, width)
// with width < 3 signals malformed input; a 3-byte width is the valid
// encoding of U+FFFD itself.
const RuneError = utf8.RuneError

// Charset is a codepoint decoder over byte spans. The collation engine
// never interprets raw bytes itself; all scanning goes through one of
// these.
type Charset interface {
	Name() string
	SupportsSupplementaryChars() bool
	DecodeRune([]byte) (rune, int)
	EncodeRune([]byte, rune) int
}

// Charset_utf8mb4 is the default charset for all UCA collations.
type Charset_utf8mb4 struct{}

func (Charset_utf8mb4) Name() string {
	return "utf8mb4"
}

func (Charset_utf8mb4) SupportsSupplementaryChars() bool {
	return true
}

func (Charset_utf8mb4) DecodeRune(b []byte) (rune, int) {
	return utf8.DecodeRune(b)
}

func (Charset_utf8mb4) EncodeRune(dst []byte, r rune) int {
	if !utf8.ValidRune(r) {
		return -1
	}
	return utf8.EncodeRune(dst, r)
}

// Charset_binary decodes every byte as its own codepoint.
type Charset_binary struct{}

func (Charset_binary) Name() string {
	return "binary"
}

func (Charset_binary) SupportsSupplementaryChars() bool {
	return true
}

func (Charset_binary) DecodeRune(b []byte) (rune, int) {
	if len(b) < 1 {
		return RuneError, 0
	}
	return rune(b[0]), 1
}

func (Charset_binary) EncodeRune(dst []byte, r rune) int {
	if r > 0xFF {
		return -1
	}
	dst[0] = byte(r)
	return 1
}
