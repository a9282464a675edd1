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

// Slice returns the codepoints in [from, to) of the input, reencoded
// as a subslice of the original bytes. Out-of-range bounds are clamped.
func Slice(cs Charset, input []byte, from, to int) []byte {
	if from < 0 {
		from = 0
	}
	if _, isBinary := cs.(Charset_binary); isBinary {
		if from > len(input) {
			from = len(input)
		}
		if to > len(input) {
			to = len(input)
		}
		if from >= to {
			return nil
		}
		return input[from:to]
	}

	var start, end, n int
	iter := input
	for len(iter) > 0 && n < to {
		_, width := cs.DecodeRune(iter)
		if width == 0 {
			break
		}
		if n < from {
			start += width
		}
		end += width
		iter = iter[width:]
		n++
	}
	if start >= end {
		return nil
	}
	return input[start:end]
}

// Length returns the number of codepoints in the input.
func Length(cs Charset, input []byte) int {
	if _, isBinary := cs.(Charset_binary); isBinary {
		return len(input)
	}
	var count int
	for len(input) > 0 {
		_, width := cs.DecodeRune(input)
		if width == 0 {
			break
		}
		input = input[width:]
		count++
	}
	return count
}

// Validate returns whether the input is well-formed in the given charset.
func Validate(cs Charset, input []byte) bool {
	if _, isBinary := cs.(Charset_binary); isBinary {
		return true
	}
	for len(input) > 0 {
		cp, width := cs.DecodeRune(input)
		if cp == RuneError && width < 3 {
			return false
		}
		input = input[width:]
	}
	return true
}
