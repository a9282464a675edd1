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
	"strings"
	"unicode/utf8"
)

// ShiftMethod controls how a tailored character derives its weight
// from its reset anchor.
type ShiftMethod byte

const (
	// ShiftSimple adds the rule diff to the anchor's last weight.
	ShiftSimple ShiftMethod = iota
	// ShiftExpand keeps the anchor's weights and appends an extra
	// collation element carrying the diff, offset by the reserved
	// 0x1000 margin.
	ShiftExpand
)

// Shift is one shifted sequence inside a rule: the characters moved
// to the next position after the running anchor.
type Shift struct {
	// Level is 1 for "<" through 4 for "<<<<", and 0 for "=".
	Level int
	// Chars is the shifted codepoint sequence; more than one
	// codepoint forms a contraction.
	Chars []rune
	// Expansion holds the codepoints after "/": their weights are
	// appended to the shifted character's.
	Expansion []rune
	// Contextual marks a "x|y" sequence: the pair only collates as a
	// unit when it does not start the scanned string.
	Contextual bool
}

// Rule is one "&" reset plus its chain of shifted sequences.
type Rule struct {
	Reset       []rune
	BeforeLevel int
	Shifts      []Shift
}

// RuleSet is a parsed tailoring: its settings and its ordered rules.
type RuleSet struct {
	Name           string
	Version        int
	Shift          ShiftMethod
	ReorderGroups  []string
	UpperCaseFirst bool
	Rules          []Rule
}

// Tailoring error kinds.
const (
	ErrSyntax   = "syntax error"
	ErrSemantic = "invalid rule"
	ErrCapacity = "capacity overflow"
)

const errorContextLen = 30

// TailoringError describes why a tailoring was rejected: the error
// kind, a snippet of the offending rule text and the collation it was
// meant for.
type TailoringError struct {
	Collation string
	Kind      string
	Message   string
	Context   string
}

func (e *TailoringError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s in collation %q: %s near %q", e.Kind, e.Collation, e.Message, e.Context)
	}
	return fmt.Sprintf("%s in collation %q: %s", e.Kind, e.Collation, e.Message)
}

type tokenKind byte

const (
	tokEOF tokenKind = iota
	tokReset
	tokShift
	tokSlash
	tokPipe
	tokBracket
	tokChar
	tokError
)

type token struct {
	kind    tokenKind
	level   int
	ch      rune
	bracket string
	pos     int
}

type lexer struct {
	input string
	pos   int
	err   string
}

func (lx *lexer) context(pos int) string {
	tail := lx.input[pos:]
	if len(tail) > errorContextLen {
		tail = tail[:errorContextLen]
	}
	return tail
}

func (lx *lexer) next() token {
	for lx.pos < len(lx.input) {
		if c := lx.input[lx.pos]; c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			lx.pos++
			continue
		}
		break
	}
	if lx.pos >= len(lx.input) {
		return token{kind: tokEOF, pos: lx.pos}
	}

	start := lx.pos
	switch c := lx.input[lx.pos]; c {
	case '&':
		lx.pos++
		return token{kind: tokReset, pos: start}
	case '=':
		lx.pos++
		return token{kind: tokShift, level: 0, pos: start}
	case '<':
		level := 0
		for lx.pos < len(lx.input) && lx.input[lx.pos] == '<' && level < 4 {
			lx.pos++
			level++
		}
		return token{kind: tokShift, level: level, pos: start}
	case '/':
		lx.pos++
		return token{kind: tokSlash, pos: start}
	case '|':
		lx.pos++
		return token{kind: tokPipe, pos: start}
	case '[':
		end := strings.IndexByte(lx.input[lx.pos:], ']')
		if end < 0 {
			lx.err = "unterminated '[' directive"
			return token{kind: tokError, pos: start}
		}
		inner := lx.input[lx.pos+1 : lx.pos+end]
		lx.pos += end + 1
		return token{kind: tokBracket, bracket: inner, pos: start}
	case '\\':
		cp, ok := lx.escape()
		if !ok {
			return token{kind: tokError, pos: start}
		}
		return token{kind: tokChar, ch: cp, pos: start}
	default:
		cp, width := utf8.DecodeRuneInString(lx.input[lx.pos:])
		if cp == utf8.RuneError && width < 3 {
			lx.err = "malformed character"
			return token{kind: tokError, pos: start}
		}
		lx.pos += width
		return token{kind: tokChar, ch: cp, pos: start}
	}
}

func (lx *lexer) escape() (rune, bool) {
	lx.pos++ // consume the backslash
	if lx.pos >= len(lx.input) {
		lx.err = "truncated escape sequence"
		return 0, false
	}
	if c := lx.input[lx.pos]; c != 'u' && c != 'U' {
		// a literally escaped character
		cp, width := utf8.DecodeRuneInString(lx.input[lx.pos:])
		lx.pos += width
		return cp, true
	}

	lx.pos++
	var cp rune
	var digits int
	for lx.pos < len(lx.input) && digits < 6 {
		var d rune
		switch c := lx.input[lx.pos]; {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			digits = 6
			continue
		}
		cp = cp<<4 | d
		lx.pos++
		digits++
	}
	if cp == 0 || cp > 0x10FFFF {
		lx.err = "escape is not a valid codepoint"
		return 0, false
	}
	return cp, true
}

// parser is a recursive-descent parser with one token of lookahead
// over the lexer's token stream.
type parser struct {
	name string
	lx   lexer
	tok  token
}

// ParseTailoring parses the rule text of a tailoring for the named
// collation.
func ParseTailoring(name, input string) (*RuleSet, error) {
	p := &parser{name: name, lx: lexer{input: input}}
	p.advance()
	return p.parse()
}

func (p *parser) advance() {
	p.tok = p.lx.next()
}

func (p *parser) errSyntax(msg string, pos int) error {
	if p.lx.err != "" {
		msg = p.lx.err
	}
	return &TailoringError{Collation: p.name, Kind: ErrSyntax, Message: msg, Context: p.lx.context(pos)}
}

func (p *parser) errSemantic(msg string, pos int) error {
	return &TailoringError{Collation: p.name, Kind: ErrSemantic, Message: msg, Context: p.lx.context(pos)}
}

func (p *parser) parse() (*RuleSet, error) {
	rs := &RuleSet{Name: p.name, Version: 900}

	for p.tok.kind == tokBracket {
		if err := p.setting(rs); err != nil {
			return nil, err
		}
		p.advance()
	}

	for p.tok.kind != tokEOF {
		if p.tok.kind != tokReset {
			return nil, p.errSyntax("expected '&' at start of rule", p.tok.pos)
		}
		rule, err := p.rule()
		if err != nil {
			return nil, err
		}
		rs.Rules = append(rs.Rules, *rule)
	}
	return rs, nil
}

func (p *parser) setting(rs *RuleSet) error {
	fields := strings.Fields(p.tok.bracket)
	if len(fields) == 0 {
		return p.errSyntax("empty directive", p.tok.pos)
	}
	switch fields[0] {
	case "version":
		if len(fields) != 2 {
			return p.errSyntax("version directive takes one argument", p.tok.pos)
		}
		switch fields[1] {
		case "4.0.0":
			rs.Version = 400
		case "5.2.0":
			rs.Version = 520
		case "9.0.0":
			rs.Version = 900
		default:
			return p.errSemantic(fmt.Sprintf("unsupported UCA version %q", fields[1]), p.tok.pos)
		}
	case "shift-after-method":
		if len(fields) != 2 {
			return p.errSyntax("shift-after-method directive takes one argument", p.tok.pos)
		}
		switch fields[1] {
		case "simple":
			rs.Shift = ShiftSimple
		case "expand":
			rs.Shift = ShiftExpand
		default:
			return p.errSemantic(fmt.Sprintf("unknown shift-after-method %q", fields[1]), p.tok.pos)
		}
	case "reorder":
		if len(fields) < 2 {
			return p.errSyntax("reorder directive takes at least one group", p.tok.pos)
		}
		for _, group := range fields[1:] {
			if _, ok := reorderGroupRange(group); !ok {
				return p.errSemantic(fmt.Sprintf("unknown reorder group %q", group), p.tok.pos)
			}
			rs.ReorderGroups = append(rs.ReorderGroups, group)
		}
	case "caseFirst":
		if len(fields) != 2 {
			return p.errSyntax("caseFirst directive takes one argument", p.tok.pos)
		}
		switch fields[1] {
		case "upper":
			rs.UpperCaseFirst = true
		case "lower":
			rs.UpperCaseFirst = false
		default:
			return p.errSemantic(fmt.Sprintf("unknown caseFirst order %q", fields[1]), p.tok.pos)
		}
	default:
		return p.errSyntax(fmt.Sprintf("unknown directive %q", fields[0]), p.tok.pos)
	}
	return nil
}

func (p *parser) rule() (*Rule, error) {
	resetPos := p.tok.pos
	p.advance() // consume '&'

	var rule Rule
	if p.tok.kind == tokBracket {
		fields := strings.Fields(p.tok.bracket)
		if len(fields) != 2 || fields[0] != "before" {
			return nil, p.errSyntax("expected [before N] after '&'", p.tok.pos)
		}
		switch fields[1] {
		case "1":
			rule.BeforeLevel = 1
		case "2":
			rule.BeforeLevel = 2
		case "3":
			rule.BeforeLevel = 3
		default:
			return nil, p.errSemantic(fmt.Sprintf("invalid before level %q", fields[1]), p.tok.pos)
		}
		p.advance()
	}

	for p.tok.kind == tokChar {
		rule.Reset = append(rule.Reset, p.tok.ch)
		p.advance()
	}
	if len(rule.Reset) == 0 {
		return nil, p.errSyntax("reset sequence is empty", resetPos)
	}
	if len(rule.Reset) > MaxContractionRunes {
		return nil, p.errSemantic("reset sequence is too long", resetPos)
	}

	for p.tok.kind == tokShift {
		shift, err := p.shiftSeq(p.tok.level)
		if err != nil {
			return nil, err
		}
		rule.Shifts = append(rule.Shifts, *shift)
	}
	if len(rule.Shifts) == 0 {
		return nil, p.errSyntax("rule has no shift operator", p.tok.pos)
	}
	return &rule, nil
}

func (p *parser) shiftSeq(level int) (*Shift, error) {
	seqPos := p.tok.pos
	p.advance() // consume the shift operator

	shift := &Shift{Level: level}
	for p.tok.kind == tokChar {
		shift.Chars = append(shift.Chars, p.tok.ch)
		p.advance()
	}
	if len(shift.Chars) == 0 {
		return nil, p.errSyntax("shift sequence is empty", seqPos)
	}

	switch p.tok.kind {
	case tokSlash:
		p.advance()
		for p.tok.kind == tokChar {
			shift.Expansion = append(shift.Expansion, p.tok.ch)
			p.advance()
		}
		if len(shift.Expansion) == 0 {
			return nil, p.errSyntax("expansion after '/' is empty", seqPos)
		}
	case tokPipe:
		p.advance()
		if p.tok.kind != tokChar {
			return nil, p.errSyntax("expected a character after '|'", seqPos)
		}
		if len(shift.Chars) != 1 {
			return nil, p.errSemantic("previous context spans more than 2 codepoints", seqPos)
		}
		shift.Chars = append(shift.Chars, p.tok.ch)
		shift.Contextual = true
		p.advance()
	}

	if len(shift.Chars) > MaxContractionRunes {
		return nil, p.errSemantic("shift sequence is too long", seqPos)
	}
	return shift, nil
}
