// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	errExprParse    = errors.New("expression syntax error")
	errDivideByZero = errors.New("divide by zero")
)

type resolver interface {
	resolveIdentifier(s string) (int64, error)
}

// An exprParser evaluates integer expressions typed at the monitor prompt.
//
// Operators, from lowest to highest precedence:
//
//	|  ^  &  << >>  + -  * / %
//
// Unary operators are - + ~ < (low byte) and > (high byte). Numbers may be
// written as decimal, $hex, 0xhex, %binary, 0bbinary or 'c'. When hexMode
// is set, bare numbers are hexadecimal, except that a word naming a
// register resolves to the register.
type exprParser struct {
	hexMode bool
	s       string
	pos     int
	r       resolver
}

func newExprParser() *exprParser {
	return &exprParser{}
}

// Parse evaluates the expression, resolving identifiers through r.
func (p *exprParser) Parse(expr string, r resolver) (int64, error) {
	p.s, p.pos, p.r = expr, 0, r
	defer func() { p.s, p.r = "", nil }()

	v, err := p.parseBinary(0)
	if err != nil {
		return 0, err
	}
	p.skipWhitespace()
	if p.pos != len(p.s) {
		return 0, errExprParse
	}
	return v, nil
}

type binaryOp struct {
	symbol string
	eval   func(a, b int64) (int64, error)
}

// Binary operators grouped by precedence level, lowest first.
var binaryOps = [][]binaryOp{
	{{"|", func(a, b int64) (int64, error) { return a | b, nil }}},
	{{"^", func(a, b int64) (int64, error) { return a ^ b, nil }}},
	{{"&", func(a, b int64) (int64, error) { return a & b, nil }}},
	{
		{"<<", func(a, b int64) (int64, error) { return a << uint64(b&63), nil }},
		{">>", func(a, b int64) (int64, error) { return a >> uint64(b&63), nil }},
	},
	{
		{"+", func(a, b int64) (int64, error) { return a + b, nil }},
		{"-", func(a, b int64) (int64, error) { return a - b, nil }},
	},
	{
		{"*", func(a, b int64) (int64, error) { return a * b, nil }},
		{"/", func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errDivideByZero
			}
			return a / b, nil
		}},
		{"%", func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errDivideByZero
			}
			return a % b, nil
		}},
	},
}

func (p *exprParser) parseBinary(level int) (int64, error) {
	if level == len(binaryOps) {
		return p.parseUnary()
	}

	a, err := p.parseBinary(level + 1)
	if err != nil {
		return 0, err
	}

	for {
		op := p.matchOp(binaryOps[level])
		if op == nil {
			return a, nil
		}
		b, err := p.parseBinary(level + 1)
		if err != nil {
			return 0, err
		}
		if a, err = op.eval(a, b); err != nil {
			return 0, err
		}
	}
}

func (p *exprParser) matchOp(ops []binaryOp) *binaryOp {
	p.skipWhitespace()
	for i := range ops {
		if p.hasPrefix(ops[i].symbol) {
			p.pos += len(ops[i].symbol)
			return &ops[i]
		}
	}
	return nil
}

func (p *exprParser) parseUnary() (int64, error) {
	p.skipWhitespace()
	if p.pos == len(p.s) {
		return 0, errExprParse
	}

	c := p.s[p.pos]
	switch c {
	case '-', '+', '~', '<', '>':
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch c {
		case '-':
			return -v, nil
		case '~':
			return ^v, nil
		case '<':
			return v & 0xff, nil
		case '>':
			return (v >> 8) & 0xff, nil
		}
		return v, nil
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (int64, error) {
	c := p.s[p.pos]
	switch {
	case c == '(':
		p.pos++
		v, err := p.parseBinary(0)
		if err != nil {
			return 0, err
		}
		p.skipWhitespace()
		if p.pos == len(p.s) || p.s[p.pos] != ')' {
			return 0, errExprParse
		}
		p.pos++
		return v, nil

	case c == '\'':
		if len(p.s)-p.pos < 3 || p.s[p.pos+2] != '\'' {
			return 0, errExprParse
		}
		v := int64(p.s[p.pos+1])
		p.pos += 3
		return v, nil

	case c == '$':
		p.pos++
		return p.parseNumber(16, hexadecimal)

	case c == '%':
		p.pos++
		return p.parseNumber(2, binary)

	case p.hasPrefix("0x"):
		p.pos += 2
		return p.parseNumber(16, hexadecimal)

	case p.hasPrefix("0b") && !p.hexMode:
		p.pos += 2
		return p.parseNumber(2, binary)

	case c == '.':
		p.pos++
		return p.r.resolveIdentifier(".")
	}

	if decimal(c) {
		if p.hexMode {
			return p.parseNumber(16, hexadecimal)
		}
		return p.parseNumber(10, decimal)
	}
	if identifier(c) {
		return p.parseIdentifier()
	}
	return 0, errExprParse
}

// Parse a word starting with a letter. A register name wins over a hex
// number, so in hex mode "a" is the accumulator and "ab" is $AB.
func (p *exprParser) parseIdentifier() (int64, error) {
	start := p.pos
	p.scanWhile(identifier)
	word := p.s[start:p.pos]

	v, err := p.r.resolveIdentifier(word)
	if err == nil || !p.hexMode || !allHex(word) {
		return v, err
	}

	p.pos = start
	return p.parseNumber(16, hexadecimal)
}

func allHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !hexadecimal(s[i]) {
			return false
		}
	}
	return true
}

func (p *exprParser) parseNumber(base int, fn func(c byte) bool) (int64, error) {
	start := p.pos
	p.scanWhile(fn)
	if start == p.pos {
		return 0, errExprParse
	}
	v, err := strconv.ParseInt(p.s[start:p.pos], base, 64)
	if err != nil {
		return 0, errExprParse
	}
	return v, nil
}

func (p *exprParser) hasPrefix(prefix string) bool {
	return strings.HasPrefix(p.s[p.pos:], prefix)
}

func (p *exprParser) skipWhitespace() {
	p.scanWhile(whitespace)
}

func (p *exprParser) scanWhile(fn func(c byte) bool) {
	for p.pos < len(p.s) && fn(p.s[p.pos]) {
		p.pos++
	}
}

func whitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

func decimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexadecimal(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func binary(c byte) bool {
	return c == '0' || c == '1'
}

func identifier(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}
