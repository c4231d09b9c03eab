/*
 * parse.go, part of atomphys.
 *
 *
 * Copyright 2024 The atomphys authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package units

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

//factor is the result of evaluating a unit expression: its value in SI, its
//value in atomic units and its dimension.
type factor struct {
	si  float64
	au  float64
	dim Dimension
}

func (f factor) mul(o factor) factor {
	return factor{si: f.si * o.si, au: f.au * o.au, dim: f.dim.Mul(o.dim)}
}

func (f factor) div(o factor) factor {
	return factor{si: f.si / o.si, au: f.au / o.au, dim: f.dim.Div(o.dim)}
}

func (f factor) pow(n int) factor {
	return factor{si: math.Pow(f.si, float64(n)), au: math.Pow(f.au, float64(n)), dim: f.dim.Pow(n)}
}

var one = factor{si: 1, au: 1}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokMul
	tokDiv
	tokPow
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

//tokenize splits a unit expression. Spaces are kept only as implicit products,
//which the parser infers from adjacency, so they are dropped here.
func tokenize(expr string) ([]token, error) {
	var toks []token
	rs := []rune(expr)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '*' && i+1 < len(rs) && rs[i+1] == '*':
			toks = append(toks, token{tokPow, "^"})
			i += 2
		case r == '*' || r == '·' || r == '×':
			toks = append(toks, token{tokMul, "*"})
			i++
		case r == '/':
			toks = append(toks, token{tokDiv, "/"})
			i++
		case r == '^':
			toks = append(toks, token{tokPow, "^"})
			i++
		case r == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case unicode.IsDigit(r) || r == '.' || ((r == '-' || r == '+') && len(toks) > 0 && toks[len(toks)-1].kind == tokPow):
			j := i + 1
			for j < len(rs) && (unicode.IsDigit(rs[j]) || rs[j] == '.') {
				j++
			}
			toks = append(toks, token{tokNumber, string(rs[i:j])})
			i = j
		case isIdentStart(r):
			j := i + 1
			for j < len(rs) && isIdentPart(rs[j]) {
				j++
			}
			toks = append(toks, token{tokIdent, string(rs[i:j])})
			i = j
		default:
			return nil, newError(ErrSyntax, "tokenize", "unexpected character %q in unit %q", r, expr)
		}
	}
	return toks, nil
}

type unitParser struct {
	toks []token
	pos  int
	expr string
}

func (p *unitParser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

//product := power { ['*' | '/'] power }
func (p *unitParser) product() (factor, error) {
	acc, err := p.power()
	if err != nil {
		return acc, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind == tokRParen {
			return acc, nil
		}
		divide := false
		switch t.kind {
		case tokMul:
			p.pos++
		case tokDiv:
			divide = true
			p.pos++
		case tokPow:
			return acc, newError(ErrSyntax, "product", "misplaced exponent in unit %q", p.expr)
		}
		f, err := p.power()
		if err != nil {
			return acc, err
		}
		if divide {
			acc = acc.div(f)
		} else {
			acc = acc.mul(f)
		}
	}
}

//power := atom [ '^' integer ]
func (p *unitParser) power() (factor, error) {
	f, err := p.atom()
	if err != nil {
		return f, err
	}
	t, ok := p.peek()
	if !ok || t.kind != tokPow {
		return f, nil
	}
	p.pos++
	t, ok = p.peek()
	if !ok || t.kind != tokNumber {
		return f, newError(ErrSyntax, "power", "missing exponent in unit %q", p.expr)
	}
	p.pos++
	n, err := strconv.Atoi(t.text)
	if err != nil {
		return f, newError(ErrSyntax, "power", "exponent %q is not an integer in unit %q", t.text, p.expr)
	}
	return f.pow(n), nil
}

//atom := number | identifier | '(' product ')'
func (p *unitParser) atom() (factor, error) {
	t, ok := p.peek()
	if !ok {
		return one, newError(ErrSyntax, "atom", "unexpected end of unit %q", p.expr)
	}
	p.pos++
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return one, newError(ErrSyntax, "atom", "bad number %q in unit %q", t.text, p.expr)
		}
		return factor{si: v, au: v}, nil
	case tokIdent:
		u, ok := lookupUnit(t.text)
		if !ok {
			return one, newError(ErrUnknownUnit, "atom", "unknown unit %q in %q", t.text, p.expr)
		}
		return factor{si: u.si, au: u.atomic(), dim: u.dim}, nil
	case tokLParen:
		f, err := p.product()
		if err != nil {
			return f, err
		}
		t, ok := p.peek()
		if !ok || t.kind != tokRParen {
			return f, newError(ErrSyntax, "atom", "unbalanced parenthesis in unit %q", p.expr)
		}
		p.pos++
		return f, nil
	}
	return one, newError(ErrSyntax, "atom", "unexpected %q in unit %q", t.text, p.expr)
}

//parseUnit evaluates a unit expression such as "(e a0)^2/E_h" or "h*c/(532 nm)".
//An empty expression is dimensionless.
func parseUnit(expr string) (factor, error) {
	if strings.TrimSpace(expr) == "" {
		return one, nil
	}
	toks, err := tokenize(expr)
	if err != nil {
		return one, err
	}
	p := &unitParser{toks: toks, expr: expr}
	f, err := p.product()
	if err != nil {
		return f, err
	}
	if p.pos != len(p.toks) {
		return f, newError(ErrSyntax, "parseUnit", "trailing %q in unit %q", p.toks[p.pos].text, expr)
	}
	return f, nil
}

var magnitudeRe = regexp.MustCompile(`^\s*([-+]?(?:(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?|[Ii]nf(?:inity)?|NaN))`)

//splitMagnitude separates the leading number of a quantity string from its unit.
//If there is no leading number, the magnitude is 1.
func splitMagnitude(text string) (float64, string, error) {
	m := magnitudeRe.FindStringSubmatch(text)
	if m == nil {
		return 1, text, nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", newError(ErrSyntax, "splitMagnitude", "bad magnitude %q", m[1])
	}
	return v, text[len(m[0]):], nil
}
