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

package term

import (
	"regexp"
	"strconv"
	"strings"
)

const rat = `(\d+(?:/\d+)?)`

var (
	lsTerm = regexp.MustCompile(`^(\d+)([A-Z])\*?` + rat + `?`)
	jjTerm = regexp.MustCompile(`^\(` + rat + `,` + rat + `\)\*?` + rat + `?`)
	lkTerm = regexp.MustCompile(`^(\d+)\[` + rat + `\]\*?` + rat + `?`)
	//NIST prefixes some terms with a lowercase series label, as in "z 4D*".
	seriesPrefix = regexp.MustCompile(`^[a-z]+\s+`)
)

//Parse reads a term symbol. It never fails: text containing "Limit" gives the
//ionization-limit marker, and text matching none of the grammars (including the
//empty string) gives quantum numbers with no coupling, keeping only the parity.
func Parse(text string) QuantumNumbers {
	if strings.Contains(text, "Limit") {
		return Limit()
	}
	var q QuantumNumbers
	q.odd = strings.Contains(text, "*")
	text = strings.TrimSpace(text)
	text = seriesPrefix.ReplaceAllString(text, "")
	mult := func(m string) (float64, bool) {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 {
			return 0, false
		}
		return float64(v-1) / 2, true
	}
	var jtext string
	if m := lsTerm.FindStringSubmatch(text); m != nil {
		S, ok1 := mult(m[1])
		l, ok2 := L(m[2])
		if ok1 && ok2 {
			q.coupling, q.a, q.b = LS, S, float64(l)
			jtext = m[3]
		}
	}
	if m := jjTerm.FindStringSubmatch(text); q.coupling == None && m != nil {
		J1, ok1 := parseRat(m[1])
		J2, ok2 := parseRat(m[2])
		if ok1 && ok2 {
			q.coupling, q.a, q.b = JJ, J1, J2
			jtext = m[3]
		}
	}
	if m := lkTerm.FindStringSubmatch(text); q.coupling == None && m != nil {
		S2, ok1 := mult(m[1])
		K, ok2 := parseRat(m[2])
		if ok1 && ok2 {
			q.coupling, q.a, q.b = LK, S2, K
			jtext = m[3]
		}
	}
	if jtext != "" {
		q = q.WithJText(jtext)
	}
	return q
}

//Print returns the term symbol of q without parity. The second value is false
//when q is incomplete or contradictory, for instance with no coupling scheme or with
//a J that is not a number. That is a normal outcome, not an error.
func Print(q QuantumNumbers) (string, bool) {
	return format(q, false)
}

//PrintWithParity is like Print but marks odd terms with "*", so Parse reads the
//result back to the same quantum numbers.
func PrintWithParity(q QuantumNumbers) (string, bool) {
	return format(q, true)
}

//String returns the term symbol with parity, or an empty string.
func (q QuantumNumbers) String() string {
	s, _ := PrintWithParity(q)
	return s
}

func format(q QuantumNumbers, parity bool) (string, bool) {
	if q.limit {
		return "Ionization Limit", true
	}
	if q.badJ {
		return "", false
	}
	J := ""
	if q.hasJ {
		if !halfInteger(q.j) {
			return "", false
		}
		J = Rat(q.j)
	}
	P := ""
	if parity && q.odd {
		P = "*"
	}
	if !halfInteger(q.a) || !halfInteger(q.b) {
		return "", false
	}
	switch q.coupling {
	case LS:
		letter, ok := Letter(int(q.b))
		if !ok || q.b != float64(int(q.b)) {
			return "", false
		}
		return multiplicity(q.a) + letter + P + J, true
	case JJ:
		return "(" + Rat(q.a) + "," + Rat(q.b) + ")" + P + J, true
	case LK:
		return multiplicity(q.a) + "[" + Rat(q.b) + "]" + P + J, true
	}
	return "", false
}

func multiplicity(S float64) string {
	return strconv.FormatFloat(2*S+1, 'g', -1, 64)
}
