/*
 * term_test.go, part of atomphys.
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
	"fmt"
	"testing"
)

func TestLetters(Te *testing.T) {
	if l, _ := L("S"); l != 0 {
		Te.Errorf("L(S) = %d", l)
	}
	if l, _ := L("D"); l != 2 {
		Te.Errorf("L(D) = %d", l)
	}
	if _, ok := L("J"); ok {
		Te.Error("J is not an orbital letter")
	}
	if s, _ := Letter(3); s != "F" {
		Te.Errorf("Letter(3) = %s", s)
	}
	if s, _ := Letter(7); s != "K" {
		Te.Errorf("Letter(7) = %s", s)
	}
	if _, ok := Letter(20); ok {
		Te.Error("Letter(20) should not exist")
	}
}

func TestParse(Te *testing.T) {
	cases := []struct {
		text string
		want QuantumNumbers
	}{
		{"2S1/2", NewLS(0.5, 0).WithJ(0.5)},
		{"3P*1", NewLS(1, 1).WithJ(1).WithParity(-1)},
		{"4D", NewLS(1.5, 2)},
		{"z 4D", NewLS(1.5, 2)},
		{"(1,3/2)", NewJJ(1, 1.5)},
		{"(1,3/2)*2", NewJJ(1, 1.5).WithJ(2).WithParity(-1)},
		{"2[5/2]5/2", NewLK(0.5, 2.5).WithJ(2.5)},
		{"3[7]", NewLK(1, 7)},
		{"", QuantumNumbers{}},
		{"  ", QuantumNumbers{}},
		{"*", QuantumNumbers{}.WithParity(-1)},
		{"  * ", QuantumNumbers{}.WithParity(-1)},
		{"Limit", Limit()},
		{"2S1/2 Limit", Limit()},
	}
	for _, c := range cases {
		got := Parse(c.text)
		if got != c.want {
			Te.Errorf("Parse(%q) = %+v, want %+v", c.text, got, c.want)
		}
	}
	q := Parse("3P*1")
	if S, ok := q.S(); !ok || S != 1 {
		Te.Errorf("S of 3P*1 is %v %v", S, ok)
	}
	if _, ok := q.K(); ok {
		Te.Error("an LS term has no K")
	}
	if q.Parity() != -1 || q.Coupling() != LS {
		Te.Errorf("wrong parity or coupling for 3P*1: %d %s", q.Parity(), q.Coupling())
	}
	if _, ok := Parse("").J(); ok {
		Te.Error("empty term has no J")
	}
}

func TestPrint(Te *testing.T) {
	cases := []struct {
		q      QuantumNumbers
		parity bool
		want   string
		ok     bool
	}{
		{Limit(), false, "Ionization Limit", true},
		{Limit().WithJ(1), false, "Ionization Limit", true},
		{QuantumNumbers{}.WithJText(""), false, "", false},
		{QuantumNumbers{}.WithJText("1/2 or 3/2"), false, "", false},
		{Parse("2D").WithJText("1/2?"), false, "", false},
		{NewLS(0, 1), false, "1P", true},
		{NewLS(1, 1).WithJ(0), false, "3P0", true},
		{NewLS(1, 1).WithJ(0).WithParity(-1), true, "3P*0", true},
		{NewLS(1, 1).WithJ(0).WithParity(-1), false, "3P0", true},
		{NewLS(1, 1).WithJ(0).WithParity(1), true, "3P0", true},
		{Parse("3P").WithJ(0), false, "3P0", true},
		{Parse("3P1").WithJ(0), false, "3P0", true},
		{NewJJ(2, 0.5), false, "(2,1/2)", true},
		{NewJJ(1, 1).WithJ(0), false, "(1,1)0", true},
		{Parse("(2,2)"), false, "(2,2)", true},
		{NewLK(0, 3).WithJ(0), false, "1[3]0", true},
		{NewLK(1, 2.5), false, "3[5/2]", true},
		{Parse("3[1]0"), false, "3[1]0", true},
		{NewLK(3, 1).WithJ(0), false, "7[1]0", true},
		{QuantumNumbers{}, false, "", false},
		{QuantumNumbers{}.WithJ(0), false, "", false},
		{Parse("S"), false, "", false},
		{NewLS(1, 1).WithJ(0.3), false, "", false},
	}
	for i, c := range cases {
		var got string
		var ok bool
		if c.parity {
			got, ok = PrintWithParity(c.q)
		} else {
			got, ok = Print(c.q)
		}
		if got != c.want || ok != c.ok {
			Te.Errorf("case %d: got (%q, %v), want (%q, %v)", i, got, ok, c.want, c.ok)
		}
	}
}

func TestRoundTrip(Te *testing.T) {
	terms := []string{"2S1/2", "2P*3/2", "3P*1", "1S0", "4D", "6F11/2", "2K*15/2",
		"(1,3/2)2", "(2,1/2)*", "(7/2,5/2)*6", "2[5/2]5/2", "3[7]", "1[3/2]*1", "Ionization Limit"}
	for _, t := range terms {
		s, ok := PrintWithParity(Parse(t))
		if !ok || s != t {
			Te.Errorf("round trip of %q gave (%q, %v)", t, s, ok)
		}
	}
	fmt.Println(Parse("2[5/2]5/2"), Parse("(1,3/2)*2"))
}

func TestRat(Te *testing.T) {
	cases := map[float64]string{0: "0", 0.5: "1/2", 2: "2", 7.5: "15/2"}
	for x, want := range cases {
		if got := Rat(x); got != want {
			Te.Errorf("Rat(%g) = %s, want %s", x, got, want)
		}
	}
}
