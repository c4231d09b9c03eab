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

package nist

import (
	"regexp"
	"strconv"
	"strings"
)

//StateRecord is an energy level as given by the ASD.
type StateRecord struct {
	Energy        float64 //Ry
	Term          string  //with a "*" for odd parity, without J.
	J             string  //may hold placeholders like "1/2?" or "3/2,5/2".
	Configuration string
	G             float64
	HasG          bool
	N             int //principal quantum number of the valence electron, 0 if unknown.
}

//TransitionRecord is a line as given by the ASD.
type TransitionRecord struct {
	Ei, Ek       float64 //Ry
	TermI, TermK string
	JI, JK       string
	A            float64 //s^-1
	Type         string
}

//monovalent configurations end with a single electron outside closed shells, as "4p6.5s".
var monovalent = regexp.MustCompile(`^[a-z0-9]*\.(\d+)[a-z]$`)

//removeAnnotations strips the marks the ASD adds around energies, like "[1.23]" or "1.23+x".
func removeAnnotations(s string) string {
	return strings.ReplaceAll(strings.Trim(s, "()[]aluxyz +?"), "&dagger;", "")
}

func energy(s string) (float64, bool) {
	v, err := strconv.ParseFloat(removeAnnotations(s), 64)
	return v, err == nil
}

//ParseStates converts the rows of a levels query. Rows without a readable energy are dropped.
func ParseStates(recs []Record) []StateRecord {
	ret := make([]StateRecord, 0, len(recs))
	for _, r := range recs {
		e, ok := energy(r["Level (Ry)"])
		if !ok {
			continue
		}
		s := StateRecord{
			Energy:        e,
			Term:          strings.TrimSpace(r["Term"]),
			J:             strings.TrimSpace(r["J"]),
			Configuration: strings.TrimSpace(r["Configuration"]),
		}
		if g, err := strconv.ParseFloat(strings.TrimSpace(r["g"]), 64); err == nil {
			s.G, s.HasG = g, true
		}
		if m := monovalent.FindStringSubmatch(s.Configuration); m != nil {
			s.N, _ = strconv.Atoi(m[1])
		}
		ret = append(ret, s)
	}
	return ret
}

//ParseTransitions converts the rows of a lines query. Rows without readable energies
//or transition probability are dropped.
func ParseTransitions(recs []Record) []TransitionRecord {
	ret := make([]TransitionRecord, 0, len(recs))
	for _, r := range recs {
		ei, ok1 := energy(r["Ei(Ry)"])
		ek, ok2 := energy(r["Ek(Ry)"])
		A, err := strconv.ParseFloat(strings.TrimSpace(r["Aki(s^-1)"]), 64)
		if !ok1 || !ok2 || err != nil {
			continue
		}
		ret = append(ret, TransitionRecord{
			Ei:    ei,
			Ek:    ek,
			TermI: strings.TrimSpace(r["term_i"]),
			TermK: strings.TrimSpace(r["term_k"]),
			JI:    strings.TrimSpace(r["J_i"]),
			JK:    strings.TrimSpace(r["J_k"]),
			A:     A,
			Type:  strings.TrimSpace(r["Type"]),
		})
	}
	return ret
}
