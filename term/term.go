/*
 * term.go, part of atomphys.
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

/*Package term handles spectroscopic term symbols: it reads the notation used by
the NIST Atomic Spectra Database into angular-momentum quantum numbers, and prints
quantum numbers back as term symbols.

Three coupling schemes are understood: Russell-Saunders (LS) terms such as "3P*1",
jj terms such as "(1,3/2)2", and pair-coupling (LK) terms such as "2[5/2]5/2".
*/
package term

import (
	"math"
	"math/big"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

//Coupling is the angular-momentum coupling scheme of a set of quantum numbers.
type Coupling int

const (
	//None is used for ionization-limit placeholders and for terms that could not be read.
	None Coupling = iota
	//LS is Russell-Saunders coupling.
	LS
	//JJ is jj coupling.
	JJ
	//LK is pair coupling.
	LK
)

func (c Coupling) String() string {
	switch c {
	case LS:
		return "LS"
	case JJ:
		return "jj"
	case LK:
		return "LK"
	}
	return "None"
}

//QuantumNumbers holds the quantum numbers of a state. Which of them apply
//depends on the coupling scheme: LS uses S and L, jj uses J1 and J2, LK uses S2 and K.
//J and n may be present in any scheme. The zero value has no coupling and even parity.
//QuantumNumbers values are comparable with ==.
type QuantumNumbers struct {
	coupling Coupling
	a, b     float64 //S,L or J1,J2 or S2,K, depending on the coupling.
	j        float64
	hasJ     bool
	badJ     bool //a J was given, but it is not a number.
	odd      bool
	n        int
	limit    bool
}

func (q QuantumNumbers) get(c Coupling, second bool) (float64, bool) {
	if q.coupling != c {
		return 0, false
	}
	if second {
		return q.b, true
	}
	return q.a, true
}

//Coupling returns the coupling scheme.
func (q QuantumNumbers) Coupling() Coupling { return q.coupling }

//S returns the total spin of an LS term.
func (q QuantumNumbers) S() (float64, bool) { return q.get(LS, false) }

//L returns the total orbital angular momentum of an LS term.
func (q QuantumNumbers) L() (int, bool) {
	l, ok := q.get(LS, true)
	return int(l), ok
}

//J1 returns the first angular momentum of a jj term.
func (q QuantumNumbers) J1() (float64, bool) { return q.get(JJ, false) }

//J2 returns the second angular momentum of a jj term.
func (q QuantumNumbers) J2() (float64, bool) { return q.get(JJ, true) }

//S2 returns the spin of the outer electron in an LK term.
func (q QuantumNumbers) S2() (float64, bool) { return q.get(LK, false) }

//K returns the K quantum number of an LK term.
func (q QuantumNumbers) K() (float64, bool) { return q.get(LK, true) }

//J returns the total angular momentum, if known.
func (q QuantumNumbers) J() (float64, bool) {
	if !q.hasJ || q.badJ {
		return 0, false
	}
	return q.j, true
}

//HasJ is true if a J was given, even a placeholder that J does not return.
func (q QuantumNumbers) HasJ() bool { return q.hasJ }

//Parity returns -1 for odd terms and +1 otherwise.
func (q QuantumNumbers) Parity() int {
	if q.odd {
		return -1
	}
	return 1
}

//N returns the principal quantum number of the valence electron, if known.
func (q QuantumNumbers) N() (int, bool) { return q.n, q.n > 0 }

//IsLimit is true for the ionization-limit marker.
func (q QuantumNumbers) IsLimit() bool { return q.limit }

//NewLS returns the quantum numbers of a Russell-Saunders term.
func NewLS(S float64, L int) QuantumNumbers {
	return QuantumNumbers{coupling: LS, a: S, b: float64(L)}
}

//NewJJ returns the quantum numbers of a jj term.
func NewJJ(J1, J2 float64) QuantumNumbers {
	return QuantumNumbers{coupling: JJ, a: J1, b: J2}
}

//NewLK returns the quantum numbers of a pair-coupling term.
func NewLK(S2, K float64) QuantumNumbers {
	return QuantumNumbers{coupling: LK, a: S2, b: K}
}

//Limit returns the ionization-limit marker.
func Limit() QuantumNumbers {
	return QuantumNumbers{limit: true}
}

//WithJ returns a copy of q with total angular momentum J.
func (q QuantumNumbers) WithJ(J float64) QuantumNumbers {
	q.j, q.hasJ, q.badJ = J, true, false
	return q
}

//WithJText returns a copy of q with J read from text such as "3/2". Text that is
//not a single number (NIST uses "1/2?" or "1/2,3/2" for uncertain values) leaves
//a J that cannot be printed.
func (q QuantumNumbers) WithJText(text string) QuantumNumbers {
	v, ok := parseRat(text)
	if !ok {
		q.j, q.hasJ, q.badJ = 0, true, true
		return q
	}
	return q.WithJ(v)
}

//WithParity returns a copy of q with the given parity. Any negative value means odd.
func (q QuantumNumbers) WithParity(p int) QuantumNumbers {
	q.odd = p < 0
	return q
}

//WithN returns a copy of q with principal quantum number n.
func (q QuantumNumbers) WithN(n int) QuantumNumbers {
	q.n = n
	return q
}

//letters maps orbital angular momentum to its spectroscopic letter. J is skipped.
var letters = [...]string{"S", "P", "D", "F", "G", "H", "I", "K", "L", "M", "N", "O", "Q", "R", "T", "U", "V", "W", "X", "Y"}

//L returns the orbital angular momentum of a spectroscopic letter.
func L(letter string) (int, bool) {
	for i, v := range letters {
		if v == letter {
			return i, true
		}
	}
	return 0, false
}

//Letter returns the spectroscopic letter of the orbital angular momentum l.
func Letter(l int) (string, bool) {
	if l < 0 || l >= len(letters) {
		return "", false
	}
	return letters[l], true
}

//parseRat reads an integer or a fraction exactly.
func parseRat(text string) (float64, bool) {
	r, ok := new(big.Rat).SetString(text)
	if !ok || r.Sign() < 0 {
		return 0, false
	}
	f, _ := r.Float64()
	return f, true
}

//halfInteger is true if x is a non-negative multiple of 1/2.
func halfInteger(x float64) bool {
	return x >= 0 && scalar.EqualWithinAbs(2*x, math.Round(2*x), 1e-9)
}

//Rat prints a non-negative half-integer as "2" or "5/2". Other values are printed as floats.
func Rat(x float64) string {
	if !halfInteger(x) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return big.NewRat(int64(math.Round(2*x)), 2).RatString()
}
