/*
 * wigner.go, part of atomphys.
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

/*Package wigner evaluates Wigner 3-j and 6-j symbols numerically with the Racah
formulas. It is meant for the small angular momenta found in atomic structure:
results lose precision as the arguments grow, and the 3-j symbol refuses
arguments larger than 40.

Every symbol evaluated is memoized in a process-wide cache that is safe for
concurrent use.
*/
package wigner

import "math"

//max3j is the largest magnitude accepted for any argument of a 3-j symbol.
const max3j = 40

//maxFactorial is the largest n such that n! fits in a float64.
const maxFactorial = 170

var factorials [maxFactorial + 1]float64

func init() {
	factorials[0] = 1
	for i := 1; i <= maxFactorial; i++ {
		factorials[i] = factorials[i-1] * float64(i)
	}
}

//racah accumulates factorials of integer arguments and remembers if
//any of them was out of range.
type racah struct {
	overflow bool
}

func (r *racah) fact(n int) float64 {
	if n > maxFactorial {
		r.overflow = true
		return math.Inf(1)
	}
	return factorials[n]
}

//delta is the triangle coefficient Δ(a,b,c) for doubled arguments.
func (r *racah) delta(a, b, c int) float64 {
	return r.fact((a+b-c)/2) * r.fact((a-b+c)/2) * r.fact((-a+b+c)/2) / r.fact((a+b+c)/2+1)
}

//doubled returns twice each argument as an integer. The second value is
//false if some argument is not an integer or half-integer.
func doubled(args [6]float64) ([6]int, bool) {
	var d [6]int
	for i, x := range args {
		x2 := 2 * x
		if math.IsNaN(x2) || math.IsInf(x2, 0) || x2 != math.Trunc(x2) {
			return d, false
		}
		if math.Abs(x2) > math.MaxInt32 {
			//valid, but far beyond anything evaluable.
			d[i] = math.MaxInt32
			continue
		}
		d[i] = int(x2)
	}
	return d, true
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func sign(n int) float64 {
	if n%2 != 0 {
		return -1
	}
	return 1
}

//triangle is true if the doubled triad obeys the triangle inequality and sums to an integer.
func triangle(a, b, c int) bool {
	return abs(a-b) <= c && c <= a+b && (a+b+c)%2 == 0
}

//Wigner3j returns the 3-j symbol
//
//	( j1 j2 j3 )
//	( m1 m2 m3 )
//
//It returns 0 when a selection rule forbids the symbol. Arguments that are not
//integers or half-integers give ErrInvalidQuantumNumber, arguments with magnitude
//above 40 give ErrOverflow.
func Wigner3j(j1, j2, j3, m1, m2, m3 float64) (float64, error) {
	args := [6]float64{j1, j2, j3, m1, m2, m3}
	d, ok := doubled(args)
	if !ok {
		return 0, newError(ErrInvalidQuantumNumber, "Wigner3j", args)
	}
	for _, x := range args {
		if math.Abs(x) > max3j {
			return 0, newError(ErrOverflow, "Wigner3j", args)
		}
	}
	if v, ok := cache3j.get(args); ok {
		return v, nil
	}
	v, overflow := threeJ(d)
	if overflow {
		return 0, newError(ErrOverflow, "Wigner3j", args)
	}
	cache3j.put(args, v)
	return v, nil
}

func threeJ(d [6]int) (float64, bool) {
	J1, J2, J3, M1, M2, M3 := d[0], d[1], d[2], d[3], d[4], d[5]
	if M1+M2+M3 != 0 {
		return 0, false
	}
	if abs(J1-J2) > J3 || J3 > J1+J2 {
		return 0, false
	}
	if (J1-M1)%2 != 0 || (J2-M2)%2 != 0 || (J3-M3)%2 != 0 {
		return 0, false
	}
	if abs(M1) > J1 || abs(M2) > J2 || abs(M3) > J3 {
		return 0, false
	}
	//From here on every combination below is even, so halving is exact.
	a := (J2 - M1 - J3) / 2
	b := (J1 + M2 - J3) / 2
	c := (J1 + J2 - J3) / 2
	e := (J1 - M1) / 2
	f := (J2 + M2) / 2
	tmin := max(0, a, b)
	tmax := min(c, e, f)
	var r racah
	sum := 0.0
	for t := tmin; t <= tmax; t++ {
		sum += sign(t) / (r.fact(t) * r.fact(t-a) * r.fact(t-b) * r.fact(c-t) * r.fact(e-t) * r.fact(f-t))
	}
	norm := r.delta(J1, J2, J3) *
		r.fact((J1+M1)/2) * r.fact((J1-M1)/2) *
		r.fact((J2+M2)/2) * r.fact((J2-M2)/2) *
		r.fact((J3+M3)/2) * r.fact((J3-M3)/2)
	return sign((J1-J2-M3)/2) * sum * math.Sqrt(norm), r.overflow
}

//Wigner6j returns the 6-j symbol
//
//	{ j1 j2 j3 }
//	{ J1 J2 J3 }
//
//It returns 0 when one of the four triads violates the triangle rule or
//does not sum to an integer. Arguments that are not integers or half-integers
//give ErrInvalidQuantumNumber. Symbols whose Racah sum needs factorials above
//170! give ErrOverflow.
func Wigner6j(j1, j2, j3, J1, J2, J3 float64) (float64, error) {
	args := [6]float64{j1, j2, j3, J1, J2, J3}
	d, ok := doubled(args)
	if !ok {
		return 0, newError(ErrInvalidQuantumNumber, "Wigner6j", args)
	}
	if v, ok := cache6j.get(args); ok {
		return v, nil
	}
	v, overflow := sixJ(d)
	if overflow {
		return 0, newError(ErrOverflow, "Wigner6j", args)
	}
	cache6j.put(args, v)
	return v, nil
}

func sixJ(d [6]int) (float64, bool) {
	j1, j2, j3, J1, J2, J3 := d[0], d[1], d[2], d[3], d[4], d[5]
	if !triangle(j1, j2, j3) || !triangle(j1, J2, J3) || !triangle(J1, j2, J3) || !triangle(J1, J2, j3) {
		return 0, false
	}
	a1 := (j1 + j2 + j3) / 2
	a2 := (j1 + J2 + J3) / 2
	a3 := (J1 + j2 + J3) / 2
	a4 := (J1 + J2 + j3) / 2
	b1 := (j1 + j2 + J1 + J2) / 2
	b2 := (j2 + j3 + J2 + J3) / 2
	b3 := (j3 + j1 + J3 + J1) / 2
	tmin := max(0, a1, a2, a3, a4)
	tmax := min(b1, b2, b3)
	if tmax+1 > maxFactorial {
		return 0, true
	}
	var r racah
	sum := 0.0
	for t := tmin; t <= tmax; t++ {
		sum += sign(t) * r.fact(t+1) /
			(r.fact(t-a1) * r.fact(t-a2) * r.fact(t-a3) * r.fact(t-a4) *
				r.fact(b1-t) * r.fact(b2-t) * r.fact(b3-t))
	}
	norm := r.delta(j1, j2, j3) * r.delta(j1, J2, J3) * r.delta(J1, j2, J3) * r.delta(J1, J2, j3)
	return sum * math.Sqrt(norm), r.overflow
}
