/*
 * handy.go, part of atomphys.
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

package atomphys

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

//Deg2Rad converts degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

//Rad2Deg converts radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

const (
	secantTol    = 1.49012e-8
	secantMaxFev = 100
)

//secant finds a root of f near x0 by the secant method. The second starting
//point is 1.1*x0 (or 1e-4 if x0 is zero). It returns the last iterate
//and whether it converged to a relative tolerance of about 1.5e-8.
func secant(f func(float64) (float64, error), x0 float64) (float64, bool, error) {
	x1 := x0 * 1.1
	if x0 == 0 {
		x1 = 1e-4
	}
	f0, err := f(x0)
	if err != nil {
		return x0, false, err
	}
	f1, err := f(x1)
	if err != nil {
		return x1, false, err
	}
	for i := 2; i < secantMaxFev; i++ {
		if f1 == f0 {
			return x1, scalar.EqualWithinAbsOrRel(x0, x1, secantTol, secantTol), nil
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		if math.IsNaN(x2) || math.IsInf(x2, 0) {
			return x1, false, nil
		}
		if scalar.EqualWithinAbsOrRel(x1, x2, 0, secantTol) {
			return x2, true, nil
		}
		x0, f0 = x1, f1
		x1 = x2
		f1, err = f(x1)
		if err != nil {
			return x1, false, err
		}
	}
	return x1, false, nil
}
