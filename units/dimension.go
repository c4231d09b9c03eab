/*
 * dimension.go, part of atomphys.
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
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/unit"
)

//Dimension holds the powers of the base dimensions, in the order
//length, mass, time, electric current. It is a comparable value,
//and converts to and from gonum's unit.Dimensions.
type Dimension [4]int8

const (
	dimL = iota
	dimM
	dimT
	dimI
)

//Dimensions used around the library.
var (
	Dimensionless  = Dimension{}
	Length         = Dimension{1, 0, 0, 0}
	Mass           = Dimension{0, 1, 0, 0}
	Time           = Dimension{0, 0, 1, 0}
	Current        = Dimension{0, 0, 0, 1}
	Frequency      = Dimension{0, 0, -1, 0}
	Energy         = Dimension{2, 1, -2, 0}
	Charge         = Dimension{0, 0, 1, 1}
	DipoleMoment   = Dimension{1, 0, 1, 1}
	ElectricField  = Dimension{1, 1, -3, -1}
	Intensity      = Dimension{0, 1, -3, 0}
	Polarizability = Dimension{0, -1, 4, 2}
	Action         = Dimension{2, 1, -1, 0}
	Area           = Dimension{2, 0, 0, 0}
)

//Mul returns the dimension of a product.
func (D Dimension) Mul(o Dimension) Dimension {
	var r Dimension
	for i := range D {
		r[i] = D[i] + o[i]
	}
	return r
}

//Div returns the dimension of a quotient.
func (D Dimension) Div(o Dimension) Dimension {
	var r Dimension
	for i := range D {
		r[i] = D[i] - o[i]
	}
	return r
}

//Pow returns the dimension raised to n.
func (D Dimension) Pow(n int) Dimension {
	var r Dimension
	for i := range D {
		r[i] = D[i] * int8(n)
	}
	return r
}

//Half returns the dimension of a square root. The second value
//is false if some power is odd.
func (D Dimension) Half() (Dimension, bool) {
	var r Dimension
	for i := range D {
		if D[i]%2 != 0 {
			return D, false
		}
		r[i] = D[i] / 2
	}
	return r, true
}

//IsZero is true for dimensionless quantities.
func (D Dimension) IsZero() bool {
	return D == Dimensionless
}

//axes are the gonum base dimensions behind each component of a Dimension.
var axes = [4]unit.Dimension{unit.LengthDim, unit.MassDim, unit.TimeDim, unit.CurrentDim}

//Dimensions returns D as gonum dimensions.
func (D Dimension) Dimensions() unit.Dimensions {
	d := make(unit.Dimensions, len(D))
	for i, p := range D {
		if p != 0 {
			d[axes[i]] = int(p)
		}
	}
	return d
}

//DimensionOf returns the dimension of a gonum value. Only length, mass, time and
//current are supported.
func DimensionOf(u unit.Uniter) (Dimension, error) {
	var D Dimension
	for dim, p := range u.Unit().Dimensions() {
		i := slices.Index(axes[:], dim)
		if i < 0 {
			return D, newError(ErrDimensionality, "DimensionOf", "unsupported dimension %s", dim)
		}
		D[i] = int8(p)
	}
	return D, nil
}

//String prints the dimension as a product of SI base units, like "kg m^2 s^-2".
func (D Dimension) String() string {
	if D.IsZero() {
		return "dimensionless"
	}
	return D.Dimensions().String()
}

var auSymbols = [4]string{"a0", "m_e", "(ħ/E_h)", "(e E_h/ħ)"}

//auUnit returns a parseable unit expression for the dimension built only from
//atomic units, so it converts with an exact factor of 1 in atomic mode.
func (D Dimension) auUnit() string {
	parts := make([]string, 0, 4)
	for i, p := range D {
		switch p {
		case 0:
			continue
		case 1:
			parts = append(parts, auSymbols[i])
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", auSymbols[i], p))
		}
	}
	return strings.Join(parts, " ")
}

//named units used when printing quantities with common dimensions.
var namedUnits = map[Dimension][2]string{
	Energy:       {"J", "E_h"},
	Length:       {"m", "a0"},
	Time:         {"s", "ħ/E_h"},
	Frequency:    {"s^-1", "E_h/ħ"},
	Charge:       {"C", "e"},
	DipoleMoment: {"C m", "e a0"},
	Mass:         {"kg", "m_e"},
}

//unitFor returns the unit expression used to print a quantity of dimension D.
func unitFor(D Dimension, mode Mode) string {
	if D.IsZero() {
		return ""
	}
	if n, ok := namedUnits[D]; ok {
		return n[mode]
	}
	if mode == Atomic {
		return D.auUnit()
	}
	return D.Dimensions().String()
}
