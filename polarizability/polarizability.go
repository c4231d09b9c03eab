/*
 * polarizability.go, part of atomphys.
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

/*Package polarizability computes the dynamic polarizability of an atomic level
as a sum over its electric-dipole transitions. The scalar, vector and tensor parts
are evaluated separately and can be combined for a given light polarization and
Zeeman sublevel.

All frequencies are angular frequencies. Results have the dimension of a dipole
moment per electric field, in the unit system of the level.
*/
package polarizability

import (
	"math"

	"github.com/mgrau/atomphys/units"
	"github.com/mgrau/atomphys/wigner"
	"gonum.org/v1/gonum/floats"
)

//Line is an electric-dipole transition that touches a level.
type Line struct {
	Omega units.Quantity //transition angular frequency, (Ef-Ei)/ħ.
	D     units.Quantity //reduced dipole matrix element.
	Ji    float64        //J of the lower state.
	Jf    float64        //J of the upper state.
}

//Level is a state together with the transitions it takes part in.
//Up holds the lines for which the level is the lower state, Down those
//for which it is the upper state.
type Level struct {
	Units *units.System
	J     float64
	Up    []Line
	Down  []Line
}

func (l Level) system() *units.System {
	if l.Units == nil {
		return units.Default
	}
	return l.Units
}

type component int

const (
	scalarPart component = iota
	vectorPart
	tensorPart
)

//parity returns (-1)^x for an integer x.
func parity(x float64) float64 {
	if int(math.Round(x))%2 != 0 {
		return -1
	}
	return 1
}

//prefactor is the J-dependent factor in front of the sum.
func (c component) prefactor(J float64) float64 {
	switch c {
	case vectorPart:
		return math.Sqrt(6 * J / (4 * (2*J + 1) * (J + 1)))
	case tensorPart:
		if J*(2*J-1) <= 0 {
			return 0
		}
		return -math.Sqrt(20 * J * (2*J - 1) / (6 * (J + 1) * (2*J + 1) * (2*J + 3)))
	}
	return 1 / (3 * (2*J + 1))
}

//weight is the angular factor of a term coupling J to Jp.
func (c component) weight(J, Jp float64) (float64, error) {
	var k float64
	switch c {
	case vectorPart:
		k = 1
	case tensorPart:
		k = 2
	default:
		return 1, nil
	}
	sixj, err := wigner.Wigner6j(1, 1, k, J, J, Jp)
	if err != nil {
		return 0, errDecorate(err, "weight")
	}
	return parity(J+Jp+1) * sixj, nil
}

//base returns the magnitude of q in the base units of S, checking that it has dimension dim.
func base(S *units.System, q units.Quantity, dim units.Dimension) (float64, error) {
	v := S.Zero(dim).Add(q)
	if err := v.Err(); err != nil {
		return 0, err
	}
	return v.Value(), nil
}

//sum evaluates one component at the angular frequency omega.
func (l Level) sum(c component, omega units.Quantity) (units.Quantity, error) {
	S := l.system()
	w, err := base(S, omega, units.Frequency)
	if err != nil {
		return S.Errored(err), errDecorate(err, "sum")
	}
	pre := c.prefactor(l.J)
	coef := make([]float64, 0, len(l.Up)+len(l.Down))
	resp := make([]float64, 0, len(l.Up)+len(l.Down))
	add := func(line Line, Jp, sign float64, down bool) error {
		w0, err := base(S, line.Omega, units.Frequency)
		if err != nil {
			return err
		}
		d, err := base(S, line.D, units.DipoleMoment)
		if err != nil {
			return err
		}
		if down {
			w0 = -w0
			d *= parity(line.Jf - line.Ji)
		}
		k, err := c.weight(l.J, Jp)
		if err != nil {
			return err
		}
		//terms that can't contribute are dropped, so a pole on them gives no 0*Inf.
		if pre*k == 0 || d == 0 {
			return nil
		}
		coef = append(coef, sign*k)
		resp = append(resp, (1/(w0-w)+1/(w0+w))*d*d)
		return nil
	}
	for _, line := range l.Up {
		if err := add(line, line.Jf, 1, false); err != nil {
			return S.Errored(err), errDecorate(err, "sum")
		}
	}
	downSign := 1.0
	if c == vectorPart {
		downSign = -1
	}
	for _, line := range l.Down {
		if err := add(line, line.Ji, downSign, true); err != nil {
			return S.Errored(err), errDecorate(err, "sum")
		}
	}
	alpha := pre * floats.Dot(coef, resp) / S.Hbar().Value()
	return S.FromBase(alpha, units.Polarizability), nil
}

//Scalar returns the scalar polarizability α0 of the level at angular frequency omega.
func Scalar(l Level, omega units.Quantity) (units.Quantity, error) {
	return l.sum(scalarPart, omega)
}

//Vector returns the vector polarizability α1 of the level at angular frequency omega.
//Lines where the level is the upper state enter with the opposite sign.
func Vector(l Level, omega units.Quantity) (units.Quantity, error) {
	return l.sum(vectorPart, omega)
}

//Tensor returns the tensor polarizability α2 of the level at angular frequency omega.
//It is zero for J < 1.
func Tensor(l Level, omega units.Quantity) (units.Quantity, error) {
	return l.sum(tensorPart, omega)
}
