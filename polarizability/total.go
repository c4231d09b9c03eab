/*
 * total.go, part of atomphys.
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

package polarizability

import (
	"math"

	"github.com/mgrau/atomphys/units"
)

//Polarization describes the light field relative to the quantization axis.
type Polarization struct {
	A      float64 //degree of circular polarization, ±1 for circular light and 0 for linear.
	ThetaK float64 //angle between the wave vector and the quantization axis.
	ThetaP float64 //angle between the polarization vector and the quantization axis.
}

//Unpolarized returns linear polarization perpendicular to the quantization axis.
func Unpolarized() Polarization {
	return Polarization{A: 0, ThetaK: 0, ThetaP: math.Pi / 2}
}

//validMJ is true if mJ is a sublevel of a level with angular momentum J.
func validMJ(J, mJ float64) bool {
	if math.Abs(mJ) > J {
		return false
	}
	//J-mJ must be an integer.
	d := J - mJ
	return d == math.Trunc(d)
}

//Coefficients returns the factors multiplying the vector and tensor polarizabilities
//for the sublevel mJ. The tensor factor is zero for J < 1.
func (p Polarization) Coefficients(J, mJ float64) (c1, c2 float64) {
	if J != 0 {
		c1 = p.A * math.Cos(p.ThetaK) * mJ / J
	}
	if den := J * (2*J - 1); den != 0 {
		cp := math.Cos(p.ThetaP)
		c2 = (3*cp*cp - 1) / 2 * (3*mJ*mJ - J*(J+1)) / den
	}
	return c1, c2
}

//Total returns the polarizability of the level at angular frequency omega:
//
//	α = α0 + A cos(θk) mJ/J α1 + ½(3cos²(θp)-1) (3mJ²-J(J+1))/(J(2J-1)) α2
//
//Without mJ only the scalar part is computed. An mJ that is not a sublevel of the
//level (wrong integrality, or |mJ| > J) gives ErrInvalidMJ.
func Total(l Level, omega units.Quantity, pol Polarization, mJ ...float64) (units.Quantity, error) {
	S := l.system()
	if len(mJ) == 0 {
		return Scalar(l, omega)
	}
	if len(mJ) > 1 || !validMJ(l.J, mJ[0]) {
		err := mJError("Total", mJ[0], l.J)
		return S.Errored(err), err
	}
	alpha, err := Scalar(l, omega)
	if err != nil {
		return alpha, errDecorate(err, "Total")
	}
	c1, c2 := pol.Coefficients(l.J, mJ[0])
	if c1 != 0 {
		a1, err := Vector(l, omega)
		if err != nil {
			return a1, errDecorate(err, "Total")
		}
		alpha = alpha.Add(a1.Scale(c1))
	}
	if c2 != 0 {
		a2, err := Tensor(l, omega)
		if err != nil {
			return a2, errDecorate(err, "Total")
		}
		alpha = alpha.Add(a2.Scale(c2))
	}
	return alpha, alpha.Err()
}
