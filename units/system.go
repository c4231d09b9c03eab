/*
 * system.go, part of atomphys.
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
	"strings"

	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"
)

//Mode selects how a System stores magnitudes.
type Mode int

const (
	//SI stores magnitudes in SI base units.
	SI Mode = iota
	//Atomic stores magnitudes in atomic units (ħ = e = m_e = a0 = E_h = 1).
	Atomic
)

func (m Mode) String() string {
	if m == Atomic {
		return "atomic"
	}
	return "SI"
}

//ParseMode reads "si" or "atomic" (case insensitive, "au" also accepted).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "si":
		return SI, nil
	case "atomic", "au", "a.u.":
		return Atomic, nil
	}
	return SI, newError(ErrSyntax, "ParseMode", "unknown unit mode %q", s)
}

//System is a units context. Every Quantity belongs to exactly one System,
//and arithmetic between quantities of different systems fails.
//Systems are safe for concurrent use, they hold no mutable state.
type System struct {
	mode Mode
}

//NewSystem returns a new, independent, unit system.
func NewSystem(mode Mode) *System {
	return &System{mode: mode}
}

//Default is the shared SI system used when no other is given.
var Default = NewSystem(SI)

//Mode returns the storage mode of the system.
func (S *System) Mode() Mode {
	return S.mode
}

func (S *System) scale(f factor) float64 {
	if S.mode == Atomic {
		return f.au
	}
	return f.si
}

//New returns a quantity of value v in the given unit expression. A bad unit gives
//a quantity carrying the error.
func (S *System) New(v float64, unit string) Quantity {
	f, err := parseUnit(unit)
	if err != nil {
		return Quantity{sys: S, err: errDecorate(err, "New")}
	}
	return Quantity{v: v * S.scale(f), dim: f.dim, sys: S}
}

//Dimensionless returns a plain number as a quantity of the system.
func (S *System) Dimensionless(v float64) Quantity {
	return Quantity{v: v, sys: S}
}

//Zero returns a zero quantity with the given dimension.
func (S *System) Zero(dim Dimension) Quantity {
	return Quantity{dim: dim, sys: S}
}

//FromBase builds a quantity from a magnitude already expressed in the base units
//of the system (SI base units, or atomic units).
func (S *System) FromBase(v float64, dim Dimension) Quantity {
	return Quantity{v: v, dim: dim, sys: S}
}

//Parse reads a quantity like "1.5 MHz", "2eV", "1 e a0" or "h*c/(532 nm)".
func (S *System) Parse(text string) (Quantity, error) {
	v, unit, err := splitMagnitude(text)
	if err != nil {
		return Quantity{sys: S, err: err}, errDecorate(err, "Parse")
	}
	q := S.New(v, unit)
	return q, q.err
}

//MustParse is like Parse but panics on error. Meant for constants and tests.
func (S *System) MustParse(text string) Quantity {
	q, err := S.Parse(text)
	if err != nil {
		panic(err.Error())
	}
	return q
}

//FromUnit converts a gonum value, like unit.Length(532e-9) or constant.Planck,
//to a quantity of the system.
func (S *System) FromUnit(u unit.Uniter) Quantity {
	D, err := DimensionOf(u)
	if err != nil {
		return S.Errored(errDecorate(err, "FromUnit"))
	}
	v := u.Unit().Value()
	if S.mode == Atomic {
		v /= auScale(D)
	}
	return Quantity{v: v, dim: D, sys: S}
}

//Errored returns a quantity that carries err.
func (S *System) Errored(err error) Quantity {
	return Quantity{sys: S, err: err}
}

func (S *System) constant(sym string) Quantity {
	u := unitTable[sym]
	if S.mode == Atomic {
		return Quantity{v: u.atomic(), dim: u.dim, sys: S}
	}
	return Quantity{v: u.si, dim: u.dim, sys: S}
}

//Hbar is the reduced Planck constant.
func (S *System) Hbar() Quantity { return S.constant("ħ") }

//H is the Planck constant.
func (S *System) H() Quantity { return S.constant("h") }

//C is the speed of light.
func (S *System) C() Quantity { return S.FromUnit(constant.LightSpeedInVacuum) }

//Eps0 is the vacuum permittivity.
func (S *System) Eps0() Quantity { return S.constant("ε_0") }

//E is the elementary charge.
func (S *System) E() Quantity { return S.constant("e") }

//A0 is the Bohr radius.
func (S *System) A0() Quantity { return S.constant("a0") }

//Me is the electron mass.
func (S *System) Me() Quantity { return S.constant("m_e") }

//Eh is the Hartree energy.
func (S *System) Eh() Quantity { return S.constant("E_h") }

//Pi is π as a quantity, for symmetry in formulas.
func (S *System) Pi() Quantity { return S.Dimensionless(math.Pi) }
