/*
 * constants.go, part of atomphys.
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

	"gonum.org/v1/gonum/unit/constant"
)

//Exact SI constants and the fine-structure constant come from gonum. The atomic
//units are derived from them, so that ħ, e, m_e, a0, E_h and 4πε0 are all 1 in
//atomic mode to rounding.
const (
	SpeedOfLight     float64 = float64(constant.LightSpeedInVacuum) // [m s^-1]
	Planck           float64 = float64(constant.Planck)             // [J s]
	ReducedPlanck    float64 = Planck / (2 * math.Pi)                // [J s]
	ElementaryCharge float64 = float64(constant.ElementaryCharge)   // [C]
	FineStructure    float64 = float64(constant.FineStructure)
	AtomicMassUnit   float64 = float64(constant.AtomicMass) // [kg]
	//CODATA 2018, not in gonum.
	ElectronMass float64 = 9.1093837015e-31 // [kg]
	ElectronG    float64 = 2.00231930436256 // |g_s|

	VacuumPermittivity float64 = ElementaryCharge * ElementaryCharge / (2 * FineStructure * Planck * SpeedOfLight) // [F m^-1]
	BohrRadius         float64 = ReducedPlanck / (ElectronMass * SpeedOfLight * FineStructure)                   // [m]
	Hartree            float64 = FineStructure * FineStructure * ElectronMass * SpeedOfLight * SpeedOfLight      // [J]
	atomicTime         float64 = ReducedPlanck / Hartree                                                         // [s]
)

//auScale is the value in SI of the atomic unit with dimension D.
func auScale(D Dimension) float64 {
	s := math.Pow(BohrRadius, float64(D[dimL]))
	s *= math.Pow(ElectronMass, float64(D[dimM]))
	s *= math.Pow(atomicTime, float64(D[dimT]))
	s *= math.Pow(ElementaryCharge/atomicTime, float64(D[dimI]))
	return s
}

//A unit definition: its value in SI, its dimension and, for the atomic units
//themselves, their exact value in atomic units (0 means derive it from SI).
type unitDef struct {
	si         float64
	dim        Dimension
	au         float64
	prefixable bool
}

func (u unitDef) atomic() float64 {
	if u.au != 0 {
		return u.au
	}
	return u.si / auScale(u.dim)
}

var unitTable = map[string]unitDef{
	//SI base and derived
	"m":  {si: 1, dim: Length, prefixable: true},
	"g":  {si: 1e-3, dim: Mass, prefixable: true},
	"kg": {si: 1, dim: Mass},
	"s":  {si: 1, dim: Time, prefixable: true},
	"A":  {si: 1, dim: Current, prefixable: true},
	"Hz": {si: 1, dim: Frequency, prefixable: true},
	"J":  {si: 1, dim: Energy, prefixable: true},
	"eV": {si: ElementaryCharge, dim: Energy, prefixable: true},
	"C":  {si: 1, dim: Charge, prefixable: true},
	"V":  {si: 1, dim: Energy.Div(Charge), prefixable: true},
	"W":  {si: 1, dim: Energy.Div(Time), prefixable: true},
	"N":  {si: 1, dim: Energy.Div(Length)},
	"F":  {si: 1, dim: Charge.Pow(2).Div(Energy)},
	"Å":  {si: 1e-10, dim: Length},
	"u":  {si: AtomicMassUnit, dim: Mass},
	"Da": {si: AtomicMassUnit, dim: Mass},
	//atomic units
	"E_h":     {si: Hartree, dim: Energy, au: 1},
	"Eh":      {si: Hartree, dim: Energy, au: 1},
	"hartree": {si: Hartree, dim: Energy, au: 1},
	"Ry":      {si: Hartree / 2, dim: Energy, au: 0.5},
	"a0":      {si: BohrRadius, dim: Length, au: 1},
	"a_0":     {si: BohrRadius, dim: Length, au: 1},
	"bohr":    {si: BohrRadius, dim: Length, au: 1},
	"e":       {si: ElementaryCharge, dim: Charge, au: 1},
	"m_e":     {si: ElectronMass, dim: Mass, au: 1},
	//constants usable inside unit expressions
	"ħ":         {si: ReducedPlanck, dim: Action, au: 1},
	"hbar":      {si: ReducedPlanck, dim: Action, au: 1},
	"h":         {si: Planck, dim: Action, au: 2 * math.Pi},
	"c":         {si: SpeedOfLight, dim: Length.Div(Time)},
	"ε_0":       {si: VacuumPermittivity, dim: Charge.Pow(2).Div(Energy).Div(Length), au: 1 / (4 * math.Pi)},
	"epsilon_0": {si: VacuumPermittivity, dim: Charge.Pow(2).Div(Energy).Div(Length), au: 1 / (4 * math.Pi)},
	"eps0":      {si: VacuumPermittivity, dim: Charge.Pow(2).Div(Energy).Div(Length), au: 1 / (4 * math.Pi)},
	//dimensionless
	"π":   {si: math.Pi, dim: Dimensionless, au: math.Pi},
	"pi":  {si: math.Pi, dim: Dimensionless, au: math.Pi},
	"rad": {si: 1, dim: Dimensionless, au: 1},
}

var prefixes = map[string]float64{
	"T": 1e12,
	"G": 1e9,
	"M": 1e6,
	"k": 1e3,
	"c": 1e-2,
	"m": 1e-3,
	"µ": 1e-6,
	"μ": 1e-6,
	"u": 1e-6,
	"n": 1e-9,
	"p": 1e-12,
	"f": 1e-15,
}

//lookupUnit resolves a unit symbol, possibly prefixed.
func lookupUnit(sym string) (unitDef, bool) {
	if u, ok := unitTable[sym]; ok {
		return u, true
	}
	for p, f := range prefixes {
		if len(sym) <= len(p) || sym[:len(p)] != p {
			continue
		}
		u, ok := unitTable[sym[len(p):]]
		if !ok || !u.prefixable {
			continue
		}
		ret := u
		ret.si *= f
		if u.au != 0 {
			ret.au *= f
		}
		return ret, true
	}
	return unitDef{}, false
}
