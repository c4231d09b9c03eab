/*
 * laser.go, part of atomphys.
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
	"fmt"
	"math"

	"github.com/mgrau/atomphys/polarizability"
	"github.com/mgrau/atomphys/units"
)

//Laser is a monochromatic light field.
type Laser struct {
	units     *units.System
	omega     units.Quantity
	intensity units.Quantity
	linewidth units.Quantity
	pol       polarizability.Polarization
}

//NewLaser returns a laser with zero frequency, zero intensity and linear polarization
//perpendicular to the quantization axis. If sys is nil, units.Default is used.
func NewLaser(sys *units.System) *Laser {
	if sys == nil {
		sys = units.Default
	}
	return &Laser{
		units:     sys,
		omega:     sys.Zero(units.Frequency),
		intensity: sys.Zero(units.Intensity),
		linewidth: sys.Zero(units.Frequency),
		pol:       polarizability.Unpolarized(),
	}
}

//Units returns the unit system of the laser.
func (L *Laser) Units() *units.System { return L.units }

//set checks that q has dimension dim and belongs to the laser's system, and stores it in dst.
func (L *Laser) set(dst *units.Quantity, q units.Quantity, dim units.Dimension, caller string) error {
	v := L.units.Zero(dim).Add(q)
	if err := v.Err(); err != nil {
		return errDecorate(err, caller)
	}
	*dst = v
	return nil
}

//AngularFrequency returns ω.
func (L *Laser) AngularFrequency() units.Quantity { return L.omega }

//SetAngularFrequency sets ω.
func (L *Laser) SetAngularFrequency(w units.Quantity) error {
	return L.set(&L.omega, w, units.Frequency, "SetAngularFrequency")
}

//Frequency returns ν = ω/2π.
func (L *Laser) Frequency() units.Quantity { return L.omega.Scale(1 / (2 * math.Pi)) }

//SetFrequency sets ν.
func (L *Laser) SetFrequency(nu units.Quantity) error {
	return L.set(&L.omega, nu.Scale(2*math.Pi), units.Frequency, "SetFrequency")
}

//Wavelength returns λ = c/ν. It is infinite at zero frequency.
func (L *Laser) Wavelength() units.Quantity { return L.units.C().Div(L.Frequency()) }

//SetWavelength sets λ.
func (L *Laser) SetWavelength(lambda units.Quantity) error {
	return L.set(&L.omega, L.units.C().Div(lambda).Scale(2*math.Pi), units.Frequency, "SetWavelength")
}

//Intensity returns I.
func (L *Laser) Intensity() units.Quantity { return L.intensity }

//SetIntensity sets I.
func (L *Laser) SetIntensity(I units.Quantity) error {
	return L.set(&L.intensity, I, units.Intensity, "SetIntensity")
}

//ElectricField returns the field amplitude E, with I = ½cε0E².
func (L *Laser) ElectricField() units.Quantity {
	S := L.units
	return L.intensity.Scale(2).Div(S.C().Mul(S.Eps0())).Sqrt()
}

//SetElectricField sets the intensity from the field amplitude.
func (L *Laser) SetElectricField(E units.Quantity) error {
	S := L.units
	return L.set(&L.intensity, E.Pow(2).Mul(S.C()).Mul(S.Eps0()).Scale(0.5), units.Intensity, "SetElectricField")
}

//Linewidth returns the linewidth of the laser.
func (L *Laser) Linewidth() units.Quantity { return L.linewidth }

//SetLinewidth sets the linewidth of the laser.
func (L *Laser) SetLinewidth(w units.Quantity) error {
	return L.set(&L.linewidth, w, units.Frequency, "SetLinewidth")
}

//Polarization returns the polarization of the laser.
func (L *Laser) Polarization() polarizability.Polarization { return L.pol }

//SetPolarization sets the polarization of the laser.
func (L *Laser) SetPolarization(p polarizability.Polarization) { L.pol = p }

//RabiFrequency returns Ω = dE/ħ for the transition t.
func (L *Laser) RabiFrequency(t *Transition) units.Quantity {
	return t.MatrixElement().Mul(L.ElectricField()).Div(L.units.Hbar())
}

//SetRabiFrequency sets the intensity so that the Rabi frequency on t is rabi.
func (L *Laser) SetRabiFrequency(rabi units.Quantity, t *Transition) error {
	E := rabi.Mul(L.units.Hbar()).Div(t.MatrixElement())
	return errDecorate(L.SetElectricField(E), "SetRabiFrequency")
}

func (L *Laser) String() string {
	return fmt.Sprintf("Laser(λ=%s)", L.Wavelength().Show("nm", "%.4g"))
}
