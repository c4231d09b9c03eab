/*
 * transition.go, part of atomphys.
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

//Transition is an electric dipole coupling between a lower and an upper state
//of the same atom.
//
//The reduced dipole matrix element d is stored, and the decay rate is derived from it:
//
//	Γ = ω³ d² / (3π ε0 ħ c³ (2Jf+1))
//
//so both always agree. Setting Γ recomputes d. If the energies of the states change,
//d is kept and Γ follows.
type Transition struct {
	atom  *Atom
	lower *State
	upper *State
	d     units.Quantity
	kind  string
}

//TransitionOption sets optional properties of a transition when it is added to an atom.
type TransitionOption func(*Transition) error

//WithMatrixElement sets the reduced dipole matrix element of the transition.
func WithMatrixElement(d units.Quantity) TransitionOption {
	return func(t *Transition) error { return t.SetMatrixElement(d) }
}

//WithGamma sets the decay rate (Einstein A coefficient) of the transition.
func WithGamma(gamma units.Quantity) TransitionOption {
	return func(t *Transition) error { return t.SetGamma(gamma) }
}

//WithType sets the multipolarity label of the transition, like "E1" or "M1".
func WithType(kind string) TransitionOption {
	return func(t *Transition) error {
		t.kind = kind
		return nil
	}
}

//Lower returns the lower state.
func (t *Transition) Lower() *State { return t.lower }

//Upper returns the upper state.
func (t *Transition) Upper() *State { return t.upper }

//Ei returns the energy of the lower state.
func (t *Transition) Ei() units.Quantity { return t.lower.energy }

//Ef returns the energy of the upper state.
func (t *Transition) Ef() units.Quantity { return t.upper.energy }

//Energy returns Ef-Ei.
func (t *Transition) Energy() units.Quantity {
	return t.upper.energy.Sub(t.lower.energy)
}

//AngularFrequency returns ω = (Ef-Ei)/ħ.
func (t *Transition) AngularFrequency() units.Quantity {
	return t.Energy().Div(t.atom.units.Hbar())
}

//Frequency returns ν = ω/2π.
func (t *Transition) Frequency() units.Quantity {
	return t.AngularFrequency().Scale(1 / (2 * math.Pi))
}

//Wavelength returns λ = c/ν. It is infinite for a degenerate transition.
func (t *Transition) Wavelength() units.Quantity {
	return t.atom.units.C().Div(t.Frequency())
}

//MatrixElement returns the reduced dipole matrix element d.
func (t *Transition) MatrixElement() units.Quantity { return t.d }

//Type returns the multipolarity label, if any.
func (t *Transition) Type() string { return t.kind }

//gammaFactor returns 3π ε0 ħ c³ (2Jf+1)/ω³, so that Γ = d²/gammaFactor.
func (t *Transition) gammaFactor() units.Quantity {
	S := t.atom.units
	Jf, err := t.upper.J()
	if err != nil {
		return S.Errored(errDecorate(err, "gammaFactor"))
	}
	num := S.Eps0().Mul(S.Hbar()).Mul(S.C().Pow(3)).Scale(3 * math.Pi * (2*Jf + 1))
	return num.Div(t.AngularFrequency().Pow(3))
}

//Gamma returns the decay rate Γ. The quantity carries ErrNoJ if the upper state has no J.
func (t *Transition) Gamma() units.Quantity {
	return t.d.Pow(2).Div(t.gammaFactor())
}

//A returns the Einstein A coefficient, which is the same as Gamma.
func (t *Transition) A() units.Quantity { return t.Gamma() }

//SetMatrixElement sets the reduced dipole matrix element d.
func (t *Transition) SetMatrixElement(d units.Quantity) error {
	S := t.atom.units
	d = S.Zero(units.DipoleMoment).Add(d)
	if err := d.Err(); err != nil {
		return errDecorate(err, "SetMatrixElement")
	}
	t.d = d
	return nil
}

//SetGamma sets d so that the decay rate is gamma. It fails with ErrDegenerate
//if the transition has zero frequency, and with ErrNoJ if the upper state has no J.
func (t *Transition) SetGamma(gamma units.Quantity) error {
	S := t.atom.units
	gamma = S.Zero(units.Frequency).Add(gamma)
	if err := gamma.Err(); err != nil {
		return errDecorate(err, "SetGamma")
	}
	if t.Energy().IsZero() {
		return newError(ErrDegenerate, "SetGamma", "%s", t)
	}
	d := gamma.Mul(t.gammaFactor()).Sqrt()
	if err := d.Err(); err != nil {
		return errDecorate(err, "SetGamma")
	}
	t.d = d
	return nil
}

//SaturationIntensity returns Isat = π h c Γ / (3λ³).
func (t *Transition) SaturationIntensity() units.Quantity {
	S := t.atom.units
	return S.H().Mul(S.C()).Mul(t.Gamma()).Scale(math.Pi).Div(t.Wavelength().Pow(3).Scale(3))
}

//CrossSection returns the resonant cross section σ0 = ħωΓ/(2 Isat).
func (t *Transition) CrossSection() units.Quantity {
	S := t.atom.units
	return S.Hbar().Mul(t.AngularFrequency()).Mul(t.Gamma()).Div(t.SaturationIntensity().Scale(2))
}

//BranchingRatio returns the fraction of decays of the upper state that go through this transition.
func (t *Transition) BranchingRatio() (float64, error) {
	r, err := t.Gamma().Mul(t.upper.Lifetime()).Float()
	return r, errDecorate(err, "BranchingRatio")
}

//line returns the transition as seen by the polarizability calculation.
func (t *Transition) line() (polarizability.Line, error) {
	Ji, err := t.lower.J()
	if err != nil {
		return polarizability.Line{}, errDecorate(err, "line")
	}
	Jf, err := t.upper.J()
	if err != nil {
		return polarizability.Line{}, errDecorate(err, "line")
	}
	return polarizability.Line{Omega: t.AngularFrequency(), D: t.d, Ji: Ji, Jf: Jf}, nil
}

//MagicWavelength looks for a wavelength, starting at estimate, at which the lower and
//upper states have the same polarizability. If mJ is given, it must hold the sublevels
//of the lower and the upper state, in that order. Otherwise the scalar polarizabilities
//are compared.
func (t *Transition) MagicWavelength(estimate units.Quantity, pol polarizability.Polarization, mJ ...float64) (units.Quantity, error) {
	S := t.atom.units
	x0 := S.Zero(units.Length).Add(estimate)
	if err := x0.Err(); err != nil {
		return x0, errDecorate(err, "MagicWavelength")
	}
	var mi, mf []float64
	switch len(mJ) {
	case 0:
	case 2:
		mi, mf = mJ[:1], mJ[1:]
	default:
		err := newError(polarizability.ErrInvalidMJ, "MagicWavelength", "need the sublevels of both states, got %v", mJ)
		return S.Errored(err), err
	}
	li, err := t.lower.Level()
	if err != nil {
		return S.Errored(err), errDecorate(err, "MagicWavelength")
	}
	lf, err := t.upper.Level()
	if err != nil {
		return S.Errored(err), errDecorate(err, "MagicWavelength")
	}
	diff := func(x float64) (float64, error) {
		omega := S.C().Div(S.FromBase(x, units.Length)).Scale(2 * math.Pi)
		ai, err := polarizability.Total(li, omega, pol, mi...)
		if err != nil {
			return 0, err
		}
		af, err := polarizability.Total(lf, omega, pol, mf...)
		if err != nil {
			return 0, err
		}
		return ai.Value() - af.Value(), nil
	}
	x, ok, err := secant(diff, x0.Value())
	if err != nil {
		return S.Errored(err), errDecorate(err, "MagicWavelength")
	}
	if !ok {
		err := newError(ErrNoConvergence, "MagicWavelength", "no convergence from %s", estimate.Show("nm", "%.6g"))
		return S.FromBase(x, units.Length), err
	}
	return S.FromBase(x, units.Length), nil
}

func (t *Transition) String() string {
	gamma := t.Gamma().Scale(1 / (2 * math.Pi))
	g := "?"
	if v, err := gamma.To("Hz"); err == nil {
		g = compactHz(v)
	}
	return fmt.Sprintf("Transition(%s <--> %s : λ=%s, Γ=2π×%s)", t.lower.Name(), t.upper.Name(), t.Wavelength().Show("nm", "%.5g"), g)
}

//compactHz prints a frequency in Hz with the largest SI prefix that keeps it above 1.
func compactHz(v float64) string {
	prefixes := []struct {
		f float64
		p string
	}{{1e12, "THz"}, {1e9, "GHz"}, {1e6, "MHz"}, {1e3, "kHz"}}
	for _, p := range prefixes {
		if math.Abs(v) >= p.f {
			return fmt.Sprintf("%.3g %s", v/p.f, p.p)
		}
	}
	return fmt.Sprintf("%.3g Hz", v)
}
