/*
 * state.go, part of atomphys.
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
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mgrau/atomphys/polarizability"
	"github.com/mgrau/atomphys/term"
	"github.com/mgrau/atomphys/units"
)

//State is an energy eigenstate of an atom. States are created and owned by an Atom.
type State struct {
	atom   *Atom
	energy units.Quantity
	qn     term.QuantumNumbers
	config string
	g      float64
	hasG   bool
}

//StateOption sets optional properties of a state when it is added to an atom.
type StateOption func(*State)

//WithConfiguration sets the electronic configuration, like "4p6.5s".
func WithConfiguration(c string) StateOption {
	return func(s *State) { s.config = c }
}

//WithLande sets a tabulated Landé g-factor, used when it cannot be computed from the term.
func WithLande(g float64) StateOption {
	return func(s *State) {
		s.g = g
		s.hasG = true
	}
}

//Atom returns the atom that owns the state.
func (s *State) Atom() *Atom { return s.atom }

//Energy returns the energy of the state, measured from the ground state.
func (s *State) Energy() units.Quantity { return s.energy }

//QuantumNumbers returns the angular momentum quantum numbers of the state.
func (s *State) QuantumNumbers() term.QuantumNumbers { return s.qn }

//Coupling returns the angular momentum coupling scheme of the state.
func (s *State) Coupling() term.Coupling { return s.qn.Coupling() }

//Configuration returns the electronic configuration, if known.
func (s *State) Configuration() string { return s.config }

//J returns the total angular momentum. It returns ErrNoJ if the state doesn't have one,
//as is the case for the ionization limit.
func (s *State) J() (float64, error) {
	J, ok := s.qn.J()
	if !ok {
		return 0, newError(ErrNoJ, "J", "%s", s)
	}
	return J, nil
}

//Term returns the term symbol of the state, with a "*" for odd parity. It is empty
//if the quantum numbers don't define a term.
func (s *State) Term() string {
	t, _ := term.PrintWithParity(s.qn)
	return t
}

//Name returns a label for the state. When the principal quantum number of the
//valence electron is known it is "5P3/2, 2P*3/2", otherwise just the term.
func (s *State) Name() string {
	t := s.Term()
	if t == "" {
		return ""
	}
	n, okn := s.qn.N()
	L, okl := s.qn.L()
	J, okj := s.qn.J()
	if !okn || !okl || !okj {
		return t
	}
	letter, _ := term.Letter(L)
	return strconv.Itoa(n) + letter + term.Rat(J) + ", " + t
}

//Match is true if text is contained in the name of the state, ignoring case.
func (s *State) Match(text string) bool {
	name := s.Name()
	if name == "" {
		return false
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(text))
}

//Equal is true if both states have the same energy and quantum numbers.
func (s *State) Equal(o *State) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	return s.energy.Equal(o.energy) && s.qn == o.qn
}

//Less orders states by energy.
func (s *State) Less(o *State) bool {
	return s.energy.Less(o.energy)
}

//Up returns the transitions in which the state is the lower state.
func (s *State) Up() []*Transition {
	var ret []*Transition
	for _, t := range s.atom.transitions {
		if t.lower.Equal(s) {
			ret = append(ret, t)
		}
	}
	return ret
}

//Down returns the transitions in which the state is the upper state.
func (s *State) Down() []*Transition {
	var ret []*Transition
	for _, t := range s.atom.transitions {
		if t.upper.Equal(s) {
			ret = append(ret, t)
		}
	}
	return ret
}

//To returns the first transition that connects the state with a state matching key.
func (s *State) To(key string) (*Transition, error) {
	for _, t := range s.Up() {
		if t.upper.Match(key) {
			return t, nil
		}
	}
	for _, t := range s.Down() {
		if t.lower.Match(key) {
			return t, nil
		}
	}
	return nil, newError(ErrNotFound, "To", "no transition from %s to %q", s.Name(), key)
}

//G returns the Landé g-factor. It is computed for LS-coupled states with a J, and
//taken from the tabulated value otherwise. The second value is false if neither is available.
func (s *State) G() (float64, bool) {
	S, okS := s.qn.S()
	L, okL := s.qn.L()
	J, okJ := s.qn.J()
	if !okS || !okL || !okJ {
		return s.g, s.hasG
	}
	if J == 0 {
		return 0, true
	}
	l := float64(L)
	jj := J * (J + 1)
	ss := S * (S + 1)
	ll := l * (l + 1)
	return (jj-ss+ll)/(2*jj) + units.ElectronG*(jj+ss-ll)/(2*jj), true
}

//Lifetime returns the inverse of the total decay rate of the state. It is infinite
//for states with no decay channels.
func (s *State) Lifetime() units.Quantity {
	S := s.atom.units
	gamma := S.Zero(units.Frequency)
	for _, t := range s.Down() {
		gamma = gamma.Add(t.Gamma())
	}
	return gamma.Inv()
}

//Level collects the state and the lines touching it, for the polarizability calculation.
//The state needs a J. Lines to partners without one are left out.
func (s *State) Level() (polarizability.Level, error) {
	J, err := s.J()
	if err != nil {
		return polarizability.Level{}, errDecorate(err, "Level")
	}
	l := polarizability.Level{Units: s.atom.units, J: J}
	for _, t := range s.Up() {
		line, err := t.line()
		if errors.Is(err, ErrNoJ) {
			continue
		}
		if err != nil {
			return l, errDecorate(err, "Level")
		}
		l.Up = append(l.Up, line)
	}
	for _, t := range s.Down() {
		line, err := t.line()
		if errors.Is(err, ErrNoJ) {
			continue
		}
		if err != nil {
			return l, errDecorate(err, "Level")
		}
		l.Down = append(l.Down, line)
	}
	return l, nil
}

//Polarizability returns the dynamic polarizability of the state in the field of the
//laser. Without mJ, only the scalar polarizability is returned.
func (s *State) Polarizability(laser *Laser, mJ ...float64) (units.Quantity, error) {
	S := s.atom.units
	l, err := s.Level()
	if err != nil {
		return S.Errored(err), errDecorate(err, "Polarizability")
	}
	a, err := polarizability.Total(l, laser.AngularFrequency(), laser.Polarization(), mJ...)
	return a, errDecorate(err, "Polarizability")
}

//LightShift returns the AC Stark shift of the state, -αI/(2cε0).
func (s *State) LightShift(laser *Laser, mJ ...float64) (units.Quantity, error) {
	S := s.atom.units
	a, err := s.Polarizability(laser, mJ...)
	if err != nil {
		return a, errDecorate(err, "LightShift")
	}
	dE := a.Mul(laser.Intensity()).Div(S.C().Mul(S.Eps0()).Scale(2)).Neg()
	return dE, dE.Err()
}

//ScatteringRate returns the rate of photons scattered by the state from the laser,
//ω³α²I/(6πħε0²c⁴), with α the polarizability.
func (s *State) ScatteringRate(laser *Laser, mJ ...float64) (units.Quantity, error) {
	S := s.atom.units
	a, err := s.Polarizability(laser, mJ...)
	if err != nil {
		return a, errDecorate(err, "ScatteringRate")
	}
	w := laser.AngularFrequency()
	den := S.Hbar().Mul(S.Eps0().Pow(2)).Mul(S.C().Pow(4)).Scale(6 * math.Pi)
	R := w.Pow(3).Mul(a.Pow(2)).Mul(laser.Intensity()).Div(den)
	return R, R.Err()
}

func (s *State) String() string {
	e := s.energy.Show("eV", "%.4g")
	if name := s.Name(); name != "" {
		return fmt.Sprintf("State(%s: %s)", name, e)
	}
	return fmt.Sprintf("State(%s)", e)
}
