/*
 * atom.go, part of atomphys.
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
	"sort"

	"github.com/mgrau/atomphys/term"
	"github.com/mgrau/atomphys/units"
)

//Atom owns a set of states, sorted by energy, and the transitions between them,
//sorted by the energy of the lower state and then by that of the upper state.
//An Atom is not safe for concurrent modification.
type Atom struct {
	name        string
	units       *units.System
	states      []*State
	transitions []*Transition
}

//NewAtom returns an empty atom. The name is usually a spectrum name, like "Rb" or "Ca II",
//but it is not checked. If sys is nil, units.Default is used.
func NewAtom(name string, sys *units.System) *Atom {
	if sys == nil {
		sys = units.Default
	}
	return &Atom{name: name, units: sys}
}

//Name returns the name of the atom.
func (A *Atom) Name() string { return A.name }

//Units returns the unit system of the atom.
func (A *Atom) Units() *units.System { return A.units }

//Len returns the number of states.
func (A *Atom) Len() int { return len(A.states) }

//States returns the states of the atom, sorted by energy.
func (A *Atom) States() []*State {
	return append([]*State(nil), A.states...)
}

//Transitions returns the transitions of the atom, in order.
func (A *Atom) Transitions() []*Transition {
	return append([]*Transition(nil), A.transitions...)
}

//Select returns the states for which f is true.
func (A *Atom) Select(f func(*State) bool) []*State {
	var ret []*State
	for _, s := range A.states {
		if f(s) {
			ret = append(ret, s)
		}
	}
	return ret
}

//AddState adds a state with the given energy, like "1.59 eV", and term symbol, like "2P*1/2".
func (A *Atom) AddState(energy, termText string, opts ...StateOption) (*State, error) {
	e, err := A.units.Parse(energy)
	if err != nil {
		return nil, errDecorate(err, "AddState")
	}
	return A.AddStateQ(e, term.Parse(termText), opts...)
}

//AddStateQ adds a state with the given energy and quantum numbers.
func (A *Atom) AddStateQ(energy units.Quantity, qn term.QuantumNumbers, opts ...StateOption) (*State, error) {
	e := A.units.Zero(units.Energy).Add(energy)
	if err := e.Err(); err != nil {
		return nil, errDecorate(err, "AddStateQ")
	}
	s := &State{atom: A, energy: e, qn: qn}
	for _, o := range opts {
		o(s)
	}
	A.states = append(A.states, s)
	sort.SliceStable(A.states, func(i, j int) bool {
		return A.states[i].Less(A.states[j])
	})
	return s, nil
}

//AddTransition adds a transition between two states of the atom. Without options,
//the matrix element is zero.
func (A *Atom) AddTransition(lower, upper *State, opts ...TransitionOption) (*Transition, error) {
	if lower == nil || upper == nil || lower.atom != A || upper.atom != A {
		return nil, newError(ErrForeignState, "AddTransition", "%s", A.name)
	}
	t := &Transition{atom: A, lower: lower, upper: upper, d: A.units.Zero(units.DipoleMoment)}
	for _, o := range opts {
		if err := o(t); err != nil {
			return nil, errDecorate(err, "AddTransition")
		}
	}
	A.transitions = append(A.transitions, t)
	sort.SliceStable(A.transitions, func(i, j int) bool {
		ti, tj := A.transitions[i], A.transitions[j]
		if ti.Ei().Less(tj.Ei()) {
			return true
		}
		if tj.Ei().Less(ti.Ei()) {
			return false
		}
		return ti.Ef().Less(tj.Ef())
	})
	return t, nil
}

//Element returns the chemical symbol of the atom, read from its name.
func (A *Atom) Element() (string, error) {
	s, _, err := ParseSpectrum(A.name)
	return s, errDecorate(err, "Element")
}

//Charge returns the charge of the ion, in units of e, read from the name of the atom.
func (A *Atom) Charge() (int, error) {
	_, c, err := ParseSpectrum(A.name)
	return c, errDecorate(err, "Charge")
}

//Mass returns the standard atomic weight of the element, minus the mass of the
//electrons removed from the ion.
func (A *Atom) Mass() units.Quantity {
	s, c, err := ParseSpectrum(A.name)
	if err != nil {
		return A.units.Errored(errDecorate(err, "Mass"))
	}
	m := A.units.New(weights[symbolZ[s]-1], "u")
	return m.Sub(A.units.Me().Scale(float64(c)))
}

func (A *Atom) String() string {
	return fmt.Sprintf("Atom(%s: %d States, %d Transitions)", A.name, len(A.states), len(A.transitions))
}
