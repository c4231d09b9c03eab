/*
 * query.go, part of atomphys.
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
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/mgrau/atomphys/units"
)

//index resolves i against a collection of length n. Negative indexes count from the end.
func index(i, n int, caller string) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, newError(ErrIndexOutOfRange, caller, "index %d with %d elements", i, n)
	}
	return i, nil
}

//nearest returns the element for which the quantity returned by f is closest to q.
func nearest[T any](elems []T, q units.Quantity, f func(T) units.Quantity, caller string) (T, error) {
	var zero T
	if len(elems) == 0 {
		return zero, newError(ErrNotFound, caller, "empty collection")
	}
	dist := make([]float64, len(elems))
	for i, e := range elems {
		d := f(e).Sub(q).Abs()
		if err := d.Err(); err != nil {
			return zero, errDecorate(err, caller)
		}
		dist[i] = d.Value()
	}
	return elems[floats.MinIdx(dist)], nil
}

//StateByIndex returns the i-th state, in order of energy. Negative indexes count from the top.
func (A *Atom) StateByIndex(i int) (*State, error) {
	i, err := index(i, len(A.states), "StateByIndex")
	if err != nil {
		return nil, err
	}
	return A.states[i], nil
}

//StateByTerm returns the lowest state whose name contains text, ignoring case.
func (A *Atom) StateByTerm(text string) (*State, error) {
	for _, s := range A.states {
		if s.Match(text) {
			return s, nil
		}
	}
	return nil, newError(ErrNotFound, "StateByTerm", "no state %q in %s", text, A.name)
}

//StateNearestEnergy returns the state with the energy closest to energy.
func (A *Atom) StateNearestEnergy(energy units.Quantity) (*State, error) {
	return nearest(A.states, energy, (*State).Energy, "StateNearestEnergy")
}

//State looks a state up by energy, if key is an energy like "1.5 eV", or by name otherwise.
func (A *Atom) State(key string) (*State, error) {
	if q, err := A.units.Parse(key); err == nil && q.Dim() == units.Energy {
		return A.StateNearestEnergy(q)
	}
	return A.StateByTerm(key)
}

//TransitionByIndex returns the i-th transition. Negative indexes count from the end.
func (A *Atom) TransitionByIndex(i int) (*Transition, error) {
	i, err := index(i, len(A.transitions), "TransitionByIndex")
	if err != nil {
		return nil, err
	}
	return A.transitions[i], nil
}

//Separators accepted between the two states of a transition pattern, longest first.
var separators = []string{"<--->", "<-->", "<->", "--->", "-->", "->", "→", "↔", "⟶", ":", " to ", ","}

//TransitionByPattern returns the first transition between two states matching the two
//halves of a pattern like "S1/2 -> P3/2", in either order.
func (A *Atom) TransitionByPattern(pattern string) (*Transition, error) {
	for _, sep := range separators {
		a, b, found := strings.Cut(pattern, sep)
		if !found {
			continue
		}
		a, b = strings.TrimSpace(a), strings.TrimSpace(b)
		for _, t := range A.transitions {
			if (t.lower.Match(a) && t.upper.Match(b)) || (t.lower.Match(b) && t.upper.Match(a)) {
				return t, nil
			}
		}
		break
	}
	return nil, newError(ErrNotFound, "TransitionByPattern", "no transition %q in %s", pattern, A.name)
}

//TransitionNearest returns the transition closest to q, which can be a wavelength, a
//frequency or an energy. A dimensionless q is taken as an energy in the base unit of the system.
func (A *Atom) TransitionNearest(q units.Quantity) (*Transition, error) {
	switch q.Dim() {
	case units.Length:
		return nearest(A.transitions, q, (*Transition).Wavelength, "TransitionNearest")
	case units.Frequency:
		return nearest(A.transitions, q, (*Transition).Frequency, "TransitionNearest")
	case units.Energy:
		return nearest(A.transitions, q, (*Transition).Energy, "TransitionNearest")
	case units.Dimensionless:
		return nearest(A.transitions, A.units.FromBase(q.Value(), units.Energy), (*Transition).Energy, "TransitionNearest")
	}
	return nil, newError(units.ErrDimensionality, "TransitionNearest", "cannot look transitions up by %s", q.Dim())
}

//Transition looks a transition up by wavelength, frequency or energy if key is one of those,
//then by the name of one of its states, and then as a pattern like "S1/2 -> P3/2".
func (A *Atom) Transition(key string) (*Transition, error) {
	if q, err := A.units.Parse(key); err == nil {
		switch q.Dim() {
		case units.Length, units.Frequency, units.Energy:
			return A.TransitionNearest(q)
		}
	}
	for _, t := range A.transitions {
		if t.lower.Match(key) || t.upper.Match(key) {
			return t, nil
		}
	}
	return A.TransitionByPattern(key)
}
