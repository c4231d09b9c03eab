/*
 * isotopes.go, part of atomphys.
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
	"regexp"
	"strconv"

	"github.com/mgrau/atomphys/units"
)

//Isotope holds the nuclear data of one isotope.
type Isotope struct {
	Symbol    string
	Z, A      int
	Mass      float64 //atomic mass, in u.
	I         float64 //nuclear spin.
	Abundance float64 //natural abundance, as a fraction.
	Mu        float64 //magnetic moment, in nuclear magnetons.
}

//N returns the neutron number.
func (I Isotope) N() int { return I.A - I.Z }

//GI returns the nuclear g factor μ/I, in nuclear magnetons. It is 0 for I = 0.
func (I Isotope) GI() float64 {
	if I.I == 0 {
		return 0
	}
	return I.Mu / I.I
}

func (I Isotope) String() string {
	return fmt.Sprintf("%d%s", I.A, I.Symbol)
}

//isotopes of the elements commonly laser cooled or trapped. Masses in u, moments in
//nuclear magnetons.
var isotopes = map[string][]Isotope{
	"H": {
		{A: 1, Mass: 1.00782503223, I: 0.5, Abundance: 0.999885, Mu: 2.792847351},
		{A: 2, Mass: 2.01410177812, I: 1, Abundance: 0.000115, Mu: 0.857438231},
	},
	"Li": {
		{A: 6, Mass: 6.0151228874, I: 1, Abundance: 0.0759, Mu: 0.8220473},
		{A: 7, Mass: 7.0160034366, I: 1.5, Abundance: 0.9241, Mu: 3.2564625},
	},
	"Na": {
		{A: 23, Mass: 22.9897692820, I: 1.5, Abundance: 1, Mu: 2.2176556},
	},
	"K": {
		{A: 39, Mass: 38.9637064864, I: 1.5, Abundance: 0.932581, Mu: 0.3915073},
		{A: 40, Mass: 39.963998166, I: 4, Abundance: 0.000117, Mu: -1.2981},
		{A: 41, Mass: 40.9618252579, I: 1.5, Abundance: 0.067302, Mu: 0.2148701},
	},
	"Ca": {
		{A: 40, Mass: 39.962590863, I: 0, Abundance: 0.96941},
		{A: 43, Mass: 42.95876644, I: 3.5, Abundance: 0.00135, Mu: -1.3176},
	},
	"Rb": {
		{A: 85, Mass: 84.9117897379, I: 2.5, Abundance: 0.7217, Mu: 1.35303},
		{A: 87, Mass: 86.9091805310, I: 1.5, Abundance: 0.2783, Mu: 2.75131},
	},
	"Sr": {
		{A: 86, Mass: 85.9092606, I: 0, Abundance: 0.0986},
		{A: 87, Mass: 86.9088775, I: 4.5, Abundance: 0.0700, Mu: -1.0924},
		{A: 88, Mass: 87.9056125, I: 0, Abundance: 0.8258},
	},
	"Cs": {
		{A: 133, Mass: 132.9054519610, I: 3.5, Abundance: 1, Mu: 2.5778},
	},
	"Yb": {
		{A: 171, Mass: 170.9363302, I: 0.5, Abundance: 0.1409, Mu: 0.49367},
		{A: 173, Mass: 172.9382151, I: 2.5, Abundance: 0.1610, Mu: -0.648},
		{A: 174, Mass: 173.9388664, I: 0, Abundance: 0.3203},
	},
}

//Isotopes returns the isotopes known for the element of the atom, lightest first.
//The list is empty for elements without nuclear data.
func (A *Atom) Isotopes() []Isotope {
	s, _, err := ParseSpectrum(A.name)
	if err != nil {
		return nil
	}
	ret := make([]Isotope, 0, len(isotopes[s]))
	for _, i := range isotopes[s] {
		i.Symbol, i.Z = s, symbolZ[s]
		ret = append(ret, i)
	}
	return ret
}

var isotopeRe = regexp.MustCompile(`^\s*(?:(\d+)-?([A-Z][a-z]?)|([A-Z][a-z]?)-?(\d+)|(\d+))\s*$`)

//Isotope returns an isotope of the atom, given as "87", "87Rb" or "Rb-87".
func (A *Atom) Isotope(key string) (Isotope, error) {
	m := isotopeRe.FindStringSubmatch(key)
	if m == nil {
		return Isotope{}, newError(ErrNotFound, "Isotope", "cannot read isotope %q", key)
	}
	num, sym := m[1]+m[4]+m[5], m[2]+m[3]
	a, _ := strconv.Atoi(num)
	for _, i := range A.Isotopes() {
		if i.A == a && (sym == "" || sym == i.Symbol) {
			return i, nil
		}
	}
	return Isotope{}, newError(ErrNotFound, "Isotope", "no isotope %q for %s", key, A.name)
}

//IsotopeMass returns the mass of an isotope of the atom, minus the mass of the
//electrons removed from the ion.
func (A *Atom) IsotopeMass(key string) units.Quantity {
	i, err := A.Isotope(key)
	if err != nil {
		return A.units.Errored(errDecorate(err, "IsotopeMass"))
	}
	_, c, _ := ParseSpectrum(A.name)
	return A.units.New(i.Mass, "u").Sub(A.units.Me().Scale(float64(c)))
}

//MeanMass returns the abundance-weighted mass of the known isotopes, in u. It is NaN
//if none are known.
func (A *Atom) MeanMass() float64 {
	var m, w float64
	for _, i := range A.Isotopes() {
		m += i.Abundance * i.Mass
		w += i.Abundance
	}
	if w == 0 {
		return math.NaN()
	}
	return m / w
}
