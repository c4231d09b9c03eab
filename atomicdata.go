/*
 * atomicdata.go, part of atomphys.
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
	"strconv"
	"strings"
)

//Element symbols, in order of atomic number, starting at hydrogen.
var symbols = []string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U",
}

//Standard atomic weights, in u, in the same order as symbols.
//For elements without stable isotopes, the mass number of the longest lived one.
var weights = []float64{
	1.008, 4.0026,
	6.94, 9.0122, 10.81, 12.011, 14.007, 15.999, 18.998, 20.180,
	22.990, 24.305, 26.982, 28.085, 30.974, 32.06, 35.45, 39.948,
	39.098, 40.078, 44.956, 47.867, 50.942, 51.996, 54.938, 55.845, 58.933, 58.693, 63.546, 65.38, 69.723, 72.630, 74.922, 78.971, 79.904, 83.798,
	85.468, 87.62, 88.906, 91.224, 92.906, 95.95, 98, 101.07, 102.91, 106.42, 107.87, 112.41, 114.82, 118.71, 121.76, 127.60, 126.90, 131.29,
	132.91, 137.33, 138.91, 140.12, 140.91, 144.24, 145, 150.36, 151.96, 157.25, 158.93, 162.50, 164.93, 167.26, 168.93, 173.05, 174.97,
	178.49, 180.95, 183.84, 186.21, 190.23, 192.22, 195.08, 196.97, 200.59, 204.38, 207.2, 208.98, 209, 210, 222,
	223, 226, 227, 232.04, 231.04, 238.03,
}

//symbolZ maps element symbols to atomic numbers.
var symbolZ = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for i, s := range symbols {
		m[s] = i + 1
	}
	return m
}()

var romans = map[string]int{
	"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5, "VI": 6, "VII": 7, "VIII": 8, "IX": 9, "X": 10,
}

//ParseSpectrum reads spectrum names like "Rb", "Rb I", "Ca+", "Ca II" or "Yb 2+".
//It returns the element symbol and the charge of the ion.
func ParseSpectrum(name string) (symbol string, charge int, err error) {
	fields := strings.Fields(name)
	if len(fields) == 0 || len(fields) > 2 {
		return "", 0, newError(ErrUnknownElement, "ParseSpectrum", "%q", name)
	}
	symbol = fields[0]
	var stage string
	if len(fields) == 2 {
		stage = fields[1]
	} else if i := strings.IndexAny(symbol, "+0123456789"); i > 0 {
		symbol, stage = symbol[:i], symbol[i:]
	}
	if _, ok := symbolZ[symbol]; !ok {
		return "", 0, newError(ErrUnknownElement, "ParseSpectrum", "%q", name)
	}
	switch {
	case stage == "":
	case romans[stage] > 0:
		charge = romans[stage] - 1
	case strings.Trim(stage, "+") == "":
		charge = len(stage)
	case strings.HasSuffix(stage, "+"):
		charge, err = strconv.Atoi(strings.TrimSuffix(stage, "+"))
		if err != nil || charge < 0 {
			return "", 0, newError(ErrUnknownElement, "ParseSpectrum", "bad ionization stage in %q", name)
		}
	default:
		return "", 0, newError(ErrUnknownElement, "ParseSpectrum", "bad ionization stage in %q", name)
	}
	if charge >= symbolZ[symbol] {
		return "", 0, newError(ErrUnknownElement, "ParseSpectrum", "%s cannot lose %d electrons", symbol, charge)
	}
	return symbol, charge, nil
}

//SpectrumName returns the spectroscopic name, as "Ca II", of the element with the given charge.
func SpectrumName(symbol string, charge int) string {
	for k, v := range romans {
		if v == charge+1 {
			return symbol + " " + k
		}
	}
	return symbol + " " + strconv.Itoa(charge) + "+"
}
