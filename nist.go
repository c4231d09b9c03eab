/*
 * nist.go, part of atomphys.
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
	"context"
	"math"

	"github.com/mgrau/atomphys/nist"
	"github.com/mgrau/atomphys/term"
	"github.com/mgrau/atomphys/units"
)

//FromNIST builds an atom from the levels and lines of the NIST ASD. The spectrum can be
//given as "Rb", "Ca+" or "Ca II". Lines whose levels can't be found, or where either
//level has no usable J, are skipped and counted in a Debug log. If the ASD has no
//levels for the spectrum, the error is ErrNoSuchSpectrum. Failed requests return the
//error of the client. If sys is nil, units.Default is used.
func FromNIST(ctx context.Context, client *nist.Client, spectrum string, sys *units.System, refresh bool) (*Atom, error) {
	symbol, charge, err := ParseSpectrum(spectrum)
	if err != nil {
		return nil, errDecorate(err, "FromNIST")
	}
	query := SpectrumName(symbol, charge)
	recs, err := client.FetchStates(ctx, query, refresh)
	if err != nil {
		return nil, errDecorate(err, "FromNIST")
	}
	levels := nist.ParseStates(recs)
	if len(levels) == 0 {
		return nil, newError(ErrNoSuchSpectrum, "FromNIST", "%s", query)
	}
	A := NewAtom(spectrum, sys)
	for _, l := range levels {
		qn := term.Parse(l.Term)
		if l.J != "" {
			qn = qn.WithJText(l.J)
		}
		if l.N > 0 {
			qn = qn.WithN(l.N)
		}
		opts := []StateOption{WithConfiguration(l.Configuration)}
		if l.HasG {
			opts = append(opts, WithLande(l.G))
		}
		if _, err := A.AddStateQ(A.units.New(l.Energy, "Ry"), qn, opts...); err != nil {
			return nil, errDecorate(err, "FromNIST")
		}
	}
	recs, err = client.FetchTransitions(ctx, query, refresh)
	if err != nil {
		return nil, errDecorate(err, "FromNIST")
	}
	log := client.Logger
	skipped := 0
	for _, line := range nist.ParseTransitions(recs) {
		lower := A.level(line.Ei, line.JI)
		upper := A.level(line.Ek, line.JK)
		if lower == nil || upper == nil || lower == upper {
			skipped++
			continue
		}
		if _, err := lower.J(); err != nil {
			skipped++
			continue
		}
		if _, err := upper.J(); err != nil {
			skipped++
			continue
		}
		_, err := A.AddTransition(lower, upper, WithGamma(A.units.New(line.A, "s^-1")), WithType(line.Type))
		if err != nil {
			skipped++
		}
	}
	if skipped > 0 && log != nil {
		log.Debug("skipped lines", "spectrum", query, "count", skipped)
	}
	return A, nil
}

//level returns the state closest in energy to e (in Ry), among those with total angular
//momentum J, if J can be read. It returns nil if the closest one is not within 1e-4 Ry.
func (A *Atom) level(e float64, J string) *State {
	target := A.units.New(e, "Ry")
	j, hasJ := term.QuantumNumbers{}.WithJText(J).J()
	var best *State
	bestd := math.Inf(1)
	for _, s := range A.states {
		if sj, ok := s.qn.J(); hasJ && (!ok || sj != j) {
			continue
		}
		d := math.Abs(s.energy.Sub(target).MustTo("Ry"))
		if d < bestd {
			best, bestd = s, d
		}
	}
	if bestd > 1e-4 {
		return nil
	}
	return best
}
