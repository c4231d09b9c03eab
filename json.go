/*
 * json.go, part of atomphys.
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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/mgrau/atomphys/term"
	"github.com/mgrau/atomphys/units"
)

//JSONAtom is the document an atom is saved as.
type JSONAtom struct {
	Name        string           `json:"name"`
	Units       string           `json:"units"`
	States      []JSONState      `json:"states"`
	Transitions []JSONTransition `json:"transitions"`
}

//JSONState is a saved state. Energies are written in the base unit of the
//atom's system, with enough digits to be read back exactly.
type JSONState struct {
	Energy        string   `json:"energy"`
	Term          string   `json:"term"`
	J             string   `json:"J,omitempty"`
	Parity        int      `json:"parity"`
	Configuration string   `json:"configuration,omitempty"`
	N             int      `json:"n,omitempty"`
	G             *float64 `json:"g,omitempty"`
}

//JSONStateRef identifies a state by energy and term.
type JSONStateRef struct {
	Energy string `json:"energy"`
	Term   string `json:"term"`
}

//JSONTransition is a saved transition. Gamma is written for reference; d is
//used when reading, unless it is absent.
type JSONTransition struct {
	StateI JSONStateRef `json:"state_i"`
	StateF JSONStateRef `json:"state_f"`
	D      string       `json:"d,omitempty"`
	Gamma  string       `json:"Gamma,omitempty"`
	Type   string       `json:"type,omitempty"`
}

//termText returns the term symbol of qn without J, and J on its own.
//Unlike Print, it also works when J is an unprintable placeholder.
func termText(qn term.QuantumNumbers) (string, string) {
	var base term.QuantumNumbers
	switch qn.Coupling() {
	case term.LS:
		S, _ := qn.S()
		L, _ := qn.L()
		base = term.NewLS(S, L)
	case term.JJ:
		J1, _ := qn.J1()
		J2, _ := qn.J2()
		base = term.NewJJ(J1, J2)
	case term.LK:
		S2, _ := qn.S2()
		K, _ := qn.K()
		base = term.NewLK(S2, K)
	default:
		if qn.IsLimit() {
			base = term.Limit()
		}
	}
	t, _ := term.PrintWithParity(base.WithParity(qn.Parity()))
	J, ok := qn.J()
	switch {
	case ok:
		return t, term.Rat(J)
	case qn.IsLimit():
		return t, ""
	}
	if qn.HasJ() {
		//a placeholder, as "1/2?".
		return t, "?"
	}
	return t, ""
}

func (s *State) toJSON() JSONState {
	t, J := termText(s.qn)
	js := JSONState{
		Energy:        s.energy.String(),
		Term:          t,
		J:             J,
		Parity:        s.qn.Parity(),
		Configuration: s.config,
	}
	if n, ok := s.qn.N(); ok {
		js.N = n
	}
	if s.hasG {
		g := s.g
		js.G = &g
	}
	return js
}

func (js JSONState) quantumNumbers() term.QuantumNumbers {
	qn := term.Parse(js.Term).WithParity(js.Parity)
	if js.J != "" {
		qn = qn.WithJText(js.J)
	}
	if js.N > 0 {
		qn = qn.WithN(js.N)
	}
	return qn
}

func ref(s *State) JSONStateRef {
	return JSONStateRef{Energy: s.energy.String(), Term: s.Term()}
}

//ToJSON returns the document for the atom.
func (A *Atom) ToJSON() *JSONAtom {
	doc := &JSONAtom{Name: A.name, Units: A.units.Mode().String()}
	for _, s := range A.states {
		doc.States = append(doc.States, s.toJSON())
	}
	for _, t := range A.transitions {
		jt := JSONTransition{StateI: ref(t.lower), StateF: ref(t.upper), D: t.d.String(), Type: t.kind}
		if g := t.Gamma(); g.Err() == nil {
			jt.Gamma = g.String()
		}
		doc.Transitions = append(doc.Transitions, jt)
	}
	return doc
}

//find returns the state matching a reference exactly.
func (A *Atom) find(r JSONStateRef) (*State, error) {
	e, err := A.units.Parse(r.Energy)
	if err != nil {
		return nil, errDecorate(err, "find")
	}
	for _, s := range A.states {
		if s.energy.Equal(e) && s.Term() == r.Term {
			return s, nil
		}
	}
	return nil, newError(ErrNotFound, "find", "no state %s at %s", r.Term, r.Energy)
}

//FromJSON builds an atom from a document. If sys is nil, units.Default is used.
func FromJSON(doc *JSONAtom, sys *units.System) (*Atom, error) {
	A := NewAtom(doc.Name, sys)
	for i, js := range doc.States {
		e, err := A.units.Parse(js.Energy)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("FromJSON: state %d", i))
		}
		var opts []StateOption
		if js.Configuration != "" {
			opts = append(opts, WithConfiguration(js.Configuration))
		}
		if js.G != nil {
			opts = append(opts, WithLande(*js.G))
		}
		if _, err := A.AddStateQ(e, js.quantumNumbers(), opts...); err != nil {
			return nil, errDecorate(err, fmt.Sprintf("FromJSON: state %d", i))
		}
	}
	for i, jt := range doc.Transitions {
		caller := fmt.Sprintf("FromJSON: transition %d", i)
		lower, err := A.find(jt.StateI)
		if err != nil {
			return nil, errDecorate(err, caller)
		}
		upper, err := A.find(jt.StateF)
		if err != nil {
			return nil, errDecorate(err, caller)
		}
		opts := []TransitionOption{WithType(jt.Type)}
		switch {
		case jt.D != "":
			d, err := A.units.Parse(jt.D)
			if err != nil {
				return nil, errDecorate(err, caller)
			}
			opts = append(opts, WithMatrixElement(d))
		case jt.Gamma != "":
			g, err := A.units.Parse(jt.Gamma)
			if err != nil {
				return nil, errDecorate(err, caller)
			}
			opts = append(opts, WithGamma(g))
		}
		if _, err := A.AddTransition(lower, upper, opts...); err != nil {
			return nil, errDecorate(err, caller)
		}
	}
	return A, nil
}

//WriteJSON writes the atom as an indented JSON document.
func WriteJSON(w io.Writer, A *Atom) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(A.ToJSON()); err != nil {
		return fmt.Errorf("atomphys: writing %s: %w", A.name, err)
	}
	return nil
}

//ReadJSON reads an atom from a JSON document. If sys is nil, units.Default is used.
func ReadJSON(r io.Reader, sys *units.System) (*Atom, error) {
	doc := new(JSONAtom)
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("atomphys: reading atom: %w", err)
	}
	return FromJSON(doc, sys)
}

//zstd.Decoder's Close doesn't return an error, so it is not an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//Save writes the atom to a file. Names ending in ".zst" are compressed with
//zstd, names ending in ".gz" with gzip.
func Save(name string, A *Atom) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if err2 := f.Close(); err == nil {
			err = err2
		}
	}()
	buf := bufio.NewWriter(f)
	var w io.WriteCloser
	switch {
	case strings.HasSuffix(name, ".zst"):
		w, err = zstd.NewWriter(buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(name, ".gz"):
		w, err = gzip.NewWriterLevel(buf, gzip.BestCompression)
	}
	if err != nil {
		return err
	}
	if w == nil {
		if err = WriteJSON(buf, A); err != nil {
			return err
		}
		return buf.Flush()
	}
	if err = WriteJSON(w, A); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return buf.Flush()
}

//Load reads an atom saved with Save. If sys is nil, units.Default is used.
func Load(name string, sys *units.System) (*Atom, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.ReadCloser
	in := bufio.NewReader(f)
	switch {
	case strings.HasSuffix(name, ".zst"):
		var d *zstd.Decoder
		d, err = zstd.NewReader(in)
		r = zstdReadCloser{d}
	case strings.HasSuffix(name, ".gz"):
		r, err = gzip.NewReader(in)
	default:
		r = io.NopCloser(in)
	}
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadJSON(r, sys)
}
