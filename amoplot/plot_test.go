/*
 * plot_test.go, part of atomphys.
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

package amoplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mgrau/atomphys"
	"github.com/mgrau/atomphys/term"
)

func testAtom(Te *testing.T) *atomphys.Atom {
	A := atomphys.NewAtom("Rb", nil)
	S := A.Units()
	g, _ := A.AddState("0 eV", "2S1/2")
	p1, _ := A.AddStateQ(S.MustParse("h*c/(794.979 nm)"), term.Parse("2P*1/2"))
	p3, _ := A.AddStateQ(S.MustParse("h*c/(780.241 nm)"), term.Parse("2P*3/2"))
	A.AddState("4 eV", "Limit")
	for _, l := range []struct {
		p *atomphys.State
		g string
	}{{p1, "3.61e7 s^-1"}, {p3, "3.81e7 s^-1"}} {
		if _, err := A.AddTransition(g, l.p, atomphys.WithGamma(S.MustParse(l.g))); err != nil {
			Te.Fatal(err)
		}
	}
	return A
}

func TestPolarizabilityPlot(Te *testing.T) {
	A := testAtom(Te)
	S := A.Units()
	laser := atomphys.NewLaser(S)
	var curves []Curve
	for _, s := range A.Select(func(s *atomphys.State) bool { return !s.QuantumNumbers().IsLimit() }) {
		c, err := Polarizability(s, laser, S.MustParse("700 nm"), S.MustParse("900 nm"), 201, 5000)
		if err != nil {
			Te.Fatal(err)
		}
		if len(c.XY) != 201 || c.XY[0].X != 700 || c.XY[200].X != 900 {
			Te.Fatalf("bad sampling for %s", c.Name)
		}
		for _, p := range c.XY {
			if p.Y > 5000 || p.Y < -5000 {
				Te.Fatalf("%s not clipped at %g nm: %g", c.Name, p.X, p.Y)
			}
		}
		curves = append(curves, c)
	}
	//the ground state is attractive far to the red of both lines.
	if y := curves[0].XY[200].Y; y <= 0 {
		Te.Errorf("ground state polarizability at 900 nm is %g", y)
	}
	if !laser.AngularFrequency().IsZero() {
		Te.Errorf("the laser was modified")
	}
	p, err := PolarizabilityPlot("Rb", curves, S.MustParse("790 nm"))
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"alpha.png", "alpha.svg"} {
		path := filepath.Join(dir, name)
		if err := Save(p, path); err != nil {
			Te.Fatal(err)
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			Te.Errorf("%s not written: %v", name, err)
		}
	}
	if _, err := PolarizabilityPlot("empty", nil); err == nil {
		Te.Errorf("no error for an empty plot")
	}
	if _, err := Polarizability(ground(A), laser, S.MustParse("700 nm"), S.MustParse("1 s"), 10, 0); err == nil {
		Te.Errorf("no error for a bad range")
	}
}

func ground(A *atomphys.Atom) *atomphys.State {
	s, _ := A.StateByIndex(0)
	return s
}

func TestLevelDiagram(Te *testing.T) {
	A := testAtom(Te)
	p, skipped, err := LevelDiagram(A, "Rb")
	if err != nil {
		Te.Fatal(err)
	}
	if skipped != 1 {
		Te.Errorf("got %d skipped states, want 1 (the limit)", skipped)
	}
	if err := Save(p, filepath.Join(Te.TempDir(), "levels.png")); err != nil {
		Te.Error(err)
	}
	for _, nm := range []float64{300, 380, 550, 700, 1064} {
		r, g, b := wavelengthColor(nm)
		if r == 0 && g == 0 && b == 0 {
			Te.Errorf("black for %g nm", nm)
		}
	}
}
