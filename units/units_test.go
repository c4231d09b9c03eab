/*
 * units_test.go, part of atomphys.
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

package units

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"
)

func TestParseAndConvert(Te *testing.T) {
	S := NewSystem(SI)
	cases := []struct {
		in   string
		unit string
		want float64
	}{
		{"1.5 MHz", "Hz", 1.5e6},
		{"2 eV", "J", 2 * ElementaryCharge},
		{"1 E_h", "eV", 27.211386245988},
		{"1 mW/cm^2", "W/m^2", 10},
		{"780.241209 nm", "m", 780.241209e-9},
		{"1 e a0", "C m", ElementaryCharge * BohrRadius},
		{"h*c/(532 nm)", "eV", 2.3305},
		{"3 Å", "nm", 0.3},
		{"1 Ry", "E_h", 0.5},
		{"2 s**-1", "Hz", 2},
	}
	for _, c := range cases {
		q, err := S.Parse(c.in)
		if err != nil {
			Te.Fatalf("Parse(%q): %v", c.in, err)
		}
		got, err := q.To(c.unit)
		if err != nil {
			Te.Fatalf("%q.To(%q): %v", c.in, c.unit, err)
		}
		if !scalar.EqualWithinRel(got, c.want, 1e-4) {
			Te.Errorf("%q in %s: got %g, want %g", c.in, c.unit, got, c.want)
		}
	}
}

func TestAtomicMode(Te *testing.T) {
	A := NewSystem(Atomic)
	if v := A.MustParse("1 E_h").Value(); v != 1 {
		Te.Errorf("1 E_h stored as %g in atomic mode", v)
	}
	if v := A.MustParse("1 e a0").Value(); v != 1 {
		Te.Errorf("1 e a0 stored as %g in atomic mode", v)
	}
	if v := A.Hbar().Value(); v != 1 {
		Te.Errorf("ħ is %g in atomic mode", v)
	}
	if v := A.Eps0().Value(); !scalar.EqualWithinRel(v, 1/(4*math.Pi), 1e-15) {
		Te.Errorf("ε0 is %g in atomic mode", v)
	}
	if v := A.C().Value(); !scalar.EqualWithinAbs(v, 137.035999, 1e-5) {
		Te.Errorf("c is %g in atomic mode", v)
	}
	ev, err := A.MustParse("1 eV").To("E_h")
	if err != nil {
		Te.Fatal(err)
	}
	if !scalar.EqualWithinRel(ev, 1/27.211386245988, 1e-8) {
		Te.Errorf("1 eV is %g E_h", ev)
	}
	//The same physics in both modes.
	S := NewSystem(SI)
	for _, sys := range []*System{S, A} {
		w := sys.MustParse("2 eV").Div(sys.Hbar())
		f, err := w.To("THz")
		if err != nil {
			Te.Fatal(err)
		}
		if !scalar.EqualWithinRel(f, 3038.5, 1e-4) {
			Te.Errorf("%s: 2 eV/ħ is %g THz", sys.Mode(), f)
		}
	}
}

func TestDimensionality(Te *testing.T) {
	S := NewSystem(SI)
	bad := S.MustParse("1 J").Add(S.MustParse("1 m"))
	if !errors.Is(bad.Err(), ErrDimensionality) {
		Te.Errorf("adding energy and length gave %v", bad.Err())
	}
	//errors are sticky
	still := bad.Mul(S.MustParse("2 s")).Scale(3).Sqrt()
	if !errors.Is(still.Err(), ErrDimensionality) {
		Te.Errorf("error lost after further arithmetic: %v", still.Err())
	}
	if _, err := still.To("J"); err == nil {
		Te.Error("To on an erroneous quantity should fail")
	}
	if _, err := S.MustParse("1 J").To("m"); !errors.Is(err, ErrDimensionality) {
		Te.Errorf("converting energy to length gave %v", err)
	}
	if r := S.MustParse("1 m").Sqrt(); !errors.Is(r.Err(), ErrDimensionality) {
		Te.Errorf("square root of a length gave %v", r.Err())
	}
	if r := S.MustParse("4 m^2").Sqrt(); r.Err() != nil || r.Value() != 2 || r.Dim() != Length {
		Te.Errorf("square root of an area gave %v", r)
	}
}

func TestSystemMismatch(Te *testing.T) {
	S1 := NewSystem(SI)
	S2 := NewSystem(SI)
	q := S1.MustParse("1 J").Add(S2.MustParse("1 J"))
	if !errors.Is(q.Err(), ErrSystemMismatch) {
		Te.Errorf("mixing systems gave %v", q.Err())
	}
	if _, err := S1.MustParse("1 J").Cmp(S2.MustParse("1 J")); !errors.Is(err, ErrSystemMismatch) {
		Te.Errorf("comparing across systems gave %v", err)
	}
	var zero Quantity
	if !errors.Is(zero.Err(), ErrNoSystem) {
		Te.Errorf("zero value quantity gave %v", zero.Err())
	}
}

func TestDivisionByZero(Te *testing.T) {
	S := NewSystem(SI)
	q := S.MustParse("1 J").Div(S.Zero(Time))
	if q.Err() != nil {
		Te.Fatalf("division by zero should not be an error: %v", q.Err())
	}
	if !q.IsInf() || q.Value() < 0 {
		Te.Errorf("1 J / 0 s = %v, want +Inf", q)
	}
	n := S.MustParse("-1 J").Div(S.Zero(Time))
	if !math.IsInf(n.Value(), -1) {
		Te.Errorf("-1 J / 0 s = %v, want -Inf", n)
	}
	inv := S.Zero(Length).Inv()
	if !inv.IsInf() || inv.Dim() != Length.Pow(-1) {
		Te.Errorf("1/(0 m) = %v", inv)
	}
}

func TestStringRoundTrip(Te *testing.T) {
	for _, sys := range []*System{NewSystem(SI), NewSystem(Atomic)} {
		qs := []Quantity{
			sys.MustParse("1.23456789 eV"),
			sys.MustParse("0.1 e a0"),
			sys.MustParse("780.241209 nm"),
			sys.MustParse("26.2 ns"),
			sys.MustParse("6.065 MHz"),
			sys.MustParse("1 (e a0)^2/E_h"),
			sys.MustParse("1 mW/cm^2"),
			sys.Dimensionless(0.5),
			sys.MustParse("1 J").Div(sys.Zero(Time)),
		}
		for _, q := range qs {
			s := q.String()
			back, err := sys.Parse(s)
			if err != nil {
				Te.Errorf("%s: cannot parse back %q: %v", sys.Mode(), s, err)
				continue
			}
			if back.Value() != q.Value() || back.Dim() != q.Dim() {
				Te.Errorf("%s: %q read back as %v", sys.Mode(), s, back)
			}
		}
	}
}

func TestUnitSyntax(Te *testing.T) {
	S := NewSystem(SI)
	if _, err := S.Parse("3 furlongs"); !errors.Is(err, ErrUnknownUnit) {
		Te.Errorf("unknown unit gave %v", err)
	}
	for _, bad := range []string{"1 (m", "1 m^", "1 m^x", "1 m$"} {
		if _, err := S.Parse(bad); !errors.Is(err, ErrSyntax) {
			Te.Errorf("%q gave %v", bad, err)
		}
	}
	if m, err := ParseMode("AU"); err != nil || m != Atomic {
		Te.Errorf("ParseMode(AU) = %v, %v", m, err)
	}
	if _, err := ParseMode("cgs"); err == nil {
		Te.Error("ParseMode(cgs) should fail")
	}
}

func TestCompare(Te *testing.T) {
	S := NewSystem(SI)
	a := S.MustParse("1 eV")
	b := S.MustParse("2 eV")
	if !a.Less(b) || b.Less(a) {
		Te.Error("1 eV should be less than 2 eV")
	}
	if !a.Equal(S.MustParse("1 eV")) {
		Te.Error("1 eV should equal 1 eV")
	}
	if a.Less(S.MustParse("1 m")) {
		Te.Error("incompatible quantities are never less")
	}
	if !a.Compatible(b) || a.Compatible(S.MustParse("1 s")) {
		Te.Error("wrong compatibility")
	}
}

func TestConstants(Te *testing.T) {
	if !scalar.EqualWithinRel(2*math.Pi*ReducedPlanck, Planck, 1e-15) {
		Te.Errorf("ħ = %g is not h/2π", ReducedPlanck)
	}
	if !scalar.EqualWithinRel(VacuumPermittivity, float64(constant.ElectricConstant), 1e-9) {
		Te.Errorf("ε0 = %g, gonum has %g", VacuumPermittivity, float64(constant.ElectricConstant))
	}
	if !scalar.EqualWithinRel(BohrRadius, 5.29177210903e-11, 1e-9) || !scalar.EqualWithinRel(Hartree, 4.3597447222071e-18, 1e-9) {
		Te.Errorf("a0 = %g, E_h = %g", BohrRadius, Hartree)
	}
	//4πε0 a0 E_h = e² and ħ² = m_e a0² E_h, so atomic units are consistent.
	if r := 4 * math.Pi * VacuumPermittivity * BohrRadius * Hartree / (ElementaryCharge * ElementaryCharge); !scalar.EqualWithinRel(r, 1, 1e-14) {
		Te.Errorf("4πε0 a0 E_h/e² - 1 = %g", r-1)
	}
	if r := ReducedPlanck * ReducedPlanck / (ElectronMass * BohrRadius * BohrRadius * Hartree); !scalar.EqualWithinRel(r, 1, 1e-14) {
		Te.Errorf("ħ²/(m_e a0² E_h) - 1 = %g", r-1)
	}
	for _, sys := range []*System{NewSystem(SI), NewSystem(Atomic)} {
		w := sys.MustParse("h*c/(532 nm)").Div(sys.Hbar())
		f := w.Div(sys.C()).Mul(sys.MustParse("532 nm")).Scale(1 / (2 * math.Pi))
		if v, err := f.Float(); err != nil || !scalar.EqualWithinRel(v, 1, 1e-14) {
			Te.Errorf("%s: ω/c = 2π/λ is off by %g (%v)", sys.Mode(), v-1, err)
		}
	}
}

func TestGonumUnits(Te *testing.T) {
	for _, sys := range []*System{NewSystem(SI), NewSystem(Atomic)} {
		l := sys.FromUnit(unit.Length(532e-9))
		if v, err := l.To("nm"); err != nil || !scalar.EqualWithinRel(v, 532, 1e-14) {
			Te.Errorf("%s: 532e-9 m is %g nm (%v)", sys.Mode(), v, err)
		}
		h := sys.FromUnit(constant.Planck)
		if !scalar.EqualWithinRel(h.Value(), sys.H().Value(), 1e-14) || h.Dim() != Action {
			Te.Errorf("%s: gonum h = %v, want %v", sys.Mode(), h, sys.H())
		}
		u, err := sys.MustParse("1 eV").SIUnit()
		if err != nil {
			Te.Fatal(err)
		}
		if !unit.DimensionsMatch(u, unit.Energy(1)) || !scalar.EqualWithinRel(u.Value(), ElementaryCharge, 1e-14) {
			Te.Errorf("%s: 1 eV is %v", sys.Mode(), u)
		}
		if q := sys.FromUnit(unit.Temperature(300)); !errors.Is(q.Err(), ErrDimensionality) {
			Te.Errorf("%s: a temperature gave %v", sys.Mode(), q.Err())
		}
	}
	if s := Energy.String(); s != "kg m^2 s^-2" {
		Te.Errorf("energy prints as %q", s)
	}
	if _, err := NewSystem(SI).Errored(ErrSyntax).SIUnit(); err == nil {
		Te.Error("an erroneous quantity converted to gonum")
	}
	D, err := DimensionOf(unit.Velocity(1))
	if err != nil || D != Length.Div(Time) {
		Te.Errorf("velocity is %v (%v)", D, err)
	}
}
