/*
 * plot.go, part of atomphys.
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

//Package amoplot draws polarizability curves and level diagrams of atoms.
package amoplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/mgrau/atomphys"
	"github.com/mgrau/atomphys/term"
	"github.com/mgrau/atomphys/units"
)

//AtomicPolarizability is the atomic unit of polarizability, 4πε0a0³.
const AtomicPolarizability = "4 pi ε_0 a0^3"

//Curve is a named set of points, wavelengths in nm on X.
type Curve struct {
	Name string
	XY   plotter.XYs
}

//Polarizability samples the polarizability of s, in atomic units, at n wavelengths evenly
//spaced between from and to. The laser gives the polarization, it is not modified.
//Values beyond ±clip are clipped, so poles don't flatten the rest of the curve.
//A clip of zero or less disables clipping.
func Polarizability(s *atomphys.State, laser *atomphys.Laser, from, to units.Quantity, n int, clip float64, mJ ...float64) (Curve, error) {
	if n < 2 {
		return Curve{}, fmt.Errorf("Polarizability: need at least 2 points, got %d", n)
	}
	a, err := from.To("nm")
	if err != nil {
		return Curve{}, fmt.Errorf("Polarizability: %w", err)
	}
	b, err := to.To("nm")
	if err != nil {
		return Curve{}, fmt.Errorf("Polarizability: %w", err)
	}
	S := s.Atom().Units()
	l := *laser
	xs := floats.Span(make([]float64, n), a, b)
	ret := Curve{Name: s.Name(), XY: make(plotter.XYs, n)}
	for i, x := range xs {
		if err := l.SetWavelength(S.New(x, "nm")); err != nil {
			return ret, fmt.Errorf("Polarizability: %w", err)
		}
		alpha, err := s.Polarizability(&l, mJ...)
		if err != nil {
			return ret, fmt.Errorf("Polarizability: %w", err)
		}
		y, err := alpha.To(AtomicPolarizability)
		if err != nil {
			return ret, fmt.Errorf("Polarizability: %w", err)
		}
		if math.IsNaN(y) {
			y = 0
		}
		if clip > 0 {
			y = math.Max(-clip, math.Min(clip, y))
		}
		ret.XY[i].X, ret.XY[i].Y = x, y
	}
	return ret, nil
}

//PolarizabilityPlot draws the curves, and a dashed vertical line at each of the marks,
//usually magic wavelengths.
func PolarizabilityPlot(title string, curves []Curve, marks ...units.Quantity) (*plot.Plot, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("PolarizabilityPlot: no curves given")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Wavelength (nm)"
	p.Y.Label.Text = "Polarizability (a.u.)"
	p.Add(plotter.NewGrid())
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for i, c := range curves {
		l, err := plotter.NewLine(c.XY)
		if err != nil {
			return nil, fmt.Errorf("PolarizabilityPlot: %s: %w", c.Name, err)
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(c.Name, l)
		_, _, y0, y1 := plotter.XYRange(c.XY)
		ymin, ymax = math.Min(ymin, y0), math.Max(ymax, y1)
	}
	for _, m := range marks {
		x, err := m.To("nm")
		if err != nil {
			return nil, fmt.Errorf("PolarizabilityPlot: %w", err)
		}
		l, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
		if err != nil {
			return nil, fmt.Errorf("PolarizabilityPlot: %w", err)
		}
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		l.LineStyle.Color = color.Gray{Y: 100}
		p.Add(l)
	}
	p.Legend.Top = true
	return p, nil
}

//LevelDiagram draws the LS-coupled states of A as short horizontal lines, grouped by L,
//and its transitions, colored by wavelength. It returns the number of states left out
//because they have no L.
func LevelDiagram(A *atomphys.Atom, title string) (*plot.Plot, int, error) {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "L"
	p.Y.Label.Text = "Energy (eV)"
	pos := func(s *atomphys.State) (float64, float64, bool) {
		L, ok := s.QuantumNumbers().L()
		if !ok {
			return 0, 0, false
		}
		e, err := s.Energy().To("eV")
		if err != nil {
			return 0, 0, false
		}
		return float64(L), e, true
	}
	var skipped, maxL int
	for _, s := range A.States() {
		x, y, ok := pos(s)
		if !ok {
			skipped++
			continue
		}
		maxL = max(maxL, int(x))
		l, err := plotter.NewLine(plotter.XYs{{X: x - 0.3, Y: y}, {X: x + 0.3, Y: y}})
		if err != nil {
			return nil, skipped, fmt.Errorf("LevelDiagram: %w", err)
		}
		l.LineStyle.Width = vg.Points(2)
		p.Add(l)
	}
	for _, t := range A.Transitions() {
		x0, y0, ok0 := pos(t.Lower())
		x1, y1, ok1 := pos(t.Upper())
		if !ok0 || !ok1 {
			continue
		}
		l, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
		if err != nil {
			return nil, skipped, fmt.Errorf("LevelDiagram: %w", err)
		}
		nm, err := t.Wavelength().To("nm")
		if err != nil {
			nm = math.Inf(1)
		}
		r, g, b := wavelengthColor(nm)
		l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		p.Add(l)
	}
	ticks := make([]plot.Tick, 0, maxL+1)
	for L := 0; L <= maxL; L++ {
		letter, _ := term.Letter(L)
		ticks = append(ticks, plot.Tick{Value: float64(L), Label: letter})
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min = -0.5
	p.X.Max = float64(maxL) + 0.5
	return p, skipped, nil
}

//Save writes the plot to a file, in the format given by its extension (png, svg, pdf, eps...).
func Save(p *plot.Plot, name string) error {
	return p.Save(6*vg.Inch, 4*vg.Inch, name)
}
