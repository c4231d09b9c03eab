/*
 * main.go, part of atomphys.
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

//Command amo looks up atomic levels and lines and computes polarizabilities, light shifts
//and magic wavelengths.
//
//	amo [flags] levels  <atom>
//	amo [flags] lines   <atom>
//	amo [flags] alpha   <atom> <state> [mJ]
//	amo [flags] magic   <atom> <transition> <estimate> [mJi mJf]
//	amo [flags] plot    <atom> <from> <to> <state>...
//	amo [flags] diagram <atom>
//	amo [flags] isotopes <atom>
//	amo [flags] save    <atom> <file>
//
//An atom is a spectrum name, like "Rb" or "Ca II", fetched from the NIST ASD, or a
//file written by save (.json, .json.zst or .json.gz).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/big"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/mgrau/atomphys"
	"github.com/mgrau/atomphys/amoplot"
	"github.com/mgrau/atomphys/nist"
	"github.com/mgrau/atomphys/units"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: amo [flags] levels|lines|alpha|magic|plot|diagram|isotopes|save <atom> ...\n")
	flag.PrintDefaults()
}

func main() {
	cfgName := flag.String("config", "amo.toml", "configuration file")
	unitMode := flag.String("units", "", "unit system, si or atomic")
	backend := flag.String("cache", "", "cache backend: file, sqlite or memory")
	refresh := flag.Bool("refresh", false, "fetch from the ASD even if the data is cached")
	format := flag.String("format", "", "output format for tables, table or csv")
	lambda := flag.String("wavelength", "", "laser wavelength, like \"1064 nm\"")
	intensity := flag.String("intensity", "", "laser intensity, like \"10 kW/cm^2\"")
	out := flag.String("o", "", "output file for plot and diagram")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = usage
	flag.Parse()
	cfg, err := LoadConfig(*cfgName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "amo:", err)
		os.Exit(2)
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Units, *unitMode)
	set(&cfg.Cache.Backend, *backend)
	set(&cfg.Output.Format, *format)
	set(&cfg.Laser.Wavelength, *lambda)
	set(&cfg.Laser.Intensity, *intensity)
	cfg.Cache.Refresh = cfg.Cache.Refresh || *refresh
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.check(); err != nil {
		fmt.Fprintln(os.Stderr, "amo:", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	app := &App{Config: cfg, Out: os.Stdout, File: *out, Logger: logger}
	if err := app.Run(ctx, flag.Args()); err != nil {
		logger.Error("amo failed", "err", err)
		os.Exit(1)
	}
}

//App runs the commands of amo.
type App struct {
	Config Config
	Out    io.Writer
	File   string //output file for plots, with a default per command if empty.
	Logger *slog.Logger
	Client *nist.Client //built from Config if nil.
}

//Run executes the command in args.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("need a command and an atom")
	}
	cmd, rest := args[0], args[2:]
	nargs := map[string][2]int{
		"levels":   {0, 0},
		"lines":    {0, 0},
		"alpha":    {1, 2},
		"magic":    {2, 4},
		"plot":     {3, 1 << 10},
		"diagram":  {0, 0},
		"isotopes": {0, 0},
		"save":     {1, 1},
	}
	n, ok := nargs[cmd]
	if !ok {
		return fmt.Errorf("unknown command %q", cmd)
	}
	if len(rest) < n[0] || len(rest) > n[1] {
		return fmt.Errorf("%s: wrong number of arguments", cmd)
	}
	A, err := a.atom(ctx, args[1])
	if err != nil {
		return err
	}
	a.Logger.Debug("atom loaded", "atom", A.String())
	switch cmd {
	case "levels":
		return a.levels(A)
	case "lines":
		return a.lines(A)
	case "alpha":
		return a.alpha(A, rest)
	case "magic":
		return a.magic(A, rest)
	case "plot":
		return a.plot(A, rest)
	case "diagram":
		return a.diagram(A)
	case "isotopes":
		return a.isotopes(A)
	}
	return atomphys.Save(rest[0], A)
}

//atom loads an atom from a file written by save, or from the ASD.
func (a *App) atom(ctx context.Context, name string) (*atomphys.Atom, error) {
	S := a.Config.System()
	for _, ext := range []string{".json", ".json.zst", ".json.gz"} {
		if strings.HasSuffix(name, ext) {
			return atomphys.Load(name, S)
		}
	}
	c := a.Client
	if c == nil {
		cache, closeCache, err := a.Config.OpenCache()
		if err != nil {
			return nil, err
		}
		defer closeCache()
		c = nist.NewClient(cache)
		c.Logger = a.Logger
	}
	return atomphys.FromNIST(ctx, c, name, S, a.Config.Cache.Refresh)
}

//energyUnit is the unit energies are printed in.
func (a *App) energyUnit() string {
	if a.Config.System().Mode() == units.Atomic {
		return "E_h"
	}
	return "eV"
}

func show(q units.Quantity, unit string) string {
	v, err := q.To(unit)
	if err != nil {
		return "?"
	}
	return strconv.FormatFloat(v, 'g', 8, 64)
}

func stateLabel(s *atomphys.State) string {
	if n := s.Name(); n != "" {
		return n
	}
	return "?"
}

func (a *App) levels(A *atomphys.Atom) error {
	eu := a.energyUnit()
	T := &Table{Columns: []string{"state", "energy (" + eu + ")", "configuration", "J", "g"}}
	for _, s := range A.States() {
		J := "?"
		if j, err := s.J(); err == nil {
			J = strconv.FormatFloat(j, 'g', -1, 64)
		}
		g := ""
		if v, ok := s.G(); ok {
			g = strconv.FormatFloat(v, 'f', 4, 64)
		}
		T.Add(stateLabel(s), show(s.Energy(), eu), s.Configuration(), J, g)
	}
	return T.Write(a.Out, a.Config.Output.Format)
}

func (a *App) isotopes(A *atomphys.Atom) error {
	T := &Table{Columns: []string{"isotope", "mass (u)", "I", "abundance", "μ (μN)", "g_I"}}
	for _, i := range A.Isotopes() {
		T.Add(i.String(), strconv.FormatFloat(i.Mass, 'f', 6, 64), strconv.FormatFloat(i.I, 'g', -1, 64),
			strconv.FormatFloat(i.Abundance, 'g', 6, 64), strconv.FormatFloat(i.Mu, 'g', 6, 64),
			strconv.FormatFloat(i.GI(), 'g', 6, 64))
	}
	return T.Write(a.Out, a.Config.Output.Format)
}

func (a *App) lines(A *atomphys.Atom) error {
	T := &Table{Columns: []string{"transition", "λ (nm)", "Γ/2π (MHz)", "d (e a0)", "branching", "type"}}
	for _, t := range A.Transitions() {
		b := ""
		if r, err := t.BranchingRatio(); err == nil {
			b = strconv.FormatFloat(r, 'f', 4, 64)
		}
		T.Add(stateLabel(t.Lower())+" -> "+stateLabel(t.Upper()), show(t.Wavelength(), "nm"),
			show(t.Gamma().Scale(1/(2*math.Pi)), "MHz"), show(t.MatrixElement(), "e a0"), b, t.Type())
	}
	return T.Write(a.Out, a.Config.Output.Format)
}

//parseMJ reads magnetic quantum numbers like "1/2" or "-1.5".
func parseMJ(args []string) ([]float64, error) {
	ret := make([]float64, 0, len(args))
	for _, s := range args {
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return nil, fmt.Errorf("bad mJ %q", s)
		}
		f, _ := r.Float64()
		ret = append(ret, f)
	}
	return ret, nil
}

func (a *App) alpha(A *atomphys.Atom, args []string) error {
	s, err := A.State(args[0])
	if err != nil {
		return err
	}
	mJ, err := parseMJ(args[1:])
	if err != nil {
		return err
	}
	laser, err := a.Config.NewLaser(A.Units())
	if err != nil {
		return err
	}
	alpha, err := s.Polarizability(laser, mJ...)
	if err != nil {
		return err
	}
	shift, err := s.LightShift(laser, mJ...)
	if err != nil {
		return err
	}
	rate, err := s.ScatteringRate(laser, mJ...)
	if err != nil {
		return err
	}
	thetaP := strconv.FormatFloat(atomphys.Rad2Deg(laser.Polarization().ThetaP), 'g', 6, 64)
	T := &Table{Columns: []string{"state", "λ (nm)", "θp (°)", "α (a.u.)", "ΔE/h (MHz)", "R (s^-1)"}}
	T.Add(stateLabel(s), show(laser.Wavelength(), "nm"), thetaP, show(alpha, amoplot.AtomicPolarizability),
		show(shift.Div(A.Units().H()), "MHz"), show(rate, "s^-1"))
	return T.Write(a.Out, a.Config.Output.Format)
}

func (a *App) magic(A *atomphys.Atom, args []string) error {
	t, err := A.Transition(args[0])
	if err != nil {
		return err
	}
	estimate, err := A.Units().Parse(args[1])
	if err != nil {
		return err
	}
	mJ, err := parseMJ(args[2:])
	if err != nil {
		return err
	}
	laser, err := a.Config.NewLaser(A.Units())
	if err != nil {
		return err
	}
	lambda, err := t.MagicWavelength(estimate, laser.Polarization(), mJ...)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s: magic wavelength %s nm\n", t, show(lambda, "nm"))
	return nil
}

func (a *App) output(def string) string {
	if a.File != "" {
		return a.File
	}
	return def
}

func (a *App) plot(A *atomphys.Atom, args []string) error {
	S := A.Units()
	from, err := S.Parse(args[0])
	if err != nil {
		return err
	}
	to, err := S.Parse(args[1])
	if err != nil {
		return err
	}
	laser, err := a.Config.NewLaser(S)
	if err != nil {
		return err
	}
	var curves []amoplot.Curve
	for _, key := range args[2:] {
		s, err := A.State(key)
		if err != nil {
			return err
		}
		c, err := amoplot.Polarizability(s, laser, from, to, a.Config.Output.Points, a.Config.Output.Clip)
		if err != nil {
			return err
		}
		curves = append(curves, c)
	}
	p, err := amoplot.PolarizabilityPlot(A.Name(), curves)
	if err != nil {
		return err
	}
	name := a.output("alpha.png")
	a.Logger.Info("writing plot", "file", name, "curves", len(curves))
	return amoplot.Save(p, name)
}

func (a *App) diagram(A *atomphys.Atom) error {
	p, skipped, err := amoplot.LevelDiagram(A, A.Name())
	if err != nil {
		return err
	}
	if skipped > 0 {
		a.Logger.Info("states without L left out of the diagram", "count", skipped)
	}
	return amoplot.Save(p, a.output("levels.png"))
}
