/*
 * main_test.go, part of atomphys.
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

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgrau/atomphys"
	"github.com/mgrau/atomphys/term"
)

func clearEnv(Te *testing.T) {
	for _, k := range []string{"AMO_CACHE_DIR", "AMO_CACHE_BACKEND", "AMO_UNITS"} {
		Te.Setenv(k, "")
	}
}

//inDir runs the rest of the test in dir.
func inDir(Te *testing.T, dir string) {
	Te.Helper()
	wd, err := os.Getwd()
	if err != nil {
		Te.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		Te.Fatal(err)
	}
	Te.Cleanup(func() { os.Chdir(wd) })
}

func TestDotEnv(Te *testing.T) {
	clearEnv(Te)
	dir := Te.TempDir()
	inDir(Te, dir)
	if _, err := LoadConfig(""); err != nil {
		Te.Fatalf("no .env: %v", err)
	}
	if err := os.WriteFile(".env", []byte("AMO_UNITS=atomic\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	//godotenv doesn't override variables already set, even empty ones.
	os.Unsetenv("AMO_UNITS")
	Te.Cleanup(func() { os.Unsetenv("AMO_UNITS") })
	cfg, err := LoadConfig("")
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.Units != "atomic" {
		Te.Errorf("got units %q from .env, want atomic", cfg.Units)
	}
	if err := os.WriteFile(".env", []byte("AMO-UNITS=atomic\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	if _, err := LoadConfig(""); err == nil {
		Te.Errorf("a malformed .env was accepted")
	}
}

func TestLoadConfig(Te *testing.T) {
	clearEnv(Te)
	dir := Te.TempDir()
	name := filepath.Join(dir, "amo.toml")
	text := `units = "atomic"
log_level = "debug"

[cache]
backend = "sqlite"

[laser]
wavelength = "532 nm"
theta_p = 0.0

[output]
format = "csv"
`
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		Te.Fatal(err)
	}
	Te.Setenv("AMO_CACHE_DIR", dir)
	cfg, err := LoadConfig(name)
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.Units != "atomic" || cfg.Cache.Backend != "sqlite" || cfg.Cache.Dir != dir || cfg.Output.Format != "csv" {
		Te.Errorf("bad config %+v", cfg)
	}
	if cfg.Laser.Intensity != "1 kW/cm^2" || cfg.Output.Points != 500 {
		Te.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Level() != slog.LevelDebug {
		Te.Errorf("got level %v", cfg.Level())
	}
	L, err := cfg.NewLaser(cfg.System())
	if err != nil {
		Te.Fatal(err)
	}
	near(Te, mustTo(Te, L.Wavelength(), "nm"), 532)
	if L.Polarization().ThetaP != 0 {
		Te.Errorf("bad polarization %+v", L.Polarization())
	}
	cache, closeCache, err := cfg.OpenCache()
	if err != nil {
		Te.Fatal(err)
	}
	if err := cache.Put(context.Background(), "k", []byte("v")); err != nil {
		Te.Error(err)
	}
	if err := closeCache(); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "asd.sqlite")); err != nil {
		Te.Errorf("no database: %v", err)
	}

	Te.Setenv("AMO_CACHE_BACKEND", "redis")
	if _, err := LoadConfig(name); err == nil {
		Te.Errorf("unknown backend accepted")
	}
	Te.Setenv("AMO_CACHE_BACKEND", "")
	if err := os.WriteFile(name, []byte("colour = \"blue\"\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	if _, err := LoadConfig(name); err == nil {
		Te.Errorf("unknown key accepted")
	}
	cfg, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	if err != nil || cfg.Units != "si" || cfg.Output.Format != "table" {
		Te.Errorf("missing file: %+v %v", cfg, err)
	}
}

func TestTable(Te *testing.T) {
	T := &Table{Columns: []string{"state", "energy"}}
	T.Add("10S1/2", "3")
	T.Add("5S1/2", "0")
	T.Add("5P3/2", "1.6")
	var buf bytes.Buffer
	if err := T.WriteText(&buf); err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "state") || strings.Index(buf.String(), "10S1/2") > strings.Index(buf.String(), "5S1/2") {
		Te.Errorf("bad text table:\n%s", buf.String())
	}
	buf.Reset()
	if err := T.Write(&buf, "csv"); err != nil {
		Te.Fatal(err)
	}
	want := "state,energy\n5P3/2,1.6\n5S1/2,0\n10S1/2,3\n"
	if buf.String() != want {
		Te.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

//testFile writes a two-line atom and returns its file name.
func testFile(Te *testing.T) string {
	A := atomphys.NewAtom("Rb", nil)
	S := A.Units()
	g, _ := A.AddState("0 eV", "2S1/2", atomphys.WithConfiguration("4p6.5s"))
	p1, _ := A.AddStateQ(S.MustParse("h*c/(532 nm)"), term.Parse("2P1/2"))
	p2, _ := A.AddStateQ(S.MustParse("h*c/(780 nm)"), term.Parse("2P1/2"))
	A.AddState("4 eV", "Limit")
	d := atomphys.WithMatrixElement(S.MustParse("1 e a0"))
	A.AddTransition(g, p1, d)
	A.AddTransition(g, p2, d, atomphys.WithType("E1"))
	name := filepath.Join(Te.TempDir(), "rb.json")
	if err := atomphys.Save(name, A); err != nil {
		Te.Fatal(err)
	}
	return name
}

func testApp(Te *testing.T) (*App, *bytes.Buffer) {
	clearEnv(Te)
	cfg := defaultConfig()
	cfg.Cache.Backend = "memory"
	out := new(bytes.Buffer)
	return &App{Config: cfg, Out: out, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}, out
}

func TestRun(Te *testing.T) {
	file := testFile(Te)
	ctx := context.Background()
	cases := []struct {
		args []string
		want []string
	}{
		{[]string{"levels", file}, []string{"2S1/2", "4p6.5s", "Ionization Limit"}},
		{[]string{"lines", file}, []string{"2S1/2 -> 2P1/2", "780", "532", "E1"}},
		{[]string{"alpha", file, "2S1/2"}, []string{"1064", "θp (°)", " 90 "}},
		{[]string{"alpha", file, "2S1/2", "1/2"}, []string{"1064"}},
		{[]string{"magic", file, "780 nm", "600 nm"}, []string{"604.78"}},
		{[]string{"isotopes", file}, []string{"85Rb", "87Rb", "0.7217", "2.5"}},
	}
	for _, c := range cases {
		app, out := testApp(Te)
		if err := app.Run(ctx, c.args); err != nil {
			Te.Errorf("%v: %v", c.args, err)
			continue
		}
		for _, w := range c.want {
			if !strings.Contains(out.String(), w) {
				Te.Errorf("%v: %q not in\n%s", c.args, w, out.String())
			}
		}
	}
	app, _ := testApp(Te)
	bad := [][]string{
		{"levels"},
		{"fly", file},
		{"alpha", file},
		{"alpha", file, "2S1/2", "x"},
		{"alpha", file, "2S1/2", "1/3"},
		{"save", file, "a", "b"},
		{"levels", filepath.Join(Te.TempDir(), "missing.json")},
	}
	for _, args := range bad {
		if err := app.Run(ctx, args); err == nil {
			Te.Errorf("%v: no error", args)
		}
	}
}

func TestFiles(Te *testing.T) {
	file := testFile(Te)
	dir := Te.TempDir()
	ctx := context.Background()
	app, out := testApp(Te)
	zst := filepath.Join(dir, "rb.json.zst")
	if err := app.Run(ctx, []string{"save", file, zst}); err != nil {
		Te.Fatal(err)
	}
	app.Config.Output.Format = "csv"
	if err := app.Run(ctx, []string{"levels", zst}); err != nil {
		Te.Fatal(err)
	}
	if n := strings.Count(out.String(), "\n"); n != 5 {
		Te.Errorf("got %d lines, want a header and 4 levels:\n%s", n, out.String())
	}
	app.Config.Output.Points = 50
	for _, c := range []struct {
		file string
		args []string
	}{
		{"alpha.png", []string{"plot", file, "500 nm", "900 nm", "2S1/2", "2P1/2"}},
		{"levels.svg", []string{"diagram", file}},
	} {
		app.File = filepath.Join(dir, c.file)
		if err := app.Run(ctx, c.args); err != nil {
			Te.Fatal(err)
		}
		if fi, err := os.Stat(app.File); err != nil || fi.Size() == 0 {
			Te.Errorf("%s not written: %v", c.file, err)
		}
	}
}

func near(Te *testing.T, got, want float64) {
	Te.Helper()
	if d := got - want; d > 1e-9*want || d < -1e-9*want {
		Te.Errorf("got %g, want %g", got, want)
	}
}

func mustTo(Te *testing.T, q interface{ To(string) (float64, error) }, unit string) float64 {
	Te.Helper()
	v, err := q.To(unit)
	if err != nil {
		Te.Fatal(err)
	}
	return v
}
