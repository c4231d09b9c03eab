/*
 * config.go, part of atomphys.
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
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/mgrau/atomphys"
	"github.com/mgrau/atomphys/nist"
	"github.com/mgrau/atomphys/polarizability"
	"github.com/mgrau/atomphys/units"
)

//Config holds the settings of amo. They come, from lowest to highest priority, from
//the defaults, the TOML file, the environment (and .env) and the command line.
type Config struct {
	Units    string       `toml:"units"`
	LogLevel string       `toml:"log_level"`
	Cache    CacheConfig  `toml:"cache"`
	Laser    LaserConfig  `toml:"laser"`
	Output   OutputConfig `toml:"output"`
}

type CacheConfig struct {
	Dir     string `toml:"dir"`
	Backend string `toml:"backend"` //file, sqlite or memory
	Refresh bool   `toml:"refresh"`
}

//LaserConfig describes the laser. Angles are in degrees.
type LaserConfig struct {
	Wavelength string  `toml:"wavelength"`
	Intensity  string  `toml:"intensity"`
	A          float64 `toml:"A"`
	ThetaK     float64 `toml:"theta_k"`
	ThetaP     float64 `toml:"theta_p"`
}

type OutputConfig struct {
	Format string  `toml:"format"` //table or csv
	Points int     `toml:"points"`
	Clip   float64 `toml:"clip"`
}

func defaultConfig() Config {
	dir := ".amo-cache"
	if d, err := os.UserCacheDir(); err == nil {
		dir = filepath.Join(d, "amo")
	}
	return Config{
		Units:    "si",
		LogLevel: "info",
		Cache:    CacheConfig{Dir: dir, Backend: "file"},
		Laser:    LaserConfig{Wavelength: "1064 nm", Intensity: "1 kW/cm^2", ThetaP: 90},
		Output:   OutputConfig{Format: "table", Points: 500, Clip: 5000},
	}
}

//LoadConfig reads the TOML file name, if it exists, over the defaults, and then applies
//the environment. A .env file in the working directory is read first, without
//overriding variables already set.
func LoadConfig(name string) (Config, error) {
	cfg := defaultConfig()
	if name != "" {
		meta, err := toml.DecodeFile(name, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading %s: %w", name, err)
		default:
			if und := meta.Undecoded(); len(und) > 0 {
				return cfg, fmt.Errorf("unknown keys in %s: %v", name, und)
			}
		}
	}
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("reading .env: %w", err)
	}
	if d := os.Getenv("AMO_CACHE_DIR"); d != "" {
		cfg.Cache.Dir = d
	}
	if b := os.Getenv("AMO_CACHE_BACKEND"); b != "" {
		cfg.Cache.Backend = b
	}
	if u := os.Getenv("AMO_UNITS"); u != "" {
		cfg.Units = u
	}
	return cfg, cfg.check()
}

func (c Config) check() error {
	if _, err := units.ParseMode(c.Units); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "file", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	switch c.Output.Format {
	case "table", "csv":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Output.Points < 2 {
		return fmt.Errorf("need at least 2 points per curve, got %d", c.Output.Points)
	}
	return nil
}

//System returns the unit system selected by the configuration.
func (c Config) System() *units.System {
	mode, _ := units.ParseMode(c.Units)
	if mode == units.SI {
		return units.Default
	}
	return units.NewSystem(mode)
}

//Level returns the slog level of the configuration, info if it can't be read.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return l
}

//NewLaser builds the configured laser in the system S.
func (c Config) NewLaser(S *units.System) (*atomphys.Laser, error) {
	L := atomphys.NewLaser(S)
	lambda, err := S.Parse(c.Laser.Wavelength)
	if err != nil {
		return nil, fmt.Errorf("laser wavelength: %w", err)
	}
	if err := L.SetWavelength(lambda); err != nil {
		return nil, fmt.Errorf("laser wavelength: %w", err)
	}
	I, err := S.Parse(c.Laser.Intensity)
	if err != nil {
		return nil, fmt.Errorf("laser intensity: %w", err)
	}
	if err := L.SetIntensity(I); err != nil {
		return nil, fmt.Errorf("laser intensity: %w", err)
	}
	L.SetPolarization(polarizability.Polarization{
		A:      c.Laser.A,
		ThetaK: atomphys.Deg2Rad(c.Laser.ThetaK),
		ThetaP: atomphys.Deg2Rad(c.Laser.ThetaP),
	})
	return L, nil
}

//OpenCache opens the configured cache. The returned function releases it.
func (c Config) OpenCache() (nist.Cache, func() error, error) {
	noop := func() error { return nil }
	switch c.Cache.Backend {
	case "memory":
		return nist.NewMemoryCache(), noop, nil
	case "sqlite":
		if err := os.MkdirAll(c.Cache.Dir, 0o755); err != nil {
			return nil, noop, err
		}
		db, err := nist.OpenSQLiteCache(filepath.Join(c.Cache.Dir, "asd.sqlite"))
		if err != nil {
			return nil, noop, err
		}
		return db, db.Close, nil
	}
	fc, err := nist.NewFileCache(c.Cache.Dir)
	return fc, noop, err
}
