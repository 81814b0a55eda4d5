// seehuhn.de/go/chaos - chaos-game fractal images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config collects the settings of the chaos command from
// defaults, environment variables, an optional dotenv file and command
// line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the parameters of a chaos command run.
type Config struct {
	Width      int
	Height     int
	Iterations int
	Thickness  float64
	Seed       uint64

	Output   string // PPM output file, empty for none
	PNG      string // PNG output file, empty for none
	PNGScale int
	PDF      string // PDF output file, empty for none
	Ribbon   string // PNG file for the ribbon preview, empty for none
	Splines  string // JSON spline file, empty for the default splines

	Repetitions int
	Workers     int
	CSV         string // timing report file, empty for none

	EnvFile string
}

// Default returns a Config with the standard benchmark parameters.
func Default() *Config {
	return &Config{
		Width:       256,
		Height:      256,
		Iterations:  5000,
		Thickness:   0.25,
		Seed:        1234,
		PNGScale:    1,
		Repetitions: 20,
		Workers:     1,
		EnvFile:     ".env",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "image width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "image height in pixels")
	fs.IntVar(&c.Iterations, "iterations", c.Iterations, "number of chaos game steps")
	fs.Float64Var(&c.Thickness, "thickness", c.Thickness, "ribbon thickness")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, the same for every repetition")
	fs.StringVar(&c.Output, "o", c.Output, "PPM output `file`")
	fs.StringVar(&c.PNG, "png", c.PNG, "PNG output `file`")
	fs.IntVar(&c.PNGScale, "png-scale", c.PNGScale, "magnification of the PNG output")
	fs.StringVar(&c.PDF, "pdf", c.PDF, "PDF output `file`")
	fs.StringVar(&c.Ribbon, "ribbon", c.Ribbon, "PNG `file` for the ribbon preview")
	fs.StringVar(&c.Splines, "splines", c.Splines, "JSON `file` with the skeleton splines")
	fs.IntVar(&c.Repetitions, "repetitions", c.Repetitions, "number of timed runs")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of repetitions timed concurrently")
	fs.StringVar(&c.CSV, "csv", c.CSV, "CSV `file` for the run timings")
	fs.StringVar(&c.EnvFile, "env", c.EnvFile, "dotenv `file` with CHAOS_* settings")
}

// ApplyEnv overrides settings with the CHAOS_* variables reported by
// lookup. Malformed values are errors naming the variable.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	intVar := func(name string, dst *int) {
		if v, ok := lookup(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				return
			}
			*dst = n
		}
	}

	intVar("CHAOS_WIDTH", &c.Width)
	intVar("CHAOS_HEIGHT", &c.Height)
	intVar("CHAOS_ITERATIONS", &c.Iterations)
	intVar("CHAOS_REPETITIONS", &c.Repetitions)
	intVar("CHAOS_WORKERS", &c.Workers)
	if v, ok := lookup("CHAOS_THICKNESS"); ok {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("CHAOS_THICKNESS: %w", err))
		} else {
			c.Thickness = x
		}
	}
	if v, ok := lookup("CHAOS_SEED"); ok {
		x, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("CHAOS_SEED: %w", err))
		} else {
			c.Seed = x
		}
	}
	if v, ok := lookup("CHAOS_OUTPUT"); ok {
		c.Output = v
	}
	return errors.Join(errs...)
}

// Validate checks that the settings describe a possible run.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	case uint64(c.Width)*uint64(c.Height) > math.MaxUint32:
		return fmt.Errorf("image size %dx%d too large", c.Width, c.Height)
	case c.Iterations < 0:
		return fmt.Errorf("invalid number of iterations %d", c.Iterations)
	case !(c.Thickness > 0):
		return fmt.Errorf("thickness must be positive, got %g", c.Thickness)
	case c.PNGScale < 1:
		return fmt.Errorf("invalid PNG scale %d", c.PNGScale)
	case c.Repetitions < 1:
		return fmt.Errorf("invalid number of repetitions %d", c.Repetitions)
	case c.Workers < 1:
		return fmt.Errorf("invalid number of workers %d", c.Workers)
	}
	return nil
}

// Load builds the configuration for a command line. Settings are taken
// from, in increasing order of precedence, the defaults, the dotenv file
// named by -env, the variables reported by lookup and the flags in args.
// A missing dotenv file is not an error.
func Load(name string, args []string, lookup func(string) (string, bool)) (*Config, error) {
	// A first pass over the flags finds the dotenv file.
	pre := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pre.Bind(fs)
	_ = fs.Parse(args)

	fileEnv, err := godotenv.Read(pre.EnvFile)
	if errors.Is(err, os.ErrNotExist) {
		fileEnv = nil
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", pre.EnvFile, err)
	}

	c := Default()
	err = c.ApplyEnv(func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	})
	if err != nil {
		return nil, err
	}

	fs = flag.NewFlagSet(name, flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
