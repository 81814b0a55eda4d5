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

// Command chaos draws a chaos game fractal and writes it as a PPM, PNG
// or PDF image.
//
// Settings come from the command line, the CHAOS_* environment variables
// and an optional dotenv file; run "chaos -h" for the flags. The image is
// rendered -repetitions times (20 by default), always with the same seed,
// and the mean and standard deviation of the run times are reported.
// Repetitions run one after another unless -workers is larger than one.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"seehuhn.de/go/chaos"
	"seehuhn.de/go/chaos/internal/bench"
	"seehuhn.de/go/chaos/internal/config"
	"seehuhn.de/go/chaos/internal/export"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("chaos: ")

	cfg, err := config.Load("chaos", os.Args[1:], os.LookupEnv)
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	splines, err := loadSplines(cfg.Splines)
	if err != nil {
		return err
	}
	g, err := chaos.NewGame(splines, cfg.Thickness)
	if err != nil {
		return err
	}
	log.Printf("%d splines, %d maps", len(g.Splines), g.NumTotal)

	var im *chaos.Raster
	res, err := bench.Run(ctx, os.Stdout, "chaos", cfg.Repetitions, cfg.Workers,
		func(ctx context.Context, i int) error {
			r, err := g.RenderContext(ctx, cfg.Width, cfg.Height, cfg.Iterations, cfg.Seed)
			if err != nil {
				return err
			}
			if i == 0 {
				im = r
			}
			return nil
		})
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := chaos.WritePPMFile(cfg.Output, im); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.Output)
	}
	if cfg.PNG != "" {
		if err := export.WritePNGFile(cfg.PNG, im, cfg.PNGScale); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.PNG)
	}
	if cfg.PDF != "" {
		if err := export.WritePDF(cfg.PDF, im, g); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.PDF)
	}
	if cfg.Ribbon != "" {
		ribbon := g.RenderRibbon(cfg.Width, cfg.Height)
		if err := export.WritePNGFile(cfg.Ribbon, ribbon, cfg.PNGScale); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.Ribbon)
	}
	if cfg.CSV != "" {
		if err := writeCSV(cfg.CSV, res); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.CSV)
	}
	return nil
}

func loadSplines(name string) ([]*chaos.Spline, error) {
	if name == "" {
		return chaos.DefaultSplines(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	splines, err := chaos.DecodeSplines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return splines, nil
}

func writeCSV(name string, res *bench.Result) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = bench.WriteCSV(f, time.Now(), res)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
