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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/chaos"
	"seehuhn.de/go/chaos/internal/config"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()

	// a custom spline file
	splineFile := filepath.Join(dir, "splines.json")
	f, err := os.Create(splineFile)
	require.NoError(t, err)
	require.NoError(t, chaos.EncodeSplines(f, chaos.DefaultSplines()[:2]))
	require.NoError(t, f.Close())

	cfg := config.Default()
	cfg.Width, cfg.Height = 32, 24
	cfg.Iterations = 500
	cfg.Repetitions = 3
	cfg.Workers = 3
	cfg.Splines = splineFile
	cfg.Output = filepath.Join(dir, "out.ppm")
	cfg.PNG = filepath.Join(dir, "out.png")
	cfg.PNGScale = 2
	cfg.PDF = filepath.Join(dir, "out.pdf")
	cfg.Ribbon = filepath.Join(dir, "ribbon.png")
	cfg.CSV = filepath.Join(dir, "times.csv")
	require.NoError(t, run(context.Background(), cfg))

	ppm, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(ppm), "P6\n32 24\n255\n"))
	require.Len(t, ppm, len("P6\n32 24\n255\n")+32*24*3)

	// every repetition renders with the configured seed
	g, err := chaos.NewGame(chaos.DefaultSplines()[:2], cfg.Thickness)
	require.NoError(t, err)
	want := &bytes.Buffer{}
	require.NoError(t, chaos.WritePPM(want, g.Render(32, 24, 500, cfg.Seed)))
	require.Equal(t, want.Bytes(), ppm)

	for _, name := range []string{cfg.PNG, cfg.PDF, cfg.Ribbon} {
		info, err := os.Stat(name)
		require.NoError(t, err)
		require.NotZero(t, info.Size(), name)
	}

	csvData, err := os.ReadFile(cfg.CSV)
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(string(csvData)), "\n"), 4)
}

func TestRunBadSplines(t *testing.T) {
	name := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(name, []byte(`{"splines": []}`), 0o644))

	cfg := config.Default()
	cfg.Splines = name
	cfg.Output = ""
	err := run(context.Background(), cfg)
	require.ErrorIs(t, err, chaos.ErrNoSplines)
}
