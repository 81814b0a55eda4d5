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

package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func mapEnv(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	c, err := Load("chaos", []string{"-env", filepath.Join(t.TempDir(), "none")}, noEnv)
	require.NoError(t, err)
	require.Equal(t, 256, c.Width)
	require.Equal(t, 256, c.Height)
	require.Equal(t, 5000, c.Iterations)
	require.Equal(t, 0.25, c.Thickness)
	require.Equal(t, uint64(1234), c.Seed)
	require.Empty(t, c.Output)
	require.Equal(t, 20, c.Repetitions)
	require.Equal(t, 1, c.Workers)
}

func TestFlags(t *testing.T) {
	args := []string{
		"-env", filepath.Join(t.TempDir(), "none"),
		"-width", "320", "-height", "200",
		"-iterations", "100", "-thickness", "0.5", "-seed", "7",
		"-o", "", "-png", "a.png", "-png-scale", "4",
		"-repetitions", "3", "-workers", "2",
	}
	c, err := Load("chaos", args, noEnv)
	require.NoError(t, err)
	require.Equal(t, 320, c.Width)
	require.Equal(t, 200, c.Height)
	require.Equal(t, 100, c.Iterations)
	require.Equal(t, 0.5, c.Thickness)
	require.Equal(t, uint64(7), c.Seed)
	require.Empty(t, c.Output)
	require.Equal(t, "a.png", c.PNG)
	require.Equal(t, 4, c.PNGScale)
	require.Equal(t, 3, c.Repetitions)
	require.Equal(t, 2, c.Workers)
}

func TestPrecedence(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "chaos.env")
	content := "CHAOS_WIDTH=100\nCHAOS_HEIGHT=50\nCHAOS_SEED=9\nCHAOS_OUTPUT=file.ppm\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	lookup := mapEnv(map[string]string{"CHAOS_HEIGHT": "60", "CHAOS_SEED": "10"})
	c, err := Load("chaos", []string{"-env", envFile, "-seed", "11"}, lookup)
	require.NoError(t, err)

	// width and output from the file, height from the environment,
	// seed from the command line
	require.Equal(t, 100, c.Width)
	require.Equal(t, "file.ppm", c.Output)
	require.Equal(t, 60, c.Height)
	require.Equal(t, uint64(11), c.Seed)
}

func TestApplyEnvErrors(t *testing.T) {
	c := Default()
	err := c.ApplyEnv(mapEnv(map[string]string{
		"CHAOS_WIDTH":     "wide",
		"CHAOS_THICKNESS": "thick",
		"CHAOS_SEED":      "-1",
	}))
	require.Error(t, err)
	require.ErrorContains(t, err, "CHAOS_WIDTH")
	require.ErrorContains(t, err, "CHAOS_THICKNESS")
	require.ErrorContains(t, err, "CHAOS_SEED")
	require.Equal(t, 256, c.Width)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"width":       func(c *Config) { c.Width = 0 },
		"height":      func(c *Config) { c.Height = -1 },
		"iterations":  func(c *Config) { c.Iterations = -5 },
		"thickness":   func(c *Config) { c.Thickness = 0 },
		"png_scale":   func(c *Config) { c.PNGScale = 0 },
		"repetitions": func(c *Config) { c.Repetitions = 0 },
		"workers":     func(c *Config) { c.Workers = 0 },
		"too_large":   func(c *Config) { c.Width, c.Height = 1<<17, 1<<16 },
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			require.NoError(t, c.Validate())
			modify(c)
			require.Error(t, c.Validate())
		})
	}
}

func TestLoadErrors(t *testing.T) {
	none := filepath.Join(t.TempDir(), "none")

	_, err := Load("chaos", []string{"-env", none, "-width", "0"}, noEnv)
	require.Error(t, err)

	_, err = Load("chaos", []string{"-env", none, "extra"}, noEnv)
	require.ErrorContains(t, err, "extra")

	_, err = Load("chaos", []string{"-env", none, "-h"}, noEnv)
	require.True(t, errors.Is(err, flag.ErrHelp))

	_, err = Load("chaos", []string{"-env", none}, mapEnv(map[string]string{"CHAOS_ITERATIONS": "x"}))
	require.ErrorContains(t, err, "CHAOS_ITERATIONS")
}
