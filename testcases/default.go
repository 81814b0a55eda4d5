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

package testcases

// defaultScenarios render the default splines with the standard
// parameters and a few other seeds.
var defaultScenarios = []Scenario{
	{
		Name:       "standard",
		Width:      256,
		Height:     256,
		Iterations: 5000,
		Thickness:  0.25,
		Seed:       1234,
	},
	{
		Name:       "seed_1",
		Width:      256,
		Height:     256,
		Iterations: 5000,
		Thickness:  0.25,
		Seed:       1,
	},
	{
		Name:       "seed_99",
		Width:      256,
		Height:     256,
		Iterations: 5000,
		Thickness:  0.25,
		Seed:       99,
	},
	{
		Name:       "long_run",
		Width:      256,
		Height:     256,
		Iterations: 50000,
		Thickness:  0.25,
		Seed:       1234,
	},
}

// thicknessScenarios vary the ribbon thickness, which changes the number
// of maps per spline.
var thicknessScenarios = []Scenario{
	{
		Name:       "thin",
		Width:      128,
		Height:     128,
		Iterations: 5000,
		Thickness:  0.1,
		Seed:       1234,
	},
	{
		Name:       "wide",
		Width:      128,
		Height:     128,
		Iterations: 5000,
		Thickness:  0.5,
		Seed:       1234,
	},
	{
		Name:       "very_wide",
		Width:      128,
		Height:     128,
		Iterations: 5000,
		Thickness:  2,
		Seed:       1234,
	},
}

// sizeScenarios use non-square and very small images.
var sizeScenarios = []Scenario{
	{
		Name:       "landscape",
		Width:      320,
		Height:     200,
		Iterations: 5000,
		Thickness:  0.25,
		Seed:       1234,
	},
	{
		Name:       "portrait",
		Width:      100,
		Height:     300,
		Iterations: 5000,
		Thickness:  0.25,
		Seed:       1234,
	},
	{
		Name:       "tiny",
		Width:      16,
		Height:     16,
		Iterations: 1000,
		Thickness:  0.25,
		Seed:       1234,
	},
	{
		Name:       "single_pixel",
		Width:      1,
		Height:     1,
		Iterations: 10,
		Thickness:  0.25,
		Seed:       1234,
	},
}
