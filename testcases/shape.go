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

import "seehuhn.de/go/geom/vec"

// shapeScenarios use spline sets other than the default one.
var shapeScenarios = []Scenario{
	{
		Name: "arc",
		Splines: []SplineDef{
			{
				Points: []vec.Vec2{pt(0, 0), pt(1, 2), pt(2, 0)},
				Knots:  []float64{0, 0, 1, 1},
				Degree: 2,
			},
		},
		Width:      128,
		Height:     128,
		Iterations: 5000,
		Thickness:  0.25,
		Seed:       1234,
	},
	{
		Name: "s_curve",
		Splines: []SplineDef{
			{
				Points: []vec.Vec2{pt(0, 0), pt(1, 2), pt(2, -2), pt(3, 0)},
				Knots:  []float64{0, 0, 0, 1, 1, 1},
				Degree: 3,
			},
		},
		Width:      128,
		Height:     128,
		Iterations: 5000,
		Thickness:  0.25,
		Seed:       1234,
	},
	{
		Name: "zigzag",
		Splines: []SplineDef{
			{
				Points: []vec.Vec2{pt(0, 0), pt(1, 1), pt(2, 0), pt(3, 1)},
				Knots:  []float64{0, 0.25, 0.75, 1},
				Degree: 1,
			},
		},
		Width:      128,
		Height:     64,
		Iterations: 5000,
		Thickness:  0.25,
		Seed:       1234,
	},
	{
		Name: "two_spans",
		Splines: []SplineDef{
			{
				Points: []vec.Vec2{pt(0, 0), pt(0, 2), pt(2, 2), pt(2, 0)},
				Knots:  []float64{0, 0, 0.5, 1, 1},
				Degree: 2,
			},
		},
		Width:      128,
		Height:     128,
		Iterations: 5000,
		Thickness:  0.25,
		Seed:       1234,
	},
	{
		Name: "cross",
		Splines: []SplineDef{
			{
				Points: []vec.Vec2{pt(0, 0), pt(2, 2)},
				Knots:  []float64{0, 1},
				Degree: 1,
			},
			{
				Points: []vec.Vec2{pt(0, 2), pt(2, 0)},
				Knots:  []float64{0, 1},
				Degree: 1,
			},
		},
		Width:      128,
		Height:     128,
		Iterations: 5000,
		Thickness:  0.25,
		Seed:       1234,
	},
	{
		Name: "extended_domain",
		Splines: []SplineDef{
			{
				Points: []vec.Vec2{pt(0, 0), pt(1, 3), pt(3, 3), pt(4, 0), pt(2, -1)},
				Knots:  []float64{-1, -1, 0, 1, 2, 2},
				Degree: 2,
			},
		},
		Width:      128,
		Height:     128,
		Iterations: 5000,
		Thickness:  0.25,
		Seed:       1234,
	},
}
