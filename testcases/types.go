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

// Scenario defines a single chaos game render.
type Scenario struct {
	Name       string      // lowercase a-z, 0-9 and _ only
	Splines    []SplineDef // nil selects the default splines
	Width      int         // image width in pixels
	Height     int         // image height in pixels
	Iterations int         // number of chaos game steps
	Thickness  float64     // ribbon thickness (>0)
	Seed       uint64      // random seed
}

// SplineDef is the raw geometry of one skeleton spline. All control
// points have z = 0.
type SplineDef struct {
	Points []vec.Vec2
	Knots  []float64
	Degree int
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
