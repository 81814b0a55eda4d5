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

package chaos

// Default parameters for rendering the default splines.
const (
	DefaultThickness  = 0.25
	DefaultWidth      = 256
	DefaultHeight     = 256
	DefaultIterations = 5000
	DefaultSeed       = 1234
)

// DefaultSplines returns the three cubic splines of the standard chaos
// benchmark picture.
func DefaultSplines() []*Spline {
	return []*Spline{
		mustSpline(
			[]Vec3{
				{X: 1.597350, Y: 3.304460},
				{X: 1.575810, Y: 4.123260},
				{X: 1.313210, Y: 5.288350},
				{X: 1.618900, Y: 5.329910},
				{X: 2.889940, Y: 5.502700},
				{X: 2.373060, Y: 4.381830},
				{X: 1.662000, Y: 4.360280},
			},
			[]float64{0, 0, 0, 1, 1, 1, 2, 2, 2},
			3),
		mustSpline(
			[]Vec3{
				{X: 2.804500, Y: 4.017350},
				{X: 2.550500, Y: 3.525230},
				{X: 1.979010, Y: 2.620360},
				{X: 1.979010, Y: 2.620360},
			},
			[]float64{0, 0, 0, 1, 1, 1},
			3),
		mustSpline(
			[]Vec3{
				{X: 2.001670, Y: 4.011320},
				{X: 2.335040, Y: 3.312830},
				{X: 2.366800, Y: 3.233460},
				{X: 2.366800, Y: 3.233460},
			},
			[]float64{0, 0, 0, 1, 1, 1},
			3),
	}
}

func mustSpline(points []Vec3, knots []float64, degree int) *Spline {
	s, err := NewSpline(points, knots, degree)
	if err != nil {
		panic(err)
	}
	return s
}
