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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Vec3 is a point or direction in three-dimensional space.
// Only X and Y take part in bounding and rasterisation; Z is carried along
// through the spline arithmetic.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by s.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Mag returns the Euclidean length of v.
func (v Vec3) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// XY projects v onto the drawing plane.
func (v Vec3) XY() vec.Vec2 {
	return vec.Vec2{X: v.X, Y: v.Y}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec3) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// LinearCombination returns l1*p1 + l2*p2, evaluated component by component
// as p1*l1 + p2*l2.
func LinearCombination(p1, p2 Vec3, l1, l2 float64) Vec3 {
	return Vec3{
		X: p1.X*l1 + p2.X*l2,
		Y: p1.Y*l1 + p2.Y*l2,
		Z: p1.Z*l1 + p2.Z*l2,
	}
}

// Lerp returns the affine combination l1*p1 + (1-l1)*p2.
func Lerp(p1, p2 Vec3, l1 float64) Vec3 {
	return LinearCombination(p1, p2, l1, 1-l1)
}
