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

import "math/rand/v2"

// tangentStep is the parameter offset used to estimate the spline tangent.
const tangentStep = 1.0 / 50000

// Trafo identifies one of the maps of a Game: segment Segment of spline
// Spline.
type Trafo struct {
	Spline  int
	Segment int
}

// RandomTrafo draws a map. Splines are chosen with probability
// proportional to their number of segments, the segment uniformly.
//
// The first draw ranges over [0, NumTotal] inclusive. The extra value
// falls through to the last spline, which is slightly favoured as a
// result. Existing renders depend on this bias.
func (g *Game) RandomTrafo(rng *rand.Rand) Trafo {
	r := rng.IntN(g.NumTotal + 1)
	l := 0
	for i, n := range g.NumTrafos {
		if l <= r && r < l+n {
			return Trafo{Spline: i, Segment: rng.IntN(n)}
		}
		l += n
	}
	last := len(g.NumTrafos) - 1
	return Trafo{Spline: last, Segment: rng.IntN(g.NumTrafos[last])}
}

// Transform applies a randomly drawn map to p.
func (g *Game) Transform(p Vec3, rng *rand.Rand) Vec3 {
	return g.TransformWith(p, g.RandomTrafo(rng))
}

// TransformWith applies the map tr to p.
//
// The position of p inside the bounding box selects a point on the
// segment (from x) and an offset perpendicular to the spline (from y).
// The result is truncated to the bounding box.
func (g *Game) TransformWith(p Vec3, tr Trafo) Vec3 {
	x := (p.X - g.Bounds.LLx) / g.Width
	y := (p.Y - g.Bounds.LLy) / g.Height

	s := g.Splines[tr.Spline]
	start, end := s.Domain()
	segLength := (end - start) / float64(g.NumTrafos[tr.Spline])
	t := start + segLength*float64(tr.Segment) + segLength*x
	// Rounding can push the last segment a hair past the domain end.
	t = min(max(t, start), end)

	base := s.At(t)
	tangent := secant(s, t, base)

	mag := tangent.Mag()
	if mag != 0 {
		base.X += tangent.Y / mag * (y - 0.5) * g.Thickness
		base.Y += -tangent.X / mag * (y - 0.5) * g.Thickness
	}

	base.X, base.Y = g.Truncate(base.X, base.Y)
	return base
}

// secant approximates the direction of s at parameter t, where base is
// the point s.At(t). The neighbouring point is taken at t+tangentStep, or
// at t-tangentStep if that would leave the domain. Either way the result
// points from the later parameter towards the earlier one.
func secant(s *Spline, t float64, base Vec3) Vec3 {
	_, end := s.Domain()
	if t+tangentStep > end {
		return s.At(t - tangentStep).Sub(base)
	}
	return base.Sub(s.At(t + tangentStep))
}
