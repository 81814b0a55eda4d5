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
	"errors"
	"fmt"
	"math"
	"slices"
)

// Errors reported for malformed spline definitions.
var (
	ErrDegree     = errors.New("spline degree must be at least 1")
	ErrPointCount = errors.New("too few control points")
	ErrKnotCount  = errors.New("wrong number of knots")
	ErrKnotOrder  = errors.New("knots must be non-decreasing")
	ErrDomain     = errors.New("spline domain must cover [0, 1]")
)

// arcLengthSamples is the number of parameter values used by ArcLength.
const arcLengthSamples = 1000

// Spline is a clamped B-spline in three dimensions.
//
// The knot vector omits the two outermost knots of the textbook
// formulation, so that len(Knots) == len(Points)+Degree-1 and the curve is
// defined on [Knots[Degree-1], Knots[len(Knots)-Degree]].
//
// A Spline must not be modified after construction. It is safe for
// concurrent use.
type Spline struct {
	Points []Vec3
	Knots  []float64
	Degree int
}

// NewSpline validates the control points and knots and returns the
// corresponding spline. The slices are copied.
func NewSpline(points []Vec3, knots []float64, degree int) (*Spline, error) {
	if degree < 1 {
		return nil, ErrDegree
	}
	if len(points) < degree+1 {
		return nil, fmt.Errorf("%w: degree %d needs at least %d points, got %d",
			ErrPointCount, degree, degree+1, len(points))
	}
	if len(knots) != len(points)+degree-1 {
		return nil, fmt.Errorf("%w: %d points of degree %d need %d knots, got %d",
			ErrKnotCount, len(points), degree, len(points)+degree-1, len(knots))
	}
	for i, k := range knots {
		if math.IsNaN(k) {
			return nil, fmt.Errorf("%w: knot %d is NaN", ErrKnotOrder, i)
		}
		if i > 0 && k < knots[i-1] {
			return nil, fmt.Errorf("%w: knot %d (%g) < knot %d (%g)",
				ErrKnotOrder, i, k, i-1, knots[i-1])
		}
	}

	s := &Spline{
		Points: slices.Clone(points),
		Knots:  slices.Clone(knots),
		Degree: degree,
	}
	tMin, tMax := s.Domain()
	if !(tMin < tMax) || tMin > 0 || tMax < 1 {
		return nil, fmt.Errorf("%w: got [%g, %g]", ErrDomain, tMin, tMax)
	}
	return s, nil
}

// Domain returns the parameter range on which the spline is defined.
func (s *Spline) Domain() (tMin, tMax float64) {
	return s.Knots[s.Degree-1], s.Knots[len(s.Knots)-s.Degree]
}

// Index returns the knot span containing t, i.e. the first i in
// [Degree-1, len(Knots)-Degree) with Knots[i] <= t < Knots[i+1].
// If no span matches, which happens for t equal to the end of the domain,
// the last span index len(Knots)-Degree-1 is returned.
func (s *Spline) Index(t float64) int {
	// Knot vectors are short, a linear scan beats binary search here.
	k := s.Knots
	for i := s.Degree - 1; i < len(k)-s.Degree; i++ {
		if k[i] <= t && t < k[i+1] {
			return i
		}
	}
	return len(k) - s.Degree - 1
}

// At evaluates the spline at parameter t using de Boor's algorithm.
// The endpoints of the domain map exactly to the first and last control
// point.
//
// t must lie inside the domain; At panics otherwise.
func (s *Spline) At(t float64) Vec3 {
	p, ok := s.Eval(t)
	if !ok {
		tMin, tMax := s.Domain()
		panic(fmt.Sprintf("spline parameter %g outside domain [%g, %g]", t, tMin, tMax))
	}
	return p
}

// Eval is like At, but reports parameters outside the domain by returning
// false instead of panicking.
func (s *Spline) Eval(t float64) (Vec3, bool) {
	tMin, tMax := s.Domain()
	switch {
	case t < tMin || t > tMax || math.IsNaN(t):
		return Vec3{}, false
	case t == tMin:
		return s.Points[0], true
	case t == tMax:
		return s.Points[len(s.Points)-1], true
	}

	p := s.Degree
	I := s.Index(t)

	// The working buffer lives on the stack for the usual low degrees.
	var buf [8]Vec3
	var d []Vec3
	if p+1 <= len(buf) {
		d = buf[:p+1]
	} else {
		d = make([]Vec3, p+1)
	}
	copy(d, s.Points[I-p+1:I+2])

	// Round k blends d[j] and d[j+1] for j = 0, ..., p-k in place. Since
	// Knots[I] <= t < Knots[I+1], every blend has ua > ub.
	for k := 1; k <= p; k++ {
		for i := I - p + k + 1; i <= I+1; i++ {
			ua := s.Knots[i+p-k]
			ub := s.Knots[i-1]
			co1 := (ua - t) / (ua - ub)
			co2 := (t - ub) / (ua - ub)
			j := i - I + p - k - 1
			d[j] = LinearCombination(d[j], d[j+1], co1, co2)
		}
	}
	return d[0], true
}

// ArcLength approximates the length of the spline by the polyline through
// 1000 points at the parameters t = i/999, i = 0, ..., 999.
func (s *Spline) ArcLength() float64 {
	length := 0.0
	cur := s.At(0)
	for i := 1; i < arcLengthSamples; i++ {
		last := cur
		t := 1.0 / (arcLengthSamples - 1) * float64(i)
		cur = s.At(t)
		length += Dist(cur, last)
	}
	return length
}
