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
	"math"
	"testing"
)

func TestNewSplineErrors(t *testing.T) {
	pts := []Vec3{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	cases := []struct {
		name   string
		points []Vec3
		knots  []float64
		degree int
		want   error
	}{
		{"degree_zero", pts, []float64{0, 0, 1}, 0, ErrDegree},
		{"empty", nil, nil, 1, ErrPointCount},
		{"too_few_points", pts[:3], []float64{0, 0, 1, 1, 1}, 3, ErrPointCount},
		{"too_few_knots", pts, []float64{0, 0, 1, 1}, 3, ErrKnotCount},
		{"too_many_knots", pts, []float64{0, 0, 0, 1, 1, 1, 1}, 3, ErrKnotCount},
		{"decreasing", pts, []float64{0, 0, 1, 0.5, 1, 1}, 3, ErrKnotOrder},
		{"nan_knot", pts, []float64{0, 0, 0, math.NaN(), 1, 1}, 3, ErrKnotOrder},
		{"nan_first_knot", pts, []float64{math.NaN(), 0, 0, 1, 1, 1}, 3, ErrKnotOrder},
		{"short_domain", pts, []float64{0, 0, 0, 0.5, 0.5, 0.5}, 3, ErrDomain},
		{"late_start", pts, []float64{0.5, 0.5, 0.5, 1, 1, 1}, 3, ErrDomain},
		{"empty_domain", pts, []float64{1, 1, 1, 1, 1, 1}, 3, ErrDomain},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewSpline(c.points, c.knots, c.degree)
			if !errors.Is(err, c.want) {
				t.Errorf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestNewSplineCopies(t *testing.T) {
	pts := []Vec3{{X: 0}, {X: 1, Y: 1}}
	knots := []float64{0, 1}
	s, err := NewSpline(pts, knots, 1)
	if err != nil {
		t.Fatal(err)
	}
	pts[0].X = 7
	knots[1] = 9
	if s.Points[0].X != 0 || s.Knots[1] != 1 {
		t.Error("spline shares storage with its arguments")
	}
}

func TestDomainEndpoints(t *testing.T) {
	for i, s := range DefaultSplines() {
		tMin, tMax := s.Domain()
		if got := s.At(tMin); got != s.Points[0] {
			t.Errorf("spline %d: At(%g) = %v, expected %v", i, tMin, got, s.Points[0])
		}
		last := s.Points[len(s.Points)-1]
		if got := s.At(tMax); got != last {
			t.Errorf("spline %d: At(%g) = %v, expected %v", i, tMax, got, last)
		}
	}
}

func TestDefaultDomains(t *testing.T) {
	want := [][2]float64{{0, 2}, {0, 1}, {0, 1}}
	for i, s := range DefaultSplines() {
		tMin, tMax := s.Domain()
		if tMin != want[i][0] || tMax != want[i][1] {
			t.Errorf("spline %d: domain [%g, %g], expected [%g, %g]",
				i, tMin, tMax, want[i][0], want[i][1])
		}
	}
}

func TestIndex(t *testing.T) {
	for _, s := range allTestSplines(t) {
		tMin, tMax := s.Domain()
		for k := range 100 {
			u := tMin + (tMax-tMin)*float64(k)/100
			i := s.Index(u)
			if i < s.Degree-1 || i >= len(s.Knots)-s.Degree {
				t.Fatalf("Index(%g) = %d out of range", u, i)
			}
			if !(s.Knots[i] <= u && u < s.Knots[i+1]) {
				t.Errorf("Index(%g) = %d, but span is [%g, %g)",
					u, i, s.Knots[i], s.Knots[i+1])
			}
		}
		if got, want := s.Index(tMax), len(s.Knots)-s.Degree-1; got != want {
			t.Errorf("Index(%g) = %d, expected %d", tMax, got, want)
		}
	}
}

// TestSingleSpanCubic compares a cubic spline with a single span to the
// Bernstein form of the corresponding Bézier curve.
func TestSingleSpanCubic(t *testing.T) {
	s := DefaultSplines()[1]
	p := s.Points
	for k := 1; k < 20; k++ {
		u := float64(k) / 20
		v := 1 - u
		want := p[0].Mul(v * v * v).
			Add(p[1].Mul(3 * u * v * v)).
			Add(p[2].Mul(3 * u * u * v)).
			Add(p[3].Mul(u * u * u))
		if d := Dist(s.At(u), want); d > 1e-12 {
			t.Errorf("At(%g) = %v, expected %v", u, s.At(u), want)
		}
	}
}

func TestLinearSpline(t *testing.T) {
	s, err := NewSpline(
		[]Vec3{{X: 0, Y: 0}, {X: 1, Y: 0, Z: 2}, {X: 1, Y: 1}},
		[]float64{0, 0.5, 1},
		1)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		t    float64
		want Vec3
	}{
		{0.25, Vec3{X: 0.5, Z: 1}},
		{0.5, Vec3{X: 1, Z: 2}},
		{0.75, Vec3{X: 1, Y: 0.5, Z: 1}},
	}
	for _, c := range cases {
		if got := s.At(c.t); Dist(got, c.want) > 1e-15 {
			t.Errorf("At(%g) = %v, expected %v", c.t, got, c.want)
		}
	}
}

func TestHighDegree(t *testing.T) {
	// A single span of degree 9 needs a heap allocated work buffer.
	const degree = 9
	points := make([]Vec3, degree+1)
	knots := make([]float64, 2*degree)
	for i := range points {
		points[i] = Vec3{X: float64(i), Y: 1}
	}
	for i := degree; i < len(knots); i++ {
		knots[i] = 1
	}
	s, err := NewSpline(points, knots, degree)
	if err != nil {
		t.Fatal(err)
	}

	// Equally spaced control points give x(t) = degree*t.
	for k := 1; k < 10; k++ {
		u := float64(k) / 10
		got := s.At(u)
		if math.Abs(got.X-degree*u) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
			t.Errorf("At(%g) = %v", u, got)
		}
	}
}

func TestEvalOutsideDomain(t *testing.T) {
	s := DefaultSplines()[0]
	for _, u := range []float64{-0.1, 2.0001, math.NaN(), math.Inf(1)} {
		if _, ok := s.Eval(u); ok {
			t.Errorf("Eval(%g) succeeded", u)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("At outside the domain did not panic")
		}
	}()
	s.At(-1)
}

func TestArcLengthLine(t *testing.T) {
	s, err := NewSpline([]Vec3{{X: 1, Y: 1}, {X: 4, Y: 5}}, []float64{0, 1}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.ArcLength(); math.Abs(got-5) > 1e-12 {
		t.Errorf("expected length 5, got %g", got)
	}
}

// TestArcLengthPartialDomain checks that only the part of the curve with
// parameters in [0, 1] is measured.
func TestArcLengthPartialDomain(t *testing.T) {
	s, err := NewSpline(
		[]Vec3{{X: 0}, {X: 1}, {X: 1, Y: 1}},
		[]float64{0, 1, 2},
		1)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.ArcLength(); math.Abs(got-1) > 1e-12 {
		t.Errorf("expected length 1, got %g", got)
	}
}

func TestArcLengthScaling(t *testing.T) {
	const scale = 3
	for i, s := range DefaultSplines() {
		points := make([]Vec3, len(s.Points))
		for j, p := range s.Points {
			points[j] = p.Mul(scale)
		}
		scaled, err := NewSpline(points, s.Knots, s.Degree)
		if err != nil {
			t.Fatal(err)
		}
		l1 := s.ArcLength()
		l2 := scaled.ArcLength()
		if math.Abs(l2-scale*l1) > 1e-9*l2 {
			t.Errorf("spline %d: length %g scaled by %d gives %g", i, l1, scale, l2)
		}
	}
}
