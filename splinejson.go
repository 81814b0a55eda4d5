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
	"encoding/json"
	"fmt"
	"io"
)

// jsonSplineSet is the file format read by DecodeSplines.
type jsonSplineSet struct {
	Splines []jsonSpline `json:"splines"`
}

type jsonSpline struct {
	Points [][]float64 `json:"points"` // [x, y] or [x, y, z]
	Knots  []float64   `json:"knots"`
	Degree int         `json:"degree"`
}

// DecodeSplines reads a spline set in JSON format:
//
//	{"splines": [{"points": [[x, y, z], ...], "knots": [...], "degree": 3}, ...]}
//
// The z coordinate may be omitted. Every spline is validated as in
// NewSpline.
func DecodeSplines(r io.Reader) ([]*Spline, error) {
	var in jsonSplineSet
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, err
	}
	if len(in.Splines) == 0 {
		return nil, ErrNoSplines
	}

	res := make([]*Spline, len(in.Splines))
	for i, js := range in.Splines {
		points := make([]Vec3, len(js.Points))
		for j, c := range js.Points {
			switch len(c) {
			case 2:
				points[j] = Vec3{X: c[0], Y: c[1]}
			case 3:
				points[j] = Vec3{X: c[0], Y: c[1], Z: c[2]}
			default:
				return nil, fmt.Errorf("spline %d: point %d has %d coordinates", i, j, len(c))
			}
		}
		s, err := NewSpline(points, js.Knots, js.Degree)
		if err != nil {
			return nil, fmt.Errorf("spline %d: %w", i, err)
		}
		res[i] = s
	}
	return res, nil
}

// EncodeSplines writes the splines in the format read by DecodeSplines.
func EncodeSplines(w io.Writer, splines []*Spline) error {
	out := jsonSplineSet{Splines: make([]jsonSpline, len(splines))}
	for i, s := range splines {
		js := jsonSpline{
			Points: make([][]float64, len(s.Points)),
			Knots:  s.Knots,
			Degree: s.Degree,
		}
		for j, p := range s.Points {
			js.Points[j] = []float64{p.X, p.Y, p.Z}
		}
		out.Splines[i] = js
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
