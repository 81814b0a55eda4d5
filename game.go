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

// Package chaos draws fractal images with the chaos game.
//
// A set of B-spline "skeleton" curves defines a family of maps. Each map
// takes the unit square onto a short piece of ribbon around one of the
// curves. Repeatedly applying randomly chosen maps to a point and plotting
// its trajectory produces a binary image of the attractor.
package chaos

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Errors reported by NewGame.
var (
	ErrNoSplines        = errors.New("no splines given")
	ErrThickness        = errors.New("thickness must be positive")
	ErrDegenerateBounds = errors.New("bounding box has zero width or height")
)

// Game holds the precomputed state of a chaos game: the skeleton splines,
// their bounding box and the number of maps per spline.
//
// A Game is read-only after construction and can be shared between
// concurrent renders.
type Game struct {
	Splines []*Spline

	// Bounds is the bounding box of all control points in the x-y plane.
	Bounds rect.Rect

	// Width and Height are the dimensions of Bounds.
	Width, Height float64

	// Thickness is the width of the ribbon around each spline,
	// relative to the height of the bounding box.
	Thickness float64

	// NumTrafos gives, for every spline, the number of segments the
	// spline is cut into. Each segment corresponds to one map.
	NumTrafos []int

	// NumTotal is the sum of NumTrafos.
	NumTotal int
}

// NewGame computes the bounding box and the map table for the given
// splines.
func NewGame(splines []*Spline, thickness float64) (*Game, error) {
	if len(splines) == 0 {
		return nil, ErrNoSplines
	}
	if !(thickness > 0) || math.IsInf(thickness, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrThickness, thickness)
	}

	minX, minY := math.Inf(+1), math.Inf(+1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range splines {
		for _, p := range s.Points {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	width := maxX - minX
	height := maxY - minY
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: %g x %g", ErrDegenerateBounds, width, height)
	}

	g := &Game{
		Splines:   splines,
		Bounds:    rect.Rect{LLx: minX, LLy: minY, URx: maxX, URy: maxY},
		Width:     width,
		Height:    height,
		Thickness: thickness,
		NumTrafos: make([]int, len(splines)),
	}

	maxLength := thickness * width / height
	for i, s := range splines {
		n := int(s.ArcLength() / maxLength * 1.5)
		g.NumTrafos[i] = max(1, n)
		g.NumTotal += g.NumTrafos[i]
	}
	return g, nil
}

// Center returns the centre of the bounding box, which is where every
// render starts.
func (g *Game) Center() Vec3 {
	return Vec3{
		X: (g.Bounds.URx + g.Bounds.LLx) / 2,
		Y: (g.Bounds.URy + g.Bounds.LLy) / 2,
	}
}

// Truncate moves (x, y) into the bounding box. Coordinates at or above the
// upper bound are set to the bound, coordinates below the lower bound are
// raised to it.
func (g *Game) Truncate(x, y float64) (float64, float64) {
	b := &g.Bounds
	if x >= b.URx {
		x = b.URx
	}
	if y >= b.URy {
		y = b.URy
	}
	if x < b.LLx {
		x = b.LLx
	}
	if y < b.LLy {
		y = b.LLy
	}
	return x, y
}
