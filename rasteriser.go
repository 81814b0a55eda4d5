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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// horizontalEdgeThreshold is the minimum vertical extent, in device
// pixels, for an edge to contribute to coverage.
const horizontalEdgeThreshold = 1e-10

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// Rasteriser computes anti-aliased pixel coverage for polygons, using the
// nonzero winding rule. Paths may only contain MoveTo, LineTo and Close;
// curves must be flattened by the caller.
//
// Internal buffers are reused between calls. A Rasteriser is not safe for
// concurrent use.
type Rasteriser struct {
	// CTM maps path coordinates to device pixels. Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.
	// Coordinates must be integers.
	Clip rect.Rect

	edges  []edge
	active []int // indices into edges

	// per-scanline accumulators, indexed by x - xMin
	cover []float32 // signed height of edge pieces in the column
	area  []float32 // the same, weighted by the covered fraction

	xMin, xMax int        // current column range
	devBox     [4]float64 // device bounding box of edges: x0, y0, x1, y1
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{CTM: matrix.Identity, Clip: clip}
}

// Reset changes the clip rectangle and restores the identity
// transformation, keeping the internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
}

// FillNonZero fills the path using the nonzero winding rule. Open
// subpaths are closed implicitly. The emit callback receives coverage
// values in [0, 1] for a run of pixels starting at (xMin, y), row by row
// from the top. The slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	if !r.collectEdges(p) {
		return
	}

	xMin := max(int(math.Floor(r.devBox[0])), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devBox[2]))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devBox[1])), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devBox[3]))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	r.xMin, r.xMax = xMin, xMax

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		for next < len(r.edges) && r.edges[next].top() < yf+1 {
			r.active = append(r.active, next)
			next++
		}

		// drop edges which ended above this scanline
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].bottom() <= yf
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], y)
		}

		coverage := integrateNonZero(r.cover, r.area)
		lo, hi := 0, len(coverage)
		for lo < hi && coverage[lo] == 0 {
			lo++
		}
		for hi > lo && coverage[hi-1] == 0 {
			hi--
		}
		if lo < hi {
			emit(y, xMin+lo, coverage[lo:hi])
		}
	}
}

// collectEdges transforms the path to device space and fills r.edges.
// It reports whether any non-horizontal edges were found.
func (r *Rasteriser) collectEdges(p *path.Data) bool {
	r.edges = r.edges[:0]

	var cur, first vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.addEdge(cur, first)
			}
			cur = p.Coords[k]
			first = cur
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdClose:
			r.addEdge(cur, first)
			cur = first
			open = false
		default:
			panic("rasteriser: curves must be flattened")
		}
	}
	if open {
		r.addEdge(cur, first)
	}
	return len(r.edges) > 0
}

func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := &r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	if len(r.edges) == 0 {
		r.devBox = [4]float64{min(x0, x1), min(y0, y1), max(x0, x1), max(y0, y1)}
	} else {
		r.devBox[0] = min(r.devBox[0], x0, x1)
		r.devBox[1] = min(r.devBox[1], y0, y1)
		r.devBox[2] = max(r.devBox[2], x0, x1)
		r.devBox[3] = max(r.devBox[3], y0, y1)
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})
}

// accumulate adds the part of e inside scanline [y, y+1) to the cover and
// area buffers, one pixel column at a time.
func (r *Rasteriser) accumulate(e *edge, y int) {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return
	}
	dir := float32(1)
	if e.y1 < e.y0 {
		dir = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	first := int(math.Floor(min(xa, xb)))
	last := int(math.Floor(max(xa, xb)))
	if first == last {
		r.deposit(first, dir*float32(yBot-yTop), (xa+xb)/2)
		return
	}

	// The edge crosses several columns: clip it to each of them.
	for pix := first; pix <= last; pix++ {
		ya := e.y0 + (float64(pix)-e.x0)/e.dxdy
		yb := e.y0 + (float64(pix+1)-e.x0)/e.dxdy
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		r.deposit(pix, dir*float32(hi-lo), xMid)
	}
}

// deposit records an edge piece of signed height dy, centred horizontally
// at xMid, in column pix. Pieces left of the buffer cover all of the
// first column, pieces right of it have no effect.
func (r *Rasteriser) deposit(pix int, dy float32, xMid float64) {
	switch {
	case pix < r.xMin:
		r.cover[0] += dy
		r.area[0] += dy
	case pix < r.xMax:
		i := pix - r.xMin
		r.cover[i] += dy
		r.area[i] += dy * float32(1-(xMid-float64(pix)))
	}
}

// integrateNonZero turns the accumulated cover and area values into pixel
// coverage, overwriting and returning cover.
func integrateNonZero(cover, area []float32) []float32 {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		cover[i] = min(float32(math.Abs(float64(raw))), 1)
	}
	return cover
}
