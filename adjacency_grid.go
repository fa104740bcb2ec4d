/*
Copyright © 2013 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package geodecomp

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// GridAdjacency builds Adjacency for a structured Cartesian grid by
// spatial query rather than by enumerating a fixed stencil, the way the
// teacher builds a Cell's neighbors via its rtree index (see
// neighborInfo/setNeighbors). Axes 0 and 1 (x, y) are indexed in the
// tree; any further axes (z, ...) are matched exactly, mirroring the
// Layer check getCells performs after the spatial query.
type GridAdjacency struct {
	tree    *rtree.Rtree
	entries map[int]*gridEntry
	cell    Coord // per-axis cell size; axes 0 and 1 drive the rtree box
}

type gridEntry struct {
	id     int
	coord  Coord
	bounds geom.Bounds
}

func (e *gridEntry) Bounds() *geom.Bounds { return &e.bounds }

// NewGridAdjacency returns a GridAdjacency for cells spaced cell units
// apart along each axis.
func NewGridAdjacency(cell Coord) *GridAdjacency {
	return &GridAdjacency{
		tree:    rtree.NewTree(25, 50),
		entries: make(map[int]*gridEntry),
		cell:    cell,
	}
}

// Add registers cell id at grid coordinate c.
func (g *GridAdjacency) Add(id int, c Coord) {
	dx, dy := float64(g.cell.At(0)), 1.0
	if c.Dims() > 1 {
		dy = float64(g.cell.At(1))
	}
	x, y := float64(c.X()), 0.0
	if c.Dims() > 1 {
		y = float64(c.At(1))
	}
	e := &gridEntry{
		id:    id,
		coord: c,
		bounds: geom.Bounds{
			Min: geom.Point{X: x, Y: y},
			Max: geom.Point{X: x + dx, Y: y + dy},
		},
	}
	g.entries[id] = e
	g.tree.Insert(e)
}

// NumCells implements Adjacency.
func (g *GridAdjacency) NumCells() int { return len(g.entries) }

// NeighborsOf implements Adjacency, querying the rtree for every entry
// whose cell overlaps id's cell grown by half a cell on each side in x/y
// -- the 8-connected ring, diagonals included -- and matches exactly on
// every axis beyond x/y (so cells in adjacent z layers are not neighbors).
func (g *GridAdjacency) NeighborsOf(id int) []int {
	e, ok := g.entries[id]
	if !ok {
		return nil
	}
	dx, dy := float64(g.cell.At(0)), 1.0
	if e.coord.Dims() > 1 {
		dy = float64(g.cell.At(1))
	}
	search := &geom.Bounds{
		Min: geom.Point{X: e.bounds.Min.X - dx/2, Y: e.bounds.Min.Y - dy/2},
		Max: geom.Point{X: e.bounds.Max.X + dx/2, Y: e.bounds.Max.Y + dy/2},
	}

	var ret []int
	for _, hitI := range g.tree.SearchIntersect(search) {
		hit := hitI.(*gridEntry)
		if hit.id == id {
			continue
		}
		if !sameHigherAxes(e.coord, hit.coord) {
			continue
		}
		ret = append(ret, hit.id)
	}
	return ret
}

func sameHigherAxes(a, b Coord) bool {
	for axis := 2; axis < a.Dims(); axis++ {
		if a.At(axis) != b.At(axis) {
			return false
		}
	}
	return true
}
