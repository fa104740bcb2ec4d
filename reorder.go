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
	"fmt"
	"sort"
)

// MatrixCoord addresses one entry of a sparse weight matrix: (Row, Col).
type MatrixCoord struct {
	Row, Col int
}

// ReorderingUnstructuredGrid rearranges a node set's logical IDs into a
// physical layout that groups rows of similar length within SIGMA-sized
// windows -- the SELL-C-σ scheme -- so a delegate grid's physical
// storage order matches what a vectorized sparse-matrix kernel wants.
// It mirrors the original ReorderingUnstructuredGrid<DELEGATE_GRID>,
// minus the handful of methods ("fixme" in the original) it never
// finished: Get/Set/SaveRegion/LoadRegion are implemented here instead
// of left as stubs.
type ReorderingUnstructuredGrid struct {
	nodeSet *Region
	sigma   int

	logicalToPhysical map[int]int
	physicalToLogical []int

	cells map[int]interface{} // keyed by logical ID
	edge  interface{}
}

// NewReorderingUnstructuredGrid returns a grid over nodeSet with the
// given SIGMA (sort window size); SIGMA=1 disables reordering (physical
// order equals nodeSet's streak order).
func NewReorderingUnstructuredGrid(nodeSet *Region, sigma int) *ReorderingUnstructuredGrid {
	if sigma < 1 {
		sigma = 1
	}
	g := &ReorderingUnstructuredGrid{
		nodeSet: nodeSet,
		sigma:   sigma,
		cells:   make(map[int]interface{}),
	}
	g.SetWeights(nil)
	return g
}

// SetWeights rebuilds the logical<->physical ID mapping from a sparse
// weight matrix: nodes are grouped into SIGMA-sized windows (in the
// node set's streak order) and stable-sorted by descending row length
// within each window, exactly as the original setWeights does with
// std::stable_sort over reorderedRowLengths.
func (g *ReorderingUnstructuredGrid) SetWeights(matrix map[MatrixCoord]float64) {
	rowLengths := make(map[int]int)
	for c := range matrix {
		rowLengths[c.Row]++
	}

	type rowLen struct {
		id     int
		length int
	}
	reordered := make([]rowLen, 0, g.nodeSet.Size())
	for _, c := range g.nodeSet.Coords() {
		reordered = append(reordered, rowLen{id: c.X(), length: rowLengths[c.X()]})
	}

	for start := 0; start < len(reordered); start += g.sigma {
		end := start + g.sigma
		if end > len(reordered) {
			end = len(reordered)
		}
		window := reordered[start:end]
		sort.SliceStable(window, func(i, j int) bool {
			return window[i].length > window[j].length
		})
	}

	g.logicalToPhysical = make(map[int]int, len(reordered))
	g.physicalToLogical = make([]int, len(reordered))
	for physicalID, rl := range reordered {
		g.logicalToPhysical[rl.id] = physicalID
		g.physicalToLogical[physicalID] = rl.id
	}
}

// NumNodes returns the size of the grid's node set.
func (g *ReorderingUnstructuredGrid) NumNodes() int {
	return len(g.physicalToLogical)
}

// PhysicalID returns the physical slot logicalID is stored at.
func (g *ReorderingUnstructuredGrid) PhysicalID(logicalID int) (int, bool) {
	p, ok := g.logicalToPhysical[logicalID]
	return p, ok
}

// LogicalID returns the logical node ID stored at physical slot
// physicalID.
func (g *ReorderingUnstructuredGrid) LogicalID(physicalID int) int {
	return g.physicalToLogical[physicalID]
}

// Resize is not supported: a ReorderingUnstructuredGrid's extent is
// fixed by its node set and weight matrix at construction time, exactly
// as the original's resize() rejects any call with a logic_error.
func (g *ReorderingUnstructuredGrid) Resize(box CoordBox) error {
	return &UnsupportedOperationError{Op: "ReorderingUnstructuredGrid.Resize"}
}

// Set stores cell at logical node ID c.X().
func (g *ReorderingUnstructuredGrid) Set(c Coord, cell interface{}) {
	g.cells[c.X()] = cell
}

// Get returns the cell stored at logical node ID c.X().
func (g *ReorderingUnstructuredGrid) Get(c Coord) interface{} {
	return g.cells[c.X()]
}

// SetEdge sets the grid's out-of-bounds edge cell value.
func (g *ReorderingUnstructuredGrid) SetEdge(cell interface{}) {
	g.edge = cell
}

// GetEdge returns the grid's out-of-bounds edge cell value.
func (g *ReorderingUnstructuredGrid) GetEdge() interface{} {
	return g.edge
}

// BoundingBox returns the node set's bounding box.
func (g *ReorderingUnstructuredGrid) BoundingBox() CoordBox {
	return g.nodeSet.BoundingBox()
}

// wireCell is one (logical ID, cell value) record in a SaveRegion
// buffer.
type wireCell struct {
	LogicalID int
	Cell      interface{}
}

// SaveRegion serializes every cell in region (which must be a subset of
// the grid's node set) in region's own streak iteration order. Using
// the caller-supplied region's order, rather than this grid's physical
// order, is the resolution to the original's "load/save need to observe
// ordering from original region to avoid clashes with remote side":
// the sender and receiver agree on an order without either having to
// know the other's physical layout.
func (g *ReorderingUnstructuredGrid) SaveRegion(region *Region) []wireCell {
	buf := make([]wireCell, 0, region.Size())
	for _, c := range region.Coords() {
		buf = append(buf, wireCell{LogicalID: c.X(), Cell: g.cells[c.X()]})
	}
	return buf
}

// LoadRegion is SaveRegion's inverse: it stores each record back at its
// logical ID, trusting the order buf was built in (normally the
// sender's SaveRegion(region) for the same region) rather than this
// grid's own physical order.
func (g *ReorderingUnstructuredGrid) LoadRegion(buf []wireCell, region *Region) error {
	coords := region.Coords()
	if len(buf) != len(coords) {
		return fmt.Errorf("geodecomp: LoadRegion buffer has %d records, region has %d coordinates", len(buf), len(coords))
	}
	for i, rec := range buf {
		if rec.LogicalID != coords[i].X() {
			return fmt.Errorf("geodecomp: LoadRegion buffer order does not match region order at index %d", i)
		}
		g.cells[rec.LogicalID] = rec.Cell
	}
	return nil
}
