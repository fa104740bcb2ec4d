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

// CSR is a compressed-sparse-row adjacency representation: cell i's
// neighbors are RowIndex[Offsets[i]:Offsets[i+1]]. It is the exchange
// format between Adjacency and the partitioner backends
// (ReorderingUnstructuredGrid takes its weights as a MatrixCoord map
// instead), mirroring the xadj/adjncy arrays
// initIndices builds for SCOTCH_dgraphBuild in the original source.
type CSR struct {
	Offsets  []int
	RowIndex []int
}

// BuildCSR flattens adj into CSR form, over cell IDs [0, adj.NumCells()).
func BuildCSR(adj Adjacency) *CSR {
	n := adj.NumCells()
	c := &CSR{Offsets: make([]int, n+1)}
	for i := 0; i < n; i++ {
		c.Offsets[i+1] = c.Offsets[i] + len(adj.NeighborsOf(i))
	}
	c.RowIndex = make([]int, 0, c.Offsets[n])
	for i := 0; i < n; i++ {
		c.RowIndex = append(c.RowIndex, adj.NeighborsOf(i)...)
	}
	return c
}

// Neighbors returns cell i's neighbor IDs.
func (c *CSR) Neighbors(i int) []int {
	return c.RowIndex[c.Offsets[i]:c.Offsets[i+1]]
}

// NumCells returns the number of rows (cells) in the CSR graph.
func (c *CSR) NumCells() int {
	return len(c.Offsets) - 1
}
