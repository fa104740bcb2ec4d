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

package partition

import (
	"fmt"

	"github.com/bssrdf/geodecomp"
)

// DistributedPartitioner assigns a geodecomp.Region of cells to each rank
// by running a Backend over the cell graph's CSR form, then exchanging
// each rank's partial assignment with every other rank so all ranks agree
// on the full Partition -- the same two-phase structure
// DistributedPTScotchUnstructuredPartition::createRegions uses: a local
// SCOTCH_dgraphPart call followed by an MPI all-to-all of partial
// regions.
type DistributedPartitioner struct {
	backend   Backend
	adjacency geodecomp.Adjacency
	cells     []geodecomp.Coord // cell ID -> Coord, for building Region
	numRanks  int

	regions []*geodecomp.Region // one per rank, filled in by Run
}

// NewDistributedPartitioner returns a partitioner over adjacency using
// backend, where cells[i] gives the Coord for cell ID i.
func NewDistributedPartitioner(backend Backend, adjacency geodecomp.Adjacency, cells []geodecomp.Coord, numRanks int) *DistributedPartitioner {
	return &DistributedPartitioner{
		backend:   backend,
		adjacency: adjacency,
		cells:     cells,
		numRanks:  numRanks,
	}
}

// Run computes the partition: builds the CSR graph, calls the backend,
// and (via exchanger) shares each rank's partial result with all others.
// Every rank must call Run with the same weights so they compute an
// identical assignment; exchanger then merges every rank's partial into
// the global view, the way createRegions exchanges partial regions. The
// partials are not compared, so ranks that computed different
// assignments are not detected.
func (p *DistributedPartitioner) Run(weights []float64, rank int, exchanger Exchanger) error {
	csr := geodecomp.BuildCSR(p.adjacency)
	assignment, err := p.backend.Partition(csr, weights, p.numRanks)
	if err != nil {
		return &geodecomp.PartitionBackendError{Err: err}
	}

	partial := make(map[int]geodecomp.Coord)
	for id, r := range assignment {
		if r == rank {
			partial[id] = p.cells[id]
		}
	}

	all, err := exchanger.ExchangeRegions(rank, p.numRanks, partial)
	if err != nil {
		return &geodecomp.TransportError{Err: fmt.Errorf("exchanging partition regions: %w", err)}
	}

	p.regions = make([]*geodecomp.Region, p.numRanks)
	dims := 1
	if len(p.cells) > 0 {
		dims = p.cells[0].Dims()
	}
	for r := 0; r < p.numRanks; r++ {
		p.regions[r] = geodecomp.NewRegion(dims)
	}
	for r, coords := range all {
		for _, c := range coords {
			p.regions[r].InsertCoord(c)
		}
	}
	return nil
}

// Region implements geodecomp.Partition.
func (p *DistributedPartitioner) Region(rank int) *geodecomp.Region {
	return p.regions[rank]
}

// NumRanks implements geodecomp.Partition.
func (p *DistributedPartitioner) NumRanks() int {
	return p.numRanks
}
