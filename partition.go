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

// Partition maps cell IDs to ranks. Implementations (the partition
// package's DistributedPartitioner, or a hand-built test fixture) hand
// back one Region per rank; PartitionManager wraps a Partition to answer
// the questions a running simulation actually asks: my own region, my
// ghost zone, and who my neighbors are.
type Partition interface {
	// Region returns the coordinates owned by rank.
	Region(rank int) *Region

	// NumRanks returns the number of ranks the partition spans.
	NumRanks() int
}

// PartitionManager answers region-ownership questions for a single rank
// of a Partition, generalizing the bookkeeping
// DistributedPTScotchUnstructuredPartition::createRegions performs when it
// exchanges partial regions between MPI ranks.
type PartitionManager struct {
	partition Partition
	rank      int
	adjacency Adjacency
}

// NewPartitionManager returns a manager for the given rank of partition,
// using adjacency to compute ghost zones and neighbor ranks.
func NewPartitionManager(partition Partition, rank int, adjacency Adjacency) *PartitionManager {
	return &PartitionManager{partition: partition, rank: rank, adjacency: adjacency}
}

// OwnRegion returns the coordinates owned by this manager's rank.
func (pm *PartitionManager) OwnRegion() *Region {
	return pm.partition.Region(pm.rank)
}

// GhostZone returns the coordinates within width hops (via adjacency,
// not Region.Expand's Chebyshev distance) of the rank's own region but
// owned by some other rank.
func (pm *PartitionManager) GhostZone(width int) *Region {
	own := pm.OwnRegion()
	ownIDs := make(map[int]bool)
	for _, c := range own.Coords() {
		ownIDs[coordToID(c)] = true
	}

	frontier := make(map[int]bool)
	for id := range ownIDs {
		frontier[id] = true
	}

	ghost := NewRegion(own.Dims())
	ghostIDs := make(map[int]bool)
	for i := 0; i < width; i++ {
		next := make(map[int]bool)
		for id := range frontier {
			for _, nb := range pm.adjacency.NeighborsOf(id) {
				if ownIDs[nb] || ghostIDs[nb] {
					continue
				}
				ghostIDs[nb] = true
				next[nb] = true
			}
		}
		frontier = next
	}

	for rank := 0; rank < pm.partition.NumRanks(); rank++ {
		if rank == pm.rank {
			continue
		}
		for _, c := range pm.partition.Region(rank).Coords() {
			if ghostIDs[coordToID(c)] {
				ghost.InsertCoord(c)
			}
		}
	}
	return ghost
}

// NeighborRanks returns the ranks that own at least one cell in the
// ghost zone of width 1.
func (pm *PartitionManager) NeighborRanks() []int {
	ghostIDs := make(map[int]bool)
	for _, c := range pm.GhostZone(1).Coords() {
		ghostIDs[coordToID(c)] = true
	}

	var ranks []int
	for rank := 0; rank < pm.partition.NumRanks(); rank++ {
		if rank == pm.rank {
			continue
		}
		for _, c := range pm.partition.Region(rank).Coords() {
			if ghostIDs[coordToID(c)] {
				ranks = append(ranks, rank)
				break
			}
		}
	}
	return ranks
}

// coordToID maps a Coord to the cell ID used by Adjacency/CSR. It is a
// placeholder row-major bijection with a fixed stride of 1<<16 per axis
// (id = x + y<<16 + z<<32 + ...), so it matches a 1D domain's IDs (id ==
// x) and grid IDs laid out with that same stride, not the row-major IDs
// of an arbitrary CoordBox; callers that need a different ID scheme
// build their own Adjacency and bypass PartitionManager's
// ghost-zone/neighbor helpers.
func coordToID(c Coord) int {
	id := 0
	mul := 1
	for axis := 0; axis < c.Dims(); axis++ {
		id += c.At(axis) * mul
		mul *= 1 << 16
	}
	return id
}
