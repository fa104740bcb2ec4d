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
	"github.com/bssrdf/geodecomp"
	"github.com/gonum/floats"
)

// LinearBackend slices cells [0, N) into numRanks contiguous ranges whose
// sizes differ by at most one, the same getStartEnd computation
// DistributedPTScotchUnstructuredPartition falls back to before it even
// considers the graph's edges. It ignores weights and the graph
// structure entirely; GreedyEdgeCut below is usually the better choice.
type LinearBackend struct{}

// Partition implements Backend.
func (LinearBackend) Partition(csr *geodecomp.CSR, weights []float64, numRanks int) ([]int, error) {
	n := csr.NumCells()
	assignment := make([]int, n)
	for rank := 0; rank < numRanks; rank++ {
		start, end := getStartEnd(n, numRanks, rank)
		for i := start; i < end; i++ {
			assignment[i] = rank
		}
	}
	return assignment, nil
}

func getStartEnd(n, numRanks, rank int) (int, int) {
	start := rank * n / numRanks
	end := (rank + 1) * n / numRanks
	return start, end
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// GreedyEdgeCut grows each rank's territory outward from a seed cell by
// repeatedly letting the rank furthest below the ideal per-rank weight
// claim every unassigned neighbor of the next cell on its frontier, a
// cheap stand-in
// for the BFS/KL-refinement style graph bisection SCOTCH_dgraphPart
// performs. It is the default Backend: it uses edge information (unlike
// LinearBackend) without depending on any external graph partitioning
// library.
type GreedyEdgeCut struct{}

// Partition implements Backend.
func (GreedyEdgeCut) Partition(csr *geodecomp.CSR, weights []float64, numRanks int) ([]int, error) {
	n := csr.NumCells()
	if weights == nil {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1
		}
	}
	total := floats.Sum(weights)
	target := total / float64(numRanks)

	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = -1
	}
	rankWeight := make([]float64, numRanks)
	frontier := make([][]int, numRanks)

	seeds := seedCells(n, numRanks)
	for rank, seed := range seeds {
		assignment[seed] = rank
		rankWeight[rank] += weights[seed]
		frontier[rank] = append(frontier[rank], seed)
	}

	remaining := n - len(seeds)
	for remaining > 0 {
		rank := leastLoadedRank(rankWeight, target)
		grown := false
		for len(frontier[rank]) > 0 && !grown {
			cell := frontier[rank][0]
			frontier[rank] = frontier[rank][1:]
			for _, nb := range csr.Neighbors(cell) {
				if assignment[nb] != -1 {
					continue
				}
				assignment[nb] = rank
				rankWeight[rank] += weights[nb]
				frontier[rank] = append(frontier[rank], nb)
				remaining--
				grown = true
			}
		}
		if !grown {
			// rank's frontier is exhausted (disconnected component): hand
			// its budget to the next cell anyone can still reach.
			assigned := false
			for i := 0; i < n; i++ {
				if assignment[i] == -1 {
					assignment[i] = rank
					rankWeight[rank] += weights[i]
					frontier[rank] = append(frontier[rank], i)
					remaining--
					assigned = true
					break
				}
			}
			if !assigned {
				break
			}
		}
	}
	return assignment, nil
}

func seedCells(n, numRanks int) []int {
	if numRanks > n {
		numRanks = n
	}
	seeds := make([]int, numRanks)
	for i := range seeds {
		start, _ := getStartEnd(n, numRanks, i)
		seeds[i] = start
	}
	return seeds
}

func leastLoadedRank(rankWeight []float64, target float64) int {
	best := 0
	bestDeficit := target - rankWeight[0]
	for r := 1; r < len(rankWeight); r++ {
		deficit := target - rankWeight[r]
		if deficit > bestDeficit {
			bestDeficit = deficit
			best = r
		}
	}
	return best
}
