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

import "github.com/gonum/floats"

// WeightsFromRegion returns numCells weights, one per cell ID 0..numCells-1,
// each set to cellWeight: the uniform weights slice Backend.Partition
// expects. It does not read a geodecomp.Region itself; a caller passes the
// cell count (for example a Region's Size()).
func WeightsFromRegion(numCells int, cellWeight float64) []float64 {
	w := make([]float64, numCells)
	for i := range w {
		w[i] = cellWeight
	}
	return w
}

// Imbalance returns the ratio of the heaviest rank's summed weight to the
// ideal (perfectly balanced) per-rank weight; 1.0 is perfect balance.
func Imbalance(weights []float64, assignment []int, numRanks int) float64 {
	total := floats.Sum(weights)
	if total == 0 || numRanks == 0 {
		return 1
	}
	ideal := total / float64(numRanks)

	rankWeight := make([]float64, numRanks)
	for i, rank := range assignment {
		rankWeight[rank] += weights[i]
	}
	max := floats.Max(rankWeight)
	return max / ideal
}
