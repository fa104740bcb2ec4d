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
	"sync"

	"github.com/bssrdf/geodecomp"
)

// LocalExchanger is an in-process Exchanger for single-binary tests and
// demos: every rank runs as a goroutine sharing one LocalExchanger value.
// It barriers on all numRanks calls arriving before any of them returns,
// then hands every caller the same merged view. A LocalExchanger is
// single-use; build a fresh one per DistributedPartitioner.Run.
type LocalExchanger struct {
	numRanks  int
	mu        sync.Mutex
	collected map[int]map[int]geodecomp.Coord
	barrier   sync.WaitGroup
}

// NewLocalExchanger returns a LocalExchanger for numRanks participants.
func NewLocalExchanger(numRanks int) *LocalExchanger {
	le := &LocalExchanger{
		numRanks:  numRanks,
		collected: make(map[int]map[int]geodecomp.Coord, numRanks),
	}
	le.barrier.Add(numRanks)
	return le
}

// ExchangeRegions implements Exchanger.
func (le *LocalExchanger) ExchangeRegions(rank, numRanks int, partial map[int]geodecomp.Coord) (map[int][]geodecomp.Coord, error) {
	le.mu.Lock()
	le.collected[rank] = partial
	le.mu.Unlock()

	le.barrier.Done()
	le.barrier.Wait()

	le.mu.Lock()
	defer le.mu.Unlock()
	ret := make(map[int][]geodecomp.Coord, len(le.collected))
	for r, m := range le.collected {
		coords := make([]geodecomp.Coord, 0, len(m))
		for _, c := range m {
			coords = append(coords, c)
		}
		ret[r] = coords
	}
	return ret, nil
}
