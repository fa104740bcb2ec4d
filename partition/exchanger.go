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

import "github.com/bssrdf/geodecomp"

// Exchanger distributes one rank's partial partition result to every
// other rank and returns the union, so each rank ends up with the same
// complete, agreed-upon Partition -- the Go stand-in for the MPI
// all-to-all createRegions performs.
type Exchanger interface {
	ExchangeRegions(rank, numRanks int, partial map[int]geodecomp.Coord) (map[int][]geodecomp.Coord, error)
}
