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

// Package partition builds a Partition (geodecomp.Partition) for a
// distributed run by slicing a weighted cell graph across ranks, the way
// DistributedPTScotchUnstructuredPartition slices a CSR graph across MPI
// ranks in the original source.
package partition

import "github.com/bssrdf/geodecomp"

// Backend assigns each cell in a CSR graph to a rank. Rank count is
// implicit in the returned slice: the number of distinct values is the
// number of ranks the backend chose to use, which may be fewer than
// requested for small or disconnected graphs.
//
// Backend.Partition does not retry internally: a backend that fails
// (library error, infeasible constraints) returns the error immediately
// and DistributedPartitioner wraps it in a PartitionBackendError. Dial
// retry for the RPC Exchanger is a transport-layer concern, handled
// separately by RPCExchanger.
type Backend interface {
	// Partition returns, for each of csr.NumCells() cells, the rank it
	// is assigned to. weights, if non-nil, has one entry per cell and
	// biases the split toward equalizing summed weight rather than
	// raw cell count.
	Partition(csr *geodecomp.CSR, weights []float64, numRanks int) ([]int, error)
}
