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

// Package dataflow schedules per-cell updates as a graph of futures, the
// way HPXDataFlowSimulatorHelpers::CellComponent chains dataflow objects
// instead of driving cells from a global barrier-synchronized time step.
package dataflow

// Cell is the user-supplied per-cell update logic. Message is whatever
// type neighbors exchange (a gob-encodable value or pointer, since
// messages may cross process boundaries the same way CSR partition
// exchanges do).
type Cell interface {
	// Update computes the cell's next state from its current state and
	// the messages its neighbors sent for nanoStep. neighborhood.At(id)
	// is the message received from neighbor cell id (see Neighborhood),
	// or that neighbor's ZeroMessage if it had nothing to say.
	Update(nanoStep int64, neighborhood *Neighborhood) error

	// Message returns a message value for nanoStep. CellComponent does
	// not call it: messages reach neighbors only through
	// Neighborhood.Send inside Update and the ZeroMessage fill-in.
	Message(nanoStep int64) interface{}

	// ZeroMessage returns the placeholder value sent to a neighbor a
	// cell had nothing to say to this step, so that neighbor's Receiver
	// is never left waiting forever. It must be distinguishable from
	// any real Message value the cell could emit.
	ZeroMessage() interface{}
}
