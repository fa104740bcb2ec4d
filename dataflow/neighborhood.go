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

package dataflow

import "github.com/bssrdf/geodecomp"

// Neighborhood is a cell's view of its neighbors for one nano-step: the
// messages already received (indexed by neighbor cell ID) and a way to
// send this step's outgoing messages. It generalizes
// HPXDataFlowSimulatorHelpers::Neighborhood<MESSAGE>, whose operator[]
// likewise hands back an already-resolved neighbor value and whose
// send()/sendEmptyMessagesToUnnotifiedNeighbors() drive the progress
// guarantee below.
type Neighborhood struct {
	registry    *Registry
	basename    string
	senderID    int
	neighborIDs []int
	messages    []interface{}
	notified    map[int]bool
	nanoStep    int64
}

// NewNeighborhood builds a Neighborhood for senderID's update at
// nanoStep. messages[i] is the already-resolved message received from
// neighborIDs[i] (that neighbor's ZeroMessage if it sent nothing
// explicitly). basename and
// senderID let Send address the outgoing edge from senderID to each
// neighbor without the caller having to supply a name.
func NewNeighborhood(registry *Registry, basename string, senderID int, neighborIDs []int, messages []interface{}, nanoStep int64) *Neighborhood {
	return &Neighborhood{
		registry:    registry,
		basename:    basename,
		senderID:    senderID,
		neighborIDs: neighborIDs,
		messages:    messages,
		notified:    make(map[int]bool),
		nanoStep:    nanoStep,
	}
}

func (n *Neighborhood) indexOf(neighborID int) (int, error) {
	for i, id := range n.neighborIDs {
		if id == neighborID {
			return i, nil
		}
	}
	return 0, &geodecomp.UnknownNeighborError{ID: neighborID}
}

// At returns the message received from neighborID for this nano-step.
func (n *Neighborhood) At(neighborID int) (interface{}, error) {
	i, err := n.indexOf(neighborID)
	if err != nil {
		return nil, err
	}
	return n.messages[i], nil
}

// Send delivers msg to neighborID on the outgoing edge from this
// Neighborhood's own cell to neighborID, for the following nano-step,
// and records that neighborID has now been notified. The edge is named
// endpointName(basename, senderID, neighborID), the directed edge the
// neighbor's own CellComponent registered a Receiver for -- so the
// neighbor, not the sender, is the one who later reads this message
// back out.
func (n *Neighborhood) Send(neighborID int, msg interface{}) error {
	if _, err := n.indexOf(neighborID); err != nil {
		return err
	}
	name := endpointName(n.basename, n.senderID, neighborID)
	r, err := n.registry.Find(name)
	if err != nil {
		return err
	}
	if err := r.Deliver(name, n.nanoStep+1, msg); err != nil {
		return err
	}
	n.notified[neighborID] = true
	return nil
}

// SendEmptyMessagesToUnnotifiedNeighbors sends zero as a placeholder
// message to every neighbor Send was not explicitly called for this
// step. Without this, a cell that has nothing to tell a neighbor this
// step would leave that neighbor's Receiver waiting forever -- the same
// liveness hazard sendEmptyMessagesToUnnotifiedNeighbors closes in the
// original simulator.
func (n *Neighborhood) SendEmptyMessagesToUnnotifiedNeighbors(zero interface{}) error {
	for _, id := range n.neighborIDs {
		if n.notified[id] {
			continue
		}
		if err := n.Send(id, zero); err != nil {
			return err
		}
	}
	return nil
}
