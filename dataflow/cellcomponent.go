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

import (
	"context"
	"fmt"
)

// CellComponent drives one cell's update loop, step by dataflow-resolved
// step rather than a global barrier. It generalizes
// HPXDataFlowSimulatorHelpers::CellComponent<CELL,MESSAGE>: the
// constructor there registers the component's receivers; setupDataflow
// resolves neighbor component IDs and then, for each (step, nanoStep),
// builds the receive futures and chains the next update onto them; update
// builds a Neighborhood, invokes the cell's update logic, and calls
// sendEmptyMessagesToUnnotifiedNeighbors to keep the graph live.
type CellComponent struct {
	id          int
	basename    string
	registry    *Registry
	neighborIDs []int
	cell        Cell
}

// NewCellComponent registers one Receiver per incoming edge -- one for
// each neighbor in neighborIDs, named endpointName(basename, neighborID,
// id) -- and returns a CellComponent ready to run. basename is the
// component-type name shared by every CellComponent in a run, so the
// sender and receiver of a given edge agree on its registry name without
// either having to know the other's internal bookkeeping.
func NewCellComponent(registry *Registry, basename string, id int, neighborIDs []int, cell Cell) (*CellComponent, error) {
	for _, neighborID := range neighborIDs {
		name := endpointName(basename, neighborID, id)
		r, err := registry.Make(name)
		if err != nil {
			return nil, err
		}

		// Nano-step 0 has no predecessor step for a neighbor to have sent a
		// message during, so seed it directly: every incoming edge starts
		// pre-resolved at step 0 with the cell's zero message, the genesis
		// state setupDataflow's first iteration reads.
		if err := r.Deliver(name, 0, cell.ZeroMessage()); err != nil {
			return nil, err
		}
	}

	return &CellComponent{
		id:          id,
		basename:    basename,
		registry:    registry,
		neighborIDs: neighborIDs,
		cell:        cell,
	}, nil
}

// SetupDataflow runs the cell through numNanoSteps nano-steps, stopping
// early if ctx is canceled or a step returns an error. ctx is checked
// before each nano-step; a nano-step already waiting for neighbor
// messages is not interrupted, and queued messages are not drained.
func (cc *CellComponent) SetupDataflow(ctx context.Context, numNanoSteps int64) error {
	for nanoStep := int64(0); nanoStep < numNanoSteps; nanoStep++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := cc.update(nanoStep); err != nil {
			return fmt.Errorf("cell %d, nano-step %d: %w", cc.id, nanoStep, err)
		}
	}
	return nil
}

// update runs one nano-step: wait for every neighbor's message for this
// step, run the cell's update logic against them, then fill in empty
// messages for any neighbor the update didn't explicitly notify.
func (cc *CellComponent) update(nanoStep int64) error {
	futures := make([]*Future, len(cc.neighborIDs))
	for i, neighborID := range cc.neighborIDs {
		r, err := cc.registry.Find(endpointName(cc.basename, neighborID, cc.id))
		if err != nil {
			return err
		}
		futures[i] = r.FutureFor(nanoStep)
	}

	values, err := All(futures)
	if err != nil {
		return err
	}

	nh := NewNeighborhood(cc.registry, cc.basename, cc.id, cc.neighborIDs, values, nanoStep)
	if err := cc.cell.Update(nanoStep, nh); err != nil {
		return err
	}

	return nh.SendEmptyMessagesToUnnotifiedNeighbors(cc.cell.ZeroMessage())
}
