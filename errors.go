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

import "fmt"

// RegionInvalidStreakError describes a Streak whose EndX does not lie
// beyond its origin. No function in this module returns it: Region.Insert
// and Region.Remove silently ignore such streaks.
type RegionInvalidStreakError struct {
	Streak Streak
}

func (e *RegionInvalidStreakError) Error() string {
	return fmt.Sprintf("geodecomp: invalid streak %v: endX must be greater than origin.x", e.Streak)
}

// UnknownNeighborError is returned when a Neighborhood is indexed or sent to
// with a cell ID that is not one of the cell's registered neighbors.
type UnknownNeighborError struct {
	ID int
}

func (e *UnknownNeighborError) Error() string {
	return fmt.Sprintf("geodecomp: %d is not a neighbor of this cell", e.ID)
}

// NameInUseError is returned by Registry.Make when the requested endpoint
// name is already registered.
type NameInUseError struct {
	Name string
}

func (e *NameInUseError) Error() string {
	return fmt.Sprintf("geodecomp: endpoint %q is already registered", e.Name)
}

// NameNotFoundError is returned by Registry.Find when an endpoint name has
// no registered receiver at the time of the call.
type NameNotFoundError struct {
	Name string
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("geodecomp: no endpoint registered for %q", e.Name)
}

// DuplicateMessageError is returned when two Receiver.Deliver calls target
// the same (endpoint, globalNanoStep) pair.
type DuplicateMessageError struct {
	Name           string
	GlobalNanoStep int64
}

func (e *DuplicateMessageError) Error() string {
	return fmt.Sprintf("geodecomp: duplicate put at endpoint %q for global nano-step %d", e.Name, e.GlobalNanoStep)
}

// PartitionBackendError wraps a failure reported by a pluggable graph
// partitioning Backend.
type PartitionBackendError struct {
	Err error
}

func (e *PartitionBackendError) Error() string {
	return fmt.Sprintf("geodecomp: partition backend failed: %v", e.Err)
}

func (e *PartitionBackendError) Unwrap() error { return e.Err }

// TransportError wraps a failure reported by the inter-rank communication
// layer (an Exchanger).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("geodecomp: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UnsupportedOperationError is returned by operations that are
// intentionally unimplemented, such as resizing a ReorderingUnstructuredGrid.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("geodecomp: unsupported operation: %s", e.Op)
}
