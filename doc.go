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

// Package geodecomp provides the run-length-encoded coordinate Region, the
// adjacency and partition abstractions, and the SELL-C-sigma reordering grid
// that distributed stencil and cellular-automaton simulations are built on.
//
// Higher level pieces -- the distributed graph partitioner and the
// dataflow-scheduled cellular update engine -- live in the sibling
// partition and dataflow packages, which both import this one.
package geodecomp
