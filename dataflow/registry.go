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
	"fmt"
	"sync"

	"github.com/bssrdf/geodecomp"
)

// endpointName returns the registry name of the directed message edge from
// sender to receiver under basename, matching
// HPXDataFlowSimulatorHelpers::endpointName's
// "<basename>_<sender>_to_<receiver>" convention: one name per directed
// edge, not per cell, so a cell with several neighbors can be sent a
// distinct message by each of them without their sends colliding.
func endpointName(basename string, sender, receiver int) string {
	return fmt.Sprintf("%s_%d_to_%d", basename, sender, receiver)
}

// Receiver is the mailbox of one directed edge into a cell: one Future
// per global nano-step, created
// lazily the first time either side (the sender delivering a message, or
// the receiver's own update loop waiting for one) touches that step.
// This lazy-create-on-first-touch is exactly what lets setupDataflow
// build its receive futures before neighbors have necessarily sent
// anything yet.
type Receiver struct {
	mu        sync.Mutex
	futures   map[int64]*Future
	delivered map[int64]bool
}

func newReceiver() *Receiver {
	return &Receiver{
		futures:   make(map[int64]*Future),
		delivered: make(map[int64]bool),
	}
}

// FutureFor returns the Future a cell's update loop should wait on for
// messages sent at nanoStep, creating it if this is the first reference.
func (r *Receiver) FutureFor(nanoStep int64) *Future {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.futureForLocked(nanoStep)
}

func (r *Receiver) futureForLocked(nanoStep int64) *Future {
	f, ok := r.futures[nanoStep]
	if !ok {
		f = NewFuture()
		r.futures[nanoStep] = f
	}
	return f
}

// Deliver resolves the Future for nanoStep with msg. A second delivery
// for the same step is rejected with a DuplicateMessageError rather than
// silently overwriting the first -- each cell sends at most one message
// per neighbor per step, so a repeat delivery signals a bug upstream.
func (r *Receiver) Deliver(name string, nanoStep int64, msg interface{}) error {
	r.mu.Lock()
	if r.delivered[nanoStep] {
		r.mu.Unlock()
		return &geodecomp.DuplicateMessageError{Name: name, GlobalNanoStep: nanoStep}
	}
	r.delivered[nanoStep] = true
	f := r.futureForLocked(nanoStep)
	r.mu.Unlock()

	f.Resolve(msg, nil)
	return nil
}

// Registry maps endpoint (directed edge) names to their Receiver, the
// dataflow engine's
// analogue of the component ID AGAS resolves a remoteID to in the
// original HPX-based simulator.
type Registry struct {
	mu        sync.Mutex
	receivers map[string]*Receiver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{receivers: make(map[string]*Receiver)}
}

// Make registers a new Receiver under name. It returns a NameInUseError
// if name is already registered.
func (reg *Registry) Make(name string) (*Receiver, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.receivers[name]; ok {
		return nil, &geodecomp.NameInUseError{Name: name}
	}
	r := newReceiver()
	reg.receivers[name] = r
	return r, nil
}

// Find looks up the Receiver registered under name. It returns a
// NameNotFoundError if none is registered.
func (reg *Registry) Find(name string) (*Receiver, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	r, ok := reg.receivers[name]
	if !ok {
		return nil, &geodecomp.NameNotFoundError{Name: name}
	}
	return r, nil
}
