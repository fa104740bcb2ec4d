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

import "sync"

// Future is a value that becomes available once, possibly on another
// goroutine. It plays the role HPX's hpx::shared_future plays in the
// original dataflow simulator: CellComponent.update chains onto a
// Future instead of waiting on a global barrier.
type Future struct {
	done  chan struct{}
	once  sync.Once
	value interface{}
	err   error
}

// NewFuture returns an unresolved Future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolve sets the Future's value and wakes every waiter. Only the first
// call has an effect.
func (f *Future) Resolve(value interface{}, err error) {
	f.once.Do(func() {
		f.value, f.err = value, err
		close(f.done)
	})
}

// Get blocks until the Future resolves and returns its value.
func (f *Future) Get() (interface{}, error) {
	<-f.done
	return f.value, f.err
}

// Done returns a channel that is closed once the Future resolves, for
// use in a select alongside a context's Done channel.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// All waits on the Futures in fs one after another and returns their
// values in order. If one resolves with an error, All returns that error
// at once, without waiting for the Futures after it.
func All(fs []*Future) ([]interface{}, error) {
	values := make([]interface{}, len(fs))
	for i, f := range fs {
		v, err := f.Get()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
