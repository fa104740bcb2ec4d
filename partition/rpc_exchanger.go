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
	"fmt"
	"log"
	"net"
	"net/http"
	"net/rpc"
	"sync"
	"time"

	"github.com/bssrdf/geodecomp"
	"github.com/cenkalti/backoff"
)

// wireCoord is Coord's gob-safe wire form: Coord keeps its fields
// unexported so Region's invariants can't be poked at from outside the
// package, but that also makes it invisible to encoding/gob, which only
// ever sees exported fields. RPCExchanger converts at the boundary.
type wireCoord struct {
	Vals []int
}

func toWire(c geodecomp.Coord) wireCoord {
	vals := make([]int, c.Dims())
	for i := range vals {
		vals[i] = c.At(i)
	}
	return wireCoord{Vals: vals}
}

func fromWire(w wireCoord) geodecomp.Coord {
	return geodecomp.NewCoord(w.Vals...)
}

// PushArgs is the payload one rank sends the hub with its partial
// assignment.
type PushArgs struct {
	Rank    int
	Partial map[int]wireCoord
}

// FetchReply is the hub's merged, all-ranks view handed back once every
// rank has pushed.
type FetchReply struct {
	Regions map[int][]wireCoord
}

// exchangeHub is the RPC service rank 0 runs; every other rank dials it.
// It mirrors the teacher's sr.Worker: a small struct registered with
// rpc.Register and served over rpc.HandleHTTP, except here the RPC calls
// are Push/Fetch instead of Calculate/Exit.
type exchangeHub struct {
	mu        sync.Mutex
	numRanks  int
	collected map[int]map[int]geodecomp.Coord
	ready     chan struct{}
	closeOnce sync.Once
}

func newExchangeHub(numRanks int) *exchangeHub {
	return &exchangeHub{
		numRanks:  numRanks,
		collected: make(map[int]map[int]geodecomp.Coord, numRanks),
		ready:     make(chan struct{}),
	}
}

// Push is called once per rank (including the hub's own rank) to submit
// its partial assignment.
func (h *exchangeHub) Push(args *PushArgs, _ *struct{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	partial := make(map[int]geodecomp.Coord, len(args.Partial))
	for id, w := range args.Partial {
		partial[id] = fromWire(w)
	}
	h.collected[args.Rank] = partial
	if len(h.collected) == h.numRanks {
		h.closeOnce.Do(func() { close(h.ready) })
	}
	return nil
}

// Fetch blocks until every rank has pushed, then returns the merged
// view. The RPC call blocking server-side is safe: net/rpc serves each
// request on its own goroutine.
func (h *exchangeHub) Fetch(_ *struct{}, reply *FetchReply) error {
	<-h.ready
	h.mu.Lock()
	defer h.mu.Unlock()
	reply.Regions = make(map[int][]wireCoord, len(h.collected))
	for rank, m := range h.collected {
		coords := make([]wireCoord, 0, len(m))
		for _, c := range m {
			coords = append(coords, toWire(c))
		}
		reply.Regions[rank] = coords
	}
	return nil
}

// RPCExchanger exchanges partition regions over net/rpc: rank 0 hosts an
// exchangeHub, and every rank, rank 0 included, dials it (with
// exponential-backoff retry, since the hub may not have started
// listening yet), pushes its partial, then fetches the merged result.
type RPCExchanger struct {
	HubAddr string // host:port of rank 0, e.g. "localhost:7070"
	ListenAt string // rank 0 only: address to listen on, e.g. ":7070"
}

// ExchangeRegions implements Exchanger.
func (e *RPCExchanger) ExchangeRegions(rank, numRanks int, partial map[int]geodecomp.Coord) (map[int][]geodecomp.Coord, error) {
	if rank == 0 {
		if err := e.serveHub(numRanks); err != nil {
			return nil, err
		}
	}

	client, err := e.dialWithRetry()
	if err != nil {
		return nil, fmt.Errorf("dialing partition exchange hub at %s: %w", e.HubAddr, err)
	}
	defer client.Close()

	wire := make(map[int]wireCoord, len(partial))
	for id, c := range partial {
		wire[id] = toWire(c)
	}
	if err := client.Call("exchangeHub.Push", &PushArgs{Rank: rank, Partial: wire}, &struct{}{}); err != nil {
		return nil, fmt.Errorf("pushing partial region for rank %d: %w", rank, err)
	}

	var reply FetchReply
	if err := client.Call("exchangeHub.Fetch", &struct{}{}, &reply); err != nil {
		return nil, fmt.Errorf("fetching merged partition: %w", err)
	}

	ret := make(map[int][]geodecomp.Coord, len(reply.Regions))
	for rank, coords := range reply.Regions {
		cs := make([]geodecomp.Coord, len(coords))
		for i, w := range coords {
			cs[i] = fromWire(w)
		}
		ret[rank] = cs
	}
	return ret, nil
}

func (e *RPCExchanger) serveHub(numRanks int) error {
	hub := newExchangeHub(numRanks)
	server := rpc.NewServer()
	if err := server.RegisterName("exchangeHub", hub); err != nil {
		return fmt.Errorf("registering partition exchange hub: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle(rpc.DefaultRPCPath, server)

	l, err := net.Listen("tcp", e.ListenAt)
	if err != nil {
		return fmt.Errorf("listening for partition exchange on %s: %w", e.ListenAt, err)
	}
	go func() {
		log.Printf("partition exchange hub listening on %s", l.Addr())
		if err := http.Serve(l, mux); err != nil {
			log.Printf("partition exchange hub stopped: %v", err)
		}
	}()
	return nil
}

// dialWithRetry dials the hub, retrying with exponential backoff since
// rank 0's listener may still be starting up.
func (e *RPCExchanger) dialWithRetry() (*rpc.Client, error) {
	var client *rpc.Client
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 30 * time.Second
	err := backoff.Retry(func() error {
		c, err := rpc.DialHTTP("tcp", e.HubAddr)
		if err != nil {
			return err
		}
		client = c
		return nil
	}, b)
	return client, err
}
