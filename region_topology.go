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

// Topology reports, per axis, whether the grid wraps around on that axis
// (a torus on that dimension) or has a hard edge.
type Topology interface {
	WrapsAxis(axis int) bool
}

// simpleTopology is a Topology backed by a fixed per-axis bool vector.
type simpleTopology struct {
	wraps [maxDims]bool
}

// NewTopology builds a Topology from one bool per axis: wraps[i] is true if
// the grid wraps around on axis i.
func NewTopology(wraps ...bool) Topology {
	var t simpleTopology
	copy(t.wraps[:], wraps)
	return t
}

func (t simpleTopology) WrapsAxis(axis int) bool { return t.wraps[axis] }

// Normalize maps a Coord onto the [0, extent) box, wrapping axes topology
// reports as periodic and rejecting out-of-range axes that are not. It
// replaces the out-of-bounds sentinel value the original C++ normalize()
// returned with a tagged (Coord, bool) result, per the redesign note in
// SPEC_FULL.md §3.
func Normalize(c Coord, extent Coord, topology Topology) (Coord, bool) {
	dims := c.Dims()
	out := c
	for axis := 0; axis < dims; axis++ {
		v := c.At(axis)
		e := extent.At(axis)
		if topology != nil && topology.WrapsAxis(axis) {
			if e <= 0 {
				return Coord{}, false
			}
			v = ((v % e) + e) % e
		} else if v < 0 || (e > 0 && v >= e) {
			return Coord{}, false
		}
		out = out.With(axis, v)
	}
	return out, true
}

// Expand returns a new Region containing every coordinate of r together
// with every coordinate within Chebyshev distance width of it -- the
// Minkowski sum of r with a (2*width+1)^Dims box. It is computed as a
// separable dilation, one axis at a time, rather than a literal cross
// product of shifts, matching the axis-by-axis structure
// NewRegion::expand() uses in the original source.
func (r *Region) Expand(width int) *Region {
	ret := r.Clone()
	for axis := 0; axis < r.dims; axis++ {
		ret = ret.expandAlongAxis(axis, width)
	}
	return ret
}

func (r *Region) expandAlongAxis(axis, width int) *Region {
	ret := NewRegion(r.dims)
	for off := -width; off <= width; off++ {
		ret.UnionWith(r.shiftedAlongAxis(axis, off))
	}
	return ret
}

func (r *Region) shiftedAlongAxis(axis, off int) *Region {
	ret := NewRegion(r.dims)
	for it := r.beginStreakCursor(); !r.cursorAtEnd(it); r.advanceStreakCursor(it) {
		s := r.streakAt(it)
		if axis == 0 {
			ret.Insert(Streak{Origin: s.Origin.With(0, s.Origin.X()+off), EndX: s.EndX + off})
		} else {
			ret.Insert(Streak{Origin: s.Origin.With(axis, s.Origin.At(axis)+off), EndX: s.EndX})
		}
	}
	return ret
}

// ExpandWithTopology is Expand, followed by wrapping or dropping each
// resulting coordinate per topology and extent (see Normalize). A
// coordinate that leaves the grid on a non-wrapping axis during the
// dilation stays out of range regardless of which axis is expanded next,
// so normalizing once over the fully dilated set is equivalent to --
// and simpler than -- normalizing the grown streaks axis by axis.
func (r *Region) ExpandWithTopology(width int, extent Coord, topology Topology) *Region {
	dilated := r.Expand(width)
	ret := NewRegion(r.dims)
	for it := dilated.BeginCoord(); !it.Done(); it.Next() {
		if nc, ok := Normalize(it.Value(), extent, topology); ok {
			ret.InsertCoord(nc)
		}
	}
	return ret
}
