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

import "strings"

// intPair is the (first, second) pair the hierarchical RLE index is built
// from. At dimension 0 a pair is a streak's (xBegin, xEnd). At dimension
// d>0 a pair is (coordAlongAxisD, childOffset), where childOffset points
// into indices[d-1]; see SPEC_FULL.md §3 and spec.md §3 for the full
// layout description.
type intPair struct {
	First, Second int
}

// Region is a run-length-encoded set of N-dimensional coordinates. The
// representation is an array of per-dimension index vectors: indices[0]
// holds the streaks themselves as (xBegin, xEnd) pairs; indices[d>0] holds
// (coord, childOffset) pairs whose children occupy
// indices[d-1][indices[d][k].Second .. indices[d][k+1].Second), the upper
// bound being the array length for the last entry at that level.
//
// The zero value is not usable; construct one with NewRegion.
type Region struct {
	dims    int
	indices [][]intPair

	size         int
	bbox         CoordBox
	cacheTainted bool
}

// NewRegion returns an empty Region of the given dimensionality.
func NewRegion(dims int) *Region {
	if dims < 1 || dims > maxDims {
		panic("geodecomp: Region dimensionality out of range")
	}
	return &Region{
		dims:    dims,
		indices: make([][]intPair, dims),
	}
}

// Dims returns the Region's dimensionality.
func (r *Region) Dims() int { return r.dims }

// Clone returns a deep copy of r.
func (r *Region) Clone() *Region {
	ret := NewRegion(r.dims)
	for d := 0; d < r.dims; d++ {
		if len(r.indices[d]) > 0 {
			ret.indices[d] = append([]intPair(nil), r.indices[d]...)
		}
	}
	ret.size = r.size
	ret.bbox = r.bbox
	ret.cacheTainted = r.cacheTainted
	return ret
}

// Clear empties the Region in place.
func (r *Region) Clear() {
	for d := 0; d < r.dims; d++ {
		r.indices[d] = nil
	}
	r.size = 0
	r.bbox = CoordBox{}
	r.cacheTainted = false
}

// Empty reports whether the Region contains no coordinates.
func (r *Region) Empty() bool {
	return len(r.indices[0]) == 0
}

// NumStreaks returns the number of contiguous x-runs stored at dimension 0.
func (r *Region) NumStreaks() int {
	return len(r.indices[0])
}

// Size returns the total number of coordinates in the Region. It is O(1)
// once the geometry cache is valid, and recomputed (O(number of streaks))
// after the first read following a mutation.
func (r *Region) Size() int {
	if r.cacheTainted {
		r.resetGeometryCache()
	}
	return r.size
}

// BoundingBox returns the smallest CoordBox containing every coordinate in
// the Region.
func (r *Region) BoundingBox() CoordBox {
	if r.cacheTainted {
		r.resetGeometryCache()
	}
	return r.bbox
}

func (r *Region) resetGeometryCache() {
	if r.Empty() {
		r.bbox = CoordBox{Origin: NewCoord(make([]int, r.dims)...), Dimensions: NewCoord(make([]int, r.dims)...)}
		r.size = 0
		r.cacheTainted = false
		return
	}

	it := r.beginStreakCursor()
	first := r.streakAt(it)
	min := first.Origin
	max := first.Origin.With(0, first.EndX-1)
	size := 0

	for !r.cursorAtEnd(it) {
		s := r.streakAt(it)
		left := s.Origin
		right := s.Origin.With(0, s.EndX-1)
		min = min.Min(left)
		max = max.Max(right)
		size += s.EndX - s.Origin.X()
		r.advanceStreakCursor(it)
	}

	r.size = size
	r.bbox = CoordBox{Origin: min, Dimensions: max.Sub(min).Add(Diagonal(r.dims, 1))}
	r.cacheTainted = false
}

// Insert adds the Streak s to the Region. Zero-length streaks (EndX <=
// Origin.X()) are silently ignored. Insertion is idempotent.
func (r *Region) Insert(s Streak) {
	if !s.Valid() {
		return
	}
	r.cacheTainted = true
	r.insertAtDim(r.dims-1, s, 0, len(r.indices[r.dims-1]))
}

// InsertCoord adds a single coordinate; equivalent to
// Insert(Streak{c, c.X()+1}).
func (r *Region) InsertCoord(c Coord) {
	r.Insert(Streak{Origin: c, EndX: c.X() + 1})
}

// InsertBox adds every coordinate in box, one streak per (y, z, ...) slice.
func (r *Region) InsertBox(box CoordBox) {
	width := box.Dimensions.At(0)
	sliceDim := box.Dimensions.With(0, 1)
	sliceBox := CoordBox{Origin: box.Origin, Dimensions: sliceDim}
	for it := sliceBox.Begin(); !it.Done(); it.Next() {
		p := it.Value()
		r.Insert(Streak{Origin: p, EndX: p.X() + width})
	}
}

// Remove deletes the Streak s from the Region. Zero-length streaks and
// removal from an empty Region are no-ops.
func (r *Region) Remove(s Streak) {
	if !s.Valid() || r.Empty() {
		return
	}
	r.cacheTainted = true
	r.removeAtDim(r.dims-1, s, 0, len(r.indices[r.dims-1]))
}

// RemoveCoord deletes a single coordinate; equivalent to
// Remove(Streak{c, c.X()+1}).
func (r *Region) RemoveCoord(c Coord) {
	r.Remove(Streak{Origin: c, EndX: c.X() + 1})
}

// Equal reports whether r and other contain exactly the same coordinates.
// Two Regions are equal iff all of their indices[d] vectors are equal
// element-wise.
func (r *Region) Equal(other *Region) bool {
	if other == nil || r.dims != other.dims {
		return false
	}
	for d := 0; d < r.dims; d++ {
		a, b := r.indices[d], other.indices[d]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

// UnionWith adds every coordinate of other to r in place.
func (r *Region) UnionWith(other *Region) {
	for it := other.beginStreakCursor(); !other.cursorAtEnd(it); other.advanceStreakCursor(it) {
		r.Insert(other.streakAt(it))
	}
}

// Union returns a new Region containing every coordinate in r or other.
func (r *Region) Union(other *Region) *Region {
	ret := r.Clone()
	ret.UnionWith(other)
	return ret
}

// DifferenceWith removes every coordinate of other from r in place.
func (r *Region) DifferenceWith(other *Region) {
	for it := other.beginStreakCursor(); !other.cursorAtEnd(it); other.advanceStreakCursor(it) {
		r.Remove(other.streakAt(it))
	}
}

// Difference returns a new Region containing every coordinate in r that is
// not in other.
func (r *Region) Difference(other *Region) *Region {
	ret := r.Clone()
	ret.DifferenceWith(other)
	return ret
}

// IntersectWith restricts r in place to coordinates also present in other.
// Implemented, per spec, as self - (self - other).
func (r *Region) IntersectWith(other *Region) {
	excess := r.Difference(other)
	r.DifferenceWith(excess)
}

// Intersect returns a new Region containing coordinates present in both r
// and other.
func (r *Region) Intersect(other *Region) *Region {
	ret := r.Clone()
	ret.IntersectWith(other)
	return ret
}

// Streaks returns every streak in the Region in lexicographic
// (z, ..., y, xBegin) order.
func (r *Region) Streaks() []Streak {
	ret := make([]Streak, 0, r.NumStreaks())
	for it := r.beginStreakCursor(); !r.cursorAtEnd(it); r.advanceStreakCursor(it) {
		ret = append(ret, r.streakAt(it))
	}
	return ret
}

// Coords returns every coordinate in the Region in the same order as
// Streaks.
func (r *Region) Coords() []Coord {
	ret := make([]Coord, 0, r.Size())
	for _, s := range r.Streaks() {
		for x := s.Origin.X(); x < s.EndX; x++ {
			ret = append(ret, s.Origin.With(0, x))
		}
	}
	return ret
}

func (r *Region) String() string {
	var b strings.Builder
	b.WriteString("Region(")
	for _, s := range r.Streaks() {
		b.WriteString(s.String())
		b.WriteString(" ")
	}
	b.WriteString(")")
	return b.String()
}

func upperBoundFirst(level []intPair, start, end, c int) int {
	lo, hi := start, end
	for lo < hi {
		mid := (lo + hi) / 2
		if level[mid].First > c {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

func insertPairAt(level []intPair, idx int, p intPair) []intPair {
	level = append(level, intPair{})
	copy(level[idx+1:], level[idx:])
	level[idx] = p
	return level
}

func removePairAt(level []intPair, idx int) []intPair {
	return append(level[:idx], level[idx+1:]...)
}

func incRemainderFrom(level []intPair, idx, delta int) {
	if delta == 0 {
		return
	}
	for i := idx; i < len(level); i++ {
		level[i].Second += delta
	}
}
