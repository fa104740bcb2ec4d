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

// CoordBox is an axis-aligned box of coordinates: the origin plus a
// dimensions vector of the same dimensionality.
type CoordBox struct {
	Origin     Coord
	Dimensions Coord
}

// NewCoordBox builds a CoordBox from an origin and dimensions vector. Both
// must have the same dimensionality.
func NewCoordBox(origin, dimensions Coord) CoordBox {
	if origin.Dims() != dimensions.Dims() {
		panic("geodecomp: CoordBox origin and dimensions have different dimensionality")
	}
	return CoordBox{Origin: origin, Dimensions: dimensions}
}

// Dims returns the box's dimensionality.
func (b CoordBox) Dims() int { return b.Origin.Dims() }

// Size returns the total number of coordinates in the box (the product of
// its dimensions, treating non-positive dimensions as zero).
func (b CoordBox) Size() int {
	n := 1
	for i := 0; i < b.Dims(); i++ {
		d := b.Dimensions.At(i)
		if d <= 0 {
			return 0
		}
		n *= d
	}
	return n
}

// CoordBoxIterator walks a CoordBox's points in row-major order (axis 0,
// "x", fastest).
type CoordBoxIterator struct {
	box  CoordBox
	cur  Coord
	done bool
}

// Begin returns an iterator positioned at the box's first point (its
// origin, or already-done if the box is empty).
func (b CoordBox) Begin() *CoordBoxIterator {
	it := &CoordBoxIterator{box: b, cur: b.Origin}
	if b.Size() == 0 {
		it.done = true
	}
	return it
}

// Done reports whether the iterator has exhausted the box.
func (it *CoordBoxIterator) Done() bool { return it.done }

// Value returns the iterator's current point.
func (it *CoordBoxIterator) Value() Coord { return it.cur }

// Next advances the iterator by one point in row-major order.
func (it *CoordBoxIterator) Next() {
	if it.done {
		return
	}
	dims := it.box.Dims()
	for axis := 0; axis < dims; axis++ {
		v := it.cur.At(axis) + 1
		if v < it.box.Origin.At(axis)+it.box.Dimensions.At(axis) {
			it.cur = it.cur.With(axis, v)
			return
		}
		it.cur = it.cur.With(axis, it.box.Origin.At(axis))
	}
	it.done = true
}

func (b CoordBox) String() string {
	return fmt.Sprintf("CoordBox(%v, %v)", b.Origin, b.Dimensions)
}
