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

import (
	"fmt"
	"strings"
)

// maxDims bounds the dimensionality a Coord can hold. LibGeoDecomp's C++
// core instantiates NewRegion<DIM> as a compile-time template per DIM; here
// DIM is a runtime value (see SPEC_FULL.md's "recursive dimension
// templates" redesign note), and maxDims is simply high enough to cover
// every topology this module deals with (structured 1-3D grids, plus the
// occasional 1D node-index space used by the partitioner).
const maxDims = 4

// Coord is an N-dimensional integer point. It is a plain value type: copies
// are independent, and the zero Coord is the origin of a 0-dimensional
// space. Use NewCoord to build one with a specific dimensionality.
type Coord struct {
	v [maxDims]int
	n int
}

// NewCoord builds a Coord from its components. len(vals) becomes the
// Coord's dimensionality.
func NewCoord(vals ...int) Coord {
	if len(vals) > maxDims {
		panic(fmt.Sprintf("geodecomp: Coord supports at most %d dimensions, got %d", maxDims, len(vals)))
	}
	var c Coord
	c.n = len(vals)
	copy(c.v[:], vals)
	return c
}

// Diagonal returns a Coord of dimensionality dims with every component set
// to width.
func Diagonal(dims, width int) Coord {
	var c Coord
	c.n = dims
	for i := 0; i < dims; i++ {
		c.v[i] = width
	}
	return c
}

// Dims returns the Coord's dimensionality.
func (c Coord) Dims() int { return c.n }

// At returns the i-th component.
func (c Coord) At(i int) int { return c.v[i] }

// X is shorthand for At(0).
func (c Coord) X() int { return c.v[0] }

// With returns a copy of c with component i set to val.
func (c Coord) With(i, val int) Coord {
	c.v[i] = val
	return c
}

// Add returns the component-wise sum c + other.
func (c Coord) Add(other Coord) Coord {
	var ret Coord
	ret.n = c.n
	for i := 0; i < c.n; i++ {
		ret.v[i] = c.v[i] + other.v[i]
	}
	return ret
}

// Sub returns the component-wise difference c - other.
func (c Coord) Sub(other Coord) Coord {
	var ret Coord
	ret.n = c.n
	for i := 0; i < c.n; i++ {
		ret.v[i] = c.v[i] - other.v[i]
	}
	return ret
}

// Min returns the component-wise minimum of c and other.
func (c Coord) Min(other Coord) Coord {
	var ret Coord
	ret.n = c.n
	for i := 0; i < c.n; i++ {
		if c.v[i] < other.v[i] {
			ret.v[i] = c.v[i]
		} else {
			ret.v[i] = other.v[i]
		}
	}
	return ret
}

// Max returns the component-wise maximum of c and other.
func (c Coord) Max(other Coord) Coord {
	var ret Coord
	ret.n = c.n
	for i := 0; i < c.n; i++ {
		if c.v[i] > other.v[i] {
			ret.v[i] = c.v[i]
		} else {
			ret.v[i] = other.v[i]
		}
	}
	return ret
}

// Equal reports whether c and other have the same dimensionality and
// components.
func (c Coord) Equal(other Coord) bool {
	if c.n != other.n {
		return false
	}
	for i := 0; i < c.n; i++ {
		if c.v[i] != other.v[i] {
			return false
		}
	}
	return true
}

// Less orders Coords lexicographically with the last axis ("z, ..., y")
// most significant and axis 0 ("x") least significant, matching the order
// Region.Streaks and Region.Coords iterate in.
func (c Coord) Less(other Coord) bool {
	for i := c.n - 1; i >= 0; i-- {
		if c.v[i] != other.v[i] {
			return c.v[i] < other.v[i]
		}
	}
	return false
}

func (c Coord) String() string {
	parts := make([]string, c.n)
	for i := 0; i < c.n; i++ {
		parts[i] = fmt.Sprintf("%d", c.v[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
