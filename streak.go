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

// Streak represents the contiguous run of coordinates
// {Origin, Origin+(1,0,...), ..., Origin+(EndX-Origin.X()-1, 0, ...)}:
// every point shares Origin's coordinates on every axis but 0, and ranges
// over [Origin.X(), EndX) on axis 0.
//
// A Streak with EndX <= Origin.X() is considered zero-length; Region
// silently discards such streaks on insert (see Region.Insert).
type Streak struct {
	Origin Coord
	EndX   int
}

// NewStreak builds a Streak from an origin and an exclusive end-x.
func NewStreak(origin Coord, endX int) Streak {
	return Streak{Origin: origin, EndX: endX}
}

// Length returns the number of coordinates the streak covers. It is zero
// or negative for an empty/invalid streak.
func (s Streak) Length() int {
	return s.EndX - s.Origin.X()
}

// Valid reports whether the streak covers at least one coordinate.
func (s Streak) Valid() bool {
	return s.EndX > s.Origin.X()
}

func (s Streak) String() string {
	return fmt.Sprintf("Streak(%v, %d)", s.Origin, s.EndX)
}
