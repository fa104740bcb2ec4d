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

// streakCursor walks a Region's streaks in lexicographic (z, ..., y,
// xBegin) order. cursor[0] indexes indices[0] (the streak itself);
// cursor[d] for d>0 indexes the ancestor entry in indices[d] that owns the
// current streak. It holds only a read-only reference to the Region plus
// these offsets -- never a back-pointer from the Region into the iterator,
// per the cyclic-reference redesign note in SPEC_FULL.md §3.
type streakCursor []int

func (r *Region) beginStreakCursor() streakCursor {
	c := make(streakCursor, r.dims)
	return c
}

func (r *Region) cursorAtEnd(c streakCursor) bool {
	return c[0] >= len(r.indices[0])
}

func (r *Region) streakAt(c streakCursor) Streak {
	vals := make([]int, r.dims)
	vals[0] = r.indices[0][c[0]].First
	for d := 1; d < r.dims; d++ {
		vals[d] = r.indices[d][c[d]].First
	}
	return Streak{Origin: NewCoord(vals...), EndX: r.indices[0][c[0]].Second}
}

// advanceStreakCursor moves c to the next streak. Each level d>0 only
// advances once its current child range (bounded above by the next
// entry's offset, or the array length if there is none) is exhausted --
// see spec.md §3's description of how indices[d-1] is partitioned among
// indices[d]'s entries.
func (r *Region) advanceStreakCursor(c streakCursor) {
	c[0]++
	if c[0] >= len(r.indices[0]) {
		for d := 1; d < r.dims; d++ {
			c[d] = len(r.indices[d])
		}
		return
	}

	for d := 1; d < r.dims; d++ {
		level := r.indices[d]
		var childEnd int
		if c[d]+1 < len(level) {
			childEnd = level[c[d]+1].Second
		} else {
			childEnd = len(r.indices[d-1])
		}
		if c[d-1] != childEnd {
			return
		}
		c[d]++
	}
}

// StreakIterator supports external, explicit streak-by-streak traversal
// of a Region without materializing a slice.
type StreakIterator struct {
	region *Region
	cursor streakCursor
}

// BeginStreak returns an iterator positioned at the Region's first streak.
func (r *Region) BeginStreak() *StreakIterator {
	return &StreakIterator{region: r, cursor: r.beginStreakCursor()}
}

// Done reports whether the iterator has exhausted the Region.
func (it *StreakIterator) Done() bool {
	return it.region.cursorAtEnd(it.cursor)
}

// Value returns the iterator's current streak.
func (it *StreakIterator) Value() Streak {
	return it.region.streakAt(it.cursor)
}

// Next advances the iterator to the following streak.
func (it *StreakIterator) Next() {
	it.region.advanceStreakCursor(it.cursor)
}

// CoordIterator supports explicit coordinate-by-coordinate traversal.
type CoordIterator struct {
	streak *StreakIterator
	cursor Coord
}

// BeginCoord returns an iterator positioned at the Region's first
// coordinate.
func (r *Region) BeginCoord() *CoordIterator {
	si := r.BeginStreak()
	it := &CoordIterator{streak: si}
	if !si.Done() {
		it.cursor = si.Value().Origin
	}
	return it
}

// Done reports whether the iterator has exhausted the Region.
func (it *CoordIterator) Done() bool {
	return it.streak.Done()
}

// Value returns the iterator's current coordinate.
func (it *CoordIterator) Value() Coord {
	return it.cursor
}

// Next advances the iterator to the following coordinate.
func (it *CoordIterator) Next() {
	x := it.cursor.X() + 1
	if x >= it.streak.Value().EndX {
		it.streak.Next()
		if !it.streak.Done() {
			it.cursor = it.streak.Value().Origin
		}
		return
	}
	it.cursor = it.cursor.With(0, x)
}
