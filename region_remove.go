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

// removeAtDim removes streak s from dimension dim, searching only within
// indices[dim][start:end), and returns the net number of entries inserted
// at this level (may be negative). It mirrors NewRegionRemoveHelper<DIM>.
func (r *Region) removeAtDim(dim int, s Streak, start, end int) int {
	if dim == 0 {
		return r.removeDim0(s, start, end)
	}

	level := r.indices[dim]
	c := s.Origin.At(dim)
	i := upperBoundFirst(level, start, end, c)

	// key not present in this sub-range
	if i == start {
		return 0
	}
	entryIdx := i - 1
	if level[entryIdx].First != c {
		return 0
	}

	nextStart := level[entryIdx].Second
	nextEnd := len(r.indices[dim-1])
	if i < len(level) {
		nextEnd = level[i].Second
	}

	inserts := r.removeAtDim(dim-1, s, nextStart, nextEnd)

	myInserts := 0
	if (nextStart - nextEnd) == inserts {
		// every child of this entry is gone: drop the entry itself.
		r.indices[dim] = removePairAt(r.indices[dim], entryIdx)
		myInserts = -1
		incRemainderFrom(r.indices[dim], entryIdx, inserts)
	} else {
		incRemainderFrom(r.indices[dim], i, inserts)
	}
	return myInserts
}

// removeDim0 removes the (origin.X(), endX) streak from indices[0],
// splitting any existing streak that overlaps it into 0, 1 or 2 pieces.
func (r *Region) removeDim0(s Streak, start, end int) int {
	level := r.indices[0]
	cur := intPair{First: s.Origin.X(), Second: s.EndX}
	inserts := 0

	cursor := upperBoundFirst(level, start, end, cur.First)
	if cursor != start {
		cursor--
	}

	for cursor != end {
		if intersectHalfOpen(cur, level[cursor]) {
			pieces := subtractPair(level[cursor], cur)
			level = removePairAt(level, cursor)
			delta := len(pieces) - 1
			end += delta
			inserts += delta

			for _, p := range pieces {
				level = insertPairAt(level, cursor, p)
				cursor++
			}
		} else {
			cursor++
		}

		if cursor == end || !intersectHalfOpen(level[cursor], cur) {
			break
		}
	}

	r.indices[0] = level
	return inserts
}

func intersectHalfOpen(a, b intPair) bool {
	return (a.First <= b.First && b.First < a.Second) ||
		(b.First <= a.First && a.First < b.Second)
}

// subtractPair returns base minus minuend as 0, 1 or 2 disjoint pieces.
func subtractPair(base, minuend intPair) []intPair {
	if !intersectHalfOpen(base, minuend) {
		return []intPair{base}
	}

	var ret []intPair
	left := intPair{First: base.First, Second: minuend.First}
	right := intPair{First: minuend.Second, Second: base.Second}
	if left.Second > left.First {
		ret = append(ret, left)
	}
	if right.Second > right.First {
		ret = append(ret, right)
	}
	return ret
}
