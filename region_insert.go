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

// insertAtDim inserts streak s into dimension dim, searching only within
// indices[dim][start:end), and returns the net number of entries inserted
// at this level (so the caller can shift the .Second offsets of every
// following sibling entry). It mirrors NewRegionInsertHelper<DIM> from the
// C++ source, generalized to a runtime dimension loop per SPEC_FULL.md §3.
func (r *Region) insertAtDim(dim int, s Streak, start, end int) int {
	if dim == 0 {
		return r.insertDim0(s, start, end)
	}

	level := r.indices[dim]
	c := s.Origin.At(dim)
	i := upperBoundFirst(level, start, end, c)

	if i != start {
		entryIdx := i - 1
		if level[entryIdx].First == c {
			nextStart := level[entryIdx].Second
			nextEnd := len(r.indices[dim-1])
			if i < len(level) {
				nextEnd = level[i].Second
			}

			inserts := r.insertAtDim(dim-1, s, nextStart, nextEnd)
			incRemainderFrom(r.indices[dim], i, inserts)
			return 0
		}
	}

	var nextStart int
	if i < len(level) {
		nextStart = level[i].Second
	} else {
		nextStart = len(r.indices[dim-1])
	}
	nextEnd := nextStart

	r.indices[dim] = insertPairAt(level, i, intPair{First: c, Second: nextStart})

	inserts := r.insertAtDim(dim-1, s, nextStart, nextEnd)
	incRemainderFrom(r.indices[dim], i+1, inserts)
	return 1
}

// insertDim0 inserts the (origin.X(), endX) streak into indices[0],
// fusing with every overlapping or touching existing streak, and returns
// 1 minus the number of streaks it fused away.
func (r *Region) insertDim0(s Streak, start, end int) int {
	level := r.indices[0]
	cur := intPair{First: s.Origin.X(), Second: s.EndX}

	cursor := upperBoundFirst(level, start, end, cur.First)
	if cursor != start {
		cursor--
	}

	inserts := 1
	for cursor != end && cur.Second >= level[cursor].First {
		if intersectOrTouch(level[cursor], cur) {
			cur = fusePairs(level[cursor], cur)
			level = removePairAt(level, cursor)
			end--
			inserts--
		} else {
			cursor++
		}

		if cursor == end || !intersectOrTouch(level[cursor], cur) {
			break
		}
	}

	level = insertPairAt(level, cursor, cur)
	r.indices[0] = level
	return inserts
}

func intersectOrTouch(a, b intPair) bool {
	return (a.First <= b.First && b.First <= a.Second) ||
		(b.First <= a.First && a.First <= b.Second)
}

func fusePairs(a, b intPair) intPair {
	first := a.First
	if b.First < first {
		first = b.First
	}
	second := a.Second
	if b.Second > second {
		second = b.Second
	}
	return intPair{First: first, Second: second}
}
