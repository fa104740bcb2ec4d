package geodecomp

import (
	"reflect"
	"testing"
)

func coordSet(coords []Coord) map[Coord]bool {
	set := make(map[Coord]bool, len(coords))
	for _, c := range coords {
		set[c] = true
	}
	return set
}

func TestRegionInsertIsIdempotent(t *testing.T) {
	r := NewRegion(2)
	s := NewStreak(NewCoord(0, 0), 5)
	r.Insert(s)
	r.Insert(s)
	r.Insert(s)

	if r.Size() != 5 {
		t.Fatalf("expected size 5 after repeated insert, got %d", r.Size())
	}
	if r.NumStreaks() != 1 {
		t.Fatalf("expected a single streak, got %d", r.NumStreaks())
	}
}

func TestRegionInsertFusesAdjacentStreaks(t *testing.T) {
	r := NewRegion(2)
	r.Insert(NewStreak(NewCoord(0, 0), 3))
	r.Insert(NewStreak(NewCoord(3, 0), 6))

	if r.NumStreaks() != 1 {
		t.Fatalf("expected adjacent streaks to fuse into one, got %d", r.NumStreaks())
	}
	if r.Size() != 6 {
		t.Fatalf("expected size 6, got %d", r.Size())
	}
}

func TestRegionInsertRemoveRoundTrip(t *testing.T) {
	r := NewRegion(2)
	box := NewCoordBox(NewCoord(0, 0), NewCoord(4, 4))
	r.InsertBox(box)

	if r.Size() != 16 {
		t.Fatalf("expected size 16, got %d", r.Size())
	}

	for it := box.Begin(); !it.Done(); it.Next() {
		r.RemoveCoord(it.Value())
	}

	if !r.Empty() {
		t.Fatalf("expected region to be empty after removing every coordinate, got size %d", r.Size())
	}
}

func TestRegionRemoveSplitsStreak(t *testing.T) {
	r := NewRegion(2)
	r.Insert(NewStreak(NewCoord(0, 0), 10))
	r.Remove(NewStreak(NewCoord(3, 0), 5))

	if r.Size() != 8 {
		t.Fatalf("expected size 8 after removing [3,5), got %d", r.Size())
	}
	if r.NumStreaks() != 2 {
		t.Fatalf("expected the streak to split into 2 pieces, got %d", r.NumStreaks())
	}
}

func TestRegionUnionDifferenceIntersect(t *testing.T) {
	a := NewRegion(2)
	a.InsertBox(NewCoordBox(NewCoord(0, 0), NewCoord(4, 4)))

	b := NewRegion(2)
	b.InsertBox(NewCoordBox(NewCoord(2, 2), NewCoord(4, 4)))

	union := a.Union(b)
	if union.Size() != 28 {
		t.Errorf("expected union size 28, got %d", union.Size())
	}

	diff := a.Difference(b)
	if diff.Size() != 12 {
		t.Errorf("expected difference size 12, got %d", diff.Size())
	}

	inter := a.Intersect(b)
	if inter.Size() != 4 {
		t.Errorf("expected intersection size 4, got %d", inter.Size())
	}

	// a == (a - b) + (a & b)
	recombined := diff.Union(inter)
	if !recombined.Equal(a) {
		t.Errorf("difference union intersection should reconstruct a")
	}
}

func TestRegionBoundingBox(t *testing.T) {
	r := NewRegion(2)
	r.InsertCoord(NewCoord(1, 1))
	r.InsertCoord(NewCoord(5, 3))

	bbox := r.BoundingBox()
	if !bbox.Origin.Equal(NewCoord(1, 1)) {
		t.Errorf("expected origin (1,1), got %v", bbox.Origin)
	}
	if !bbox.Dimensions.Equal(NewCoord(5, 3)) {
		t.Errorf("expected dimensions (5,3), got %v", bbox.Dimensions)
	}
}

func TestRegionCloneIsIndependent(t *testing.T) {
	r := NewRegion(2)
	r.InsertBox(NewCoordBox(NewCoord(0, 0), NewCoord(3, 3)))
	clone := r.Clone()
	clone.InsertCoord(NewCoord(10, 10))

	if r.Size() == clone.Size() {
		t.Errorf("mutating the clone should not affect the original")
	}
}

func TestRegionCoordsMatchStreaks(t *testing.T) {
	r := NewRegion(1)
	r.Insert(NewStreak(NewCoord(0), 3))
	r.Insert(NewStreak(NewCoord(10), 12))

	got := coordSet(r.Coords())
	want := coordSet([]Coord{NewCoord(0), NewCoord(1), NewCoord(2), NewCoord(10), NewCoord(11)})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Coords: got %v, want %v", got, want)
	}
}

func TestRegionExpand(t *testing.T) {
	r := NewRegion(2)
	r.InsertCoord(NewCoord(5, 5))

	expanded := r.Expand(1)
	if expanded.Size() != 9 {
		t.Fatalf("expected a 3x3 block (9 coordinates), got %d", expanded.Size())
	}
	if !expanded.BoundingBox().Origin.Equal(NewCoord(4, 4)) {
		t.Errorf("expected expanded origin (4,4), got %v", expanded.BoundingBox().Origin)
	}
}

func TestRegionExpandWithTopologyWrapsAndClips(t *testing.T) {
	r := NewRegion(2)
	r.InsertCoord(NewCoord(0, 0))

	extent := NewCoord(10, 10)
	topology := NewTopology(true, false) // axis 0 wraps, axis 1 does not

	expanded := r.ExpandWithTopology(1, extent, topology)

	want := coordSet([]Coord{
		NewCoord(9, 0), NewCoord(0, 0), NewCoord(1, 0),
		NewCoord(9, 1), NewCoord(0, 1), NewCoord(1, 1),
	})
	got := coordSet(expanded.Coords())
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandWithTopology: got %v, want %v", got, want)
	}
}

func TestStreakIteratorOrder(t *testing.T) {
	r := NewRegion(2)
	r.Insert(NewStreak(NewCoord(0, 1), 2))
	r.Insert(NewStreak(NewCoord(0, 0), 2))

	var order []Coord
	for it := r.BeginStreak(); !it.Done(); it.Next() {
		order = append(order, it.Value().Origin)
	}

	want := []Coord{NewCoord(0, 0), NewCoord(0, 1)}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("expected streaks in (y, x) lexicographic order, got %v", order)
	}
}
