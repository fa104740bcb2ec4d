package geodecomp

import "testing"

func TestMapAdjacencyAddEdgeIsUndirected(t *testing.T) {
	adj := NewMapAdjacency(4)
	adj.AddEdge(0, 1)
	adj.AddEdge(1, 2)

	if !containsInt(adj.NeighborsOf(0), 1) {
		t.Error("expected 0 to neighbor 1")
	}
	if !containsInt(adj.NeighborsOf(1), 0) {
		t.Error("expected edge to be undirected: 1 should neighbor 0")
	}
	if !containsInt(adj.NeighborsOf(1), 2) {
		t.Error("expected 1 to neighbor 2")
	}
	if len(adj.NeighborsOf(3)) != 0 {
		t.Error("expected cell 3 to have no neighbors")
	}
}

func TestMapAdjacencyAddEdgeIsIdempotent(t *testing.T) {
	adj := NewMapAdjacency(2)
	adj.AddEdge(0, 1)
	adj.AddEdge(0, 1)
	adj.AddEdge(1, 0)

	if len(adj.NeighborsOf(0)) != 1 {
		t.Errorf("expected duplicate edges to collapse, got %d neighbors", len(adj.NeighborsOf(0)))
	}
}

func TestGridAdjacencyFindsOrthogonalNeighbors(t *testing.T) {
	g := NewGridAdjacency(NewCoord(1, 1))
	ids := map[Coord]int{
		NewCoord(1, 1): 0,
		NewCoord(0, 1): 1,
		NewCoord(2, 1): 2,
		NewCoord(1, 0): 3,
		NewCoord(1, 2): 4,
		NewCoord(5, 5): 5, // far away, should not show up as a neighbor
	}
	for c, id := range ids {
		g.Add(id, c)
	}

	neighbors := g.NeighborsOf(0)
	if len(neighbors) != 4 {
		t.Fatalf("expected 4 orthogonal neighbors of the center cell, got %d: %v", len(neighbors), neighbors)
	}
	for _, want := range []int{1, 2, 3, 4} {
		if !containsInt(neighbors, want) {
			t.Errorf("expected cell %d among neighbors, got %v", want, neighbors)
		}
	}
	if containsInt(neighbors, 5) {
		t.Error("the far-away cell should not be a neighbor")
	}
}
