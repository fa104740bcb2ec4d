package geodecomp

import "testing"

func TestReorderingUnstructuredGridIsABijection(t *testing.T) {
	nodeSet := NewRegion(1)
	nodeSet.Insert(NewStreak(NewCoord(0), 8))

	g := NewReorderingUnstructuredGrid(nodeSet, 4)

	matrix := map[MatrixCoord]float64{
		{Row: 0, Col: 1}: 1,
		{Row: 1, Col: 2}: 1,
		{Row: 1, Col: 3}: 1,
		{Row: 1, Col: 4}: 1,
		{Row: 2, Col: 3}: 1,
		{Row: 2, Col: 4}: 1,
		{Row: 3, Col: 4}: 1,
	}
	g.SetWeights(matrix)

	if g.NumNodes() != 8 {
		t.Fatalf("expected 8 nodes, got %d", g.NumNodes())
	}

	seenPhysical := make(map[int]bool)
	for logical := 0; logical < 8; logical++ {
		p, ok := g.PhysicalID(logical)
		if !ok {
			t.Fatalf("logical ID %d has no physical slot", logical)
		}
		if seenPhysical[p] {
			t.Fatalf("physical slot %d assigned to more than one logical ID", p)
		}
		seenPhysical[p] = true
		if g.LogicalID(p) != logical {
			t.Errorf("LogicalID(PhysicalID(%d)) = %d, want %d", logical, g.LogicalID(p), logical)
		}
	}
}

func TestReorderingUnstructuredGridGroupsLongerRowsFirstWithinSigma(t *testing.T) {
	nodeSet := NewRegion(1)
	nodeSet.Insert(NewStreak(NewCoord(0), 4))

	g := NewReorderingUnstructuredGrid(nodeSet, 4)
	// Row lengths: node 0 -> 1, node 1 -> 3, node 2 -> 0, node 3 -> 2.
	matrix := map[MatrixCoord]float64{
		{Row: 0, Col: 9}: 1,
		{Row: 1, Col: 9}: 1, {Row: 1, Col: 8}: 1, {Row: 1, Col: 7}: 1,
		{Row: 3, Col: 9}: 1, {Row: 3, Col: 8}: 1,
	}
	g.SetWeights(matrix)

	p0, _ := g.PhysicalID(0)
	p1, _ := g.PhysicalID(1)
	p3, _ := g.PhysicalID(3)

	if p1 > p0 {
		t.Errorf("expected node 1 (row length 3) to sort before node 0 (row length 1) within the SIGMA window")
	}
	if p3 > p0 {
		t.Errorf("expected node 3 (row length 2) to sort before node 0 (row length 1) within the SIGMA window")
	}
}

func TestReorderingUnstructuredGridResizeUnsupported(t *testing.T) {
	nodeSet := NewRegion(1)
	nodeSet.Insert(NewStreak(NewCoord(0), 4))
	g := NewReorderingUnstructuredGrid(nodeSet, 1)

	err := g.Resize(NewCoordBox(NewCoord(0), NewCoord(4)))
	if err == nil {
		t.Fatal("expected Resize to be unsupported")
	}
}

func TestReorderingUnstructuredGridSaveLoadRegionRoundTrip(t *testing.T) {
	nodeSet := NewRegion(1)
	nodeSet.Insert(NewStreak(NewCoord(0), 4))
	g := NewReorderingUnstructuredGrid(nodeSet, 1)

	for i := 0; i < 4; i++ {
		g.Set(NewCoord(i), i*10)
	}

	sub := NewRegion(1)
	sub.Insert(NewStreak(NewCoord(1), 3))

	buf := g.SaveRegion(sub)

	g2 := NewReorderingUnstructuredGrid(nodeSet, 1)
	if err := g2.LoadRegion(buf, sub); err != nil {
		t.Fatal(err)
	}

	if g2.Get(NewCoord(1)) != 10 || g2.Get(NewCoord(2)) != 20 {
		t.Errorf("LoadRegion did not restore the expected cell values: %v, %v", g2.Get(NewCoord(1)), g2.Get(NewCoord(2)))
	}
}
