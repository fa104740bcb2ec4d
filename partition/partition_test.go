package partition

import (
	"sync"
	"testing"

	"github.com/bssrdf/geodecomp"
)

func TestDistributedPartitionerAgreesAcrossRanks(t *testing.T) {
	const numRanks = 3
	const n = 12

	adj := chainAdjacency(n)
	cells := make([]geodecomp.Coord, n)
	for i := range cells {
		cells[i] = geodecomp.NewCoord(i)
	}

	exchanger := NewLocalExchanger(numRanks)
	partitions := make([]*DistributedPartitioner, numRanks)
	errs := make([]error, numRanks)

	var wg sync.WaitGroup
	for rank := 0; rank < numRanks; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			p := NewDistributedPartitioner(GreedyEdgeCut{}, adj, cells, numRanks)
			errs[rank] = p.Run(nil, rank, exchanger)
			partitions[rank] = p
		}(rank)
	}
	wg.Wait()

	for rank, err := range errs {
		if err != nil {
			t.Fatalf("rank %d: Run failed: %v", rank, err)
		}
	}

	// Every rank must agree on every other rank's region.
	for rank := 0; rank < numRanks; rank++ {
		for other := 0; other < numRanks; other++ {
			a := partitions[0].Region(other)
			b := partitions[rank].Region(other)
			if !a.Equal(b) {
				t.Errorf("rank %d disagrees with rank 0 about rank %d's region: %v vs %v", rank, other, b, a)
			}
		}
	}

	// The regions must partition the full cell set: cover every cell
	// exactly once.
	union := geodecomp.NewRegion(1)
	total := 0
	for rank := 0; rank < numRanks; rank++ {
		r := partitions[0].Region(rank)
		total += r.Size()
		union.UnionWith(r)
	}
	if total != n {
		t.Errorf("expected regions to sum to %d cells, got %d", n, total)
	}
	if union.Size() != n {
		t.Errorf("expected the union of all regions to cover %d cells, got %d", n, union.Size())
	}
}
