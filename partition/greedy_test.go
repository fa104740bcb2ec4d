package partition

import (
	"testing"

	"github.com/bssrdf/geodecomp"
)

func chainAdjacency(n int) *geodecomp.MapAdjacency {
	adj := geodecomp.NewMapAdjacency(n)
	for i := 0; i < n-1; i++ {
		adj.AddEdge(i, i+1)
	}
	return adj
}

func assertCoversEveryCellExactlyOnce(t *testing.T, assignment []int, numRanks int) {
	t.Helper()
	for i, rank := range assignment {
		if rank < 0 || rank >= numRanks {
			t.Fatalf("cell %d assigned to out-of-range rank %d", i, rank)
		}
	}
}

func TestLinearBackendCoversEveryCell(t *testing.T) {
	csr := geodecomp.BuildCSR(chainAdjacency(10))
	assignment, err := LinearBackend{}.Partition(csr, nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(assignment) != 10 {
		t.Fatalf("expected an assignment for every cell, got %d", len(assignment))
	}
	assertCoversEveryCellExactlyOnce(t, assignment, 3)
}

func TestGreedyEdgeCutCoversEveryCell(t *testing.T) {
	csr := geodecomp.BuildCSR(chainAdjacency(20))
	assignment, err := GreedyEdgeCut{}.Partition(csr, nil, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(assignment) != 20 {
		t.Fatalf("expected an assignment for every cell, got %d", len(assignment))
	}
	assertCoversEveryCellExactlyOnce(t, assignment, 4)

	seen := make(map[int]bool)
	for _, rank := range assignment {
		seen[rank] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all 4 ranks to receive cells on a connected chain, got %d", len(seen))
	}
}

func TestGreedyEdgeCutBalancesWeight(t *testing.T) {
	csr := geodecomp.BuildCSR(chainAdjacency(100))
	weights := WeightsFromRegion(100, 1)
	assignment, err := GreedyEdgeCut{}.Partition(csr, weights, 4)
	if err != nil {
		t.Fatal(err)
	}

	imbalance := Imbalance(weights, assignment, 4)
	if imbalance > 1.5 {
		t.Errorf("expected reasonably balanced partition, got imbalance ratio %f", imbalance)
	}
}
