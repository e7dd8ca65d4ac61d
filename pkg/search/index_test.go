package search

import (
	"testing"
)

func TestFlatIndexSearch(t *testing.T) {
	idx, err := NewFlatIndex([][]float32{
		{1, 0},
		{0, 1},
		{0.9, 0.1},
	})
	if err != nil {
		t.Fatalf("NewFlatIndex: %v", err)
	}

	dists, ids, err := idx.Search([]float32{1, 0}, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(ids))
	}
	if ids[0] != 0 {
		t.Errorf("nearest should be vector 0, got %d", ids[0])
	}
	if ids[1] != 2 {
		t.Errorf("second nearest should be vector 2, got %d", ids[1])
	}
	if dists[0] > dists[1] {
		t.Errorf("distances not ascending: %v", dists)
	}
}

func TestFlatIndexKClamped(t *testing.T) {
	idx, _ := NewFlatIndex([][]float32{{1, 0}, {0, 1}})
	_, ids, err := idx.Search([]float32{1, 0}, 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("k beyond index size should clamp to %d, got %d", idx.Len(), len(ids))
	}
}

func TestFlatIndexDimensionMismatch(t *testing.T) {
	idx, _ := NewFlatIndex([][]float32{{1, 0}})
	if _, _, err := idx.Search([]float32{1, 0, 0}, 1); err == nil {
		t.Error("expected error for mismatched query dimension")
	}

	if _, err := NewFlatIndex([][]float32{{1, 0}, {1, 0, 0}}); err == nil {
		t.Error("expected error for ragged vectors")
	}
	if _, err := NewFlatIndex(nil); err == nil {
		t.Error("expected error for empty index")
	}
}
