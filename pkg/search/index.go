package search

import (
	"fmt"
	"sort"
)

// FlatIndex is an exact nearest-neighbor index over a fixed set of vectors.
// Vector i belongs to catalog index i. Queries return squared L2 distances in
// ascending order; since all stored vectors are unit length this ranks the
// same as cosine similarity.
type FlatIndex struct {
	dim     int
	vectors [][]float32
}

// NewFlatIndex wraps the given vectors. All vectors must share one dimension.
func NewFlatIndex(vectors [][]float32) (*FlatIndex, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("flat index requires at least one vector")
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("vector %d has dimension %d, want %d", i, len(v), dim)
		}
	}
	return &FlatIndex{dim: dim, vectors: vectors}, nil
}

// Dim returns the vector dimension of the index.
func (ix *FlatIndex) Dim() int {
	return ix.dim
}

// Len returns the number of indexed vectors.
func (ix *FlatIndex) Len() int {
	return len(ix.vectors)
}

// Search returns the k nearest vectors to the query as parallel slices of
// distances and catalog ids, nearest first. k larger than the index size is
// clamped.
func (ix *FlatIndex) Search(query []float32, k int) ([]float32, []int, error) {
	if len(query) != ix.dim {
		return nil, nil, fmt.Errorf("query dimension %d does not match index dimension %d", len(query), ix.dim)
	}
	if k > len(ix.vectors) {
		k = len(ix.vectors)
	}
	if k <= 0 {
		return nil, nil, nil
	}

	type hit struct {
		id   int
		dist float32
	}
	hits := make([]hit, len(ix.vectors))
	for i, v := range ix.vectors {
		var d float64
		for j := range v {
			diff := float64(query[j]) - float64(v[j])
			d += diff * diff
		}
		hits[i] = hit{id: i, dist: float32(d)}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].dist < hits[b].dist
	})

	dists := make([]float32, k)
	ids := make([]int, k)
	for i := 0; i < k; i++ {
		dists[i] = hits[i].dist
		ids[i] = hits[i].id
	}
	return dists, ids, nil
}
