// FILE: pkg/catalog/snapshot.go
// PURPOSE: In-memory catalog snapshot: item metadata plus the two vector
// indexes and the lexical scorer the retrieval pipeline searches.
package catalog

import (
	"context"
	"fmt"

	"bytemart-search-be/internal/entity"
	"bytemart-search-be/pkg/lexical"
	"bytemart-search-be/pkg/search"
	"bytemart-search-be/pkg/utils"
)

// Snapshot is the read-mostly catalog loaded at startup. Items is mutated
// only through AttachTags, everything else is immutable after Build.
type Snapshot struct {
	Items         []entity.CatalogItem
	CombinedIndex *search.FlatIndex
	TextIndex     *search.FlatIndex
	BM25          *lexical.BM25
}

// Loader produces a snapshot from some backing store.
type Loader interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Build assembles a snapshot from items and their two embedding sets. The
// embedding slices must align with items by position.
func Build(items []entity.CatalogItem, combined, text [][]float32) (*Snapshot, error) {
	if len(combined) != len(items) || len(text) != len(items) {
		return nil, fmt.Errorf("catalog: %d items but %d combined / %d text embeddings", len(items), len(combined), len(text))
	}

	combIdx, err := search.NewFlatIndex(combined)
	if err != nil {
		return nil, fmt.Errorf("catalog: combined index: %w", err)
	}
	textIdx, err := search.NewFlatIndex(text)
	if err != nil {
		return nil, fmt.Errorf("catalog: text index: %w", err)
	}

	docs := make([][]string, len(items))
	for i := range items {
		items[i].Index = i
		docs[i] = utils.Tokenize(items[i].Description)
	}

	return &Snapshot{
		Items:         items,
		CombinedIndex: combIdx,
		TextIndex:     textIdx,
		BM25:          lexical.NewBM25(docs),
	}, nil
}

// Len returns the number of catalog items.
func (s *Snapshot) Len() int {
	return len(s.Items)
}

// Descriptions gathers the description text for the given catalog ids,
// aligned by position. Out-of-range ids yield empty strings.
func (s *Snapshot) Descriptions(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		if id >= 0 && id < len(s.Items) {
			out[i] = s.Items[id].Description
		}
	}
	return out
}

// AttachTags overwrites the tags of the given catalog id.
func (s *Snapshot) AttachTags(id int, tags []string) {
	if id >= 0 && id < len(s.Items) {
		s.Items[id].Tags = tags
	}
}
