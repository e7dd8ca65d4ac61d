// FILE: pkg/catalog/file_loader.go
// PURPOSE: Loads a catalog snapshot from a directory: meta.json with the item
// metadata and two raw float32 embedding files.
package catalog

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"bytemart-search-be/internal/entity"
)

// Snapshot directory layout.
const (
	MetaFile         = "meta.json"
	CombinedVecsFile = "combined_embeddings.bin"
	TextVecsFile     = "text_embeddings.bin"
)

// FileLoader reads an exported snapshot directory. The embedding files start
// with two little-endian uint32 values (count, dim) followed by count*dim
// little-endian float32 values.
type FileLoader struct {
	dir    string
	logger *log.Logger
}

func NewFileLoader(dir string, logger *log.Logger) *FileLoader {
	return &FileLoader{dir: dir, logger: logger}
}

func (l *FileLoader) Load(_ context.Context) (*Snapshot, error) {
	metaRaw, err := os.ReadFile(filepath.Join(l.dir, MetaFile))
	if err != nil {
		return nil, fmt.Errorf("catalog: read metadata: %w", err)
	}
	var items []entity.CatalogItem
	if err := json.Unmarshal(metaRaw, &items); err != nil {
		return nil, fmt.Errorf("catalog: parse metadata: %w", err)
	}

	combined, err := readVectors(filepath.Join(l.dir, CombinedVecsFile))
	if err != nil {
		return nil, err
	}
	text, err := readVectors(filepath.Join(l.dir, TextVecsFile))
	if err != nil {
		return nil, err
	}

	snap, err := Build(items, combined, text)
	if err != nil {
		return nil, err
	}
	l.logger.Printf("INFO: catalog snapshot loaded from %s: %d items, dim %d", l.dir, snap.Len(), snap.CombinedIndex.Dim())
	return snap, nil
}

func readVectors(path string) ([][]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read embeddings %s: %w", filepath.Base(path), err)
	}
	if len(raw) < 8 {
		return nil, fmt.Errorf("catalog: embeddings %s truncated", filepath.Base(path))
	}
	count := binary.LittleEndian.Uint32(raw[0:4])
	dim := binary.LittleEndian.Uint32(raw[4:8])
	need := 8 + int(count)*int(dim)*4
	if len(raw) != need {
		return nil, fmt.Errorf("catalog: embeddings %s: have %d bytes, want %d for %dx%d", filepath.Base(path), len(raw), need, count, dim)
	}

	vectors := make([][]float32, count)
	off := 8
	for i := range vectors {
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = math.Float32frombits(binary.LittleEndian.Uint32(raw[off : off+4]))
			off += 4
		}
		vectors[i] = vec
	}
	return vectors, nil
}
