package implementation

import (
	"context"
	"fmt"
	"log"

	"bytemart-search-be/internal/entity"
	"bytemart-search-be/internal/mapper"
	"bytemart-search-be/internal/repository/contract"
	"bytemart-search-be/pkg/catalog"
)

// PostgresLoader builds the in-memory catalog snapshot from the database
// instead of an exported snapshot directory.
type PostgresLoader struct {
	repo   contract.CatalogRepository
	mapper *mapper.CatalogMapper
	logger *log.Logger
}

func NewPostgresLoader(repo contract.CatalogRepository, m *mapper.CatalogMapper, logger *log.Logger) *PostgresLoader {
	return &PostgresLoader{repo: repo, mapper: m, logger: logger}
}

func (l *PostgresLoader) Load(ctx context.Context) (*catalog.Snapshot, error) {
	products, err := l.repo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch products: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog: no products in database")
	}

	items := make([]entity.CatalogItem, len(products))
	combined := make([][]float32, len(products))
	text := make([][]float32, len(products))
	for i := range products {
		items[i] = l.mapper.ToEntity(&products[i])
		combined[i] = products[i].CombinedEmbedding.Slice()
		text[i] = products[i].TextEmbedding.Slice()
	}

	snap, err := catalog.Build(items, combined, text)
	if err != nil {
		return nil, err
	}
	l.logger.Printf("INFO: catalog snapshot loaded from postgres: %d items", snap.Len())
	return snap, nil
}
