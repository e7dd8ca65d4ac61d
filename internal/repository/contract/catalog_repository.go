package contract

import (
	"context"

	"bytemart-search-be/internal/model"
)

// CatalogRepository reads the product catalog. The pipeline never writes
// back; tags live only on the in-memory snapshot.
type CatalogRepository interface {
	FetchAll(ctx context.Context) ([]model.CatalogProduct, error)
	Count(ctx context.Context) (int64, error)
}
