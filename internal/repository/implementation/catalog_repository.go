package implementation

import (
	"context"

	"bytemart-search-be/internal/model"
	"bytemart-search-be/internal/repository/contract"

	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) FetchAll(ctx context.Context) ([]model.CatalogProduct, error) {
	var products []model.CatalogProduct
	// Snapshot positions must be stable across restarts, hence the ordering.
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *catalogRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.CatalogProduct{}).Count(&n).Error
	return n, err
}
