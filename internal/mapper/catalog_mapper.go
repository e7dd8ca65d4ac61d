package mapper

import (
	"encoding/json"

	"bytemart-search-be/internal/dto"
	"bytemart-search-be/internal/entity"
	"bytemart-search-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) ToEntity(p *model.CatalogProduct) entity.CatalogItem {
	var tags []string
	if len(p.Tags) > 0 {
		// Tags are advisory; a corrupt column just reads as untagged.
		_ = json.Unmarshal(p.Tags, &tags)
	}
	return entity.CatalogItem{
		Index:       p.Id,
		Description: p.Description,
		Price:       p.Price,
		Rating:      p.Rating,
		RatingCount: p.RatingCount,
		ImagePath:   p.ImagePath,
		Tags:        tags,
	}
}

// ToResultItem hydrates one ranked index into a response item. passed marks
// whether the item sits in the hard-filter passing head.
func (m *CatalogMapper) ToResultItem(item entity.CatalogItem, passed bool) dto.SearchResultItem {
	return dto.SearchResultItem{
		Index:         item.Index,
		Description:   item.Description,
		Price:         item.Price,
		Rating:        item.Rating,
		RatingCount:   item.RatingCount,
		ImagePath:     item.ImagePath,
		Tags:          item.Tags,
		PassedFilters: passed,
	}
}
