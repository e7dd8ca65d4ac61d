package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type CatalogProduct struct {
	Id                int             `gorm:"primaryKey;autoIncrement:false"`
	Description       string          `gorm:"type:text;not null"`
	Price             string          `gorm:"type:varchar(32)"`
	Rating            string          `gorm:"type:varchar(16)"`
	RatingCount       string          `gorm:"type:varchar(32)"`
	ImagePath         string          `gorm:"type:varchar(512)"`
	Tags              datatypes.JSON  `gorm:"type:jsonb"`
	CombinedEmbedding pgvector.Vector `gorm:"type:vector(768)"` // jina-clip-v1 uses 768 dimensions
	TextEmbedding     pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt         time.Time       `gorm:"autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`
}

func (CatalogProduct) TableName() string {
	return "catalog_products"
}
