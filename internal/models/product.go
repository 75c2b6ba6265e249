// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name          string         `json:"name" gorm:"size:255;not null"`
	NameAr        string         `json:"name_ar" gorm:"size:255"`
	Description   string         `json:"description" gorm:"type:text"`
	DescriptionAr string         `json:"description_ar" gorm:"type:text"`
	Category      string         `json:"category" gorm:"size:100;not null;index"`
	CategoryAr    string         `json:"category_ar" gorm:"size:100;index"`
	Price         float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice *float64       `json:"original_price" gorm:"type:decimal(10,2)"`
	Rating        float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewsCount  int64          `json:"reviews_count" gorm:"default:0"`
	Colors        pq.StringArray `json:"colors" gorm:"type:text[]"`
	Images        pq.StringArray `json:"images" gorm:"type:text[]"`
	Badge         string         `json:"badge" gorm:"size:50"`
	Discount      string         `json:"discount" gorm:"size:50"`
	InStock       bool           `json:"in_stock" gorm:"default:true"`
	StockQuantity int            `json:"stock_quantity" gorm:"default:0"`
}
