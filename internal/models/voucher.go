// internal/models/voucher.go
package models

import (
	"time"
)

// Voucher codes are stored upper-cased; lookups normalize first.
type Voucher struct {
	BaseModel
	Code            string        `json:"code" gorm:"uniqueIndex;size:50;not null"`
	Description     string        `json:"description" gorm:"size:255"`
	DescriptionAr   string        `json:"description_ar" gorm:"size:255"`
	DiscountType    DiscountType  `json:"discount_type" gorm:"type:varchar(20);not null"`
	DiscountValue   float64       `json:"discount_value" gorm:"type:decimal(10,2);not null"`
	MinimumPurchase *float64      `json:"minimum_purchase" gorm:"type:decimal(10,2)"`
	MaximumDiscount *float64      `json:"maximum_discount" gorm:"type:decimal(10,2)"`
	UsageLimit      *int          `json:"usage_limit"`
	UsageCount      int           `json:"usage_count" gorm:"default:0"`
	ExpiryDate      *time.Time    `json:"expiry_date" gorm:"type:date"`
	Status          VoucherStatus `json:"status" gorm:"type:varchar(20);default:'active';index"`
}
