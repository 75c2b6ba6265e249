// internal/models/order.go
package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
)

// OrderItem is an immutable snapshot of a cart line at checkout time.
// Product name and unit price are copied so later catalog edits do not
// rewrite order history.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

// OrderItems is stored as a single JSON column, matching the shape the
// storefront sends.
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		return json.Marshal(OrderItems{})
	}
	return json.Marshal(items)
}

func (items *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*items = OrderItems{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, items)
}

type Order struct {
	BaseModel
	OrderNumber     string      `json:"order_number" gorm:"uniqueIndex;size:50;not null"`
	CustomerName    string      `json:"customer_name" gorm:"size:255;not null"`
	CustomerEmail   string      `json:"customer_email" gorm:"size:255;not null"`
	CustomerPhone   string      `json:"customer_phone" gorm:"size:50;not null"`
	CustomerAddress string      `json:"customer_address" gorm:"type:text;not null"`
	CustomerCity    string      `json:"customer_city" gorm:"size:100"`
	CustomerCountry string      `json:"customer_country" gorm:"size:100"`
	Items           OrderItems  `json:"items" gorm:"type:jsonb;not null"`
	Subtotal        float64     `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	Shipping        float64     `json:"shipping" gorm:"type:decimal(10,2);default:0"`
	Total           float64     `json:"total" gorm:"type:decimal(10,2);not null"`
	PaymentMethod   string      `json:"payment_method" gorm:"size:50;default:'cash_on_delivery'"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	Notes           string      `json:"notes" gorm:"type:text"`
}
