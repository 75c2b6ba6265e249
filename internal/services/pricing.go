// internal/services/pricing.go
package services

import (
	"math"

	"github.com/oopsskin/oopsskin-backend/internal/models"
)

// Flat shipping rule: free above the threshold, flat fee otherwise.
const (
	FreeShippingThreshold = 100.0
	StandardShippingFee   = 10.0
)

type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ShippingFee returns 0 only when the subtotal strictly exceeds the
// free-shipping threshold.
func ShippingFee(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return StandardShippingFee
}

func ItemsSubtotal(items models.OrderItems) float64 {
	var subtotal float64
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		subtotal += item.Price * float64(qty)
	}
	return subtotal
}

// ComputeTotals prices a cart. The discount is clamped to [0, subtotal], so
// the resulting total can never go negative.
func ComputeTotals(items models.OrderItems, discount float64) OrderTotals {
	subtotal := ItemsSubtotal(items)

	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}

	shipping := ShippingFee(subtotal)

	return OrderTotals{
		Subtotal: Round2(subtotal),
		Shipping: shipping,
		Discount: Round2(discount),
		Total:    Round2(subtotal - discount + shipping),
	}
}
