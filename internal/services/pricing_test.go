// internal/services/pricing_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/oopsskin/oopsskin-backend/internal/models"
)

func TestShippingFee(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{"zero subtotal", 0, StandardShippingFee},
		{"below threshold", 50, StandardShippingFee},
		{"exactly at threshold", 100, StandardShippingFee},
		{"just above threshold", 100.01, 0},
		{"well above threshold", 250, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShippingFee(tt.subtotal))
		})
	}
}

func TestItemsSubtotal(t *testing.T) {
	items := models.OrderItems{
		{ProductID: uuid.New(), Name: "Vitamin C Serum", Price: 29.99, Quantity: 2},
		{ProductID: uuid.New(), Name: "Rose Water Toner", Price: 15.50, Quantity: 1},
	}

	assert.InDelta(t, 75.48, ItemsSubtotal(items), 0.001)
}

func TestItemsSubtotalTreatsZeroQuantityAsOne(t *testing.T) {
	items := models.OrderItems{
		{ProductID: uuid.New(), Name: "Clay Mask", Price: 12.00, Quantity: 0},
	}

	assert.Equal(t, 12.00, ItemsSubtotal(items))
}

func TestComputeTotals(t *testing.T) {
	items := models.OrderItems{
		{ProductID: uuid.New(), Name: "Night Cream", Price: 40.00, Quantity: 2},
	}

	// 80 subtotal with a 16.00 discount still pays shipping
	totals := ComputeTotals(items, 16.00)
	assert.Equal(t, 80.00, totals.Subtotal)
	assert.Equal(t, 16.00, totals.Discount)
	assert.Equal(t, StandardShippingFee, totals.Shipping)
	assert.Equal(t, 74.00, totals.Total)
}

func TestComputeTotalsFreeShipping(t *testing.T) {
	items := models.OrderItems{
		{ProductID: uuid.New(), Name: "Gift Set", Price: 75.00, Quantity: 2},
	}

	totals := ComputeTotals(items, 0)
	assert.Equal(t, 150.00, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Shipping)
	assert.Equal(t, 150.00, totals.Total)
}

func TestComputeTotalsClampsDiscount(t *testing.T) {
	items := models.OrderItems{
		{ProductID: uuid.New(), Name: "Lip Balm", Price: 5.00, Quantity: 1},
	}

	// Discount larger than subtotal never drives the total negative
	totals := ComputeTotals(items, 50.00)
	assert.Equal(t, 5.00, totals.Discount)
	assert.Equal(t, StandardShippingFee, totals.Total)

	// Negative discounts are ignored
	totals = ComputeTotals(items, -10)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 15.00, totals.Total)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 16.67, Round2(16.666666))
	assert.Equal(t, 0.1, Round2(0.10000000001))
	assert.Equal(t, 100.0, Round2(99.999))
}
