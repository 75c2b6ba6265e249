// internal/services/voucher_rules_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oopsskin/oopsskin-backend/internal/models"
)

func activeVoucher() *models.Voucher {
	return &models.Voucher{
		Code:          "WELCOME10",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 10,
		Status:        models.VoucherStatusActive,
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SUMMER20", NormalizeCode("  summer20 "))
	assert.Equal(t, "SAVE5", NormalizeCode("Save5"))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestCheckVoucherExpiry(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	yesterday := now.AddDate(0, 0, -1)
	today := now
	tomorrow := now.AddDate(0, 0, 1)

	v := activeVoucher()

	v.ExpiryDate = &yesterday
	assert.ErrorIs(t, CheckVoucher(v, 100, now), ErrVoucherExpired)

	// Expiring today still works: expiry is inclusive of the expiry date
	v.ExpiryDate = &today
	assert.NoError(t, CheckVoucher(v, 100, now))

	v.ExpiryDate = &tomorrow
	assert.NoError(t, CheckVoucher(v, 100, now))

	v.ExpiryDate = nil
	assert.NoError(t, CheckVoucher(v, 100, now))
}

func TestCheckVoucherUsageLimit(t *testing.T) {
	now := time.Now()
	limit := 100

	v := activeVoucher()
	v.UsageLimit = &limit

	v.UsageCount = 99
	assert.NoError(t, CheckVoucher(v, 100, now))

	v.UsageCount = 100
	assert.ErrorIs(t, CheckVoucher(v, 100, now), ErrVoucherUsageLimitReached)

	// No limit means unlimited use
	v.UsageLimit = nil
	v.UsageCount = 100000
	assert.NoError(t, CheckVoucher(v, 100, now))
}

func TestCheckVoucherMinimumPurchase(t *testing.T) {
	now := time.Now()
	minimum := 50.0

	v := activeVoucher()
	v.MinimumPurchase = &minimum

	err := CheckVoucher(v, 49.99, now)
	var minErr *MinimumPurchaseError
	require.ErrorAs(t, err, &minErr)
	assert.Equal(t, 50.0, minErr.Minimum)

	assert.NoError(t, CheckVoucher(v, 50.0, now))
	assert.NoError(t, CheckVoucher(v, 120.0, now))
}

func TestCheckVoucherOrderOfChecks(t *testing.T) {
	// An expired voucher that also fails the minimum purchase reports expiry
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	minimum := 50.0

	v := activeVoucher()
	v.ExpiryDate = &yesterday
	v.MinimumPurchase = &minimum

	assert.ErrorIs(t, CheckVoucher(v, 10, now), ErrVoucherExpired)
}

func TestComputeDiscountPercentage(t *testing.T) {
	v := activeVoucher()
	v.DiscountValue = 20

	assert.Equal(t, 16.00, ComputeDiscount(v, 80))
	assert.Equal(t, 30.00, ComputeDiscount(v, 150))
}

func TestComputeDiscountPercentageCap(t *testing.T) {
	v := activeVoucher()
	v.DiscountValue = 20
	maximum := 50.0
	v.MaximumDiscount = &maximum

	// 20% of 500 is 100, capped at 50
	assert.Equal(t, 50.00, ComputeDiscount(v, 500))

	// Below the cap the percentage applies untouched
	assert.Equal(t, 40.00, ComputeDiscount(v, 200))
}

func TestComputeDiscountFixed(t *testing.T) {
	v := activeVoucher()
	v.DiscountType = models.DiscountTypeFixed
	v.DiscountValue = 5

	assert.Equal(t, 5.00, ComputeDiscount(v, 30))

	// A fixed discount never exceeds the subtotal
	assert.Equal(t, 3.00, ComputeDiscount(v, 3))
}

func TestComputeDiscountZeroValue(t *testing.T) {
	v := activeVoucher()
	v.DiscountType = models.DiscountTypeFixed
	v.DiscountValue = 0

	assert.Equal(t, 0.0, ComputeDiscount(v, 80))
}

func TestComputeDiscountRounding(t *testing.T) {
	v := activeVoucher()
	v.DiscountValue = 15

	// 15% of 33.33 = 4.9995, rounded to 5.00
	assert.Equal(t, 5.00, ComputeDiscount(v, 33.33))
}

func TestCreateVoucherRequiredFields(t *testing.T) {
	// These paths reject before any query, so no database is needed.
	svc := NewVoucherService(nil)

	_, err := svc.CreateVoucher(&CreateVoucherRequest{})
	assert.ErrorIs(t, err, ErrVoucherFieldsRequired)

	_, err = svc.CreateVoucher(&CreateVoucherRequest{
		Code:         "SAVE5",
		DiscountType: models.DiscountTypeFixed,
	})
	assert.ErrorIs(t, err, ErrVoucherFieldsRequired)

	_, err = svc.CreateVoucher(&CreateVoucherRequest{
		Code:          "SAVE5",
		DiscountType:  "bogus",
		DiscountValue: 5,
	})
	assert.ErrorIs(t, err, ErrVoucherFieldsRequired)
}

func TestVoucherValidateEmptyCode(t *testing.T) {
	svc := NewVoucherService(nil)

	_, err := svc.Validate("", 80)
	assert.ErrorIs(t, err, ErrVoucherCodeRequired)

	err = svc.Apply("  ")
	assert.ErrorIs(t, err, ErrVoucherCodeRequired)
}
