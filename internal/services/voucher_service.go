// internal/services/voucher_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oopsskin/oopsskin-backend/internal/models"
	"github.com/oopsskin/oopsskin-backend/internal/utils"
)

// Business rejections surfaced by voucher validation. Handlers map these to
// the API's status codes and localized messages.
var (
	ErrVoucherCodeRequired      = errors.New("voucher code is required")
	ErrVoucherInvalid           = errors.New("invalid or inactive voucher code")
	ErrVoucherExpired           = errors.New("voucher has expired")
	ErrVoucherUsageLimitReached = errors.New("voucher usage limit reached")
	ErrVoucherNotFound          = errors.New("voucher not found")
	ErrVoucherFieldsRequired    = errors.New("code, discount type, and discount value are required")
	ErrVoucherCodeExists        = errors.New("voucher code already exists")
)

// MinimumPurchaseError carries the threshold so the handler can include it in
// the rejection message.
type MinimumPurchaseError struct {
	Minimum float64
}

func (e *MinimumPurchaseError) Error() string {
	return fmt.Sprintf("minimum purchase of %v required", e.Minimum)
}

type VoucherService struct {
	db *gorm.DB
}

func NewVoucherService(db *gorm.DB) *VoucherService {
	return &VoucherService{db: db}
}

// VoucherApplication is the payload returned by a successful validation.
type VoucherApplication struct {
	Code           string              `json:"code"`
	DiscountType   models.DiscountType `json:"discount_type"`
	DiscountValue  float64             `json:"discount_value"`
	DiscountAmount float64             `json:"discount_amount"`
	Description    string              `json:"description"`
}

type CreateVoucherRequest struct {
	Code            string              `json:"code"`
	Description     string              `json:"description"`
	DescriptionAr   string              `json:"description_ar"`
	DiscountType    models.DiscountType `json:"discount_type"`
	DiscountValue   float64             `json:"discount_value"`
	MinimumPurchase *float64            `json:"minimum_purchase"`
	MaximumDiscount *float64            `json:"maximum_discount"`
	UsageLimit      *int                `json:"usage_limit"`
	ExpiryDate      *time.Time          `json:"expiry_date"`
	Status          models.VoucherStatus `json:"status"`
}

// UpdateVoucherRequest whitelists the fields the admin panel may change.
// Nil pointers leave columns untouched.
type UpdateVoucherRequest struct {
	Code            *string               `json:"code"`
	Description     *string               `json:"description"`
	DescriptionAr   *string               `json:"description_ar"`
	DiscountType    *models.DiscountType  `json:"discount_type" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue   *float64              `json:"discount_value" validate:"omitempty,min=0"`
	MinimumPurchase *float64              `json:"minimum_purchase"`
	MaximumDiscount *float64              `json:"maximum_discount"`
	UsageLimit      *int                  `json:"usage_limit"`
	ExpiryDate      *time.Time            `json:"expiry_date"`
	Status          *models.VoucherStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

type VoucherListFilter struct {
	Status string
	Type   string
}

type VoucherStats struct {
	TotalVouchers   int64 `json:"total_vouchers"`
	ActiveVouchers  int64 `json:"active_vouchers"`
	TotalUsage      int64 `json:"total_usage"`
	ExpiredVouchers int64 `json:"expired_vouchers"`
}

// NormalizeCode upper-cases a voucher code; codes are stored upper-cased and
// matched case-insensitively.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CheckVoucher runs the ordered business checks against an already-loaded
// voucher. First failing check wins. Expiry compares calendar dates: a
// voucher expiring yesterday is rejected, one expiring today or later is
// accepted.
func CheckVoucher(v *models.Voucher, subtotal float64, now time.Time) error {
	if v.ExpiryDate != nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		expiry := time.Date(v.ExpiryDate.Year(), v.ExpiryDate.Month(), v.ExpiryDate.Day(), 0, 0, 0, 0, time.UTC)
		if expiry.Before(today) {
			return ErrVoucherExpired
		}
	}

	if v.UsageLimit != nil && v.UsageCount >= *v.UsageLimit {
		return ErrVoucherUsageLimitReached
	}

	if v.MinimumPurchase != nil && subtotal < *v.MinimumPurchase {
		return &MinimumPurchaseError{Minimum: *v.MinimumPurchase}
	}

	return nil
}

// ComputeDiscount returns the discount amount for a voucher against a
// subtotal, rounded to 2 decimal places. Percentage discounts are capped by
// maximum_discount; every discount is clamped to the subtotal.
func ComputeDiscount(v *models.Voucher, subtotal float64) float64 {
	var discount float64

	if v.DiscountType == models.DiscountTypePercentage {
		discount = subtotal * v.DiscountValue / 100
		if v.MaximumDiscount != nil && discount > *v.MaximumDiscount {
			discount = *v.MaximumDiscount
		}
	} else {
		discount = v.DiscountValue
	}

	if discount > subtotal {
		discount = subtotal
	}

	return Round2(discount)
}

// Validate checks a code against an order subtotal and returns the computed
// application, or one of the rejection errors above.
func (s *VoucherService) Validate(code string, subtotal float64) (*VoucherApplication, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return nil, ErrVoucherCodeRequired
	}

	var voucher models.Voucher
	if err := s.db.Where("code = ? AND status = ?", normalized, models.VoucherStatusActive).
		First(&voucher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherInvalid
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := CheckVoucher(&voucher, subtotal, time.Now()); err != nil {
		return nil, err
	}

	return &VoucherApplication{
		Code:           voucher.Code,
		DiscountType:   voucher.DiscountType,
		DiscountValue:  voucher.DiscountValue,
		DiscountAmount: ComputeDiscount(&voucher, subtotal),
		Description:    voucher.Description,
	}, nil
}

// Apply records one use of a voucher. The increment is a single conditional
// UPDATE so concurrent applies cannot push usage_count past usage_limit.
// Matching zero rows is not an error; the caller already validated the code.
func (s *VoucherService) Apply(code string) error {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return ErrVoucherCodeRequired
	}

	result := s.db.Model(&models.Voucher{}).
		Where("code = ? AND status = ?", normalized, models.VoucherStatusActive).
		Where("usage_limit IS NULL OR usage_count < usage_limit").
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))

	if result.Error != nil {
		return fmt.Errorf("failed to record voucher usage: %w", result.Error)
	}

	return nil
}

func (s *VoucherService) ListVouchers(filter VoucherListFilter) ([]models.Voucher, error) {
	query := s.db.Model(&models.Voucher{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("discount_type = ?", filter.Type)
	}

	var vouchers []models.Voucher
	if err := query.Order("created_at DESC").Find(&vouchers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch vouchers: %w", err)
	}

	return vouchers, nil
}

func (s *VoucherService) GetVoucher(id uuid.UUID) (*models.Voucher, error) {
	var voucher models.Voucher
	if err := s.db.First(&voucher, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &voucher, nil
}

func (s *VoucherService) CreateVoucher(req *CreateVoucherRequest) (*models.Voucher, error) {
	req.Code = NormalizeCode(req.Code)

	if req.Code == "" || req.DiscountType == "" || req.DiscountValue == 0 {
		return nil, ErrVoucherFieldsRequired
	}

	if req.DiscountType != models.DiscountTypePercentage && req.DiscountType != models.DiscountTypeFixed {
		return nil, ErrVoucherFieldsRequired
	}

	// Check if code already exists
	var count int64
	if err := s.db.Model(&models.Voucher{}).Where("code = ?", req.Code).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, ErrVoucherCodeExists
	}

	status := req.Status
	if status == "" {
		status = models.VoucherStatusActive
	}

	voucher := &models.Voucher{
		Code:            req.Code,
		Description:     req.Description,
		DescriptionAr:   req.DescriptionAr,
		DiscountType:    req.DiscountType,
		DiscountValue:   req.DiscountValue,
		MinimumPurchase: req.MinimumPurchase,
		MaximumDiscount: req.MaximumDiscount,
		UsageLimit:      req.UsageLimit,
		ExpiryDate:      req.ExpiryDate,
		Status:          status,
	}

	if err := s.db.Create(voucher).Error; err != nil {
		return nil, fmt.Errorf("failed to create voucher: %w", err)
	}

	return voucher, nil
}

func (s *VoucherService) UpdateVoucher(id uuid.UUID, req *UpdateVoucherRequest) (*models.Voucher, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var voucher models.Voucher
	if err := s.db.First(&voucher, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Code != nil {
		code := NormalizeCode(*req.Code)
		if code != voucher.Code {
			var count int64
			if err := s.db.Model(&models.Voucher{}).Where("code = ?", code).Count(&count).Error; err != nil {
				return nil, fmt.Errorf("database error: %w", err)
			}
			if count > 0 {
				return nil, ErrVoucherCodeExists
			}
		}
		updates["code"] = code
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DescriptionAr != nil {
		updates["description_ar"] = *req.DescriptionAr
	}
	if req.DiscountType != nil {
		updates["discount_type"] = *req.DiscountType
	}
	if req.DiscountValue != nil {
		updates["discount_value"] = *req.DiscountValue
	}
	if req.MinimumPurchase != nil {
		updates["minimum_purchase"] = *req.MinimumPurchase
	}
	if req.MaximumDiscount != nil {
		updates["maximum_discount"] = *req.MaximumDiscount
	}
	if req.UsageLimit != nil {
		updates["usage_limit"] = *req.UsageLimit
	}
	if req.ExpiryDate != nil {
		updates["expiry_date"] = *req.ExpiryDate
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(&voucher).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update voucher: %w", err)
		}
	}

	if err := s.db.First(&voucher, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &voucher, nil
}

// ToggleVoucher flips active/inactive and returns the new status.
func (s *VoucherService) ToggleVoucher(id uuid.UUID) (models.VoucherStatus, error) {
	var voucher models.Voucher
	if err := s.db.First(&voucher, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrVoucherNotFound
		}
		return "", fmt.Errorf("database error: %w", err)
	}

	newStatus := models.VoucherStatusActive
	if voucher.Status == models.VoucherStatusActive {
		newStatus = models.VoucherStatusInactive
	}

	if err := s.db.Model(&voucher).Update("status", newStatus).Error; err != nil {
		return "", fmt.Errorf("failed to toggle voucher status: %w", err)
	}

	return newStatus, nil
}

func (s *VoucherService) DeleteVoucher(id uuid.UUID) error {
	if err := s.db.Delete(&models.Voucher{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete voucher: %w", err)
	}
	return nil
}

func (s *VoucherService) GetVoucherStats() (*VoucherStats, error) {
	stats := &VoucherStats{}

	if err := s.db.Model(&models.Voucher{}).Count(&stats.TotalVouchers).Error; err != nil {
		return nil, fmt.Errorf("failed to count vouchers: %w", err)
	}

	s.db.Model(&models.Voucher{}).
		Where("status = ?", models.VoucherStatusActive).
		Count(&stats.ActiveVouchers)

	s.db.Model(&models.Voucher{}).
		Select("COALESCE(SUM(usage_count), 0)").
		Scan(&stats.TotalUsage)

	s.db.Model(&models.Voucher{}).
		Where("expiry_date < ? AND status = ?", time.Now(), models.VoucherStatusActive).
		Count(&stats.ExpiredVouchers)

	return stats, nil
}
