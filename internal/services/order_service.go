// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oopsskin/oopsskin-backend/internal/database"
	"github.com/oopsskin/oopsskin-backend/internal/models"
	"github.com/oopsskin/oopsskin-backend/internal/utils"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderMissingFields = errors.New("missing required fields")
	ErrOrderInvalidStatus = errors.New("invalid status value")
)

type OrderService struct {
	db                  *gorm.DB
	notificationService *NotificationService
}

func NewOrderService(db *gorm.DB, notificationService *NotificationService) *OrderService {
	return &OrderService{
		db:                  db,
		notificationService: notificationService,
	}
}

type CreateOrderRequest struct {
	CustomerName    string            `json:"customer_name" validate:"required"`
	CustomerEmail   string            `json:"customer_email" validate:"required,email"`
	CustomerPhone   string            `json:"customer_phone" validate:"required"`
	CustomerAddress string            `json:"customer_address" validate:"required"`
	CustomerCity    string            `json:"customer_city"`
	CustomerCountry string            `json:"customer_country"`
	Items           models.OrderItems `json:"items" validate:"required,min=1"`
	Subtotal        float64           `json:"subtotal"`
	Shipping        float64           `json:"shipping"`
	Total           float64           `json:"total"`
	PaymentMethod   string            `json:"payment_method"`
	Notes           string            `json:"notes"`
}

// UpdateOrderRequest whitelists the admin-editable fields; nil pointers leave
// columns untouched.
type UpdateOrderRequest struct {
	CustomerName    *string            `json:"customer_name"`
	CustomerEmail   *string            `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   *string            `json:"customer_phone"`
	CustomerAddress *string            `json:"customer_address"`
	CustomerCity    *string            `json:"customer_city"`
	CustomerCountry *string            `json:"customer_country"`
	Items           *models.OrderItems `json:"items"`
	PaymentMethod   *string            `json:"payment_method"`
	Notes           *string            `json:"notes"`
}

type OrderStats struct {
	TotalOrders     int64   `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	PendingOrders   int64   `json:"pending_orders"`
	CompletedOrders int64   `json:"completed_orders"`
}

// CreateOrder validates the checkout payload, prices the order, and persists
// it with status "pending". The order insert and the per-line stock
// decrements run inside one transaction, so a failed decrement rolls the
// order back.
func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ErrOrderMissingFields
	}

	// The storefront sends voucher-adjusted totals; fall back to server-side
	// pricing when it sends none.
	subtotal := req.Subtotal
	shipping := req.Shipping
	total := req.Total
	if total == 0 {
		totals := ComputeTotals(req.Items, 0)
		subtotal = totals.Subtotal
		shipping = totals.Shipping
		total = totals.Total
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCashOnDelivery
	}

	order := &models.Order{
		OrderNumber:     utils.GenerateOrderNumber(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		CustomerCity:    req.CustomerCity,
		CustomerCountry: req.CustomerCountry,
		Items:           req.Items,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Total:           total,
		PaymentMethod:   paymentMethod,
		Status:          models.OrderStatusPending,
		Notes:           req.Notes,
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		// Decrement stock per line. No floor at zero: overselling surfaces
		// as negative stock for the admin panel rather than a lost sale.
		for _, item := range order.Items {
			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty)).Error; err != nil {
				return fmt.Errorf("failed to update stock for product %s: %w", item.ProductID, err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// Send confirmation email async; checkout never waits on SMTP.
	if s.notificationService != nil {
		go s.notificationService.SendOrderConfirmationEmail(order)
	}

	return order, nil
}

func (s *OrderService) ListOrders(params utils.ListParams) ([]models.Order, error) {
	query := s.db.Model(&models.Order{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	query = query.Order("created_at DESC")
	query = utils.ApplyLimitOffset(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (s *OrderService) GetOrderByNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (s *OrderService) UpdateOrderStatus(id uuid.UUID, status models.OrderStatus) error {
	if !status.IsValid() {
		return ErrOrderInvalidStatus
	}

	result := s.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (s *OrderService) UpdateOrder(id uuid.UUID, req *UpdateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		updates["customer_email"] = *req.CustomerEmail
	}
	if req.CustomerPhone != nil {
		updates["customer_phone"] = *req.CustomerPhone
	}
	if req.CustomerAddress != nil {
		updates["customer_address"] = *req.CustomerAddress
	}
	if req.CustomerCity != nil {
		updates["customer_city"] = *req.CustomerCity
	}
	if req.CustomerCountry != nil {
		updates["customer_country"] = *req.CustomerCountry
	}
	if req.Items != nil {
		updates["items"] = *req.Items
	}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&order).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}
	}

	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &order, nil
}

func (s *OrderService) DeleteOrder(id uuid.UUID) error {
	if err := s.db.Delete(&models.Order{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

// GetOrderStats summarizes orders for the admin dashboard. Revenue excludes
// cancelled orders.
func (s *OrderService) GetOrderStats() (*OrderStats, error) {
	stats := &OrderStats{}

	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	s.db.Model(&models.Order{}).
		Where("status != ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.TotalRevenue)

	s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&stats.PendingOrders)

	s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusDelivered).
		Count(&stats.CompletedOrders)

	return stats, nil
}
