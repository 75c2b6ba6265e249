// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oopsskin/oopsskin-backend/internal/i18n"
	"github.com/oopsskin/oopsskin-backend/internal/models"
	"github.com/oopsskin/oopsskin-backend/internal/services"
	"github.com/oopsskin/oopsskin-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder is the checkout endpoint. The response carries only the id and
// order number; the storefront redirects to the tracking page with them.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderMissingFields))
		return
	}

	order, err := h.orderService.CreateOrder(&req)
	if err != nil {
		if errors.Is(err, services.ErrOrderMissingFields) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderMissingFields))
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOrderCreateError), err)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyOrderCreated), gin.H{
		"id":           order.ID,
		"order_number": order.OrderNumber,
	})
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	params := utils.GetListParams(c)

	orders, err := h.orderService.ListOrders(params)
	if err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOrdersFetchError), err)
		return
	}

	utils.ListResponse(c, len(orders), orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyOrderNotFound))
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyOrderNotFound))
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOrderFetchError), err)
		return
	}

	utils.SuccessResponse(c, order)
}

// GetOrderByNumber is the public order-tracking lookup.
func (h *OrderHandler) GetOrderByNumber(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	order, err := h.orderService.GetOrderByNumber(c.Param("orderNumber"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyOrderNotFound))
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOrderFetchError), err)
		return
	}

	utils.SuccessResponse(c, order)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyOrderNotFound))
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderInvalidStatus))
		return
	}

	if err := h.orderService.UpdateOrderStatus(id, models.OrderStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderInvalidStatus):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderInvalidStatus))
		case errors.Is(err, services.ErrOrderNotFound):
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyOrderNotFound))
		default:
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOrderStatusUpdateError), err)
		}
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyOrderStatusUpdated))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyOrderNotFound))
		return
	}

	var req services.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid))
		return
	}

	order, err := h.orderService.UpdateOrder(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyOrderNotFound))
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOrderUpdateError), err)
		return
	}

	utils.MessageResponseWithData(c, i18n.T(lang, i18n.KeyOrderUpdated), order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyOrderNotFound))
		return
	}

	if err := h.orderService.DeleteOrder(id); err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOrderDeleteError), err)
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyOrderDeleted))
}

func (h *OrderHandler) GetOrderStats(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	stats, err := h.orderService.GetOrderStats()
	if err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyStatsFetchError), err)
		return
	}

	utils.SuccessResponse(c, stats)
}
