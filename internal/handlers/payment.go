// internal/handlers/payment.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/oopsskin/oopsskin-backend/internal/i18n"
	"github.com/oopsskin/oopsskin-backend/internal/services"
	"github.com/oopsskin/oopsskin-backend/internal/utils"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentIntent returns a Stripe client secret for a card order.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid))
		return
	}

	resp, err := h.paymentService.CreatePaymentIntent(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyOrderNotFound))
		case errors.Is(err, services.ErrPaymentNotCard):
			utils.BadRequestResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyPaymentIntentError), err)
		}
		return
	}

	utils.SuccessResponse(c, resp)
}
