// internal/handlers/voucher.go
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

type VoucherHandler struct {
	voucherService *services.VoucherService
}

func NewVoucherHandler(voucherService *services.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

type validateVoucherRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

type applyVoucherRequest struct {
	Code string `json:"code"`
}

// ValidateVoucher checks a code against the cart subtotal and returns the
// discount the storefront should apply. Unknown and inactive codes both come
// back 404 so the storefront cannot probe which codes exist but are disabled.
func (h *VoucherHandler) ValidateVoucher(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req validateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyVoucherCodeRequired))
		return
	}

	application, err := h.voucherService.Validate(req.Code, req.Subtotal)
	if err != nil {
		var minErr *services.MinimumPurchaseError
		switch {
		case errors.Is(err, services.ErrVoucherCodeRequired):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyVoucherCodeRequired))
		case errors.Is(err, services.ErrVoucherInvalid):
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyVoucherInvalid))
		case errors.Is(err, services.ErrVoucherExpired):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyVoucherExpired))
		case errors.Is(err, services.ErrVoucherUsageLimitReached):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyVoucherUsageLimit))
		case errors.As(err, &minErr):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyVoucherMinimumPurchase, minErr.Minimum))
		default:
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyVoucherValidateError), err)
		}
		return
	}

	utils.MessageResponseWithData(c, i18n.T(lang, i18n.KeyVoucherApplied), application)
}

// ApplyVoucher records one use of a voucher after checkout completes.
func (h *VoucherHandler) ApplyVoucher(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req applyVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyVoucherCodeRequired))
		return
	}

	if err := h.voucherService.Apply(req.Code); err != nil {
		if errors.Is(err, services.ErrVoucherCodeRequired) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyVoucherCodeRequired))
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyVoucherApplyError), err)
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyVoucherUsageRecorded))
}

func (h *VoucherHandler) GetVouchers(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	filter := services.VoucherListFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	}

	vouchers, err := h.voucherService.ListVouchers(filter)
	if err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyVouchersFetchError), err)
		return
	}

	utils.ListResponse(c, len(vouchers), vouchers)
}

func (h *VoucherHandler) GetVoucher(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyVoucherNotFound))
		return
	}

	voucher, err := h.voucherService.GetVoucher(id)
	if err != nil {
		if errors.Is(err, services.ErrVoucherNotFound) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyVoucherNotFound))
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyVoucherFetchError), err)
		return
	}

	utils.SuccessResponse(c, voucher)
}

func (h *VoucherHandler) CreateVoucher(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyVoucherFieldsRequired))
		return
	}

	voucher, err := h.voucherService.CreateVoucher(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVoucherFieldsRequired):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyVoucherFieldsRequired))
		case errors.Is(err, services.ErrVoucherCodeExists):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyVoucherCodeExists))
		default:
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyVoucherCreateError), err)
		}
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyVoucherCreated), voucher)
}

func (h *VoucherHandler) UpdateVoucher(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyVoucherNotFound))
		return
	}

	var req services.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid))
		return
	}

	voucher, err := h.voucherService.UpdateVoucher(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVoucherNotFound):
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyVoucherNotFound))
		case errors.Is(err, services.ErrVoucherCodeExists):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyVoucherCodeExists))
		default:
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyVoucherUpdateError), err)
		}
		return
	}

	utils.MessageResponseWithData(c, i18n.T(lang, i18n.KeyVoucherUpdated), voucher)
}

// ToggleVoucherStatus flips a voucher between active and inactive.
func (h *VoucherHandler) ToggleVoucherStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyVoucherNotFound))
		return
	}

	newStatus, err := h.voucherService.ToggleVoucher(id)
	if err != nil {
		if errors.Is(err, services.ErrVoucherNotFound) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyVoucherNotFound))
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyVoucherToggleError), err)
		return
	}

	messageKey := i18n.KeyVoucherDeactivated
	if newStatus == models.VoucherStatusActive {
		messageKey = i18n.KeyVoucherActivated
	}

	utils.MessageResponseWithData(c, i18n.T(lang, messageKey), gin.H{"status": newStatus})
}

func (h *VoucherHandler) DeleteVoucher(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyVoucherNotFound))
		return
	}

	if err := h.voucherService.DeleteVoucher(id); err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyVoucherDeleteError), err)
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyVoucherDeleted))
}

func (h *VoucherHandler) GetVoucherStats(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	stats, err := h.voucherService.GetVoucherStats()
	if err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyStatsFetchError), err)
		return
	}

	utils.SuccessResponse(c, stats)
}
