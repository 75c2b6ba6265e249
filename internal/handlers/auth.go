// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oopsskin/oopsskin-backend/internal/i18n"
	"github.com/oopsskin/oopsskin-backend/internal/services"
	"github.com/oopsskin/oopsskin-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid))
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthEmailExists))
			return
		}
		if validationErrs := utils.GetValidationErrors(err); len(validationErrs) > 0 {
			utils.BadRequestResponse(c, validationErrs[0].Message)
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyAuthRegisterSuccess), resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCreds))
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCreds))
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCreds), err)
		return
	}

	utils.MessageResponseWithData(c, i18n.T(lang, i18n.KeyAuthLoginSuccess), resp)
}

// GetProfile returns the authenticated user's account.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userIDStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
		return
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err)
		return
	}

	utils.SuccessResponse(c, user)
}
