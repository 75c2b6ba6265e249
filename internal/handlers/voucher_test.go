// internal/handlers/voucher_test.go
package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/oopsskin/oopsskin-backend/internal/services"
)

func newVoucherTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	voucherService := services.NewVoucherService(nil)
	handler := NewVoucherHandler(voucherService)

	r := gin.New()
	r.POST("/api/vouchers/validate", handler.ValidateVoucher)
	r.POST("/api/vouchers/apply", handler.ApplyVoucher)
	return r
}

func TestValidateVoucherEmptyCode(t *testing.T) {
	r := newVoucherTestRouter()

	w := postJSON(t, r, "POST", "/api/vouchers/validate",
		map[string]interface{}{"code": "", "subtotal": 80.0})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	assert.False(t, response["success"].(bool))
}

func TestValidateVoucherWhitespaceCode(t *testing.T) {
	r := newVoucherTestRouter()

	w := postJSON(t, r, "POST", "/api/vouchers/validate",
		map[string]interface{}{"code": "   ", "subtotal": 80.0})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyVoucherEmptyCode(t *testing.T) {
	r := newVoucherTestRouter()

	w := postJSON(t, r, "POST", "/api/vouchers/apply",
		map[string]interface{}{"code": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	assert.False(t, response["success"].(bool))
}
