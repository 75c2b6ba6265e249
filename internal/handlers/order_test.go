// internal/handlers/order_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oopsskin/oopsskin-backend/internal/services"
)

// The validation paths below reject before any query runs, so the handlers can
// be exercised without a database.
func newOrderTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	orderService := services.NewOrderService(nil, nil)
	handler := NewOrderHandler(orderService)

	r := gin.New()
	r.POST("/api/orders", handler.CreateOrder)
	r.PUT("/api/orders/:id/status", handler.UpdateOrderStatus)
	r.GET("/api/orders/:id", handler.GetOrder)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	jsonData, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(method, path, bytes.NewBuffer(jsonData))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestCreateOrderMissingFields(t *testing.T) {
	r := newOrderTestRouter()

	// No customer details at all
	w := postJSON(t, r, "POST", "/api/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": "7b38c24e-5f0a-4f35-9f40-1d2f8b9b3a11", "name": "Serum", "price": 29.99, "quantity": 1},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	assert.False(t, response["success"].(bool))
}

func TestCreateOrderEmptyItems(t *testing.T) {
	r := newOrderTestRouter()

	w := postJSON(t, r, "POST", "/api/orders", map[string]interface{}{
		"customer_name":    "Jane Doe",
		"customer_email":   "jane@example.com",
		"customer_phone":   "+1234567890",
		"customer_address": "1 Main St",
		"items":            []map[string]interface{}{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderInvalidEmail(t *testing.T) {
	r := newOrderTestRouter()

	w := postJSON(t, r, "POST", "/api/orders", map[string]interface{}{
		"customer_name":    "Jane Doe",
		"customer_email":   "not-an-email",
		"customer_phone":   "+1234567890",
		"customer_address": "1 Main St",
		"items": []map[string]interface{}{
			{"product_id": "7b38c24e-5f0a-4f35-9f40-1d2f8b9b3a11", "name": "Serum", "price": 29.99, "quantity": 1},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusInvalidValue(t *testing.T) {
	r := newOrderTestRouter()

	w := postJSON(t, r, "PUT", "/api/orders/7b38c24e-5f0a-4f35-9f40-1d2f8b9b3a11/status",
		map[string]interface{}{"status": "teleported"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	assert.False(t, response["success"].(bool))
}

func TestGetOrderMalformedID(t *testing.T) {
	r := newOrderTestRouter()

	req, _ := http.NewRequest("GET", "/api/orders/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
