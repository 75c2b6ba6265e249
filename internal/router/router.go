// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oopsskin/oopsskin-backend/internal/config"
	"github.com/oopsskin/oopsskin-backend/internal/handlers"
	"github.com/oopsskin/oopsskin-backend/internal/i18n"
	"github.com/oopsskin/oopsskin-backend/internal/middleware"
	"github.com/oopsskin/oopsskin-backend/internal/services"
	"github.com/oopsskin/oopsskin-backend/internal/utils"
)

// Initialize wires the services, handlers, and routes. Public storefront
// endpoints sit next to admin endpoints guarded by AuthRequired+AdminRequired.
func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Services
	notificationService := services.NewNotificationService(cfg)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	productService := services.NewProductService(db)
	orderService := services.NewOrderService(db, notificationService)
	voucherService := services.NewVoucherService(db)
	authService := services.NewAuthService(db, cfg)
	paymentService := services.NewPaymentService(db, cfg)

	// Handlers
	productHandler := handlers.NewProductHandler(productService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService)
	voucherHandler := handlers.NewVoucherHandler(voucherService)
	authHandler := handlers.NewAuthHandler(authService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	adminOnly := []gin.HandlerFunc{middleware.AuthRequired(), middleware.AdminRequired()}

	// Health / API index
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Oopsskin API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"products": "/api/products",
				"orders":   "/api/orders",
				"vouchers": "/api/vouchers",
				"auth":     "/api/auth",
			},
		})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/category/:category", productHandler.GetProductsByCategory)
			products.GET("/:id", productHandler.GetProduct)

			products.POST("", append(adminOnly, productHandler.CreateProduct)...)
			products.PUT("/:id", append(adminOnly, productHandler.UpdateProduct)...)
			products.DELETE("/:id", append(adminOnly, productHandler.DeleteProduct)...)
			products.POST("/upload-images",
				middleware.AuthRequired(), middleware.AdminRequired(), middleware.UploadRateLimit(),
				productHandler.UploadProductImages)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/number/:orderNumber", orderHandler.GetOrderByNumber)

			orders.GET("", append(adminOnly, orderHandler.GetOrders)...)
			orders.GET("/stats/summary", append(adminOnly, orderHandler.GetOrderStats)...)
			orders.GET("/:id", append(adminOnly, orderHandler.GetOrder)...)
			orders.PUT("/:id/status", append(adminOnly, orderHandler.UpdateOrderStatus)...)
			orders.PUT("/:id", append(adminOnly, orderHandler.UpdateOrder)...)
			orders.DELETE("/:id", append(adminOnly, orderHandler.DeleteOrder)...)
		}

		vouchers := api.Group("/vouchers")
		{
			vouchers.POST("/validate", voucherHandler.ValidateVoucher)
			vouchers.POST("/apply", voucherHandler.ApplyVoucher)

			vouchers.GET("", append(adminOnly, voucherHandler.GetVouchers)...)
			vouchers.GET("/stats/summary", append(adminOnly, voucherHandler.GetVoucherStats)...)
			vouchers.GET("/:id", append(adminOnly, voucherHandler.GetVoucher)...)
			vouchers.POST("", append(adminOnly, voucherHandler.CreateVoucher)...)
			vouchers.PUT("/:id", append(adminOnly, voucherHandler.UpdateVoucher)...)
			vouchers.PUT("/:id/toggle", append(adminOnly, voucherHandler.ToggleVoucherStatus)...)
			vouchers.DELETE("/:id", append(adminOnly, voucherHandler.DeleteVoucher)...)
		}

		// Checkout is anonymous, so card intents only attach user identity
		// when a token is present.
		payments := api.Group("/payments")
		payments.Use(middleware.OptionalAuth())
		{
			payments.POST("/intent", paymentHandler.CreatePaymentIntent)
		}
	}

	// Local uploads are only served when S3 is not configured.
	if cfg.AWS.AccessKeyID == "" {
		r.Static("/uploads", "./uploads")
	}

	r.NoRoute(func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyRouteNotFound))
	})

	return r, nil
}
