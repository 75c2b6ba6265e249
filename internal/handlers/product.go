// internal/handlers/product.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oopsskin/oopsskin-backend/internal/i18n"
	"github.com/oopsskin/oopsskin-backend/internal/services"
	"github.com/oopsskin/oopsskin-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
	}
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	params := utils.GetListParams(c)

	products, err := h.productService.ListProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyProductsFetchError), err)
		return
	}

	utils.ListResponse(c, len(products), products)
}

func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	products, err := h.productService.ListProductsByCategory(c.Param("category"))
	if err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyProductsFetchError), err)
		return
	}

	utils.ListResponse(c, len(products), products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyProductFetchError), err)
		return
	}

	utils.SuccessResponse(c, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid))
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyProductCreateError), err)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyProductCreated), product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid))
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyProductUpdateError), err)
		return
	}

	utils.MessageResponseWithData(c, i18n.T(lang, i18n.KeyProductUpdated), product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyProductDeleteError), err)
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyProductDeleted))
}

// UploadProductImages accepts multipart form files under "images" and returns
// the stored URLs for the admin panel to attach to a product.
func (h *ProductHandler) UploadProductImages(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyUploadNoImages))
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyUploadNoImages))
		return
	}

	options := h.storageService.GetImageUploadOptions()

	results := make([]*services.UploadResult, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyUploadError), err)
			return
		}

		result, err := h.storageService.UploadFile(file, header, options)
		file.Close()
		if err != nil {
			utils.BadRequestResponse(c, err.Error())
			return
		}

		results = append(results, result)
	}

	utils.MessageResponseWithData(c, i18n.T(lang, i18n.KeyUploadSuccess), results)
}
