// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/oopsskin/oopsskin-backend/internal/models"
	"github.com/oopsskin/oopsskin-backend/internal/utils"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	NameAr        string   `json:"name_ar" validate:"max=255"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"description_ar"`
	Category      string   `json:"category" validate:"required,max=100"`
	CategoryAr    string   `json:"category_ar" validate:"max=100"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price" validate:"omitempty,gt=0"`
	Rating        float64  `json:"rating" validate:"min=0,max=5"`
	ReviewsCount  int64    `json:"reviews_count" validate:"min=0"`
	Colors        []string `json:"colors"`
	Images        []string `json:"images"`
	Badge         string   `json:"badge" validate:"max=50"`
	Discount      string   `json:"discount" validate:"max=50"`
	InStock       *bool    `json:"in_stock"`
	StockQuantity int      `json:"stock_quantity" validate:"min=0"`
}

// UpdateProductRequest whitelists admin-editable columns; nil pointers leave
// fields untouched.
type UpdateProductRequest struct {
	Name          *string   `json:"name" validate:"omitempty,max=255"`
	NameAr        *string   `json:"name_ar" validate:"omitempty,max=255"`
	Description   *string   `json:"description"`
	DescriptionAr *string   `json:"description_ar"`
	Category      *string   `json:"category" validate:"omitempty,max=100"`
	CategoryAr    *string   `json:"category_ar" validate:"omitempty,max=100"`
	Price         *float64  `json:"price" validate:"omitempty,gt=0"`
	OriginalPrice *float64  `json:"original_price" validate:"omitempty,gt=0"`
	Rating        *float64  `json:"rating" validate:"omitempty,min=0,max=5"`
	ReviewsCount  *int64    `json:"reviews_count" validate:"omitempty,min=0"`
	Colors        *[]string `json:"colors"`
	Images        *[]string `json:"images"`
	Badge         *string   `json:"badge" validate:"omitempty,max=50"`
	Discount      *string   `json:"discount" validate:"omitempty,max=50"`
	InStock       *bool     `json:"in_stock"`
	StockQuantity *int      `json:"stock_quantity"`
}

// ListProducts filters, sorts, and paginates the catalog. Category matches
// either localized category column; search spans both names and the English
// description. Default sort is "best selling" (reviews_count desc).
func (s *ProductService) ListProducts(params utils.ListParams) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})

	if params.Category != "" && params.Category != "All" {
		query = query.Where("category = ? OR category_ar = ?", params.Category, params.Category)
	}

	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR name_ar LIKE ? OR description ILIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	switch params.Sort {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "rating":
		query = query.Order("rating DESC")
	case "newest":
		query = query.Order("created_at DESC")
	default:
		query = query.Order("reviews_count DESC") // Best selling
	}

	query = utils.ApplyLimitOffset(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (s *ProductService) ListProductsByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("category = ? OR category_ar = ?", category, category).
		Order("reviews_count DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := &models.Product{
		Name:          req.Name,
		NameAr:        req.NameAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		Category:      req.Category,
		CategoryAr:    req.CategoryAr,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Rating:        req.Rating,
		ReviewsCount:  req.ReviewsCount,
		Colors:        pq.StringArray(req.Colors),
		Images:        pq.StringArray(req.Images),
		Badge:         req.Badge,
		Discount:      req.Discount,
		InStock:       inStock,
		StockQuantity: req.StockQuantity,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.NameAr != nil {
		updates["name_ar"] = *req.NameAr
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DescriptionAr != nil {
		updates["description_ar"] = *req.DescriptionAr
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.CategoryAr != nil {
		updates["category_ar"] = *req.CategoryAr
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		updates["original_price"] = *req.OriginalPrice
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.ReviewsCount != nil {
		updates["reviews_count"] = *req.ReviewsCount
	}
	if req.Colors != nil {
		updates["colors"] = pq.StringArray(*req.Colors)
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(*req.Images)
	}
	if req.Badge != nil {
		updates["badge"] = *req.Badge
	}
	if req.Discount != nil {
		updates["discount"] = *req.Discount
	}
	if req.InStock != nil {
		updates["in_stock"] = *req.InStock
	}
	if req.StockQuantity != nil {
		updates["stock_quantity"] = *req.StockQuantity
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	if err := s.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
