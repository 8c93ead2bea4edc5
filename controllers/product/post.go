package productcontroller

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
)

type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	SKU          string  `json:"sku" binding:"required"`
	SalePrice    float64 `json:"sale_price" binding:"required,gt=0"`
	RegularPrice float64 `json:"regular_price"`
	Image        string  `json:"image" binding:"required"` // filename only
	Weight       float64 `json:"weight"`
	Stock        int     `json:"stock"`
	CategoryIDs  []uint  `json:"category_ids"`
}

// CreateProduct creates a new product attached to zero or more categories.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if req.Stock < 0 {
			response.BadRequest(c, "stock cannot be negative")
			return
		}

		sku := strings.ToUpper(strings.TrimSpace(req.SKU))
		var existing models.Product
		if err := db.Where("sku = ?", sku).First(&existing).Error; err == nil {
			response.BadRequest(c, "a product with this SKU already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			response.Internal(c, "failed to check SKU")
			return
		}

		var categories []models.Category
		if len(req.CategoryIDs) > 0 {
			if err := db.Where("id IN ?", req.CategoryIDs).Find(&categories).Error; err != nil {
				response.Internal(c, "failed to fetch categories")
				return
			}
			if len(categories) != len(req.CategoryIDs) {
				response.BadRequest(c, "one or more category_ids do not exist")
				return
			}
		}

		product := models.Product{
			Name:         req.Name,
			Description:  req.Description,
			SKU:          sku,
			SalePrice:    req.SalePrice,
			RegularPrice: req.RegularPrice,
			Image:        req.Image,
			Weight:       req.Weight,
			Stock:        req.Stock,
			Categories:   categories,
		}
		product.SyncInStock()

		if err := db.Create(&product).Error; err != nil {
			response.Internal(c, "failed to create product")
			return
		}

		response.Created(c, product)
	}
}
