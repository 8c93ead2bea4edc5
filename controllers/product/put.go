package productcontroller

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
)

type UpdateProductRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	SKU          *string  `json:"sku"`
	SalePrice    *float64 `json:"sale_price"`
	RegularPrice *float64 `json:"regular_price"`
	Image        *string  `json:"image"`
	Weight       *float64 `json:"weight"`
	Stock        *int     `json:"stock"`
	CategoryIDs  []uint   `json:"category_ids"`
}

// UpdateProduct applies a partial update to an existing product.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Categories").First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "Product not found")
				return
			}
			response.Internal(c, "failed to fetch product")
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.SKU != nil {
			sku := strings.ToUpper(strings.TrimSpace(*req.SKU))
			var other models.Product
			if err := db.Where("sku = ? AND id <> ?", sku, product.ID).First(&other).Error; err == nil {
				response.BadRequest(c, "a product with this SKU already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				response.Internal(c, "failed to check SKU")
				return
			}
			product.SKU = sku
		}
		if req.SalePrice != nil {
			if *req.SalePrice <= 0 {
				response.BadRequest(c, "sale_price must be positive")
				return
			}
			product.SalePrice = *req.SalePrice
		}
		if req.RegularPrice != nil {
			product.RegularPrice = *req.RegularPrice
		}
		if req.Image != nil {
			product.Image = *req.Image
		}
		if req.Weight != nil {
			product.Weight = *req.Weight
		}
		if req.Stock != nil {
			if *req.Stock < 0 {
				response.BadRequest(c, "stock cannot be negative")
				return
			}
			product.Stock = *req.Stock
			product.SyncInStock()
		}

		if len(req.CategoryIDs) > 0 {
			var categories []models.Category
			if err := db.Where("id IN ?", req.CategoryIDs).Find(&categories).Error; err != nil {
				response.Internal(c, "failed to fetch categories")
				return
			}
			if err := db.Model(&product).Association("Categories").Replace(categories); err != nil {
				response.Internal(c, "failed to update categories")
				return
			}
		}

		if err := db.Save(&product).Error; err != nil {
			response.Internal(c, "failed to update product")
			return
		}

		response.OK(c, product)
	}
}
