package productcontroller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

var sortableColumns = map[string]bool{
	"created_at": true,
	"name":       true,
	"sale_price": true,
	"stock":      true,
}

// GetProducts lists products with search, category and price filtering,
// sorting, and pagination.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("category_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if !sortableColumns[sortBy] {
			sortBy = "created_at"
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
		if page < 1 {
			page = defaultPage
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
		if limit < 1 || limit > maxLimit {
			limit = defaultLimit
		}

		query := db.Model(&models.Product{}).Preload("Categories")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ? OR sku ILIKE ?",
				likePattern, likePattern, likePattern)
		}

		if minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				response.BadRequest(c, "Invalid min_price")
				return
			}
			query = query.Where("sale_price >= ?", mp)
		}
		if maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				response.BadRequest(c, "Invalid max_price")
				return
			}
			query = query.Where("sale_price <= ?", mp)
		}

		if categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				response.BadRequest(c, "Invalid category_id")
				return
			}
			query = query.
				Joins("JOIN product_categories pc ON pc.product_id = products.id").
				Where("pc.category_id = ?", uint(cid))
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			response.Internal(c, "failed to count products")
			return
		}

		var products []models.Product
		if err := query.
			Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&products).Error; err != nil {
			response.Internal(c, "failed to fetch products")
			return
		}

		response.Page(c, products, len(products), response.NewPagination(page, limit, total))
	}
}
