package productcontroller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storekit-dev/storefront-api/apperr"
	"github.com/storekit-dev/storefront-api/models"
	"github.com/storekit-dev/storefront-api/response"
)

// categoryDeletable rejects deletion while the category still has
// child categories or associated products.
func categoryDeletable(childCount, productCount int64) error {
	if childCount > 0 {
		return apperr.Validationf("cannot delete a category that still has child categories")
	}
	if productCount > 0 {
		return apperr.Validationf("cannot delete a category that still has products")
	}
	return nil
}

type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	ParentID  *uint  `json:"parent_id"`
	Image     string `json:"image"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

type UpdateCategoryRequest struct {
	Name      *string `json:"name"`
	ParentID  *uint   `json:"parent_id"`
	Image     *string `json:"image"`
	IsActive  *bool   `json:"is_active"`
	SortOrder *int    `json:"sort_order"`
}

// CreateCategory creates a category, optionally under a parent.
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		var existing models.Category
		if err := db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
			response.BadRequest(c, "a category with this name already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			response.Internal(c, "failed to check category name")
			return
		}

		if req.ParentID != nil {
			var parent models.Category
			if err := db.First(&parent, *req.ParentID).Error; err != nil {
				response.BadRequest(c, "parent category does not exist")
				return
			}
		}

		category := models.Category{
			Name:      req.Name,
			ParentID:  req.ParentID,
			Image:     req.Image,
			IsActive:  true,
			SortOrder: req.SortOrder,
		}
		if req.IsActive != nil {
			category.IsActive = *req.IsActive
		}

		if err := db.Create(&category).Error; err != nil {
			response.Internal(c, "failed to create category")
			return
		}

		response.Created(c, category)
	}
}

// UpdateCategory applies a partial update. Direct self-parenting is
// rejected; multi-level cycles are the caller's responsibility.
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "Category not found")
				return
			}
			response.Internal(c, "failed to fetch category")
			return
		}

		var req UpdateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		if req.Name != nil {
			var other models.Category
			if err := db.Where("name = ? AND id <> ?", *req.Name, category.ID).First(&other).Error; err == nil {
				response.BadRequest(c, "a category with this name already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				response.Internal(c, "failed to check category name")
				return
			}
			category.Name = *req.Name
		}
		if req.ParentID != nil {
			if *req.ParentID == category.ID {
				response.BadRequest(c, "a category cannot be its own parent")
				return
			}
			var parent models.Category
			if err := db.First(&parent, *req.ParentID).Error; err != nil {
				response.BadRequest(c, "parent category does not exist")
				return
			}
			category.ParentID = req.ParentID
		}
		if req.Image != nil {
			category.Image = *req.Image
		}
		if req.IsActive != nil {
			category.IsActive = *req.IsActive
		}
		if req.SortOrder != nil {
			category.SortOrder = *req.SortOrder
		}

		if err := db.Save(&category).Error; err != nil {
			response.Internal(c, "failed to update category")
			return
		}

		response.OK(c, category)
	}
}

// GetAllCategories returns all categories as a flat list, ordered by
// sort rank then name.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("sort_order, name").Find(&categories).Error; err != nil {
			response.Internal(c, "failed to fetch categories")
			return
		}
		response.List(c, categories, len(categories))
	}
}

// GetCategoryTree returns all categories as a nested forest.
func GetCategoryTree(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("sort_order, name").Find(&categories).Error; err != nil {
			response.Internal(c, "failed to fetch categories")
			return
		}
		forest := BuildCategoryTree(categories)
		response.List(c, forest, len(forest))
	}
}

// GetCategoryByID returns one category with its products.
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.Preload("Products").First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "Category not found")
				return
			}
			response.Internal(c, "failed to fetch category")
			return
		}

		response.OK(c, category)
	}
}

// DeleteCategory removes a category. Fails while the category still has
// child categories or associated products.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "Category not found")
				return
			}
			response.Internal(c, "failed to fetch category")
			return
		}

		var childCount int64
		if err := db.Model(&models.Category{}).Where("parent_id = ?", category.ID).Count(&childCount).Error; err != nil {
			response.Internal(c, "failed to check child categories")
			return
		}
		productCount := db.Model(&category).Association("Products").Count()
		if err := categoryDeletable(childCount, productCount); err != nil {
			response.FromError(c, err)
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			response.Internal(c, "failed to delete category")
			return
		}

		response.Message(c, "Category deleted")
	}
}
